package site

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziadkadry99/schemasite/internal/config"
)

func TestEncodeToken(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{'<', "&lt;"},
		{'>', "&gt;"},
		{'&', "&amp;"},
		{'\n', "<br>\n"},
		{'\r', ""},
		{'a', "a"},
		{'é', "é"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeToken(tt.in), string(tt.in))
	}
}

func TestEncodeText(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt;<br>\nc", EncodeText("a <b>\r\nc"))
	assert.Equal(t, "", EncodeText(""))
}

func TestEncodeURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		charset string
		want    string
		ok      bool
	}{
		{name: "plain", in: "orders", charset: "UTF-8", want: "orders", ok: true},
		{name: "space", in: "order items", charset: "UTF-8", want: "order%20items", ok: true},
		{name: "reserved", in: "a/b?c", charset: "utf-8", want: "a%2Fb%3Fc", ok: true},
		{name: "utf8 multibyte", in: "é", charset: "UTF-8", want: "%C3%A9", ok: true},
		{name: "latin1", in: "é", charset: "ISO-8859-1", want: "%E9", ok: true},
		{name: "unsupported charset", in: "a b", charset: "no-such-charset", want: "a b", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EncodeURL(tt.in, tt.charset)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestComposerURLEncodeLogsFallback(t *testing.T) {
	var buf bytes.Buffer
	c := NewComposer(config.Capabilities{Charset: "bogus"}, DefaultRoutes())
	c.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	assert.Equal(t, "order items", c.URLEncode("order items"))
	assert.Contains(t, buf.String(), "Could not URL-encode string")
	assert.Contains(t, buf.String(), "charset=bogus")
}

func TestTableHref(t *testing.T) {
	c := NewComposer(config.Capabilities{Charset: "UTF-8"}, DefaultRoutes())
	assert.Equal(t, "tables/order%20items.html", c.TableHref(PageMainIndex, "order items"))
	assert.Equal(t, "orders.html", c.TableHref(PageTableDetail, "orders"))
}

func TestEncodeURLUnrepresentableRune(t *testing.T) {
	got, ok := EncodeURL("日本", "ISO-8859-1")
	assert.False(t, ok)
	assert.Equal(t, "日本", got)
}

func TestToCharset(t *testing.T) {
	raw, ok := ToCharset("café", "ISO-8859-1")
	assert.True(t, ok)
	assert.Equal(t, "caf\xe9", raw)

	_, ok = ToCharset("café", "bogus")
	assert.False(t, ok)
}

func TestTableFile(t *testing.T) {
	utf8 := NewComposer(config.Capabilities{Charset: "UTF-8"}, DefaultRoutes())
	latin1 := NewComposer(config.Capabilities{Charset: "ISO-8859-1"}, DefaultRoutes())
	latin1.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		c    *Composer
		in   string
		file string
		href string
	}{
		{name: "plain", c: utf8, in: "orders", file: "orders.html", href: "tables/orders.html"},
		{name: "space", c: utf8, in: "order items", file: "order items.html", href: "tables/order%20items.html"},
		{name: "slash", c: utf8, in: "a/b", file: "a_b.html", href: "tables/a_b.html"},
		{name: "parent dirs", c: utf8, in: "../../x", file: ".._.._x.html", href: "tables/.._.._x.html"},
		{name: "backslash", c: utf8, in: `a\b`, file: "a_b.html", href: "tables/a_b.html"},
		{name: "latin1", c: latin1, in: "café", file: "caf\xe9.html", href: "tables/caf%E9.html"},
		{name: "latin1 unrepresentable", c: latin1, in: "日本#1", file: "日本#1.html", href: "tables/%E6%97%A5%E6%9C%AC%231.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := tt.c.TableFile(tt.in)
			assert.Equal(t, tt.file, file)
			assert.NotContains(t, file, "/")
			assert.Equal(t, tt.href, tt.c.TableHref(PageMainIndex, tt.in))
		})
	}
}

func TestColumnAnchor(t *testing.T) {
	assert.Equal(t, "customer_id", ColumnAnchor("customer_id"))
	assert.Equal(t, "it%27s%20%3Ca&b%3E", ColumnAnchor("it's <a&b>"))
}
