package site

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/schemasite/internal/config"
	"github.com/ziadkadry99/schemasite/internal/model"
)

func newTestComposer(caps config.Capabilities) *Composer {
	if caps.Charset == "" {
		caps.Charset = config.DefaultCharset
	}
	c := NewComposer(caps, DefaultRoutes())
	c.Version = "1.0.0"
	c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return c
}

func renderHeader(t *testing.T, c *Composer, db *model.Database, page PageContext, text string, scripts []string) string {
	t.Helper()
	var b strings.Builder
	out := NewLineWriter(&b)
	require.NoError(t, c.WriteHeaderWithScripts(out, db, page, text, scripts))
	return b.String()
}

func renderPage(t *testing.T, c *Composer, db *model.Database, page PageContext) string {
	t.Helper()
	var b strings.Builder
	out := NewLineWriter(&b)
	require.NoError(t, c.WriteHeader(out, db, page, ""))
	out.Writeln("<p>body</p>")
	require.NoError(t, c.WriteFooter(out))
	return b.String()
}

type navLink struct {
	label   string
	href    string
	current bool
}

// navLinks parses doc and returns the entries of the navigation bar.
func navLinks(t *testing.T, doc string) []navLink {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	header := findNode(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "div" && attr(n, "id") == "header"
	})
	require.NotNil(t, header, "navigation bar not found")

	var links []navLink
	walk(header, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "li" {
			return
		}
		a := findNode(n, func(c *html.Node) bool { return c.Type == html.ElementNode && c.Data == "a" })
		require.NotNil(t, a)
		links = append(links, navLink{
			label:   text(a),
			href:    attr(a, "href"),
			current: attr(n, "id") == "current",
		})
	})
	return links
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func labels(links []navLink) []string {
	var out []string
	for _, l := range links {
		out = append(out, l.label)
	}
	return out
}

func currentLabels(links []navLink) []string {
	var out []string
	for _, l := range links {
		if l.current {
			out = append(out, l.label)
		}
	}
	return out
}

func TestNavigationGating(t *testing.T) {
	db := &model.Database{Name: "sales"}

	t.Run("single schema without orphans or routines", func(t *testing.T) {
		c := newTestComposer(config.Capabilities{})
		links := navLinks(t, renderPage(t, c, db, Page(PageMainIndex)))
		assert.Equal(t, []string{"Tables", "Relationships", "Constraints", "Anomalies", "Columns", "About"}, labels(links))
	})

	t.Run("all capabilities", func(t *testing.T) {
		c := newTestComposer(config.Capabilities{OneOfMultipleSchemas: true, HasOrphans: true, HasRoutines: true})
		links := navLinks(t, renderPage(t, c, db, Page(PageMainIndex)))
		assert.Equal(t, []string{
			"Schemas", "Tables", "Relationships", "Utility\u00a0Tables", "Constraints",
			"Anomalies", "Columns", "Routines", "About",
		}, labels(links))
		assert.Equal(t, "../index.html", links[0].href)
		assert.Equal(t, "index.html", links[1].href)
		assert.Equal(t, "utilities.html", links[3].href)
		assert.Equal(t, "columns.byColumn.html", links[6].href)
		assert.Equal(t, AboutURL, links[8].href)
	})
}

func TestNavigationCurrentEntry(t *testing.T) {
	c := newTestComposer(config.Capabilities{OneOfMultipleSchemas: true, HasOrphans: true, HasRoutines: true})
	db := &model.Database{Name: "sales"}

	tests := []struct {
		page PageContext
		want []string
	}{
		{Page(PageMainIndex), []string{"Tables"}},
		{Page(PageRelationships), []string{"Relationships"}},
		{Page(PageOrphans), []string{"Utility\u00a0Tables"}},
		{Page(PageConstraints), []string{"Constraints"}},
		{Page(PageAnomalies), []string{"Anomalies"}},
		{Page(PageColumns), []string{"Columns"}},
		{Page(PageRoutines), []string{"Routines"}},
		{Page(PageOther), nil},
		{TablePage(&model.Table{Name: "orders"}), nil},
	}
	for _, tt := range tests {
		t.Run(tt.page.Kind.String(), func(t *testing.T) {
			links := navLinks(t, renderPage(t, c, db, tt.page))
			assert.Equal(t, tt.want, currentLabels(links))
		})
	}
}

func TestNavigationCurrentEntryHiddenWhenGated(t *testing.T) {
	c := newTestComposer(config.Capabilities{})
	db := &model.Database{Name: "sales"}

	links := navLinks(t, renderPage(t, c, db, Page(PageRoutines)))
	assert.Empty(t, currentLabels(links))
	assert.NotContains(t, labels(links), "Routines")
}

func TestHeaderMainIndex(t *testing.T) {
	c := newTestComposer(config.Capabilities{HasOrphans: true})
	db := &model.Database{Name: "sales", Schema: "public", Description: `key\=value`}

	got := renderHeader(t, c, db, Page(PageMainIndex), "", nil)

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE HTML PUBLIC"))
	assert.Contains(t, got, "<!-- schemasite 1.0.0 -->")
	assert.Contains(t, got, "<title>SchemaSite - sales.public</title>")
	assert.Contains(t, got, "href='style.css'")
	assert.Contains(t, got, "src='lib.js'")
	assert.Contains(t, got, "src='script.js'")
	assert.Contains(t, got, "charset=UTF-8")
	assert.Contains(t, got, "<span class='header'>SchemaSite Analysis of <span title='Database'>sales</span>.<span title='Schema'>public</span></span>")
	assert.Contains(t, got, "<span class='description'>key=value</span>")
	assert.NotContains(t, got, "table='")

	links := navLinks(t, got)
	assert.Equal(t, []string{"Tables"}, currentLabels(links))
	for _, l := range links {
		assert.False(t, strings.HasPrefix(l.href, "../") && l.label != "Schemas", l.href)
	}
}

func TestHeaderTablePage(t *testing.T) {
	c := newTestComposer(config.Capabilities{})
	db := &model.Database{Name: "sales", Description: "ignored on table pages"}
	orders := &model.Table{Name: "orders"}

	got := renderHeader(t, c, db, TablePage(orders), "", nil)

	assert.Contains(t, got, "<title>SchemaSite - Table sales.orders</title>")
	assert.Contains(t, got, "  <script type='text/javascript'>\n    table='orders';\n  </script>\n")
	assert.Contains(t, got, "href='../style.css'")
	assert.Contains(t, got, "src='../lib.js'")
	assert.Contains(t, got, "src='../script.js'")
	assert.NotContains(t, got, "Analysis of")
	assert.NotContains(t, got, "class='description'")

	for _, l := range navLinks(t, got) {
		if l.label == "About" {
			assert.Equal(t, AboutURL, l.href)
			continue
		}
		assert.True(t, strings.HasPrefix(l.href, "../"), l.href)
	}
}

func TestHeaderScripts(t *testing.T) {
	c := newTestComposer(config.Capabilities{})
	db := &model.Database{Name: "sales"}
	orders := &model.Table{Name: "orders"}

	got := renderHeader(t, c, db, TablePage(orders), "", []string{"a=1;", "b=2;", "a=1;"})

	tableBlock := strings.Index(got, "table='orders';")
	scriptBlock := strings.Index(got, "    a=1;\n    b=2;\n    a=1;\n")
	require.NotEqual(t, -1, tableBlock)
	require.NotEqual(t, -1, scriptBlock, "scripts are written verbatim, in order, without dedup")
	assert.Less(t, tableBlock, scriptBlock)
	assert.Less(t, scriptBlock, strings.Index(got, "</head>"))

	empty := renderHeader(t, c, db, Page(PageColumns), "", []string{})
	assert.Equal(t, 3, strings.Count(empty, "<script type='text/javascript'"))

	none := renderHeader(t, c, db, Page(PageColumns), "", nil)
	assert.Equal(t, 2, strings.Count(none, "<script type='text/javascript'"))
}

func TestHeaderComments(t *testing.T) {
	db := &model.Database{Name: "sales"}
	orders := &model.Table{Name: "orders", Comments: "a<b\r\nc"}

	encoded := renderHeader(t, newTestComposer(config.Capabilities{EncodeComments: true}), db, TablePage(orders), "", nil)
	assert.Contains(t, encoded, "<div style='padding: 0px 4px;'>a&lt;b<br>\nc</div><p>")

	verbatim := renderHeader(t, newTestComposer(config.Capabilities{}), db, TablePage(orders), "", nil)
	assert.Contains(t, verbatim, "<div style='padding: 0px 4px;'>a<b\r\nc</div><p>")

	bare := renderHeader(t, newTestComposer(config.Capabilities{}), db, TablePage(&model.Table{Name: "t"}), "", nil)
	assert.NotContains(t, bare, "padding: 0px 4px")
}

func TestFooter(t *testing.T) {
	t.Run("without meter", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, newTestComposer(config.Capabilities{}).WriteFooter(NewLineWriter(&b)))
		assert.Equal(t, "</div>\n</body>\n</html>\n", b.String())
	})

	t.Run("with meter", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, newTestComposer(config.Capabilities{MeterEnabled: true}).WriteFooter(NewLineWriter(&b)))
		got := b.String()
		assert.Equal(t, 1, strings.Count(got, "<!-- Site Meter -->"))
		assert.True(t, strings.HasPrefix(got, "</div>\n"))
		assert.True(t, strings.HasSuffix(got, "</body>\n</html>\n"))
	})
}

func TestGeneratedOn(t *testing.T) {
	var b strings.Builder
	require.NoError(t, newTestComposer(config.Capabilities{}).WriteGeneratedOn(NewLineWriter(&b), "Monday"))
	assert.Equal(t, "<span class='container'>Generated on Monday</span>\n", b.String())
}

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	limit int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, w.err
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestWriteFailurePropagates(t *testing.T) {
	errDisk := errors.New("disk full")
	c := newTestComposer(config.Capabilities{MeterEnabled: true})
	db := &model.Database{Name: "sales"}
	page := TablePage(&model.Table{Name: "orders"})

	var full strings.Builder
	require.NoError(t, c.WriteHeader(NewLineWriter(&full), db, page, ""))
	require.NoError(t, c.WriteFooter(NewLineWriter(&full)))
	size := full.Len()

	for _, limit := range []int{0, 10, size / 2, size - 1} {
		out := NewLineWriter(&failingWriter{limit: limit, err: errDisk})
		err := c.WriteHeader(out, db, page, "")
		if err == nil {
			err = c.WriteFooter(out)
		}
		assert.Same(t, errDisk, err, "limit %d", limit)
	}
}
