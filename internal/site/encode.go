package site

import (
	"net/url"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// tokenTable is the escaping applied to free text such as table comments:
//
//	'<'  -> "&lt;"
//	'>'  -> "&gt;"
//	'&'  -> "&amp;"
//	'\n' -> "<br>\n"
//	'\r' -> dropped
//
// Every other rune is emitted unchanged.
var tokenTable = map[rune]string{
	'<':  "&lt;",
	'>':  "&gt;",
	'&':  "&amp;",
	'\n': "<br>\n",
	'\r': "",
}

// EncodeToken returns the HTML form of a single rune.
func EncodeToken(r rune) string {
	if s, ok := tokenTable[r]; ok {
		return s
	}
	return string(r)
}

// EncodeText applies EncodeToken to every rune of s.
func EncodeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(EncodeToken(r))
	}
	return b.String()
}

// ToCharset converts s to the bytes of charset. It fails when the charset is
// not recognised or cannot represent every rune of s.
func ToCharset(s, charset string) (string, bool) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return s, false
	}
	raw, err := enc.NewEncoder().String(s)
	if err != nil {
		return s, false
	}
	return raw, true
}

// EncodeURL percent-encodes s after converting it to charset. Spaces become
// %20 so the result is usable in a path. When the conversion fails the
// original string is returned with ok false.
func EncodeURL(s, charset string) (encoded string, ok bool) {
	raw, ok := ToCharset(s, charset)
	if !ok {
		return s, false
	}
	return strings.ReplaceAll(url.QueryEscape(raw), "+", "%20"), true
}

// safeFileName maps a table name to a single path element.
func safeFileName(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "\x00", "_").Replace(name)
}

// ColumnAnchor is the fragment identifying a column on its table page. The
// same value is written as the cell id and used in every link to it.
func ColumnAnchor(column string) string {
	return url.PathEscape(column)
}
