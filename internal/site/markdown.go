package site

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md renders every routine definition of a run. Convert is safe for
// concurrent use.
var md = newMarkdown()

// newMarkdown returns the goldmark instance used for routine definitions.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// renderDefinition renders SQL source as a highlighted code block.
func renderDefinition(sql string) (string, error) {
	src := "```sql\n" + strings.TrimRight(sql, "\n") + "\n```\n"
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
