package site

import (
	"log/slog"

	"github.com/ziadkadry99/schemasite/internal/config"
	"github.com/ziadkadry99/schemasite/internal/logfields"
)

// Asset file names written once to the output root.
const (
	StylesheetFile = "style.css"
	LibraryFile    = "lib.js"
	ScriptFile     = "script.js"
)

// Composer writes the chrome shared by every report page. A Composer holds
// only the run's capability snapshot and routing table, so one value may be
// used by many pages at once.
type Composer struct {
	caps   config.Capabilities
	routes Routes

	// Version is reported in the generator comment of each page.
	Version string
	Logger  *slog.Logger
}

// NewComposer creates a Composer for one run.
func NewComposer(caps config.Capabilities, routes Routes) *Composer {
	return &Composer{
		caps:    caps,
		routes:  routes,
		Version: "dev",
		Logger:  slog.Default(),
	}
}

// Capabilities returns the run's snapshot for callers gating page content.
func (c *Composer) Capabilities() config.Capabilities {
	return c.caps
}

// Routes returns the run's routing table.
func (c *Composer) Routes() Routes {
	return c.routes
}

// URLEncode percent-encodes s in the run's charset. An unsupported charset
// is logged and s is returned unescaped so the page can still be written.
func (c *Composer) URLEncode(s string) string {
	encoded, ok := EncodeURL(s, c.caps.Charset)
	if !ok {
		c.logEncodeFailure(s)
	}
	return encoded
}

func (c *Composer) logEncodeFailure(s string) {
	c.Logger.Info("Could not URL-encode string",
		slog.String("value", s),
		logfields.Charset(c.caps.Charset))
}

// TableFile returns the file name of the table's detail page inside
// TablesDir. Path separators are replaced so the page always lands in
// TablesDir, and the name is stored in the run's charset so that it is what
// TableHref decodes to. Names the charset cannot represent stay UTF-8.
func (c *Composer) TableFile(name string) string {
	safe := safeFileName(name)
	if raw, ok := ToCharset(safe, c.caps.Charset); ok {
		return raw + ".html"
	}
	return safe + ".html"
}

// TableHref returns the link from a page of kind to the detail page of the
// named table. It percent-encodes the bytes of TableFile, falling back to
// UTF-8 when the run's charset cannot represent the name.
func (c *Composer) TableHref(kind PageKind, name string) string {
	safe := safeFileName(name)
	file, ok := EncodeURL(safe, c.caps.Charset)
	if !ok {
		c.logEncodeFailure(safe)
		file, _ = EncodeURL(safe, config.DefaultCharset)
	}
	file += ".html"
	if kind == PageTableDetail {
		return file
	}
	return kind.PathToRoot() + TablesDir + "/" + file
}
