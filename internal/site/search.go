package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/schemasite/internal/model"
)

// SearchEntry represents a single searchable item in the report.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Kind    string `json:"kind"`
	Summary string `json:"summary,omitempty"`
}

// BuildSearchIndex lists every table, view, column and routine with the path
// of the page documenting it, relative to the output root.
func BuildSearchIndex(c *Composer, db *model.Database) []SearchEntry {
	var entries []SearchEntry
	for _, t := range db.Tables {
		kind := "table"
		if t.IsView {
			kind = "view"
		}
		href := c.TableHref(PageMainIndex, t.Name)
		entries = append(entries, SearchEntry{
			Path:    href,
			Title:   t.Name,
			Kind:    kind,
			Summary: t.Comments,
		})
		for _, col := range t.Columns {
			entries = append(entries, SearchEntry{
				Path:    href + "#" + ColumnAnchor(col.Name),
				Title:   t.Name + "." + col.Name,
				Kind:    "column",
				Summary: col.Type,
			})
		}
	}
	for _, r := range db.Routines {
		entries = append(entries, SearchEntry{
			Path:    c.Routes().Fragment(PageRoutines) + "#" + r.Name,
			Title:   r.Name,
			Kind:    "routine",
			Summary: r.Comments,
		})
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
