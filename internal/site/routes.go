package site

import "strings"

// ColumnSort is one ordering of the columns page. Each sort is written to
// its own file.
type ColumnSort struct {
	Key   string
	Label string
}

// ColumnSorts lists the column page orderings; the first is the one the
// navigation bar links to.
var ColumnSorts = []ColumnSort{
	{Key: "column", Label: "Column"},
	{Key: "table", Label: "Table"},
	{Key: "type", Label: "Type"},
}

// ColumnsFile returns the file name of the columns page sorted by key.
func ColumnsFile(key string) string {
	if key == "" {
		return "columns.html"
	}
	return "columns.by" + strings.ToUpper(key[:1]) + key[1:] + ".html"
}

// Routes maps each root page kind to its file name relative to the output
// root. It is resolved once per run and read-only afterwards.
type Routes map[PageKind]string

// DefaultRoutes builds the routing table for a run.
func DefaultRoutes() Routes {
	return Routes{
		PageMainIndex:     "index.html",
		PageRelationships: "relationships.html",
		PageOrphans:       "utilities.html",
		PageConstraints:   "constraints.html",
		PageAnomalies:     "anomalies.html",
		PageColumns:       ColumnsFile(ColumnSorts[0].Key),
		PageRoutines:      "routines.html",
	}
}

// Fragment returns the file name for kind, or "" if it has none.
func (r Routes) Fragment(kind PageKind) string {
	return r[kind]
}

// TablesDir is the directory, relative to the output root, holding table pages.
const TablesDir = "tables"
