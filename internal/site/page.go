package site

import "github.com/ziadkadry99/schemasite/internal/model"

// PageKind identifies which report page is being composed.
type PageKind int

const (
	PageOther PageKind = iota
	PageMainIndex
	PageRelationships
	PageOrphans
	PageConstraints
	PageAnomalies
	PageColumns
	PageRoutines
	PageTableDetail
)

var pageKindNames = [...]string{
	PageOther:         "other",
	PageMainIndex:     "main-index",
	PageRelationships: "relationships",
	PageOrphans:       "orphans",
	PageConstraints:   "constraints",
	PageAnomalies:     "anomalies",
	PageColumns:       "columns",
	PageRoutines:      "routines",
	PageTableDetail:   "table-detail",
}

func (k PageKind) String() string {
	if k < 0 || int(k) >= len(pageKindNames) {
		return "other"
	}
	return pageKindNames[k]
}

func (k PageKind) IsMainIndex() bool         { return k == PageMainIndex }
func (k PageKind) IsRelationshipsPage() bool { return k == PageRelationships }
func (k PageKind) IsOrphansPage() bool       { return k == PageOrphans }
func (k PageKind) IsConstraintsPage() bool   { return k == PageConstraints }
func (k PageKind) IsAnomaliesPage() bool     { return k == PageAnomalies }
func (k PageKind) IsColumnsPage() bool       { return k == PageColumns }
func (k PageKind) IsRoutinesPage() bool      { return k == PageRoutines }

// PathToRoot returns the relative prefix from a page of this kind back to the
// output root: "" for root pages, "../" for table pages one level down.
func (k PageKind) PathToRoot() string {
	if k == PageTableDetail {
		return "../"
	}
	return ""
}

// PageContext is the page being composed. Table is set for table pages.
type PageContext struct {
	Kind  PageKind
	Table *model.Table
}

// Page returns the context for a root-level page of the given kind.
func Page(kind PageKind) PageContext {
	return PageContext{Kind: kind}
}

// TablePage returns the context for the detail page of t.
func TablePage(t *model.Table) PageContext {
	return PageContext{Kind: PageTableDetail, Table: t}
}

// PathToRoot is shorthand for p.Kind.PathToRoot().
func (p PageContext) PathToRoot() string {
	return p.Kind.PathToRoot()
}

// NavEntry is one slot of the navigation bar, in display order.
type NavEntry int

const (
	NavSchemas NavEntry = iota
	NavTables
	NavRelationships
	NavUtilities
	NavConstraints
	NavAnomalies
	NavColumns
	NavRoutines
	NavAbout
)

// IsCurrent reports whether entry is the navigation slot for pages of kind.
// Schemas and About are never current.
func IsCurrent(kind PageKind, entry NavEntry) bool {
	switch entry {
	case NavTables:
		return kind.IsMainIndex()
	case NavRelationships:
		return kind.IsRelationshipsPage()
	case NavUtilities:
		return kind.IsOrphansPage()
	case NavConstraints:
		return kind.IsConstraintsPage()
	case NavAnomalies:
		return kind.IsAnomaliesPage()
	case NavColumns:
		return kind.IsColumnsPage()
	case NavRoutines:
		return kind.IsRoutinesPage()
	default:
		return false
	}
}
