package schema

import (
	"sort"

	"github.com/ziadkadry99/schemasite/internal/model"
)

// Relationship is one foreign key edge from a child column to a parent column.
type Relationship struct {
	Child        string
	ChildColumn  string
	Parent       string
	ParentColumn string
}

// Relationships lists every foreign key whose parent table is part of db,
// ordered by child then parent.
func Relationships(db *model.Database) []Relationship {
	var rels []Relationship
	for _, t := range db.Tables {
		for _, c := range t.Columns {
			for _, ref := range c.References {
				if db.Table(ref.Table) == nil {
					continue
				}
				rels = append(rels, Relationship{
					Child:        t.Name,
					ChildColumn:  c.Name,
					Parent:       ref.Table,
					ParentColumn: ref.Column,
				})
			}
		}
	}
	sort.SliceStable(rels, func(i, j int) bool {
		if rels[i].Child != rels[j].Child {
			return rels[i].Child < rels[j].Child
		}
		return rels[i].Parent < rels[j].Parent
	})
	return rels
}

// Constraints lists every declared foreign key, including those pointing at
// tables outside the report.
func Constraints(db *model.Database) []Relationship {
	var rels []Relationship
	for _, t := range db.Tables {
		for _, c := range t.Columns {
			for _, ref := range c.References {
				rels = append(rels, Relationship{
					Child:        t.Name,
					ChildColumn:  c.Name,
					Parent:       ref.Table,
					ParentColumn: ref.Column,
				})
			}
		}
	}
	return rels
}

// Orphans returns the tables that have neither parents nor children.
// Views are never orphans.
func Orphans(db *model.Database) []*model.Table {
	related := make(map[string]bool)
	for _, r := range Relationships(db) {
		related[r.Child] = true
		related[r.Parent] = true
	}
	var orphans []*model.Table
	for _, t := range db.Tables {
		if !t.IsView && !related[t.Name] {
			orphans = append(orphans, t)
		}
	}
	return orphans
}

// Anomaly is something about a table that might not be quite right.
type Anomaly struct {
	Table   string
	Column  string
	Message string
}

// Anomalies reports tables without a primary key, single-column tables and
// nullable foreign key columns. Views are skipped.
func Anomalies(db *model.Database) []Anomaly {
	var found []Anomaly
	for _, t := range db.Tables {
		if t.IsView {
			continue
		}
		if !t.HasPrimaryKey() {
			found = append(found, Anomaly{Table: t.Name, Message: "Table has no primary key"})
		}
		if len(t.Columns) == 1 {
			found = append(found, Anomaly{Table: t.Name, Column: t.Columns[0].Name, Message: "Table has only one column"})
		}
		for _, c := range t.Columns {
			if c.Nullable && len(c.References) > 0 {
				found = append(found, Anomaly{Table: t.Name, Column: c.Name, Message: "Foreign key column is nullable"})
			}
		}
	}
	return found
}
