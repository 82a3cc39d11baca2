// Package model holds the read-only schema data rendered into the report.
package model

// Database is an introspected database or schema snapshot.
type Database struct {
	Name    string `yaml:"name"`
	Schema  string `yaml:"schema,omitempty"`
	Catalog string `yaml:"catalog,omitempty"`
	// Description is free text and may contain an escaped "\=" marker.
	Description string    `yaml:"description,omitempty"`
	Tables      []*Table  `yaml:"tables"`
	Routines    []Routine `yaml:"routines,omitempty"`
}

// Table is a table or view within a Database.
type Table struct {
	Name     string   `yaml:"name"`
	IsView   bool     `yaml:"view,omitempty"`
	Comments string   `yaml:"comments,omitempty"`
	Columns  []Column `yaml:"columns"`
	NumRows  int64    `yaml:"rows,omitempty"`
}

// String returns the table name; it is what page scripts receive as "table".
func (t *Table) String() string {
	return t.Name
}

// Column is a single column of a Table.
type Column struct {
	Name       string      `yaml:"name"`
	Type       string      `yaml:"type"`
	Nullable   bool        `yaml:"nullable,omitempty"`
	PrimaryKey bool        `yaml:"primary_key,omitempty"`
	Comments   string      `yaml:"comments,omitempty"`
	References []ColumnRef `yaml:"references,omitempty"`
}

// ColumnRef points at the parent side of a foreign key.
type ColumnRef struct {
	Table  string `yaml:"table"`
	Column string `yaml:"column"`
}

// Routine is a stored procedure or function.
type Routine struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	ReturnType string `yaml:"return_type,omitempty"`
	Definition string `yaml:"definition,omitempty"`
	Comments   string `yaml:"comments,omitempty"`
}

// Table returns the table with the given name, or nil.
func (d *Database) Table(name string) *Table {
	for _, t := range d.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// HasPrimaryKey reports whether any column is part of the primary key.
func (t *Table) HasPrimaryKey() bool {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return true
		}
	}
	return false
}
