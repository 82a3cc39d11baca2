package site

import (
	"strings"

	"github.com/ziadkadry99/schemasite/internal/model"
)

// Description builds the hierarchical page title:
//
//	[View |Table ]db[.schema|.catalog][.table][ - text]
//
// Schema wins over catalog. With hoverHelp each of the database, schema or
// catalog, and table segments is wrapped in a tooltip span naming its role;
// the View/Table label and text are never wrapped.
func Description(db *model.Database, table *model.Table, text string, hoverHelp bool) string {
	var b strings.Builder

	segment := func(role, value string) {
		if hoverHelp {
			b.WriteString("<span title='" + role + "'>")
		}
		b.WriteString(value)
		if hoverHelp {
			b.WriteString("</span>")
		}
	}

	if table != nil {
		if table.IsView {
			b.WriteString("View ")
		} else {
			b.WriteString("Table ")
		}
	}

	segment("Database", db.Name)

	if db.Schema != "" {
		b.WriteByte('.')
		segment("Schema", db.Schema)
	} else if db.Catalog != "" {
		b.WriteByte('.')
		segment("Catalog", db.Catalog)
	}

	if table != nil {
		b.WriteByte('.')
		segment("Table", table.Name)
	}

	if text != "" {
		b.WriteString(" - ")
		b.WriteString(text)
	}

	return b.String()
}

// unescapeDescription undoes the "\=" escaping carried by database descriptions.
func unescapeDescription(s string) string {
	return strings.ReplaceAll(s, `\=`, "=")
}
