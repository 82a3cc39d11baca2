package site

import (
	"fmt"
	"html"
	"sort"
	"strconv"

	"github.com/ziadkadry99/schemasite/internal/model"
	"github.com/ziadkadry99/schemasite/internal/schema"
)

// report is the read-only data shared by all pages of a run.
type report struct {
	db            *model.Database
	relationships []schema.Relationship
	constraints   []schema.Relationship
	orphans       []*model.Table
	anomalies     []schema.Anomaly
	generatedOn   string
}

func newReport(db *model.Database, generatedOn string) *report {
	return &report{
		db:            db,
		relationships: schema.Relationships(db),
		constraints:   schema.Constraints(db),
		orphans:       schema.Orphans(db),
		anomalies:     schema.Anomalies(db),
		generatedOn:   generatedOn,
	}
}

// children returns the relationships in which table is the parent.
func (r *report) children(table string) []schema.Relationship {
	var out []schema.Relationship
	for _, rel := range r.relationships {
		if rel.Parent == table {
			out = append(out, rel)
		}
	}
	return out
}

// parents returns the relationships in which table is the child.
func (r *report) parents(table string) []schema.Relationship {
	var out []schema.Relationship
	for _, rel := range r.relationships {
		if rel.Child == table {
			out = append(out, rel)
		}
	}
	return out
}

// comments renders free text honouring the comment-encoding flag.
func (c *Composer) comments(s string) string {
	if c.caps.EncodeComments {
		return EncodeText(s)
	}
	return s
}

func (c *Composer) tableLink(kind PageKind, name string) string {
	return "<a href='" + html.EscapeString(c.TableHref(kind, name)) + "'>" + html.EscapeString(name) + "</a>"
}

// columnLink links to a column anchor on a table page when the table is part
// of the report, and renders plain text otherwise.
func (c *Composer) columnLink(r *report, kind PageKind, table, column string) string {
	label := html.EscapeString(table + "." + column)
	if r.db.Table(table) == nil {
		return label
	}
	href := c.TableHref(kind, table) + "#" + ColumnAnchor(column)
	return "<a href='" + html.EscapeString(href) + "'>" + label + "</a>"
}

func writeIndexPage(c *Composer, out *LineWriter, r *report) error {
	if err := c.WriteHeader(out, r.db, Page(PageMainIndex), ""); err != nil {
		return err
	}
	if c.caps.LogoEnabled {
		out.Writeln("<a href='" + AboutURL + "' title='" + ProductName + "' target='_blank' class='logo'><span class='logo'>" + ProductName + "</span></a>")
	}
	if err := c.WriteGeneratedOn(out, r.generatedOn); err != nil {
		return err
	}

	out.Writeln("<table class='dataTable' border='1' rules='groups'>")
	out.Write("<thead><tr><th>Table / View</th><th>Children</th><th>Parents</th><th>Columns</th>")
	if c.caps.NumRowsEnabled {
		out.Write("<th>Rows</th>")
	}
	out.Writeln("<th>Comments</th></tr></thead>")
	out.Writeln("<tbody>")
	var tables, views int
	for _, t := range r.db.Tables {
		class := "tbl"
		if t.IsView {
			class = "view"
			views++
		} else {
			tables++
		}
		out.Write("<tr class='" + class + "'>")
		out.Write("<td class='detail'>" + c.tableLink(PageMainIndex, t.Name) + "</td>")
		out.Write("<td class='detail' align='right'>" + strconv.Itoa(len(r.children(t.Name))) + "</td>")
		out.Write("<td class='detail' align='right'>" + strconv.Itoa(len(r.parents(t.Name))) + "</td>")
		out.Write("<td class='detail' align='right'>" + strconv.Itoa(len(t.Columns)) + "</td>")
		if c.caps.NumRowsEnabled {
			rows := ""
			if !t.IsView {
				rows = strconv.FormatInt(t.NumRows, 10)
			}
			out.Write("<td class='detail' align='right'>" + rows + "</td>")
		}
		out.Writeln("<td class='comment detail'>" + c.comments(t.Comments) + "</td></tr>")
	}
	out.Writeln("</tbody>")
	out.Writeln("</table>")
	out.Writef("<p class='summary'>%d tables, %d views, %d routines</p>\n", tables, views, len(r.db.Routines))

	return c.WriteFooter(out)
}

func writeRelationshipsPage(c *Composer, out *LineWriter, r *report) error {
	if err := c.WriteHeader(out, r.db, Page(PageRelationships), "Relationships"); err != nil {
		return err
	}
	if len(r.relationships) == 0 {
		out.Writeln("<p>No relationships were detected in the schema.</p>")
		return c.WriteFooter(out)
	}
	out.Writeln("<table class='dataTable' border='1' rules='groups'>")
	out.Writeln("<thead><tr><th>Child</th><th>Parent</th></tr></thead>")
	out.Writeln("<tbody>")
	for _, rel := range r.relationships {
		out.Writeln("<tr><td class='detail'>" + c.columnLink(r, PageRelationships, rel.Child, rel.ChildColumn) +
			"</td><td class='detail'>" + c.columnLink(r, PageRelationships, rel.Parent, rel.ParentColumn) + "</td></tr>")
	}
	out.Writeln("</tbody>")
	out.Writeln("</table>")
	return c.WriteFooter(out)
}

func writeOrphansPage(c *Composer, out *LineWriter, r *report) error {
	if err := c.WriteHeader(out, r.db, Page(PageOrphans), "Utility Tables"); err != nil {
		return err
	}
	out.Writeln("<p>Tables with neither parents nor children.</p>")
	out.Writeln("<ul class='orphans'>")
	for _, t := range r.orphans {
		out.Writef("<li>%s <span class='detail'>(%d columns)</span></li>\n", c.tableLink(PageOrphans, t.Name), len(t.Columns))
	}
	out.Writeln("</ul>")
	return c.WriteFooter(out)
}

func writeConstraintsPage(c *Composer, out *LineWriter, r *report) error {
	if err := c.WriteHeader(out, r.db, Page(PageConstraints), "Constraints"); err != nil {
		return err
	}
	out.Writef("<p>%d foreign key constraints</p>\n", len(r.constraints))
	out.Writeln("<table class='dataTable' border='1' rules='groups'>")
	out.Writeln("<thead><tr><th>Constraint</th><th>Child Column</th><th>Parent Column</th></tr></thead>")
	out.Writeln("<tbody>")
	for _, fk := range r.constraints {
		name := html.EscapeString("fk_" + fk.Child + "_" + fk.ChildColumn)
		out.Writeln("<tr><td class='detail'>" + name + "</td><td class='detail'>" +
			c.columnLink(r, PageConstraints, fk.Child, fk.ChildColumn) + "</td><td class='detail'>" +
			c.columnLink(r, PageConstraints, fk.Parent, fk.ParentColumn) + "</td></tr>")
	}
	out.Writeln("</tbody>")
	out.Writeln("</table>")
	return c.WriteFooter(out)
}

func writeAnomaliesPage(c *Composer, out *LineWriter, r *report) error {
	if err := c.WriteHeader(out, r.db, Page(PageAnomalies), "Anomalies"); err != nil {
		return err
	}
	if len(r.anomalies) == 0 {
		out.Writeln("<p>No anomalies detected.</p>")
		return c.WriteFooter(out)
	}
	out.Writeln("<ul class='anomalies'>")
	for _, a := range r.anomalies {
		target := c.tableLink(PageAnomalies, a.Table)
		if a.Column != "" {
			target = c.columnLink(r, PageAnomalies, a.Table, a.Column)
		}
		out.Writeln("<li>" + html.EscapeString(a.Message) + ": " + target + "</li>")
	}
	out.Writeln("</ul>")
	return c.WriteFooter(out)
}

type columnRow struct {
	table  *model.Table
	column model.Column
}

func sortColumnRows(rows []columnRow, key string) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch key {
		case "table":
			if a.table.Name != b.table.Name {
				return a.table.Name < b.table.Name
			}
		case "type":
			if a.column.Type != b.column.Type {
				return a.column.Type < b.column.Type
			}
		}
		if a.column.Name != b.column.Name {
			return a.column.Name < b.column.Name
		}
		return a.table.Name < b.table.Name
	})
}

func writeColumnsPage(c *Composer, out *LineWriter, r *report, sortBy ColumnSort) error {
	scripts := []string{"sortedBy='" + sortBy.Key + "';"}
	if err := c.WriteHeaderWithScripts(out, r.db, Page(PageColumns), "Columns", scripts); err != nil {
		return err
	}

	var rows []columnRow
	for _, t := range r.db.Tables {
		for _, col := range t.Columns {
			rows = append(rows, columnRow{table: t, column: col})
		}
	}
	sortColumnRows(rows, sortBy.Key)

	out.Write("<p class='sorts'>Sort by:")
	for _, s := range ColumnSorts {
		if s.Key == sortBy.Key {
			out.Write(" <b>" + s.Label + "</b>")
			continue
		}
		out.Write(" <a href='" + ColumnsFile(s.Key) + "'>" + s.Label + "</a>")
	}
	out.Writeln("</p>")

	out.Writeln("<table class='dataTable' border='1' rules='groups'>")
	out.Writeln("<thead><tr><th>Table</th><th>Column</th><th>Type</th><th>Nulls</th><th>Comments</th></tr></thead>")
	out.Writeln("<tbody>")
	for _, row := range rows {
		nulls := ""
		if row.column.Nullable {
			nulls = "&nbsp;&nbsp;&radic;"
		}
		out.Writeln("<tr><td class='detail'>" + c.tableLink(PageColumns, row.table.Name) +
			"</td><td class='detail'>" + html.EscapeString(row.column.Name) +
			"</td><td class='detail'>" + html.EscapeString(row.column.Type) +
			"</td><td class='detail' align='center'>" + nulls +
			"</td><td class='comment detail'>" + c.comments(row.column.Comments) + "</td></tr>")
	}
	out.Writeln("</tbody>")
	out.Writeln("</table>")
	return c.WriteFooter(out)
}

func writeRoutinesPage(c *Composer, out *LineWriter, r *report) error {
	if err := c.WriteHeader(out, r.db, Page(PageRoutines), "Routines"); err != nil {
		return err
	}
	for _, routine := range r.db.Routines {
		name := html.EscapeString(routine.Name)
		out.Writeln("<h3 id='" + name + "'>" + name + "</h3>")
		signature := html.EscapeString(routine.Type)
		if routine.ReturnType != "" {
			signature += " returning " + html.EscapeString(routine.ReturnType)
		}
		out.Writeln("<p class='detail'>" + signature + "</p>")
		if routine.Comments != "" {
			out.Writeln("<p class='comment'>" + c.comments(routine.Comments) + "</p>")
		}
		if routine.Definition != "" {
			def, err := renderDefinition(routine.Definition)
			if err != nil {
				return fmt.Errorf("rendering routine %s: %w", routine.Name, err)
			}
			out.Writeln(def)
		}
	}
	return c.WriteFooter(out)
}

func writeTablePage(c *Composer, out *LineWriter, r *report, t *model.Table) error {
	if err := c.WriteHeader(out, r.db, TablePage(t), ""); err != nil {
		return err
	}

	children := r.children(t.Name)

	out.Writeln("<table class='dataTable' border='1' rules='groups'>")
	out.Writeln("<thead><tr><th>Column</th><th>Type</th><th>Nulls</th><th>Key</th><th>Parents</th><th>Children</th><th>Comments</th></tr></thead>")
	out.Writeln("<tbody>")
	for _, col := range t.Columns {
		name := html.EscapeString(col.Name)
		nulls, key := "", ""
		if col.Nullable {
			nulls = "&nbsp;&nbsp;&radic;"
		}
		if col.PrimaryKey {
			key = "PK"
		}
		out.Write("<tr><td class='detail' id='" + html.EscapeString(ColumnAnchor(col.Name)) + "'>" + name + "</td>")
		out.Write("<td class='detail'>" + html.EscapeString(col.Type) + "</td>")
		out.Write("<td class='detail' align='center'>" + nulls + "</td>")
		out.Write("<td class='detail' align='center'>" + key + "</td>")
		out.Write("<td class='detail'>")
		for _, ref := range col.References {
			out.Write(c.columnLink(r, PageTableDetail, ref.Table, ref.Column) + " ")
		}
		out.Write("</td><td class='detail'>")
		for _, rel := range children {
			if rel.ParentColumn == col.Name {
				out.Write(c.columnLink(r, PageTableDetail, rel.Child, rel.ChildColumn) + " ")
			}
		}
		out.Writeln("</td><td class='comment detail'>" + c.comments(col.Comments) + "</td></tr>")
	}
	out.Writeln("</tbody>")
	out.Writeln("</table>")
	if !t.IsView && c.caps.NumRowsEnabled {
		out.Writef("<p class='summary'>%d rows</p>\n", t.NumRows)
	}
	return c.WriteFooter(out)
}
