package site

// AboutURL is the fixed informational link closing the navigation bar.
const AboutURL = "https://github.com/ziadkadry99/schemasite"

type navItem struct {
	entry NavEntry
	label string
	title string
	// href is relative to the output root unless external is set.
	href     func(Routes) string
	external bool
}

// navItems is the navigation bar in display order.
var navItems = []navItem{
	{entry: NavSchemas, label: "Schemas", title: "All Schemas Evaluated",
		href: func(Routes) string { return "../index.html" }},
	{entry: NavTables, label: "Tables", title: "All tables and views in the schema",
		href: func(r Routes) string { return r.Fragment(PageMainIndex) }},
	{entry: NavRelationships, label: "Relationships", title: "Table relationships",
		href: func(r Routes) string { return r.Fragment(PageRelationships) }},
	{entry: NavUtilities, label: "Utility&nbsp;Tables", title: "View of tables with neither parents nor children",
		href: func(r Routes) string { return r.Fragment(PageOrphans) }},
	{entry: NavConstraints, label: "Constraints", title: "Useful for diagnosing error messages that just give constraint name or number",
		href: func(r Routes) string { return r.Fragment(PageConstraints) }},
	{entry: NavAnomalies, label: "Anomalies", title: "Things that might not be quite right",
		href: func(r Routes) string { return r.Fragment(PageAnomalies) }},
	{entry: NavColumns, label: "Columns", title: "All of the columns in the schema",
		href: func(r Routes) string { return r.Fragment(PageColumns) }},
	{entry: NavRoutines, label: "Routines", title: "Stored Procedures / Functions",
		href: func(r Routes) string { return r.Fragment(PageRoutines) }},
	{entry: NavAbout, label: "About", title: "About this report generator",
		href: func(Routes) string { return AboutURL }, external: true},
}

// navIncluded reports whether the capability snapshot shows entry at all.
func (c *Composer) navIncluded(entry NavEntry) bool {
	switch entry {
	case NavSchemas:
		return c.caps.OneOfMultipleSchemas
	case NavUtilities:
		return c.caps.HasOrphans
	case NavRoutines:
		return c.caps.HasRoutines
	default:
		return true
	}
}

// writeNavigation writes the navigation bar for a page of kind.
// A table is used to keep a horizontal scrollbar from showing up.
func (c *Composer) writeNavigation(out *LineWriter, kind PageKind) {
	path := kind.PathToRoot()

	out.Writeln("<table id='headerHolder' cellspacing='0' cellpadding='0'><tr><td>")
	out.Writeln("<div id='header'>")
	out.Writeln(" <ul>")
	for _, item := range navItems {
		if !c.navIncluded(item.entry) {
			continue
		}
		out.Write("  <li")
		if IsCurrent(kind, item.entry) {
			out.Write(" id='current'")
		}
		if item.external {
			out.Writeln("><a href='" + item.href(c.routes) + "' title='" + item.title + "' target='_blank'>" + item.label + "</a></li>")
			continue
		}
		out.Writeln("><a href='" + path + item.href(c.routes) + "' title='" + item.title + "'>" + item.label + "</a></li>")
	}
	out.Writeln(" </ul>")
	out.Writeln("</div>")
	out.Writeln("</td></tr></table>")
}
