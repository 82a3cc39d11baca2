package site

import (
	"github.com/ziadkadry99/schemasite/internal/model"
)

// ProductName prefixes page titles.
const ProductName = "SchemaSite"

// WriteHeader writes everything up to the start of the page body: head with
// assets, navigation bar, and the heading block. It is WriteHeaderWithScripts
// without caller scripts.
func (c *Composer) WriteHeader(out *LineWriter, db *model.Database, page PageContext, text string) error {
	return c.WriteHeaderWithScripts(out, db, page, text, nil)
}

// WriteHeaderWithScripts writes the page header. Non-nil scripts are emitted
// verbatim, in order, in their own script block. Any write error is returned
// as is and the caller should abandon the page.
func (c *Composer) WriteHeaderWithScripts(out *LineWriter, db *model.Database, page PageContext, text string, scripts []string) error {
	path := page.PathToRoot()
	table := page.Table

	out.Writeln("<!DOCTYPE HTML PUBLIC '-//W3C//DTD HTML 4.01 Transitional//EN' 'http://www.w3.org/TR/html4/loose.dtd'>")
	out.Writeln("<html>")
	out.Writeln("<head>")
	out.Writeln("  <!-- schemasite " + c.Version + " -->")
	out.Write("  <title>" + ProductName + " - ")
	out.Write(Description(db, table, text, false))
	out.Writeln("</title>")
	out.Writeln("  <link rel=stylesheet href='" + path + StylesheetFile + "' type='text/css'>")
	out.Writeln("  <meta HTTP-EQUIV='Content-Type' CONTENT='text/html; charset=" + c.caps.Charset + "'>")
	out.Writeln("  <script type='text/javascript' src='" + path + LibraryFile + "'></script>")
	out.Writeln("  <script type='text/javascript' src='" + path + ScriptFile + "'></script>")
	if table != nil {
		out.Writeln("  <script type='text/javascript'>")
		out.Writeln("    table='" + table.String() + "';")
		out.Writeln("  </script>")
	}
	if scripts != nil {
		out.Writeln("  <script type='text/javascript'>")
		for _, line := range scripts {
			out.Writeln("    " + line)
		}
		out.Writeln("  </script>")
	}
	out.Writeln("</head>")
	out.Writeln("<body>")
	c.writeNavigation(out, page.Kind)
	out.Writeln("<div class='content' style='clear:both;'>")
	out.Writeln("<table width='100%' border='0' cellpadding='0'>")
	out.Writeln(" <tr>")
	out.Write("  <td class='heading' valign='middle'>")
	out.Write("<span class='header'>")
	if table == nil {
		out.Write(ProductName + " Analysis of ")
	}
	out.Write(Description(db, table, text, true))
	out.Write("</span>")
	if table == nil && db.Description != "" {
		out.Write("<span class='description'>" + unescapeDescription(db.Description) + "</span>")
	}

	if table != nil && table.Comments != "" {
		out.Write("<div style='padding: 0px 4px;'>")
		if c.caps.EncodeComments {
			for _, r := range table.Comments {
				out.Write(EncodeToken(r))
			}
		} else {
			out.Write(table.Comments)
		}
		out.Writeln("</div><p>")
	}
	out.Writeln("</td>")
	out.Writeln(" </tr>")
	out.Writeln("</table>")

	return out.Err()
}

// WriteGeneratedOn writes the "Generated on" badge used by summary pages.
func (c *Composer) WriteGeneratedOn(out *LineWriter, connectTime string) error {
	out.Write("<span class='container'>")
	out.Write("Generated on ")
	out.Write(connectTime)
	out.Writeln("</span>")
	return out.Err()
}
