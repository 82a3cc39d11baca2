package site

// meterSnippet is the usage-metering counter shown on sample reports.
var meterSnippet = []string{
	"<span style='float: right;' title='This link is only on the sample pages'>",
	"<!-- Site Meter -->",
	"<script type='text/javascript' src='http://s28.sitemeter.com/js/counter.js?site=s28schemaspy'>",
	"</script>",
	"<noscript>",
	"<a href='http://s28.sitemeter.com/stats.asp?site=s28schemaspy' target='_top'>",
	"<img src='http://s28.sitemeter.com/meter.asp?site=s28schemaspy' alt='Site Meter' border='0'/></a>",
	"</noscript>",
	"<!-- Copyright (c)2006 Site Meter -->",
	"</span>",
}

// WriteFooter closes the content wrapper opened by the header, adds the
// metering snippet when enabled, and closes the document.
func (c *Composer) WriteFooter(out *LineWriter) error {
	out.Writeln("</div>")
	if c.caps.MeterEnabled {
		for _, line := range meterSnippet {
			out.Writeln(line)
		}
	}
	out.Writeln("</body>")
	out.Writeln("</html>")
	return out.Err()
}
