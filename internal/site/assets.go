package site

// cssContent is the stylesheet shared by every page.
const cssContent = `body {
  font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
  font-size: 14px;
  color: #1f2328;
  background: #ffffff;
  margin: 0;
}
a { color: #0969da; text-decoration: none; }
a:hover { text-decoration: underline; }

#headerHolder { width: 100%; background: #24292f; }
#header ul { list-style: none; margin: 0; padding: 0 8px; }
#header li { display: inline-block; }
#header li a { display: block; padding: 10px 12px; color: #f0f6fc; }
#header li#current a { background: #ffffff; color: #1f2328; font-weight: 600; }

.content { padding: 12px 16px; }
td.heading { padding: 8px 0; }
span.header { font-size: 20px; font-weight: 600; }
span.header span[title] { border-bottom: 1px dotted #8c959f; cursor: help; }
span.description { display: block; color: #57606a; margin-top: 4px; }
span.container { display: block; color: #57606a; font-size: 12px; margin: 8px 0; }
span.logo { float: right; font-weight: 600; color: #57606a; }

table.dataTable { border-collapse: collapse; margin: 12px 0; }
table.dataTable th { background: #f6f8fa; text-align: left; padding: 6px 10px; }
table.dataTable td { padding: 4px 10px; border-top: 1px solid #d0d7de; }
tr.view td:first-child { font-style: italic; }
td.comment { color: #57606a; }
p.summary, p.sorts { color: #57606a; }
pre { padding: 12px; overflow-x: auto; border-radius: 6px; }
`

// libContent holds small DOM helpers used by script.js.
const libContent = `var SchemaSite = (function() {
  function each(selector, fn) {
    var nodes = document.querySelectorAll(selector);
    for (var i = 0; i < nodes.length; i++) fn(nodes[i]);
  }
  function loadJSON(url, cb) {
    var xhr = new XMLHttpRequest();
    xhr.open("GET", url);
    xhr.onload = function() {
      if (xhr.status === 200) cb(JSON.parse(xhr.responseText));
    };
    xhr.send();
  }
  return { each: each, loadJSON: loadJSON };
})();
`

// jsContent highlights the row of the current table and column anchor.
const jsContent = `(function() {
  function highlightAnchor() {
    if (!location.hash) return;
    var id = decodeURIComponent(location.hash.substring(1));
    var cell = document.getElementById(id);
    if (cell && cell.parentNode) cell.parentNode.style.background = "#fff8c5";
  }
  window.addEventListener("hashchange", highlightAnchor);
  document.addEventListener("DOMContentLoaded", function() {
    highlightAnchor();
    if (typeof table !== "undefined") {
      document.title = document.title + " [" + table + "]";
    }
    if (typeof sortedBy !== "undefined") {
      SchemaSite.each("p.sorts b", function(b) { b.className = "sorted-" + sortedBy; });
    }
  });
})();
`
