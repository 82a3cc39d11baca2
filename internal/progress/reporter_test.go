package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestReportersTolerateUpdatesBeforeStart(t *testing.T) {
	var r TerminalReporter
	r.Update(1, "index.html")
	r.Finish()

	var n Nop
	n.Start(3)
	n.Update(1, "x")
	n.Failed("x")
	n.Finish()
}

func TestCIReporterCountsFailedPages(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Start(3)
	r.Update(1, "index.html")
	r.Failed("tables/orders.html")
	r.Update(2, "tables/orders.html")
	r.Update(3, "columns.byColumn.html")
	r.Finish()

	out := buf.String()
	for _, want := range []string{
		"Writing 3 report pages\n",
		"[1/3] index.html\n",
		"FAILED tables/orders.html\n",
		"Report generation complete: 2 pages written, 1 failed\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporterRecordsFailures(t *testing.T) {
	var r TerminalReporter
	r.Failed("tables/a.html")
	r.Failed("tables/b.html")
	if len(r.failed) != 2 {
		t.Errorf("failed = %v, want 2 pages", r.failed)
	}
}
