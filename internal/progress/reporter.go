package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while report pages are written.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	// Failed records a page that could not be written.
	Failed(page string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar    *progressbar.ProgressBar
	failed []string
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Writing pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Failed(page string) {
	r.failed = append(r.failed, page)
}

// Finish clears the bar and lists the pages that failed, if any.
func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
	if len(r.failed) > 0 {
		fmt.Fprintf(os.Stderr, "%d pages failed: %s\n", len(r.failed), strings.Join(r.failed, ", "))
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	// Out defaults to os.Stderr.
	Out io.Writer

	total   int
	written int
	failed  int
}

func (r *CIReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.out(), "Writing %d report pages\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	r.written = current - r.failed
	fmt.Fprintf(r.out(), "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Failed(page string) {
	r.failed++
	fmt.Fprintf(r.out(), "FAILED %s\n", page)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.out(), "Report generation complete: %d pages written, %d failed\n", r.written, r.failed)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Failed(string)      {}
func (Nop) Finish()            {}
