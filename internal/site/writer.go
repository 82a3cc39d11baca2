package site

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LineWriter is the output sink for a single page. The first write error
// sticks: later writes are dropped and Err returns that error unchanged.
type LineWriter struct {
	w     io.Writer
	flush func() error
	close func() error
	err   error
}

// NewLineWriter returns an unbuffered LineWriter over w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// CreatePage creates (or truncates) the file at path, making parent
// directories as needed. The caller must Close the returned writer on every
// path, including after a write failure.
func CreatePage(path string) (*LineWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(f)
	return &LineWriter{w: bw, flush: bw.Flush, close: f.Close}, nil
}

// Write appends s.
func (lw *LineWriter) Write(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s)
}

// Writeln appends s followed by a newline.
func (lw *LineWriter) Writeln(s string) {
	lw.Write(s)
	lw.Write("\n")
}

// Writef appends a formatted string.
func (lw *LineWriter) Writef(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

// Err returns the first write error, if any.
func (lw *LineWriter) Err() error {
	return lw.err
}

// Close flushes buffered output and releases the underlying file. It returns
// the first write error if there was one, otherwise any flush or close error.
func (lw *LineWriter) Close() error {
	err := lw.err
	if lw.flush != nil && err == nil {
		err = lw.flush()
	}
	if lw.close != nil {
		if cerr := lw.close(); err == nil {
			err = cerr
		}
		lw.close = nil
	}
	if lw.err == nil {
		lw.err = err
	}
	return err
}
