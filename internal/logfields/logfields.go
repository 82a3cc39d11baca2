package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPage       = "page"
	KeyPageKind   = "page_kind"
	KeyTable      = "table"
	KeyPath       = "path"
	KeyCharset    = "charset"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyAddr       = "addr"
	KeyError      = "error"
)

func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Page(p string) slog.Attr         { return slog.String(KeyPage, p) }
func PageKind(k string) slog.Attr     { return slog.String(KeyPageKind, k) }
func Table(name string) slog.Attr     { return slog.String(KeyTable, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Charset(c string) slog.Attr      { return slog.String(KeyCharset, c) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
