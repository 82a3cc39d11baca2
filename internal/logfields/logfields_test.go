package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Page", KeyPage, "index.html", Page("index.html")},
		{"PageKind", KeyPageKind, "columns", PageKind("columns")},
		{"Table", KeyTable, "orders", Table("orders")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Charset", KeyCharset, "UTF-8", Charset("UTF-8")},
		{"Addr", KeyAddr, ":8080", Addr(":8080")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if tc.attr.Value.String() != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, tc.attr.Value.String())
		}
	}
}

func TestErrorAttr(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("nil error: got %q", got)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("error: got %q", got)
	}
}

func TestCountAttr(t *testing.T) {
	a := Count(3)
	if a.Key != KeyCount || a.Value.Int64() != 3 {
		t.Fatalf("unexpected attr %v", a)
	}
}
