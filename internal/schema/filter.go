package schema

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/schemasite/internal/model"
)

// Filter returns a copy of db holding only the tables whose names match an
// include pattern and no exclude pattern. An empty include list keeps every
// table. Patterns use doublestar glob syntax.
func Filter(db *model.Database, include, exclude []string) *model.Database {
	out := *db
	out.Tables = nil
	for _, t := range db.Tables {
		if MatchesInclude(t.Name, include) && !MatchesExclude(t.Name, exclude) {
			out.Tables = append(out.Tables, t)
		}
	}
	return &out
}

// MatchesInclude returns true if name matches any of the include patterns.
// If patterns is empty, everything is included.
func MatchesInclude(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(name, patterns)
}

// MatchesExclude returns true if name matches any of the exclude patterns.
// If patterns is empty, nothing is excluded.
func MatchesExclude(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(name, patterns)
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}
