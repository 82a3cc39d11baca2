// Package schema loads database schemas for the report and derives the
// relationship views shown on its pages.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/schemasite/internal/model"
)

// LoadFile reads a YAML schema snapshot.
func LoadFile(path string) (*model.Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML schema snapshot.
func Parse(data []byte) (*model.Database, error) {
	var db model.Database
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if db.Name == "" {
		return nil, fmt.Errorf("schema has no database name")
	}
	for i, t := range db.Tables {
		if t == nil || t.Name == "" {
			return nil, fmt.Errorf("table #%d has no name", i+1)
		}
	}
	return &db, nil
}
