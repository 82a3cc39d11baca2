package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/schemasite/internal/model"
)

func analysisFixture() *model.Database {
	return &model.Database{
		Name: "sales",
		Tables: []*model.Table{
			{Name: "customers", Columns: []model.Column{{Name: "id", PrimaryKey: true}, {Name: "name"}}},
			{Name: "orders", Columns: []model.Column{
				{Name: "id", PrimaryKey: true},
				{Name: "customer_id", Nullable: true, References: []model.ColumnRef{{Table: "customers", Column: "id"}}},
				{Name: "region_id", References: []model.ColumnRef{{Table: "regions", Column: "id"}}},
			}},
			{Name: "settings", Columns: []model.Column{{Name: "value"}}},
			{Name: "v_totals", IsView: true, Columns: []model.Column{{Name: "n"}}},
		},
	}
}

func TestRelationships(t *testing.T) {
	rels := Relationships(analysisFixture())
	require.Len(t, rels, 1, "references to tables outside the report are skipped")
	assert.Equal(t, Relationship{Child: "orders", ChildColumn: "customer_id", Parent: "customers", ParentColumn: "id"}, rels[0])
}

func TestConstraints(t *testing.T) {
	assert.Len(t, Constraints(analysisFixture()), 2)
}

func TestOrphans(t *testing.T) {
	orphans := Orphans(analysisFixture())
	require.Len(t, orphans, 1)
	assert.Equal(t, "settings", orphans[0].Name)
}

func TestAnomalies(t *testing.T) {
	found := Anomalies(analysisFixture())

	var messages []string
	for _, a := range found {
		messages = append(messages, a.Table+":"+a.Column+":"+a.Message)
	}
	assert.ElementsMatch(t, []string{
		"orders:customer_id:Foreign key column is nullable",
		"settings::Table has no primary key",
		"settings:value:Table has only one column",
	}, messages)
}
