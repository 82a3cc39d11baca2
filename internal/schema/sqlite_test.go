package schema

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSQLite(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop.db")
	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer sqlDB.Close()
	for _, s := range stmts {
		_, err := sqlDB.Exec(s)
		require.NoError(t, err, s)
	}
	return path
}

func TestIntrospect(t *testing.T) {
	path := createSQLite(t,
		`CREATE TABLE customers (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`,
		`CREATE TABLE orders (id INTEGER PRIMARY KEY, customer_id INTEGER REFERENCES customers, note TEXT)`,
		`CREATE TABLE audit (msg TEXT)`,
		`CREATE VIEW v_totals AS SELECT count(*) AS n FROM orders`,
		`INSERT INTO customers (name) VALUES ('a'), ('b')`,
	)

	db, err := Introspect(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "shop", db.Name)
	assert.Equal(t, "main", db.Schema)
	require.Len(t, db.Tables, 4)

	customers := db.Table("customers")
	require.NotNil(t, customers)
	assert.Equal(t, int64(2), customers.NumRows)
	assert.True(t, customers.Columns[0].PrimaryKey)
	assert.False(t, customers.Columns[1].Nullable)

	orders := db.Table("orders")
	require.NotNil(t, orders)
	require.Len(t, orders.Columns, 3)
	fk := orders.Columns[1]
	assert.True(t, fk.Nullable)
	require.Len(t, fk.References, 1)
	assert.Equal(t, "customers", fk.References[0].Table)
	assert.Equal(t, "id", fk.References[0].Column, "implicit parent column resolves to the primary key")

	view := db.Table("v_totals")
	require.NotNil(t, view)
	assert.True(t, view.IsView)
	assert.Equal(t, "n", view.Columns[0].Name)
}

func TestIntrospectMissingFile(t *testing.T) {
	_, err := Introspect(context.Background(), filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}
