package schema

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ziadkadry99/schemasite/internal/model"
)

// Introspect reads tables, views, columns, foreign keys and row counts from
// the SQLite database at path. The database name is the file name without
// its extension and the schema is "main".
func Introspect(ctx context.Context, path string) (*model.Database, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &model.Database{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Schema: "main",
	}

	rows, err := sqlDB.QueryContext(ctx, `
		SELECT name, type FROM sqlite_master
		WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	for rows.Next() {
		var name, kind string
		if err := rows.Scan(&name, &kind); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning table: %w", err)
		}
		db.Tables = append(db.Tables, &model.Table{Name: name, IsView: kind == "view"})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	rows.Close()

	for _, t := range db.Tables {
		if err := readColumns(ctx, sqlDB, t); err != nil {
			return nil, err
		}
		if t.IsView {
			continue
		}
		if err := readForeignKeys(ctx, sqlDB, t); err != nil {
			return nil, err
		}
		if err := sqlDB.QueryRowContext(ctx, "SELECT count(*) FROM "+quoteIdent(t.Name)).Scan(&t.NumRows); err != nil {
			return nil, fmt.Errorf("counting rows of %s: %w", t.Name, err)
		}
	}

	resolveImplicitReferences(db)
	return db, nil
}

func readColumns(ctx context.Context, sqlDB *sql.DB, t *model.Table) error {
	rows, err := sqlDB.QueryContext(ctx, `SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`, t.Name)
	if err != nil {
		return fmt.Errorf("reading columns of %s: %w", t.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c       model.Column
			notNull int
			pk      int
		)
		if err := rows.Scan(&c.Name, &c.Type, &notNull, &pk); err != nil {
			return fmt.Errorf("scanning column of %s: %w", t.Name, err)
		}
		c.Nullable = notNull == 0 && pk == 0
		c.PrimaryKey = pk > 0
		t.Columns = append(t.Columns, c)
	}
	return rows.Err()
}

func readForeignKeys(ctx context.Context, sqlDB *sql.DB, t *model.Table) error {
	rows, err := sqlDB.QueryContext(ctx, `SELECT "table", "from", "to" FROM pragma_foreign_key_list(?) ORDER BY id, seq`, t.Name)
	if err != nil {
		return fmt.Errorf("reading foreign keys of %s: %w", t.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			parent, from string
			to           sql.NullString
		)
		if err := rows.Scan(&parent, &from, &to); err != nil {
			return fmt.Errorf("scanning foreign key of %s: %w", t.Name, err)
		}
		for i := range t.Columns {
			if t.Columns[i].Name == from {
				t.Columns[i].References = append(t.Columns[i].References, model.ColumnRef{Table: parent, Column: to.String})
			}
		}
	}
	return rows.Err()
}

// resolveImplicitReferences fills in the parent column of foreign keys
// declared without one, which SQLite resolves to the parent's primary key.
func resolveImplicitReferences(db *model.Database) {
	for _, t := range db.Tables {
		for i := range t.Columns {
			refs := t.Columns[i].References
			for j := range refs {
				if refs[j].Column != "" {
					continue
				}
				if parent := db.Table(refs[j].Table); parent != nil {
					for _, pc := range parent.Columns {
						if pc.PrimaryKey {
							refs[j].Column = pc.Name
							break
						}
					}
				}
			}
		}
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
