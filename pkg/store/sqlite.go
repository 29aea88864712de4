// Package store persists the processed normas table into a SQLite database
// indexed for citation matching. Writes are destructive: an existing database
// at the target path is removed first, so each conversion run fully replaces
// the previous one.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/tabular"
)

// TableName is the output table citation consumers query.
const TableName = "articulos"

// indexDDL builds the secondary indexes citation matching relies on: the two
// single-column lookups, the article index, and the composite pairs used when
// a citation carries both a key and a locator.
var indexDDL = []string{
	`CREATE INDEX IF NOT EXISTS idx_clave ON articulos(clave)`,
	`CREATE INDEX IF NOT EXISTS idx_nombreparte ON articulos(nombreparte_normalizado)`,
	`CREATE INDEX IF NOT EXISTS idx_numero_articulo ON articulos(numero_articulo)`,
	`CREATE INDEX IF NOT EXISTS idx_clave_nombreparte ON articulos(clave, nombreparte_normalizado)`,
	`CREATE INDEX IF NOT EXISTS idx_clave_numero ON articulos(clave, numero_articulo)`,
}

// Write persists the table into a fresh SQLite database at path. All rows are
// inserted in a single transaction; absent cells become NULL. Indexes whose
// columns the table does not carry are skipped.
func Write(path string, t *tabular.Table) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table has no columns")
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing database: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createTableDDL(t.Columns)); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	if err := insertRows(db, t); err != nil {
		return err
	}

	for _, ddl := range indexDDL {
		if !hasIndexColumns(t, ddl) {
			continue
		}
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func insertRows(db *sql.DB, t *tabular.Table) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertDDL(t.Columns))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			if value, ok := row[col]; ok {
				args[i] = value
			} else {
				args[i] = nil
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func createTableDDL(columns []string) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", TableName, strings.Join(defs, ", "))
}

func insertDDL(columns []string) string {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		TableName, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
}

// quoteIdent quotes a column identifier; source headers are free text and may
// collide with SQL keywords or carry odd characters.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// hasIndexColumns reports whether the table declares every column the index
// statement references.
func hasIndexColumns(t *tabular.Table, ddl string) bool {
	start := strings.LastIndex(ddl, "(")
	end := strings.LastIndex(ddl, ")")
	if start < 0 || end < start {
		return false
	}
	for _, col := range strings.Split(ddl[start+1:end], ",") {
		if !t.HasColumn(strings.TrimSpace(col)) {
			return false
		}
	}
	return true
}
