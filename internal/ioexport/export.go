// Package ioexport materializes the floral dataset into a SQLite file,
// so other tools can query formulae without going through gnflora.
package ioexport

import (
	"context"
	"database/sql"

	"github.com/gnames/gnflora/pkg/floral"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS formulae (
  id          INTEGER PRIMARY KEY,
  order_name  TEXT NOT NULL,
  family      TEXT NOT NULL,
  sex         TEXT NOT NULL,
  formula     TEXT NOT NULL,
  explanation TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_formulae_family ON formulae (family);
CREATE INDEX IF NOT EXISTS idx_formulae_order ON formulae (order_name);
`

const insertSQL = `
INSERT INTO formulae (order_name, family, sex, formula, explanation)
VALUES (?, ?, ?, ?, ?)
`

// Export writes all records into a SQLite database at path, with both
// the rendered formula and its explanation. An existing formulae table
// is replaced. Returns the number of exported rows.
func Export(
	ctx context.Context,
	path string,
	records []floral.Record,
) (int, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, OpenError(path, err)
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, "DROP TABLE IF EXISTS formulae"); err != nil {
		return 0, SchemaError(path, err)
	}
	if _, err = db.ExecContext(ctx, schemaSQL); err != nil {
		return 0, SchemaError(path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, WriteError(path, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return 0, WriteError(path, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err = stmt.ExecContext(ctx,
			rec.Order,
			rec.Family,
			rec.Sex.String(),
			rec.Formula.String(),
			rec.Explain(0),
		)
		if err != nil {
			return 0, WriteError(path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, WriteError(path, err)
	}
	return len(records), nil
}
