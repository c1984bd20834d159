package ioexport_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/gnflora/internal/iodata"
	"github.com/gnames/gnflora/internal/ioexport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestExport(t *testing.T) {
	ctx := context.Background()
	records, err := iodata.Load("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gnflora.db")
	count, err := ioexport.Export(ctx, path, records)
	require.NoError(t, err)
	assert.Equal(t, len(records), count)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var rows int
	err = db.QueryRowContext(ctx,
		"SELECT count(*) FROM formulae").Scan(&rows)
	require.NoError(t, err)
	assert.Equal(t, len(records), rows)

	var formula, explanation string
	err = db.QueryRowContext(ctx,
		"SELECT formula, explanation FROM formulae WHERE family = ?",
		"orchidaceae").Scan(&formula, &explanation)
	require.NoError(t, err)
	assert.Equal(t, "X(↑),T5+1,A1-2,̅G3;capsule", formula)
	assert.Contains(t, explanation, "Explanation of floral formula above:")
}

// TestExportReplace verifies re-exporting replaces the table instead
// of appending to it.
func TestExportReplace(t *testing.T) {
	ctx := context.Background()
	records, err := iodata.Load("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gnflora.db")
	_, err = ioexport.Export(ctx, path, records)
	require.NoError(t, err)
	_, err = ioexport.Export(ctx, path, records)
	require.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var rows int
	err = db.QueryRowContext(ctx,
		"SELECT count(*) FROM formulae").Scan(&rows)
	require.NoError(t, err)
	assert.Equal(t, len(records), rows)
}

func TestExportBadPath(t *testing.T) {
	records, err := iodata.Load("")
	require.NoError(t, err)

	dir := t.TempDir()
	_, err = ioexport.Export(context.Background(),
		filepath.Join(dir, "missing", "gnflora.db"), records)
	assert.Error(t, err, "parent directory does not exist")
}
