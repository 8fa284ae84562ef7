package app

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/joacominatel/accessdbcheck/internal/config"
	"github.com/joacominatel/accessdbcheck/internal/database/sqlserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// Runs the full path through the sqlx-backed driver against an embedded
// SQLite database standing in for SQL Server.
func TestValidate_SQLDriverEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE AccessRequest (Id INTEGER PRIMARY KEY, Status TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO AccessRequest (Id, Status) VALUES (1, 'Open'), (2, 'Closed')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	var out bytes.Buffer
	v := newTestValidator(sqlserver.New("sqlite"), &out)

	outcome := v.Validate(context.Background(), config.Descriptor{Driver: "sqlite", String: path})

	require.True(t, outcome.OK(), "outcome error: %v", outcome.Err)
	assert.Equal(t, 2, outcome.Result.RowCount)
	text := out.String()
	assert.Contains(t, text, "Columns: Id, Status\n")
	assert.Contains(t, text, "Found 2 records in AccessRequest table\n")
	assert.Contains(t, text, "Row 1:\n  Id: 1\n  Status: Open\n")
	assert.Contains(t, text, "Row 2:\n  Id: 2\n  Status: Closed\n")
}

func TestValidate_SQLDriverMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	var out bytes.Buffer
	v := newTestValidator(sqlserver.New("sqlite"), &out)

	outcome := v.Validate(context.Background(), config.Descriptor{Driver: "sqlite", String: path})

	assert.Equal(t, StatusQueryFailed, outcome.Status)
	assert.Contains(t, out.String(), "Connection error:")
}
