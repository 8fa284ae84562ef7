package main

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/joacominatel/accessdbcheck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	_ "modernc.org/sqlite"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	keyring.MockInit()
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_Success(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "access.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE AccessRequest (Id INTEGER PRIMARY KEY, Status TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO AccessRequest (Id, Status) VALUES (1, 'Open')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	code, stdout, stderr := run(t, "--driver", "sqlite", "--dsn", path)

	assert.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Validating connection to AccessDb...")
	assert.Contains(t, stdout, "Using connection string: "+path)
	assert.Contains(t, stdout, "Found 1 records in AccessRequest table")
	assert.Contains(t, stdout, "Connection validation successful!")
}

func TestExecute_DriverMissing(t *testing.T) {
	isolate(t)
	t.Setenv("ACCESSDB_CONNECTION_PASSWORD", "P@ssword92")

	code, stdout, _ := run(t, "--driver", "no-such-binding")

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Password=********;")
	assert.NotContains(t, stdout, "P@ssword92")
	assert.Contains(t, stdout, "no-such-binding driver binding not available")
	assert.Contains(t, stdout, "Connection validation failed!")
}

func TestExecute_DebugLogNamesTarget(t *testing.T) {
	isolate(t)
	t.Setenv("ACCESSDB_CONNECTION_PASSWORD", "P@ssword92")

	code, _, stderr := run(t, "--driver", "no-such-binding", "--log-level", "debug")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "descriptor built")
	assert.Contains(t, stderr, "target=sa@localhost,1433/AccessDb")
	assert.NotContains(t, stderr, "P@ssword92")
}

func TestExecute_RawURLMasked(t *testing.T) {
	isolate(t)

	code, stdout, stderr := run(t,
		"--driver", "no-such-binding",
		"--log-level", "debug",
		"--dsn", "sqlserver://sa:TopSecret9@db:1433?database=AccessDb")

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Using connection string: sqlserver://sa:********@db:1433?database=AccessDb")
	assert.NotContains(t, stdout, "TopSecret9")
	assert.NotContains(t, stderr, "TopSecret9")
}

func TestExecute_ConfigError(t *testing.T) {
	isolate(t)

	code, stdout, stderr := run(t, "--format", "xml")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "config error")
	assert.Contains(t, stderr, "check.format")
}

func TestExecute_RejectsArgs(t *testing.T) {
	isolate(t)

	code, _, stderr := run(t, "extra")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestODBCExample(t *testing.T) {
	got := odbcExample(config.Connection{
		DSN:                    "sqlserver://sa:x@db",
		Driver:                 config.DriverSQLServer,
		ODBCDriver:             "ODBC Driver 17 for SQL Server",
		Host:                   "192.168.86.45",
		Port:                   1433,
		Database:               "AccessDb",
		Username:               "sa",
		Password:               "P@ssword92",
		TrustServerCertificate: true,
	})

	assert.Equal(t,
		"Driver={ODBC Driver 17 for SQL Server};Server=192.168.86.45,1433;Database=AccessDb;Uid=sa;Pwd=********;TrustServerCertificate=yes;",
		got)
}
