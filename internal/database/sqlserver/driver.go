package sqlserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joacominatel/accessdbcheck/internal/database"
)

// Driver implements the database.Driver interface for SQL Server over a
// database/sql binding ("odbc" or "sqlserver").
type Driver struct {
	name string
	db   *sqlx.DB
}

// New creates a driver that opens connections with the named binding.
func New(name string) *Driver {
	return &Driver{name: name}
}

// Name returns the binding name.
func (d *Driver) Name() string {
	return d.name
}

// Available reports whether the binding is registered with database/sql.
func (d *Driver) Available() bool {
	return database.Registered(d.name)
}

// Connect opens a single-connection handle and pings it.
func (d *Driver) Connect(ctx context.Context, dsn string) error {
	db, err := sqlx.Open(d.name, dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		if driverNotFound(err) {
			return fmt.Errorf("ping: %w: %w", database.ErrDriverNotFound, err)
		}
		return fmt.Errorf("ping: %w", err)
	}

	d.db = db
	return nil
}

// Close closes the connection handle.
func (d *Driver) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// ExecuteQuery runs a SQL query and returns the results.
func (d *Driver) ExecuteQuery(ctx context.Context, query string) (*database.QueryResult, error) {
	if d.db == nil {
		return nil, errors.New("not connected")
	}

	start := time.Now()

	rows, err := d.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var resultRows [][]any
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		resultRows = append(resultRows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return &database.QueryResult{
		Columns:  columns,
		Rows:     resultRows,
		RowCount: len(resultRows),
		Duration: time.Since(start),
	}, nil
}
