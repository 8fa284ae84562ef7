package database

import (
	"context"
	"database/sql"
	"errors"
	"slices"
)

// Driver defines the operations the validator needs from a database binding.
// A Driver holds at most one open connection.
type Driver interface {
	// Name returns the database/sql driver name, e.g. "odbc" or "sqlserver".
	Name() string

	// Available reports whether the binding is compiled in and registered.
	Available() bool

	// Connect opens the connection and verifies it with a ping.
	Connect(ctx context.Context, dsn string) error

	// Close releases the connection. It is safe to call on an unconnected driver.
	Close() error

	// ExecuteQuery runs a SQL query and fully materialises its results.
	ExecuteQuery(ctx context.Context, query string) (*QueryResult, error)
}

// Registered reports whether a database/sql driver with the given name exists.
func Registered(name string) bool {
	return slices.Contains(sql.Drivers(), name)
}

// ErrDriverNotFound marks connect errors where the driver manager could not
// locate the driver named in the connection string.
var ErrDriverNotFound = errors.New("odbc driver not found")
