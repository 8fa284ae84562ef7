package app

import "fmt"

// ErrDriverMissing reports that the database/sql binding is not available.
type ErrDriverMissing struct {
	Driver string
}

func (e *ErrDriverMissing) Error() string {
	return fmt.Sprintf("driver %q not available", e.Driver)
}

// ErrConnection represents a database connection error.
type ErrConnection struct {
	Cause error
	// DriverNotFound is set when the driver manager could not locate the
	// driver named in the connection string.
	DriverNotFound bool
}

func (e *ErrConnection) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ErrConnection) Unwrap() error {
	return e.Cause
}

// ErrQuery represents a query execution error.
type ErrQuery struct {
	Query string
	Cause error
}

func (e *ErrQuery) Error() string {
	return fmt.Sprintf("query error: %v", e.Cause)
}

func (e *ErrQuery) Unwrap() error {
	return e.Cause
}

// ErrConfig represents a configuration error.
type ErrConfig struct {
	Cause error
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("config error: %v", e.Cause)
}

func (e *ErrConfig) Unwrap() error {
	return e.Cause
}
