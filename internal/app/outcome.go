package app

import "github.com/joacominatel/accessdbcheck/internal/database"

// Status classifies how a validation run ended.
type Status int

const (
	StatusSuccess Status = iota
	StatusDriverMissing
	StatusConnectionFailed
	StatusQueryFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusDriverMissing:
		return "driver_missing"
	case StatusConnectionFailed:
		return "connection_failed"
	case StatusQueryFailed:
		return "query_failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one validation run.
type Outcome struct {
	Status Status
	// Result is set on success, including when the table is empty.
	Result *database.QueryResult
	Err    error
}

// OK reports whether validation succeeded.
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

// ExitCode maps the outcome to a process exit status.
func (o Outcome) ExitCode() int {
	if o.OK() {
		return 0
	}
	return 1
}
