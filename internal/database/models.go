package database

import (
	"fmt"
	"time"
)

// QueryResult holds the result of a SQL query execution.
type QueryResult struct {
	Columns  []string
	Rows     [][]any
	RowCount int
	Duration time.Duration
}

// Empty reports whether the query returned no rows.
func (r *QueryResult) Empty() bool {
	return r == nil || r.RowCount == 0
}

// Head returns at most n rows from the start of the result.
func (r *QueryResult) Head(n int) [][]any {
	if r == nil || n <= 0 {
		return nil
	}
	if n > len(r.Rows) {
		n = len(r.Rows)
	}
	return r.Rows[:n]
}

// FormatValue renders a column value for display.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
