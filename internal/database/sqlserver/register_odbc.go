//go:build odbc

package sqlserver

import (
	"errors"

	"github.com/alexbrainman/odbc"
)

// The odbc binding needs cgo and the unixODBC headers, so it is only
// compiled in with -tags odbc.
func init() {
	sqlStates = func(err error) []string {
		var odbcErr *odbc.Error
		if !errors.As(err, &odbcErr) {
			return nil
		}
		states := make([]string, 0, len(odbcErr.Diag))
		for _, d := range odbcErr.Diag {
			states = append(states, d.State)
		}
		return states
	}
}
