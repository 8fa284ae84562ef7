package sqlserver

import (
	"slices"
	"strings"
)

// SQLSTATE the ODBC driver manager returns when the driver named in the
// connection string is not installed or not registered in odbcinst.ini.
const stateDriverNotFound = "IM002"

// sqlStates extracts the SQLSTATE codes carried by err. The odbc binding
// replaces it with a typed implementation.
var sqlStates = func(error) []string { return nil }

func driverNotFound(err error) bool {
	if err == nil {
		return false
	}
	if slices.Contains(sqlStates(err), stateDriverNotFound) {
		return true
	}
	return strings.Contains(err.Error(), stateDriverNotFound)
}
