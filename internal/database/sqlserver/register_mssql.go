package sqlserver

// Registers the native TDS bindings "sqlserver" and "mssql".
import _ "github.com/microsoft/go-mssqldb"
