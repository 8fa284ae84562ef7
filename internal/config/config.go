package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Output formats for the row preview.
const (
	FormatDetail = "detail"
	FormatTable  = "table"
)

// Config represents the application configuration.
type Config struct {
	Connection Connection `mapstructure:"connection" yaml:"connection"`
	Check      Check      `mapstructure:"check" yaml:"check"`
	Log        Log        `mapstructure:"log" yaml:"log"`

	// Warnings collects non-fatal problems found while loading. They are
	// logged by the caller once the logger exists.
	Warnings []string `mapstructure:"-" yaml:"-"`
}

// Connection describes how to reach and authenticate to the AccessDb instance.
type Connection struct {
	// DSN, when set, is used verbatim instead of building a descriptor.
	DSN        string `mapstructure:"dsn" yaml:"dsn,omitempty"`
	Driver     string `mapstructure:"driver" yaml:"driver,omitempty"`
	ODBCDriver string `mapstructure:"odbc_driver" yaml:"odbc_driver"`
	Host       string `mapstructure:"host" yaml:"host"`
	Port       int    `mapstructure:"port" yaml:"port"`
	Database   string `mapstructure:"database" yaml:"database"`
	Username   string `mapstructure:"username" yaml:"username"`
	Password   string `mapstructure:"password" yaml:"password,omitempty"`
	// TrustServerCertificate skips TLS chain validation.
	TrustServerCertificate bool `mapstructure:"trust_server_certificate" yaml:"trust_server_certificate"`
}

// Check controls the diagnostic query and its preview.
type Check struct {
	Table       string `mapstructure:"table" yaml:"table"`
	PreviewRows int    `mapstructure:"preview_rows" yaml:"preview_rows"`
	Format      string `mapstructure:"format" yaml:"format"`
}

// Log holds logger settings.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// DisplayString returns a human-readable summary of the connection target,
// user@host,port/database. A raw DSN is shown masked.
func (c Connection) DisplayString() string {
	if c.DSN != "" {
		return Mask(c.DSN)
	}
	s := c.Host
	if c.Port > 0 {
		s += "," + strconv.Itoa(c.Port)
	}
	s += "/" + c.Database
	if c.Username != "" {
		s = c.Username + "@" + s
	}
	return s
}

// Query returns the diagnostic query for the configured table.
func (c Check) Query() string {
	return "SELECT * FROM " + c.Table
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Validate checks that the configuration can produce a runnable check.
func (cfg *Config) Validate() error {
	if cfg.Connection.DSN == "" {
		if cfg.Connection.Host == "" {
			return fmt.Errorf("connection.host is required")
		}
		if cfg.Connection.Port < 1 || cfg.Connection.Port > 65535 {
			return fmt.Errorf("connection.port %d out of range", cfg.Connection.Port)
		}
		if cfg.Connection.Database == "" {
			return fmt.Errorf("connection.database is required")
		}
	}
	if !tableName.MatchString(cfg.Check.Table) {
		return fmt.Errorf("check.table %q is not a plain table name", cfg.Check.Table)
	}
	if cfg.Check.PreviewRows < 1 {
		return fmt.Errorf("check.preview_rows must be at least 1, got %d", cfg.Check.PreviewRows)
	}
	switch cfg.Check.Format {
	case FormatDetail, FormatTable:
	default:
		return fmt.Errorf("check.format must be %q or %q, got %q", FormatDetail, FormatTable, cfg.Check.Format)
	}
	return nil
}

// SlogLevel maps the configured level string to an slog.Level.
func (l Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
