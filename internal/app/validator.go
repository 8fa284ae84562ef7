package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/joacominatel/accessdbcheck/internal/config"
	"github.com/joacominatel/accessdbcheck/internal/database"
	"github.com/joacominatel/accessdbcheck/internal/report"
)

// Options configures a Validator.
type Options struct {
	Check config.Check
	// ODBCExample is the masked ODBC connection string suggested by the
	// remediation guide.
	ODBCExample string
}

// Validator checks that a connection descriptor reaches a working database
// and that the diagnostic table can be read.
type Validator struct {
	driver  database.Driver
	printer *report.Printer
	logger  *slog.Logger
	opts    Options
}

// NewValidator creates a validator.
func NewValidator(driver database.Driver, printer *report.Printer, logger *slog.Logger, opts Options) *Validator {
	return &Validator{
		driver:  driver,
		printer: printer,
		logger:  logger,
		opts:    opts,
	}
}

// Validate connects with desc, runs the diagnostic query and prints a bounded
// preview of the result. Every failure is reported on the printer and returned
// in the Outcome; the connection is closed on every path after it was opened.
func (v *Validator) Validate(ctx context.Context, desc config.Descriptor) Outcome {
	log := v.logger.With("driver", v.driver.Name(), "table", v.opts.Check.Table)

	if !v.driver.Available() {
		log.Error("driver binding unavailable")
		v.printer.DriverMissing(v.driver.Name())
		return Outcome{Status: StatusDriverMissing, Err: &ErrDriverMissing{Driver: v.driver.Name()}}
	}

	log.Debug("connecting", "dsn", desc.Masked())
	if err := v.driver.Connect(ctx, desc.String); err != nil {
		connErr := &ErrConnection{Cause: err, DriverNotFound: isDriverNotFound(err)}
		log.Error("connect failed", "error", config.Mask(err.Error()), "driver_not_found", connErr.DriverNotFound)
		if connErr.DriverNotFound {
			v.printer.RemediationGuide(v.opts.ODBCExample)
		}
		v.printer.Failure(err)
		return Outcome{Status: StatusConnectionFailed, Err: connErr}
	}
	defer func() {
		if err := v.driver.Close(); err != nil {
			log.Warn("close connection", "error", config.Mask(err.Error()))
		}
	}()

	query := v.opts.Check.Query()
	v.printer.Query(query)

	result, err := v.driver.ExecuteQuery(ctx, query)
	if err != nil {
		log.Error("query failed", "error", config.Mask(err.Error()))
		v.printer.Failure(err)
		return Outcome{Status: StatusQueryFailed, Err: &ErrQuery{Query: query, Cause: err}}
	}

	v.printer.Result(v.opts.Check.Table, result)
	log.Info("validation succeeded", "rows", result.RowCount, "duration", result.Duration)

	return Outcome{Status: StatusSuccess, Result: result}
}

// isDriverNotFound reports whether the binding classified err as SQLSTATE
// IM002.
func isDriverNotFound(err error) bool {
	return errors.Is(err, database.ErrDriverNotFound)
}
