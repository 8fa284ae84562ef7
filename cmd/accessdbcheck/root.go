package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"github.com/joacominatel/accessdbcheck/internal/app"
	"github.com/joacominatel/accessdbcheck/internal/config"
	"github.com/joacominatel/accessdbcheck/internal/database/sqlserver"
	"github.com/joacominatel/accessdbcheck/internal/report"
	"github.com/spf13/cobra"
)

// execute runs the command and returns the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var exitCode int
	cmd := newRootCmd(stdout, stderr, &exitCode)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return exitCode
}

func newRootCmd(stdout, stderr io.Writer, exitCode *int) *cobra.Command {
	var (
		configPath string
		envFile    string
	)

	cmd := &cobra.Command{
		Use:   "accessdbcheck",
		Short: "Validate the AccessDb connection before bringing the service online",
		Long: "Connects to the AccessDb SQL Server instance, runs SELECT * FROM AccessRequest\n" +
			"and prints the columns and up to five rows. Exits non-zero on any failure.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.Options{
				Path:    configPath,
				EnvFile: envFile,
				Flags:   cmd.Flags(),
			})
			if err != nil {
				return &app.ErrConfig{Cause: err}
			}

			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
				Level: cfg.Log.SlogLevel(),
			})).With("run_id", uuid.NewString())
			for _, w := range cfg.Warnings {
				logger.Warn(w)
			}

			platform := config.DetectPlatform(runtime.GOOS)
			desc := config.BuildDescriptor(platform, cfg.Connection)
			logger.Debug("descriptor built",
				"platform", platform.String(),
				"driver", desc.Driver,
				"target", cfg.Connection.DisplayString())

			printer := report.NewPrinter(stdout, cfg.Check.Format, cfg.Check.PreviewRows)
			printer.Start(cfg.Connection.Database)
			printer.Descriptor(desc.Masked())

			validator := app.NewValidator(sqlserver.New(desc.Driver), printer, logger, app.Options{
				Check:       cfg.Check,
				ODBCExample: odbcExample(cfg.Connection),
			})
			outcome := validator.Validate(cmd.Context(), desc)

			printer.Banner(outcome.OK())
			logger.Debug("run finished", "status", outcome.Status.String())

			*exitCode = outcome.ExitCode()
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "config file (default ~/.accessdbcheck/config.yaml)")
	f.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading ACCESSDB_* variables")
	f.String("dsn", "", "raw connection string; overrides the individual connection flags")
	f.String("driver", "", `database/sql binding: "odbc" or "sqlserver" (default depends on platform)`)
	f.String("host", "", "SQL Server host (default localhost)")
	f.Int("port", 0, "SQL Server port (default 1433)")
	f.String("database", "", "database name (default AccessDb)")
	f.String("user", "", "login name (default sa)")
	f.String("table", "", "table to read (default AccessRequest)")
	f.Int("rows", 0, "rows to preview (default 5)")
	f.String("format", "", `preview format: "detail" or "table" (default detail)`)
	f.String("log-level", "", "log level: debug, info, warn, error (default warn)")

	return cmd
}

// odbcExample is the corrected ODBC connection string the remediation guide
// suggests, with the secret masked.
func odbcExample(c config.Connection) string {
	c.DSN = ""
	c.Driver = config.DriverODBC
	return config.BuildDescriptor(config.PlatformUnix, c).Masked()
}
