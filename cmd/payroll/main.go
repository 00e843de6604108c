/*
main.go - Payroll report entry point

PURPOSE:
  Builds the roster, computes each employee's earnings and prints the
  report to stdout. Diagnostics go to stderr as JSON log lines.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load configuration (built-in defaults when no file is given)
  3. Build the roster (config roster, or the sample roster)
  4. Write the report

COMMAND-LINE FLAGS:
  -config  Optional YAML configuration file (see config/config.go)

EXAMPLES:
  # Sample roster, default formatting
  ./payroll

  # Custom roster and formatting
  ./payroll -config=./payroll.yaml

SEE ALSO:
  - report/report.go: Output format
  - factory/roster.go: Roster definitions
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/warp/payroll/config"
	"github.com/warp/payroll/factory"
	"github.com/warp/payroll/logging"
	"github.com/warp/payroll/payroll"
	"github.com/warp/payroll/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "payroll: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("payroll", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger := logging.New(stderr, cfg.Log.Level)
	ctx := logging.WithLogger(context.Background(), logger, map[string]interface{}{
		"config": *configPath,
	})

	employees, err := buildRoster(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build roster")
		return err
	}

	if err := report.NewWriter(cfg.ReportOptions()).Write(stdout, employees); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		return err
	}

	logging.FromContext(ctx).Debug().
		Int("employees", len(employees)).
		Str("total", report.Total(employees).StringFixed(cfg.ReportOptions().Precision)).
		Msg("report written")
	return nil
}

func buildRoster(ctx context.Context, cfg *config.Config) ([]payroll.Employee, error) {
	log := logging.FromContext(ctx)
	if len(cfg.Roster) == 0 {
		log.Debug().Msg("using sample roster")
		return report.SampleRoster()
	}
	log.Debug().Int("definitions", len(cfg.Roster)).Msg("building configured roster")
	return factory.NewRosterFactory().FromDefinitions(cfg.Roster)
}
