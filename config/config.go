/*
Package config loads the optional YAML configuration for the payroll command.

EXAMPLE:
  log:
    level: debug
  report:
    salary_label: Weekly Salary
    precision: 2
    show_total: true
  roster:
    - kind: hourly
      first_name: Shalom
      last_name: Leibovich
      id: 123
      hours: 40
      wage: 20.5

Every key is optional. An empty roster means the built-in sample roster.
*/
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/warp/payroll/factory"
	"github.com/warp/payroll/report"
	"gopkg.in/yaml.v3"
)

const maxPrecision = 8

// Config is the full command configuration.
type Config struct {
	Log    LogConfig                    `yaml:"log"`
	Report ReportConfig                 `yaml:"report"`
	Roster []factory.EmployeeDefinition `yaml:"roster"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ReportConfig struct {
	SalaryLabel string `yaml:"salary_label"`
	// Precision is a pointer so an explicit 0 survives normalization.
	Precision *int32 `yaml:"precision"`
	ShowTotal bool   `yaml:"show_total"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	precision := int32(report.DefaultPrecision)
	return &Config{
		Log: LogConfig{Level: zerolog.InfoLevel.String()},
		Report: ReportConfig{
			SalaryLabel: report.DefaultSalaryLabel,
			Precision:   &precision,
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Log.Level == "" {
		c.Log.Level = zerolog.InfoLevel.String()
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	if c.Report.SalaryLabel == "" {
		c.Report.SalaryLabel = report.DefaultSalaryLabel
	}
	if c.Report.Precision == nil {
		p := int32(report.DefaultPrecision)
		c.Report.Precision = &p
	}
	if p := *c.Report.Precision; p < 0 || p > maxPrecision {
		return fmt.Errorf("config: report.precision must be between 0 and %d, got %d", maxPrecision, p)
	}

	return nil
}

// ReportOptions converts the report section into writer options.
func (c *Config) ReportOptions() report.Options {
	opts := report.DefaultOptions()
	opts.SalaryLabel = c.Report.SalaryLabel
	if c.Report.Precision != nil {
		opts.Precision = *c.Report.Precision
	}
	opts.ShowTotal = c.Report.ShowTotal
	return opts
}
