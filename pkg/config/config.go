package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bterrors "github.com/btclab/btc-accumulator/internal/errors"
	"github.com/btclab/btc-accumulator/internal/strategy"
	"gopkg.in/yaml.v3"
)

// Default parameter values
const (
	DefaultSymbol       = "BTC"
	DefaultDailyBudget  = 1.0
	DefaultMAWindow     = 20
	DefaultDipThreshold = 0.20
	DefaultOutputDir    = "results"

	// StrategyAll runs every policy over the same series for comparison
	StrategyAll = "all"

	dateLayout = "2006-01-02"
)

// Config holds all configuration for an accumulation backtest. Files may be
// JSON or YAML; CLI flags override file values.
type Config struct {
	DataFile     string  `json:"data_file" yaml:"data_file"`
	Symbol       string  `json:"symbol" yaml:"symbol"`
	Strategy     string  `json:"strategy" yaml:"strategy"`
	DailyBudget  float64 `json:"daily_budget" yaml:"daily_budget"`
	MAWindow     int     `json:"ma_window" yaml:"ma_window"`
	DipThreshold float64 `json:"dip_threshold" yaml:"dip_threshold"`

	// Optional inclusive date filter, "2006-01-02" format
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	// Output
	OutputFormat  string `json:"output_format" yaml:"output_format"`
	OutputDir     string `json:"output_dir" yaml:"output_dir"`
	ShowPurchases bool   `json:"show_purchases" yaml:"show_purchases"`
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Symbol:       DefaultSymbol,
		Strategy:     StrategyAll,
		DailyBudget:  DefaultDailyBudget,
		MAWindow:     DefaultMAWindow,
		DipThreshold: DefaultDipThreshold,
		OutputFormat: "console",
		OutputDir:    DefaultOutputDir,
	}
}

// LoadConfig reads a configuration file, JSON or YAML by extension, on top
// of the defaults.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, bterrors.NewConfigError("config", "load",
				fmt.Sprintf("invalid YAML in %s: %v", path, err))
		}
	case ".json":
		if err := json.Unmarshal(raw, cfg); err != nil {
			return nil, bterrors.NewConfigError("config", "load",
				fmt.Sprintf("invalid JSON in %s: %v", path, err))
		}
	default:
		return nil, bterrors.NewConfigError("config", "load",
			fmt.Sprintf("unsupported config extension %q (use .json, .yaml or .yml)", filepath.Ext(path)))
	}

	return cfg, nil
}

// Validate checks parameter ranges and the strategy name.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return bterrors.NewConfigError("config", "validate", "data file is required")
	}
	if c.DailyBudget <= 0 {
		return bterrors.NewConfigError("config", "validate",
			fmt.Sprintf("daily budget must be positive, got %g", c.DailyBudget))
	}
	if c.MAWindow < 1 {
		return bterrors.NewConfigError("config", "validate",
			fmt.Sprintf("moving-average window must be >= 1, got %d", c.MAWindow))
	}
	if c.DipThreshold < 0 || c.DipThreshold >= 1 {
		return bterrors.NewConfigError("config", "validate",
			fmt.Sprintf("dip threshold must be in [0,1), got %g", c.DipThreshold))
	}

	switch c.Strategy {
	case StrategyAll, strategy.NameDCA, strategy.NameMovingAverage, strategy.NameATHDip:
	default:
		return bterrors.NewConfigError("config", "validate",
			fmt.Sprintf("unknown strategy %q", c.Strategy))
	}

	if _, err := c.StartTime(); err != nil {
		return err
	}
	if _, err := c.EndTime(); err != nil {
		return err
	}

	switch c.OutputFormat {
	case "console", "csv", "xlsx", "json":
	default:
		return bterrors.NewConfigError("config", "validate",
			fmt.Sprintf("unknown output format %q", c.OutputFormat))
	}
	return nil
}

// StartTime parses the optional start date; zero when unset.
func (c *Config) StartTime() (time.Time, error) {
	return c.parseDate(c.StartDate, "start_date")
}

// EndTime parses the optional end date; zero when unset.
func (c *Config) EndTime() (time.Time, error) {
	return c.parseDate(c.EndDate, "end_date")
}

func (c *Config) parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, bterrors.NewConfigError("config", "validate",
			fmt.Sprintf("invalid %s %q (use YYYY-MM-DD)", field, value))
	}
	return t, nil
}
