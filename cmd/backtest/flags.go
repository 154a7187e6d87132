package main

import (
	"flag"
	"fmt"

	"github.com/btclab/btc-accumulator/pkg/config"
)

// BacktestFlags holds all command line flags for the backtest command
type BacktestFlags struct {
	// Configuration
	ConfigFile *string
	DataFile   *string
	Symbol     *string

	// Strategy selection and parameters
	Strategy     *string
	DailyBudget  *float64
	MAWindow     *int
	DipThreshold *float64

	// Date filter
	StartDate *string
	EndDate   *string

	// Analysis options
	Sweep *string

	// Output options
	OutputFormat  *string
	OutputDir     *string
	ShowPurchases *bool

	// Environment and monitoring
	EnvFile     *string
	MetricsAddr *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewBacktestFlags creates and registers all command line flags
func NewBacktestFlags() *BacktestFlags {
	return &BacktestFlags{
		// Configuration
		ConfigFile: flag.String("config", "", "Path to configuration file (.json, .yaml or .yml)"),
		DataFile:   flag.String("data", "", "Path to historical CSV data file"),
		Symbol:     flag.String("symbol", config.DefaultSymbol, "Asset symbol used for output naming"),

		// Strategy selection and parameters
		Strategy:     flag.String("strategy", config.StrategyAll, "Strategy to run (dca, ma, ath-dip, all)"),
		DailyBudget:  flag.Float64("budget", config.DefaultDailyBudget, "Daily budget in dollars"),
		MAWindow:     flag.Int("window", config.DefaultMAWindow, "Moving-average window in trading days"),
		DipThreshold: flag.Float64("dip", config.DefaultDipThreshold, "ATH dip threshold as a fraction (0.20 = 20%)"),

		// Date filter
		StartDate: flag.String("start", "", "Inclusive start date (YYYY-MM-DD)"),
		EndDate:   flag.String("end", "", "Inclusive end date (YYYY-MM-DD)"),

		// Analysis options
		Sweep: flag.String("sweep", "", "Parameter sweep to run instead of a backtest (dip, window, budget)"),

		// Output options
		OutputFormat:  flag.String("output", "console", "Output format (console, csv, xlsx, json)"),
		OutputDir:     flag.String("output-dir", "", "Directory for file output (default results/<SYMBOL>)"),
		ShowPurchases: flag.Bool("purchases", false, "Print the purchase history"),

		// Environment and monitoring
		EnvFile:     flag.String("env", ".env", "Environment file to load"),
		MetricsAddr: flag.String("metrics-addr", "", "Expose Prometheus metrics on this address while running"),

		// Help and version
		ShowVersion: flag.Bool("version", false, "Show version and exit"),
		ShowHelp:    flag.Bool("help", false, "Show usage help and exit"),
	}
}

// ValidateBacktestFlags checks flag combinations before any work starts
func ValidateBacktestFlags(flags *BacktestFlags) error {
	switch *flags.Sweep {
	case "", "dip", "window", "budget":
	default:
		return fmt.Errorf("invalid -sweep value %q (use dip, window or budget)", *flags.Sweep)
	}
	return nil
}

// PrintUsageExamples prints common invocations
func PrintUsageExamples() {
	fmt.Println("EXAMPLES:")
	fmt.Println("  backtest -data bitcoin_daily.csv")
	fmt.Println("  backtest -data bitcoin_daily.csv -strategy ath-dip -dip 0.20 -purchases")
	fmt.Println("  backtest -data bitcoin_daily.csv -strategy ma -window 50 -output xlsx")
	fmt.Println("  backtest -data bitcoin_daily.csv -sweep dip")
	fmt.Println("  backtest -config configs/btc.yaml -start 2021-01-01 -end 2023-12-31")
	fmt.Println()
}
