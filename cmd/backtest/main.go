package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/btclab/btc-accumulator/internal/backtest"
	"github.com/btclab/btc-accumulator/internal/logger"
	"github.com/btclab/btc-accumulator/internal/monitoring"
	"github.com/btclab/btc-accumulator/internal/strategy"
	"github.com/btclab/btc-accumulator/pkg/config"
	"github.com/btclab/btc-accumulator/pkg/data"
	"github.com/btclab/btc-accumulator/pkg/orchestrator"
	"github.com/btclab/btc-accumulator/pkg/reporting"
	"github.com/joho/godotenv"
)

const (
	AppName    = "BTC Accumulation Backtest"
	AppVersion = "1.0.0"
)

func main() {
	flags := NewBacktestFlags()
	flag.Parse()

	if err := ValidateBacktestFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}
	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	printHeader()
	loadEnvironment(*flags.EnvFile)

	cfg, err := resolveConfiguration(flags)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if *flags.MetricsAddr != "" {
		go serveMetrics(*flags.MetricsAddr)
	}

	runLog, err := logger.NewLogger("logs", cfg.Symbol)
	if err != nil {
		log.Fatalf("❌ Logger error: %v", err)
	}
	defer runLog.Close()

	series, err := loadSeries(cfg)
	if err != nil {
		runLog.Error("load failed: %v", err)
		log.Fatalf("❌ Data error: %v", err)
	}

	fmt.Printf("Loaded %d days of %s price data (%s to %s)\n\n",
		series.Len(), cfg.Symbol,
		series.First().Date.Format("2006-01-02"),
		series.Last().Date.Format("2006-01-02"))
	runLog.Info("loaded %d days from %s", series.Len(), cfg.DataFile)

	orch := orchestrator.NewOrchestratorWithLogger(runLog)
	console := reporting.NewDefaultConsoleReporter()

	switch {
	case *flags.Sweep != "":
		runSweep(orch, console, series, cfg, *flags.Sweep)
	case cfg.Strategy == config.StrategyAll:
		runComparison(orch, console, series, cfg)
	default:
		runSingle(orch, console, series, cfg)
	}
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - DCA, moving-average and ATH-dip accumulation backtests\n\n", AppName, AppVersion)
	fmt.Println("USAGE:\n  backtest [OPTIONS]")
	fmt.Println()
	PrintUsageExamples()
	flag.PrintDefaults()
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v)", envFile, err)
	}
}

// resolveConfiguration layers file config under explicitly-set CLI flags.
func resolveConfiguration(flags *BacktestFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if *flags.ConfigFile != "" {
		loaded, err := config.LoadConfig(*flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["data"] {
		cfg.DataFile = *flags.DataFile
	}
	if set["symbol"] {
		cfg.Symbol = *flags.Symbol
	}
	if set["strategy"] {
		cfg.Strategy = *flags.Strategy
	}
	if set["budget"] {
		cfg.DailyBudget = *flags.DailyBudget
	}
	if set["window"] {
		cfg.MAWindow = *flags.MAWindow
	}
	if set["dip"] {
		cfg.DipThreshold = *flags.DipThreshold
	}
	if set["start"] {
		cfg.StartDate = *flags.StartDate
	}
	if set["end"] {
		cfg.EndDate = *flags.EndDate
	}
	if set["output"] {
		cfg.OutputFormat = *flags.OutputFormat
	}
	if set["output-dir"] {
		cfg.OutputDir = *flags.OutputDir
	}
	if set["purchases"] {
		cfg.ShowPurchases = *flags.ShowPurchases
	}

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("ACCUMULATOR_DATA_FILE")
	}
	if cfg.OutputDir == "" || (!set["output-dir"] && cfg.OutputDir == config.DefaultOutputDir) {
		cfg.OutputDir = reporting.DefaultOutputDir(cfg.Symbol)
	}
	return cfg, nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.NewMetricsHandler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("⚠️  Metrics server stopped: %v", err)
	}
}

func loadSeries(cfg *config.Config) (*data.PriceSeries, error) {
	series, err := data.LoadSeries(data.NewCSVProvider(), cfg.DataFile)
	if err != nil {
		return nil, err
	}

	start, _ := cfg.StartTime()
	end, _ := cfg.EndTime()
	if !start.IsZero() || !end.IsZero() {
		return series.Slice(start, end)
	}
	return series, nil
}

func runSingle(orch *orchestrator.Orchestrator, console *reporting.DefaultConsoleReporter, series *data.PriceSeries, cfg *config.Config) {
	strat, err := strategy.ForName(cfg.Strategy, cfg.MAWindow, cfg.DipThreshold)
	if err != nil {
		log.Fatalf("❌ Strategy error: %v", err)
	}

	result, err := orch.RunBacktest(series, strat, cfg.DailyBudget)
	if err != nil {
		log.Fatalf("❌ Backtest error: %v", err)
	}

	console.PrintSummary(result.Summary)
	if cfg.ShowPurchases {
		console.PrintPurchases(result.State)
	}

	switch cfg.OutputFormat {
	case "csv":
		path := reporting.PurchasesCSVPath(cfg.OutputDir, result.Summary.StrategyName)
		if err := reporting.NewDefaultCSVReporter().WritePurchasesCSV(result.State, path); err != nil {
			log.Fatalf("❌ Output error: %v", err)
		}
		fmt.Printf("Purchase log saved to: %s\n", path)
	case "xlsx":
		path := reporting.WorkbookPath(cfg.OutputDir, result.Summary.StrategyName)
		if err := reporting.NewDefaultExcelReporter().WriteWorkbookXLSX(result.Summary, result.State, path); err != nil {
			log.Fatalf("❌ Output error: %v", err)
		}
		fmt.Printf("Workbook saved to: %s\n", path)
	case "json":
		path := reporting.SummaryJSONPath(cfg.OutputDir)
		if err := reporting.NewDefaultJSONReporter().WriteSummaryJSON([]backtest.Summary{result.Summary}, path); err != nil {
			log.Fatalf("❌ Output error: %v", err)
		}
		fmt.Printf("Summary saved to: %s\n", path)
	}
}

func runComparison(orch *orchestrator.Orchestrator, console *reporting.DefaultConsoleReporter, series *data.PriceSeries, cfg *config.Config) {
	results, err := orch.CompareStrategies(series, cfg.DailyBudget, cfg.MAWindow, cfg.DipThreshold)
	if err != nil {
		log.Fatalf("❌ Backtest error: %v", err)
	}

	for _, result := range results {
		console.PrintSummary(result.Summary)
		if cfg.ShowPurchases {
			console.PrintPurchases(result.State)
		}
	}
	console.PrintComparison(results, orch.BuyAndHoldReturnPercent(series))

	if cfg.OutputFormat == "json" {
		summaries := make([]backtest.Summary, 0, len(results))
		for _, result := range results {
			summaries = append(summaries, result.Summary)
		}
		path := reporting.SummaryJSONPath(cfg.OutputDir)
		if err := reporting.NewDefaultJSONReporter().WriteSummaryJSON(summaries, path); err != nil {
			log.Fatalf("❌ Output error: %v", err)
		}
		fmt.Printf("Summaries saved to: %s\n", path)
	}
}

func runSweep(orch *orchestrator.Orchestrator, console *reporting.DefaultConsoleReporter, series *data.PriceSeries, cfg *config.Config, sweep string) {
	var (
		points []orchestrator.SweepPoint
		err    error
		title  string
		param  string
	)

	switch sweep {
	case "dip":
		title, param = "ATH DIP THRESHOLD SWEEP", "Dip"
		points, err = orch.SweepDipThresholds(series, cfg.DailyBudget, orchestrator.DefaultDipThresholds)
	case "window":
		title, param = "MOVING AVERAGE WINDOW SWEEP", "Window"
		points, err = orch.SweepMAWindows(series, cfg.DailyBudget, orchestrator.DefaultMAWindows)
	case "budget":
		title, param = "DAILY BUDGET SWEEP", "Budget"
		points, err = orch.SweepDailyBudgets(series, orchestrator.DefaultDailyBudgets)
	}
	if err != nil {
		log.Fatalf("❌ Sweep error: %v", err)
	}

	console.PrintSweep(title, param, points)
	fmt.Printf("Buy and Hold Return: %.2f%%\n", orch.BuyAndHoldReturnPercent(series))
}
