package reporting

import (
	"github.com/btclab/btc-accumulator/internal/backtest"
	"github.com/btclab/btc-accumulator/pkg/orchestrator"
)

// Package reporting renders backtest outcomes. The core produces summaries
// and frozen states; everything here is presentation only.

// ConsoleReporter defines the console output surface
type ConsoleReporter interface {
	PrintSummary(summary backtest.Summary)
	PrintComparison(results []orchestrator.RunResult, buyHoldPercent float64)
	PrintSweep(title, parameterName string, points []orchestrator.SweepPoint)
	PrintPurchases(state *backtest.EngineState)
}

// CSVReporter defines CSV file output
type CSVReporter interface {
	WritePurchasesCSV(state *backtest.EngineState, path string) error
}

// ExcelReporter defines XLSX workbook output
type ExcelReporter interface {
	WriteWorkbookXLSX(summary backtest.Summary, state *backtest.EngineState, path string) error
}

// JSONReporter defines JSON file output
type JSONReporter interface {
	WriteSummaryJSON(summaries []backtest.Summary, path string) error
}
