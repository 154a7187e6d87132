package reporting

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/btclab/btc-accumulator/internal/backtest"
)

// DefaultCSVReporter implements CSV file output.
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WritePurchasesCSV writes the purchase log with running totals.
func (r *DefaultCSVReporter) WritePurchasesCSV(state *backtest.EngineState, path string) error {
	if err := EnsureDirectoryExists(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"Date",
		"Price",
		"Amount_Spent",
		"BTC_Acquired",
		"Reason",
		"Total_BTC",
		"Total_Spent",
	}); err != nil {
		return err
	}

	var totalBTC, totalSpent float64
	for _, p := range state.Purchases {
		totalBTC += p.BTCAcquired
		totalSpent += p.AmountSpent

		if err := w.Write([]string{
			p.Date.Format("2006-01-02"),
			fmt.Sprintf("%.2f", p.Price),
			fmt.Sprintf("%.2f", p.AmountSpent),
			fmt.Sprintf("%.8f", p.BTCAcquired),
			p.Reason,
			fmt.Sprintf("%.8f", totalBTC),
			fmt.Sprintf("%.2f", totalSpent),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
