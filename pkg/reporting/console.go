package reporting

import (
	"fmt"
	"os"

	"github.com/btclab/btc-accumulator/internal/backtest"
	"github.com/btclab/btc-accumulator/pkg/orchestrator"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DefaultConsoleReporter implements console output on go-pretty tables.
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

func formatReturn(s backtest.Summary) string {
	if !s.HasReturn {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", s.ReturnPercent)
}

// PrintSummary renders one run's summary.
func (r *DefaultConsoleReporter) PrintSummary(summary backtest.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("BACKTEST RESULTS - %s", summary.StrategyName)
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Daily Budget", fmt.Sprintf("$%.2f", summary.DailyBudget)},
		{"Days Processed", summary.Days},
		{"Purchases", summary.PurchaseCount},
		{"Total Invested", fmt.Sprintf("$%.2f", summary.TotalSpent)},
		{"Cash Still Accumulating", fmt.Sprintf("$%.2f", summary.CashReserve)},
		{"BTC Accumulated", fmt.Sprintf("%.8f BTC", summary.BTCHoldings)},
		{"Average Purchase Price", fmt.Sprintf("$%.2f", summary.AveragePurchasePrice)},
		{"Final BTC Price", fmt.Sprintf("$%.2f", summary.FinalPrice)},
		{"Portfolio Value", fmt.Sprintf("$%.2f", summary.PortfolioValue)},
		{"Return", formatReturn(summary)},
	})

	if summary.FirstPurchase != nil {
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"First Purchase", fmt.Sprintf("%s at $%.2f",
				summary.FirstPurchase.Date.Format("2006-01-02"), summary.FirstPurchase.Price)},
			{"Last Purchase", fmt.Sprintf("%s at $%.2f",
				summary.LastPurchase.Date.Format("2006-01-02"), summary.LastPurchase.Price)},
			{"Best Purchase", fmt.Sprintf("%s at $%.2f",
				summary.BestPurchase.Date.Format("2006-01-02"), summary.BestPurchase.Price)},
			{"Worst Purchase", fmt.Sprintf("%s at $%.2f",
				summary.WorstPurchase.Date.Format("2006-01-02"), summary.WorstPurchase.Price)},
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 24, Align: text.AlignLeft},
		{Number: 2, WidthMin: 24, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// PrintComparison renders one row per strategy next to the buy-and-hold
// benchmark.
func (r *DefaultConsoleReporter) PrintComparison(results []orchestrator.RunResult, buyHoldPercent float64) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("STRATEGY COMPARISON")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Strategy", "Purchases", "Invested", "BTC", "Final Value", "Return"})
	for _, result := range results {
		s := result.Summary
		t.AppendRow(table.Row{
			s.StrategyName,
			s.PurchaseCount,
			fmt.Sprintf("$%.2f", s.TotalSpent),
			fmt.Sprintf("%.8f", s.BTCHoldings),
			fmt.Sprintf("$%.2f", s.PortfolioValue),
			formatReturn(s),
		})
	}

	t.Render()
	fmt.Printf("Buy and Hold Return: %.2f%%\n\n", buyHoldPercent)
}

// PrintSweep renders one row per swept parameter value.
func (r *DefaultConsoleReporter) PrintSweep(title, parameterName string, points []orchestrator.SweepPoint) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{parameterName, "Purchases", "Invested", "BTC", "Final Value", "Return"})
	for _, point := range points {
		s := point.Summary
		t.AppendRow(table.Row{
			fmt.Sprintf("%g", point.Parameter),
			s.PurchaseCount,
			fmt.Sprintf("$%.2f", s.TotalSpent),
			fmt.Sprintf("%.8f", s.BTCHoldings),
			fmt.Sprintf("$%.2f", s.PortfolioValue),
			formatReturn(s),
		})
	}

	t.Render()
	fmt.Println()
}

// PrintPurchases renders the purchase log of one run.
func (r *DefaultConsoleReporter) PrintPurchases(state *backtest.EngineState) {
	if len(state.Purchases) == 0 {
		fmt.Println("No purchases were made.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("PURCHASE HISTORY - %s", state.StrategyName)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Date", "Price", "Spent", "BTC Acquired", "Reason"})
	for _, p := range state.Purchases {
		t.AppendRow(table.Row{
			p.Date.Format("2006-01-02"),
			fmt.Sprintf("$%.2f", p.Price),
			fmt.Sprintf("$%.2f", p.AmountSpent),
			fmt.Sprintf("%.8f", p.BTCAcquired),
			p.Reason,
		})
	}

	t.Render()
	fmt.Println()
}
