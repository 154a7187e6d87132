package backtest

import "github.com/btclab/btc-accumulator/pkg/types"

// Summary is the read-only aggregation derived from a finished run. It is a
// pure function of the frozen state and the last close price.
type Summary struct {
	StrategyName         string          `json:"strategy"`
	DailyBudget          float64         `json:"daily_budget"`
	Days                 int             `json:"days"`
	TotalSpent           float64         `json:"total_spent"`
	CashReserve          float64         `json:"cash_reserve"`
	BTCHoldings          float64         `json:"btc_holdings"`
	FinalPrice           float64         `json:"final_price"`
	PortfolioValue       float64         `json:"portfolio_value"`
	ReturnPercent        float64         `json:"return_percent"`
	HasReturn            bool            `json:"has_return"`
	PurchaseCount        int             `json:"purchase_count"`
	AveragePurchasePrice float64         `json:"average_purchase_price"`
	FirstPurchase        *types.Purchase `json:"first_purchase,omitempty"`
	LastPurchase         *types.Purchase `json:"last_purchase,omitempty"`
	BestPurchase         *types.Purchase `json:"best_purchase,omitempty"`
	WorstPurchase        *types.Purchase `json:"worst_purchase,omitempty"`
}

// Summarize derives the result summary from a frozen state and the series'
// last close price. When nothing was ever bought the return percentage is
// undefined and HasReturn is false; this is reported, not treated as a
// fault.
func Summarize(state *EngineState, lastClose float64) Summary {
	s := Summary{
		StrategyName:   state.StrategyName,
		DailyBudget:    state.DailyBudget,
		Days:           state.DaysProcessed,
		TotalSpent:     state.TotalSpent,
		CashReserve:    state.CashReserve,
		BTCHoldings:    state.BTCHoldings,
		FinalPrice:     lastClose,
		PortfolioValue: state.BTCHoldings * lastClose,
		PurchaseCount:  len(state.Purchases),
	}

	if state.TotalSpent > 0 {
		s.ReturnPercent = (s.PortfolioValue - state.TotalSpent) / state.TotalSpent * 100
		s.HasReturn = true
	}
	if state.BTCHoldings > 0 {
		s.AveragePurchasePrice = state.TotalSpent / state.BTCHoldings
	}

	if len(state.Purchases) > 0 {
		first := state.Purchases[0]
		last := state.Purchases[len(state.Purchases)-1]
		s.FirstPurchase = &first
		s.LastPurchase = &last

		best := state.Purchases[0]
		worst := state.Purchases[0]
		for _, p := range state.Purchases[1:] {
			if p.Price < best.Price {
				best = p
			}
			if p.Price > worst.Price {
				worst = p
			}
		}
		s.BestPurchase = &best
		s.WorstPurchase = &worst
	}

	return s
}
