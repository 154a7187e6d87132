package backtest

import (
	"fmt"
	"time"

	bterrors "github.com/btclab/btc-accumulator/internal/errors"
	"github.com/btclab/btc-accumulator/internal/strategy"
	"github.com/btclab/btc-accumulator/pkg/data"
	"github.com/btclab/btc-accumulator/pkg/types"
)

// Engine drives a single forward pass over a price series, applying one
// buy-decision policy. Each Run owns a fresh EngineState; runs over the same
// series are fully independent.
type Engine struct{}

// NewEngine creates a backtest engine
func NewEngine() *Engine {
	return &Engine{}
}

// EngineState is the accumulation state of one backtest run. It is mutated
// once per day in strict date order and must be treated as read-only once
// Run returns it.
//
// Invariants, after every processed day:
//
//	TotalSpent + CashReserve == DailyBudget * DaysProcessed
//	BTCHoldings == sum of BTCAcquired over Purchases
type EngineState struct {
	StrategyName  string
	DailyBudget   float64
	DaysProcessed int
	CashReserve   float64
	BTCHoldings   float64
	TotalSpent    float64
	Purchases     []types.Purchase
	Equity        []PortfolioPoint
}

// PortfolioPoint is one day's valuation of the accumulated position,
// including idle cash.
type PortfolioPoint struct {
	Date           time.Time
	Close          float64
	PortfolioValue float64
	TotalSpent     float64
	CashReserve    float64
}

// Run executes the policy over the series with the given daily budget and
// returns the frozen final state. The policy is reset before the first day.
// A failed run returns only an error; partial state is never surfaced.
func (e *Engine) Run(series *data.PriceSeries, strat strategy.Strategy, dailyBudget float64) (*EngineState, error) {
	if series == nil || series.Len() == 0 {
		return nil, bterrors.NewEmptySeriesError("engine", "series")
	}
	if dailyBudget <= 0 {
		return nil, bterrors.NewConfigError("engine", "run",
			fmt.Sprintf("daily budget must be positive, got %g", dailyBudget))
	}

	strat.Reset()

	state := &EngineState{
		StrategyName: strat.GetName(),
		DailyBudget:  dailyBudget,
		Purchases:    make([]types.Purchase, 0),
		Equity:       make([]PortfolioPoint, 0, series.Len()),
	}

	err := series.EachDay(func(i int, day types.PriceRecord) error {
		state.DaysProcessed++
		state.CashReserve += dailyBudget

		decision, err := strat.Decide(day, state.CashReserve)
		if err != nil {
			return bterrors.NewStrategyError("engine", "decide", err)
		}

		if decision.Amount > 0 {
			if day.Close <= 0 {
				return bterrors.NewInvalidPriceError("engine", i, day.Date, day.Close)
			}
			if decision.Amount > state.CashReserve {
				return bterrors.NewStrategyError("engine", "apply",
					fmt.Errorf("decision amount %.8f exceeds available cash %.8f", decision.Amount, state.CashReserve))
			}

			acquired := decision.Amount / day.Close
			state.CashReserve -= decision.Amount
			state.TotalSpent += decision.Amount
			state.BTCHoldings += acquired
			state.Purchases = append(state.Purchases, types.Purchase{
				Date:        day.Date,
				Price:       day.Close,
				AmountSpent: decision.Amount,
				BTCAcquired: acquired,
				Reason:      decision.Reason.String(),
			})
		}

		state.Equity = append(state.Equity, PortfolioPoint{
			Date:           day.Date,
			Close:          day.Close,
			PortfolioValue: state.CashReserve + state.BTCHoldings*day.Close,
			TotalSpent:     state.TotalSpent,
			CashReserve:    state.CashReserve,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
