package orchestrator

import (
	"time"

	"github.com/btclab/btc-accumulator/internal/backtest"
	bterrors "github.com/btclab/btc-accumulator/internal/errors"
	"github.com/btclab/btc-accumulator/internal/logger"
	"github.com/btclab/btc-accumulator/internal/monitoring"
	"github.com/btclab/btc-accumulator/internal/strategy"
	"github.com/btclab/btc-accumulator/pkg/data"
)

// Default sweep grids.
var (
	DefaultDipThresholds = []float64{0.10, 0.15, 0.20, 0.25, 0.30, 0.40, 0.50}
	DefaultMAWindows     = []int{10, 20, 50}
	DefaultDailyBudgets  = []float64{1, 5, 10, 25, 50}
)

// Orchestrator coordinates engine runs over one loaded series: single runs,
// strategy comparisons and parameter sweeps. It records run metrics and
// optionally logs purchases.
type Orchestrator struct {
	engine *backtest.Engine
	log    *logger.Logger
}

// NewOrchestrator creates an orchestrator without logging.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{engine: backtest.NewEngine()}
}

// NewOrchestratorWithLogger creates an orchestrator that logs run status and
// purchases to the given file logger.
func NewOrchestratorWithLogger(log *logger.Logger) *Orchestrator {
	return &Orchestrator{engine: backtest.NewEngine(), log: log}
}

// RunResult pairs a run's frozen state with its derived summary.
type RunResult struct {
	Summary backtest.Summary
	State   *backtest.EngineState
}

// RunBacktest executes one policy over the series and summarizes the outcome.
func (o *Orchestrator) RunBacktest(series *data.PriceSeries, strat strategy.Strategy, dailyBudget float64) (*RunResult, error) {
	started := time.Now()

	state, err := o.engine.Run(series, strat, dailyBudget)
	if err != nil {
		monitoring.RecordError(string(bterrors.CategoryOf(err)))
		if o.log != nil {
			o.log.Error("run failed for %s: %v", strat.GetName(), err)
		}
		return nil, err
	}

	monitoring.RecordRun(state.StrategyName, time.Since(started), len(state.Purchases))

	if o.log != nil {
		for _, p := range state.Purchases {
			o.log.Purchase(p.Date, p.Price, p.AmountSpent, p.BTCAcquired, p.Reason)
		}
		o.log.Status("%s: %d days, %d purchases, spent $%.2f",
			state.StrategyName, state.DaysProcessed, len(state.Purchases), state.TotalSpent)
	}

	return &RunResult{
		Summary: backtest.Summarize(state, series.Last().Close),
		State:   state,
	}, nil
}

// CompareStrategies runs all three policies over the same series and budget.
// Results are ordered DCA, moving average, ATH dip.
func (o *Orchestrator) CompareStrategies(series *data.PriceSeries, dailyBudget float64, maWindow int, dipThreshold float64) ([]RunResult, error) {
	strategies := []strategy.Strategy{
		strategy.NewAlwaysBuy(),
		strategy.NewBelowMovingAverage(maWindow),
		strategy.NewBelowATHByPercent(dipThreshold),
	}

	results := make([]RunResult, 0, len(strategies))
	for _, strat := range strategies {
		result, err := o.RunBacktest(series, strat, dailyBudget)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// SweepPoint is one sweep step: the swept parameter value and the summary of
// the run performed with it.
type SweepPoint struct {
	Parameter float64
	Summary   backtest.Summary
}

// SweepDipThresholds runs the ATH-dip policy once per threshold, in the
// given order.
func (o *Orchestrator) SweepDipThresholds(series *data.PriceSeries, dailyBudget float64, thresholds []float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(thresholds))
	for _, threshold := range thresholds {
		result, err := o.RunBacktest(series, strategy.NewBelowATHByPercent(threshold), dailyBudget)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Parameter: threshold, Summary: result.Summary})
	}
	return points, nil
}

// SweepMAWindows runs the moving-average policy once per window size.
func (o *Orchestrator) SweepMAWindows(series *data.PriceSeries, dailyBudget float64, windows []int) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(windows))
	for _, window := range windows {
		result, err := o.RunBacktest(series, strategy.NewBelowMovingAverage(window), dailyBudget)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Parameter: float64(window), Summary: result.Summary})
	}
	return points, nil
}

// SweepDailyBudgets runs plain DCA once per daily budget.
func (o *Orchestrator) SweepDailyBudgets(series *data.PriceSeries, budgets []float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(budgets))
	for _, budget := range budgets {
		result, err := o.RunBacktest(series, strategy.NewAlwaysBuy(), budget)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Parameter: budget, Summary: result.Summary})
	}
	return points, nil
}

// BuyAndHoldReturnPercent is the benchmark return of buying once at the
// first close and holding to the last.
func (o *Orchestrator) BuyAndHoldReturnPercent(series *data.PriceSeries) float64 {
	first := series.First().Close
	last := series.Last().Close
	return (last - first) / first * 100
}
