package strategy

import (
	"fmt"

	"github.com/btclab/btc-accumulator/internal/indicators"
	"github.com/btclab/btc-accumulator/pkg/types"
)

// BelowMovingAverage accumulates the daily budget and deploys the whole
// reserve whenever the close drops under the simple moving average of the
// last `window` closes (today inclusive). While the window is warming up it
// only accumulates. A close exactly on the average does not buy.
type BelowMovingAverage struct {
	period int
	window *indicators.PriceWindow
}

// NewBelowMovingAverage creates the moving-average-gated policy.
func NewBelowMovingAverage(window int) *BelowMovingAverage {
	return &BelowMovingAverage{
		period: window,
		window: indicators.NewPriceWindow(window),
	}
}

// Decide pushes today's close into the window and buys the full reserve when
// the close is strictly below the window average.
func (s *BelowMovingAverage) Decide(day types.PriceRecord, available float64) (Decision, error) {
	s.window.Push(day.Close)

	avg, err := s.window.Average()
	if err != nil {
		return Decision{Reason: ReasonWarmingUp}, nil
	}

	if day.Close < avg {
		return Decision{Amount: available, Reason: ReasonBelowMovingAverage}, nil
	}
	return Decision{Reason: ReasonAccumulate}, nil
}

// GetName returns the strategy name including its window size
func (s *BelowMovingAverage) GetName() string {
	return fmt.Sprintf("ma-%d", s.period)
}

// Reset clears the price window for a fresh run.
func (s *BelowMovingAverage) Reset() {
	s.window.Reset()
}
