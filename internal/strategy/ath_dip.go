package strategy

import (
	"fmt"

	"github.com/btclab/btc-accumulator/pkg/types"
)

// BelowATHByPercent accumulates the daily budget and deploys the whole
// reserve whenever the close sits at least `threshold` (a fraction in [0,1))
// below the all-time-high close observed so far. The running high includes
// the current day, so day 1 can never trigger a buy unless the threshold is
// zero. A close exactly on the dip boundary does buy.
type BelowATHByPercent struct {
	threshold  float64
	runningATH float64
}

// NewBelowATHByPercent creates the ATH-dip policy.
func NewBelowATHByPercent(threshold float64) *BelowATHByPercent {
	return &BelowATHByPercent{threshold: threshold}
}

// Decide advances the running high with today's close, then buys the full
// reserve when the close is at or under ATH * (1 - threshold).
func (s *BelowATHByPercent) Decide(day types.PriceRecord, available float64) (Decision, error) {
	if day.Close > s.runningATH {
		s.runningATH = day.Close
	}

	if day.Close <= s.runningATH*(1-s.threshold) {
		return Decision{Amount: available, Reason: ReasonBelowATH}, nil
	}
	return Decision{Reason: ReasonAccumulate}, nil
}

// GetName returns the strategy name including its dip threshold
func (s *BelowATHByPercent) GetName() string {
	return fmt.Sprintf("ath-dip-%g%%", s.threshold*100)
}

// Reset clears the running high for a fresh run.
func (s *BelowATHByPercent) Reset() {
	s.runningATH = 0
}
