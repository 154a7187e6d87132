package strategy

import "github.com/btclab/btc-accumulator/pkg/types"

// AlwaysBuy implements plain dollar-cost averaging: the entire available
// budget is deployed every day, so the cash reserve never carries over.
type AlwaysBuy struct{}

// NewAlwaysBuy creates the DCA policy
func NewAlwaysBuy() *AlwaysBuy {
	return &AlwaysBuy{}
}

// Decide always deploys the full available cash.
func (s *AlwaysBuy) Decide(day types.PriceRecord, available float64) (Decision, error) {
	return Decision{Amount: available, Reason: ReasonScheduledBuy}, nil
}

// GetName returns the strategy name
func (s *AlwaysBuy) GetName() string {
	return "dca"
}

// Reset is a no-op; AlwaysBuy keeps no state between days.
func (s *AlwaysBuy) Reset() {}
