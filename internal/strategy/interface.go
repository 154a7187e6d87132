package strategy

import "github.com/btclab/btc-accumulator/pkg/types"

// Strategy is a pluggable buy-decision policy. The engine calls Decide once
// per day in ascending date order, after crediting the daily budget, with
// the full cash available for deployment. Policies never sell; any internal
// state (price window, running high) advances only inside Decide and never
// rolls back.
type Strategy interface {
	// Decide returns how much of the available cash to deploy on this day.
	// The returned amount is either 0 or available, never partial.
	Decide(day types.PriceRecord, available float64) (Decision, error)

	// GetName returns the name of the strategy
	GetName() string

	// Reset clears internal state so the strategy can be reused on a fresh
	// series without contamination from a previous run
	Reset()
}

// Decision represents the outcome of one policy evaluation.
type Decision struct {
	Amount float64
	Reason Reason
}

// Reason tags why a policy did or did not buy on a given day.
type Reason int

const (
	// ReasonAccumulate: no buy, today's budget joins the cash reserve
	ReasonAccumulate Reason = iota
	// ReasonScheduledBuy: fixed daily purchase regardless of price
	ReasonScheduledBuy
	// ReasonBelowMovingAverage: close dropped under the rolling mean
	ReasonBelowMovingAverage
	// ReasonBelowATH: close is at least the dip threshold under the running high
	ReasonBelowATH
	// ReasonWarmingUp: not enough observations for the moving average yet
	ReasonWarmingUp
)

func (r Reason) String() string {
	switch r {
	case ReasonAccumulate:
		return "ACCUMULATE"
	case ReasonScheduledBuy:
		return "SCHEDULED_BUY"
	case ReasonBelowMovingAverage:
		return "BELOW_MOVING_AVERAGE"
	case ReasonBelowATH:
		return "BELOW_ATH"
	case ReasonWarmingUp:
		return "WARMING_UP"
	default:
		return "UNKNOWN"
	}
}
