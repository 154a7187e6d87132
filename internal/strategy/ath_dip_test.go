package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBelowATHByPercent_NeverBuysOnDayOne(t *testing.T) {
	s := NewBelowATHByPercent(0.20)

	// Day 1 sets the ATH to its own close, which is 0% below itself.
	decision, err := s.Decide(tradingDay(0, 100), 1)
	require.NoError(t, err)
	assert.Zero(t, decision.Amount)
	assert.Equal(t, ReasonAccumulate, decision.Reason)
}

func TestBelowATHByPercent_ZeroThresholdBuysImmediately(t *testing.T) {
	s := NewBelowATHByPercent(0)

	decision, err := s.Decide(tradingDay(0, 100), 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, decision.Amount)
	assert.Equal(t, ReasonBelowATH, decision.Reason)
}

func TestBelowATHByPercent_BuysAtOrBelowThreshold(t *testing.T) {
	s := NewBelowATHByPercent(0.20)

	_, err := s.Decide(tradingDay(0, 100), 1)
	require.NoError(t, err)

	// Exactly on the boundary: 80 == 100 * (1 - 0.20) buys.
	decision, err := s.Decide(tradingDay(1, 80), 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, decision.Amount)
	assert.Equal(t, ReasonBelowATH, decision.Reason)
}

func TestBelowATHByPercent_HoldsAboveThreshold(t *testing.T) {
	s := NewBelowATHByPercent(0.20)

	_, err := s.Decide(tradingDay(0, 100), 1)
	require.NoError(t, err)

	decision, err := s.Decide(tradingDay(1, 81), 2)
	require.NoError(t, err)
	assert.Zero(t, decision.Amount)
}

func TestBelowATHByPercent_ATHAdvancesWithNewHighs(t *testing.T) {
	s := NewBelowATHByPercent(0.15)

	closes := []float64{100, 90, 80, 120}
	available := []float64{1, 2, 3, 1}
	wantBuy := []bool{false, false, true, false}

	for i := range closes {
		decision, err := s.Decide(tradingDay(i, closes[i]), available[i])
		require.NoError(t, err)
		if wantBuy[i] {
			assert.Equal(t, available[i], decision.Amount, "day %d", i+1)
		} else {
			assert.Zero(t, decision.Amount, "day %d", i+1)
		}
	}
}

func TestBelowATHByPercent_Reset(t *testing.T) {
	s := NewBelowATHByPercent(0.20)

	_, err := s.Decide(tradingDay(0, 1000), 1)
	require.NoError(t, err)

	s.Reset()

	// After the reset, 10 is a fresh day-1 high, not a 99% dip.
	decision, err := s.Decide(tradingDay(1, 10), 1)
	require.NoError(t, err)
	assert.Zero(t, decision.Amount)
}
