package backtest

import (
	"testing"
	"time"

	"github.com/btclab/btc-accumulator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_NoPurchases(t *testing.T) {
	state := &EngineState{
		StrategyName:  "ath-dip-20%",
		DailyBudget:   1.0,
		DaysProcessed: 10,
		CashReserve:   10.0,
	}

	summary := Summarize(state, 50000)

	assert.False(t, summary.HasReturn)
	assert.Zero(t, summary.ReturnPercent)
	assert.Zero(t, summary.PortfolioValue)
	assert.Zero(t, summary.AveragePurchasePrice)
	assert.Equal(t, 0, summary.PurchaseCount)
	assert.Nil(t, summary.FirstPurchase)
	assert.Nil(t, summary.BestPurchase)
	assert.Equal(t, 10.0, summary.CashReserve)
	assert.Equal(t, 50000.0, summary.FinalPrice)
}

func TestSummarize_FieldValues(t *testing.T) {
	epoch := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	state := &EngineState{
		StrategyName:  "ath-dip-15%",
		DailyBudget:   1.0,
		DaysProcessed: 4,
		CashReserve:   1.0,
		TotalSpent:    3.0,
		BTCHoldings:   0.0375,
		Purchases: []types.Purchase{
			{Date: epoch.AddDate(0, 0, 2), Price: 80, AmountSpent: 3, BTCAcquired: 0.0375, Reason: "BELOW_ATH"},
		},
	}

	summary := Summarize(state, 120)

	assert.Equal(t, "ath-dip-15%", summary.StrategyName)
	assert.Equal(t, 4, summary.Days)
	assert.InDelta(t, 4.5, summary.PortfolioValue, 1e-9)
	require.True(t, summary.HasReturn)
	assert.InDelta(t, 50.0, summary.ReturnPercent, 1e-9)
	assert.InDelta(t, 80.0, summary.AveragePurchasePrice, 1e-9)
	assert.Equal(t, 1, summary.PurchaseCount)
	require.NotNil(t, summary.FirstPurchase)
	assert.Equal(t, summary.FirstPurchase, summary.LastPurchase)
}

func TestSummarize_BestAndWorstPurchase(t *testing.T) {
	epoch := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	state := &EngineState{
		StrategyName:  "dca",
		DailyBudget:   1.0,
		DaysProcessed: 3,
		TotalSpent:    3.0,
		BTCHoldings:   1.0/100 + 1.0/40 + 1.0/150,
		Purchases: []types.Purchase{
			{Date: epoch, Price: 100, AmountSpent: 1, BTCAcquired: 1.0 / 100},
			{Date: epoch.AddDate(0, 0, 1), Price: 40, AmountSpent: 1, BTCAcquired: 1.0 / 40},
			{Date: epoch.AddDate(0, 0, 2), Price: 150, AmountSpent: 1, BTCAcquired: 1.0 / 150},
		},
	}

	summary := Summarize(state, 150)

	require.NotNil(t, summary.BestPurchase)
	require.NotNil(t, summary.WorstPurchase)
	assert.Equal(t, 40.0, summary.BestPurchase.Price)
	assert.Equal(t, 150.0, summary.WorstPurchase.Price)
	assert.Equal(t, 100.0, summary.FirstPurchase.Price)
	assert.Equal(t, 150.0, summary.LastPurchase.Price)
}

func TestSummarize_NegativeReturn(t *testing.T) {
	state := &EngineState{
		StrategyName:  "dca",
		DailyBudget:   1.0,
		DaysProcessed: 2,
		TotalSpent:    2.0,
		BTCHoldings:   0.02,
		Purchases: []types.Purchase{
			{Price: 100, AmountSpent: 2, BTCAcquired: 0.02},
		},
	}

	summary := Summarize(state, 50)

	require.True(t, summary.HasReturn)
	assert.InDelta(t, -50.0, summary.ReturnPercent, 1e-9)
}
