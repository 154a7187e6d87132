package reporting

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/btclab/btc-accumulator/internal/backtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbookXLSX(t *testing.T) {
	state := sampleState()
	state.Equity = []backtest.PortfolioPoint{
		{Date: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), Close: 100, PortfolioValue: 1, TotalSpent: 0, CashReserve: 1},
		{Date: time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC), Close: 90, PortfolioValue: 2, TotalSpent: 0, CashReserve: 2},
	}
	summary := backtest.Summarize(state, 120)

	path := filepath.Join(t.TempDir(), "reports", "backtest.xlsx")
	require.NoError(t, NewDefaultExcelReporter().WriteWorkbookXLSX(summary, state, path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	assert.ElementsMatch(t, []string{"Summary", "Purchases", "Equity"}, fx.GetSheetList())

	strategyName, err := fx.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "ath-dip-15%", strategyName)

	firstPurchaseDate, err := fx.GetCellValue("Purchases", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2022-01-03", firstPurchaseDate)

	equityClose, err := fx.GetCellValue("Equity", "B3")
	require.NoError(t, err)
	assert.Equal(t, "90", equityClose)
}

func TestWriteWorkbookXLSX_ReturnShownAsNA(t *testing.T) {
	state := sampleState()
	state.Purchases = nil
	state.TotalSpent = 0
	state.BTCHoldings = 0
	summary := backtest.Summarize(state, 120)

	path := filepath.Join(t.TempDir(), "backtest.xlsx")
	require.NoError(t, NewDefaultExcelReporter().WriteWorkbookXLSX(summary, state, path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	value, err := fx.GetCellValue("Summary", "B12")
	require.NoError(t, err)
	assert.Equal(t, "n/a", value)
}
