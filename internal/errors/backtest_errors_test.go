package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacktestError_Message(t *testing.T) {
	underlying := errors.New("strconv: invalid syntax")
	err := NewMalformedRecordError("csv", 17, "close column is not a number", underlying)

	msg := err.Error()
	assert.Contains(t, msg, "VALIDATION")
	assert.Contains(t, msg, "csv")
	assert.Contains(t, msg, "line 17")
	assert.Contains(t, msg, "invalid syntax")
}

func TestBacktestError_DateInMessage(t *testing.T) {
	date := time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)
	err := NewInvalidPriceError("engine", 73, date, -1.5)

	assert.Contains(t, err.Error(), "2022-03-15")
	assert.Contains(t, err.Error(), "-1.5")
	assert.Equal(t, 73, err.Index)
}

func TestBacktestError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := NewStrategyError("engine", "decide", underlying)

	assert.ErrorIs(t, err, underlying)
	wrapped := fmt.Errorf("running backtest: %w", err)
	assert.ErrorIs(t, wrapped, underlying)
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, ErrorCategoryData, CategoryOf(NewEmptySeriesError("csv", "prices.csv")))
	assert.Equal(t, ErrorCategoryConfig, CategoryOf(NewConfigError("engine", "run", "bad budget")))
	assert.Equal(t, ErrorCategory(""), CategoryOf(errors.New("plain")))
	assert.Equal(t, ErrorCategory(""), CategoryOf(nil))
}

func TestCategoryOf_WrappedChain(t *testing.T) {
	err := NewEmptySeriesError("csv", "prices.csv")
	wrapped := fmt.Errorf("loading series: %w", err)

	assert.Equal(t, ErrorCategoryData, CategoryOf(wrapped))
	assert.True(t, IsEmptySeries(wrapped))
}

func TestPredicates(t *testing.T) {
	require.True(t, IsMalformedRecord(NewMalformedRecordError("csv", 2, "missing date", nil)))
	require.True(t, IsEmptySeries(NewEmptySeriesError("csv", "empty.csv")))
	require.True(t, IsInvalidPrice(NewInvalidPriceError("engine", 0, time.Time{}, 0)))

	assert.False(t, IsMalformedRecord(NewEmptySeriesError("csv", "x")))
	assert.False(t, IsInvalidPrice(errors.New("plain")))
}
