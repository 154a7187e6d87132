package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory represents the different failure kinds a backtest can surface.
// Every failure here is structural (bad data or bad parameters), so there is
// no retryable classification: retrying a deterministic run reproduces the
// same error.
type ErrorCategory string

const (
	// ErrorCategoryData covers sources that yield no usable records
	ErrorCategoryData ErrorCategory = "DATA"

	// ErrorCategoryValidation covers malformed input rows
	ErrorCategoryValidation ErrorCategory = "VALIDATION"

	// ErrorCategoryPrice covers non-positive prices encountered mid-run
	ErrorCategoryPrice ErrorCategory = "PRICE"

	// ErrorCategoryConfig covers invalid configuration or parameters
	ErrorCategoryConfig ErrorCategory = "CONFIG"

	// ErrorCategoryStrategy covers policy decisions the engine cannot apply
	ErrorCategoryStrategy ErrorCategory = "STRATEGY"
)

// BacktestError is a categorized error with enough context to point at the
// first offending record (line in the source file, date and index in the
// series).
type BacktestError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
	Line       int       // CSV line number, 0 when not applicable
	Index      int       // record index in the series, -1 when not applicable
	Date       time.Time // offending record date, zero when not applicable
}

// Error implements the error interface.
func (e *BacktestError) Error() string {
	msg := fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if !e.Date.IsZero() {
		msg += fmt.Sprintf(" (date %s)", e.Date.Format("2006-01-02"))
	}
	if e.Underlying != nil {
		msg += fmt.Sprintf(": %v", e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error for error unwrapping.
func (e *BacktestError) Unwrap() error {
	return e.Underlying
}

// NewMalformedRecordError reports an input row that failed required-field or
// ordering validation. The load is aborted at the first such row.
func NewMalformedRecordError(component string, line int, message string, underlying error) *BacktestError {
	return &BacktestError{
		Category:   ErrorCategoryValidation,
		Component:  component,
		Operation:  "load",
		Message:    message,
		Underlying: underlying,
		Line:       line,
		Index:      -1,
	}
}

// NewEmptySeriesError reports a source that yielded zero usable records.
func NewEmptySeriesError(component, source string) *BacktestError {
	return &BacktestError{
		Category:  ErrorCategoryData,
		Component: component,
		Operation: "load",
		Message:   fmt.Sprintf("no usable records in %q", source),
		Index:     -1,
	}
}

// NewInvalidPriceError reports a close price <= 0 encountered during a run.
// The run is aborted and its partial state discarded.
func NewInvalidPriceError(component string, index int, date time.Time, close float64) *BacktestError {
	return &BacktestError{
		Category:  ErrorCategoryPrice,
		Component: component,
		Operation: "run",
		Message:   fmt.Sprintf("close price %.8f is not positive", close),
		Index:     index,
		Date:      date,
	}
}

// NewConfigError reports invalid configuration or run parameters.
func NewConfigError(component, operation, message string) *BacktestError {
	return &BacktestError{
		Category:  ErrorCategoryConfig,
		Component: component,
		Operation: operation,
		Message:   message,
		Index:     -1,
	}
}

// NewStrategyError wraps a policy failure the engine cannot recover from.
func NewStrategyError(component, operation string, underlying error) *BacktestError {
	return &BacktestError{
		Category:   ErrorCategoryStrategy,
		Component:  component,
		Operation:  operation,
		Message:    "policy decision failed",
		Underlying: underlying,
		Index:      -1,
	}
}

// CategoryOf extracts the category from an error chain, or "" when the chain
// contains no BacktestError.
func CategoryOf(err error) ErrorCategory {
	var be *BacktestError
	if errors.As(err, &be) {
		return be.Category
	}
	return ""
}

// IsMalformedRecord reports whether err is a malformed-record failure.
func IsMalformedRecord(err error) bool {
	return CategoryOf(err) == ErrorCategoryValidation
}

// IsEmptySeries reports whether err is an empty-series failure.
func IsEmptySeries(err error) bool {
	return CategoryOf(err) == ErrorCategoryData
}

// IsInvalidPrice reports whether err is an invalid-price failure.
func IsInvalidPrice(err error) bool {
	return CategoryOf(err) == ErrorCategoryPrice
}
