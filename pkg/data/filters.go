package data

import (
	"time"

	bterrors "github.com/btclab/btc-accumulator/internal/errors"
	"github.com/btclab/btc-accumulator/pkg/types"
)

// DefaultDataFilter implements DataFilter for in-memory record slices.
type DefaultDataFilter struct{}

// NewDefaultDataFilter creates a new data filter
func NewDefaultDataFilter() *DefaultDataFilter {
	return &DefaultDataFilter{}
}

// FilterByDateRange keeps records with start <= date <= end. A zero start or
// end leaves that bound open. The result is a fresh slice, never a view into
// the input.
func (f *DefaultDataFilter) FilterByDateRange(records []types.PriceRecord, start, end time.Time) []types.PriceRecord {
	filtered := make([]types.PriceRecord, 0, len(records))
	for _, rec := range records {
		if !start.IsZero() && rec.Date.Before(start) {
			continue
		}
		if !end.IsZero() && rec.Date.After(end) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// ValidateDateSequence ensures records are strictly increasing by date.
func (f *DefaultDataFilter) ValidateDateSequence(records []types.PriceRecord) error {
	for i := 1; i < len(records); i++ {
		if !records[i-1].Date.Before(records[i].Date) {
			return bterrors.NewMalformedRecordError("data_filter", i+1,
				"dates not strictly increasing at "+records[i].Date.Format("2006-01-02"), nil)
		}
	}
	return nil
}
