package data

import (
	"time"

	bterrors "github.com/btclab/btc-accumulator/internal/errors"
	"github.com/btclab/btc-accumulator/pkg/types"
)

// PriceSeries is an ordered sequence of daily price records, immutable after
// construction. Callers own the series; a backtest run only reads from it, so
// re-iterating always replays the same records.
type PriceSeries struct {
	records []types.PriceRecord
}

// NewPriceSeries builds a series from records already sorted ascending by
// date. The input slice is copied so later mutation by the caller cannot
// reach the series. Fails with an empty-series error on zero records and a
// malformed-record error when dates are not strictly increasing.
//
// Price values are not validated here; that is the provider's job
// (ValidateRecords). Keeping construction order-only lets the engine's own
// invalid-price handling stay reachable.
func NewPriceSeries(records []types.PriceRecord) (*PriceSeries, error) {
	if len(records) == 0 {
		return nil, bterrors.NewEmptySeriesError("price_series", "records")
	}
	for i := 1; i < len(records); i++ {
		if !records[i-1].Date.Before(records[i].Date) {
			return nil, bterrors.NewMalformedRecordError("price_series", i+1,
				"dates not strictly increasing at "+records[i].Date.Format("2006-01-02"), nil)
		}
	}

	copied := make([]types.PriceRecord, len(records))
	copy(copied, records)
	return &PriceSeries{records: copied}, nil
}

// LoadSeries loads a series from a data source via the given provider.
func LoadSeries(provider DataProvider, source string) (*PriceSeries, error) {
	records, err := provider.LoadRecords(source)
	if err != nil {
		return nil, err
	}
	return NewPriceSeries(records)
}

// Len returns the number of days in the series.
func (s *PriceSeries) Len() int {
	return len(s.records)
}

// At returns the record at index i.
func (s *PriceSeries) At(i int) types.PriceRecord {
	return s.records[i]
}

// First returns the earliest record.
func (s *PriceSeries) First() types.PriceRecord {
	return s.records[0]
}

// Last returns the latest record.
func (s *PriceSeries) Last() types.PriceRecord {
	return s.records[len(s.records)-1]
}

// EachDay iterates the series in ascending date order, stopping at the first
// error returned by fn.
func (s *PriceSeries) EachDay(fn func(i int, rec types.PriceRecord) error) error {
	for i, rec := range s.records {
		if err := fn(i, rec); err != nil {
			return err
		}
	}
	return nil
}

// Records returns a copy of the backing records.
func (s *PriceSeries) Records() []types.PriceRecord {
	copied := make([]types.PriceRecord, len(s.records))
	copy(copied, s.records)
	return copied
}

// Slice returns a new series restricted to [start, end]. A zero start or end
// leaves that bound open. Fails with an empty-series error when no records
// remain.
func (s *PriceSeries) Slice(start, end time.Time) (*PriceSeries, error) {
	filter := NewDefaultDataFilter()
	filtered := filter.FilterByDateRange(s.records, start, end)
	if len(filtered) == 0 {
		return nil, bterrors.NewEmptySeriesError("price_series", "date range")
	}
	return &PriceSeries{records: filtered}, nil
}
