package data

import (
	"time"

	"github.com/btclab/btc-accumulator/pkg/types"
)

// DataProvider interface for loading historical daily price data from various sources
type DataProvider interface {
	// LoadRecords loads historical records from the specified source, sorted
	// ascending by date
	LoadRecords(source string) ([]types.PriceRecord, error)

	// ValidateRecords validates the integrity of loaded records
	ValidateRecords(records []types.PriceRecord) error

	// GetName returns the name of the data provider
	GetName() string
}

// DataFilter interface for filtering loaded records
type DataFilter interface {
	// FilterByDateRange keeps records within [start, end]; a zero bound is open
	FilterByDateRange(records []types.PriceRecord, start, end time.Time) []types.PriceRecord

	// ValidateDateSequence ensures records are strictly increasing by date
	ValidateDateSequence(records []types.PriceRecord) error
}

// CSVHeaderMapping defines the header names used to locate columns in a CSV
// export. Columns are resolved by name from the header row, not by position.
type CSVHeaderMapping struct {
	DateColumn      string
	OpenColumn      string
	HighColumn      string
	LowColumn       string
	CloseColumn     string
	VolumeColumn    string // optional, 0 when absent
	MarketCapColumn string // optional, 0 when absent
	DateLayouts     []string
}

// CoinMarketCapFormat matches the CoinMarketCap historical-data export the
// reference dataset was downloaded as.
var CoinMarketCapFormat = CSVHeaderMapping{
	DateColumn:      "timeOpen",
	OpenColumn:      "open",
	HighColumn:      "high",
	LowColumn:       "low",
	CloseColumn:     "close",
	VolumeColumn:    "volume",
	MarketCapColumn: "marketCap",
	DateLayouts:     []string{time.RFC3339, "2006-01-02"},
}
