package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	bterrors "github.com/btclab/btc-accumulator/internal/errors"
	"github.com/btclab/btc-accumulator/pkg/types"
)

const csvComponent = "csv_provider"

// CSVProvider implements DataProvider for CSV exports with a header row.
// Loading is strict: the first malformed row aborts the load with its line
// number instead of being skipped.
type CSVProvider struct {
	format CSVHeaderMapping
}

// NewCSVProvider creates a CSV data provider for the CoinMarketCap export format
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{format: CoinMarketCapFormat}
}

// NewCSVProviderWithFormat creates a CSV data provider with a custom header mapping
func NewCSVProviderWithFormat(format CSVHeaderMapping) *CSVProvider {
	return &CSVProvider{format: format}
}

// GetName returns the name of the data provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadRecords loads daily records from a CSV file, sorted ascending by date
func (p *CSVProvider) LoadRecords(source string) ([]types.PriceRecord, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	records, err := p.parse(file)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, bterrors.NewEmptySeriesError(csvComponent, source)
	}

	// Exports ship newest-first; backtests run oldest-first.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	if err := p.ValidateRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *CSVProvider) parse(r io.Reader) ([]types.PriceRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, bterrors.NewMalformedRecordError(csvComponent, 1, "unreadable header row", err)
	}

	columns, err := p.resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []types.PriceRecord
	line := 1
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, bterrors.NewMalformedRecordError(csvComponent, line+1, "unreadable row", err)
		}
		line++

		rec, err := p.parseRow(row, columns, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnIndexes holds resolved positions for each mapped column.
// Optional columns resolve to -1 when absent from the header.
type columnIndexes struct {
	date, open, high, low, close, volume, marketCap int
}

func (p *CSVProvider) resolveColumns(header []string) (columnIndexes, error) {
	find := func(name string) int {
		for i, h := range header {
			// exports may carry a BOM or stray quotes on the first header cell
			h = strings.TrimSpace(strings.Trim(strings.TrimPrefix(h, "\ufeff"), `"`))
			if strings.EqualFold(h, name) {
				return i
			}
		}
		return -1
	}

	cols := columnIndexes{
		date:      find(p.format.DateColumn),
		open:      find(p.format.OpenColumn),
		high:      find(p.format.HighColumn),
		low:       find(p.format.LowColumn),
		close:     find(p.format.CloseColumn),
		volume:    -1,
		marketCap: -1,
	}
	if p.format.VolumeColumn != "" {
		cols.volume = find(p.format.VolumeColumn)
	}
	if p.format.MarketCapColumn != "" {
		cols.marketCap = find(p.format.MarketCapColumn)
	}

	required := map[string]int{
		p.format.DateColumn:  cols.date,
		p.format.OpenColumn:  cols.open,
		p.format.HighColumn:  cols.high,
		p.format.LowColumn:   cols.low,
		p.format.CloseColumn: cols.close,
	}
	for name, idx := range required {
		if idx < 0 {
			return cols, bterrors.NewMalformedRecordError(csvComponent, 1,
				fmt.Sprintf("missing required column %q", name), nil)
		}
	}
	return cols, nil
}

func (p *CSVProvider) parseRow(row []string, cols columnIndexes, line int) (types.PriceRecord, error) {
	var rec types.PriceRecord

	cell := func(idx int) (string, bool) {
		if idx < 0 || idx >= len(row) {
			return "", false
		}
		return strings.TrimSpace(strings.Trim(row[idx], `"`)), true
	}

	dateStr, ok := cell(cols.date)
	if !ok || dateStr == "" {
		return rec, bterrors.NewMalformedRecordError(csvComponent, line, "missing date field", nil)
	}
	date, err := p.parseDate(dateStr)
	if err != nil {
		return rec, bterrors.NewMalformedRecordError(csvComponent, line,
			fmt.Sprintf("unparseable date %q", dateStr), err)
	}
	rec.Date = date

	price := func(idx int, name string) (float64, error) {
		s, ok := cell(idx)
		if !ok || s == "" {
			return 0, bterrors.NewMalformedRecordError(csvComponent, line,
				fmt.Sprintf("missing %s field", name), nil)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, bterrors.NewMalformedRecordError(csvComponent, line,
				fmt.Sprintf("invalid %s value %q", name, s), err)
		}
		if v <= 0 {
			return 0, bterrors.NewMalformedRecordError(csvComponent, line,
				fmt.Sprintf("%s price must be positive, got %s", name, s), nil)
		}
		return v, nil
	}

	if rec.Open, err = price(cols.open, "open"); err != nil {
		return rec, err
	}
	if rec.High, err = price(cols.high, "high"); err != nil {
		return rec, err
	}
	if rec.Low, err = price(cols.low, "low"); err != nil {
		return rec, err
	}
	if rec.Close, err = price(cols.close, "close"); err != nil {
		return rec, err
	}

	optional := func(idx int, name string) (float64, error) {
		s, ok := cell(idx)
		if !ok || s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, bterrors.NewMalformedRecordError(csvComponent, line,
				fmt.Sprintf("invalid %s value %q", name, s), err)
		}
		if v < 0 {
			return 0, bterrors.NewMalformedRecordError(csvComponent, line,
				fmt.Sprintf("%s must be non-negative, got %s", name, s), nil)
		}
		return v, nil
	}

	if rec.Volume, err = optional(cols.volume, "volume"); err != nil {
		return rec, err
	}
	if rec.MarketCap, err = optional(cols.marketCap, "marketCap"); err != nil {
		return rec, err
	}

	return rec, nil
}

func (p *CSVProvider) parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range p.format.DateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ValidateRecords validates the integrity of loaded records: positive prices,
// consistent high/low bounds, strictly increasing dates.
func (p *CSVProvider) ValidateRecords(records []types.PriceRecord) error {
	if len(records) == 0 {
		return bterrors.NewEmptySeriesError(csvComponent, "records")
	}

	for i, rec := range records {
		if rec.Open <= 0 || rec.High <= 0 || rec.Low <= 0 || rec.Close <= 0 {
			return bterrors.NewMalformedRecordError(csvComponent, i+2,
				fmt.Sprintf("non-positive price at %s", rec.Date.Format("2006-01-02")), nil)
		}
		if rec.High < rec.Low {
			return bterrors.NewMalformedRecordError(csvComponent, i+2,
				fmt.Sprintf("high below low at %s", rec.Date.Format("2006-01-02")), nil)
		}
		if i > 0 && !records[i-1].Date.Before(rec.Date) {
			return bterrors.NewMalformedRecordError(csvComponent, i+2,
				fmt.Sprintf("dates not strictly increasing at %s", rec.Date.Format("2006-01-02")), nil)
		}
	}
	return nil
}
