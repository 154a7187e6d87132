package data

import (
	"os"
	"path/filepath"
	"testing"

	bterrors "github.com/btclab/btc-accumulator/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// sampleCSV mimics a CoinMarketCap export: newest rows first, BOM on the
// header, quoted cells.
const sampleCSV = "\uFEFFtimeOpen,open,high,low,close,volume,marketCap\n" +
	"\"2022-01-03T00:00:00Z\",46500,47600,45800,46400,31000000000,878000000000\n" +
	"\"2022-01-02T00:00:00Z\",47700,47900,46600,47300,27000000000,895000000000\n" +
	"\"2022-01-01T00:00:00Z\",46200,47900,46000,47700,24000000000,902000000000\n"

func TestCSVProvider_LoadRecords(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	provider := NewCSVProvider()
	records, err := provider.LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Sorted ascending even though the export is newest-first.
	assert.Equal(t, "2022-01-01", records[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2022-01-03", records[2].Date.Format("2006-01-02"))

	assert.Equal(t, 47700.0, records[0].Close)
	assert.Equal(t, 46400.0, records[2].Close)
	assert.Equal(t, 24000000000.0, records[0].Volume)
	assert.Equal(t, 902000000000.0, records[0].MarketCap)
}

func TestCSVProvider_PlainDateLayout(t *testing.T) {
	path := writeCSV(t, "timeOpen,open,high,low,close\n2022-01-01,100,110,90,105\n")

	records, err := NewCSVProvider().LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 105.0, records[0].Close)
	assert.Zero(t, records[0].Volume)
}

func TestCSVProvider_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := NewCSVProvider().LoadRecords(path)
	assert.True(t, bterrors.IsEmptySeries(err))
}

func TestCSVProvider_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "timeOpen,open,high,low,close\n")

	_, err := NewCSVProvider().LoadRecords(path)
	assert.True(t, bterrors.IsEmptySeries(err))
}

func TestCSVProvider_MissingFile(t *testing.T) {
	_, err := NewCSVProvider().LoadRecords(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestCSVProvider_MissingColumn(t *testing.T) {
	path := writeCSV(t, "timeOpen,open,high,low\n2022-01-01,100,110,90\n")

	_, err := NewCSVProvider().LoadRecords(path)
	require.Error(t, err)
	assert.True(t, bterrors.IsMalformedRecord(err))
	assert.Contains(t, err.Error(), "close")
}

func TestCSVProvider_MalformedRowAbortsWithLine(t *testing.T) {
	path := writeCSV(t, "timeOpen,open,high,low,close\n"+
		"2022-01-01,100,110,90,105\n"+
		"2022-01-02,100,110,90,not-a-number\n"+
		"2022-01-03,100,110,90,105\n")

	_, err := NewCSVProvider().LoadRecords(path)
	require.Error(t, err)
	assert.True(t, bterrors.IsMalformedRecord(err))
	assert.Contains(t, err.Error(), "line 3")
}

func TestCSVProvider_UnparseableDate(t *testing.T) {
	path := writeCSV(t, "timeOpen,open,high,low,close\n01/02/2022,100,110,90,105\n")

	_, err := NewCSVProvider().LoadRecords(path)
	require.Error(t, err)
	assert.True(t, bterrors.IsMalformedRecord(err))
}

func TestCSVProvider_NonPositivePrice(t *testing.T) {
	path := writeCSV(t, "timeOpen,open,high,low,close\n2022-01-01,100,110,90,0\n")

	_, err := NewCSVProvider().LoadRecords(path)
	require.Error(t, err)
	assert.True(t, bterrors.IsMalformedRecord(err))
}

func TestCSVProvider_DuplicateDates(t *testing.T) {
	path := writeCSV(t, "timeOpen,open,high,low,close\n"+
		"2022-01-01,100,110,90,105\n"+
		"2022-01-01,100,110,90,106\n")

	_, err := NewCSVProvider().LoadRecords(path)
	require.Error(t, err)
	assert.True(t, bterrors.IsMalformedRecord(err))
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestCSVProvider_HighBelowLowRejected(t *testing.T) {
	path := writeCSV(t, "timeOpen,open,high,low,close\n2022-01-01,100,90,110,105\n")

	_, err := NewCSVProvider().LoadRecords(path)
	require.Error(t, err)
	assert.True(t, bterrors.IsMalformedRecord(err))
}

func TestCSVProvider_GetName(t *testing.T) {
	assert.Equal(t, "CSV Provider", NewCSVProvider().GetName())
}
