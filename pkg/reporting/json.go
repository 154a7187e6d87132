package reporting

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/btclab/btc-accumulator/internal/backtest"
)

// DefaultJSONReporter implements JSON output.
type DefaultJSONReporter struct{}

// NewDefaultJSONReporter creates a new JSON reporter
func NewDefaultJSONReporter() *DefaultJSONReporter {
	return &DefaultJSONReporter{}
}

// WriteSummaryJSON writes the summaries as indented JSON. An empty path
// writes to stdout.
func (r *DefaultJSONReporter) WriteSummaryJSON(summaries []backtest.Summary, path string) error {
	raw, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summaries: %w", err)
	}

	if path == "" {
		fmt.Println(string(raw))
		return nil
	}

	if err := EnsureDirectoryExists(path); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}
