package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputDir returns the default results directory for a symbol.
func DefaultOutputDir(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		s = "UNKNOWN"
	}
	return filepath.Join("results", s)
}

// PurchasesCSVPath returns the default purchase-log path for a run.
func PurchasesCSVPath(dir, strategyName string) string {
	return filepath.Join(dir, fmt.Sprintf("purchases_%s.csv", sanitize(strategyName)))
}

// WorkbookPath returns the default XLSX report path for a run.
func WorkbookPath(dir, strategyName string) string {
	return filepath.Join(dir, fmt.Sprintf("backtest_%s.xlsx", sanitize(strategyName)))
}

// SummaryJSONPath returns the default JSON summary path.
func SummaryJSONPath(dir string) string {
	return filepath.Join(dir, "summary.json")
}

func sanitize(name string) string {
	replacer := strings.NewReplacer("%", "", "/", "-", " ", "_")
	return replacer.Replace(name)
}

// EnsureDirectoryExists creates the parent directory of path if needed.
func EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
