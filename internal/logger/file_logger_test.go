package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesLeveledEntries(t *testing.T) {
	dir := t.TempDir()

	l, err := NewLogger(dir, "BTC")
	require.NoError(t, err)

	l.Info("loaded %d days", 365)
	l.Purchase(time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC), 80, 3, 0.0375, "BELOW_ATH")
	l.Status("run complete")
	require.NoError(t, l.Close())

	path := filepath.Join(dir, "BTC_"+time.Now().Format("2006-01-02")+".log")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	assert.Contains(t, content, "backtest session started")
	assert.Contains(t, content, "[INFO] loaded 365 days")
	assert.Contains(t, content, "[PURCHASE] 2022-01-03 bought 0.03750000 BTC at $80.00 for $3.00 (BELOW_ATH)")
	assert.Contains(t, content, "[STATUS] run complete")
}

func TestLogger_CloseIsIdempotent(t *testing.T) {
	l, err := NewLogger(t.TempDir(), "BTC")
	require.NoError(t, err)

	require.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}
