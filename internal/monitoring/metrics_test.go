package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRun(t *testing.T) {
	before := testutil.ToFloat64(runsTotal.WithLabelValues("dca-test"))

	RecordRun("dca-test", 5*time.Millisecond, 3)
	RecordRun("dca-test", 5*time.Millisecond, 2)

	assert.Equal(t, before+2, testutil.ToFloat64(runsTotal.WithLabelValues("dca-test")))
	assert.Equal(t, 5.0, testutil.ToFloat64(purchasesTotal.WithLabelValues("dca-test")))
}

func TestRecordError(t *testing.T) {
	before := testutil.ToFloat64(errorsTotal.WithLabelValues("PRICE"))

	RecordError("PRICE")

	assert.Equal(t, before+1, testutil.ToFloat64(errorsTotal.WithLabelValues("PRICE")))
}

func TestMetricsHandler(t *testing.T) {
	RecordRun("handler-test", time.Millisecond, 1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	NewMetricsHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "accumulator_backtest_runs_total")
}
