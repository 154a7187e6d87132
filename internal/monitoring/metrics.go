package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Run metrics
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accumulator_backtest_runs_total",
			Help: "Total number of completed backtest runs",
		},
		[]string{"strategy"},
	)

	runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "accumulator_backtest_run_duration_seconds",
			Help:    "Duration of backtest runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	// Outcome metrics
	purchasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accumulator_backtest_purchases_total",
			Help: "Total number of purchases executed across runs",
		},
		[]string{"strategy"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accumulator_backtest_errors_total",
			Help: "Total number of failed runs or loads",
		},
		[]string{"category"},
	)
)

func init() {
	prometheus.MustRegister(runsTotal)
	prometheus.MustRegister(runDuration)
	prometheus.MustRegister(purchasesTotal)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles the Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordRun records a completed backtest run
func RecordRun(strategy string, duration time.Duration, purchases int) {
	runsTotal.WithLabelValues(strategy).Inc()
	runDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	purchasesTotal.WithLabelValues(strategy).Add(float64(purchases))
}

// RecordError records a failed run or load by error category
func RecordError(category string) {
	errorsTotal.WithLabelValues(category).Inc()
}
