package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightrec_operations_total",
			Help: "Total number of flight record operations",
		},
		[]string{"operation", "result"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flightrec_operation_duration_seconds",
			Help:    "Flight record operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	RowsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flightrec_rows_returned",
			Help:    "Distribution of rows returned by listing and report operations",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		},
		[]string{"operation"},
	)
)

// Observe records the outcome and duration of one operation.
func Observe(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	OperationsTotal.WithLabelValues(operation, result).Inc()
	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// WriteTextfile dumps the default registry in the text exposition format so a
// node exporter textfile collector can pick it up. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
