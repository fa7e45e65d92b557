package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics for assessment observability.
var (
	assessmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sts_assessments_total",
		Help: "Total number of assessment requests handled",
	})
	assessmentsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sts_assessments_failed_total",
		Help: "Assessments in which at least one detector did not pass",
	})
	bitsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sts_bits_processed_total",
		Help: "Total number of bits assessed",
	})
	detectorFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sts_detector_failures_total",
		Help: "Per-detector count of not-passed results",
	}, []string{"detector"})
)

// Metrics exposes the Prometheus registry over HTTP.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates a Metrics instance backed by the default registry.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// ServeHTTP writes metrics in Prometheus text format.
func (m *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
