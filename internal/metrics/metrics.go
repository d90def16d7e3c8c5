package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all Prometheus metrics for the portal backend
type Registry struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	MappingsReplacedTotal prometheus.Counter
	SkusCopiedTotal       *prometheus.CounterVec
	AuditWriteFailures    prometheus.Counter
}

// NewRegistry initializes and returns a new Registry with all metrics registered
func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sustainability_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sustainability_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		MappingsReplacedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sustainability_mapping_replacements_total",
				Help: "Total wholesale replacements of a SKU's component mapping set",
			},
		),
		SkusCopiedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sustainability_skus_copied_total",
				Help: "Outcomes of copy-to-period requests by action",
			},
			[]string{"action"},
		),
		AuditWriteFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sustainability_audit_write_failures_total",
				Help: "Audit log writes that failed and were swallowed",
			},
		),
	}
}
