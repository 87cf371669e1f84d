package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the inventory tracker
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Store metrics
	StoreOperationsTotal   *prometheus.CounterVec
	StoreOperationDuration *prometheus.HistogramVec
	ItemsInCollection      prometheus.Gauge

	// Document metrics
	DocumentIOTotal    *prometheus.CounterVec
	DocumentIODuration *prometheus.HistogramVec
	DocumentSizeBytes  prometheus.Gauge

	// Health metrics
	DataFileHealthy prometheus.Gauge
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a Metrics instance registered on the given
// registry. Tests use a fresh registry per instance to avoid duplicate
// registration panics.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_tracker_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_tracker_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_tracker_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),

		StoreOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_tracker_store_operations_total",
				Help: "Total number of store operations",
			},
			[]string{"operation", "status"},
		),
		StoreOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_tracker_store_operation_duration_seconds",
				Help:    "Duration of store operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		ItemsInCollection: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_tracker_items_in_collection",
				Help: "Number of items in the inventory collection after the last successful operation",
			},
		),

		DocumentIOTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_tracker_document_io_total",
				Help: "Total number of document reads and writes",
			},
			[]string{"operation", "status"},
		),
		DocumentIODuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_tracker_document_io_duration_seconds",
				Help:    "Duration of document reads and writes in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		DocumentSizeBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_tracker_document_size_bytes",
				Help: "Size of the persisted inventory document after the last write",
			},
		),

		DataFileHealthy: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_tracker_data_file_healthy",
				Help: "Whether the inventory data file is accessible (1) or not (0)",
			},
		),
	}
}

// UpdateDataFileHealth records the current accessibility of the data file.
func (m *Metrics) UpdateDataFileHealth(healthy bool) {
	if healthy {
		m.DataFileHealthy.Set(1)
	} else {
		m.DataFileHealthy.Set(0)
	}
}
