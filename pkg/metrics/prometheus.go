// Package metrics provides Prometheus metrics for the lineout attendance service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Table load outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeMissing = "missing"
	OutcomeError   = "error"
)

// Manager manages all Prometheus metrics for the lineout service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Backend metrics
	tableLoads           *prometheus.CounterVec
	tableRows            *prometheus.GaugeVec
	tableLoadDuration    *prometheus.HistogramVec
	backendAppends       *prometheus.CounterVec
	backendAppendLatency prometheus.Histogram

	// Attendance pipeline metrics
	rowsDropped         *prometheus.CounterVec
	eventsCleaned       prometheus.Counter
	sessionCount        prometheus.Gauge
	unidentifiedPlayers prometheus.Gauge
	submissions         *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager registered on the configured
// registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lineout",
		subsystem:        "attendance",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	})
}

func (m *Manager) histogramVec(name, help string, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}, labels)
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.tableLoads = m.counterVec("table_loads_total",
		"Table loads from the backend by table and outcome", "table", "outcome")
	m.tableRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "table_rows",
		Help:        "Data rows returned by the last load of each table",
		ConstLabels: m.customLabels,
	}, []string{"table"})
	m.tableLoadDuration = m.histogramVec("table_load_duration_milliseconds",
		"Backend table load latency in milliseconds", "table")
	m.backendAppends = m.counterVec("backend_appends_total",
		"Rows appended to backend tables by table and outcome", "table", "outcome")
	m.backendAppendLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "backend_append_duration_milliseconds",
		Help:        "Backend append latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	})

	m.rowsDropped = m.counterVec("rows_dropped_total",
		"Unified attendance rows dropped during cleaning by reason", "reason")
	m.eventsCleaned = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "events_cleaned_total",
		Help:        "Attendance events produced by cleaning",
		ConstLabels: m.customLabels,
	})
	m.sessionCount = m.gauge("sessions", "Distinct session days in the last computed snapshot")
	m.unidentifiedPlayers = m.gauge("unidentified_players",
		"Distinct attendance names that match no roster player")
	m.submissions = m.counterVec("submissions_total",
		"Manual attendance submissions by outcome", "outcome")

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds", "endpoint", "method", "status_code")

	m.errorRateByComponent = m.counterVec("errors_by_component_total",
		"Errors by component and type", "component", "error_type")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Errors by endpoint, method and type", "endpoint", "method", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "System memory usage in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Number of goroutines")
}

// RecordTableLoad records one backend load of table with its outcome,
// latency and row count. Rows are only recorded for successful loads.
func RecordTableLoad(table, outcome string, latencyMs float64, rows int) {
	globalManager.tableLoads.WithLabelValues(table, outcome).Inc()
	globalManager.tableLoadDuration.WithLabelValues(table).Observe(latencyMs)
	if outcome == OutcomeOK {
		globalManager.tableRows.WithLabelValues(table).Set(float64(rows))
	}
}

// RecordBackendAppend records one append to table.
func RecordBackendAppend(table, outcome string, latencyMs float64) {
	globalManager.backendAppends.WithLabelValues(table, outcome).Inc()
	globalManager.backendAppendLatency.Observe(latencyMs)
}

// RecordRowsDropped adds n dropped rows for reason.
func RecordRowsDropped(reason string, n int) {
	if n <= 0 {
		return
	}
	globalManager.rowsDropped.WithLabelValues(reason).Add(float64(n))
}

// RecordEventsCleaned adds n cleaned events.
func RecordEventsCleaned(n int) {
	if n <= 0 {
		return
	}
	globalManager.eventsCleaned.Add(float64(n))
}

// UpdateSessionCount sets the number of distinct session days.
func UpdateSessionCount(n int) {
	globalManager.sessionCount.Set(float64(n))
}

// UpdateUnidentifiedPlayers sets the number of unmatched attendance names.
func UpdateUnidentifiedPlayers(n int) {
	globalManager.unidentifiedPlayers.Set(float64(n))
}

// RecordSubmission counts one manual attendance submission.
func RecordSubmission(outcome string) {
	globalManager.submissions.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
