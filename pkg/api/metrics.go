package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the inspection service.
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Parse metrics
	filesParsedTotal  *prometheus.CounterVec
	chunksParsedTotal *prometheus.CounterVec
	parseDuration     prometheus.Histogram
	fileSizeBytes     prometheus.Histogram

	// API key authentication metrics
	authRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pngtool_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pngtool_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pngtool_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		filesParsedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pngtool_files_parsed_total",
				Help: "Total number of files parsed, by container type and outcome",
			},
			[]string{"container", "status"},
		),

		chunksParsedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pngtool_chunks_parsed_total",
				Help: "Total number of chunks parsed, by chunk type",
			},
			[]string{"type"},
		),

		parseDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pngtool_parse_duration_seconds",
				Help:    "File parse and validation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		fileSizeBytes: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pngtool_file_size_bytes",
				Help:    "Size of inspected files in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
			},
		),

		authRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pngtool_auth_requests_total",
				Help: "Total number of authentication requests",
			},
			[]string{"status"},
		),
	}
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordParse records one parse attempt and its per-chunk counts.
func (m *Metrics) RecordParse(report *InspectionReport, duration time.Duration) {
	status := statusSuccess
	if !report.Valid {
		status = statusError
	}
	m.filesParsedTotal.WithLabelValues(report.Container, status).Inc()
	m.parseDuration.Observe(duration.Seconds())
	m.fileSizeBytes.Observe(float64(report.SizeBytes))
	for _, c := range report.Chunks {
		m.chunksParsedTotal.WithLabelValues(c.Type).Inc()
	}
}

// RecordAuthRequest records an authentication attempt.
func (m *Metrics) RecordAuthRequest(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.authRequestsTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler instruments an HTTP handler with request metrics.
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)

		m.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
