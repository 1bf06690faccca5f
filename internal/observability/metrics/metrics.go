// Package metrics exposes prometheus instruments for the HTTP layer and the
// import pipeline.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics instruments inbound HTTP traffic.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP instruments on the default registry.
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paceline",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "paceline",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// GinMiddleware records request counts and latency.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.requestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ImportMetrics instruments the CSV import pipeline.
type ImportMetrics struct {
	rowsImported  prometheus.Counter
	rowsRejected  prometheus.Counter
	importsTotal  *prometheus.CounterVec
	importSeconds prometheus.Histogram
}

// NewImportMetrics registers the importer instruments on the default registry.
func NewImportMetrics() *ImportMetrics {
	return &ImportMetrics{
		rowsImported: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "paceline",
			Subsystem: "importer",
			Name:      "rows_imported_total",
			Help:      "Count of CSV rows normalized and persisted.",
		}),
		rowsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "paceline",
			Subsystem: "importer",
			Name:      "rows_rejected_total",
			Help:      "Count of CSV rows rejected during normalization.",
		}),
		importsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paceline",
			Subsystem: "importer",
			Name:      "imports_total",
			Help:      "Count of import runs by outcome.",
		}, []string{"status"}),
		importSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "paceline",
			Subsystem: "importer",
			Name:      "import_duration_seconds",
			Help:      "Wall-clock duration of import runs.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveImport records one finished import run.
func (m *ImportMetrics) ObserveImport(status string, imported, rejected int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rowsImported.Add(float64(imported))
	m.rowsRejected.Add(float64(rejected))
	m.importsTotal.WithLabelValues(status).Inc()
	m.importSeconds.Observe(elapsed.Seconds())
}
