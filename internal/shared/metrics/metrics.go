package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	exportStartedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cv_export_started_total",
		Help: "Total CV exports started",
	})
	exportCompletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cv_export_completed_total",
		Help: "Total CV exports completed",
	})
	exportFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cv_export_failed_total",
		Help: "Total CV exports failed",
	})
	exportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cv_export_duration_seconds",
		Help:    "CV export duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cv_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
)

func init() {
	registry.MustRegister(
		exportStartedTotal,
		exportCompletedTotal,
		exportFailedTotal,
		exportDuration,
		httpRequestsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncExportStarted increments the started counter.
func IncExportStarted() {
	exportStartedTotal.Inc()
}

// IncExportCompleted increments the completed counter.
func IncExportCompleted() {
	exportCompletedTotal.Inc()
}

// IncExportFailed increments the failed counter.
func IncExportFailed() {
	exportFailedTotal.Inc()
}

// ObserveExportDuration records how long one export took.
func ObserveExportDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	exportDuration.Observe(d.Seconds())
}

// ObserveRequest counts a finished HTTP request. route is the matched pattern,
// not the raw path, to keep label cardinality bounded.
func ObserveRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
