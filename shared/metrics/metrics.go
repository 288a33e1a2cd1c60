package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "eaglebank",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eaglebank",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eaglebank",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"method", "path"},
	)

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eaglebank",
			Name:      "operations_total",
			Help:      "Total number of completed domain operations.",
		},
		[]string{"operation"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		operations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies. Routes are labelled by
// their pattern so path parameters do not blow up cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		httpInFlight.Inc()
		start := time.Now()
		defer func() {
			httpInFlight.Dec()
			status := c.Writer.Status()
			// A panicking handler has not written its 500 yet; recovery further
			// out will, so count it as one and keep unwinding.
			rec := recover()
			if rec != nil {
				status = http.StatusInternalServerError
			}
			observe(c, status, start)
			if rec != nil {
				panic(rec)
			}
		}()
		c.Next()
	}
}

func observe(c *gin.Context, status int, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}

// RegisterGauge exposes a value sampled at scrape time, e.g. the number of
// stored records. Registering the same name twice panics.
func RegisterGauge(name, help string, sample func() float64) {
	Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "eaglebank",
			Name:      name,
			Help:      help,
		},
		sample,
	))
}

// RecordOperation counts one completed domain operation, e.g. "account.create".
func RecordOperation(operation string) {
	operations.WithLabelValues(operation).Inc()
}
