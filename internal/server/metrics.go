package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yearwheel",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yearwheel",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	layoutPasses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "yearwheel",
		Subsystem: "engine",
		Name:      "layout_passes_total",
		Help:      "Completed wheel layout passes.",
	})

	layoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "yearwheel",
		Subsystem: "engine",
		Name:      "layout_duration_seconds",
		Help:      "Wheel layout pass latency.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, layoutPasses, layoutDuration)
}

// MetricsHandler serves the prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// recordLayoutPass updates the engine metrics after a layout run.
func recordLayoutPass(elapsed time.Duration) {
	layoutPasses.Inc()
	layoutDuration.Observe(elapsed.Seconds())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request counting and latency
// observation under a stable route label.
func instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
