package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	demoResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_resets_total",
			Help: "Total number of demo resets",
		},
		[]string{"trigger", "status"},
	)

	recordsSeeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_records_seeded_total",
			Help: "Total number of demo records written by the seeder",
		},
		[]string{"collection"},
	)

	voiceCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_calls_total",
			Help: "Total number of voice calls placed by the agent",
		},
		[]string{"kind", "status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Metrics labels requests by route pattern so ids do not blow up cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// RecordDemoReset counts one reset; trigger is "api", "cli" or "schedule".
func RecordDemoReset(trigger string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	demoResets.WithLabelValues(trigger, status).Inc()
}

func RecordSeededRecords(counts map[string]int) {
	for collection, n := range counts {
		recordsSeeded.WithLabelValues(collection).Add(float64(n))
	}
}

// RecordVoiceCall counts one call; kind is "simulated" or "dispatched".
func RecordVoiceCall(kind string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	voiceCalls.WithLabelValues(kind, status).Inc()
}
