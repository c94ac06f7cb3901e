package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispo",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dispo",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dispo",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Declaration metrics
	declarationsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispo",
			Subsystem: "availability",
			Name:      "declarations_stored_total",
			Help:      "Total number of declarations stored",
		},
		[]string{"status", "period_kind"},
	)

	declarationsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispo",
			Subsystem: "availability",
			Name:      "declarations_deleted_total",
			Help:      "Total number of declarations deleted by their owner",
		},
	)

	declarationsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispo",
			Subsystem: "availability",
			Name:      "declarations_pruned_total",
			Help:      "Total number of expired declarations removed by retention",
		},
	)

	// Daily check metrics
	dailyChecksSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dispo",
			Subsystem: "dailycheck",
			Name:      "submitted_total",
			Help:      "Total number of daily checks submitted",
		},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		// Get route pattern from chi
		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordDeclarationStored records a stored declaration
func RecordDeclarationStored(status, periodKind string) {
	declarationsStored.WithLabelValues(status, periodKind).Inc()
}

// RecordDeclarationDeleted records an owner-initiated deletion
func RecordDeclarationDeleted() {
	declarationsDeleted.Inc()
}

// RecordDeclarationsPruned records retention removals
func RecordDeclarationsPruned(count int64) {
	declarationsPruned.Add(float64(count))
}

// RecordDailyCheckSubmitted records a submitted daily check
func RecordDailyCheckSubmitted() {
	dailyChecksSubmitted.Inc()
}
