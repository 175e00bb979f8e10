package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests no chi route pattern matched, so
// arbitrary 404 paths cannot grow label cardinality.
const unmatchedRoute = "unmatched"

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cardex",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of cardex HTTP routes",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardex",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests served per cardex route and status",
		},
		[]string{"method", "route", "status"},
	)
)

var registerHTTPOnce sync.Once

// RegisterHTTPMetrics registers the HTTP route metrics on the default
// registerer. Safe to call more than once.
func RegisterHTTPMetrics() {
	registerHTTPOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestDuration, HTTPRequestsTotal)
	})
}

// Middleware observes every request by its chi route pattern,
// e.g. "/cards/view" rather than the raw URL with its query string.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			labels := prometheus.Labels{
				"method": r.Method,
				"route":  routeOf(r),
				"status": strconv.Itoa(rec.status),
			}
			HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())
			HTTPRequestsTotal.With(labels).Inc()
		})
	}
}

func routeOf(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}

// statusRecorder keeps the first status written to the response.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b) //nolint:wrapcheck // delegating to underlying ResponseWriter
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }
