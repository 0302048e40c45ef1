package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
)

// searchRoute is the only route whose requests carry a scope label.
const searchRoute = "/search"

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "harfsearch",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "harfsearch",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, status and search type",
		},
		[]string{"method", "route", "status", "type"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
}

// Middleware records HTTP request duration and count. Requests to /search
// are additionally labelled with the requested entity type.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			code := strconv.Itoa(status)

			var pattern string
			if rc := chi.RouteContext(r.Context()); rc != nil {
				pattern = rc.RoutePattern()
			}
			route := normalizeRoute(pattern)

			httpRequestDuration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(r.Method, route, code, searchType(route, r)).Inc()
		})
	}
}

// normalizeRoute maps requests that matched no route to a single label so
// arbitrary paths cannot blow up label cardinality.
func normalizeRoute(pattern string) string {
	if pattern == "" {
		return "unmatched"
	}
	return pattern
}

// searchType is the scope label: empty off /search, "all" when the type
// parameter is missing and "invalid" for unknown values.
func searchType(route string, r *http.Request) string {
	if route != searchRoute {
		return ""
	}
	t := r.URL.Query().Get("type")
	if t == "" {
		return string(kind.ScopeAll)
	}
	if !kind.Scope(t).IsValid() {
		return "invalid"
	}
	return t
}
