package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ihsanbank/core/internal/infrastructure/metrics"
)

// MetricsMiddleware records HTTP request metrics.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new MetricsMiddleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Wrap wraps an http.Handler with metrics recording.
func (m *MetricsMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		m.metrics.HTTPRequests.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		m.metrics.HTTPDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// resourceSegments are collection names whose following path segment is a
// dynamic identifier.
var resourceSegments = map[string]bool{
	"accounts":  true,
	"customers": true,
	"transfers": true,
	"approvals": true,
	"products":  true,
	"number":    true,
}

// normalizePath collapses dynamic path segments to keep label cardinality low.
// /api/v1/accounts/01ABC123/transactions -> /api/v1/accounts/:id/transactions
func normalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i := 1; i < len(segments)-1; i++ {
		if resourceSegments[segments[i]] && segments[i+1] != "" && !resourceSegments[segments[i+1]] {
			if segments[i+1] != "pending" && segments[i+1] != "validate" {
				segments[i+1] = ":id"
			}
		}
	}
	return strings.Join(segments, "/")
}
