package metrics

import (
	"net/http"
	"strings"
	"time"
)

// HTTPMetricsMiddleware collects HTTP metrics for Prometheus
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		wrapped := &responseWriterMetrics{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		// Normalize the path to keep label cardinality bounded
		normalizedPath := normalizePath(r.URL.Path)

		next.ServeHTTP(wrapped, r)

		RecordHTTPRequest(r.Method, normalizedPath, wrapped.statusCode, time.Since(startTime).Seconds())
	})
}

// responseWriterMetrics wraps http.ResponseWriter to capture the status code
type responseWriterMetrics struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriterMetrics) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizePath collapses parameterized path segments
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/api/v1/rates/") {
		return "/api/v1/rates/{currency}"
	}
	if strings.HasPrefix(path, "/swagger/") {
		return "/swagger/"
	}
	return path
}
