package middleware

import (
	"net/http"
	"time"

	"crypto-spot-service/internal/infrastructure/logging"
)

// responseWriter wraps http.ResponseWriter to capture status and size
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// RequestTracingMiddleware assigns each request an ID, propagates it through
// the context and response headers, and logs start and completion.
func RequestTracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := logging.GenerateRequestID()

		startTime := time.Now()
		ctx := logging.WithRequestID(r.Context(), requestID)
		ctx = logging.WithStartTime(ctx, startTime)

		w.Header().Set("X-Request-ID", requestID)

		wrapped := &responseWriter{ResponseWriter: w}

		logging.Debug(ctx, "HTTP request started", logging.Fields{
			"http_method": r.Method,
			"http_path":   r.URL.Path,
			"remote_ip":   getClientIP(r),
		})

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		duration := time.Since(startTime)
		fields := logging.Fields{
			"http_method":      r.Method,
			"http_path":        r.URL.Path,
			"http_status":      wrapped.statusCode,
			"remote_ip":        getClientIP(r),
			"response_size":    wrapped.written,
			"response_time_ms": float64(duration.Nanoseconds()) / 1e6,
		}
		if wrapped.statusCode >= http.StatusInternalServerError {
			logging.Error(ctx, "HTTP request completed", fields)
		} else {
			logging.Info(ctx, "HTTP request completed", fields)
		}
	})
}
