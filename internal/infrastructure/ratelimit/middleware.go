package ratelimit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"crypto-spot-service/internal/infrastructure/config"
	"crypto-spot-service/internal/infrastructure/logging"
	"crypto-spot-service/internal/infrastructure/metrics"
)

// Middleware applies per-client token bucket rate limiting to inbound
// requests.
type Middleware struct {
	limiter   *ClientLimiter
	skipPaths map[string]bool
	enabled   bool
}

// NewMiddleware builds the middleware from configuration. Health and
// monitoring endpoints are always exempt.
func NewMiddleware(cfg config.RateLimitConfig) *Middleware {
	skipPaths := map[string]bool{
		"/health":  true,
		"/ready":   true,
		"/metrics": true,
	}

	var limiter *ClientLimiter
	if cfg.Enabled {
		limiter = NewClientLimiter(cfg.Capacity, cfg.RefillRate)
	}

	return &Middleware{
		limiter:   limiter,
		skipPaths: skipPaths,
		enabled:   cfg.Enabled,
	}
}

// Handler returns the HTTP middleware handler
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled || m.skipPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		clientID := clientID(r)
		if !m.limiter.Allow(clientID) {
			metrics.RecordRateLimitedRequest(r.URL.Path)
			logging.Warn(r.Context(), "Rate limit exceeded", logging.Fields{
				"client_id": clientID,
				"path":      r.URL.Path,
				"method":    r.Method,
			})
			m.writeRateLimitError(w)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(m.limiter.Tokens(clientID)))
		next.ServeHTTP(w, r)
	})
}

// clientID identifies the caller for bucket keying, honouring proxy headers
func clientID(r *http.Request) string {
	if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		parts := strings.Split(xForwardedFor, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xRealIP := r.Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}

	remoteAddr := r.RemoteAddr
	if idx := strings.LastIndex(remoteAddr, ":"); idx != -1 {
		return remoteAddr[:idx]
	}
	return remoteAddr
}

// writeRateLimitError writes a 429 with a retry hint
func (m *Middleware) writeRateLimitError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   "RATE_LIMIT_EXCEEDED",
		"message": "Rate limit exceeded. Please slow down your requests.",
		"code":    http.StatusTooManyRequests,
	})
}
