package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/config"
	"crypto-spot-service/internal/infrastructure/logging"
)

// AuthMiddleware guards the API with bearer session tokens
type AuthMiddleware struct {
	config config.AuthConfig
	auth   interfaces.AuthService
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(cfg config.AuthConfig, auth interfaces.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		config: cfg,
		auth:   auth,
	}
}

// AuthResponse is the authentication error body
type AuthResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Handler wraps the given handler with session token checks
func (am *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !am.config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		if am.isUnauthenticatedPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token := extractBearerToken(r)
		if token == "" {
			am.respondWithAuthError(w, r, "Bearer token missing", "TOKEN_MISSING")
			return
		}

		if !am.auth.Validate(token) {
			am.respondWithAuthError(w, r, "Invalid or expired session", "TOKEN_INVALID")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isUnauthenticatedPath checks exact matches and prefixes against the
// configured exempt paths.
func (am *AuthMiddleware) isUnauthenticatedPath(path string) bool {
	for _, unauthPath := range am.config.UnauthPaths {
		if path == unauthPath || strings.HasPrefix(path, unauthPath) {
			return true
		}
	}
	return false
}

// extractBearerToken pulls the token out of the Authorization header
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// respondWithAuthError writes a 401 with the standard auth error body
func (am *AuthMiddleware) respondWithAuthError(w http.ResponseWriter, r *http.Request, message, code string) {
	logging.Warn(r.Context(), "Authentication failed", logging.Fields{
		"path":       r.URL.Path,
		"method":     r.Method,
		"remote_ip":  getClientIP(r),
		"error_code": code,
	})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	w.WriteHeader(http.StatusUnauthorized)

	response := AuthResponse{
		Error:   "Authentication Failed",
		Message: message,
		Code:    code,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.ErrorWithError(r.Context(), "Error encoding auth error response", err, nil)
	}
}

// getClientIP extracts the client IP, honouring common proxy headers
func getClientIP(r *http.Request) string {
	clientIP := r.Header.Get("X-Forwarded-For")
	if clientIP != "" {
		if idx := strings.Index(clientIP, ","); idx != -1 {
			clientIP = strings.TrimSpace(clientIP[:idx])
		}
		return clientIP
	}

	if clientIP = r.Header.Get("X-Real-IP"); clientIP != "" {
		return clientIP
	}
	return r.RemoteAddr
}
