package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crypto-spot-service/internal/application/services"
	"crypto-spot-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authFixture(enabled bool) (*AuthMiddleware, *services.AuthService) {
	cfg := config.AuthConfig{
		Enabled:     enabled,
		Username:    "admin",
		Password:    "hunter2",
		SessionTTL:  time.Hour,
		UnauthPaths: []string{"/health", "/ready", "/metrics", "/swagger/", "/api/v1/auth/login"},
	}
	auth := services.NewAuthService(cfg)
	return NewAuthMiddleware(cfg, auth), auth
}

func serve(mw *AuthMiddleware, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_ValidTokenPasses(t *testing.T) {
	mw, auth := authFixture(true)

	token, err := auth.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, serve(mw, req).Code)
}

func TestAuthMiddleware_MissingTokenRejected(t *testing.T) {
	mw, _ := authFixture(true)

	rec := serve(mw, httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
}

func TestAuthMiddleware_InvalidTokenRejected(t *testing.T) {
	mw, _ := authFixture(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	req.Header.Set("Authorization", "Bearer bogus-token")
	assert.Equal(t, http.StatusUnauthorized, serve(mw, req).Code)
}

func TestAuthMiddleware_RevokedTokenRejected(t *testing.T) {
	mw, auth := authFixture(true)

	token, err := auth.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)
	auth.Logout(token)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, serve(mw, req).Code)
}

func TestAuthMiddleware_UnauthPathsAreExempt(t *testing.T) {
	mw, _ := authFixture(true)

	for _, path := range []string{"/health", "/ready", "/metrics", "/swagger/index.html", "/api/v1/auth/login"} {
		rec := serve(mw, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAuthMiddleware_DisabledPassesEverything(t *testing.T) {
	mw, _ := authFixture(false)

	rec := serve(mw, httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
