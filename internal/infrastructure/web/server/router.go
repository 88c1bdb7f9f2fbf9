package server

import (
	"net/http"

	"crypto-spot-service/internal/infrastructure/metrics"
	"crypto-spot-service/internal/infrastructure/ratelimit"
	"crypto-spot-service/internal/infrastructure/web/handlers"
	"crypto-spot-service/internal/infrastructure/web/middleware"
	"crypto-spot-service/internal/infrastructure/web/ws"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "crypto-spot-service/internal/docs"
)

// Dependencies groups everything the router wires together
type Dependencies struct {
	Assets      *handlers.AssetsHandler
	Preferences *handlers.PreferencesHandler
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Hub         *ws.Hub

	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *ratelimit.Middleware
}

// NewRouter assembles the route table and middleware chain. Order matters:
// tracing first so every later stage logs with a request ID, then metrics,
// rate limiting, and finally auth.
func NewRouter(deps Dependencies) http.Handler {
	router := mux.NewRouter()

	router.Use(middleware.RequestTracingMiddleware)
	router.Use(metrics.HTTPMetricsMiddleware)
	router.Use(deps.RateLimit.Handler)
	router.Use(deps.AuthMiddleware.Handler)

	router.HandleFunc("/health", deps.Health.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", deps.Health.Ready).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/assets", deps.Assets.GetAssets).Methods(http.MethodGet)
	api.HandleFunc("/rates/{currency}", deps.Assets.GetRates).Methods(http.MethodGet)
	api.HandleFunc("/cache/clear", deps.Assets.ClearCache).Methods(http.MethodPost)
	api.HandleFunc("/diagnostics", deps.Assets.Diagnostics).Methods(http.MethodGet)
	api.HandleFunc("/preferences/cards", deps.Preferences.GetCardOrder).Methods(http.MethodGet)
	api.HandleFunc("/preferences/cards", deps.Preferences.SaveCardOrder).Methods(http.MethodPut)
	api.HandleFunc("/auth/login", deps.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", deps.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/ws", deps.Hub.Handler)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return router
}
