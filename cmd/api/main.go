package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-spot-service/internal/application/services"
	"crypto-spot-service/internal/domain/entities"
	"crypto-spot-service/internal/infrastructure/config"
	"crypto-spot-service/internal/infrastructure/exchange/coinbase"
	"crypto-spot-service/internal/infrastructure/logging"
	"crypto-spot-service/internal/infrastructure/ratelimit"
	"crypto-spot-service/internal/infrastructure/repositories/cache"
	"crypto-spot-service/internal/infrastructure/web/handlers"
	"crypto-spot-service/internal/infrastructure/web/middleware"
	"crypto-spot-service/internal/infrastructure/web/server"
	"crypto-spot-service/internal/infrastructure/web/ws"
)

// @title Crypto Spot Service API
// @version 1.0
// @description Spot price dashboard backend: cached Coinbase prices with BTC-rate derivation, exchange rates, diagnostics, and user preferences.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logConfig := logging.DefaultConfig()
	logConfig.Level = logging.ParseLevel(cfg.Logging.Level)
	logConfig.Format = logging.LogFormat(cfg.Logging.Format)
	logger, err := logging.NewStructuredLogger(logConfig)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	logging.SetGlobalLogger(logger)

	ctx := logging.WithRequestID(context.Background(), logging.GenerateRequestID())
	logging.Info(ctx, "Starting crypto spot service", logging.Fields{
		"cache_backend": cfg.Cache.Backend,
		"symbols":       len(cfg.Pricing.Symbols),
		"auth_enabled":  cfg.Auth.Enabled,
	})

	store, err := cache.NewCacheFromConfig(cfg.Cache)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to create cache backend", err, nil)
		os.Exit(1)
	}
	defer store.Close()

	source := coinbase.NewClient(cfg.Coinbase)
	priceService := services.NewPriceService(source, store, cfg.Cache.TTL, cfg.Pricing)
	preferencesService := services.NewPreferencesService(store)
	authService := services.NewAuthService(cfg.Auth)

	hub := ws.NewHub()
	defer hub.Close()

	router := server.NewRouter(server.Dependencies{
		Assets:         handlers.NewAssetsHandler(priceService),
		Preferences:    handlers.NewPreferencesHandler(preferencesService),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth.SessionTTL),
		Health:         handlers.NewHealthHandler(store),
		Hub:            hub,
		AuthMiddleware: middleware.NewAuthMiddleware(cfg.Auth, authService),
		RateLimit:      ratelimit.NewMiddleware(cfg.RateLimit),
	})

	httpServer := server.NewServer(router, cfg.Server.Port)

	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorWithError(ctx, "HTTP server failed", err, nil)
			os.Exit(1)
		}
	}()

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	go runRefreshLoop(refreshCtx, priceService, hub, cfg.Pricing.RefreshInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info(ctx, "Shutting down", nil)
	stopRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logging.ErrorWithError(ctx, "Forced shutdown", err, nil)
	}

	logging.Info(ctx, "Shutdown complete", nil)
}

// refreshEvent is the payload pushed to websocket subscribers after each
// background cycle.
type refreshEvent struct {
	Event     string            `json:"event"`
	Assets    []*entities.Asset `json:"assets"`
	Timestamp int64             `json:"timestamp"`
}

// runRefreshLoop keeps the cache warm and pushes each cycle's result to
// websocket subscribers. The first cycle runs immediately so the dashboard
// has data before the first tick.
func runRefreshLoop(ctx context.Context, priceService *services.PriceService, hub *ws.Hub, interval time.Duration) {
	if interval <= 0 {
		return
	}

	logging.Info(ctx, "Starting background refresh loop", logging.Fields{
		"interval": interval.String(),
	})

	refresh := func() {
		cycleCtx := logging.WithRequestID(ctx, logging.GenerateRequestID())
		assets, err := priceService.FetchAssets(cycleCtx, 0)
		if err != nil {
			logging.ErrorWithError(cycleCtx, "Background refresh failed", err, nil)
			return
		}
		hub.Broadcast(refreshEvent{
			Event:     "refresh",
			Assets:    assets,
			Timestamp: time.Now().UnixMilli(),
		})
	}

	refresh()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			refresh()
		case <-ctx.Done():
			return
		}
	}
}
