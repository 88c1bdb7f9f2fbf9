package interfaces

import (
	"context"
	"time"

	"crypto-spot-service/internal/domain/entities"
)

// PriceService defines the price-related use cases exposed to the HTTP layer.
type PriceService interface {
	// FetchAssets produces the BTC-rate-annotated asset list for the first
	// `limit` symbols of the configured set, tolerating partial upstream
	// failure. It fails only when no symbol at all could be fetched.
	FetchAssets(ctx context.Context, limit int) ([]*entities.Asset, error)

	// ExchangeRates returns the cached rates table for a base currency.
	ExchangeRates(ctx context.Context, currency string) (map[string]float64, error)

	// ClearCache drops every cached entry regardless of age.
	ClearCache(ctx context.Context) error

	// Diagnostics probes upstream reachability.
	Diagnostics(ctx context.Context) *entities.ProbeResult

	// LastRefresh reports when the last fetch cycle produced data; the zero
	// time means never.
	LastRefresh() time.Time
}
