package interfaces

import (
	"context"

	"crypto-spot-service/internal/domain/entities"
)

// PriceSource abstracts the upstream exchange API.
type PriceSource interface {
	// SpotPrice fetches one symbol's USD spot price. The returned asset has
	// its USD price populated and its BTC price left at zero.
	SpotPrice(ctx context.Context, symbol string) (*entities.Asset, error)

	// ExchangeRates fetches the full rates table for a base currency.
	ExchangeRates(ctx context.Context, currency string) (map[string]float64, error)

	// Ping performs a single best-effort reachability check. Failure is
	// reported inside the result, never as an error.
	Ping(ctx context.Context) *entities.ProbeResult
}
