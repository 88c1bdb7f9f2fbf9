package services

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"crypto-spot-service/internal/domain/entities"
	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/config"
	"crypto-spot-service/internal/infrastructure/logging"
	"crypto-spot-service/internal/infrastructure/metrics"
	"crypto-spot-service/internal/infrastructure/repositories/cache"
)

// ErrNoPriceData is the one unrecoverable fetch outcome: not a single symbol
// could be retrieved.
var ErrNoPriceData = errors.New("no price data available for any requested symbol")

const (
	spotPriceKeyPrefix = "spot-price:"
	ratesKeyPrefix     = "exchange-rates:"
)

// PriceService orchestrates the fetch pipeline: BTC first, the remaining
// symbols spaced by a throttle delay, partial failures tolerated, and every
// non-BTC price annotated with its BTC-denominated equivalent.
type PriceService struct {
	source   interfaces.PriceSource
	store    interfaces.Cache
	cacheTTL time.Duration
	cfg      config.PricingConfig

	// epoch millis of the last fetch cycle that returned data
	lastRefresh atomic.Int64
}

// NewPriceService creates the orchestrator with its collaborators injected
func NewPriceService(source interfaces.PriceSource, store interfaces.Cache, cacheTTL time.Duration, cfg config.PricingConfig) *PriceService {
	return &PriceService{
		source:   source,
		store:    store,
		cacheTTL: cacheTTL,
		cfg:      cfg,
	}
}

// symbolOutcome pairs a symbol with its settled fetch result. Results are
// collected by symbol identity, so completion order never matters.
type symbolOutcome struct {
	symbol config.SymbolConfig
	asset  *entities.Asset
	err    error
}

// FetchAssets produces the priced asset list for the first `limit` symbols of
// the master list. It fails only when every single fetch failed.
func (s *PriceService) FetchAssets(ctx context.Context, limit int) ([]*entities.Asset, error) {
	start := time.Now()

	symbols := s.cfg.Symbols
	if limit <= 0 || limit > len(symbols) {
		limit = len(symbols)
	}
	selected := symbols[:limit]

	// BTC is fetched first and alone: every other symbol's BTC-rate is
	// derived from its USD price.
	btcSymbol := selected[0]
	btcAsset, btcErr := s.fetchCached(ctx, btcSymbol)

	succeeded := 0
	btcUSD := s.cfg.FallbackBTCPrice
	if btcErr != nil {
		metrics.RecordBTCFallback()
		logging.WarnWithError(ctx, "BTC fetch failed, substituting fallback price", btcErr, logging.Fields{
			"fallback_price": s.cfg.FallbackBTCPrice,
		})
	} else {
		btcUSD = btcAsset.PriceUSD
		succeeded++
	}

	// Remaining symbols go out in list order with a mandatory delay gap
	// between issuance; completions interleave freely.
	rest := selected[1:]
	results := make(chan symbolOutcome, len(rest))

	for _, symbol := range rest {
		if err := s.throttle(ctx); err != nil {
			return nil, err
		}
		go func(symbol config.SymbolConfig) {
			asset, err := s.fetchCached(ctx, symbol)
			results <- symbolOutcome{symbol: symbol, asset: asset, err: err}
		}(symbol)
	}

	fetched := make(map[string]*entities.Asset, len(rest))
	for range rest {
		outcome := <-results
		if outcome.err != nil {
			logging.WarnWithError(ctx, "Symbol fetch failed, continuing without it", outcome.err, logging.Fields{
				logging.FieldSymbol: outcome.symbol.Ticker,
			})
			continue
		}
		fetched[outcome.symbol.Ticker] = outcome.asset
		succeeded++
	}

	if succeeded == 0 {
		metrics.RecordFetchCycle("error", time.Since(start).Seconds())
		return nil, ErrNoPriceData
	}

	// Derivation pass: BTC prepended at rate 1, everything else at
	// usd / btcUSD, in master list order.
	assets := make([]*entities.Asset, 0, limit)

	if btcErr != nil {
		btcAsset = entities.NewAsset(btcSymbol.ID, btcSymbol.Ticker, btcSymbol.Name, btcUSD, time.Now())
	}
	assets = append(assets, btcAsset.WithBTCPrice(1))

	for _, symbol := range rest {
		asset, ok := fetched[symbol.Ticker]
		if !ok {
			continue
		}
		assets = append(assets, asset.WithBTCPrice(asset.PriceUSD/btcUSD))
	}

	for _, asset := range assets {
		metrics.UpdateCurrentPrice(asset.Symbol, asset.PriceUSD)
	}

	result := "success"
	if len(assets) < limit {
		result = "partial"
	}
	metrics.RecordFetchCycle(result, time.Since(start).Seconds())
	s.lastRefresh.Store(time.Now().UnixMilli())

	logging.Info(ctx, "Fetch cycle completed", logging.Fields{
		"requested":   limit,
		"returned":    len(assets),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return assets, nil
}

// fetchCached runs one symbol's fetch through the cache, so a fresh entry
// skips the upstream call entirely and a success is stored under its own key.
func (s *PriceService) fetchCached(ctx context.Context, symbol config.SymbolConfig) (*entities.Asset, error) {
	key := spotPriceKeyPrefix + symbol.Ticker
	return cache.GetOrCompute(ctx, s.store, key, s.cacheTTL, func(ctx context.Context) (*entities.Asset, error) {
		asset, err := s.source.SpotPrice(ctx, symbol.Ticker)
		if err != nil {
			return nil, err
		}
		asset.ID = symbol.ID
		asset.Name = symbol.Name
		return asset, nil
	})
}

// throttle suspends for the inter-request delay, honouring cancellation.
// This is a deliberate pace to stay under the upstream rate limit, not a
// performance measure.
func (s *PriceService) throttle(ctx context.Context) error {
	if s.cfg.ThrottleDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.ThrottleDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ExchangeRates returns the cached rates table for a base currency
func (s *PriceService) ExchangeRates(ctx context.Context, currency string) (map[string]float64, error) {
	currency = strings.ToUpper(currency)
	key := ratesKeyPrefix + currency
	return cache.GetOrCompute(ctx, s.store, key, s.cacheTTL, func(ctx context.Context) (map[string]float64, error) {
		return s.source.ExchangeRates(ctx, currency)
	})
}

// ClearCache drops every cached entry. The escape hatch for suspected stale
// or poisoned cache state; always succeeds for the memory backend.
func (s *PriceService) ClearCache(ctx context.Context) error {
	logging.Info(ctx, "Clearing cache", nil)
	metrics.RecordCacheOperation("clear", "success")
	return s.store.Clear(ctx)
}

// Diagnostics probes upstream reachability
func (s *PriceService) Diagnostics(ctx context.Context) *entities.ProbeResult {
	return s.source.Ping(ctx)
}

// LastRefresh returns when the last fetch cycle produced data. The zero time
// means no cycle has completed yet.
func (s *PriceService) LastRefresh() time.Time {
	millis := s.lastRefresh.Load()
	if millis == 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}

var _ interfaces.PriceService = (*PriceService)(nil)
