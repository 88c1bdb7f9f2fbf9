package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values the service cannot run with.
func Validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	switch cfg.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", cfg.Cache.TTL)
	}

	if cfg.Coinbase.BaseURL == "" {
		return fmt.Errorf("coinbase.base_url must not be empty")
	}
	if cfg.Coinbase.MaxRetries < 1 {
		return fmt.Errorf("coinbase.max_retries must be at least 1, got %d", cfg.Coinbase.MaxRetries)
	}
	if cfg.Coinbase.RequestTimeout <= 0 {
		return fmt.Errorf("coinbase.request_timeout must be positive, got %s", cfg.Coinbase.RequestTimeout)
	}

	if err := validateSymbols(cfg.Pricing.Symbols); err != nil {
		return err
	}
	if cfg.Pricing.FallbackBTCPrice <= 0 {
		return fmt.Errorf("pricing.fallback_btc_price must be positive, got %f", cfg.Pricing.FallbackBTCPrice)
	}
	if cfg.Pricing.ThrottleDelay < 0 {
		return fmt.Errorf("pricing.throttle_delay must not be negative, got %s", cfg.Pricing.ThrottleDelay)
	}

	if cfg.Auth.Enabled {
		if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
			return fmt.Errorf("auth.username and auth.password must be set when auth is enabled")
		}
		if cfg.Auth.SessionTTL <= 0 {
			return fmt.Errorf("auth.session_ttl must be positive, got %s", cfg.Auth.SessionTTL)
		}
	}

	return nil
}

// validateSymbols enforces the master list contract: non-empty, BTC first,
// no duplicate tickers, every entry fully populated.
func validateSymbols(symbols []SymbolConfig) error {
	if len(symbols) == 0 {
		return fmt.Errorf("pricing.symbols must not be empty")
	}
	if strings.ToUpper(symbols[0].Ticker) != "BTC" {
		return fmt.Errorf("pricing.symbols must list BTC first, got %q", symbols[0].Ticker)
	}

	seen := make(map[string]bool, len(symbols))
	for i, s := range symbols {
		ticker := strings.ToUpper(s.Ticker)
		if ticker == "" || s.ID == "" || s.Name == "" {
			return fmt.Errorf("pricing.symbols[%d] is incomplete: ticker, id and name are all required", i)
		}
		if seen[ticker] {
			return fmt.Errorf("pricing.symbols contains duplicate ticker %q", ticker)
		}
		seen[ticker] = true
	}

	return nil
}
