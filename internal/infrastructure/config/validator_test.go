package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "unknown cache backend",
			mutate:  func(c *Config) { c.Cache.Backend = "memcached" },
			wantErr: "cache.backend",
		},
		{
			name:    "non-positive ttl",
			mutate:  func(c *Config) { c.Cache.TTL = 0 },
			wantErr: "cache.ttl",
		},
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.Coinbase.BaseURL = "" },
			wantErr: "coinbase.base_url",
		},
		{
			name:    "zero retries",
			mutate:  func(c *Config) { c.Coinbase.MaxRetries = 0 },
			wantErr: "coinbase.max_retries",
		},
		{
			name:    "empty symbol list",
			mutate:  func(c *Config) { c.Pricing.Symbols = nil },
			wantErr: "pricing.symbols must not be empty",
		},
		{
			name: "btc not first",
			mutate: func(c *Config) {
				c.Pricing.Symbols = []SymbolConfig{
					{Ticker: "ETH", ID: "ethereum", Name: "Ethereum"},
					{Ticker: "BTC", ID: "bitcoin", Name: "Bitcoin"},
				}
			},
			wantErr: "BTC first",
		},
		{
			name: "duplicate ticker",
			mutate: func(c *Config) {
				c.Pricing.Symbols = append(c.Pricing.Symbols, SymbolConfig{Ticker: "eth", ID: "x", Name: "X"})
			},
			wantErr: "duplicate ticker",
		},
		{
			name: "incomplete symbol entry",
			mutate: func(c *Config) {
				c.Pricing.Symbols = []SymbolConfig{{Ticker: "BTC", ID: "bitcoin", Name: ""}}
			},
			wantErr: "incomplete",
		},
		{
			name:    "negative fallback price",
			mutate:  func(c *Config) { c.Pricing.FallbackBTCPrice = -1 },
			wantErr: "fallback_btc_price",
		},
		{
			name: "auth enabled without credentials",
			mutate: func(c *Config) {
				c.Auth.Enabled = true
				c.Auth.Password = ""
			},
			wantErr: "auth.username and auth.password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultSymbols_BTCFirst(t *testing.T) {
	symbols := DefaultSymbols()
	require.NotEmpty(t, symbols)
	assert.Equal(t, "BTC", symbols[0].Ticker)
	assert.Equal(t, "bitcoin", symbols[0].ID)
}

func TestDefaultConfig_Constants(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 20*time.Second, cfg.Coinbase.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Coinbase.ProbeTimeout)
	assert.Equal(t, 3, cfg.Coinbase.MaxRetries)
	assert.Equal(t, time.Second, cfg.Coinbase.RetryDelay)
}
