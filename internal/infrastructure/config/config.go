package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Coinbase  CoinbaseConfig  `yaml:"coinbase" mapstructure:"coinbase"`
	Pricing   PricingConfig   `yaml:"pricing" mapstructure:"pricing"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Auth      AuthConfig      `yaml:"auth" mapstructure:"auth"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// CacheConfig contains cache system configuration
type CacheConfig struct {
	Backend string        `yaml:"backend" mapstructure:"backend"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig contains Redis-specific configuration
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

// CoinbaseConfig contains the upstream Coinbase API configuration
type CoinbaseConfig struct {
	BaseURL        string        `yaml:"base_url" mapstructure:"base_url"`
	APIVersion     string        `yaml:"api_version" mapstructure:"api_version"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
	ProbeTimeout   time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`
	MaxRetries     int           `yaml:"max_retries" mapstructure:"max_retries"`
	RetryDelay     time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
}

// SymbolConfig maps an exchange ticker to its stable identifier and display name
type SymbolConfig struct {
	Ticker string `yaml:"ticker" mapstructure:"ticker"`
	ID     string `yaml:"id" mapstructure:"id"`
	Name   string `yaml:"name" mapstructure:"name"`
}

// PricingConfig contains the fetch pipeline configuration
type PricingConfig struct {
	// Symbols is the fixed, ordered master list. BTC must come first: every
	// other symbol's BTC-denominated price is derived from its USD price.
	Symbols []SymbolConfig `yaml:"symbols" mapstructure:"symbols"`
	// ThrottleDelay spaces consecutive upstream requests to stay under the
	// public API's rate limit.
	ThrottleDelay time.Duration `yaml:"throttle_delay" mapstructure:"throttle_delay"`
	// FallbackBTCPrice substitutes BTC's USD price when its fetch exhausts
	// all retries. BTC's price is load-bearing for every other asset's
	// BTC-rate, so the pipeline must not fail on this one call.
	FallbackBTCPrice float64 `yaml:"fallback_btc_price" mapstructure:"fallback_btc_price"`
	// RefreshInterval drives the background fetch cycle that keeps the cache
	// warm and feeds websocket pushes. Zero disables it.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`
}

// RateLimitConfig contains inbound rate limiting configuration
type RateLimitConfig struct {
	Enabled    bool `yaml:"enabled" mapstructure:"enabled"`
	Capacity   int  `yaml:"capacity" mapstructure:"capacity"`
	RefillRate int  `yaml:"refill_rate" mapstructure:"refill_rate"`
}

// AuthConfig contains the single-user login gate configuration
type AuthConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	Username    string        `yaml:"username" mapstructure:"username"`
	Password    string        `yaml:"password" mapstructure:"password"`
	SessionTTL  time.Duration `yaml:"session_ttl" mapstructure:"session_ttl"`
	UnauthPaths []string      `yaml:"unauth_paths" mapstructure:"unauth_paths"`
}

// LoggingConfig contains logging system configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultSymbols is the master symbol list the dashboard renders, in card
// order. BTC first by contract.
func DefaultSymbols() []SymbolConfig {
	return []SymbolConfig{
		{Ticker: "BTC", ID: "bitcoin", Name: "Bitcoin"},
		{Ticker: "ETH", ID: "ethereum", Name: "Ethereum"},
		{Ticker: "SOL", ID: "solana", Name: "Solana"},
		{Ticker: "BNB", ID: "binancecoin", Name: "BNB"},
		{Ticker: "XRP", ID: "ripple", Name: "XRP"},
		{Ticker: "ADA", ID: "cardano", Name: "Cardano"},
		{Ticker: "DOGE", ID: "dogecoin", Name: "Dogecoin"},
		{Ticker: "AVAX", ID: "avalanche-2", Name: "Avalanche"},
		{Ticker: "DOT", ID: "polkadot", Name: "Polkadot"},
		{Ticker: "LINK", ID: "chainlink", Name: "Chainlink"},
	}
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     5 * time.Minute,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				Password: "",
				DB:       0,
			},
		},
		Coinbase: CoinbaseConfig{
			BaseURL:        "https://api.coinbase.com/v2",
			APIVersion:     "2015-04-08",
			RequestTimeout: 20 * time.Second,
			ProbeTimeout:   5 * time.Second,
			MaxRetries:     3,
			RetryDelay:     1 * time.Second,
		},
		Pricing: PricingConfig{
			Symbols:          DefaultSymbols(),
			ThrottleDelay:    500 * time.Millisecond,
			FallbackBTCPrice: 60000,
			RefreshInterval:  5 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled:    true,
			Capacity:   100,
			RefillRate: 10,
		},
		Auth: AuthConfig{
			Enabled:     false,
			Username:    "admin",
			Password:    "",
			SessionTTL:  24 * time.Hour,
			UnauthPaths: []string{"/health", "/ready", "/metrics", "/swagger/", "/api/v1/auth/login"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
