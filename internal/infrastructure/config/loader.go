package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader instance
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load loads configuration from files and environment variables
func (l *Loader) Load() (*Config, error) {
	if err := l.setupViper(); err != nil {
		return nil, fmt.Errorf("failed to setup viper: %w", err)
	}

	if err := l.v.ReadInConfig(); err != nil {
		// Missing config.yaml is fine: env vars and defaults take over
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	l.overrideWithEnvVars(config)

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setupViper configures Viper to read files and env vars
func (l *Loader) setupViper() error {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("./configs")
	l.v.AddConfigPath("../configs")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("/etc/crypto-spot")

	l.v.AutomaticEnv()
	l.v.SetEnvPrefix("CRYPTO_SPOT") // CRYPTO_SPOT_SERVER_PORT etc.
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.bindEnvVars()

	return nil
}

// bindEnvVars maps well-known environment variables to configuration keys
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"server.port":                "PORT",
		"cache.backend":              "CACHE_BACKEND",
		"cache.ttl":                  "CACHE_TTL",
		"cache.redis.addr":           "REDIS_ADDR",
		"cache.redis.password":       "REDIS_PASSWORD",
		"cache.redis.db":             "REDIS_DB",
		"coinbase.base_url":          "COINBASE_BASE_URL",
		"coinbase.request_timeout":   "COINBASE_REQUEST_TIMEOUT",
		"coinbase.max_retries":       "COINBASE_MAX_RETRIES",
		"pricing.throttle_delay":     "THROTTLE_DELAY",
		"pricing.fallback_btc_price": "FALLBACK_BTC_PRICE",
		"auth.enabled":               "AUTH_ENABLED",
		"auth.username":              "AUTH_USERNAME",
		"auth.password":              "AUTH_PASSWORD",
		"logging.level":              "LOG_LEVEL",
		"logging.format":             "LOG_FORMAT",
		"rate_limit.capacity":        "RATE_LIMIT_CAPACITY",
		"rate_limit.refill_rate":     "RATE_LIMIT_REFILL_RATE",
		"rate_limit.enabled":         "RATE_LIMIT_ENABLED",
	}

	for configKey, envVar := range envMappings {
		_ = l.v.BindEnv(configKey, envVar)
	}
}

// overrideWithEnvVars handles env vars that need parsing beyond viper's
func (l *Loader) overrideWithEnvVars(config *Config) {
	// SYMBOLS as a comma-separated TICKER:id:Name list
	if symbolsEnv := os.Getenv("SYMBOLS"); symbolsEnv != "" {
		var symbols []SymbolConfig
		for _, entry := range strings.Split(symbolsEnv, ",") {
			parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
			if len(parts) != 3 {
				continue
			}
			symbols = append(symbols, SymbolConfig{
				Ticker: strings.ToUpper(strings.TrimSpace(parts[0])),
				ID:     strings.TrimSpace(parts[1]),
				Name:   strings.TrimSpace(parts[2]),
			})
		}
		if len(symbols) > 0 {
			config.Pricing.Symbols = symbols
		}
	}
}
