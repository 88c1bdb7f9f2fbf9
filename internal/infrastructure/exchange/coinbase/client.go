package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crypto-spot-service/internal/domain/entities"
	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/config"
	"crypto-spot-service/internal/infrastructure/logging"
	"crypto-spot-service/internal/infrastructure/metrics"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	serviceName   = "coinbase"
	spotEndpoint  = "/prices/spot"
	ratesEndpoint = "/exchange-rates"

	// maxRatesBody bounds the exchange-rates payload read into memory.
	maxRatesBody = 1 << 20
)

// Client talks to the Coinbase public data API. Every fetch runs a capped
// retry loop with a fixed inter-retry delay; each attempt carries its own
// timeout, cancelling only that attempt's in-flight request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cfg        config.CoinbaseConfig
}

var _ interfaces.PriceSource = (*Client)(nil)

// NewClient creates a Coinbase API client from configuration
func NewClient(cfg config.CoinbaseConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			// Safety net; the per-attempt context is what actually fires
			Timeout: cfg.RequestTimeout + 5*time.Second,
		},
		cfg: cfg,
	}
}

// SpotPrice fetches one symbol's USD spot price. Timeouts, non-2xx responses
// and transport errors carry distinct diagnostics but are all retried up to
// the attempt cap; the last attempt's error propagates on exhaustion.
func (c *Client) SpotPrice(ctx context.Context, symbol string) (*entities.Asset, error) {
	symbol = strings.ToUpper(symbol)

	var asset *entities.Asset

	retryErr := retry.Do(
		func() error {
			reqCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
			defer cancel()

			reqAsset, reqErr := c.doSpotRequest(reqCtx, symbol)
			if reqErr != nil {
				return reqErr
			}

			asset = reqAsset
			return nil
		},
		retry.Attempts(uint(c.cfg.MaxRetries)),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			metrics.RecordExternalAPIRetry(serviceName, spotEndpoint, int(n+1))
			logging.Warn(ctx, "Coinbase spot price retry", logging.Fields{
				"symbol":       symbol,
				"attempt":      n + 1,
				"max_attempts": c.cfg.MaxRetries,
				"error":        err.Error(),
			})
		}),
	)

	if retryErr != nil {
		return nil, errors.Wrapf(retryErr, "spot price fetch for %s exhausted %d attempts", symbol, c.cfg.MaxRetries)
	}

	return asset, nil
}

// doSpotRequest performs one HTTP attempt for a single symbol
func (c *Client) doSpotRequest(ctx context.Context, symbol string) (*entities.Asset, error) {
	requestURL := fmt.Sprintf("%s/prices/%s-USD/spot", c.baseURL, symbol)

	resp, duration, err := c.do(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordExternalAPICall(serviceName, spotEndpoint, resp.StatusCode, durationMs(duration))
		return nil, newAPIError(resp)
	}

	var spot spotPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&spot); err != nil {
		return nil, errors.Wrap(err, "failed to decode spot price response")
	}

	amount, err := decimal.NewFromString(spot.Data.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed amount %q for %s", spot.Data.Amount, symbol)
	}

	metrics.RecordExternalAPICall(serviceName, spotEndpoint, resp.StatusCode, durationMs(duration))
	logging.Debug(ctx, "Coinbase spot price fetched", logging.Fields{
		"symbol":      symbol,
		"amount":      spot.Data.Amount,
		"duration_ms": durationMs(duration),
	})

	// ID and display name belong to the orchestrator's symbol table; the
	// BTC-denominated price stays zero until derived there.
	return entities.NewAsset("", symbol, "", amount.InexactFloat64(), time.Now()), nil
}

// ExchangeRates fetches the full rates table for a base currency, with the
// same retry policy as SpotPrice.
func (c *Client) ExchangeRates(ctx context.Context, currency string) (map[string]float64, error) {
	currency = strings.ToUpper(currency)

	var rates map[string]float64

	retryErr := retry.Do(
		func() error {
			reqCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
			defer cancel()

			reqRates, reqErr := c.doRatesRequest(reqCtx, currency)
			if reqErr != nil {
				return reqErr
			}

			rates = reqRates
			return nil
		},
		retry.Attempts(uint(c.cfg.MaxRetries)),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			metrics.RecordExternalAPIRetry(serviceName, ratesEndpoint, int(n+1))
			logging.Warn(ctx, "Coinbase exchange rates retry", logging.Fields{
				"currency":     currency,
				"attempt":      n + 1,
				"max_attempts": c.cfg.MaxRetries,
				"error":        err.Error(),
			})
		}),
	)

	if retryErr != nil {
		return nil, errors.Wrapf(retryErr, "exchange rates fetch for %s exhausted %d attempts", currency, c.cfg.MaxRetries)
	}

	return rates, nil
}

// doRatesRequest performs one HTTP attempt for the exchange-rates table
func (c *Client) doRatesRequest(ctx context.Context, currency string) (map[string]float64, error) {
	requestURL := fmt.Sprintf("%s/exchange-rates?currency=%s", c.baseURL, url.QueryEscape(currency))

	resp, duration, err := c.do(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordExternalAPICall(serviceName, ratesEndpoint, resp.StatusCode, durationMs(duration))
		return nil, newAPIError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRatesBody))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read exchange rates response")
	}

	result := gjson.GetBytes(body, "data.rates")
	if !result.Exists() {
		return nil, errors.Errorf("no rates found in exchange rates response for %s", currency)
	}

	rates := make(map[string]float64)
	result.ForEach(func(key, value gjson.Result) bool {
		rate, parseErr := decimal.NewFromString(value.String())
		if parseErr != nil {
			logging.Warn(ctx, "Skipping malformed exchange rate", logging.Fields{
				"currency": key.String(),
				"value":    value.String(),
			})
			return true
		}
		rates[key.String()] = rate.InexactFloat64()
		return true
	})

	metrics.RecordExternalAPICall(serviceName, ratesEndpoint, resp.StatusCode, durationMs(duration))

	return rates, nil
}

// do executes one GET against the API with the versioned Accept contract,
// classifying transport failures.
func (c *Client) do(ctx context.Context, requestURL string) (*http.Response, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("CB-VERSION", c.cfg.APIVersion)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, duration, errors.Wrap(err, "request aborted by timeout")
		}
		if errors.Is(err, context.Canceled) {
			return nil, duration, errors.Wrap(err, "request canceled")
		}
		return nil, duration, errors.Wrap(err, "transport error")
	}

	return resp, duration, nil
}

func durationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
