package coinbase

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"crypto-spot-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.CoinbaseConfig {
	return config.CoinbaseConfig{
		BaseURL:        baseURL,
		APIVersion:     "2015-04-08",
		RequestTimeout: 2 * time.Second,
		ProbeTimeout:   500 * time.Millisecond,
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
	}
}

func TestClient_SpotPrice_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prices/BTC-USD/spot", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "2015-04-08", r.Header.Get("CB-VERSION"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"base":"BTC","currency":"USD","amount":"65000.00"}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	asset, err := client.SpotPrice(context.Background(), "btc")
	require.NoError(t, err)
	assert.Equal(t, "BTC", asset.Symbol)
	assert.InDelta(t, 65000.0, asset.PriceUSD, 1e-9)
	assert.Zero(t, asset.PriceBTC)
	assert.False(t, asset.FetchedAt.IsZero())
}

func TestClient_SpotPrice_RetriesExactlyMaxAttempts(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		http.Error(w, `{"errors":[{"message":"internal error"}]}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.SpotPrice(context.Background(), "ETH")
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))

	// The final error is the last attempt's, with upstream detail attached
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Body, "internal error")
}

func TestClient_SpotPrice_RecoversAfterTransientFailure(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"data":{"base":"SOL","currency":"USD","amount":"150.00"}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	asset, err := client.SpotPrice(context.Background(), "SOL")
	require.NoError(t, err)
	assert.InDelta(t, 150.0, asset.PriceUSD, 1e-9)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestClient_SpotPrice_TimeoutIsRetried(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"data":{"base":"BTC","currency":"USD","amount":"65000.00"}}`)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.RequestTimeout = 20 * time.Millisecond
	client := NewClient(cfg)

	_, err := client.SpotPrice(context.Background(), "BTC")
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	assert.Contains(t, err.Error(), "timeout")
}

func TestClient_SpotPrice_MalformedAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"base":"BTC","currency":"USD","amount":"not-a-number"}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.SpotPrice(context.Background(), "BTC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed amount")
}

func TestClient_SpotPrice_ContextCancellationStopsRetries(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.RetryDelay = 5 * time.Second
	client := NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.SpotPrice(ctx, "BTC")
	require.Error(t, err)
	// The long inter-retry delay must be interrupted by cancellation
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.LessOrEqual(t, atomic.LoadInt32(&attempts), int32(2))
}

func TestClient_ExchangeRates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchange-rates", r.URL.Path)
		assert.Equal(t, "BTC", r.URL.Query().Get("currency"))

		fmt.Fprint(w, `{"data":{"currency":"BTC","rates":{"USD":"65000.00","EUR":"60000.50","bogus":"zzz"}}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	rates, err := client.ExchangeRates(context.Background(), "btc")
	require.NoError(t, err)
	assert.InDelta(t, 65000.0, rates["USD"], 1e-9)
	assert.InDelta(t, 60000.5, rates["EUR"], 1e-9)
	// Malformed entries are skipped, not fatal
	_, ok := rates["bogus"]
	assert.False(t, ok)
}

func TestClient_ExchangeRates_MissingRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"currency":"BTC"}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.ExchangeRates(context.Background(), "BTC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rates found")
}

func TestClient_Ping_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/time", r.URL.Path)
		fmt.Fprint(w, `{"data":{"iso":"2024-01-01T00:00:00Z","epoch":1704067200}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	result := client.Ping(context.Background())
	assert.True(t, result.Reachable)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Empty(t, result.Error)
	assert.False(t, result.CheckedAt.IsZero())
}

func TestClient_Ping_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Refuse connections

	client := NewClient(testConfig(server.URL))

	result := client.Ping(context.Background())
	assert.False(t, result.Reachable)
	assert.NotEmpty(t, result.Error)
}

func TestClient_Ping_NoRetryOnFailure(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	result := client.Ping(context.Background())
	assert.False(t, result.Reachable)
	assert.Equal(t, http.StatusBadGateway, result.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}
