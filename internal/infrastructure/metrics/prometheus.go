package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the crypto spot price service
var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_spot_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_spot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Cache metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_spot_cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"}, // operation: get/set/clear, result: hit/miss/success/error
	)

	// External API metrics
	ExternalAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_spot_external_api_requests_total",
			Help: "Total number of external API requests",
		},
		[]string{"service", "endpoint", "status_code"},
	)

	ExternalAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_spot_external_api_request_duration_seconds",
			Help:    "External API request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 20.0},
		},
		[]string{"service", "endpoint"},
	)

	ExternalAPIRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_spot_external_api_retries_total",
			Help: "Total number of external API retry attempts",
		},
		[]string{"service", "endpoint", "attempt"},
	)

	// Business metrics
	CurrentPrices = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "crypto_spot_current_price_usd",
			Help: "Current USD spot price by symbol",
		},
		[]string{"symbol"},
	)

	FetchCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_spot_fetch_cycles_total",
			Help: "Total number of full fetch cycles",
		},
		[]string{"result"}, // result: success/partial/error
	)

	FetchCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crypto_spot_fetch_cycle_duration_seconds",
			Help:    "Duration of a full fetch cycle in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	BTCFallbackActivations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crypto_spot_btc_fallback_activations_total",
			Help: "Times the hard-coded BTC fallback price was substituted",
		},
	)

	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crypto_spot_websocket_clients",
			Help: "Number of connected dashboard websocket clients",
		},
	)

	RateLimitedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_spot_rate_limited_requests_total",
			Help: "Inbound requests rejected by the rate limiter",
		},
		[]string{"path"},
	)
)

// RecordHTTPRequest records metrics for a completed inbound request
func RecordHTTPRequest(method, path string, statusCode int, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// RecordExternalAPICall records metrics for a completed upstream request
func RecordExternalAPICall(service, endpoint string, statusCode int, durationMs float64) {
	ExternalAPIRequestsTotal.WithLabelValues(service, endpoint, strconv.Itoa(statusCode)).Inc()
	ExternalAPIRequestDuration.WithLabelValues(service, endpoint).Observe(durationMs / 1000)
}

// RecordExternalAPIRetry records an upstream retry attempt
func RecordExternalAPIRetry(service, endpoint string, attempt int) {
	ExternalAPIRetries.WithLabelValues(service, endpoint, strconv.Itoa(attempt)).Inc()
}

// RecordCacheOperation records one cache operation outcome
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCurrentPrice updates the current price gauge for a symbol
func UpdateCurrentPrice(symbol string, price float64) {
	CurrentPrices.WithLabelValues(symbol).Set(price)
}

// RecordFetchCycle records a full fetch cycle outcome
func RecordFetchCycle(result string, durationSeconds float64) {
	FetchCyclesTotal.WithLabelValues(result).Inc()
	FetchCycleDuration.Observe(durationSeconds)
}

// RecordBTCFallback records a BTC fallback price substitution
func RecordBTCFallback() {
	BTCFallbackActivations.Inc()
}

// RecordRateLimitedRequest records an inbound request rejected by the limiter
func RecordRateLimitedRequest(path string) {
	RateLimitedRequests.WithLabelValues(path).Inc()
}
