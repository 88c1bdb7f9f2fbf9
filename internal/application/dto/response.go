package dto

import "time"

// AssetData is an individual priced asset in the list response
// @Description Spot price for one asset, in USD and BTC terms
type AssetData struct {
	ID       string  `json:"id" example:"bitcoin" validate:"required"`         // Stable asset identifier
	Symbol   string  `json:"symbol" example:"BTC" validate:"required"`         // Ticker symbol
	Name     string  `json:"name" example:"Bitcoin"`                           // Display name
	PriceUSD float64 `json:"price_usd" example:"65000.12" validate:"min=0"`    // Spot price in USD
	PriceBTC float64 `json:"price_btc" example:"1" validate:"min=0"`           // Price denominated in BTC
	Updated  int64   `json:"updated" example:"1724923800000"`                  // Epoch millis of the fetch
}

// GetAssetsResponse is the body of GET /api/v1/assets
// @Description Asset list with the time of the producing fetch cycle
type GetAssetsResponse struct {
	Assets      []AssetData `json:"assets" validate:"required"`
	Count       int         `json:"count" example:"10"`
	LastRefresh int64       `json:"last_refresh,omitempty" example:"1724923800000"` // Epoch millis; absent before the first cycle
}

// RatesResponse is the body of GET /api/v1/rates/{currency}
// @Description Exchange-rate table for one base currency
type RatesResponse struct {
	Currency string             `json:"currency" example:"BTC" validate:"required"`
	Rates    map[string]float64 `json:"rates" validate:"required"`
}

// DiagnosticsResponse reports upstream reachability
// @Description Result of a single upstream connectivity probe
type DiagnosticsResponse struct {
	Reachable  bool    `json:"reachable" example:"true"`
	StatusCode int     `json:"status_code,omitempty" example:"200"`
	LatencyMS  float64 `json:"latency_ms" example:"84.2"`
	CheckedAt  int64   `json:"checked_at" example:"1724923800000"` // Epoch millis
	Error      string  `json:"error,omitempty"`
}

// CardOrderResponse is the stored dashboard card ordering
// @Description Persisted card ordering with its save time
type CardOrderResponse struct {
	IDs       []string `json:"ids" validate:"required"`
	Timestamp int64    `json:"timestamp" example:"1724923800000"` // Epoch millis of the save
}

// LoginResponse carries a freshly issued session token
// @Description Bearer token for subsequent requests
type LoginResponse struct {
	Token     string `json:"token" validate:"required"`
	ExpiresIn int64  `json:"expires_in" example:"3600"` // Seconds until the session expires
}

// MessageResponse is a generic acknowledgement body
type MessageResponse struct {
	Message string `json:"message" example:"cache cleared"`
}

// ErrorResponse is the standard error body for every endpoint
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"INVALID_PARAMETER" validate:"required"`
	Message string `json:"message,omitempty" example:"limit must be an integer"`
	Code    string `json:"code,omitempty" example:"400"`
}

// NewErrorResponseWithCode builds the standard error body
func NewErrorResponseWithCode(errorCode, message, code string) *ErrorResponse {
	return &ErrorResponse{
		Error:   errorCode,
		Message: message,
		Code:    code,
	}
}

// HealthResponse reports service liveness or readiness
// @Description Health check response with per-dependency statuses
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy" validate:"required" enums:"healthy,ready,unhealthy"`
	Timestamp time.Time         `json:"timestamp" validate:"required"`
	Services  map[string]string `json:"services,omitempty"`
}

// NewHealthResponse stamps a health body with the current time
func NewHealthResponse(status string, services map[string]string) *HealthResponse {
	return &HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
	}
}
