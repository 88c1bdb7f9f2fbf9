package handlers

import (
	"errors"
	"net/http"
	"strings"

	"crypto-spot-service/internal/application/dto"
	"crypto-spot-service/internal/application/services"
	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/logging"

	"github.com/gorilla/mux"
)

// AssetsHandler serves the price endpoints
type AssetsHandler struct {
	priceService interfaces.PriceService
	mapper       *dto.AssetMapper
}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler(priceService interfaces.PriceService) *AssetsHandler {
	return &AssetsHandler{
		priceService: priceService,
		mapper:       dto.NewAssetMapper(),
	}
}

// GetAssets godoc
// @Summary Priced asset list
// @Description Returns spot prices in USD and BTC terms for the configured symbols. Partial upstream failure drops the affected symbols from the list instead of failing the request.
// @Tags assets
// @Produce json
// @Param limit query int false "Number of symbols to include, taken from the front of the configured list" minimum(1)
// @Success 200 {object} dto.GetAssetsResponse "Priced assets"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit parameter"
// @Failure 503 {object} dto.ErrorResponse "No symbol could be fetched"
// @Security BearerAuth
// @Router /api/v1/assets [get]
func (h *AssetsHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request, err := dto.NewGetAssetsRequest(r.URL.Query().Get("limit"))
	if err != nil {
		writeErrorResponse(ctx, w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}

	assets, err := h.priceService.FetchAssets(ctx, request.Limit)
	if err != nil {
		if errors.Is(err, services.ErrNoPriceData) {
			logging.Error(ctx, "All symbol fetches failed", logging.Fields{
				"limit": request.Limit,
			})
			writeErrorResponse(ctx, w, http.StatusServiceUnavailable, "NO_PRICE_DATA", err.Error())
			return
		}
		logging.ErrorWithError(ctx, "Asset fetch failed", err, nil)
		writeErrorResponse(ctx, w, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch asset prices")
		return
	}

	response := h.mapper.ToGetAssetsResponse(assets, h.priceService.LastRefresh())
	writeJSONResponse(ctx, w, http.StatusOK, response)
}

// GetRates godoc
// @Summary Exchange-rate table
// @Description Returns the upstream exchange-rate table for a base currency.
// @Tags assets
// @Produce json
// @Param currency path string true "Base currency code" example(BTC)
// @Success 200 {object} dto.RatesResponse "Rates table"
// @Failure 502 {object} dto.ErrorResponse "Upstream fetch failed"
// @Security BearerAuth
// @Router /api/v1/rates/{currency} [get]
func (h *AssetsHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	currency := strings.ToUpper(mux.Vars(r)["currency"])

	rates, err := h.priceService.ExchangeRates(ctx, currency)
	if err != nil {
		logging.ErrorWithError(ctx, "Exchange rates fetch failed", err, logging.Fields{
			"currency": currency,
		})
		writeErrorResponse(ctx, w, http.StatusBadGateway, "RATES_FETCH_ERROR", err.Error())
		return
	}

	writeJSONResponse(ctx, w, http.StatusOK, &dto.RatesResponse{
		Currency: currency,
		Rates:    rates,
	})
}

// ClearCache godoc
// @Summary Drop all cached prices
// @Description Clears every cached entry so the next fetch goes upstream.
// @Tags assets
// @Produce json
// @Success 200 {object} dto.MessageResponse "Cache cleared"
// @Failure 500 {object} dto.ErrorResponse "Backend clear failed"
// @Security BearerAuth
// @Router /api/v1/cache/clear [post]
func (h *AssetsHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.priceService.ClearCache(ctx); err != nil {
		logging.ErrorWithError(ctx, "Cache clear failed", err, nil)
		writeErrorResponse(ctx, w, http.StatusInternalServerError, "CACHE_ERROR", err.Error())
		return
	}

	writeJSONResponse(ctx, w, http.StatusOK, &dto.MessageResponse{Message: "cache cleared"})
}

// Diagnostics godoc
// @Summary Upstream connectivity probe
// @Description Issues a single short probe against the upstream API and reports the outcome. Never retries; an unreachable upstream is a normal 200 response with reachable=false.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} dto.DiagnosticsResponse "Probe outcome"
// @Security BearerAuth
// @Router /api/v1/diagnostics [get]
func (h *AssetsHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result := h.priceService.Diagnostics(ctx)
	writeJSONResponse(ctx, w, http.StatusOK, h.mapper.ToDiagnosticsResponse(result))
}
