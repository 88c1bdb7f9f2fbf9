package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"crypto-spot-service/internal/application/dto"
	"crypto-spot-service/internal/application/services"
	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/logging"
)

// PreferencesHandler serves the dashboard preference endpoints
type PreferencesHandler struct {
	preferences interfaces.PreferencesService
	mapper      *dto.AssetMapper
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferences interfaces.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{
		preferences: preferences,
		mapper:      dto.NewAssetMapper(),
	}
}

// GetCardOrder godoc
// @Summary Stored card ordering
// @Description Returns the saved dashboard card ordering. Orderings older than 24 hours are treated as never saved.
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.CardOrderResponse "Stored ordering"
// @Failure 404 {object} dto.ErrorResponse "No valid ordering stored"
// @Security BearerAuth
// @Router /api/v1/preferences/cards [get]
func (h *PreferencesHandler) GetCardOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.preferences.CardOrder(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNoCardOrder) {
			writeErrorResponse(ctx, w, http.StatusNotFound, "NO_CARD_ORDER", "no card order stored")
			return
		}
		logging.ErrorWithError(ctx, "Card order read failed", err, nil)
		writeErrorResponse(ctx, w, http.StatusInternalServerError, "PREFERENCES_ERROR", "Failed to read card order")
		return
	}

	writeJSONResponse(ctx, w, http.StatusOK, h.mapper.ToCardOrderResponse(order))
}

// SaveCardOrder godoc
// @Summary Save card ordering
// @Description Replaces the stored dashboard card ordering with the given one.
// @Tags preferences
// @Accept json
// @Produce json
// @Param order body dto.SaveCardOrderRequest true "Ordered card ids"
// @Success 200 {object} dto.CardOrderResponse "Saved ordering"
// @Failure 400 {object} dto.ErrorResponse "Malformed or invalid payload"
// @Security BearerAuth
// @Router /api/v1/preferences/cards [put]
func (h *PreferencesHandler) SaveCardOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request dto.SaveCardOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeErrorResponse(ctx, w, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}
	if err := request.Validate(); err != nil {
		writeErrorResponse(ctx, w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}

	order, err := h.preferences.SaveCardOrder(ctx, request.IDs)
	if err != nil {
		logging.ErrorWithError(ctx, "Card order save failed", err, nil)
		writeErrorResponse(ctx, w, http.StatusInternalServerError, "PREFERENCES_ERROR", "Failed to save card order")
		return
	}

	writeJSONResponse(ctx, w, http.StatusOK, h.mapper.ToCardOrderResponse(order))
}
