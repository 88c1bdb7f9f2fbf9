package handlers

import (
	"net/http"
	"time"

	"crypto-spot-service/internal/application/dto"
	"crypto-spot-service/internal/domain/interfaces"
)

// HealthHandler serves the liveness and readiness endpoints
type HealthHandler struct {
	store interfaces.Cache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store interfaces.Cache) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health godoc
// @Summary Basic health check
// @Description Verifies that the service is running. Responds quickly without checking dependencies.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is running"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := dto.NewHealthResponse("healthy", map[string]string{
		"service": "running",
	})
	writeJSONResponse(r.Context(), w, http.StatusOK, response)
}

// Ready godoc
// @Summary Readiness check
// @Description Verifies that the service can take traffic, including a cache backend round trip.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is ready"
// @Failure 503 {object} dto.HealthResponse "A dependency is failing"
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	services := make(map[string]string)

	// Round-trip a short-lived probe key through the backend
	if err := h.store.Set(ctx, "readiness:probe", "ok", time.Minute); err != nil {
		services["cache"] = "error: " + err.Error()
		writeJSONResponse(ctx, w, http.StatusServiceUnavailable, dto.NewHealthResponse("unhealthy", services))
		return
	}
	if _, err := h.store.Get(ctx, "readiness:probe"); err != nil {
		services["cache"] = "error: " + err.Error()
		writeJSONResponse(ctx, w, http.StatusServiceUnavailable, dto.NewHealthResponse("unhealthy", services))
		return
	}

	services["cache"] = "ready"
	services["service"] = "ready"
	writeJSONResponse(ctx, w, http.StatusOK, dto.NewHealthResponse("ready", services))
}
