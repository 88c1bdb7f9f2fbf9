package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"crypto-spot-service/internal/application/dto"
	"crypto-spot-service/internal/infrastructure/logging"
)

// writeJSONResponse writes a JSON body with the given status
func writeJSONResponse(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.ErrorWithError(ctx, "Failed to encode JSON response", err, logging.Fields{
			"status_code": statusCode,
		})
	}
}

// writeErrorResponse writes the standard error body
func writeErrorResponse(ctx context.Context, w http.ResponseWriter, statusCode int, errorCode, message string) {
	writeJSONResponse(ctx, w, statusCode, dto.NewErrorResponseWithCode(errorCode, message, ""))
}
