package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"crypto-spot-service/internal/application/dto"
	"crypto-spot-service/internal/application/services"
	"crypto-spot-service/internal/domain/interfaces"
)

// AuthHandler serves login and logout
type AuthHandler struct {
	auth       interfaces.AuthService
	sessionTTL time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth interfaces.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, sessionTTL: sessionTTL}
}

// Login godoc
// @Summary Issue a session token
// @Description Validates credentials and returns a bearer token for subsequent requests.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Account credentials"
// @Success 200 {object} dto.LoginResponse "Session token"
// @Failure 400 {object} dto.ErrorResponse "Malformed payload"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeErrorResponse(ctx, w, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}
	if err := request.Validate(); err != nil {
		writeErrorResponse(ctx, w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}

	token, err := h.auth.Login(ctx, request.Username, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeErrorResponse(ctx, w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
			return
		}
		writeErrorResponse(ctx, w, http.StatusInternalServerError, "AUTH_ERROR", "Failed to process login")
		return
	}

	writeJSONResponse(ctx, w, http.StatusOK, &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.sessionTTL.Seconds()),
	})
}

// Logout godoc
// @Summary Revoke the current session
// @Description Revokes the bearer token carried in the Authorization header. Revoking an unknown token still succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse "Session revoked"
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token := bearerToken(r); token != "" {
		h.auth.Logout(token)
	}
	writeJSONResponse(ctx, w, http.StatusOK, &dto.MessageResponse{Message: "logged out"})
}

// bearerToken extracts the token from an "Authorization: Bearer x" header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
