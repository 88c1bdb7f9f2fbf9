package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crypto-spot-service/internal/application/dto"
	"crypto-spot-service/internal/application/services"
	"crypto-spot-service/internal/infrastructure/repositories/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferencesHandler() *PreferencesHandler {
	store := cache.NewMemoryCache(5 * time.Minute)
	return NewPreferencesHandler(services.NewPreferencesService(store))
}

func TestPreferencesHandler_SaveThenGet(t *testing.T) {
	handler := newPreferencesHandler()

	body, _ := json.Marshal(dto.SaveCardOrderRequest{IDs: []string{"bitcoin", "ethereum"}})
	rec := httptest.NewRecorder()
	handler.SaveCardOrder(rec, httptest.NewRequest(http.MethodPut, "/api/v1/preferences/cards", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var saved dto.CardOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, []string{"bitcoin", "ethereum"}, saved.IDs)
	assert.NotZero(t, saved.Timestamp)

	rec = httptest.NewRecorder()
	handler.GetCardOrder(rec, httptest.NewRequest(http.MethodGet, "/api/v1/preferences/cards", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var loaded dto.CardOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	assert.Equal(t, saved, loaded)
}

func TestPreferencesHandler_GetWithoutSaveIs404(t *testing.T) {
	handler := newPreferencesHandler()

	rec := httptest.NewRecorder()
	handler.GetCardOrder(rec, httptest.NewRequest(http.MethodGet, "/api/v1/preferences/cards", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "NO_CARD_ORDER", response.Error)
}

func TestPreferencesHandler_RejectsBadPayloads(t *testing.T) {
	handler := newPreferencesHandler()

	cases := []struct {
		name string
		body string
	}{
		{"not json", "{nope"},
		{"empty list", `{"ids":[]}`},
		{"blank id", `{"ids":["bitcoin",""]}`},
		{"duplicate id", `{"ids":["bitcoin","bitcoin"]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/cards", bytes.NewBufferString(tc.body))
			handler.SaveCardOrder(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
