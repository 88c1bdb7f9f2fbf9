package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"crypto-spot-service/internal/domain/entities"
	"crypto-spot-service/internal/infrastructure/repositories/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreferences() (*PreferencesService, *cache.MemoryCache) {
	store := cache.NewMemoryCache(5 * time.Minute)
	return NewPreferencesService(store), store
}

func TestPreferences_SaveAndLoadRoundTrip(t *testing.T) {
	svc, _ := newTestPreferences()
	ctx := context.Background()

	saved, err := svc.SaveCardOrder(ctx, []string{"bitcoin", "ethereum", "solana"})
	require.NoError(t, err)
	assert.NotZero(t, saved.Timestamp)

	loaded, err := svc.CardOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin", "ethereum", "solana"}, loaded.IDs)
	assert.Equal(t, saved.Timestamp, loaded.Timestamp)
}

func TestPreferences_AbsentOrderIsErrNoCardOrder(t *testing.T) {
	svc, _ := newTestPreferences()

	_, err := svc.CardOrder(context.Background())
	assert.ErrorIs(t, err, ErrNoCardOrder)
}

func TestPreferences_ExpiredOrderTreatedAsAbsent(t *testing.T) {
	svc, store := newTestPreferences()
	ctx := context.Background()

	stale := entities.CardOrder{
		IDs:       []string{"bitcoin"},
		Timestamp: time.Now().Add(-25 * time.Hour).UnixMilli(),
	}
	payload, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "preferences:card-order", string(payload), time.Hour))

	_, err = svc.CardOrder(ctx)
	assert.ErrorIs(t, err, ErrNoCardOrder)

	// the stale entry is evicted on read
	_, err = store.Get(ctx, "preferences:card-order")
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}

func TestPreferences_CorruptEntryTreatedAsAbsent(t *testing.T) {
	svc, store := newTestPreferences()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "preferences:card-order", "{not json", time.Hour))

	_, err := svc.CardOrder(ctx)
	assert.ErrorIs(t, err, ErrNoCardOrder)
}

func TestPreferences_SaveReplacesPreviousOrder(t *testing.T) {
	svc, _ := newTestPreferences()
	ctx := context.Background()

	_, err := svc.SaveCardOrder(ctx, []string{"bitcoin", "ethereum"})
	require.NoError(t, err)
	_, err = svc.SaveCardOrder(ctx, []string{"ethereum", "bitcoin"})
	require.NoError(t, err)

	loaded, err := svc.CardOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ethereum", "bitcoin"}, loaded.IDs)
}

func TestPreferences_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestPreferences()
	ctx := context.Background()

	_, err := svc.SaveCardOrder(ctx, nil)
	assert.Error(t, err)

	_, err = svc.SaveCardOrder(ctx, []string{"bitcoin", ""})
	assert.Error(t, err)
}

func TestPreferences_ClearCardOrder(t *testing.T) {
	svc, _ := newTestPreferences()
	ctx := context.Background()

	_, err := svc.SaveCardOrder(ctx, []string{"bitcoin"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearCardOrder(ctx))

	_, err = svc.CardOrder(ctx)
	assert.ErrorIs(t, err, ErrNoCardOrder)
}
