package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crypto-spot-service/internal/domain/entities"
	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/logging"
	"crypto-spot-service/internal/infrastructure/repositories/cache"

	pkgerrors "github.com/pkg/errors"
)

const cardOrderKey = "preferences:card-order"

// ErrNoCardOrder signals that no valid stored ordering exists. Expired and
// corrupt entries surface the same way as a never-saved one.
var ErrNoCardOrder = errors.New("no card order stored")

// PreferencesService persists the dashboard card ordering through the cache
// backend, bounded by CardOrderMaxAge.
type PreferencesService struct {
	store interfaces.Cache
}

func NewPreferencesService(store interfaces.Cache) *PreferencesService {
	return &PreferencesService{store: store}
}

// SaveCardOrder stamps and stores the given ordering, replacing any previous
// one. The stored entry carries its own timestamp so staleness survives
// backends without TTL eviction.
func (p *PreferencesService) SaveCardOrder(ctx context.Context, ids []string) (*entities.CardOrder, error) {
	if len(ids) == 0 {
		return nil, errors.New("card order must contain at least one id")
	}
	for _, id := range ids {
		if id == "" {
			return nil, errors.New("card order ids must be non-empty")
		}
	}

	order := &entities.CardOrder{IDs: ids, Timestamp: time.Now().UnixMilli()}
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "marshaling card order")
	}
	if err := p.store.Set(ctx, cardOrderKey, string(payload), entities.CardOrderMaxAge); err != nil {
		return nil, pkgerrors.Wrap(err, "persisting card order")
	}

	logging.Info(ctx, "Card order saved", logging.Fields{"cards": len(ids)})
	return order, nil
}

// CardOrder returns the stored ordering, or ErrNoCardOrder when nothing
// valid is stored.
func (p *PreferencesService) CardOrder(ctx context.Context) (*entities.CardOrder, error) {
	raw, err := p.store.Get(ctx, cardOrderKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, ErrNoCardOrder
		}
		return nil, pkgerrors.Wrap(err, "reading card order")
	}

	var order entities.CardOrder
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		logging.WarnWithError(ctx, "Dropping unreadable card order entry", err, nil)
		_ = p.store.Delete(ctx, cardOrderKey)
		return nil, ErrNoCardOrder
	}

	if order.Expired(time.Now()) {
		_ = p.store.Delete(ctx, cardOrderKey)
		return nil, ErrNoCardOrder
	}
	return &order, nil
}

// ClearCardOrder removes the stored ordering if any
func (p *PreferencesService) ClearCardOrder(ctx context.Context) error {
	return p.store.Delete(ctx, cardOrderKey)
}

var _ interfaces.PreferencesService = (*PreferencesService)(nil)
