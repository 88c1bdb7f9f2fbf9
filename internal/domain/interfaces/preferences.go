package interfaces

import (
	"context"

	"crypto-spot-service/internal/domain/entities"
)

// PreferencesService persists user-facing dashboard preferences.
type PreferencesService interface {
	// SaveCardOrder stamps and stores a card ordering, replacing any
	// previous one.
	SaveCardOrder(ctx context.Context, ids []string) (*entities.CardOrder, error)

	// CardOrder returns the stored ordering; expired or corrupt entries
	// surface as absent.
	CardOrder(ctx context.Context) (*entities.CardOrder, error)

	// ClearCardOrder removes the stored ordering if any.
	ClearCardOrder(ctx context.Context) error
}

// AuthService issues and validates bearer session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Validate(token string) bool
	Logout(token string)
}
