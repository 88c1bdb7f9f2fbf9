package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/config"
	"crypto-spot-service/internal/infrastructure/logging"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for any login failure. The message never
// distinguishes a bad username from a bad password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// session is a live bearer token with its expiry instant.
type session struct {
	username  string
	expiresAt time.Time
}

// AuthService issues and validates opaque bearer tokens for the single
// configured account. Sessions live in process memory; a restart logs
// everyone out.
type AuthService struct {
	cfg config.AuthConfig

	mu       sync.Mutex
	sessions map[string]session
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		cfg:      cfg,
		sessions: make(map[string]session),
	}
}

// Login checks the credentials against the configured account and mints a
// fresh session token on success.
func (a *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Password)) == 1
	if !userOK || !passOK {
		logging.Warn(ctx, "Login rejected", logging.Fields{"username": username})
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	a.mu.Lock()
	a.sessions[token] = session{
		username:  username,
		expiresAt: time.Now().Add(a.cfg.SessionTTL),
	}
	a.mu.Unlock()

	logging.Info(ctx, "Session issued", logging.Fields{"username": username})
	return token, nil
}

// Validate reports whether the token belongs to a live session. Expired
// sessions are evicted on sight.
func (a *AuthService) Validate(token string) bool {
	if token == "" {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, ok := a.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(sess.expiresAt) {
		delete(a.sessions, token)
		return false
	}
	return true
}

// Logout revokes the token. Revoking an unknown token is a no-op.
func (a *AuthService) Logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

// ActiveSessions counts live sessions, purging expired ones as it goes.
func (a *AuthService) ActiveSessions() int {
	now := time.Now()
	a.mu.Lock()
	defer a.mu.Unlock()

	for token, sess := range a.sessions {
		if now.After(sess.expiresAt) {
			delete(a.sessions, token)
		}
	}
	return len(a.sessions)
}

var _ interfaces.AuthService = (*AuthService)(nil)
