package services

import (
	"context"
	"testing"
	"time"

	"crypto-spot-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(ttl time.Duration) *AuthService {
	return NewAuthService(config.AuthConfig{
		Enabled:    true,
		Username:   "admin",
		Password:   "hunter2",
		SessionTTL: ttl,
	})
}

func TestAuth_LoginIssuesValidToken(t *testing.T) {
	svc := newTestAuth(time.Hour)

	token, err := svc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.Validate(token))
}

func TestAuth_WrongCredentialsRejected(t *testing.T) {
	svc := newTestAuth(time.Hour)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "letmein"},
		{"wrong username", "root", "hunter2"},
		{"both wrong", "root", "letmein"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuth_TokensAreUniquePerLogin(t *testing.T) {
	svc := newTestAuth(time.Hour)
	ctx := context.Background()

	first, err := svc.Login(ctx, "admin", "hunter2")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "admin", "hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Validate(first))
	assert.True(t, svc.Validate(second))
}

func TestAuth_ExpiredSessionRejected(t *testing.T) {
	svc := newTestAuth(10 * time.Millisecond)

	token, err := svc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	assert.False(t, svc.Validate(token))
	assert.Equal(t, 0, svc.ActiveSessions())
}

func TestAuth_LogoutRevokesToken(t *testing.T) {
	svc := newTestAuth(time.Hour)

	token, err := svc.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	svc.Logout(token)
	assert.False(t, svc.Validate(token))

	// revoking again is harmless
	svc.Logout(token)
	svc.Logout("never-issued")
}

func TestAuth_UnknownAndEmptyTokensRejected(t *testing.T) {
	svc := newTestAuth(time.Hour)

	assert.False(t, svc.Validate(""))
	assert.False(t, svc.Validate("not-a-token"))
}
