package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymstack/internal/shared/config"
)

func newTestService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:           "test-secret",
		AccessExpMinutes: 15,
		RefreshExpDays:   7,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken(42, 7, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, uint(7), claims.OrganizationID)
	assert.Equal(t, "admin", claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	svc := newTestService()

	access, _, err := svc.GenerateAccessToken(42, 7, "admin")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken(42, 7, "admin")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different", AccessExpMinutes: 15, RefreshExpDays: 7})
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := newTestService().ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}
