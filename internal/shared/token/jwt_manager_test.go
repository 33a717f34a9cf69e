package token

import (
	"testing"
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "memome-api-test"},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        expiry,
			RefreshExpiry: time.Hour,
		},
	})
}

func testIdentity(t *testing.T) model.OAuthIdentity {
	t.Helper()

	identity, err := model.NewOAuthIdentity(model.ProviderKakao, "0123456789")
	require.NoError(t, err)
	return identity
}

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	manager := newTestManager(time.Hour)
	identity := testIdentity(t)

	tokenString, err := manager.GenerateAccessToken(identity)
	require.NoError(t, err)

	claims, err := manager.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, ACCESS, claims.TokenType)

	resolved, err := claims.Identity()
	require.NoError(t, err)
	assert.Equal(t, identity, resolved)
}

func TestJWTManager_RefreshTokenType(t *testing.T) {
	manager := newTestManager(time.Hour)

	tokenString, err := manager.GenerateRefreshToken(testIdentity(t))
	require.NoError(t, err)

	claims, err := manager.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, REFRESH, claims.TokenType)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := newTestManager(-time.Minute)

	tokenString, err := manager.GenerateAccessToken(testIdentity(t))
	require.NoError(t, err)

	_, err = manager.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTManager_ForeignSecret(t *testing.T) {
	other := NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "memome-api-test"},
		JWT: config.JWTConfig{Secret: "another-secret-key-that-is-long-enough-for-hs256", Expiry: time.Hour},
	})
	tokenString, err := other.GenerateAccessToken(testIdentity(t))
	require.NoError(t, err)

	_, err = newTestManager(time.Hour).ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_ZeroIdentity(t *testing.T) {
	_, err := newTestManager(time.Hour).GenerateAccessToken(model.OAuthIdentity{})

	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestClaims_IdentityWithUnknownProvider(t *testing.T) {
	claims := &Claims{ProviderType: "NAVER"}
	claims.Subject = "0123456789"

	_, err := claims.Identity()

	assert.ErrorIs(t, err, ErrInvalidClaims)
	assert.ErrorIs(t, err, model.ErrUnsupportedProvider)
}
