package auth_test

import (
	"net/url"
	"testing"

	"github.com/changhyeonkim/memome/go-api-server/internal/auth"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Google(t *testing.T) {
	// Given
	claims := map[string]any{
		"iss":   "https://accounts.google.com",
		"sub":   "0123456789",
		"name":  "홍길동",
		"email": "test@email.com",
	}

	// When
	info, err := auth.NewIdentityResolver().Resolve(claims)

	// Then
	require.NoError(t, err)
	assert.Equal(t, model.ProviderGoogle, info.ProviderType)
	assert.Equal(t, "0123456789", info.ProviderID)
	assert.Equal(t, "홍길동", info.Nickname)
	assert.Equal(t, "test@email.com", info.Email)
}

func TestResolve_KakaoReadsNicknameClaim(t *testing.T) {
	// Given
	claims := map[string]any{
		"iss":      "https://kauth.kakao.com",
		"sub":      "987654321",
		"name":     "ignored",
		"nickname": "카카오",
		"email":    "kakao@email.com",
	}

	// When
	info, err := auth.NewIdentityResolver().Resolve(claims)

	// Then
	require.NoError(t, err)
	assert.Equal(t, model.ProviderKakao, info.ProviderType)
	assert.Equal(t, "987654321", info.ProviderID)
	assert.Equal(t, "카카오", info.Nickname)
}

func TestResolve_IssuerAsURL(t *testing.T) {
	issuer, err := url.Parse("https://accounts.google.com")
	require.NoError(t, err)

	info, err := auth.NewIdentityResolver().Resolve(map[string]any{
		"iss": issuer,
		"sub": "0123456789",
	})

	require.NoError(t, err)
	assert.Equal(t, model.ProviderGoogle, info.ProviderType)
	assert.Empty(t, info.Nickname)
	assert.Empty(t, info.Email)
}

func TestResolve_NumericSubject(t *testing.T) {
	info, err := auth.NewIdentityResolver().Resolve(map[string]any{
		"iss": "https://kauth.kakao.com",
		"sub": float64(4242424242),
	})

	require.NoError(t, err)
	assert.Equal(t, "4242424242", info.ProviderID)
}

func TestResolve_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		claims   map[string]any
		expected error
	}{
		{
			name:     "missing iss",
			claims:   map[string]any{"sub": "0123456789"},
			expected: auth.ErrMissingClaim,
		},
		{
			name:     "iss of unexpected type",
			claims:   map[string]any{"iss": 42, "sub": "0123456789"},
			expected: auth.ErrMissingClaim,
		},
		{
			name:     "blank iss",
			claims:   map[string]any{"iss": " ", "sub": "0123456789"},
			expected: model.ErrInvalidArgument,
		},
		{
			name:     "unknown issuer",
			claims:   map[string]any{"iss": "https://appleid.apple.com", "sub": "0123456789"},
			expected: model.ErrUnsupportedProvider,
		},
		{
			name:     "missing sub",
			claims:   map[string]any{"iss": "https://accounts.google.com", "name": "홍길동"},
			expected: model.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.NewIdentityResolver().Resolve(tc.claims)

			assert.ErrorIs(t, err, tc.expected)
		})
	}
}
