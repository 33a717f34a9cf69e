package model_test

import (
	"testing"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOAuthIdentity_Success(t *testing.T) {
	identity, err := model.NewOAuthIdentity(model.ProviderGoogle, "0123456789")

	require.NoError(t, err)
	assert.Equal(t, model.ProviderGoogle, identity.ProviderType)
	assert.Equal(t, "0123456789", identity.ProviderID)
	assert.Equal(t, "GOOGLE(0123456789)", identity.String())
}

func TestNewOAuthIdentity_InvalidArguments(t *testing.T) {
	testCases := []struct {
		name         string
		providerType model.ProviderType
		providerID   string
	}{
		{name: "providerType is empty", providerType: "", providerID: "0123456789"},
		{name: "providerType is unknown", providerType: "NAVER", providerID: "0123456789"},
		{name: "providerId is empty", providerType: model.ProviderKakao, providerID: ""},
		{name: "providerId is blank", providerType: model.ProviderKakao, providerID: "   "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.NewOAuthIdentity(tc.providerType, tc.providerID)

			assert.ErrorIs(t, err, model.ErrInvalidArgument)
		})
	}
}

func TestOAuthIdentity_Equality(t *testing.T) {
	google, err := model.NewOAuthIdentity(model.ProviderGoogle, "X")
	require.NoError(t, err)
	sameGoogle, err := model.NewOAuthIdentity(model.ProviderGoogle, "X")
	require.NoError(t, err)
	kakao, err := model.NewOAuthIdentity(model.ProviderKakao, "X")
	require.NoError(t, err)
	otherGoogle, err := model.NewOAuthIdentity(model.ProviderGoogle, "Y")
	require.NoError(t, err)

	assert.True(t, google == sameGoogle)
	assert.False(t, google == kakao)
	assert.False(t, google == otherGoogle)
}

func TestNewOAuthUserInfo(t *testing.T) {
	info, err := model.NewOAuthUserInfo(model.ProviderKakao, "0123456789", "홍길동", "test@email.com")
	require.NoError(t, err)

	identity, err := info.Identity()
	require.NoError(t, err)
	assert.Equal(t, model.OAuthIdentity{ProviderType: model.ProviderKakao, ProviderID: "0123456789"}, identity)

	_, err = model.NewOAuthUserInfo(model.ProviderKakao, " ", "홍길동", "test@email.com")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}
