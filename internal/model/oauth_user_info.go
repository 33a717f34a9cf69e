package model

import "fmt"

// OAuthUserInfo is the normalized result of resolving provider claims.
// Nickname and email are carried as reported; Member creation validates them.
type OAuthUserInfo struct {
	ProviderType ProviderType
	ProviderID   string
	Nickname     string
	Email        string
}

func NewOAuthUserInfo(providerType ProviderType, providerID, nickname, email string) (*OAuthUserInfo, error) {
	if !providerType.IsValid() || isBlank(providerID) {
		return nil, fmt.Errorf("providerType 또는 providerId는 null이거나 빈 문자열일 수 없습니다: %w", ErrInvalidArgument)
	}

	return &OAuthUserInfo{
		ProviderType: providerType,
		ProviderID:   providerID,
		Nickname:     nickname,
		Email:        email,
	}, nil
}

// Identity returns the business key the info belongs to.
func (u *OAuthUserInfo) Identity() (OAuthIdentity, error) {
	return NewOAuthIdentity(u.ProviderType, u.ProviderID)
}
