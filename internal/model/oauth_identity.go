package model

import "fmt"

// OAuthIdentity is the provider-qualified business key of a Member.
// Both columns are insert-only; the composite unique index backs the
// get-or-create race on first login.
type OAuthIdentity struct {
	ProviderType ProviderType `gorm:"column:provider_type;size:20;not null;uniqueIndex:idx_member_oauth_identity,priority:1;<-:create"`
	ProviderID   string       `gorm:"column:provider_id;size:255;not null;uniqueIndex:idx_member_oauth_identity,priority:2;<-:create"`
}

func NewOAuthIdentity(providerType ProviderType, providerID string) (OAuthIdentity, error) {
	if !providerType.IsValid() || isBlank(providerID) {
		return OAuthIdentity{}, fmt.Errorf("providerType 또는 providerId는 null이거나 공백일 수 없습니다: %w", ErrInvalidArgument)
	}

	return OAuthIdentity{
		ProviderType: providerType,
		ProviderID:   providerID,
	}, nil
}

// IsZero reports whether the identity was never constructed.
func (i OAuthIdentity) IsZero() bool {
	return i == OAuthIdentity{}
}

func (i OAuthIdentity) String() string {
	return fmt.Sprintf("%s(%s)", i.ProviderType, i.ProviderID)
}
