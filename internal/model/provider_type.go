package model

import (
	"fmt"
	"strings"
)

// ProviderType identifies a supported OpenID Connect identity provider.
// The value is persisted as-is, so existing names must never change.
type ProviderType string

const (
	ProviderGoogle ProviderType = "GOOGLE"
	ProviderKakao  ProviderType = "KAKAO"
)

// providerIssuers is ordered so issuer matching is deterministic.
var providerIssuers = []struct {
	providerType ProviderType
	issuer       string
}{
	{ProviderGoogle, "https://accounts.google.com"},
	{ProviderKakao, "https://kauth.kakao.com"},
}

// ProviderTypes returns every supported provider.
func ProviderTypes() []ProviderType {
	types := make([]ProviderType, 0, len(providerIssuers))
	for _, p := range providerIssuers {
		types = append(types, p.providerType)
	}
	return types
}

// Issuer returns the fixed OIDC issuer of the provider, or "" if unsupported.
func (p ProviderType) Issuer() string {
	for _, entry := range providerIssuers {
		if entry.providerType == p {
			return entry.issuer
		}
	}
	return ""
}

func (p ProviderType) IsValid() bool {
	return p.Issuer() != ""
}

func (p ProviderType) String() string {
	return string(p)
}

// ProviderTypeOfIssuer resolves the provider that owns the given issuer.
func ProviderTypeOfIssuer(issuer string) (ProviderType, error) {
	if isBlank(issuer) {
		return "", fmt.Errorf("issuer는 null이거나 빈 문자열일 수 없습니다: %w", ErrInvalidArgument)
	}

	for _, entry := range providerIssuers {
		if entry.issuer == issuer {
			return entry.providerType, nil
		}
	}
	return "", fmt.Errorf("지원하지 않는 OAuth Issuer 입니다 issuer=%s: %w: %w", issuer, ErrUnsupportedProvider, ErrInvalidArgument)
}

// ParseProviderType resolves a provider by name, ignoring case ("google", "KAKAO").
func ParseProviderType(name string) (ProviderType, error) {
	if isBlank(name) {
		return "", fmt.Errorf("provider는 빈 문자열일 수 없습니다: %w", ErrInvalidArgument)
	}

	p := ProviderType(strings.ToUpper(strings.TrimSpace(name)))
	if !p.IsValid() {
		return "", fmt.Errorf("지원하지 않는 provider 입니다 provider=%s: %w: %w", name, ErrUnsupportedProvider, ErrInvalidArgument)
	}
	return p, nil
}
