package auth_test

import (
	"context"
	"fmt"
	"net/url"

	"github.com/changhyeonkim/memome/go-api-server/internal/auth"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
)

const validCode = "valid-code"

// fakeProvider stands in for an OIDC provider; it accepts validCode only
type fakeProvider struct {
	providerType model.ProviderType
	claims       map[string]any
	nonce        string
}

func newFakeProvider(providerType model.ProviderType, claims map[string]any) *fakeProvider {
	return &fakeProvider{providerType: providerType, claims: claims}
}

func (p *fakeProvider) Type() model.ProviderType {
	return p.providerType
}

func (p *fakeProvider) AuthCodeURL(_ context.Context, state, nonce string) (string, error) {
	p.nonce = nonce
	query := url.Values{"state": {state}, "nonce": {nonce}}
	return p.providerType.Issuer() + "/authorize?" + query.Encode(), nil
}

func (p *fakeProvider) Exchange(_ context.Context, code, nonce string) (map[string]any, error) {
	if code != validCode {
		return nil, fmt.Errorf("invalid_grant: %w", auth.ErrProviderExchange)
	}
	if p.nonce != "" && p.nonce != nonce {
		return nil, fmt.Errorf("nonce mismatch: %w", auth.ErrInvalidLoginState)
	}

	claims := make(map[string]any, len(p.claims))
	for k, v := range p.claims {
		claims[k] = v
	}
	return claims, nil
}

func googleClaims() map[string]any {
	return map[string]any{
		"iss":   "https://accounts.google.com",
		"sub":   "0123456789",
		"name":  "홍길동",
		"email": "test@email.com",
	}
}

func kakaoClaims() map[string]any {
	return map[string]any{
		"iss":      "https://kauth.kakao.com",
		"sub":      "987654321",
		"nickname": "카카오",
		"email":    "kakao@email.com",
	}
}
