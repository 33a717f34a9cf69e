package auth

import (
	"fmt"
	"strconv"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
)

// IssuerClaim is the registered claim naming the token issuer
const IssuerClaim = "iss"

// claimNames locates the user attributes inside one provider's ID token claims
type claimNames struct {
	subject  string
	nickname string
	email    string
}

// Supporting another provider is one entry here plus its ProviderType.
var providerClaimNames = map[model.ProviderType]claimNames{
	model.ProviderGoogle: {subject: "sub", nickname: "name", email: "email"},
	model.ProviderKakao:  {subject: "sub", nickname: "nickname", email: "email"},
}

// IdentityResolver normalizes verified ID token claims into OAuthUserInfo
type IdentityResolver struct {
	claimNames map[model.ProviderType]claimNames
}

func NewIdentityResolver() *IdentityResolver {
	return &IdentityResolver{claimNames: providerClaimNames}
}

// Resolve picks the provider by the "iss" claim and reads its attributes.
// Missing nickname or email resolve to "" and are rejected later by Member validation.
func (r *IdentityResolver) Resolve(claims map[string]any) (*model.OAuthUserInfo, error) {
	issuer, ok := issuerOf(claims)
	if !ok {
		return nil, fmt.Errorf("claims에 %s 값이 없습니다: %w", IssuerClaim, ErrMissingClaim)
	}

	providerType, err := model.ProviderTypeOfIssuer(issuer)
	if err != nil {
		return nil, err
	}

	names, ok := r.claimNames[providerType]
	if !ok {
		return nil, fmt.Errorf("claim 매핑이 없는 provider 입니다 provider=%s: %w", providerType, model.ErrUnsupportedProvider)
	}

	return model.NewOAuthUserInfo(
		providerType,
		claimString(claims, names.subject),
		claimString(claims, names.nickname),
		claimString(claims, names.email),
	)
}

// issuerOf accepts a string issuer or any fmt.Stringer such as *url.URL
func issuerOf(claims map[string]any) (string, bool) {
	switch v := claims[IssuerClaim].(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func claimString(claims map[string]any, name string) string {
	switch v := claims[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// numeric ids decoded from JSON
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
