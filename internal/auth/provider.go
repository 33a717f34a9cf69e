package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// IdentityProvider drives the authorization code flow of one OIDC provider
type IdentityProvider interface {
	Type() model.ProviderType
	// AuthCodeURL returns the provider consent page carrying state and nonce
	AuthCodeURL(ctx context.Context, state, nonce string) (string, error)
	// Exchange redeems code and returns the verified ID token claims
	Exchange(ctx context.Context, code, nonce string) (map[string]any, error)
}

// OIDCProvider is an IdentityProvider backed by OpenID Connect discovery.
// Discovery runs on first use and is cached; a failed attempt is retried on the next call.
type OIDCProvider struct {
	providerType model.ProviderType
	client       config.OAuthClientConfig

	mu           sync.Mutex
	oauth2Config *oauth2.Config
	verifier     *oidc.IDTokenVerifier
}

func NewOIDCProvider(providerType model.ProviderType, client config.OAuthClientConfig) *OIDCProvider {
	return &OIDCProvider{
		providerType: providerType,
		client:       client,
	}
}

func (p *OIDCProvider) Type() model.ProviderType {
	return p.providerType
}

func (p *OIDCProvider) AuthCodeURL(ctx context.Context, state, nonce string) (string, error) {
	oauth2Config, _, err := p.discover(ctx)
	if err != nil {
		return "", err
	}
	return oauth2Config.AuthCodeURL(state, oidc.Nonce(nonce)), nil
}

func (p *OIDCProvider) Exchange(ctx context.Context, code, nonce string) (map[string]any, error) {
	oauth2Config, verifier, err := p.discover(ctx)
	if err != nil {
		return nil, err
	}

	oauth2Token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s authorization code 교환 실패: %w: %w", p.providerType, ErrProviderExchange, err)
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%s 응답에 id_token이 없습니다: %w", p.providerType, ErrProviderExchange)
	}

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("%s id_token 검증 실패: %w: %w", p.providerType, ErrProviderExchange, err)
	}
	if idToken.Nonce != nonce {
		return nil, fmt.Errorf("%s id_token nonce 불일치: %w", p.providerType, ErrInvalidLoginState)
	}

	claims := map[string]any{}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%s id_token claims 파싱 실패: %w: %w", p.providerType, ErrProviderExchange, err)
	}
	return claims, nil
}

func (p *OIDCProvider) discover(ctx context.Context) (*oauth2.Config, *oidc.IDTokenVerifier, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.oauth2Config != nil {
		return p.oauth2Config, p.verifier, nil
	}

	// the key set keeps the discovery context for later JWKS refreshes
	provider, err := oidc.NewProvider(context.WithoutCancel(ctx), p.providerType.Issuer())
	if err != nil {
		return nil, nil, fmt.Errorf("%s OIDC discovery 실패: %w: %w", p.providerType, ErrProviderExchange, err)
	}

	p.oauth2Config = &oauth2.Config{
		ClientID:     p.client.ClientID,
		ClientSecret: p.client.ClientSecret,
		RedirectURL:  p.client.RedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       p.client.Scopes,
	}
	p.verifier = provider.Verifier(&oidc.Config{ClientID: p.client.ClientID})

	return p.oauth2Config, p.verifier, nil
}

// ProviderRegistry holds the identity providers offered for login
type ProviderRegistry struct {
	providers map[model.ProviderType]IdentityProvider
}

func NewProviderRegistry(providers ...IdentityProvider) *ProviderRegistry {
	registry := &ProviderRegistry{providers: make(map[model.ProviderType]IdentityProvider, len(providers))}
	for _, provider := range providers {
		registry.providers[provider.Type()] = provider
	}
	return registry
}

// NewOIDCProviderRegistry registers every provider with configured client credentials
func NewOIDCProviderRegistry(cfg config.OAuthConfig) *ProviderRegistry {
	clients := map[model.ProviderType]config.OAuthClientConfig{
		model.ProviderGoogle: cfg.Google,
		model.ProviderKakao:  cfg.Kakao,
	}

	var providers []IdentityProvider
	for _, providerType := range model.ProviderTypes() {
		if client, ok := clients[providerType]; ok && client.Enabled() {
			providers = append(providers, NewOIDCProvider(providerType, client))
		}
	}
	return NewProviderRegistry(providers...)
}

func (r *ProviderRegistry) Get(providerType model.ProviderType) (IdentityProvider, error) {
	provider, ok := r.providers[providerType]
	if !ok {
		return nil, fmt.Errorf("설정되지 않은 provider 입니다 provider=%s: %w", providerType, model.ErrUnsupportedProvider)
	}
	return provider, nil
}

// Types lists the registered providers in registry order
func (r *ProviderRegistry) Types() []model.ProviderType {
	types := make([]model.ProviderType, 0, len(r.providers))
	for _, providerType := range model.ProviderTypes() {
		if _, ok := r.providers[providerType]; ok {
			types = append(types, providerType)
		}
	}
	return types
}

// isProviderError reports errors the provider itself is responsible for
func isProviderError(err error) bool {
	return errors.Is(err, ErrProviderExchange)
}
