package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/memome/go-api-server/internal/member"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/token"
)

// MemberProvisioner turns a resolved identity into a persisted member
type MemberProvisioner interface {
	GetOrCreateMember(ctx context.Context, info *model.OAuthUserInfo) (*model.Member, error)
	GetMemberByIdentity(ctx context.Context, identity model.OAuthIdentity) (*model.Member, error)
}

type AuthService struct {
	providers     *ProviderRegistry
	resolver      *IdentityResolver
	memberService MemberProvisioner
	tokenManager  token.Manager
}

func NewAuthService(providers *ProviderRegistry, resolver *IdentityResolver, memberService MemberProvisioner, tokenManager token.Manager) *AuthService {
	return &AuthService{
		providers:     providers,
		resolver:      resolver,
		memberService: memberService,
		tokenManager:  tokenManager,
	}
}

// LoginURL returns the provider consent page for a new login attempt
func (a *AuthService) LoginURL(ctx context.Context, providerType model.ProviderType, state, nonce string) (string, error) {
	provider, err := a.providers.Get(providerType)
	if err != nil {
		return "", err
	}
	return provider.AuthCodeURL(ctx, state, nonce)
}

// Login completes the authorization code flow and issues API tokens for the member
func (a *AuthService) Login(ctx context.Context, providerType model.ProviderType, code, nonce string) (*TokenResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Exchange code for verified ID token claims
	provider, err := a.providers.Get(providerType)
	if err != nil {
		return nil, err
	}

	claims, err := provider.Exchange(ctx, code, nonce)
	if err != nil {
		if isProviderError(err) {
			log.Warn("로그인 실패 - provider 인증 실패", "provider", providerType, "error", err)
		}
		return nil, err
	}

	// 2. Resolve claims into a normalized identity
	info, err := a.resolver.Resolve(claims)
	if err != nil {
		log.Warn("로그인 실패 - claims 해석 실패", "provider", providerType, "error", err)
		return nil, err
	}
	if info.ProviderType != providerType {
		return nil, fmt.Errorf("callback provider(%s)와 id_token issuer(%s)가 다릅니다: %w",
			providerType, info.ProviderType, ErrInvalidLoginState)
	}

	// 3. Get or create the member
	loginMember, err := a.memberService.GetOrCreateMember(ctx, info)
	if errors.Is(err, member.ErrMemberAlreadyExists) {
		// a concurrent first login created it
		identity, identityErr := info.Identity()
		if identityErr != nil {
			return nil, identityErr
		}
		loginMember, err = a.memberService.GetMemberByIdentity(ctx, identity)
	}
	if err != nil {
		return nil, err
	}

	// 4. Issue API tokens
	response, err := a.issueTokens(loginMember.OAuthIdentity)
	if err != nil {
		log.Error("token 생성 실패", "error", err)
		return nil, err
	}

	log.Info("로그인 성공",
		"member_id", loginMember.ID,
		"provider", providerType,
		"email", logger.MaskEmail(loginMember.Email),
	)
	return response, nil
}

// Refresh exchanges a refresh token for a new token pair while the member still exists
func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenManager.ValidateToken(refreshToken)
	if err != nil {
		log.Warn("refresh token 검증 실패", "error", err)
		return nil, fmt.Errorf("refresh token 검증 실패: %w: %w", ErrInvalidRefreshToken, err)
	}
	if claims.TokenType != token.REFRESH {
		log.Warn("refresh 요청에 refresh token이 아닌 token 사용", "token_type", claims.TokenType)
		return nil, fmt.Errorf("token type이 %s 입니다: %w", claims.TokenType, ErrInvalidRefreshToken)
	}

	identity, err := claims.Identity()
	if err != nil {
		return nil, fmt.Errorf("refresh token principal 추출 실패: %w: %w", ErrInvalidRefreshToken, err)
	}

	if _, err := a.memberService.GetMemberByIdentity(ctx, identity); err != nil {
		return nil, member.AsAuthenticationError(err)
	}

	return a.issueTokens(identity)
}

func (a *AuthService) issueTokens(identity model.OAuthIdentity) (*TokenResponse, error) {
	accessToken, err := a.tokenManager.GenerateAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(identity)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
