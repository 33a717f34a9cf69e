package token

import (
	"errors"
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

const (
	ACCESS  = "access"
	REFRESH = "refresh"
)

// Claims identify the member by its OAuth identity: Subject is the provider id.
type Claims struct {
	ProviderType string `json:"provider_type"`
	TokenType    string `json:"token_type"`
	jwt.RegisteredClaims
}

// Identity rebuilds the OAuth identity carried by the token
func (c *Claims) Identity() (model.OAuthIdentity, error) {
	providerType, err := model.ParseProviderType(c.ProviderType)
	if err != nil {
		return model.OAuthIdentity{}, errors.Join(ErrInvalidClaims, err)
	}

	identity, err := model.NewOAuthIdentity(providerType, c.Subject)
	if err != nil {
		return model.OAuthIdentity{}, errors.Join(ErrInvalidClaims, err)
	}
	return identity, nil
}

type Manager interface {
	GenerateAccessToken(identity model.OAuthIdentity) (string, error)
	GenerateRefreshToken(identity model.OAuthIdentity) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTManager struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:        []byte(cfg.JWT.Secret),
		issuer:        cfg.App.Name,
		accessExpiry:  cfg.JWT.Expiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
	}
}

func (m *JWTManager) GenerateAccessToken(identity model.OAuthIdentity) (string, error) {
	return m.generate(identity, ACCESS, m.accessExpiry)
}

func (m *JWTManager) GenerateRefreshToken(identity model.OAuthIdentity) (string, error) {
	return m.generate(identity, REFRESH, m.refreshExpiry)
}

func (m *JWTManager) generate(identity model.OAuthIdentity, tokenType string, expiry time.Duration) (string, error) {
	if identity.IsZero() {
		return "", ErrInvalidClaims
	}

	now := time.Now()
	claims := Claims{
		ProviderType: identity.ProviderType.String(),
		TokenType:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ProviderID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(m.issuer),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != ACCESS && claims.TokenType != REFRESH {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
