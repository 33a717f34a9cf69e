package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sharedContext "github.com/changhyeonkim/memome/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/memome/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

// Register JWT error responses
func init() {
	for _, errInfo := range []string{missingToken, invalidToken, invalidClaims} {
		sharedError.RegisterDomainErrorResponse(errInfo, sharedError.Unauthorized)
	}

	sharedError.RegisterDomainErrorResponse(expiredToken,
		sharedError.NewErrorResponse(http.StatusUnauthorized, "AUTH-002", "로그인이 만료되었습니다. 다시 로그인 해주세요."))
}

// JWT authenticates the bearer access token and stores the caller's
// OAuth identity in the gin context
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 요청 정보 (로깅용)
		logFields := []any{
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"user_agent", c.Request.UserAgent(),
		}

		// Step 1: 토큰 추출
		tokenString, err := extractToken(c)
		if err != nil {
			slog.Warn("JWT 토큰 추출 실패", append([]any{"step", "extract_token", "error", err.Error()}, logFields...)...)
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(tokenString)
		if err == nil && claims.TokenType != token.ACCESS {
			err = token.ErrInvalidToken
		}
		if err != nil {
			slog.Warn("JWT 토큰 검증 실패", append([]any{"step", "validate_token", "error", err.Error()}, logFields...)...)
			handleJWTError(c, mapTokenError(err))
			return
		}

		// Step 3: principal 추출
		identity, err := claims.Identity()
		if err != nil {
			slog.Warn("JWT principal 추출 실패", append([]any{"step", "resolve_identity", "error", err.Error()}, logFields...)...)
			handleJWTError(c, ErrInvalidClaims)
			return
		}

		// 인증 성공 - Context에 사용자 정보 저장
		sharedContext.SetLoginMember(c, identity)
		c.Next()
	}
}

// handleJWTError handles JWT errors using the standardized error response format
// Note: Logging is done at the point of error detection in JWT() function
func handleJWTError(c *gin.Context, err error) {
	c.Error(err)
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.AbortWithStatusJSON(resp.Status, resp)
		return
	}

	// 예상치 못한 에러 → Fallback 응답
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		sharedError.NewErrorResponse(http.StatusUnauthorized, "AUTH-999", "인증에 실패했습니다."))
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, tokenString, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, BearerScheme) || strings.TrimSpace(tokenString) == "" {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(tokenString), nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
