package context

import (
	"fmt"
	"net/http"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	sharedError "github.com/changhyeonkim/memome/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context key for storing the authenticated principal
const LoginMemberKey = "login_member"

const (
	loginRequired    = "LOGIN_REQUIRED"    // errInfo
	invalidPrincipal = "INVALID_PRINCIPAL" // errInfo
)

var (
	ErrLoginRequired    = sharedError.NewDomainError(loginRequired)
	ErrInvalidPrincipal = sharedError.NewDomainError(invalidPrincipal)
)

func init() {
	sharedError.RegisterDomainErrorResponse(loginRequired, sharedError.Unauthorized)
	sharedError.RegisterDomainErrorResponse(invalidPrincipal, sharedError.Unauthorized)
}

// SetLoginMember stores the authenticated OAuth identity for downstream handlers
func SetLoginMember(c *gin.Context, identity model.OAuthIdentity) {
	c.Set(LoginMemberKey, identity)
}

// GetLoginMember returns the authenticated OAuth identity.
// A principal of any other shape is rejected with ErrInvalidPrincipal.
func GetLoginMember(c *gin.Context) (model.OAuthIdentity, error) {
	principal, exists := c.Get(LoginMemberKey)
	if !exists {
		return model.OAuthIdentity{}, ErrLoginRequired
	}

	identity, ok := principal.(model.OAuthIdentity)
	if !ok || identity.IsZero() {
		return model.OAuthIdentity{}, fmt.Errorf("expected %T, but found %T principal: %w",
			model.OAuthIdentity{}, principal, ErrInvalidPrincipal)
	}

	return identity, nil
}

// RequireLoginMember retrieves the authenticated identity from the Gin context.
// If it is missing or malformed, sends an authentication error response.
// Returns false if the response has already been written.
func RequireLoginMember(c *gin.Context) (model.OAuthIdentity, bool) {
	identity, err := GetLoginMember(c)
	if err != nil {
		c.Error(err)
		resp, _ := sharedError.ResolveDomainError(err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
		logger.FromContext(c.Request.Context()).Error("[API] context에 로그인 회원 정보가 올바르지 않습니다.", "error", err)
		return model.OAuthIdentity{}, false
	}
	return identity, true
}
