package auth

import (
	"fmt"
	"net/http"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService *AuthService
	loginStates *LoginStateStore
}

func NewAuthHandler(authService *AuthService, loginStates *LoginStateStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		loginStates: loginStates,
	}
}

// Login redirects the browser to the provider consent page
func (a *AuthHandler) Login(c *gin.Context) {
	providerType, err := model.ParseProviderType(c.Param("provider"))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	state := LoginState{
		Provider: providerType,
		State:    uuid.NewString(),
		Nonce:    uuid.NewString(),
	}

	authURL, err := a.authService.LoginURL(c.Request.Context(), providerType, state.State, state.Nonce)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	if err := a.loginStates.Save(c.Writer, c.Request, state); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback completes the login the provider redirected back with
func (a *AuthHandler) Callback(c *gin.Context) {
	providerType, err := model.ParseProviderType(c.Param("provider"))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	loginState, err := a.loginStates.Pop(c.Writer, c.Request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	if providerErr := c.Query("error"); providerErr != "" {
		logger.FromContext(c.Request.Context()).Warn("provider가 로그인을 거부했습니다",
			"provider", providerType, "error", providerErr, "error_description", c.Query("error_description"))
		handler.RespondServiceError(c, fmt.Errorf("provider error=%s: %w", providerErr, ErrProviderExchange))
		return
	}

	if loginState.Provider != providerType || loginState.State != c.Query("state") {
		handler.RespondServiceError(c, fmt.Errorf("로그인 state 불일치 provider=%s: %w", providerType, ErrInvalidLoginState))
		return
	}

	code := c.Query("code")
	if code == "" {
		handler.RespondServiceError(c, fmt.Errorf("authorization code가 없습니다: %w", ErrInvalidLoginState))
		return
	}

	response, err := a.authService.Login(c.Request.Context(), providerType, code, loginState.Nonce)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (a *AuthHandler) Refresh(c *gin.Context) {
	var request RefreshRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Refresh(c.Request.Context(), request.RefreshToken)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
