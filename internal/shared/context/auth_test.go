package context_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/memome/go-api-server/internal/shared/context"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/members/me", nil)
	return c, recorder
}

func TestGetLoginMember_Success(t *testing.T) {
	c, _ := newTestContext()
	identity, err := model.NewOAuthIdentity(model.ProviderGoogle, "0123456789")
	require.NoError(t, err)
	sharedContext.SetLoginMember(c, identity)

	got, err := sharedContext.GetLoginMember(c)

	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestGetLoginMember_Missing(t *testing.T) {
	c, _ := newTestContext()

	_, err := sharedContext.GetLoginMember(c)

	assert.ErrorIs(t, err, sharedContext.ErrLoginRequired)
}

func TestGetLoginMember_InvalidPrincipal(t *testing.T) {
	c, _ := newTestContext()
	c.Set(sharedContext.LoginMemberKey, "GOOGLE(0123456789)")

	_, err := sharedContext.GetLoginMember(c)

	assert.ErrorIs(t, err, sharedContext.ErrInvalidPrincipal)
}

func TestRequireLoginMember_WritesUnauthorized(t *testing.T) {
	c, recorder := newTestContext()
	c.Set(sharedContext.LoginMemberKey, 42)

	_, ok := sharedContext.RequireLoginMember(c)

	assert.False(t, ok)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
