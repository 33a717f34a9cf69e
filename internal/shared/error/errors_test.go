package error_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	sharedError "github.com/changhyeonkim/memome/go-api-server/internal/shared/error"
	"github.com/stretchr/testify/assert"
)

func TestResolveDomainError_RegisteredSentinel(t *testing.T) {
	// Given: a registered domain error wrapped with context
	errTest := sharedError.NewDomainError("TEST_REGISTERED")
	sharedError.RegisterDomainErrorResponse("TEST_REGISTERED",
		sharedError.NewErrorResponse(http.StatusConflict, "TEST-001", "테스트 오류"))
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", errTest))

	// When
	resp, ok := sharedError.ResolveDomainError(wrapped)

	// Then
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "Conflict", resp.Title)
	assert.Equal(t, "about:blank", resp.Type)
	assert.Equal(t, "TEST-001", resp.Code)
	assert.True(t, errors.Is(wrapped, errTest))
}

func TestResolveDomainError_Unregistered(t *testing.T) {
	_, ok := sharedError.ResolveDomainError(sharedError.NewDomainError("TEST_UNREGISTERED"))
	assert.False(t, ok)

	_, ok = sharedError.ResolveDomainError(errors.New("plain error"))
	assert.False(t, ok)

	_, ok = sharedError.ResolveDomainError(nil)
	assert.False(t, ok)
}

func TestErrorResponse_WithErrorsDoesNotMutateBase(t *testing.T) {
	resp := sharedError.ValidationFailed.WithErrors([]sharedError.FieldError{{Field: "nickname", Message: "필수 항목을 입력해 주세요."}})

	assert.Len(t, resp.Errors, 1)
	assert.Empty(t, sharedError.ValidationFailed.Errors)
}
