package model

import (
	"net/http"
	"strings"

	sharedError "github.com/changhyeonkim/memome/go-api-server/internal/shared/error"
)

const (
	invalidArgument     = "INVALID_ARGUMENT"     // errInfo
	unsupportedProvider = "UNSUPPORTED_PROVIDER" // errInfo
	notMemoOwner        = "NOT_MEMO_OWNER"       // errInfo
)

var (
	ErrInvalidArgument     = sharedError.NewDomainError(invalidArgument)
	ErrUnsupportedProvider = sharedError.NewDomainError(unsupportedProvider)
	ErrNotMemoOwner        = sharedError.NewDomainError(notMemoOwner)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidArgument,
		sharedError.NewErrorResponse(http.StatusBadRequest, "COMMON-001", "요청 값이 올바르지 않습니다."))

	sharedError.RegisterDomainErrorResponse(unsupportedProvider,
		sharedError.NewErrorResponse(http.StatusBadRequest, "AUTH-004", "지원하지 않는 로그인 방식입니다."))

	sharedError.RegisterDomainErrorResponse(notMemoOwner,
		sharedError.NewErrorResponse(http.StatusForbidden, "MEMO-002", "메모 작성자만 수정하거나 삭제할 수 있습니다."))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
