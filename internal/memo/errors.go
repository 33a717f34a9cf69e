package memo

import (
	"net/http"

	sharedError "github.com/changhyeonkim/memome/go-api-server/internal/shared/error"
)

const (
	memoNotFound = "MEMO_NOT_FOUND" // errInfo
)

var (
	ErrMemoNotFound = sharedError.NewDomainError(memoNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memoNotFound,
		sharedError.NewErrorResponse(http.StatusNotFound, "MEMO-001", "메모를 찾을 수 없습니다."))
}
