package member

import (
	"net/http"

	sharedError "github.com/changhyeonkim/memome/go-api-server/internal/shared/error"
)

const (
	memberAlreadyExists   = "MEMBER_ALREADY_EXISTS"  // errInfo
	memberNotFound        = "MEMBER_NOT_FOUND"       // errInfo
	invalidAuthentication = "INVALID_AUTHENTICATION" // errInfo
)

var (
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)

	// ErrInvalidAuthentication marks a valid token whose member no longer exists
	ErrInvalidAuthentication = sharedError.NewDomainError(invalidAuthentication)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound,
		sharedError.NewErrorResponse(http.StatusNotFound, "MEMBER-001", "회원 정보를 찾을 수 없습니다."))

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists,
		sharedError.NewErrorResponse(http.StatusConflict, "MEMBER-002", "이미 가입된 사용자입니다."))

	sharedError.RegisterDomainErrorResponse(invalidAuthentication,
		sharedError.NewErrorResponse(http.StatusUnauthorized, "AUTH-001", "인증된 사용자 정보가 더 이상 유효하지 않습니다."))
}
