package auth

import (
	"net/http"

	sharedError "github.com/changhyeonkim/memome/go-api-server/internal/shared/error"
)

const (
	invalidRefreshToken = "INVALID_REFRESH_TOKEN" // errInfo
	missingClaim        = "MISSING_CLAIM"         // errInfo
	invalidLoginState   = "INVALID_LOGIN_STATE"   // errInfo
	providerExchange    = "PROVIDER_EXCHANGE"     // errInfo
)

var (
	ErrInvalidRefreshToken = sharedError.NewDomainError(invalidRefreshToken)
	ErrMissingClaim        = sharedError.NewDomainError(missingClaim)
	ErrInvalidLoginState   = sharedError.NewDomainError(invalidLoginState)
	ErrProviderExchange    = sharedError.NewDomainError(providerExchange)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidRefreshToken,
		sharedError.NewErrorResponse(http.StatusUnauthorized, "AUTH-003", "다시 로그인 해주세요."))

	sharedError.RegisterDomainErrorResponse(missingClaim,
		sharedError.NewErrorResponse(http.StatusBadRequest, "AUTH-005", "로그인 제공자의 사용자 정보가 올바르지 않습니다."))

	sharedError.RegisterDomainErrorResponse(invalidLoginState,
		sharedError.NewErrorResponse(http.StatusBadRequest, "AUTH-006", "로그인 요청이 만료되었거나 올바르지 않습니다."))

	sharedError.RegisterDomainErrorResponse(providerExchange,
		sharedError.NewErrorResponse(http.StatusUnauthorized, "AUTH-007", "로그인 제공자 인증에 실패했습니다."))
}
