package error

import (
	"errors"
	"net/http"
)

type DomainError interface {
	error // Embed standard error interface
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string {
	return e.errInfo
}

func (e *domainSentinel) Info() string {
	return e.errInfo
}

// FieldError describes a single request field that failed validation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON response structure for errors (RFC 9457 problem details)
// Code is an extension member so clients can branch without parsing detail.
type ErrorResponse struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail"` // client message
	Code   string       `json:"code"`
	Errors []FieldError `json:"errors,omitempty"`
}

const defaultProblemType = "about:blank"

// NewErrorResponse builds a problem-details response for the given status
func NewErrorResponse(status int, code, detail string) ErrorResponse {
	return ErrorResponse{
		Type:   defaultProblemType,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Code:   code,
	}
}

// WithErrors returns a copy of the response carrying field validation errors
func (r ErrorResponse) WithErrors(errs []FieldError) ErrorResponse {
	r.Errors = errs
	return r
}

// Common errors
var (
	domainErrorResponses = map[string]ErrorResponse{}

	// ValidationFailed indicates the request payload failed validation
	ValidationFailed = NewErrorResponse(http.StatusBadRequest, "ERROR-001", "잘못된 요청입니다.") // METHOD_ARGUMENT_NOT_VALID

	// InvalidRequest indicates the request format is invalid (e.g., JSON parsing error)
	InvalidRequest = NewErrorResponse(http.StatusBadRequest, "ERROR-002", "잘못된 요청 형식입니다.") // INVALID_REQUEST

	// InternalServerError indicates an unexpected server error
	InternalServerError = NewErrorResponse(http.StatusInternalServerError, "ERROR-003", "서버 내부 오류가 발생했습니다.") // INTERNAL_SERVER_ERROR

	// Unauthorized is the fallback for authentication failures without a registered mapping
	Unauthorized = NewErrorResponse(http.StatusUnauthorized, "AUTH-000", "로그인을 해주세요.")
)

// NewDomainError creates a sentinel error that can participate in error chains.
func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// RegisterDomainErrorResponse registers a mapping between a domain error errInfo and a shared error response.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError converts a domain error into a shared error response if a mapping exists.
// The outermost registered sentinel in the chain wins.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	if err == nil {
		return ErrorResponse{}, false
	}

	var domainErr DomainError
	if errors.As(err, &domainErr) {
		if resp, ok := domainErrorResponses[domainErr.Info()]; ok {
			return resp, true
		}
	}
	return ErrorResponse{}, false
}
