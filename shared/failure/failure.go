package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Stable machine-readable codes shared across handlers.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeInvalidBody     = "INVALID_BODY"
	CodeInvalidID       = "INVALID_ID"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL"
)

// Failure is a wrapper for error messages carrying an HTTP status and a stable
// machine-readable code alongside the human-readable message.
type Failure struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Status: http.StatusForbidden, Code: CodeForbidden, Message: "You don't have the required permissions"}
var InvalidPageParam = &Failure{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: "invalid limit parameter"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// MissingField returns the code for a required field that was absent or empty,
// e.g. MISSING_NAME for "name".
func MissingField(field string) string {
	return "MISSING_" + strings.ToUpper(field)
}

// InvalidField returns the code for a field that failed validation, e.g.
// INVALID_EMAIL for "email".
func InvalidField(field string) string {
	return "INVALID_" + strings.ToUpper(field)
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusBadRequest,
			Code:    CodeInvalidBody,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeBadRequest,
		Message: msg,
	}
}

// BadRequestWithCode returns a bad-request Failure with an explicit machine code.
func BadRequestWithCode(code, msg string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    code,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Status:  http.StatusUnauthorized,
		Code:    CodeUnauthenticated,
		Message: msg,
	}
}

// Forbidden returns a new Failure for authenticated but not permitted requests.
func Forbidden(msg string) error {
	return &Failure{
		Status:  http.StatusForbidden,
		Code:    CodeForbidden,
		Message: msg,
	}
}

// NotFound returns a new Failure with the entity-specific code, e.g.
// NotFound("BOOKING_NOT_FOUND", "booking not found").
func NotFound(code, msg string) error {
	return &Failure{
		Status:  http.StatusNotFound,
		Code:    code,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(code, msg string) error {
	return &Failure{
		Status:  http.StatusConflict,
		Code:    code,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusInternalServerError,
			Code:    CodeInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetStatus returns the HTTP status of an error interface.
func GetStatus(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Status
	}

	return http.StatusInternalServerError
}

// GetErrorCode returns the machine-readable code of an error interface.
func GetErrorCode(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeInternal
}
