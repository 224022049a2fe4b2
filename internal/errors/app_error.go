package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is rendered by response.Error as the API error envelope.
// Detail carries the "field: reason" text of a validation failure.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeDuplicateEntry  = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
)

// Deleting a still-referenced record is a client error, hence 400 for CONFLICT.
var statusByCode = map[string]int{
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeConflict:        http.StatusBadRequest,
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeDatabaseError:   http.StatusInternalServerError,
	ErrCodeDuplicateEntry:  http.StatusConflict,
	ErrCodeThirdPartyError: http.StatusBadGateway,
	ErrCodeTooManyRequests: http.StatusTooManyRequests,
}

func newAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: statusByCode[code]}
}

func ValidationError(message string) *AppError { return newAppError(ErrCodeValidation, message) }

func BadRequestError(message string) *AppError { return newAppError(ErrCodeBadRequest, message) }

func NotFoundError(message string) *AppError { return newAppError(ErrCodeNotFound, message) }

func UnauthorizedError(message string) *AppError { return newAppError(ErrCodeUnauthorized, message) }

func ForbiddenError(message string) *AppError { return newAppError(ErrCodeForbidden, message) }

func ConflictError(message string) *AppError { return newAppError(ErrCodeConflict, message) }

func InternalError(message string) *AppError { return newAppError(ErrCodeInternal, message) }

func DatabaseError(message string) *AppError { return newAppError(ErrCodeDatabaseError, message) }

func DuplicateEntryError(message string) *AppError {
	return newAppError(ErrCodeDuplicateEntry, message)
}

func ThirdPartyError(message string) *AppError { return newAppError(ErrCodeThirdPartyError, message) }

func TooManyRequestsError(message string) *AppError {
	return newAppError(ErrCodeTooManyRequests, message)
}

// AddValidationError reports a single rejected field, e.g. "cart_uuid: The cart is empty."
func AddValidationError(field, reason string) *AppError {
	appErr := ValidationError(fmt.Sprintf("Invalid field '%s'", field))
	appErr.Detail = field + ": " + reason

	return appErr
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
