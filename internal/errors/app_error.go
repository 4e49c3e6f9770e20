package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

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

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation             = "VALIDATION_ERROR"
	ErrCodeBadRequest             = "BAD_REQUEST"
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeEmptyCart              = "EMPTY_CART"
	ErrCodeConcurrentModification = "CONCURRENT_MODIFICATION"
	ErrCodeConstraintViolation    = "CONSTRAINT_VIOLATION"
	ErrCodeInternal               = "INTERNAL_ERROR"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
	ErrCodeDuplicateEntry         = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError        = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests        = "TOO_MANY_REQUESTS"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

// EmptyCartError rejects a checkout of a cart that has no items. The cart is
// left untouched, so 422 rather than 400: the request was well-formed, the
// cart state is what cannot be processed.
func EmptyCartError(message string) *AppError {
	return NewAppError(ErrCodeEmptyCart, message, http.StatusUnprocessableEntity)
}

func ConcurrentModificationError(message string) *AppError {
	return NewAppError(ErrCodeConcurrentModification, message, http.StatusConflict)
}

func ConstraintViolationError(message string) *AppError {
	return NewAppError(ErrCodeConstraintViolation, message, http.StatusConflict)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func DuplicateEntryError(message string) *AppError {
	return NewAppError(ErrCodeDuplicateEntry, message, http.StatusConflict)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusInternalServerError)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// Is re-exports the stdlib check so callers holding this package don't need a
// second errors import to test sentinels.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// ConstraintError inspects a driver error for an integrity-constraint failure
// (Postgres class 23). Unique violations map to DUPLICATE_ENTRY, the rest of
// the class to CONSTRAINT_VIOLATION. Returns nil when err is something else.
func ConstraintError(err error) *AppError {
	var pqErr *pq.Error

	if !errors.As(err, &pqErr) {
		return nil
	}

	if pqErr.Code == "23505" {
		return DuplicateEntryError("Resource already exists").WithDetail(pqErr.Constraint).WithError(err)
	}

	if pqErr.Code.Class() == "23" {
		return ConstraintViolationError("Operation violates a data integrity constraint").WithDetail(pqErr.Constraint).WithError(err)
	}

	return nil
}

// IsSerializationFailure reports whether err is a Postgres serialization
// failure (40001), i.e. a transaction that lost a race and may be retried.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
