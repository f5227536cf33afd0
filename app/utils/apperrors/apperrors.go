package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"kalinga-portal/app/domain"
)

// ErrorCode classifies failures for the HTTP surface.
type ErrorCode string

const (
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeProvisioning       ErrorCode = "PROVISIONING_FAILED"
	CodeDeletion           ErrorCode = "DELETION_FAILED"
	CodeServerConfig       ErrorCode = "SERVER_CONFIG_ERROR"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// AppError is the boundary error type: a stable code, a short human-readable
// message and an internal cause that is logged but never returned to clients.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// New creates an AppError with the status implied by its code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: httpStatus(code)}
}

// Wrap attaches a cause to a new AppError.
func Wrap(code ErrorCode, message string, cause error) *AppError {
	e := New(code, message)
	e.Cause = cause
	return e
}

// FromDomain maps a usecase-boundary error onto the HTTP error surface. The
// message stays short and generic; the original error rides along as the
// cause for logging.
func FromDomain(err error) *AppError {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return Wrap(CodeValidationFailed, err.Error(), err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Wrap(CodeInvalidCredentials, "invalid credentials", err)
	case errors.Is(err, domain.ErrServerConfig):
		return Wrap(CodeServerConfig, "server configuration error", err)
	case errors.Is(err, domain.ErrNotAuthenticated):
		return Wrap(CodeUnauthorized, "authentication required", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return Wrap(CodeForbidden, "access denied", err)
	case errors.Is(err, domain.ErrTargetNotFound):
		return Wrap(CodeNotFound, "target profile not found", err)
	case errors.Is(err, domain.ErrProfileMissing), errors.Is(err, domain.ErrUnknownRole):
		return Wrap(CodeUnauthorized, "profile could not be resolved", err)
	case errors.Is(err, domain.ErrMetadataUpdate),
		errors.Is(err, domain.ErrProfileInsert),
		errors.Is(err, domain.ErrProvisioning):
		return Wrap(CodeProvisioning, "account creation failed", err)
	default:
		var delErr *domain.DeletionError
		if errors.As(err, &delErr) {
			return Wrap(CodeDeletion, "account deletion failed", err)
		}
		return Wrap(CodeInternal, "internal server error", err)
	}
}

// AsAppError converts an error to AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HTTPStatus returns the status code an error should surface with.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func httpStatus(code ErrorCode) int {
	switch code {
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeInvalidCredentials, CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeProvisioning, CodeDeletion:
		return http.StatusUnprocessableEntity
	case CodeServerConfig, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
