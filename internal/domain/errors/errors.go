package errors

import (
	"net/http"

	"passfit/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Location-related errors. Resolution failures themselves are not
	// errors: they degrade the location state to denied with a fallback.
	// Only waiting past the caller's own deadline surfaces as an error.
	ErrLocationTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"LOCATION_TIMEOUT",
		"Timed out while resolving position",
		"",
	)

	ErrFallbackLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"FALLBACK_LOCATION_NOT_FOUND",
		"Unknown fallback location",
		"",
	)

	// Directory-related errors
	ErrStudioNotFound = NewBaseError(
		http.StatusNotFound,
		"STUDIO_NOT_FOUND",
		"Studio not found",
		"",
	)

	ErrDirectoryUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DIRECTORY_UNAVAILABLE",
		"Studio directory is temporarily unavailable",
		"",
	)

	// Check-in related errors. AlreadyCheckedIn is an expected business
	// outcome, distinct from transport or server faults.
	ErrAlreadyCheckedIn = NewBaseError(
		http.StatusConflict,
		"ALREADY_CHECKED_IN",
		"Already checked in at this studio today",
		"",
	)

	ErrInvalidCheckInCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CHECKIN_CODE",
		"Scanned code is not a valid check-in code",
		"",
	)

	ErrStudioInactive = NewBaseError(
		http.StatusConflict,
		"STUDIO_INACTIVE",
		"This studio no longer accepts check-ins",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Subscription not found",
		"",
	)

	ErrSubscriptionAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SUBSCRIPTION_ALREADY_EXISTS",
		"An active subscription already exists",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// StoreExecuteError represents a document store execution error,
// implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a document-store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "document store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "Document store execution failed"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}
