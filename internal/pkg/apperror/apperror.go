package apperror

import "net/http"

// AppError is a custom error type that includes an HTTP status code and an
// optional underlying error.
type AppError struct {
	Code    int    // HTTP status code (e.g., 400, 409)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation marks malformed or out-of-grid input; the message names the
// offending field so the caller can correct it.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// Conflict marks an unavailable or fully booked slot; correctable by choosing
// another slot.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

// Authorization marks a cancellation phone or code mismatch.
func Authorization(message string) *AppError {
	return New(http.StatusForbidden, message)
}

// Upstream wraps a calendar collaborator failure. The internal detail stays in
// Err for operator logs; callers only see a generic message.
func Upstream(err error) *AppError {
	return Wrap(err, http.StatusBadGateway, "service temporarily unavailable, try again")
}
