package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusBadRequest}
}

func Auth(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusUnauthorized}
}

func Forbidden(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusForbidden}
}

func NotFound(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusNotFound}
}

// Conflict reports a uniqueness violation. It answers 400 rather than 409 to
// keep the original wire contract for duplicate registrations.
func Conflict(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusBadRequest}
}

// Internal wraps an unexpected failure behind an opaque client message. The
// wrapped error is for server-side logs only.
func Internal(err error) *Error {
	return &Error{Message: "Internal server error", StatusCode: http.StatusInternalServerError, Err: err}
}

// From returns err as an *Error, wrapping unknown errors as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
