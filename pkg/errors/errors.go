package errors

import (
	"errors"
	"fmt"
)

var (
	// tokens
	ErrInvalidSigningMethod = errors.New("invalid token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenIsNotAccess     = errors.New("refresh token cannot be used for access")

	// authorization
	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("malformed authorization header")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("admin access required")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	// context
	ErrUserIDNotFoundInContext = errors.New("user id not found in request context")

	// common
	ErrNotFound          = errors.New("record not found")
	ErrBadRequest        = errors.New("bad request")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// HttpError carries an HTTP status code alongside a user-facing message.
// The wrapped Err is for logs only and is never serialized.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}
