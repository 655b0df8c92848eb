package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors for every failure kind the API reports. Handlers map these
// to HTTP status codes with StatusCode; services return them via errors.Is-
// compatible wrapping or directly.
var (
	// Conflict (registration)
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// Authentication
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrTokenMissing       = errors.New("authorization header required")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrAccountInactive    = errors.New("account is inactive")

	// Authorization
	ErrForbidden = errors.New("not enough permissions")

	// Not found
	ErrUserNotFound    = errors.New("user not found")
	ErrContactNotFound = errors.New("contact not found")
)

// StatusCode maps an error to the HTTP status it should be reported with.
// Unknown errors map to 500; callers that treat unknown service errors as
// validation failures pass their own fallback instead.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrUsernameAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenMissing),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrAccountInactive):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrContactNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
