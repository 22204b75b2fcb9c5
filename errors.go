package adminauth

import (
	"errors"
	"net/http"

	"github.com/maxwellflitton/adminauth/ratelimit"
	"github.com/maxwellflitton/adminauth/roles"
	"github.com/maxwellflitton/adminauth/token"
)

// Status classifies an auth failure for transport mapping.
type Status int

const (
	StatusUnknown Status = iota
	StatusUnauthorized
	StatusNotFound
	StatusBadRequest
)

// HTTPStatus maps the status onto an HTTP response code.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusUnauthorized:
		return http.StatusUnauthorized
	case StatusNotFound:
		return http.StatusNotFound
	case StatusBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is the engine's error type. Message is stable and safe to return
// to clients; Status drives the HTTP mapping.
type Error struct {
	Status  Status
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches two engine errors by status and message, so sentinel
// comparisons survive rewrapping.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == other.Status && e.Message == other.Message
}

// Unauthorized builds a 401-class engine error.
func Unauthorized(message string) *Error {
	return &Error{Status: StatusUnauthorized, Message: message}
}

// Unknown builds a 500-class engine error.
func Unknown(message string) *Error {
	return &Error{Status: StatusUnknown, Message: message}
}

// Sentinel errors returned by the engine flows.
var (
	ErrUserNotFound     = &Error{Status: StatusNotFound, Message: "User not found"}
	ErrUserBlocked      = Unauthorized("User is blocked")
	ErrUserNotConfirmed = Unauthorized("User is not confirmed")
	ErrInvalidPassword  = Unauthorized("Invalid password")
	ErrRoleNotAssigned  = Unauthorized("User does not have the required role")
	ErrSessionInactive  = Unauthorized("Auth session no longer active")
)

// StatusOf classifies any error the engine or its subpackages return.
// Validation sentinels from the token, role, and rate limit packages map to
// unauthorized; everything unrecognized is unknown.
func StatusOf(err error) Status {
	if err == nil {
		return StatusUnknown
	}

	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Status
	}

	switch {
	case errors.Is(err, token.ErrExpired),
		errors.Is(err, token.ErrDeviceMismatch),
		errors.Is(err, roles.ErrInsufficientRole),
		errors.Is(err, ratelimit.ErrRateLimited):
		return StatusUnauthorized
	}

	var parseErr *roles.ParseError
	if errors.As(err, &parseErr) {
		return StatusUnauthorized
	}

	return StatusUnknown
}
