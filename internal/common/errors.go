// Package common defines shared constants and sentinel errors used across
// client and server layers of AuthKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors raised before any credential work happens.
	ErrorMissingFields   = errors.New("username and password are required")
	ErrorMissingPassword = errors.New("password is required")
	ErrorUnknownUser     = errors.New("unknown user")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
