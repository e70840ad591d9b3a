// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrorStorage wraps repository failures so callers can tell a broken
	// database apart from a bad request.
	ErrorStorage = errors.New("storage error")

	// ErrInvalidToken marks an invalid, expired or malformed bearer token.
	ErrInvalidToken = errors.New("invalid token")
)
