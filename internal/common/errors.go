// Package common defines shared sentinel errors used across the userhub
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Local storage errors.
	ErrNoStoredSession = errors.New("no stored session")

	// Service-level errors.
	ErrInternal = errors.New("internal error")
)
