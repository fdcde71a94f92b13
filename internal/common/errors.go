// Package common defines shared constants and sentinel errors used across
// layers of the service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors. Internal failures are not collapsed into a
	// sentinel; they propagate wrapped so handlers can log the cause.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors. A request carrying no bearer token at all is kept distinct
	// from one carrying a token that fails verification; both map to the same
	// unauthorized outcome at the HTTP boundary.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)
