package services

import "errors"

// Sentinel errors returned by services. Controllers map these onto HTTP
// statuses; anything else surfaces as a generic 500.
var (
	// ErrNotFound covers both truly absent records and records owned by a
	// different user, so ownership is never leaked through status codes.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized covers wrong credentials and unrecognized tokens.
	ErrUnauthorized = errors.New("unauthorized")
)
