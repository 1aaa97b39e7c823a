// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/store/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a missing or empty required input. Raised before any I/O.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorruptSettings indicates a stored settings/metadata blob could not be parsed.
	ErrCorruptSettings = errors.New("corrupt settings")

	// ErrDataIntegrity indicates a record references a registered client that cannot be resolved.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrConflict indicates a unique constraint violation on save (e.g., a token value already in use).
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation on a user-facing identity (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")
)
