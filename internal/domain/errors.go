package domain

import "errors"

// Sentinel errors shared across services. Repositories translate storage
// failures (sql.ErrNoRows, unique violations) into these; controllers map
// them to HTTP status codes.
var (
	// ErrNotFound is returned when a referenced event, role, invitation,
	// registration, or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the actor does not own the targeted record.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned for unrecognized action or status tokens and
	// malformed identifiers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when an operation would violate the
	// at-most-one-selected-manager-per-event invariant.
	ErrConflict = errors.New("conflict")
)
