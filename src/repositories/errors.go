package repositories

import "errors"

// Sentinel errors for explicit error handling. Callers distinguish failure
// modes with errors.Is() instead of matching on message text.

var (
	// ErrNotFound indicates the row does not exist. Update and delete on a
	// missing id report it uniformly, for every entity.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyUpdate indicates an update request carried no allow-listed
	// fields. A no-op update is rejected rather than silently succeeding.
	ErrEmptyUpdate = errors.New("no fields to update provided")

	// ErrUsernameTaken indicates a unique-constraint violation on username.
	ErrUsernameTaken = errors.New("username already taken")
)
