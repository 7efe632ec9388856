package catalog

import "errors"

var (
	// ErrNotFound is returned when a lookup by identifier or unique key
	// matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned by the store when a write violates a
	// uniqueness constraint.
	ErrConflict = errors.New("conflict")
)
