package domain

import "errors"

// Common domain errors.
var (
	// ErrNotFound indicates a requested section or note does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity with the same ID already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLastSection indicates an attempt to delete the only remaining section.
	// A board must contain at least one section at all times.
	ErrLastSection = errors.New("cannot delete the last section")

	// ErrMalformedImport indicates an import payload that is not a section
	// array after unwrapping. The in-memory board is left untouched.
	ErrMalformedImport = errors.New("malformed import payload")

	// ErrInvalidColour indicates a colour value that is not a valid hex code.
	ErrInvalidColour = errors.New("invalid hex colour")
)
