package cubelets

import "errors"

// Sentinel errors for the cubelets package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubelets: invalid move notation")
	ErrInvalidEvent    = errors.New("cubelets: invalid event")
	ErrInvalidAxis     = errors.New("cubelets: invalid axis")
	ErrInvalidNormal   = errors.New("cubelets: invalid face normal")

	// Argument errors
	ErrInvalidDirection = errors.New("cubelets: direction must be +1 or -1")

	// Lookup errors
	ErrUnknownCubelet = errors.New("cubelets: unknown cubelet")
)
