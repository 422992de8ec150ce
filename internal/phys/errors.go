package phys

import "errors"

// Domain errors for body creation and stepping.
var (
	// ErrNonPositiveMass indicates a body with mass <= 0; the core divides by
	// mass every tick.
	ErrNonPositiveMass = errors.New("phys: body mass must be positive")

	// ErrNonPositiveSize indicates a body with size <= 0.
	ErrNonPositiveSize = errors.New("phys: body size must be positive")

	// ErrNegativeDt indicates a tick delta below zero.
	ErrNegativeDt = errors.New("phys: dt must be non-negative")
)
