package app

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNotStarted means a computation was requested before Start
	// validated the ephemeris data.
	ErrNotStarted = errors.New("service not started")

	// ErrInvalidInput means a required numeric field is missing or not a
	// finite number. Caller-correctable, never retried internally.
	ErrInvalidInput = errors.New("invalid input")

	// ErrComputation wraps unexpected numeric failures. A request either
	// fully succeeds or fails with this; partial results are never returned.
	ErrComputation = errors.New("computation failed")
)
