package ephemeris

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrUnavailable means the backing dataset is absent or unusable. It is
	// returned from New and is intended to be fatal: the caller should
	// refuse to serve rather than compute from partial data.
	ErrUnavailable = errors.New("ephemeris dataset unavailable")

	// ErrOutOfRange means the requested instant falls outside the dataset's
	// declared validity span.
	ErrOutOfRange = errors.New("instant outside ephemeris range")

	// ErrUnknownBody means a position was requested for a body the provider
	// does not track.
	ErrUnknownBody = errors.New("unknown body")
)
