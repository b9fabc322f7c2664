package astrotime

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidDate = errors.New("invalid calendar date")
)
