package command

import "errors"

var (
	// ErrUnavailable is returned when the executable is missing or could
	// not be started.
	ErrUnavailable = errors.New("command unavailable")

	// ErrTimeout is returned when a command exceeded its time budget and
	// was killed.
	ErrTimeout = errors.New("command timed out")
)
