package platform

import "errors"

// ErrUnsupported is returned when no provider exists for the host OS.
// It is fatal: the run ends before any provider is invoked.
var ErrUnsupported = errors.New("unsupported platform: only Windows, macOS and Linux are supported")
