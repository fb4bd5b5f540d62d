package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidTimeout is returned when the command timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptyConnectionsDir is returned when the keyfile directory is empty.
	ErrEmptyConnectionsDir = errors.New("invalid connections directory: must not be empty")

	// ErrEmptyLabel is returned when a netsh label is configured as empty.
	ErrEmptyLabel = errors.New("invalid windows label: must not be empty")
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")
