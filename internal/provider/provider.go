package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/wifikey/internal/command"
	"github.com/nao1215/wifikey/internal/model"
	"github.com/nao1215/wifikey/internal/platform"
)

// Provider enumerates saved wireless profiles and retrieves their secrets
// on one platform.
type Provider interface {
	// Platform returns the platform this provider serves.
	Platform() model.Platform

	// Enumerate lists saved profiles in the order the OS returns them.
	// A non-nil error with an empty list is a diagnostic for the operator,
	// except when it reports cancellation of the run.
	Enumerate(ctx context.Context) ([]model.Profile, error)

	// Retrieve returns exactly one result for the profile. The error is
	// non-nil only when the run was cancelled.
	Retrieve(ctx context.Context, profile model.Profile) (model.Result, error)

	// SupportsManualEntry reports whether the operator may type a single
	// profile name when enumeration finds nothing.
	SupportsManualEntry() bool
}

// Default values for provider options.
const (
	// DefaultConnectionsDir is where NetworkManager stores system keyfiles.
	DefaultConnectionsDir = "/etc/NetworkManager/system-connections"

	// DefaultProfileLabel is the netsh label preceding each profile name.
	DefaultProfileLabel = "All User Profile"

	// DefaultKeyLabel is the netsh label preceding the clear-text key.
	DefaultKeyLabel = "Key Content"
)

// options holds configuration shared by all providers.
type options struct {
	runner         command.Runner
	logger         *slog.Logger
	connectionsDir string
	profileLabel   string
	keyLabel       string
}

// Option configures a Provider.
type Option func(*options)

// WithRunner sets the command runner. The default is command.NewRunner().
func WithRunner(runner command.Runner) Option {
	return func(o *options) {
		o.runner = runner
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConnectionsDir sets the NetworkManager keyfile directory used by the
// Linux fallback.
func WithConnectionsDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.connectionsDir = dir
		}
	}
}

// WithWindowsLabels overrides the netsh labels, for localized Windows
// installations. Empty values keep the defaults.
func WithWindowsLabels(profileLabel, keyLabel string) Option {
	return func(o *options) {
		if profileLabel != "" {
			o.profileLabel = profileLabel
		}
		if keyLabel != "" {
			o.keyLabel = keyLabel
		}
	}
}

// New returns the provider for the platform.
// It returns platform.ErrUnsupported for any other platform.
func New(p model.Platform, opts ...Option) (Provider, error) {
	o := &options{
		connectionsDir: DefaultConnectionsDir,
		profileLabel:   DefaultProfileLabel,
		keyLabel:       DefaultKeyLabel,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.runner == nil {
		o.runner = command.NewRunner(command.WithLogger(o.logger))
	}

	switch p {
	case model.PlatformWindows:
		return newWindows(o), nil
	case model.PlatformMacOS:
		return newMacOS(o), nil
	case model.PlatformLinux:
		return newLinux(o), nil
	default:
		return nil, fmt.Errorf("%w: %s", platform.ErrUnsupported, p)
	}
}

// isAbort reports whether err means the whole run was interrupted.
func isAbort(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// checkRun inspects a command outcome. When the command did not succeed,
// failed is true and result is the Denied result to report. abort is
// non-nil only when the run itself was interrupted.
func checkRun(res *command.Result, err error) (result model.Result, failed bool, abort error) {
	switch {
	case err == nil && res.Success():
		return model.Result{}, false, nil
	case isAbort(err):
		return model.Result{}, true, err
	case errors.Is(err, command.ErrTimeout):
		return model.Denied("command timed out"), true, nil
	case errors.Is(err, command.ErrUnavailable):
		return model.Denied("command unavailable"), true, nil
	case err != nil:
		return model.Denied(err.Error()), true, nil
	default:
		return model.Denied(fmt.Sprintf("exit status %d", res.ExitCode)), true, nil
	}
}
