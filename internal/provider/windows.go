package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/wifikey/internal/command"
	"github.com/nao1215/wifikey/internal/model"
	"github.com/nao1215/wifikey/internal/parser"
)

// netsh is resolved through PATH; it lives in System32 on every Windows.
const netsh = "netsh"

// Windows reads profiles and keys through netsh.
type Windows struct {
	runner       command.Runner
	logger       *slog.Logger
	profileLabel string
	keyLabel     string
}

func newWindows(o *options) *Windows {
	return &Windows{
		runner:       o.runner,
		logger:       o.logger,
		profileLabel: o.profileLabel,
		keyLabel:     o.keyLabel,
	}
}

// Platform implements Provider.
func (w *Windows) Platform() model.Platform {
	return model.PlatformWindows
}

// SupportsManualEntry implements Provider.
func (w *Windows) SupportsManualEntry() bool {
	return false
}

// Enumerate runs `netsh wlan show profiles` and returns every
// "All User Profile : <name>" value.
func (w *Windows) Enumerate(ctx context.Context) ([]model.Profile, error) {
	res, err := w.runner.Run(ctx, netsh, "wlan", "show", "profiles")
	if isAbort(err) {
		return nil, err
	}
	if err != nil || !res.Success() {
		w.logger.Debug("netsh profile listing failed", "error", err)
		return nil, fmt.Errorf("%w: failed to run netsh (are you on Windows, with sufficient privilege?)", ErrListingFailed)
	}

	names := parser.LabelValues(res.Stdout, w.profileLabel)
	profiles := make([]model.Profile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, model.NewProfile(name))
	}
	return profiles, nil
}

// Retrieve runs `netsh wlan show profile name=<name> key=clear` and reads
// the "Key Content" field. An absent field means the profile stores no key.
func (w *Windows) Retrieve(ctx context.Context, profile model.Profile) (model.Result, error) {
	res, err := w.runner.Run(ctx, netsh, "wlan", "show", "profile", "name="+profile.Name, "key=clear")
	if result, failed, abort := checkRun(res, err); failed {
		return result, abort
	}

	if key, ok := parser.LabelValue(res.Stdout, w.keyLabel); ok {
		return model.Found(key), nil
	}
	return model.NotFound("no key content in profile (open network?)"), nil
}
