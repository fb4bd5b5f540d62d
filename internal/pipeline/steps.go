package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/wifikey/internal/model"
	"github.com/nao1215/wifikey/internal/platform"
	"github.com/nao1215/wifikey/internal/provider"
)

// ProviderFactory builds the provider for a detected platform.
type ProviderFactory func(p model.Platform) (provider.Provider, error)

// PlatformDetector identifies the host.
type PlatformDetector interface {
	Detect(ctx context.Context) (platform.Info, error)
}

// DetectStep identifies the host and selects the provider for the run.
// An unsupported platform ends the run before any provider is invoked.
type DetectStep struct {
	detector PlatformDetector
	factory  ProviderFactory
	logger   *slog.Logger
}

// NewDetectStep creates the detect step.
func NewDetectStep(detector PlatformDetector, factory ProviderFactory, logger *slog.Logger) *DetectStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetectStep{detector: detector, factory: factory, logger: logger}
}

// Name returns the step name.
func (s *DetectStep) Name() string {
	return "detect"
}

// Do implements Step.
func (s *DetectStep) Do(ctx context.Context, sess *Session) error {
	info, err := s.detector.Detect(ctx)
	sess.Info = info
	sess.Report.Platform = info.Platform
	sess.Report.Host = info.Description
	if err != nil {
		return err
	}
	s.logger.Debug("platform detected", "platform", info.Platform, "os", info.OS, "host", info.Description)

	prov, err := s.factory(info.Platform)
	if err != nil {
		return err
	}
	sess.Provider = prov
	return nil
}

// EnumerateStep lists the saved profiles. Listing failures become report
// diagnostics and leave the profile list empty.
type EnumerateStep struct {
	logger *slog.Logger
}

// NewEnumerateStep creates the enumerate step.
func NewEnumerateStep(logger *slog.Logger) *EnumerateStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnumerateStep{logger: logger}
}

// Name returns the step name.
func (s *EnumerateStep) Name() string {
	return "enumerate"
}

// Do implements Step.
func (s *EnumerateStep) Do(ctx context.Context, sess *Session) error {
	if sess.Provider == nil {
		return errNoProvider
	}

	profiles, err := sess.Provider.Enumerate(ctx)
	if isAbort(ctx, err) {
		return err
	}
	if err != nil {
		s.logger.Debug("enumeration reported a problem", "error", err)
		sess.Report.AddDiagnostic(err.Error())
	}
	sess.Profiles = profiles
	s.logger.Debug("profiles enumerated", "count", len(profiles))
	return nil
}

// ManualEntryStep asks the operator for a single profile name when the
// provider supports it and enumeration found nothing. The prompt is shown
// at most once per run.
type ManualEntryStep struct {
	prompter Prompter
	logger   *slog.Logger
}

// NewManualEntryStep creates the manual entry step. A nil prompter means
// the session is not interactive and no prompt is shown.
func NewManualEntryStep(prompter Prompter, logger *slog.Logger) *ManualEntryStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ManualEntryStep{prompter: prompter, logger: logger}
}

// Name returns the step name.
func (s *ManualEntryStep) Name() string {
	return "manual_entry"
}

// Do implements Step.
func (s *ManualEntryStep) Do(ctx context.Context, sess *Session) error {
	if len(sess.Profiles) > 0 || sess.Provider == nil || !sess.Provider.SupportsManualEntry() {
		return nil
	}
	if s.prompter == nil {
		s.logger.Debug("not interactive, skipping manual entry")
		return nil
	}

	name, err := s.prompter.Prompt(ctx, ManualEntryPrompt)
	if err != nil {
		if isAbort(ctx, err) {
			return err
		}
		sess.Report.AddDiagnostic(err.Error())
		return nil
	}
	if name == "" {
		return nil
	}

	sess.Profiles = []model.Profile{model.NewProfile(name)}
	sess.Report.ManualEntry = true
	return nil
}

// RetrieveStep looks up the secret of every profile, one at a time.
type RetrieveStep struct {
	logger *slog.Logger
}

// NewRetrieveStep creates the retrieve step.
func NewRetrieveStep(logger *slog.Logger) *RetrieveStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetrieveStep{logger: logger}
}

// Name returns the step name.
func (s *RetrieveStep) Name() string {
	return "retrieve"
}

// Do implements Step. The loop stops before the next profile once the
// context is cancelled.
func (s *RetrieveStep) Do(ctx context.Context, sess *Session) error {
	if len(sess.Profiles) == 0 {
		return nil
	}
	if sess.Provider == nil {
		return errNoProvider
	}

	for _, profile := range sess.Profiles {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := s.retrieve(ctx, sess.Provider, profile)
		if err != nil {
			return err
		}
		s.logger.Debug("secret lookup finished",
			"ssid", profile.Name,
			"outcome", result.Outcome,
			"reason", result.Reason,
		)
		sess.Report.Add(profile, result)
	}
	return nil
}

// retrieve calls the provider and turns a panic into a Denied result so
// the profile still gets its entry.
func (s *RetrieveStep) retrieve(ctx context.Context, prov provider.Provider, profile model.Profile) (result model.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("secret lookup panicked", "ssid", profile.Name, "panic", r)
			result = model.Denied(fmt.Sprintf("internal error: %v", r))
			err = nil
		}
	}()

	result, err = prov.Retrieve(ctx, profile)
	if err != nil && !isAbort(ctx, err) {
		s.logger.Debug("secret lookup failed", "ssid", profile.Name, "error", err)
		return model.Denied(err.Error()), nil
	}
	return result, err
}

// HintStep adds advice to the report when some secrets could not be read
// because of missing privileges.
type HintStep struct{}

// NewHintStep creates the hint step.
func NewHintStep() *HintStep {
	return &HintStep{}
}

// Name returns the step name.
func (s *HintStep) Name() string {
	return "hint"
}

// Do implements Step.
func (s *HintStep) Do(_ context.Context, sess *Session) error {
	if sess.Report.Count(model.OutcomeDenied) == 0 {
		return nil
	}
	sess.Report.AddDiagnostic(privilegeHint(sess.Report.Platform))
	return nil
}

// privilegeHint returns the platform's advice for denied lookups.
func privilegeHint(p model.Platform) string {
	switch p {
	case model.PlatformWindows:
		return "some keys could not be read: run from an elevated (Administrator) prompt"
	case model.PlatformMacOS:
		return "some keys could not be read: unlock the login keychain and allow access when prompted"
	default:
		return "some keys could not be read: try running with sudo"
	}
}

// errNoProvider is returned when a step runs before the detect step.
var errNoProvider = errors.New("no provider selected")

// isAbort reports whether err means the run was interrupted.
func isAbort(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// DefaultPipeline returns the standard run: detect, enumerate, manual
// entry, retrieve and hint. A nil prompter disables manual entry.
func DefaultPipeline(detector PlatformDetector, factory ProviderFactory, prompter Prompter, logger *slog.Logger) *Pipeline {
	p := New(WithLogger(logger))
	p.AddSteps(
		NewDetectStep(detector, factory, logger),
		NewEnumerateStep(logger),
		NewManualEntryStep(prompter, logger),
		NewRetrieveStep(logger),
		NewHintStep(),
	)
	return p
}
