package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nao1215/wifikey/internal/command"
	"github.com/nao1215/wifikey/internal/config"
	"github.com/nao1215/wifikey/internal/log"
	"github.com/nao1215/wifikey/internal/model"
	"github.com/nao1215/wifikey/internal/pipeline"
	"github.com/nao1215/wifikey/internal/platform"
	"github.com/nao1215/wifikey/internal/provider"
	"github.com/nao1215/wifikey/internal/report"
)

// runRootCmd executes a retrieval run.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		cfg:         cfg,
		logger:      logger,
		detector:    platform.NewDetector(),
		stdin:       cmd.InOrStdin(),
		stdout:      cmd.OutOrStdout(),
		interactive: cfg.Interactive && isTerminal(os.Stdin),
	}
	return a.run(ctx)
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file and flags.
// Flags given on the command line take precedence over the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.Verbose = getVerboseFlag(cmd)

	if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.ConnectionsDir, err = flags.GetString("connections-dir"); err != nil {
		return nil, err
	}
	noPrompt, err := flags.GetBool("no-prompt")
	if err != nil {
		return nil, err
	}
	cfg.Interactive = !noPrompt
	if cfg.Color, err = flags.GetBool("color"); err != nil {
		return nil, err
	}

	// An explicitly given config file must exist; a searched one may not.
	path := config.FindConfigFile(cfg.ConfigFilePath)
	if path == "" {
		if cfg.ConfigFilePath != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
		}
		return cfg, nil
	}

	file, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	file.Apply(cfg, func(field string) bool { return flags.Changed(field) })
	return cfg, nil
}

// app holds the collaborators of one run so tests can replace them.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	detector pipeline.PlatformDetector

	// runner overrides the command runner built from cfg.
	runner command.Runner

	stdin       io.Reader
	stdout      io.Writer
	interactive bool
}

// run executes the pipeline and writes the report.
func (a *app) run(ctx context.Context) error {
	var prompter pipeline.Prompter
	if a.interactive {
		prompter = pipeline.NewLinePrompter(a.stdin, a.stdout)
	}

	sess := pipeline.NewSession()
	p := pipeline.DefaultPipeline(a.detector, a.newProvider, prompter, a.logger)
	if err := p.Execute(ctx, sess); err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return errAborted
		}
		return err
	}

	return a.writeReport(sess.Report)
}

// newProvider builds the provider for the detected platform.
func (a *app) newProvider(p model.Platform) (provider.Provider, error) {
	runner := a.runner
	if runner == nil {
		runner = command.NewRunner(
			command.WithTimeout(a.cfg.Timeout),
			command.WithLogger(a.logger),
		)
	}
	return provider.New(p,
		provider.WithRunner(runner),
		provider.WithLogger(a.logger),
		provider.WithConnectionsDir(a.cfg.ConnectionsDir),
		provider.WithWindowsLabels(a.cfg.ProfileLabel, a.cfg.KeyLabel),
	)
}

// writeReport renders the report in the configured format. Without a
// report file it goes to stdout. With one, the file gets the full report
// and stdout only gets a summary without secrets.
func (a *app) writeReport(r *model.Report) (err error) {
	if a.cfg.ReportFile == "" {
		if _, err := a.formatWriter(a.stdout, a.cfg.Color).Write(r); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(a.cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// The report holds clear-text keys: owner-only permissions.
	f, err := os.OpenFile(a.cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	w := report.NewMultiWriter(
		a.formatWriter(f, false),
		report.NewSummaryWriter(a.stdout),
	)
	if _, err := w.Write(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(a.stdout, "Report written to %s\n", a.cfg.ReportFile)
	return nil
}

// formatWriter returns the writer for the configured report format.
func (a *app) formatWriter(out io.Writer, colored bool) report.Writer {
	switch {
	case a.cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case a.cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out,
			report.WithVerbose(a.cfg.Verbose),
			report.WithColor(colored),
		)
	}
}
