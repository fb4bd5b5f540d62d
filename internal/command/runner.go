package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/nao1215/wifikey/internal/parser"
)

// DefaultTimeout bounds each command invocation. An OS prompt that is
// never answered (keychain unlock, UAC) must not hang the whole run.
const DefaultTimeout = 20 * time.Second

// waitDelay is how long Wait keeps draining output after the process was
// killed, in case it left children holding the pipes open. On Unix the
// whole process group is killed, so this only applies elsewhere.
const waitDelay = 2 * time.Second

// Result holds the outcome of executing an external command.
type Result struct {
	// Stdout contains the decoded standard output.
	Stdout string
	// Stderr contains the decoded standard error.
	Stderr string
	// ExitCode is the exit status of the command. It is -1 when the
	// command did not run to completion.
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Runner runs external commands.
type Runner interface {
	// Run executes name with args and waits for it to finish.
	// A non-zero exit status is reported through Result.ExitCode with a
	// nil error.
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithTimeout sets the per-command time budget.
// Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(r *ExecRunner) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithLogger sets the logger used to trace command execution.
func WithLogger(logger *slog.Logger) Option {
	return func(r *ExecRunner) {
		r.logger = logger
	}
}

// NewRunner creates an ExecRunner with the given options.
func NewRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run executes the command with the configured timeout.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, name, args...)
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	r.logger.Debug("running command",
		"command", name,
		"args", strings.Join(args, " "),
	)

	start := time.Now()
	err := cmd.Run()

	result := &Result{
		Stdout:   parser.Decode(stdoutBuf.Bytes()),
		Stderr:   parser.Decode(stderrBuf.Bytes()),
		ExitCode: -1,
	}

	if err == nil {
		result.ExitCode = 0
		r.logger.Debug("command finished",
			"command", name,
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
		return result, nil
	}

	// The operator interrupted the run; this is not a per-command failure.
	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		r.logger.Warn("command timed out",
			"command", name,
			"timeout", r.timeout,
		)
		return result, fmt.Errorf("%s: %w after %s", name, ErrTimeout, r.timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		r.logger.Debug("command exited with non-zero status",
			"command", name,
			"exitCode", result.ExitCode,
		)
		return result, nil
	}

	return result, fmt.Errorf("%s: %w: %w", name, ErrUnavailable, err)
}
