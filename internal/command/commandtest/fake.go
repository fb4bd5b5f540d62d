// Package commandtest provides a fake command.Runner for tests.
package commandtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nao1215/wifikey/internal/command"
)

// Response is the canned outcome of one command line.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is returned from Run in place of a result, e.g. command.ErrTimeout.
	Err error
}

// Runner is a fake command.Runner that answers from canned responses
// keyed by the full command line ("name arg1 arg2").
// Command lines without a response fail with command.ErrUnavailable.
type Runner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []string
}

// NewRunner creates an empty fake runner.
func NewRunner() *Runner {
	return &Runner{responses: make(map[string]Response)}
}

// On registers the response for a command line.
func (r *Runner) On(response Response, name string, args ...string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[Key(name, args...)] = response
	return r
}

// Run implements command.Runner.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*command.Result, error) {
	key := Key(name, args...)

	r.mu.Lock()
	r.calls = append(r.calls, key)
	resp, ok := r.responses[key]
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return &command.Result{ExitCode: -1}, err
	}
	if !ok {
		return &command.Result{ExitCode: -1}, fmt.Errorf("%s: %w", name, command.ErrUnavailable)
	}
	if resp.Err != nil {
		return &command.Result{ExitCode: -1}, resp.Err
	}
	return &command.Result{
		Stdout:   resp.Stdout,
		Stderr:   resp.Stderr,
		ExitCode: resp.ExitCode,
	}, nil
}

// Calls returns the command lines run so far, in order.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount returns how often the given command line was run.
func (r *Runner) CallCount(name string, args ...string) int {
	key := Key(name, args...)
	n := 0
	for _, c := range r.Calls() {
		if c == key {
			n++
		}
	}
	return n
}

// Key renders a command line the way the fake indexes it.
func Key(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
