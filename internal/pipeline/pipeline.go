package pipeline

import (
	"context"
	"log/slog"
)

// Step is one stage of a run.
type Step interface {
	// Do executes the step against the session. A returned error ends
	// the run; recoverable problems are recorded in the report instead.
	Do(ctx context.Context, s *Session) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in order.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence and stops at the first error.
// Cancellation is checked before each step; steps check it themselves
// while they run.
func (p *Pipeline) Execute(ctx context.Context, s *Session) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Debug("pipeline cancelled", "step", step.Name(), "reason", err)
			return err
		}

		p.logger.Debug("executing step", "step", step.Name())
		if err := step.Do(ctx, s); err != nil {
			p.logger.Debug("step failed", "step", step.Name(), "error", err)
			return err
		}
		s.Steps = append(s.Steps, step.Name())
	}
	return nil
}
