package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// Step is one stage of turning a snapshot source into a report.
type Step interface {
	// Do advances the job. A returned error ends the job.
	Do(ctx context.Context, job *Job) error

	// Name identifies the step in logs and in Job.PerformedSteps.
	Name() string
}

// Pipeline runs its steps in order against one Job at a time.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for step tracing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends steps in the given order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs the steps against job.
//
// Every step needs the output of the one before it, so the first failure
// ends the run. The error is returned and also kept in job.Err. The context
// is checked before each step; a step that has started always finishes.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	logger := p.logger.With("source", job.Source)

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			logger.Warn("report cancelled", "step", step.Name(), "reason", err)
			job.Err = err
			return err
		}

		start := time.Now()
		if err := step.Do(ctx, job); err != nil {
			logger.Error("step failed", "step", step.Name(), "error", err)
			job.Err = err
			return err
		}
		logger.Debug("step done", "step", step.Name(), "elapsed", time.Since(start))

		job.PerformedSteps = append(job.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		names = append(names, step.Name())
	}
	return names
}
