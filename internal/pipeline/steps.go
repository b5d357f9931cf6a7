package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/confreport/internal/model"
	"github.com/nao1215/confreport/internal/snapshot"
)

// Step names.
const (
	StepLoad    = "load"
	StepOptions = "options"
	StepBuild   = "build"
)

// stdinSource is the job source that reads standard input.
const stdinSource = "-"

// errNoSnapshot is returned by steps that run before a snapshot was loaded.
var errNoSnapshot = errors.New("no snapshot loaded")

// LoadStep reads the job's snapshot file.
type LoadStep struct {
	stdin  io.Reader
	logger *slog.Logger
}

// LoadStepOption configures a LoadStep.
type LoadStepOption func(*LoadStep)

// WithStdin sets the reader used for the "-" source. Defaults to os.Stdin.
func WithStdin(r io.Reader) LoadStepOption {
	return func(s *LoadStep) {
		s.stdin = r
	}
}

// WithLoadLogger sets a custom logger for the load step.
func WithLoadLogger(logger *slog.Logger) LoadStepOption {
	return func(s *LoadStep) {
		s.logger = logger
	}
}

// NewLoadStep creates a LoadStep.
func NewLoadStep(opts ...LoadStepOption) *LoadStep {
	s := &LoadStep{stdin: os.Stdin}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return StepLoad
}

// Do loads the snapshot into the job.
func (s *LoadStep) Do(_ context.Context, job *Job) error {
	var (
		snap *model.Snapshot
		err  error
	)
	if job.Source == stdinSource {
		snap, err = snapshot.Read(s.stdin)
	} else {
		snap, err = snapshot.Load(job.Source)
	}
	if err != nil {
		return err
	}

	s.logger.Debug("snapshot loaded",
		"source", job.Source,
		"project", snap.Project.Path,
		"configurations", len(snap.Configurations),
	)
	job.Snapshot = snap
	return nil
}

// OptionsResolver returns the report options for a project path.
type OptionsResolver func(projectPath string) model.Options

// OptionsStep resolves the report options for the loaded project.
type OptionsStep struct {
	resolve OptionsResolver
}

// NewOptionsStep creates an OptionsStep. A nil resolver yields zero options.
func NewOptionsStep(resolve OptionsResolver) *OptionsStep {
	if resolve == nil {
		resolve = func(string) model.Options { return model.Options{} }
	}
	return &OptionsStep{resolve: resolve}
}

// Name returns the step name.
func (s *OptionsStep) Name() string {
	return StepOptions
}

// Do sets the job's options.
func (s *OptionsStep) Do(_ context.Context, job *Job) error {
	if job.Snapshot == nil {
		return errNoSnapshot
	}
	job.Options = s.resolve(job.Snapshot.Project.Path)
	return nil
}

// BuildStep builds the configuration report.
type BuildStep struct{}

// NewBuildStep creates a BuildStep.
func NewBuildStep() *BuildStep {
	return &BuildStep{}
}

// Name returns the step name.
func (s *BuildStep) Name() string {
	return StepBuild
}

// Do builds the report from the job's snapshot and options.
func (s *BuildStep) Do(_ context.Context, job *Job) error {
	if job.Snapshot == nil {
		return errNoSnapshot
	}
	job.Report = model.NewConfigurationReport(job.Snapshot, job.Options)
	return nil
}

// DefaultPipeline creates the load, options and build pipeline.
func DefaultPipeline(logger *slog.Logger, resolve OptionsResolver, loadOpts ...LoadStepOption) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := New(WithLogger(logger))
	p.AddSteps(
		NewLoadStep(append([]LoadStepOption{WithLoadLogger(logger)}, loadOpts...)...),
		NewOptionsStep(resolve),
		NewBuildStep(),
	)
	return p
}
