package pipeline

import "github.com/nao1215/confreport/internal/model"

// Job carries one snapshot through the pipeline.
// Each step fills in the fields the next step needs.
type Job struct {
	// Source is the snapshot path, or "-" for standard input.
	Source string

	// Snapshot is set by the load step.
	Snapshot *model.Snapshot

	// Options is set by the options step.
	Options model.Options

	// Report is set by the build step.
	Report *model.ConfigurationReport

	// Err is the first error a step returned, if any.
	Err error

	// PerformedSteps lists the steps that completed, in order.
	PerformedSteps []string
}

// NewJob creates a Job for the given snapshot source.
func NewJob(source string) *Job {
	return &Job{
		Source:         source,
		PerformedSteps: make([]string, 0),
	}
}
