package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultConcurrency is used when WithConcurrency is not given.
const defaultConcurrency = 4

// BatchProcessor builds the reports of several snapshot sources concurrently.
type BatchProcessor struct {
	// newPipeline is called once per job so no step state is shared.
	newPipeline func() *Pipeline

	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets the logger for batch-level records.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency limits how many jobs run at once. Values below one are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor that runs a fresh pipeline from
// newPipeline for every source.
func NewBatchProcessor(newPipeline func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		newPipeline: newPipeline,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.logger == nil {
		bp.logger = slog.Default()
	}
	return bp
}

// ProcessBatch runs one pipeline per source and returns the jobs in the
// order of sources, whatever order they finished in.
//
// A failing job does not stop the others; its error stays in Job.Err. The
// returned error is only set when ctx was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, sources []string) ([]*Job, error) {
	start := time.Now()

	jobs := make([]*Job, len(sources))
	for i, source := range sources {
		jobs[i] = NewJob(source)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for _, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				job.Err = err
				return err
			}
			// The error is kept on the job.
			_ = bp.newPipeline().Execute(gctx, job) //nolint:errcheck // Error is stored in job
			return nil
		})
	}

	err := g.Wait()

	failed := 0
	for _, job := range jobs {
		if job.Err != nil {
			failed++
		}
	}
	bp.logger.Debug("batch complete",
		"total", len(jobs),
		"failed", failed,
		"concurrency", bp.concurrency,
		"elapsed", time.Since(start),
	)

	return jobs, err
}
