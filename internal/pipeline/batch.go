package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when WithConcurrency is not given.
const DefaultConcurrency = 4

// BatchProcessor runs multiple jobs concurrently.
// It uses errgroup to manage goroutines and respect the concurrency limit.
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each job.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent jobs.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent jobs.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
// pipelineFactory is called once per job so runs never share a pipeline.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch runs every job and returns the runs in input order.
// The first failing job cancels the rest and its error is returned;
// runs that did not complete are left with a nil Result.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, jobs []Job) ([]*Run, error) {
	bp.logger.Info("starting batch processing",
		"total_jobs", len(jobs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Each goroutine writes only its own index.
	runs := make([]*Run, len(jobs))
	for i, job := range jobs {
		runs[i] = NewRun(job)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Debug("running job",
				"job", jobs[i].Name,
				"index", i+1,
				"total", len(jobs),
			)

			return bp.pipelineFactory().Execute(ctx, runs[i])
		})
	}

	err := g.Wait()

	bp.logger.Info("batch processing complete",
		"total_jobs", len(jobs),
		"elapsed", time.Since(startTime),
	)

	return runs, err
}

// ProcessBatchWithCallback runs every job and calls callback for each
// completed run with its index in jobs. Callbacks run on worker goroutines,
// so callback must be safe for concurrent use.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	jobs []Job,
	callback func(run *Run, index int),
) error {
	bp.logger.Info("starting batch processing with callback",
		"total_jobs", len(jobs),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			run := NewRun(job)
			if err := bp.pipelineFactory().Execute(ctx, run); err != nil {
				return err
			}

			callback(run, i)
			return nil
		})
	}

	return g.Wait()
}
