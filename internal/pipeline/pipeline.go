package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/reportchain/internal/model"
	"github.com/nao1215/reportchain/internal/report"
)

// Job is a named chain to generate.
type Job struct {
	// Name is the preset name, or empty for an ad-hoc chain.
	Name string

	// Chain is the decorator chain to build.
	Chain report.Chain
}

// Run carries a job through the pipeline.
type Run struct {
	// Job is the job being processed.
	Job Job

	// Result is set by GenerateStep.
	Result *model.GenerationResult

	// HistoryID is set by SaveStep. Zero when the result was not saved.
	HistoryID int64

	// Steps lists the steps that completed, in order.
	Steps []string
}

// NewRun creates a Run for the job.
func NewRun(job Job) *Run {
	return &Run{Job: job}
}

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Do executes the step against the run.
	Do(ctx context.Context, run *Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence and stops at the first error.
// Cancellation is checked before each step.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	if run == nil {
		return ErrNilRun
	}

	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"chain", run.Job.Chain.String(),
		)

		if err := step.Do(ctx, run); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"chain", run.Job.Chain.String(),
				"error", err,
			)
			return err
		}

		run.Steps = append(run.Steps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// DefaultPipeline returns a pipeline that generates the chain and, when
// store is non-nil, saves the result.
func DefaultPipeline(store Saver, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddStep(NewGenerateStep())
	if store != nil {
		p.AddStep(NewSaveStep(store))
	}
	return p
}
