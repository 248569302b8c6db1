package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nao1215/reportchain/internal/model"
)

// GenerateStep builds the job's chain and records its output.
type GenerateStep struct {
	now func() time.Time
}

// GenerateStepOption configures a GenerateStep.
type GenerateStepOption func(*GenerateStep)

// WithClock sets the time source used for GeneratedAt.
func WithClock(now func() time.Time) GenerateStepOption {
	return func(s *GenerateStep) {
		if now != nil {
			s.now = now
		}
	}
}

// NewGenerateStep creates a GenerateStep.
func NewGenerateStep(opts ...GenerateStepOption) *GenerateStep {
	s := &GenerateStep{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns "generate".
func (s *GenerateStep) Name() string {
	return "generate"
}

// Do builds the chain and sets run.Result.
func (s *GenerateStep) Do(_ context.Context, run *Run) error {
	result, err := Generate(run.Job, s.now())
	if err != nil {
		return err
	}
	run.Result = result
	return nil
}

// Generate builds job's chain and returns its result stamped with now.
func Generate(job Job, now time.Time) (*model.GenerationResult, error) {
	built, err := job.Chain.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build chain %q: %w", job.Chain.String(), err)
	}
	return model.NewGenerationResult(job.Name, job.Chain, built, now), nil
}

// Saver stores generation results. *history.Store implements it.
type Saver interface {
	Save(ctx context.Context, result *model.GenerationResult) (int64, error)
}

// SaveStep stores the run's result.
type SaveStep struct {
	store Saver
}

// NewSaveStep creates a SaveStep writing to store.
func NewSaveStep(store Saver) *SaveStep {
	return &SaveStep{store: store}
}

// Name returns "save".
func (s *SaveStep) Name() string {
	return "save"
}

// Do saves run.Result and records the history ID.
func (s *SaveStep) Do(ctx context.Context, run *Run) error {
	if run.Result == nil {
		return ErrNoResult
	}
	id, err := s.store.Save(ctx, run.Result)
	if err != nil {
		return err
	}
	run.HistoryID = id
	return nil
}
