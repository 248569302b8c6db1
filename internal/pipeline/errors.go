package pipeline

import "errors"

var (
	// ErrNilRun is returned when a pipeline is executed without a run.
	ErrNilRun = errors.New("pipeline run is nil")

	// ErrNoResult is returned when a step needs a result that no earlier
	// step produced.
	ErrNoResult = errors.New("run has no result: add a GenerateStep first")
)
