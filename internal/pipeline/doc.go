// Package pipeline runs decorator chains through a sequence of steps.
//
// A Job names a report.Chain. A Pipeline executes its steps against a Run
// (the job plus its result): GenerateStep builds the chain and records the
// output, SaveStep stores the result in the history database.
//
// BatchProcessor runs many jobs concurrently with errgroup, bounded by a
// concurrency limit. Chains are immutable once built and each Run is owned
// by a single goroutine, so jobs share no mutable state.
package pipeline
