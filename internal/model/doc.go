// Package model defines the data structures shared by the writers, the batch
// pipeline and the history store.
//
// GenerationResult is the only record type: it describes a decorator chain
// and the string it produced. It is serializable to JSON for report output
// and database storage.
package model
