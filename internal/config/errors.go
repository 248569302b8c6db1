package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and File.Validate() and
// let callers use errors.Is() while still providing human-readable messages.
var (
	// ErrConflictingChainSources is returned when more than one of --report,
	// --preset and --all is given.
	ErrConflictingChainSources = errors.New("conflicting chain sources: use only one of --report, --preset or --all")

	// ErrDecoratorsWithoutReport is returned when decorators are given
	// without a base report to apply them to.
	ErrDecoratorsWithoutReport = errors.New("decorators require a base report: add --report")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoDBDir is returned when saving to history is requested without a
	// database directory.
	ErrNoDBDir = errors.New("history database directory is not set")

	// ErrPresetNotFound is returned when a named preset does not exist.
	ErrPresetNotFound = errors.New("preset not found")

	// ErrPresetMissingReport is returned when a preset has no base report.
	ErrPresetMissingReport = errors.New("preset has no report")

	// ErrUnknownDefaultPreset is returned when the file's default preset
	// is not defined in presets.
	ErrUnknownDefaultPreset = errors.New("default preset is not defined")

	// ErrNoPresets is returned when --all is given but the config file
	// defines no presets.
	ErrNoPresets = errors.New("no presets defined in configuration file")
)
