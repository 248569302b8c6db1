package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "reportchain"

	// DefaultConcurrency is the number of chains rendered at once by
	// generate --all.
	DefaultConcurrency = 4

	// DefaultHistoryLimit is the number of entries shown by history.
	DefaultHistoryLimit = 20
)

// Config holds all options for a generate run.
// It is populated from CLI flags and passed down explicitly.
type Config struct {
	// Report is the base report kind given with --report.
	Report string

	// Decorators are the decorator kinds given with --decorate, innermost first.
	Decorators []string

	// Preset is the preset name given with --preset.
	Preset string

	// AllPresets renders every preset in the config file.
	AllPresets bool

	// ConfigFilePath is the path to the preset file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// Presets holds the loaded preset file. A nil File has no presets.
	Presets *File

	// Verbose enables debug logging.
	Verbose bool

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes output to this path instead of stdout.
	ReportFile string

	// SaveToDB records each result in the history database.
	SaveToDB bool

	// DBDir is the directory holding the history database.
	// Defaults to the XDG data directory.
	DBDir string

	// Concurrency bounds how many chains generate --all renders at once.
	Concurrency int
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Presets:     &File{Presets: make(map[string]Preset)},
		DBDir:       XDGDataDir(),
		Concurrency: DefaultConcurrency,
	}
}

// XDGDataDir returns the XDG data directory for reportchain.
// On Linux: ~/.local/share/reportchain
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for reportchain.
// On Linux: ~/.config/reportchain
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Format returns the selected output format name: "json", "markdown" or "plain".
func (c *Config) Format() string {
	switch {
	case c.JSONReport:
		return "json"
	case c.MarkdownReport:
		return "markdown"
	default:
		return "plain"
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	sources := 0
	if c.Report != "" {
		sources++
	}
	if c.Preset != "" {
		sources++
	}
	if c.AllPresets {
		sources++
	}
	if sources > 1 {
		return ErrConflictingChainSources
	}

	if len(c.Decorators) > 0 && c.Report == "" {
		return ErrDecoratorsWithoutReport
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.SaveToDB && c.DBDir == "" {
		return ErrNoDBDir
	}

	return nil
}
