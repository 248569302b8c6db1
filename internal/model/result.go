package model

import (
	"time"

	"github.com/nao1215/reportchain/internal/report"
)

// GenerationResult is the outcome of running one decorator chain.
// It carries the chain description alongside the generated output so that
// writers and the history store do not need to rebuild the chain.
type GenerationResult struct {
	// Preset is the name of the preset the chain came from.
	// Empty when the chain was given on the command line.
	Preset string `json:"preset,omitempty"`

	// Report is the base report kind, e.g. "sales".
	Report string `json:"report"`

	// Decorators lists decorator kinds in application order (innermost first).
	Decorators []string `json:"decorators"`

	// Layers lists layer type names from the base report outward.
	Layers []string `json:"layers"`

	// Output is the generated report string.
	Output string `json:"output"`

	// GeneratedAt is when the chain was run.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewGenerationResult runs built and records it together with its chain.
func NewGenerationResult(preset string, chain report.Chain, built report.Reportable, now time.Time) *GenerationResult {
	return &GenerationResult{
		Preset:      preset,
		Report:      string(chain.Report),
		Decorators:  chain.DecoratorNames(),
		Layers:      report.Layers(built),
		Output:      built.Generate(),
		GeneratedAt: now,
	}
}

// ChainString renders the chain as "sales -> date-filter -> pdf".
func (r *GenerationResult) ChainString() string {
	c := report.Chain{Report: report.ReportKind(r.Report)}
	for _, d := range r.Decorators {
		c.Decorators = append(c.Decorators, report.DecoratorKind(d))
	}
	return c.String()
}

// HasDecorators reports whether any decorator was applied.
func (r *GenerationResult) HasDecorators() bool {
	return len(r.Decorators) > 0
}
