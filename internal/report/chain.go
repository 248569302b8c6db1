package report

import (
	"errors"
	"strings"
)

// Chain is a declarative decorator chain: a base report plus the decorators
// applied to it, innermost first.
type Chain struct {
	Report     ReportKind
	Decorators []DecoratorKind
}

// DefaultChain returns SalesReport -> DateFilter -> Sorting -> PdfExport.
func DefaultChain() Chain {
	return Chain{
		Report: ReportSales,
		Decorators: []DecoratorKind{
			DecoratorDateFilter,
			DecoratorSorting,
			DecoratorPDFExport,
		},
	}
}

// ParseChain builds a Chain from user-supplied names. Decorator order is kept.
// All unknown names are reported together.
func ParseChain(reportName string, decoratorNames []string) (Chain, error) {
	var errs []error

	kind, err := ParseReportKind(reportName)
	if err != nil {
		errs = append(errs, err)
	}

	decorators := make([]DecoratorKind, 0, len(decoratorNames))
	for _, name := range decoratorNames {
		dk, err := ParseDecoratorKind(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decorators = append(decorators, dk)
	}

	if len(errs) > 0 {
		return Chain{}, errors.Join(errs...)
	}
	return Chain{Report: kind, Decorators: decorators}, nil
}

// Build assembles the chain into a Reportable.
func (c Chain) Build() (Reportable, error) {
	r, err := c.Report.New()
	if err != nil {
		return nil, err
	}
	for _, kind := range c.Decorators {
		d, err := Wrap(r, kind)
		if err != nil {
			return nil, err
		}
		r = d
	}
	return r, nil
}

// String renders the chain as "sales -> date-filter -> pdf".
func (c Chain) String() string {
	parts := make([]string, 0, len(c.Decorators)+1)
	parts = append(parts, string(c.Report))
	for _, d := range c.Decorators {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, " -> ")
}

// DecoratorNames returns the decorator kinds as strings.
func (c Chain) DecoratorNames() []string {
	names := make([]string, len(c.Decorators))
	for i, d := range c.Decorators {
		names[i] = string(d)
	}
	return names
}
