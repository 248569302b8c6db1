package report

import "fmt"

// Decorator wraps a Reportable and appends the suffix of its kind.
// The wrapped report is fixed at construction.
type Decorator struct {
	wrapped Reportable
	kind    DecoratorKind
	suffix  string
}

// Wrap returns a decorator of the given kind around r.
// It fails with ErrNilReport if r is nil and ErrUnknownDecoratorKind if the
// kind has no suffix.
func Wrap(r Reportable, kind DecoratorKind) (*Decorator, error) {
	if isNil(r) {
		return nil, ErrNilReport
	}
	suffix, ok := kind.Suffix()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDecoratorKind, string(kind))
	}
	return &Decorator{wrapped: r, kind: kind, suffix: suffix}, nil
}

// NewDateFilter wraps r with a date filter annotation.
func NewDateFilter(r Reportable) (*Decorator, error) {
	return Wrap(r, DecoratorDateFilter)
}

// NewSorting wraps r with a sorting annotation.
func NewSorting(r Reportable) (*Decorator, error) {
	return Wrap(r, DecoratorSorting)
}

// NewCSVExport wraps r with a CSV export annotation.
func NewCSVExport(r Reportable) (*Decorator, error) {
	return Wrap(r, DecoratorCSVExport)
}

// NewPDFExport wraps r with a PDF export annotation.
func NewPDFExport(r Reportable) (*Decorator, error) {
	return Wrap(r, DecoratorPDFExport)
}

// Generate returns the wrapped output followed by this decorator's suffix.
func (d *Decorator) Generate() string {
	return d.wrapped.Generate() + d.suffix
}

// Kind returns the decorator kind.
func (d *Decorator) Kind() DecoratorKind {
	return d.kind
}

// Unwrap returns the report this decorator wraps.
func (d *Decorator) Unwrap() Reportable {
	return d.wrapped
}

// isNil reports whether r is nil, including typed nil pointers to the
// decorator and base report types.
func isNil(r Reportable) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *Decorator:
		return v == nil
	case *SalesReport:
		return v == nil
	case *UserReport:
		return v == nil
	default:
		return false
	}
}

// Layers returns the layer names of r from the base report outward,
// e.g. ["SalesReport", "DateFilter", "Sorting"].
func Layers(r Reportable) []string {
	var layers []string
	for !isNil(r) {
		d, ok := r.(*Decorator)
		if !ok {
			layers = append(layers, baseName(r))
			break
		}
		layers = append(layers, d.kind.DisplayName())
		r = d.wrapped
	}
	for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
		layers[i], layers[j] = layers[j], layers[i]
	}
	return layers
}

// baseName names a non-decorator report.
func baseName(r Reportable) string {
	switch r.(type) {
	case SalesReport, *SalesReport:
		return ReportSales.DisplayName()
	case UserReport, *UserReport:
		return ReportUser.DisplayName()
	default:
		return fmt.Sprintf("%T", r)
	}
}
