package report

import (
	"fmt"
	"strings"
)

// ReportKind identifies a base report.
type ReportKind string

const (
	// ReportSales selects SalesReport.
	ReportSales ReportKind = "sales"
	// ReportUser selects UserReport.
	ReportUser ReportKind = "user"
)

// ReportKinds returns every supported report kind.
func ReportKinds() []ReportKind {
	return []ReportKind{ReportSales, ReportUser}
}

// New returns the base report for the kind.
func (k ReportKind) New() (Reportable, error) {
	switch k {
	case ReportSales:
		return SalesReport{}, nil
	case ReportUser:
		return UserReport{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportKind, string(k))
	}
}

// DisplayName returns the type-style name of the report, e.g. "SalesReport".
func (k ReportKind) DisplayName() string {
	switch k {
	case ReportSales:
		return "SalesReport"
	case ReportUser:
		return "UserReport"
	default:
		return string(k)
	}
}

// DecoratorKind identifies the annotation a Decorator appends.
type DecoratorKind string

const (
	// DecoratorDateFilter appends a date filter annotation.
	DecoratorDateFilter DecoratorKind = "date-filter"
	// DecoratorSorting appends a sorting annotation.
	DecoratorSorting DecoratorKind = "sorting"
	// DecoratorCSVExport appends a CSV export annotation.
	DecoratorCSVExport DecoratorKind = "csv"
	// DecoratorPDFExport appends a PDF export annotation.
	DecoratorPDFExport DecoratorKind = "pdf"
)

// decoratorSuffixes maps each decorator kind to the literal it appends.
var decoratorSuffixes = map[DecoratorKind]string{
	DecoratorDateFilter: " with Date Filter",
	DecoratorSorting:    " with Sorting",
	DecoratorCSVExport:  " Exported as CSV",
	DecoratorPDFExport:  " Exported as PDF",
}

// DecoratorKinds returns every supported decorator kind.
func DecoratorKinds() []DecoratorKind {
	return []DecoratorKind{
		DecoratorDateFilter,
		DecoratorSorting,
		DecoratorCSVExport,
		DecoratorPDFExport,
	}
}

// Suffix returns the literal appended by decorators of this kind.
// The second return value is false for unknown kinds.
func (k DecoratorKind) Suffix() (string, bool) {
	s, ok := decoratorSuffixes[k]
	return s, ok
}

// DisplayName returns the type-style name of the decorator, e.g. "DateFilter".
func (k DecoratorKind) DisplayName() string {
	switch k {
	case DecoratorDateFilter:
		return "DateFilter"
	case DecoratorSorting:
		return "Sorting"
	case DecoratorCSVExport:
		return "CsvExport"
	case DecoratorPDFExport:
		return "PdfExport"
	default:
		return string(k)
	}
}

// reportAliases and decoratorAliases are keyed by normalizeName output.
var reportAliases = map[string]ReportKind{
	"sales":       ReportSales,
	"salesreport": ReportSales,
	"user":        ReportUser,
	"userreport":  ReportUser,
}

var decoratorAliases = map[string]DecoratorKind{
	"datefilter": DecoratorDateFilter,
	"date":       DecoratorDateFilter,
	"sorting":    DecoratorSorting,
	"sort":       DecoratorSorting,
	"csv":        DecoratorCSVExport,
	"csvexport":  DecoratorCSVExport,
	"pdf":        DecoratorPDFExport,
	"pdfexport":  DecoratorPDFExport,
}

// ParseReportKind resolves a user-supplied report name.
// Matching ignores case, spaces, hyphens and underscores.
func ParseReportKind(name string) (ReportKind, error) {
	if k, ok := reportAliases[normalizeName(name)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportKind, name)
}

// ParseDecoratorKind resolves a user-supplied decorator name such as
// "date-filter", "DateFilter" or "pdf".
func ParseDecoratorKind(name string) (DecoratorKind, error) {
	if k, ok := decoratorAliases[normalizeName(name)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDecoratorKind, name)
}

// normalizeName lowercases s and drops separators.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
