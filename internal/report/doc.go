// Package report provides composable report generation.
//
// A base report (SalesReport, UserReport) produces a fixed payload. A
// Decorator wraps exactly one Reportable and appends a kind-specific suffix
// after calling through, so decorators can be stacked in any order:
//
//	base, _ := report.NewDateFilter(report.SalesReport{})
//	sorted, _ := report.NewSorting(base)
//	pdf, _ := report.NewPDFExport(sorted)
//	fmt.Println(pdf.Generate())
//	// Sales Report Data with Date Filter with Sorting Exported as PDF
//
// The final string is always the base literal followed by each layer's
// suffix in the order the layers were applied. Reordering decorators changes
// the output.
//
// Chain describes the same composition declaratively and is what the CLI,
// the preset file and the batch pipeline work with.
package report
