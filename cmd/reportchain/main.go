// Package main provides the entry point for the reportchain CLI.
//
// reportchain composes report output from a base report and a stack of
// decorators. Run without arguments it prints the default chain:
//
//	$ reportchain
//	Sales Report Data with Date Filter with Sorting Exported as PDF
//
// Usage:
//
//	reportchain generate --report user --decorate csv
//	reportchain generate --preset weekly --markdown
//
// See --help for all available options.
package main

// main is the entry point for reportchain.
func main() {
	Execute()
}
