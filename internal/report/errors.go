package report

import "errors"

var (
	// ErrNilReport is returned when a decorator is constructed without a
	// report to wrap.
	ErrNilReport = errors.New("decorator requires a non-nil report to wrap")

	// ErrUnknownReportKind is returned when a report kind name is not recognized.
	ErrUnknownReportKind = errors.New("unknown report kind")

	// ErrUnknownDecoratorKind is returned when a decorator kind name is not recognized.
	ErrUnknownDecoratorKind = errors.New("unknown decorator kind")
)
