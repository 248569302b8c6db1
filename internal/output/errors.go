package output

import "errors"

// ErrUnknownFormat is returned by New when the format is not supported.
var ErrUnknownFormat = errors.New("unknown output format")
