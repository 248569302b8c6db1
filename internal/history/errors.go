package history

import "errors"

// ErrNotFound is returned when no history entry has the requested ID.
var ErrNotFound = errors.New("history entry not found")
