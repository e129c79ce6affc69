package numbers

import "go.trai.ch/zerr"

// ErrInvalidPattern is returned when a format pattern cannot be parsed.
var ErrInvalidPattern = zerr.New("invalid number pattern")
