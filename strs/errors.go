package strs

import "go.trai.ch/zerr"

// ErrOutOfRange is returned when a byte window does not fit inside its buffer.
var ErrOutOfRange = zerr.New("byte range out of bounds")
