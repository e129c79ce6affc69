package dates

import "go.trai.ch/zerr"

var (
	// ErrInvalidDate is returned when a value is not an ISO-8601 calendar date.
	ErrInvalidDate = zerr.New("invalid date")

	// ErrInvalidDateTime is returned when a value is not an ISO-8601 local date-time.
	ErrInvalidDateTime = zerr.New("invalid date-time")
)
