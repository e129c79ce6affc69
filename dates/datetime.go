package dates

import (
	"bytes"
	"encoding/json"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DateTimeLayout is the ISO-8601 local date-time layout used for output.
	// Trailing zero fraction digits are omitted.
	DateTimeLayout = "2006-01-02T15:04:05.999999999"

	parseLayout       = "2006-01-02T15:04:05"
	parseMinuteLayout = "2006-01-02T15:04"
)

// DateTime is a date and wall-clock time without a zone.
// The zero value is the absent date-time and serializes as JSON null.
type DateTime struct {
	t time.Time
}

// DateTimeOf returns the wall-clock reading of t, dropping its location.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// ParseDateTime parses an ISO-8601 local date-time. Seconds and fractional
// seconds are optional.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		var minuteErr error
		t, minuteErr = time.Parse(parseMinuteLayout, s)
		if minuteErr != nil {
			return DateTime{}, zerr.With(zerr.Wrap(err, ErrInvalidDateTime.Error()), "value", s)
		}
	}
	return DateTime{t: t}, nil
}

// Time returns the date-time as a time.Time in loc.
func (dt DateTime) Time(loc *time.Location) time.Time {
	t := dt.t
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// Date returns the calendar date part.
func (dt DateTime) Date() Date {
	return DateOf(dt.t)
}

// IsZero reports whether dt is the zero DateTime.
func (dt DateTime) IsZero() bool {
	return dt.t.IsZero()
}

// LessThan reports whether at least one whole second passes from dt to other.
func (dt DateTime) LessThan(other DateTime) bool {
	return LessThan(dt.t, other.t)
}

// String formats dt with DateTimeLayout.
func (dt DateTime) String() string {
	return dt.t.Format(DateTimeLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (dt DateTime) MarshalText() ([]byte, error) {
	if dt.IsZero() {
		return []byte{}, nil
	}
	return []byte(dt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DateTime) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*dt = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	if dt.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(dt.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*dt = DateTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zerr.Wrap(err, ErrInvalidDateTime.Error())
	}
	return dt.UnmarshalText([]byte(s))
}
