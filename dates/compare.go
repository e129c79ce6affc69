// Package dates compares dates and date-times and provides zone-less
// calendar types that serialize as ISO-8601 strings.
package dates

import "time"

// LessThan reports whether at least one whole second passes from a to b.
// Sub-second differences do not count.
func LessThan(a, b time.Time) bool {
	return b.Sub(a)/time.Second > 0
}

// LessThanOrEqual reports whether a is on or before b.
func LessThanOrEqual(a, b Date) bool {
	return a.DaysUntil(b) >= 0
}

// MoreThanOrEqual reports whether a is on or after b.
func MoreThanOrEqual(a, b Date) bool {
	return a.DaysUntil(b) <= 0
}
