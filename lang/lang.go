// Package lang provides small helpers for optional values and lazy defaults.
package lang

// Supply calls fn and returns its result.
// A nil fn yields the zero value of T.
func Supply[T any](fn func() T) T {
	if fn == nil {
		var zero T
		return zero
	}
	return fn()
}

// DefaultIfNil returns v, or the value produced by fn when v is nil.
func DefaultIfNil[T any](v *T, fn func() *T) *T {
	if v == nil {
		return Supply(fn)
	}
	return v
}

// DefaultIfZero returns v, or the value produced by fn when v is the zero value.
func DefaultIfZero[T comparable](v T, fn func() T) T {
	var zero T
	if v == zero {
		return Supply(fn)
	}
	return v
}
