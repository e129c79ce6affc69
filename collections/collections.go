// Package collections provides nil-safe helpers for slices and maps plus
// hash and ordered set types.
package collections

// IsEmpty reports whether s has no elements. A nil slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsNotEmpty is the negation of IsEmpty.
func IsNotEmpty[S ~[]E, E any](s S) bool {
	return len(s) > 0
}

// Size returns the number of elements in s.
func Size[S ~[]E, E any](s S) int {
	return len(s)
}

// EmptyIfNil returns s, or a non-nil empty slice when s is nil.
func EmptyIfNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}

// DefaultIfEmpty returns s, or the slice produced by fn when s is empty.
// It panics if fn is nil.
func DefaultIfEmpty[S ~[]E, E any](s S, fn func() S) S {
	if fn == nil {
		panic("collections: nil default supplier")
	}
	if len(s) == 0 {
		return fn()
	}
	return s
}

// IsEmptyMap reports whether m has no entries. A nil map is empty.
func IsEmptyMap[M ~map[K]V, K comparable, V any](m M) bool {
	return len(m) == 0
}

// IsNotEmptyMap is the negation of IsEmptyMap.
func IsNotEmptyMap[M ~map[K]V, K comparable, V any](m M) bool {
	return len(m) > 0
}

// MapSize returns the number of entries in m.
func MapSize[M ~map[K]V, K comparable, V any](m M) int {
	return len(m)
}

// EmptyMapIfNil returns m, or a non-nil empty map when m is nil.
func EmptyMapIfNil[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return M{}
	}
	return m
}

// DefaultIfEmptyMap returns m, or the map produced by fn when m is empty.
// It panics if fn is nil.
func DefaultIfEmptyMap[M ~map[K]V, K comparable, V any](m M, fn func() M) M {
	if fn == nil {
		panic("collections: nil default supplier")
	}
	if len(m) == 0 {
		return fn()
	}
	return m
}

// Partition splits s into consecutive sub-slices of at most size elements.
// The sub-slices share s's backing array. It panics if size < 1.
func Partition[S ~[]E, E any](s S, size int) []S {
	if size < 1 {
		panic("collections: partition size must be positive")
	}
	if len(s) == 0 {
		return nil
	}

	parts := make([]S, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		parts = append(parts, s[start:end:end])
	}
	return parts
}
