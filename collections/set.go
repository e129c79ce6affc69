package collections

// Set is an unordered set of comparable values.
// The zero value is not usable; create sets with NewSet.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given elements.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts e and reports whether it was not already present.
func (s Set[T]) Add(e T) bool {
	if _, ok := s[e]; ok {
		return false
	}
	s[e] = struct{}{}
	return true
}

// Remove deletes e and reports whether it was present.
func (s Set[T]) Remove(e T) bool {
	if _, ok := s[e]; !ok {
		return false
	}
	delete(s, e)
	return true
}

// Contains reports whether e is in the set.
func (s Set[T]) Contains(e T) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Values returns the elements in unspecified order.
func (s Set[T]) Values() []T {
	out := make([]T, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return out
}

// Union returns a new set with the elements of s and other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := make(Set[T], len(s)+len(other))
	for e := range s {
		out[e] = struct{}{}
	}
	for e := range other {
		out[e] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the elements present in both s and other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set[T])
	for e := range small {
		if _, ok := large[e]; ok {
			out[e] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the elements of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := make(Set[T])
	for e := range s {
		if _, ok := other[e]; !ok {
			out[e] = struct{}{}
		}
	}
	return out
}
