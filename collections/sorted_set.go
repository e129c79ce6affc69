package collections

import (
	"cmp"

	"github.com/google/btree"
)

// btreeDegree is the node degree used for SortedSet B-trees.
const btreeDegree = 16

// SortedSet keeps unique elements in ascending order.
// It is not safe for concurrent mutation.
type SortedSet[T any] struct {
	tree *btree.BTreeG[T]
}

// NewSortedSet returns an ordered set of naturally ordered elements.
func NewSortedSet[T cmp.Ordered](elems ...T) *SortedSet[T] {
	return NewSortedSetFunc(cmp.Less[T], elems...)
}

// NewSortedSetFunc returns an ordered set using less to order elements.
// Elements for which neither less(a, b) nor less(b, a) holds are equal.
func NewSortedSetFunc[T any](less func(a, b T) bool, elems ...T) *SortedSet[T] {
	s := &SortedSet[T]{tree: btree.NewG(btreeDegree, btree.LessFunc[T](less))}
	for _, e := range elems {
		s.tree.ReplaceOrInsert(e)
	}
	return s
}

// Add inserts e and reports whether it was not already present.
func (s *SortedSet[T]) Add(e T) bool {
	_, replaced := s.tree.ReplaceOrInsert(e)
	return !replaced
}

// Remove deletes e and reports whether it was present.
func (s *SortedSet[T]) Remove(e T) bool {
	_, ok := s.tree.Delete(e)
	return ok
}

// Contains reports whether e is in the set.
func (s *SortedSet[T]) Contains(e T) bool {
	return s.tree.Has(e)
}

// Len returns the number of elements.
func (s *SortedSet[T]) Len() int {
	return s.tree.Len()
}

// Min returns the smallest element, or false when the set is empty.
func (s *SortedSet[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest element, or false when the set is empty.
func (s *SortedSet[T]) Max() (T, bool) {
	return s.tree.Max()
}

// Ascend calls fn for each element in ascending order until fn returns false.
func (s *SortedSet[T]) Ascend(fn func(T) bool) {
	s.tree.Ascend(btree.ItemIteratorG[T](fn))
}

// Values returns the elements in ascending order.
func (s *SortedSet[T]) Values() []T {
	out := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(e T) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Range returns the elements in [lo, hi) in ascending order.
func (s *SortedSet[T]) Range(lo, hi T) []T {
	var out []T
	s.tree.AscendRange(lo, hi, func(e T) bool {
		out = append(out, e)
		return true
	})
	return out
}
