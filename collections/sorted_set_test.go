package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/commons/collections"
)

func TestSortedSet(t *testing.T) {
	s := collections.NewSortedSet(5, 1, 3, 1)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 3, 5}, s.Values())

	assert.True(t, s.Add(4))
	assert.False(t, s.Add(4))
	assert.True(t, s.Contains(4))

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))

	lo, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, 3, lo)

	hi, ok := s.Max()
	assert.True(t, ok)
	assert.Equal(t, 5, hi)

	assert.Equal(t, []int{3, 4}, s.Range(3, 5))
}

func TestSortedSet_Empty(t *testing.T) {
	s := collections.NewSortedSet[string]()

	_, ok := s.Min()
	assert.False(t, ok)
	_, ok = s.Max()
	assert.False(t, ok)
	assert.Empty(t, s.Values())
	assert.Nil(t, s.Range("a", "z"))
}

func TestSortedSetFunc_CaseInsensitive(t *testing.T) {
	less := func(a, b string) bool { return strings.ToLower(a) < strings.ToLower(b) }
	s := collections.NewSortedSetFunc(less, "beta", "Alpha", "BETA")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"Alpha", "BETA"}, s.Values(), "equal elements are replaced")

	var seen []string
	s.Ascend(func(v string) bool {
		seen = append(seen, v)
		return false
	})
	assert.Equal(t, []string{"Alpha"}, seen)
}

func TestSortedSetFunc_LaterEqualReplaces(t *testing.T) {
	caseInsensitive := func(a, b string) bool { return strings.ToLower(a) < strings.ToLower(b) }
	s := collections.NewSortedSetFunc(caseInsensitive, "b", "A", "a", "C")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a", "b", "C"}, s.Values(), "later equal elements replace earlier ones")
}
