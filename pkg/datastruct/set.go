package datastruct

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"
	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/port/collection"
)

// SortedSet is an ordered set of unique values, kept in a B-tree.
// Its positions are the ranks of the values, so it is a random access collection,
// but values can only be changed through Append and Delete.
//
// Clone is cheap, the B-tree copies its nodes lazily, on the first write after the copy.
type SortedSet[T any] struct {
	tree *btree.BTreeG[T]
	cmp  func(a, b T) int
}

var _ collection.RandomAccessCollection[int, int] = (*SortedSet[int])(nil)
var _ List[int] = (*SortedSet[int])(nil)

// NewSortedSet makes a SortedSet ordered by the natural order of T.
func NewSortedSet[T cmp.Ordered](vs ...T) *SortedSet[T] {
	return NewSortedSetFunc(cmp.Compare[T], vs...)
}

// NewSortedSetFunc makes a SortedSet ordered by the compare function.
// Values that compare as equal are the same member of the set.
func NewSortedSetFunc[T any](compare func(a, b T) int, vs ...T) *SortedSet[T] {
	less := func(a, b T) bool { return compare(a, b) < 0 }
	set := &SortedSet[T]{
		tree: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
		cmp:  compare,
	}
	set.Append(vs...)
	return set
}

// Append adds the values to the set.
// Values that are already members are replaced.
func (s *SortedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.tree.Set(v)
	}
}

func (s *SortedSet[T]) Has(v T) bool {
	_, ok := s.tree.Get(v)
	return ok
}

// Delete removes the value from the set, and reports whether it was a member.
func (s *SortedSet[T]) Delete(v T) bool {
	_, ok := s.tree.Delete(v)
	return ok
}

// Rank returns the position of the value, or reports false when it is not a member.
// It is a binary search over the ranks.
func (s *SortedSet[T]) Rank(v T) (int, bool) {
	i := collkit.PartitionPoint[T, int](s, func(m T) bool {
		return 0 <= s.cmp(m, v)
	})
	if i == s.Len() || s.cmp(s.At(i), v) != 0 {
		return 0, false
	}
	return i, true
}

// Clone returns an independent copy of the set.
func (s *SortedSet[T]) Clone() *SortedSet[T] {
	return &SortedSet[T]{tree: s.tree.Copy(), cmp: s.cmp}
}

func (s *SortedSet[T]) ToSlice() []T {
	return s.tree.Items()
}

func (s *SortedSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Scan(yield)
	}
}

func (s *SortedSet[T]) Iterator() collection.Iterator[T] {
	return collkit.NewIndexingIterator[T, int](s)
}

func (s *SortedSet[T]) Len() int { return s.tree.Len() }

func (s *SortedSet[T]) UnderestimatedCount() int { return s.Len() }

func (s *SortedSet[T]) StartIndex() int { return 0 }

func (s *SortedSet[T]) EndIndex() int { return s.Len() }

func (s *SortedSet[T]) At(i int) T {
	v, ok := s.tree.GetAt(i)
	if !ok {
		panic(collkit.ErrIndexOutOfRange.F("%d is outside of the [0, %d) bounds", i, s.Len()))
	}
	return v
}

func (s *SortedSet[T]) IndexAfter(i int) int { return s.IndexOffset(i, 1) }

func (s *SortedSet[T]) IndexBefore(i int) int { return s.IndexOffset(i, -1) }

func (s *SortedSet[T]) IndexOffset(i int, n int) int {
	o := i + n
	if o < 0 || s.Len() < o {
		panic(collkit.ErrIndexOutOfRange.F("offsetting %d by %d is outside of the [0, %d] bounds", i, n, s.Len()))
	}
	return o
}

func (s *SortedSet[T]) Distance(from, to int) int { return to - from }

func (s *SortedSet[T]) CompareIndex(a, b int) int { return cmp.Compare(a, b) }

// Subrange returns a view over the members with rank in [from, to).
func (s *SortedSet[T]) Subrange(from, to int) collkit.RandomAccessSlice[T, int] {
	return collkit.RandomAccessSliceOf[T, int](s, from, to)
}
