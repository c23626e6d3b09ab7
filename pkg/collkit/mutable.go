package collkit

import (
	"sort"

	"go.llib.dev/collkit/port/collection"
)

// Reverse reverses the order of the elements in place.
//
// Two positions walk from both ends towards the middle,
// swapping the elements they point to until they meet or cross.
func Reverse[T, I any](c collection.MutableBidirectionalCollection[T, I]) {
	if IsEmpty[T, I](c) {
		return
	}
	var (
		f = c.StartIndex()
		l = c.IndexBefore(c.EndIndex())
	)
	for c.CompareIndex(f, l) < 0 {
		c.Swap(f, l)
		f = c.IndexAfter(f)
		l = c.IndexBefore(l)
	}
}

// Shuffle reorders the elements in place,
// so every permutation has the same chance, given a uniform random source.
// When rnd is nil, the global source of math/rand/v2 is used.
//
// It walks from the back, swapping each element with a uniformly chosen one from the not yet visited part,
// including itself (Fisher–Yates).
func Shuffle[T, I any](c collection.MutableRandomAccessCollection[T, I], rnd RandomSource) {
	var (
		n     = c.Distance(c.StartIndex(), c.EndIndex())
		start = c.StartIndex()
		src   = getRandomSource(rnd)
	)
	for i := n - 1; 0 < i; i-- {
		j := src.IntN(i + 1)
		if i == j {
			continue
		}
		c.Swap(c.IndexOffset(start, i), c.IndexOffset(start, j))
	}
}

// Partition reorders the elements,
// so that every element that satisfies the predicate comes after the ones that don't.
// It returns the position of the first element of the second partition (the pivot).
//
// After the call, no element in [start, pivot) satisfies the predicate,
// and every element in [pivot, end) does.
//
// For a bidirectional collection, a position advances from the start and another retreats from the end,
// and misplaced pairs are swapped.
// For a forward only collection, the elements that don't match are moved to the front one by one,
// which keeps the relative order of those elements.
func Partition[T, I any, FN predicateFunc[T]](c collection.MutableCollection[T, I], pred FN) (I, error) {
	var match = toPredicateFunc[T](pred)
	if bc, ok := c.(collection.MutableBidirectionalCollection[T, I]); ok {
		return partitionBidirectional(bc, match)
	}
	return partitionForward(c, match)
}

func partitionBidirectional[T, I any](c collection.MutableBidirectionalCollection[T, I], belongsToSecond func(T) (bool, error)) (I, error) {
	var lo, hi = c.StartIndex(), c.EndIndex()
	for {
		var found bool
		for c.CompareIndex(lo, hi) < 0 {
			second, err := belongsToSecond(c.At(lo))
			if err != nil {
				return lo, err
			}
			if second {
				found = true
				break
			}
			lo = c.IndexAfter(lo)
		}
		if !found {
			return lo, nil
		}

		found = false
		hi = c.IndexBefore(hi)
		for c.CompareIndex(lo, hi) < 0 {
			second, err := belongsToSecond(c.At(hi))
			if err != nil {
				return lo, err
			}
			if !second {
				found = true
				break
			}
			hi = c.IndexBefore(hi)
		}
		if !found {
			return lo, nil
		}

		c.Swap(lo, hi)
		lo = c.IndexAfter(lo)
	}
}

func partitionForward[T, I any](c collection.MutableCollection[T, I], belongsToSecond func(T) (bool, error)) (I, error) {
	pivot, ok, err := FirstIndex[T, I](c, belongsToSecond)
	if err != nil || !ok {
		return pivot, err
	}
	var end = c.EndIndex()
	for j := c.IndexAfter(pivot); c.CompareIndex(j, end) < 0; j = c.IndexAfter(j) {
		second, err := belongsToSecond(c.At(j))
		if err != nil {
			return pivot, err
		}
		if second {
			continue
		}
		c.Swap(pivot, j)
		pivot = c.IndexAfter(pivot)
	}
	return pivot, nil
}

// Sort sorts the elements in place in ascending order, as determined by the cmp function.
// The sort is not guaranteed to be stable.
func Sort[T, I any](c collection.MutableRandomAccessCollection[T, I], cmp func(a, b T) int) {
	sort.Sort(sortable[T, I]{c: c, start: c.StartIndex(), cmp: cmp})
}

// SortStable sorts the elements in place, and keeps the original order of equal elements.
func SortStable[T, I any](c collection.MutableRandomAccessCollection[T, I], cmp func(a, b T) int) {
	sort.Stable(sortable[T, I]{c: c, start: c.StartIndex(), cmp: cmp})
}

// IsSorted reports whether the elements are in ascending order.
func IsSorted[T, I any](c collection.Collection[T, I], cmp func(a, b T) int) bool {
	var it = c.Iterator()
	prev, ok := it.Next()
	if !ok {
		return true
	}
	for {
		v, ok := it.Next()
		if !ok {
			return true
		}
		if cmp(v, prev) < 0 {
			return false
		}
		prev = v
	}
}

type sortable[T, I any] struct {
	c     collection.MutableRandomAccessCollection[T, I]
	start I
	cmp   func(a, b T) int
}

func (s sortable[T, I]) Len() int {
	return s.c.Distance(s.start, s.c.EndIndex())
}

func (s sortable[T, I]) Less(i, j int) bool {
	return s.cmp(s.c.At(s.c.IndexOffset(s.start, i)), s.c.At(s.c.IndexOffset(s.start, j))) < 0
}

func (s sortable[T, I]) Swap(i, j int) {
	s.c.Swap(s.c.IndexOffset(s.start, i), s.c.IndexOffset(s.start, j))
}

// AssignSubrange writes the elements of src into the [from, to) range of the target, position by position.
// It stops when either the range or src runs out of elements, and returns the number of written elements.
//
// The size of the target never changes.
// To replace a range with a different number of elements,
// use the ReplaceSubrange of a RangeReplaceableCollection.
func AssignSubrange[T, I, J any](target collection.MutableCollection[T, I], from, to I, src collection.Collection[T, J]) int {
	checkRange[T, I](target, from, to)
	var (
		i      = from
		j      = src.StartIndex()
		srcEnd = src.EndIndex()
		n      int
	)
	for target.CompareIndex(i, to) < 0 && src.CompareIndex(j, srcEnd) < 0 {
		target.Set(i, src.At(j))
		i = target.IndexAfter(i)
		j = src.IndexAfter(j)
		n++
	}
	return n
}
