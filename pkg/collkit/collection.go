package collkit

import (
	"math/rand/v2"

	"go.llib.dev/collkit/port/collection"
)

// NewIndexingIterator returns the default Iterator of a Collection,
// which walks from StartIndex to EndIndex with IndexAfter, and looks up each element with At.
//
// The end position is taken when the iterator is made,
// mutating the collection during the iteration is not supported.
func NewIndexingIterator[T, I any](c collection.Collection[T, I]) *IndexingIterator[T, I] {
	return &IndexingIterator[T, I]{
		c:   c,
		pos: c.StartIndex(),
		end: c.EndIndex(),
	}
}

type IndexingIterator[T, I any] struct {
	c   collection.Collection[T, I]
	pos I
	end I
}

func (i *IndexingIterator[T, I]) Next() (T, bool) {
	if 0 <= i.c.CompareIndex(i.pos, i.end) {
		var zero T
		return zero, false
	}
	v := i.c.At(i.pos)
	i.pos = i.c.IndexAfter(i.pos)
	return v, true
}

// IsEmpty reports whether the Collection has no elements.
func IsEmpty[T, I any](c collection.Collection[T, I]) bool {
	return c.CompareIndex(c.StartIndex(), c.EndIndex()) == 0
}

// Count returns the number of elements in the Collection.
//
// It is O(1) when the Collection is a Counter or a RandomAccessCollection,
// otherwise it walks through all the positions.
func Count[T, I any](c collection.Collection[T, I]) int {
	if n, ok := c.(collection.Counter); ok {
		return n.Len()
	}
	return Distance(c, c.StartIndex(), c.EndIndex())
}

// Distance returns the number of steps from "from" forward to "to".
// "to" must not be before "from", see BidirectionalDistance for measuring backwards.
//
// It is O(1) for a RandomAccessCollection, and O(n) otherwise.
func Distance[T, I any](c collection.Collection[T, I], from, to I) int {
	if 0 < c.CompareIndex(from, to) {
		panic(ErrInvalidRange.F("%v is after %v", from, to))
	}
	if ra, ok := c.(collection.RandomAccessCollection[T, I]); ok {
		return ra.Distance(from, to)
	}
	var n int
	for i := from; c.CompareIndex(i, to) < 0; i = c.IndexAfter(i) {
		n++
	}
	return n
}

// BidirectionalDistance is like Distance,
// but the result is negative when "to" is before "from".
func BidirectionalDistance[T, I any](c collection.BidirectionalCollection[T, I], from, to I) int {
	if 0 < c.CompareIndex(from, to) {
		return -Distance[T, I](c, to, from)
	}
	return Distance[T, I](c, from, to)
}

// IndexOffset returns the position that is n steps after i.
// A negative n is a contract violation, see BidirectionalIndexOffset for stepping backwards.
//
// It is O(1) for a RandomAccessCollection, and O(n) otherwise.
func IndexOffset[T, I any](c collection.Collection[T, I], i I, n int) I {
	checkCount(n)
	if ra, ok := c.(collection.RandomAccessCollection[T, I]); ok {
		return ra.IndexOffset(i, n)
	}
	for ; 0 < n; n-- {
		i = c.IndexAfter(i)
	}
	return i
}

// BidirectionalIndexOffset is like IndexOffset, but a negative n steps backwards.
func BidirectionalIndexOffset[T, I any](c collection.BidirectionalCollection[T, I], i I, n int) I {
	if 0 <= n {
		return IndexOffset[T, I](c, i, n)
	}
	if ra, ok := c.(collection.RandomAccessCollection[T, I]); ok {
		return ra.IndexOffset(i, n)
	}
	for ; n < 0; n++ {
		i = c.IndexBefore(i)
	}
	return i
}

// IndexOffsetLimited is like IndexOffset,
// but it reports false when the limit position is reached before making n steps.
// Reaching the limit with the very last step is not a failure.
//
// The limit only has an effect when it is not before i.
func IndexOffsetLimited[T, I any](c collection.Collection[T, I], i I, n int, limit I) (I, bool) {
	checkCount(n)
	if ra, ok := c.(collection.RandomAccessCollection[T, I]); ok {
		if l := ra.Distance(i, limit); 0 <= l && l < n {
			return limit, false
		}
		return ra.IndexOffset(i, n), true
	}
	for ; 0 < n; n-- {
		if c.CompareIndex(i, limit) == 0 {
			return limit, false
		}
		i = c.IndexAfter(i)
	}
	return i, true
}

// BidirectionalIndexOffsetLimited is like IndexOffsetLimited, but a negative n steps backwards.
// When stepping backwards, the limit only has an effect when it is not after i.
func BidirectionalIndexOffsetLimited[T, I any](c collection.BidirectionalCollection[T, I], i I, n int, limit I) (I, bool) {
	if 0 <= n {
		return IndexOffsetLimited[T, I](c, i, n, limit)
	}
	if ra, ok := c.(collection.RandomAccessCollection[T, I]); ok {
		if l := ra.Distance(i, limit); l <= 0 && n < l {
			return limit, false
		}
		return ra.IndexOffset(i, n), true
	}
	for ; n < 0; n++ {
		if c.CompareIndex(i, limit) == 0 {
			return limit, false
		}
		i = c.IndexBefore(i)
	}
	return i, true
}

// Indices returns a Sequence of the valid element positions of the Collection, in order.
func Indices[T, I any](c collection.Collection[T, I]) collection.Sequence[I] {
	return collection.SequenceFunc[I](func() collection.Iterator[I] {
		var pos, end = c.StartIndex(), c.EndIndex()
		return collection.IteratorFunc[I](func() (I, bool) {
			if 0 <= c.CompareIndex(pos, end) {
				var zero I
				return zero, false
			}
			i := pos
			pos = c.IndexAfter(pos)
			return i, true
		})
	})
}

// FirstIndex returns the position of the first element that satisfies the predicate.
func FirstIndex[T, I any, FN predicateFunc[T]](c collection.Collection[T, I], pred FN) (I, bool, error) {
	var match = toPredicateFunc[T](pred)
	for i, end := c.StartIndex(), c.EndIndex(); c.CompareIndex(i, end) < 0; i = c.IndexAfter(i) {
		ok, err := match(c.At(i))
		if err != nil {
			var zero I
			return zero, false, err
		}
		if ok {
			return i, true, nil
		}
	}
	return c.EndIndex(), false, nil
}

// FirstIndexOf returns the position of the first element that equals to v.
func FirstIndexOf[T comparable, I any](c collection.Collection[T, I], v T) (I, bool) {
	i, ok, _ := FirstIndex(c, func(e T) bool { return e == v })
	return i, ok
}

// DropFirstN returns a view without the first n elements.
// When the collection has fewer elements than n, the view is empty.
func DropFirstN[T, I any](c collection.Collection[T, I], n int) Slice[T, I] {
	checkCount(n)
	start, _ := IndexOffsetLimited(c, c.StartIndex(), n, c.EndIndex())
	return Slice[T, I]{base: c, start: start, end: c.EndIndex()}
}

// PrefixN returns a view of the first n elements at most.
func PrefixN[T, I any](c collection.Collection[T, I], n int) Slice[T, I] {
	checkCount(n)
	end, _ := IndexOffsetLimited(c, c.StartIndex(), n, c.EndIndex())
	return Slice[T, I]{base: c, start: c.StartIndex(), end: end}
}

// PrefixUpTo returns a view from the start up to, but not including, the given position.
func PrefixUpTo[T, I any](c collection.Collection[T, I], end I) Slice[T, I] {
	return SliceOf(c, c.StartIndex(), end)
}

// PrefixThrough returns a view from the start up to and including the given position.
func PrefixThrough[T, I any](c collection.Collection[T, I], i I) Slice[T, I] {
	checkIndex(c, i)
	return SliceOf(c, c.StartIndex(), c.IndexAfter(i))
}

// SuffixFrom returns a view from the given position to the end.
func SuffixFrom[T, I any](c collection.Collection[T, I], start I) Slice[T, I] {
	return SliceOf(c, start, c.EndIndex())
}

// RandomSource is the source of randomness for the shuffling and random picking algorithms.
// IntN must return a uniformly chosen number in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRandomSource struct{}

func (globalRandomSource) IntN(n int) int { return rand.IntN(n) }

func getRandomSource(rnd RandomSource) RandomSource {
	if rnd == nil {
		return globalRandomSource{}
	}
	return rnd
}

// RandomElement returns a randomly chosen element of the Collection.
// When rnd is nil, the global source of math/rand/v2 is used.
func RandomElement[T, I any](c collection.Collection[T, I], rnd RandomSource) (T, bool) {
	n := Count(c)
	if n == 0 {
		var zero T
		return zero, false
	}
	offset := getRandomSource(rnd).IntN(n)
	return c.At(IndexOffset(c, c.StartIndex(), offset)), true
}
