package collkit

import "go.llib.dev/collkit/port/collection"

// Slice is a view over the [start, end) window of a base Collection.
//
// A Slice doesn't copy any element, every lookup is forwarded to the base,
// and it uses the positions of the base as its own.
// Making a Slice is O(1).
//
// Since Go can't express conditional conformance,
// every capability combination has its own view type,
// and each of them embeds the view of the capability level below it:
//
//	Slice -> BidirectionalSlice -> RandomAccessSlice
//	Slice -> MutableSlice
//	BidirectionalSlice -> MutableBidirectionalSlice
//	RandomAccessSlice -> MutableRandomAccessSlice
type Slice[T, I any] struct {
	base  collection.Collection[T, I]
	start I
	end   I
}

// SliceOf makes a view over the [from, to) range of the Collection.
// Slicing a Slice results in a view over the same base, not in a nested view.
func SliceOf[T, I any](c collection.Collection[T, I], from, to I) Slice[T, I] {
	if s, ok := c.(Slice[T, I]); ok {
		return s.Subrange(from, to)
	}
	checkRange(c, from, to)
	return Slice[T, I]{base: c, start: from, end: to}
}

func (s Slice[T, I]) Iterator() collection.Iterator[T] {
	return NewIndexingIterator[T, I](s)
}

func (s Slice[T, I]) StartIndex() I { return s.start }

func (s Slice[T, I]) EndIndex() I { return s.end }

func (s Slice[T, I]) At(i I) T {
	s.checkIndex(i)
	return s.base.At(i)
}

func (s Slice[T, I]) IndexAfter(i I) I {
	s.checkIndex(i)
	return s.base.IndexAfter(i)
}

func (s Slice[T, I]) CompareIndex(a, b I) int {
	return s.base.CompareIndex(a, b)
}

// Base returns the Collection the view is looking into.
func (s Slice[T, I]) Base() collection.Collection[T, I] { return s.base }

// Subrange returns a view over the [from, to) range of the same base.
// The range must lie within the bounds of the current view.
func (s Slice[T, I]) Subrange(from, to I) Slice[T, I] {
	checkRange[T, I](s, from, to)
	return Slice[T, I]{base: s.base, start: from, end: to}
}

func (s Slice[T, I]) checkIndex(i I) {
	if s.base.CompareIndex(i, s.start) < 0 || 0 <= s.base.CompareIndex(i, s.end) {
		panic(ErrIndexOutOfRange.F("%v is outside of the [%v, %v) slice bounds", i, s.start, s.end))
	}
}

// BidirectionalSlice is a Slice over a BidirectionalCollection.
type BidirectionalSlice[T, I any] struct {
	Slice[T, I]
	bidi collection.BidirectionalCollection[T, I]
}

func BidirectionalSliceOf[T, I any](c collection.BidirectionalCollection[T, I], from, to I) BidirectionalSlice[T, I] {
	if s, ok := c.(BidirectionalSlice[T, I]); ok {
		return s.Subrange(from, to)
	}
	checkRange[T, I](c, from, to)
	return BidirectionalSlice[T, I]{
		Slice: Slice[T, I]{base: c, start: from, end: to},
		bidi:  c,
	}
}

func (s BidirectionalSlice[T, I]) Iterator() collection.Iterator[T] {
	return NewIndexingIterator[T, I](s)
}

func (s BidirectionalSlice[T, I]) IndexBefore(i I) I {
	if s.CompareIndex(i, s.start) <= 0 || 0 < s.CompareIndex(i, s.end) {
		panic(ErrIndexOutOfRange.F("no position before %v in the (%v, %v] slice bounds", i, s.start, s.end))
	}
	return s.bidi.IndexBefore(i)
}

func (s BidirectionalSlice[T, I]) Subrange(from, to I) BidirectionalSlice[T, I] {
	return BidirectionalSlice[T, I]{Slice: s.Slice.Subrange(from, to), bidi: s.bidi}
}

// RandomAccessSlice is a Slice over a RandomAccessCollection.
// Its Len is O(1).
type RandomAccessSlice[T, I any] struct {
	BidirectionalSlice[T, I]
	ra collection.RandomAccessCollection[T, I]
}

func RandomAccessSliceOf[T, I any](c collection.RandomAccessCollection[T, I], from, to I) RandomAccessSlice[T, I] {
	if s, ok := c.(RandomAccessSlice[T, I]); ok {
		return s.Subrange(from, to)
	}
	return RandomAccessSlice[T, I]{
		BidirectionalSlice: BidirectionalSliceOf[T, I](c, from, to),
		ra:                 c,
	}
}

func (s RandomAccessSlice[T, I]) Iterator() collection.Iterator[T] {
	return NewIndexingIterator[T, I](s)
}

func (s RandomAccessSlice[T, I]) IndexOffset(i I, n int) I {
	o := s.ra.IndexOffset(i, n)
	if s.CompareIndex(o, s.start) < 0 || 0 < s.CompareIndex(o, s.end) {
		panic(ErrIndexOutOfRange.F("offsetting %v by %d is outside of the [%v, %v] slice bounds", i, n, s.start, s.end))
	}
	return o
}

func (s RandomAccessSlice[T, I]) Distance(from, to I) int {
	return s.ra.Distance(from, to)
}

func (s RandomAccessSlice[T, I]) Len() int {
	return s.ra.Distance(s.start, s.end)
}

func (s RandomAccessSlice[T, I]) UnderestimatedCount() int { return s.Len() }

func (s RandomAccessSlice[T, I]) Subrange(from, to I) RandomAccessSlice[T, I] {
	return RandomAccessSlice[T, I]{BidirectionalSlice: s.BidirectionalSlice.Subrange(from, to), ra: s.ra}
}

// sliceWriter forwards the writes of a mutable view to its base,
// after checking that the position is within the [lo, hi) bounds of the view.
type sliceWriter[T, I any] struct {
	mut    collection.MutableCollection[T, I]
	lo, hi I
}

func (w sliceWriter[T, I]) Set(i I, v T) {
	w.check(i)
	w.mut.Set(i, v)
}

func (w sliceWriter[T, I]) Swap(i, j I) {
	w.check(i)
	w.check(j)
	w.mut.Swap(i, j)
}

func (w sliceWriter[T, I]) check(i I) {
	if w.mut.CompareIndex(i, w.lo) < 0 || 0 <= w.mut.CompareIndex(i, w.hi) {
		panic(ErrIndexOutOfRange.F("%v is outside of the [%v, %v) slice bounds", i, w.lo, w.hi))
	}
}

// MutableSlice is a view over a MutableCollection that writes through to its base.
type MutableSlice[T, I any] struct {
	Slice[T, I]
	sliceWriter[T, I]
}

func MutableSliceOf[T, I any](c collection.MutableCollection[T, I], from, to I) MutableSlice[T, I] {
	return MutableSlice[T, I]{
		Slice:       SliceOf[T, I](c, from, to),
		sliceWriter: sliceWriter[T, I]{mut: c, lo: from, hi: to},
	}
}

func (s MutableSlice[T, I]) Iterator() collection.Iterator[T] {
	return NewIndexingIterator[T, I](s)
}

// MutableBidirectionalSlice is a view over a MutableBidirectionalCollection that writes through to its base.
type MutableBidirectionalSlice[T, I any] struct {
	BidirectionalSlice[T, I]
	sliceWriter[T, I]
}

func MutableBidirectionalSliceOf[T, I any](c collection.MutableBidirectionalCollection[T, I], from, to I) MutableBidirectionalSlice[T, I] {
	return MutableBidirectionalSlice[T, I]{
		BidirectionalSlice: BidirectionalSliceOf[T, I](c, from, to),
		sliceWriter:        sliceWriter[T, I]{mut: c, lo: from, hi: to},
	}
}

func (s MutableBidirectionalSlice[T, I]) Iterator() collection.Iterator[T] {
	return NewIndexingIterator[T, I](s)
}

// MutableRandomAccessSlice is a view over a MutableRandomAccessCollection that writes through to its base.
type MutableRandomAccessSlice[T, I any] struct {
	RandomAccessSlice[T, I]
	sliceWriter[T, I]
}

func MutableRandomAccessSliceOf[T, I any](c collection.MutableRandomAccessCollection[T, I], from, to I) MutableRandomAccessSlice[T, I] {
	return MutableRandomAccessSlice[T, I]{
		RandomAccessSlice: RandomAccessSliceOf[T, I](c, from, to),
		sliceWriter:       sliceWriter[T, I]{mut: c, lo: from, hi: to},
	}
}

func (s MutableRandomAccessSlice[T, I]) Iterator() collection.Iterator[T] {
	return NewIndexingIterator[T, I](s)
}
