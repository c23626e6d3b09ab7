package collkit

import "go.llib.dev/collkit/port/collection"

// ReversedIndex is a position in a reversed view.
// It wraps the base position that is right after the element it points to.
type ReversedIndex[I any] struct {
	Base I
}

// Reversed returns a view that presents the elements of the Collection in reverse order.
// Making the view is O(1), and iterating it costs the same as iterating the base.
func Reversed[T, I any](c collection.BidirectionalCollection[T, I]) ReversedCollection[T, I] {
	return ReversedCollection[T, I]{base: c}
}

type ReversedCollection[T, I any] struct {
	base collection.BidirectionalCollection[T, I]
}

func (r ReversedCollection[T, I]) Iterator() collection.Iterator[T] {
	var start, pos = r.base.StartIndex(), r.base.EndIndex()
	return collection.IteratorFunc[T](func() (T, bool) {
		if r.base.CompareIndex(pos, start) <= 0 {
			var zero T
			return zero, false
		}
		pos = r.base.IndexBefore(pos)
		return r.base.At(pos), true
	})
}

func (r ReversedCollection[T, I]) StartIndex() ReversedIndex[I] {
	return ReversedIndex[I]{Base: r.base.EndIndex()}
}

func (r ReversedCollection[T, I]) EndIndex() ReversedIndex[I] {
	return ReversedIndex[I]{Base: r.base.StartIndex()}
}

func (r ReversedCollection[T, I]) At(i ReversedIndex[I]) T {
	return r.base.At(r.base.IndexBefore(i.Base))
}

func (r ReversedCollection[T, I]) IndexAfter(i ReversedIndex[I]) ReversedIndex[I] {
	return ReversedIndex[I]{Base: r.base.IndexBefore(i.Base)}
}

func (r ReversedCollection[T, I]) IndexBefore(i ReversedIndex[I]) ReversedIndex[I] {
	return ReversedIndex[I]{Base: r.base.IndexAfter(i.Base)}
}

func (r ReversedCollection[T, I]) CompareIndex(a, b ReversedIndex[I]) int {
	return r.base.CompareIndex(b.Base, a.Base)
}

func (r ReversedCollection[T, I]) UnderestimatedCount() int {
	return UnderestimatedCount[T](r.base)
}

// Base returns the Collection the view is looking into.
func (r ReversedCollection[T, I]) Base() collection.BidirectionalCollection[T, I] {
	return r.base
}

// RandomAccessReversed is the random access variant of Reversed.
func RandomAccessReversed[T, I any](c collection.RandomAccessCollection[T, I]) RandomAccessReversedCollection[T, I] {
	return RandomAccessReversedCollection[T, I]{
		ReversedCollection: ReversedCollection[T, I]{base: c},
		ra:                 c,
	}
}

type RandomAccessReversedCollection[T, I any] struct {
	ReversedCollection[T, I]
	ra collection.RandomAccessCollection[T, I]
}

func (r RandomAccessReversedCollection[T, I]) IndexOffset(i ReversedIndex[I], n int) ReversedIndex[I] {
	return ReversedIndex[I]{Base: r.ra.IndexOffset(i.Base, -n)}
}

func (r RandomAccessReversedCollection[T, I]) Distance(from, to ReversedIndex[I]) int {
	return r.ra.Distance(to.Base, from.Base)
}

func (r RandomAccessReversedCollection[T, I]) Len() int {
	return r.ra.Distance(r.ra.StartIndex(), r.ra.EndIndex())
}

func (r RandomAccessReversedCollection[T, I]) UnderestimatedCount() int { return r.Len() }
