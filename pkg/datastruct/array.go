package datastruct

import (
	"cmp"
	"iter"
	"slices"
	"sync/atomic"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/port/collection"
)

// Array is a slice backed, random access, mutable and range replaceable container.
// Its positions are the integer offsets of the elements.
//
// Clone makes a copy in O(1), which shares the backing buffer with the original.
// The first mutation on either side copies the buffer, so the other side never observes it.
// Assigning an Array value with "=" is not a Clone, both values use the same buffer without tracking it.
// A dropped Clone keeps its share of the buffer, so the next mutation of the original still copies.
// Release the Clone to avoid that.
//
// The zero value is an empty Array, ready to use.
type Array[T any] struct {
	buf *arrayBuffer[T]
}

type arrayBuffer[T any] struct {
	vs   []T
	refs atomic.Int64
}

func newArrayBuffer[T any](vs []T) *arrayBuffer[T] {
	b := &arrayBuffer[T]{vs: vs}
	b.refs.Store(1)
	return b
}

var _ collection.MutableRandomAccessCollection[int, int] = (*Array[int])(nil)
var _ collection.RangeReplaceableBidirectionalCollection[int, int] = (*Array[int])(nil)
var _ List[int] = (*Array[int])(nil)

// NewArray makes an Array from the given values.
func NewArray[T any](vs ...T) *Array[T] {
	return &Array[T]{buf: newArrayBuffer(slices.Clone(vs))}
}

// ArrayFrom makes an Array from the elements of a Sequence.
func ArrayFrom[T any](s collection.Sequence[T]) *Array[T] {
	return &Array[T]{buf: newArrayBuffer(collkit.Collect(s))}
}

// ArrayRepeating makes an Array that holds v n times.
func ArrayRepeating[T any](v T, n int) *Array[T] {
	var a Array[T]
	collkit.AppendRepeating[T, int](&a, v, n)
	return &a
}

func (a *Array[T]) values() []T {
	if a.buf == nil {
		return nil
	}
	return a.buf.vs
}

// Clone returns a copy of the Array that shares the backing buffer until one of them is mutated.
func (a *Array[T]) Clone() *Array[T] {
	if a.buf == nil {
		return &Array[T]{}
	}
	a.buf.refs.Add(1)
	return &Array[T]{buf: a.buf}
}

// Release gives up the Array's share of the backing buffer, and leaves the Array empty.
// Calling it on a Clone that is no longer needed
// lets the remaining owner of the buffer mutate it without making a copy.
func (a *Array[T]) Release() {
	if a.buf == nil {
		return
	}
	a.buf.refs.Add(-1)
	a.buf = nil
}

// makeUnique ensures that the Array is the sole owner of its buffer before a mutation.
func (a *Array[T]) makeUnique() {
	if a.buf == nil {
		a.buf = newArrayBuffer[T](nil)
		return
	}
	if a.buf.refs.Load() == 1 {
		return
	}
	shared := a.buf
	a.buf = newArrayBuffer(slices.Clone(shared.vs))
	shared.refs.Add(-1)
}

func (a *Array[T]) Iterator() collection.Iterator[T] {
	return collkit.FromSlice(a.values()).Iterator()
}

func (a *Array[T]) Iter() iter.Seq[T] {
	return slices.Values(a.values())
}

func (a *Array[T]) ToSlice() []T {
	return append(make([]T, 0, a.Len()), a.values()...)
}

func (a *Array[T]) Len() int { return len(a.values()) }

func (a *Array[T]) UnderestimatedCount() int { return a.Len() }

func (a *Array[T]) StartIndex() int { return 0 }

func (a *Array[T]) EndIndex() int { return a.Len() }

func (a *Array[T]) At(i int) T {
	a.checkIndex(i)
	return a.values()[i]
}

// Lookup is the non panicking variant of At.
func (a *Array[T]) Lookup(i int) (T, bool) {
	if i < 0 || a.Len() <= i {
		var zero T
		return zero, false
	}
	return a.values()[i], true
}

func (a *Array[T]) IndexAfter(i int) int { return a.IndexOffset(i, 1) }

func (a *Array[T]) IndexBefore(i int) int { return a.IndexOffset(i, -1) }

func (a *Array[T]) IndexOffset(i int, n int) int {
	o := i + n
	if o < 0 || a.Len() < o {
		panic(collkit.ErrIndexOutOfRange.F("offsetting %d by %d is outside of the [0, %d] bounds", i, n, a.Len()))
	}
	return o
}

func (a *Array[T]) Distance(from, to int) int { return to - from }

func (a *Array[T]) CompareIndex(x, y int) int { return cmp.Compare(x, y) }

func (a *Array[T]) Set(i int, v T) {
	a.checkIndex(i)
	a.makeUnique()
	a.buf.vs[i] = v
}

func (a *Array[T]) Swap(i, j int) {
	a.checkIndex(i)
	a.checkIndex(j)
	if i == j {
		return
	}
	a.makeUnique()
	a.buf.vs[i], a.buf.vs[j] = a.buf.vs[j], a.buf.vs[i]
}

// ReplaceSubrange replaces the elements in [from, to) with the elements of the Sequence.
// The Sequence is consumed before the Array is touched,
// so it can be a view of the Array itself.
func (a *Array[T]) ReplaceSubrange(from, to int, with collection.Sequence[T]) {
	if from < 0 || to < from || a.Len() < to {
		panic(collkit.ErrIndexOutOfRange.F("[%d, %d) is outside of the [0, %d] bounds", from, to, a.Len()))
	}
	var vs []T
	if with != nil {
		vs = collkit.Collect(with)
	}
	a.makeUnique()
	a.buf.vs = slices.Replace(a.buf.vs, from, to, vs...)
}

func (a *Array[T]) Append(vs ...T) {
	collkit.AppendAll[T, int](a, collkit.FromSlice(vs))
}

// Subrange returns a mutable view over the [from, to) range of a Clone.
// Writing through the view leaves the original Array unchanged.
// Use AssignSubrange to write the view back.
//
// The view holds a share of the buffer until it is mutated or released,
// so Release a view that is no longer needed.
func (a *Array[T]) Subrange(from, to int) ArraySubrange[T] {
	clone := a.Clone()
	return ArraySubrange[T]{
		MutableRandomAccessSlice: collkit.MutableRandomAccessSliceOf[T, int](clone, from, to),
		clone:                    clone,
	}
}

// ArraySubrange is the view returned by Array.Subrange.
type ArraySubrange[T any] struct {
	collkit.MutableRandomAccessSlice[T, int]
	clone *Array[T]
}

// Release gives up the view's share of the buffer.
// The view must not be used afterwards.
func (s ArraySubrange[T]) Release() { s.clone.Release() }

// AssignSubrange writes the elements of the Collection into [from, to), position by position.
// The length of the Array doesn't change.
// It returns the number of written elements.
func AssignSubrange[T, J any](a *Array[T], from, to int, src collection.Collection[T, J]) int {
	return collkit.AssignSubrange[T, int, J](a, from, to, src)
}

func (a *Array[T]) checkIndex(i int) {
	if i < 0 || a.Len() <= i {
		panic(collkit.ErrIndexOutOfRange.F("%d is outside of the [0, %d) bounds", i, a.Len()))
	}
}
