package datastruct

import (
	"cmp"
	"iter"

	"github.com/bits-and-blooms/bitset"
	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/port/collection"
)

// BitArray is an array of booleans, packed into a bitset.
// It is a random access, mutable and range replaceable collection, with integer positions.
type BitArray struct {
	bits *bitset.BitSet
}

var _ collection.MutableRandomAccessCollection[bool, int] = (*BitArray)(nil)
var _ collection.RangeReplaceableBidirectionalCollection[bool, int] = (*BitArray)(nil)
var _ List[bool] = (*BitArray)(nil)

// NewBitArray makes a BitArray from the given values.
func NewBitArray(vs ...bool) *BitArray {
	bits := bitset.New(uint(len(vs)))
	for i, v := range vs {
		if v {
			bits.Set(uint(i))
		}
	}
	return &BitArray{bits: bits}
}

func (a *BitArray) set() *bitset.BitSet {
	if a.bits == nil {
		a.bits = bitset.New(0)
	}
	return a.bits
}

// Clone returns an independent copy of the BitArray.
func (a *BitArray) Clone() *BitArray {
	return &BitArray{bits: a.set().Clone()}
}

// Count returns the number of true values.
func (a *BitArray) Count() int {
	return int(a.set().Count())
}

func (a *BitArray) Len() int { return int(a.set().Len()) }

func (a *BitArray) UnderestimatedCount() int { return a.Len() }

func (a *BitArray) Iterator() collection.Iterator[bool] {
	return collkit.NewIndexingIterator[bool, int](a)
}

func (a *BitArray) Iter() iter.Seq[bool] {
	return collkit.Values[bool](a)
}

func (a *BitArray) ToSlice() []bool {
	return collkit.Collect[bool](a)
}

func (a *BitArray) Append(vs ...bool) {
	collkit.AppendAll[bool, int](a, collkit.FromSlice(vs))
}

func (a *BitArray) StartIndex() int { return 0 }

func (a *BitArray) EndIndex() int { return a.Len() }

func (a *BitArray) At(i int) bool {
	a.checkIndex(i)
	return a.set().Test(uint(i))
}

func (a *BitArray) IndexAfter(i int) int { return a.IndexOffset(i, 1) }

func (a *BitArray) IndexBefore(i int) int { return a.IndexOffset(i, -1) }

func (a *BitArray) IndexOffset(i int, n int) int {
	o := i + n
	if o < 0 || a.Len() < o {
		panic(collkit.ErrIndexOutOfRange.F("offsetting %d by %d is outside of the [0, %d] bounds", i, n, a.Len()))
	}
	return o
}

func (a *BitArray) Distance(from, to int) int { return to - from }

func (a *BitArray) CompareIndex(x, y int) int { return cmp.Compare(x, y) }

func (a *BitArray) Set(i int, v bool) {
	a.checkIndex(i)
	a.set().SetTo(uint(i), v)
}

func (a *BitArray) Swap(i, j int) {
	a.checkIndex(i)
	a.checkIndex(j)
	bits := a.set()
	vi, vj := bits.Test(uint(i)), bits.Test(uint(j))
	bits.SetTo(uint(i), vj)
	bits.SetTo(uint(j), vi)
}

// ReplaceSubrange builds a new bitset from the bits before "from",
// the values of the Sequence, and the bits after "to".
func (a *BitArray) ReplaceSubrange(from, to int, with collection.Sequence[bool]) {
	if from < 0 || to < from || a.Len() < to {
		panic(collkit.ErrIndexOutOfRange.F("[%d, %d) is outside of the [0, %d] bounds", from, to, a.Len()))
	}
	var vs []bool
	if with != nil {
		vs = collkit.Collect(with)
	}
	var (
		old    = a.set()
		length = a.Len() - (to - from) + len(vs)
		bits   = bitset.New(uint(length))
		at     uint
	)
	for i := uint(0); i < uint(from); i, at = i+1, at+1 {
		bits.SetTo(at, old.Test(i))
	}
	for _, v := range vs {
		bits.SetTo(at, v)
		at++
	}
	for i := uint(to); i < old.Len(); i, at = i+1, at+1 {
		bits.SetTo(at, old.Test(i))
	}
	a.bits = bits
}

func (a *BitArray) checkIndex(i int) {
	if i < 0 || a.Len() <= i {
		panic(collkit.ErrIndexOutOfRange.F("%d is outside of the [0, %d) bounds", i, a.Len()))
	}
}
