package datastruct

import (
	"cmp"
	"iter"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/port/collection"
)

// ForwardList is a singly linked list.
// It can only step forward, so most derived algorithms take their O(n) path on it.
//
// The zero value is an empty list, ready to use.
type ForwardList[T any] struct {
	head   *flElem[T]
	tail   *flElem[T]
	length int
}

type flElem[T any] struct {
	data T
	next *flElem[T]
}

// ForwardListIndex is a position in a ForwardList.
// It remembers the element before it, which makes replacing a range possible without a backward link.
type ForwardListIndex[T any] struct {
	prev *flElem[T]
	elem *flElem[T]
	ord  int
}

var _ collection.MutableCollection[int, ForwardListIndex[int]] = (*ForwardList[int])(nil)
var _ collection.RangeReplaceableCollection[int, ForwardListIndex[int]] = (*ForwardList[int])(nil)
var _ List[int] = (*ForwardList[int])(nil)

func (fl *ForwardList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if fl == nil {
			return
		}
		for current := fl.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (fl *ForwardList[T]) Iterator() collection.Iterator[T] {
	return collkit.NewIndexingIterator[T, ForwardListIndex[T]](fl)
}

func (fl *ForwardList[T]) ToSlice() []T {
	var vs = make([]T, 0, fl.length)
	for v := range fl.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (fl *ForwardList[T]) Append(vs ...T) {
	collkit.AppendAll[T, ForwardListIndex[T]](fl, collkit.FromSlice(vs))
}

func (fl *ForwardList[T]) Prepend(vs ...T) {
	collkit.InsertAll[T, ForwardListIndex[T]](fl, collkit.FromSlice(vs), fl.StartIndex())
}

func (fl *ForwardList[T]) Len() int { return fl.length }

// Shift removes the first element.
// It reports false when the list is empty.
func (fl *ForwardList[T]) Shift() (T, bool) {
	if fl.length == 0 {
		var zero T
		return zero, false
	}
	return collkit.RemoveFirst[T, ForwardListIndex[T]](fl), true
}

func (fl *ForwardList[T]) StartIndex() ForwardListIndex[T] {
	return ForwardListIndex[T]{elem: fl.head}
}

func (fl *ForwardList[T]) EndIndex() ForwardListIndex[T] {
	return ForwardListIndex[T]{prev: fl.tail, ord: fl.length}
}

func (fl *ForwardList[T]) At(i ForwardListIndex[T]) T {
	fl.checkElem(i)
	return i.elem.data
}

func (fl *ForwardList[T]) IndexAfter(i ForwardListIndex[T]) ForwardListIndex[T] {
	fl.checkElem(i)
	return ForwardListIndex[T]{prev: i.elem, elem: i.elem.next, ord: i.ord + 1}
}

func (fl *ForwardList[T]) CompareIndex(a, b ForwardListIndex[T]) int {
	return cmp.Compare(a.ord, b.ord)
}

func (fl *ForwardList[T]) Set(i ForwardListIndex[T], v T) {
	fl.checkElem(i)
	i.elem.data = v
}

func (fl *ForwardList[T]) Swap(i, j ForwardListIndex[T]) {
	fl.checkElem(i)
	fl.checkElem(j)
	i.elem.data, j.elem.data = j.elem.data, i.elem.data
}

// ReplaceSubrange links the elements of the Sequence between the element before "from" and the element at "to".
func (fl *ForwardList[T]) ReplaceSubrange(from, to ForwardListIndex[T], with collection.Sequence[T]) {
	if from.ord < 0 || to.ord < from.ord || fl.length < to.ord {
		panic(collkit.ErrIndexOutOfRange.F("[%d, %d) is outside of the [0, %d] bounds", from.ord, to.ord, fl.length))
	}
	var vs []T
	if with != nil {
		vs = collkit.Collect(with)
	}
	var (
		prev = from.prev
		next = to.elem
	)
	for _, v := range vs {
		elem := &flElem[T]{data: v}
		if prev == nil {
			fl.head = elem
		} else {
			prev.next = elem
		}
		prev = elem
	}
	if prev == nil {
		fl.head = next
	} else {
		prev.next = next
	}
	if next == nil {
		fl.tail = prev
	}
	fl.length += len(vs) - (to.ord - from.ord)
}

func (fl *ForwardList[T]) checkElem(i ForwardListIndex[T]) {
	if i.elem == nil {
		panic(collkit.ErrIndexOutOfRange.F("%d is outside of the [0, %d) bounds", i.ord, fl.length))
	}
}
