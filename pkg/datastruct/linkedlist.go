package datastruct

import (
	"cmp"
	"iter"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/port/collection"
)

// LinkedList is a doubly linked list.
// It is a bidirectional, mutable and range replaceable collection, but not a random access one.
//
// The zero value is an empty list, ready to use.
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

// LinkedListIndex is a position in a LinkedList.
// The end position has no element.
type LinkedListIndex[T any] struct {
	elem *llElem[T]
	ord  int
}

var _ collection.MutableBidirectionalCollection[int, LinkedListIndex[int]] = (*LinkedList[int])(nil)
var _ collection.RangeReplaceableBidirectionalCollection[int, LinkedListIndex[int]] = (*LinkedList[int])(nil)
var _ List[int] = (*LinkedList[int])(nil)

func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) Iterator() collection.Iterator[T] {
	var current = ll.head
	return collection.IteratorFunc[T](func() (T, bool) {
		if current == nil {
			var zero T
			return zero, false
		}
		v := current.data
		current = current.next
		return v, true
	})
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs = make([]T, 0, ll.length)
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) {
	collkit.AppendAll[T, LinkedListIndex[T]](ll, collkit.FromSlice(vs))
}

// Prepend adds the elements to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	collkit.InsertAll[T, LinkedListIndex[T]](ll, collkit.FromSlice(vs), ll.StartIndex())
}

// Len returns the number of elements in the list
func (ll *LinkedList[T]) Len() int {
	return ll.length
}

func (ll *LinkedList[T]) UnderestimatedCount() int { return ll.length }

// Shift removes the first element.
// It reports false when the list is empty.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.length == 0 {
		var zero T
		return zero, false
	}
	return collkit.RemoveFirst[T, LinkedListIndex[T]](ll), true
}

// Pop removes the last element.
// It reports false when the list is empty.
func (ll *LinkedList[T]) Pop() (T, bool) {
	if ll.length == 0 {
		var zero T
		return zero, false
	}
	return collkit.RemoveLast[T, LinkedListIndex[T]](ll), true
}

// Lookup returns the element at the given offset.
// It walks from the closer end of the list.
func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	var i LinkedListIndex[T]
	if index < ll.length/2 {
		i = collkit.IndexOffset[T, LinkedListIndex[T]](ll, ll.StartIndex(), index)
	} else {
		i = collkit.BidirectionalIndexOffset[T, LinkedListIndex[T]](ll, ll.EndIndex(), index-ll.length)
	}
	return i.elem.data, true
}

func (ll *LinkedList[T]) StartIndex() LinkedListIndex[T] {
	return LinkedListIndex[T]{elem: ll.head}
}

func (ll *LinkedList[T]) EndIndex() LinkedListIndex[T] {
	return LinkedListIndex[T]{ord: ll.length}
}

func (ll *LinkedList[T]) At(i LinkedListIndex[T]) T {
	ll.checkElem(i)
	return i.elem.data
}

func (ll *LinkedList[T]) IndexAfter(i LinkedListIndex[T]) LinkedListIndex[T] {
	ll.checkElem(i)
	return LinkedListIndex[T]{elem: i.elem.next, ord: i.ord + 1}
}

func (ll *LinkedList[T]) IndexBefore(i LinkedListIndex[T]) LinkedListIndex[T] {
	if i.ord <= 0 {
		panic(collkit.ErrIndexOutOfRange.F("no position before the start"))
	}
	if i.elem == nil {
		return LinkedListIndex[T]{elem: ll.tail, ord: ll.length - 1}
	}
	return LinkedListIndex[T]{elem: i.elem.prev, ord: i.ord - 1}
}

func (ll *LinkedList[T]) CompareIndex(a, b LinkedListIndex[T]) int {
	return cmp.Compare(a.ord, b.ord)
}

func (ll *LinkedList[T]) Set(i LinkedListIndex[T], v T) {
	ll.checkElem(i)
	i.elem.data = v
}

func (ll *LinkedList[T]) Swap(i, j LinkedListIndex[T]) {
	ll.checkElem(i)
	ll.checkElem(j)
	i.elem.data, j.elem.data = j.elem.data, i.elem.data
}

// ReplaceSubrange unlinks the elements of [from, to) and links the elements of the Sequence in their place.
func (ll *LinkedList[T]) ReplaceSubrange(from, to LinkedListIndex[T], with collection.Sequence[T]) {
	if from.ord < 0 || to.ord < from.ord || ll.length < to.ord {
		panic(collkit.ErrIndexOutOfRange.F("[%d, %d) is outside of the [0, %d] bounds", from.ord, to.ord, ll.length))
	}
	var vs []T
	if with != nil {
		vs = collkit.Collect(with)
	}
	var (
		prev = ll.tail
		next = to.elem
	)
	if from.elem != nil {
		prev = from.elem.prev
	}
	for _, v := range vs {
		elem := &llElem[T]{data: v, prev: prev}
		if prev == nil {
			ll.head = elem
		} else {
			prev.next = elem
		}
		prev = elem
	}
	if prev == nil {
		ll.head = next
	} else {
		prev.next = next
	}
	if next == nil {
		ll.tail = prev
	} else {
		next.prev = prev
	}
	ll.length += len(vs) - (to.ord - from.ord)
}

func (ll *LinkedList[T]) checkElem(i LinkedListIndex[T]) {
	if i.elem == nil {
		panic(collkit.ErrIndexOutOfRange.F("%d is outside of the [0, %d) bounds", i.ord, ll.length))
	}
}
