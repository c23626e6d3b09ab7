package collkit

import "go.llib.dev/collkit/port/collection"

// Append adds v to the end of the Collection.
func Append[T, I any](c collection.RangeReplaceableCollection[T, I], v T) {
	end := c.EndIndex()
	c.ReplaceSubrange(end, end, Just(v))
}

// AppendAll adds the elements of the Sequence to the end of the Collection.
func AppendAll[T, I any](c collection.RangeReplaceableCollection[T, I], s collection.Sequence[T]) {
	end := c.EndIndex()
	c.ReplaceSubrange(end, end, s)
}

// AppendRepeating adds v n times to the end of the Collection.
func AppendRepeating[T, I any](c collection.RangeReplaceableCollection[T, I], v T, n int) {
	AppendAll[T, I](c, Repeat(v, n))
}

// Insert inserts v at the given position.
// Inserting at EndIndex is the same as appending.
func Insert[T, I any](c collection.RangeReplaceableCollection[T, I], v T, at I) {
	InsertAll[T, I](c, Just(v), at)
}

// InsertAll inserts the elements of the Sequence at the given position.
func InsertAll[T, I any](c collection.RangeReplaceableCollection[T, I], s collection.Sequence[T], at I) {
	checkRange[T, I](c, at, at)
	c.ReplaceSubrange(at, at, s)
}

// Remove removes the element at the given position and returns it.
func Remove[T, I any](c collection.RangeReplaceableCollection[T, I], at I) T {
	checkIndex[T, I](c, at)
	v := c.At(at)
	c.ReplaceSubrange(at, c.IndexAfter(at), Empty[T]())
	return v
}

// RemoveSubrange removes the elements of the [from, to) range.
func RemoveSubrange[T, I any](c collection.RangeReplaceableCollection[T, I], from, to I) {
	checkRange[T, I](c, from, to)
	c.ReplaceSubrange(from, to, Empty[T]())
}

// RemoveAll removes every element from the Collection.
func RemoveAll[T, I any](c collection.RangeReplaceableCollection[T, I]) {
	c.ReplaceSubrange(c.StartIndex(), c.EndIndex(), Empty[T]())
}

// RemoveWhere removes every element that satisfies the predicate.
// The order of the remaining elements is kept.
// When the predicate fails, the Collection is left untouched.
func RemoveWhere[T, I any, FN predicateFunc[T]](c collection.RangeReplaceableCollection[T, I], pred FN) error {
	var remove = toPredicateFunc[T](pred)
	kept, err := Filter[T](c, func(v T) (bool, error) {
		ok, err := remove(v)
		return !ok, err
	})
	if err != nil {
		return err
	}
	c.ReplaceSubrange(c.StartIndex(), c.EndIndex(), FromSlice(kept))
	return nil
}

// RemoveFirst removes the first element and returns it.
// The Collection must not be empty.
func RemoveFirst[T, I any](c collection.RangeReplaceableCollection[T, I]) T {
	if IsEmpty[T, I](c) {
		panic(ErrEmptyCollection.F("can't remove the first element"))
	}
	return Remove[T, I](c, c.StartIndex())
}

// RemoveFirstN removes the first n elements.
// The Collection must have at least n elements.
func RemoveFirstN[T, I any](c collection.RangeReplaceableCollection[T, I], n int) {
	checkCount(n)
	if n == 0 {
		return
	}
	end, ok := IndexOffsetLimited[T, I](c, c.StartIndex(), n, c.EndIndex())
	if !ok {
		panic(ErrIndexOutOfRange.F("can't remove %d elements, the collection has fewer", n))
	}
	RemoveSubrange[T, I](c, c.StartIndex(), end)
}

// RemoveLast removes the last element and returns it.
// The Collection must not be empty.
func RemoveLast[T, I any](c collection.RangeReplaceableBidirectionalCollection[T, I]) T {
	if IsEmpty[T, I](c) {
		panic(ErrEmptyCollection.F("can't remove the last element"))
	}
	return Remove[T, I](c, c.IndexBefore(c.EndIndex()))
}

// RemoveLastN removes the last n elements.
// The start of the removed range is found by stepping backwards from the end.
func RemoveLastN[T, I any](c collection.RangeReplaceableBidirectionalCollection[T, I], n int) {
	checkCount(n)
	if n == 0 {
		return
	}
	start, ok := BidirectionalIndexOffsetLimited[T, I](c, c.EndIndex(), -n, c.StartIndex())
	if !ok {
		panic(ErrIndexOutOfRange.F("can't remove %d elements, the collection has fewer", n))
	}
	RemoveSubrange[T, I](c, start, c.EndIndex())
}

// Replace replaces the elements of the [from, to) range with the elements of the Sequence.
// The number of removed and inserted elements may differ.
func Replace[T, I any](c collection.RangeReplaceableCollection[T, I], from, to I, with collection.Sequence[T]) {
	checkRange[T, I](c, from, to)
	if with == nil {
		with = Empty[T]()
	}
	c.ReplaceSubrange(from, to, with)
}
