package collkit

import "go.llib.dev/collkit/port/collection"

// Last returns the last element of the Collection.
func Last[T, I any](c collection.BidirectionalCollection[T, I]) (T, bool) {
	if IsEmpty[T, I](c) {
		var zero T
		return zero, false
	}
	return c.At(c.IndexBefore(c.EndIndex())), true
}

// LastIndex returns the position of the last element that satisfies the predicate.
// The search goes backwards from the end.
func LastIndex[T, I any, FN predicateFunc[T]](c collection.BidirectionalCollection[T, I], pred FN) (I, bool, error) {
	var (
		match = toPredicateFunc[T](pred)
		start = c.StartIndex()
		i     = c.EndIndex()
	)
	for c.CompareIndex(start, i) < 0 {
		i = c.IndexBefore(i)
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

// DropLast returns a view without the last n elements.
// The end of the view is found by stepping backwards from the end,
// the elements before it are never visited.
func DropLast[T, I any](c collection.BidirectionalCollection[T, I], n int) BidirectionalSlice[T, I] {
	checkCount(n)
	end, _ := BidirectionalIndexOffsetLimited[T, I](c, c.EndIndex(), -n, c.StartIndex())
	return BidirectionalSliceOf[T, I](c, c.StartIndex(), end)
}

// Suffix returns a view of the last n elements at most.
func Suffix[T, I any](c collection.BidirectionalCollection[T, I], n int) BidirectionalSlice[T, I] {
	checkCount(n)
	start, _ := BidirectionalIndexOffsetLimited[T, I](c, c.EndIndex(), -n, c.StartIndex())
	return BidirectionalSliceOf[T, I](c, start, c.EndIndex())
}
