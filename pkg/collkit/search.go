package collkit

import "go.llib.dev/collkit/port/collection"

// PartitionPoint returns the position of the first element that satisfies the predicate,
// in a Collection that is already partitioned by it, like the result of Partition or a sorted Collection.
// It returns EndIndex when no element satisfies it.
//
// It is a binary search, with O(log n) predicate calls and O(1) position arithmetic per call.
func PartitionPoint[T, I any](c collection.RandomAccessCollection[T, I], belongsToSecond func(T) bool) I {
	var (
		lo = c.StartIndex()
		n  = c.Distance(lo, c.EndIndex())
	)
	for 0 < n {
		half := n / 2
		mid := c.IndexOffset(lo, half)
		if belongsToSecond(c.At(mid)) {
			n = half
			continue
		}
		lo = c.IndexAfter(mid)
		n -= half + 1
	}
	return lo
}
