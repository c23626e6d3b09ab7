// Package collection defines the capability interfaces for sequential and indexed data access.
//
// The capabilities are layered:
//
//	Iterator -> Sequence -> Collection -> BidirectionalCollection -> RandomAccessCollection
//	                        Collection -> MutableCollection
//	                        Collection -> RangeReplaceableCollection
//
// Each interface only names the primitive operations an implementer must supply.
// Everything that can be expressed on top of the primitives lives in pkg/collkit as free functions,
// which pick the cheapest strategy the given value's capabilities allow.
//
// Positions (indices) are opaque values that only carry meaning for the container that produced them.
// A position obtained before a mutation must not be used after it.
package collection

// Iterator is a cursor that yields at most one element per call until it is exhausted.
// Once Next reported false, it keeps reporting false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// IteratorFunc is a function that satisfies the Iterator interface.
type IteratorFunc[T any] func() (T, bool)

func (fn IteratorFunc[T]) Next() (T, bool) { return fn() }

// Sequence is anything that can produce an Iterator.
//
// A Sequence makes no promise about repeatable iteration.
// Algorithms that only accept a Sequence will never request more than one Iterator from it.
type Sequence[T any] interface {
	Iterator() Iterator[T]
}

// SequenceFunc is a function that satisfies the Sequence interface.
type SequenceFunc[T any] func() Iterator[T]

func (fn SequenceFunc[T]) Iterator() Iterator[T] { return fn() }

// UnderestimatedCounter is an optional interface for sequences
// that know a lower bound of their remaining element count without consuming them.
// The returned value must not be greater than the real element count.
type UnderestimatedCounter interface {
	UnderestimatedCount() int
}

// Counter is an optional interface for containers that know their element count in O(1).
type Counter interface {
	Len() int
}

// Collection is a Sequence that guarantees multiple independent, non-destructive iterations
// and allows positional access to its elements.
//
// StartIndex is the position of the first element, or equal to EndIndex when the collection is empty.
// EndIndex is the "one past the last" position, and must never be passed to At.
// CompareIndex returns a negative number when a is before b, zero when they are equal
// and a positive number when a is after b.
type Collection[T, I any] interface {
	Sequence[T]
	StartIndex() I
	EndIndex() I
	At(i I) T
	IndexAfter(i I) I
	CompareIndex(a, b I) int
}

// BidirectionalCollection is a Collection that can step backwards.
type BidirectionalCollection[T, I any] interface {
	Collection[T, I]
	IndexBefore(i I) I
}

// RandomAccessCollection is a BidirectionalCollection
// which guarantees that IndexOffset and Distance are O(1) operations.
//
// Algorithms like sorting, shuffling and partitioning rely on this guarantee for their own complexity.
type RandomAccessCollection[T, I any] interface {
	BidirectionalCollection[T, I]
	// IndexOffset returns the position that is n steps away from i.
	// A negative n moves backwards.
	IndexOffset(i I, n int) I
	// Distance returns the number of steps needed to get from the "from" position to the "to" position.
	// The result is negative when "to" is before "from".
	Distance(from, to I) int
}

// MutableCollection is a Collection which elements can be replaced in place.
type MutableCollection[T, I any] interface {
	Collection[T, I]
	Set(i I, v T)
	Swap(i, j I)
}

// RangeReplaceableCollection is a Collection where a contiguous span of elements
// can be replaced with an arbitrary number of new elements.
//
// Every size changing operation (append, insert, remove, clear) is derived from ReplaceSubrange.
// Positions computed before a ReplaceSubrange call are invalidated by it.
type RangeReplaceableCollection[T, I any] interface {
	Collection[T, I]
	// ReplaceSubrange replaces the elements in the [from, to) range with the elements of the "with" sequence.
	ReplaceSubrange(from, to I, with Sequence[T])
}

type MutableBidirectionalCollection[T, I any] interface {
	BidirectionalCollection[T, I]
	MutableCollection[T, I]
}

type MutableRandomAccessCollection[T, I any] interface {
	RandomAccessCollection[T, I]
	MutableCollection[T, I]
}

type RangeReplaceableBidirectionalCollection[T, I any] interface {
	BidirectionalCollection[T, I]
	RangeReplaceableCollection[T, I]
}
