// Package collkit implements the algorithms that are derivable from the capability interfaces of port/collection.
//
// Every function here is written purely in terms of the primitives of the capability it accepts.
// When a value also satisfies a stronger capability, the cheaper strategy is picked.
// For example, Distance walks position by position for a plain Collection,
// but it is an O(1) call for a RandomAccessCollection.
//
// Moving backwards is only offered for a BidirectionalCollection,
// through the Bidirectional* variants, such as BidirectionalIndexOffset.
// The forward only functions reject a negative count.
//
// # Closures
//
// Algorithms that call back into user code accept both the infallible and the fallible form of a closure,
// such as func(T) bool and func(T) (bool, error).
// An error from a fallible closure stops the algorithm immediately, and it is returned as is.
//
// # Contract violations
//
// Using an out of range position, removing from an empty collection,
// or asking for a negative count are programming errors.
// They are not reported as error values, but through a panic with one of the Err* constants of this package.
// A position is only valid until the collection that produced it is mutated,
// and this precondition is not checked at runtime.
package collkit

import (
	"go.llib.dev/collkit/pkg/errorkit"
	"go.llib.dev/collkit/port/collection"
)

const (
	ErrIndexOutOfRange errorkit.Error = "collkit: index out of range"
	ErrInvalidRange    errorkit.Error = "collkit: range start is after range end"
	ErrNegativeCount   errorkit.Error = "collkit: negative count"
	ErrEmptyCollection errorkit.Error = "collkit: collection is empty"
)

func checkIndex[T, I any](c collection.Collection[T, I], i I) {
	if c.CompareIndex(i, c.StartIndex()) < 0 || 0 <= c.CompareIndex(i, c.EndIndex()) {
		panic(ErrIndexOutOfRange.F("%v is outside of the [%v, %v) bounds", i, c.StartIndex(), c.EndIndex()))
	}
}

// checkRange verifies that [from, to) is a valid range in the collection.
func checkRange[T, I any](c collection.Collection[T, I], from, to I) {
	if 0 < c.CompareIndex(from, to) {
		panic(ErrInvalidRange.F("%v > %v", from, to))
	}
	if c.CompareIndex(from, c.StartIndex()) < 0 || 0 < c.CompareIndex(to, c.EndIndex()) {
		panic(ErrIndexOutOfRange.F("[%v, %v) is outside of the [%v, %v] bounds", from, to, c.StartIndex(), c.EndIndex()))
	}
}

func checkCount(n int) {
	if n < 0 {
		panic(ErrNegativeCount.F("%d", n))
	}
}
