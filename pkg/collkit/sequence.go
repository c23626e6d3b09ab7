package collkit

import (
	"iter"

	"go.llib.dev/collkit/port/collection"
)

// FromSlice returns a Sequence over the elements of a slice.
// The slice is not copied.
func FromSlice[T any](vs []T) collection.Sequence[T] {
	return sliceSequence[T](vs)
}

type sliceSequence[T any] []T

func (s sliceSequence[T]) Iterator() collection.Iterator[T] {
	var i int
	return collection.IteratorFunc[T](func() (T, bool) {
		if len(s) <= i {
			var zero T
			return zero, false
		}
		v := s[i]
		i++
		return v, true
	})
}

func (s sliceSequence[T]) UnderestimatedCount() int { return len(s) }

// FromPull turns a pull function into a Sequence.
//
// The returned Sequence is single-use,
// every Iterator it makes continues where the previous one stopped.
func FromPull[T any](next func() (T, bool)) collection.Sequence[T] {
	var it collection.Iterator[T] = collection.IteratorFunc[T](next)
	return collection.SequenceFunc[T](func() collection.Iterator[T] { return it })
}

// FromIter turns an iter.Seq into a Sequence.
// Every Iterator starts a new pass over seq.
//
// The returned PullIterator releases its resources once it is exhausted.
// An Iterator that is abandoned early must be stopped with Stop.
func FromIter[T any](seq iter.Seq[T]) collection.Sequence[T] {
	return collection.SequenceFunc[T](func() collection.Iterator[T] {
		next, stop := iter.Pull(seq)
		return &PullIterator[T]{next: next, stop: stop}
	})
}

type PullIterator[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (i *PullIterator[T]) Next() (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	v, ok := i.next()
	if !ok {
		i.Stop()
	}
	return v, ok
}

// Stop ends the iteration early.
func (i *PullIterator[T]) Stop() {
	if i.done {
		return
	}
	i.done = true
	i.stop()
}

// Values returns an iter.Seq that walks through the Sequence,
// so it can be used in a for range loop.
func Values[T any](s collection.Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Empty is a Sequence without elements.
func Empty[T any]() collection.Sequence[T] {
	return Repeat(*new(T), 0)
}

// Just is a Sequence with a single element.
func Just[T any](v T) collection.Sequence[T] {
	return Repeat(v, 1)
}

// Repeat returns a Sequence that yields v n times.
func Repeat[T any](v T, n int) collection.Sequence[T] {
	checkCount(n)
	return repeated[T]{v: v, n: n}
}

type repeated[T any] struct {
	v T
	n int
}

func (r repeated[T]) Iterator() collection.Iterator[T] {
	var left = r.n
	return collection.IteratorFunc[T](func() (T, bool) {
		if left <= 0 {
			var zero T
			return zero, false
		}
		left--
		return r.v, true
	})
}

func (r repeated[T]) UnderestimatedCount() int { return r.n }

// UnderestimatedCount returns a lower bound of the element count of the Sequence without consuming it.
// When the Sequence has no way to tell, it returns zero.
func UnderestimatedCount[T any](s collection.Sequence[T]) int {
	switch s := s.(type) {
	case collection.UnderestimatedCounter:
		return max(0, s.UnderestimatedCount())
	case collection.Counter:
		return s.Len()
	default:
		return 0
	}
}

// ForEach calls fn with every element of the Sequence from left to right.
func ForEach[T any, FN eachFunc[T]](s collection.Sequence[T], fn FN) error {
	var (
		each = toEachFunc[T](fn)
		it   = s.Iterator()
	)
	for {
		v, ok := it.Next()
		if !ok {
			return nil
		}
		if err := each(v); err != nil {
			return err
		}
	}
}

// Map will do a mapping from an input type into an output type.
func Map[O, T any, FN mapFunc[O, T]](s collection.Sequence[T], fn FN) ([]O, error) {
	var (
		mapper = toMapFunc[O, T](fn)
		out    = make([]O, 0, UnderestimatedCount(s))
		it     = s.Iterator()
	)
	for {
		v, ok := it.Next()
		if !ok {
			return out, nil
		}
		o, err := mapper(v)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
}

// Filter collects the elements which the predicate accepts.
func Filter[T any, FN predicateFunc[T]](s collection.Sequence[T], pred FN) ([]T, error) {
	var (
		filter = toPredicateFunc[T](pred)
		out    = make([]T, 0, UnderestimatedCount(s))
		it     = s.Iterator()
	)
	for {
		v, ok := it.Next()
		if !ok {
			return out, nil
		}
		keep, err := filter(v)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, v)
		}
	}
}

// Reduce iterates over a Sequence, combining elements using the reducer function.
func Reduce[R, T any, FN reduceFunc[R, T]](s collection.Sequence[T], initial R, fn FN) (R, error) {
	var (
		result  = initial
		reducer = toReduceFunc[R, T](fn)
		it      = s.Iterator()
	)
	for {
		v, ok := it.Next()
		if !ok {
			return result, nil
		}
		r, err := reducer(result, v)
		if err != nil {
			return result, err
		}
		result = r
	}
}

// Collect consumes the Sequence and returns its elements as a slice.
func Collect[T any](s collection.Sequence[T]) []T {
	var (
		vs = make([]T, 0, UnderestimatedCount(s))
		it = s.Iterator()
	)
	for {
		v, ok := it.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

// Len will iterate over and count the elements of the Sequence.
// For a Collection, prefer Count, which uses the cheapest available strategy.
func Len[T any](s collection.Sequence[T]) int {
	if c, ok := s.(collection.Counter); ok {
		return c.Len()
	}
	var (
		n  int
		it = s.Iterator()
	)
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// First returns the first element of the Sequence.
func First[T any](s collection.Sequence[T]) (T, bool) {
	return s.Iterator().Next()
}

// FirstWhere returns the first element that satisfies the predicate.
func FirstWhere[T any, FN predicateFunc[T]](s collection.Sequence[T], pred FN) (T, bool, error) {
	var (
		match = toPredicateFunc[T](pred)
		it    = s.Iterator()
	)
	for {
		v, ok := it.Next()
		if !ok {
			return v, false, nil
		}
		found, err := match(v)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if found {
			return v, true, nil
		}
	}
}

// ContainsFunc reports whether any element satisfies the predicate.
func ContainsFunc[T any, FN predicateFunc[T]](s collection.Sequence[T], pred FN) (bool, error) {
	_, ok, err := FirstWhere(s, pred)
	return ok, err
}

// Contains reports whether v is an element of the Sequence.
func Contains[T comparable](s collection.Sequence[T], v T) bool {
	ok, _ := ContainsFunc(s, func(e T) bool { return e == v })
	return ok
}

// AllSatisfy reports whether every element satisfies the predicate.
// An empty Sequence satisfies any predicate.
func AllSatisfy[T any, FN predicateFunc[T]](s collection.Sequence[T], pred FN) (bool, error) {
	var match = toPredicateFunc[T](pred)
	ok, err := ContainsFunc(s, func(v T) (bool, error) {
		ok, err := match(v)
		return !ok, err
	})
	return !ok && err == nil, err
}

// ElementsEqual reports whether the two sequences yield the same elements in the same order.
func ElementsEqual[T comparable](a, b collection.Sequence[T]) bool {
	return ElementsEqualFunc(a, b, func(x, y T) bool { return x == y })
}

func ElementsEqualFunc[A, B any](a collection.Sequence[A], b collection.Sequence[B], eq func(A, B) bool) bool {
	var itA, itB = a.Iterator(), b.Iterator()
	for {
		x, okA := itA.Next()
		y, okB := itB.Next()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !eq(x, y) {
			return false
		}
	}
}

// MinFunc returns the smallest element according to the cmp function.
// When multiple elements are equally minimal, the first one is returned.
func MinFunc[T any](s collection.Sequence[T], cmp func(a, b T) int) (T, bool) {
	return extreme(s, func(candidate, current T) bool { return cmp(candidate, current) < 0 })
}

// MaxFunc returns the biggest element according to the cmp function.
// When multiple elements are equally maximal, the last one is returned.
func MaxFunc[T any](s collection.Sequence[T], cmp func(a, b T) int) (T, bool) {
	return extreme(s, func(candidate, current T) bool { return 0 <= cmp(candidate, current) })
}

func extreme[T any](s collection.Sequence[T], replace func(candidate, current T) bool) (T, bool) {
	var it = s.Iterator()
	result, ok := it.Next()
	if !ok {
		return result, false
	}
	for {
		v, ok := it.Next()
		if !ok {
			return result, true
		}
		if replace(v, result) {
			result = v
		}
	}
}

// Enumerated is an element paired with its zero based offset in the Sequence.
type Enumerated[T any] struct {
	Offset  int
	Element T
}

// Enumerate pairs every element with its offset.
func Enumerate[T any](s collection.Sequence[T]) collection.Sequence[Enumerated[T]] {
	return collection.SequenceFunc[Enumerated[T]](func() collection.Iterator[Enumerated[T]] {
		var (
			it     = s.Iterator()
			offset int
		)
		return collection.IteratorFunc[Enumerated[T]](func() (Enumerated[T], bool) {
			v, ok := it.Next()
			if !ok {
				return Enumerated[T]{}, false
			}
			e := Enumerated[T]{Offset: offset, Element: v}
			offset++
			return e, true
		})
	})
}
