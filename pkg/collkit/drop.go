package collkit

import "go.llib.dev/collkit/port/collection"

// DropFirst returns a Sequence that skips the first n elements of the base Sequence.
//
// The skipping happens when an Iterator is requested.
// Dropping from an already dropping Sequence does not nest,
// the result drops the sum of both counts from the original base.
func DropFirst[T any](s collection.Sequence[T], n int) *DropFirstSequence[T] {
	checkCount(n)
	if d, ok := s.(*DropFirstSequence[T]); ok {
		return &DropFirstSequence[T]{base: d.base, n: d.n + n}
	}
	return &DropFirstSequence[T]{base: s, n: n}
}

type DropFirstSequence[T any] struct {
	base collection.Sequence[T]
	n    int
}

func (s *DropFirstSequence[T]) Iterator() collection.Iterator[T] {
	it := s.base.Iterator()
	for i := 0; i < s.n; i++ {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	return it
}

func (s *DropFirstSequence[T]) UnderestimatedCount() int {
	return max(0, UnderestimatedCount(s.base)-s.n)
}

// Prefix returns a Sequence that yields at most n elements of the base Sequence.
// It is safe to use with unbounded sequences.
func Prefix[T any](s collection.Sequence[T], n int) *PrefixSequence[T] {
	checkCount(n)
	if p, ok := s.(*PrefixSequence[T]); ok {
		return &PrefixSequence[T]{base: p.base, n: min(p.n, n)}
	}
	return &PrefixSequence[T]{base: s, n: n}
}

type PrefixSequence[T any] struct {
	base collection.Sequence[T]
	n    int
}

func (s *PrefixSequence[T]) Iterator() collection.Iterator[T] {
	var (
		it    = s.base.Iterator()
		taken int
	)
	return collection.IteratorFunc[T](func() (T, bool) {
		if s.n <= taken {
			var zero T
			return zero, false
		}
		v, ok := it.Next()
		if !ok {
			taken = s.n
			return v, false
		}
		taken++
		return v, true
	})
}

func (s *PrefixSequence[T]) UnderestimatedCount() int {
	return min(s.n, UnderestimatedCount(s.base))
}

// DropWhile skips the leading elements that satisfy the predicate.
//
// The skipping is done eagerly, at the time of the call,
// and the first element that didn't match is kept together with the remaining cursor.
// Because of this, the returned Sequence is single-use.
func DropWhile[T any, FN predicateFunc[T]](s collection.Sequence[T], pred FN) (*DropWhileSequence[T], error) {
	var (
		drop = toPredicateFunc[T](pred)
		it   = s.Iterator()
	)
	for {
		v, ok := it.Next()
		if !ok {
			return &DropWhileSequence[T]{rest: it}, nil
		}
		dropping, err := drop(v)
		if err != nil {
			return nil, err
		}
		if !dropping {
			return &DropWhileSequence[T]{first: v, hasFirst: true, rest: it}, nil
		}
	}
}

type DropWhileSequence[T any] struct {
	first    T
	hasFirst bool
	rest     collection.Iterator[T]
}

func (s *DropWhileSequence[T]) Iterator() collection.Iterator[T] {
	return collection.IteratorFunc[T](func() (T, bool) {
		if s.hasFirst {
			s.hasFirst = false
			return s.first, true
		}
		return s.rest.Next()
	})
}

// PrefixWhile collects the leading elements that satisfy the predicate.
// The iteration stops at the first element that doesn't.
func PrefixWhile[T any, FN predicateFunc[T]](s collection.Sequence[T], pred FN) ([]T, error) {
	var (
		take = toPredicateFunc[T](pred)
		it   = s.Iterator()
		out  []T
	)
	for {
		v, ok := it.Next()
		if !ok {
			return out, nil
		}
		taking, err := take(v)
		if err != nil {
			return nil, err
		}
		if !taking {
			return out, nil
		}
		out = append(out, v)
	}
}
