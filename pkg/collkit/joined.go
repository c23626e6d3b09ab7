package collkit

import (
	"strings"

	"go.llib.dev/collkit/port/collection"
)

// Joined flattens a Sequence of sequences,
// and inserts the elements of the separator between every consecutive pair of inner sequences.
//
// The outer Sequence is only pulled when the current inner one is exhausted.
// The separator is collected once, when Joined is called.
func Joined[T any, S collection.Sequence[T]](s collection.Sequence[S], separator collection.Sequence[T]) collection.Sequence[T] {
	var sep []T
	if separator != nil {
		sep = Collect(separator)
	}
	return collection.SequenceFunc[T](func() collection.Iterator[T] {
		return &joinedIterator[T, S]{base: s.Iterator(), separator: sep}
	})
}

type joinedState int

const (
	joinedStart joinedState = iota
	joinedElement
	joinedSeparator
	joinedEnd
)

type joinedIterator[T any, S collection.Sequence[T]] struct {
	base      collection.Iterator[S]
	inner     collection.Iterator[T]
	separator []T
	sepAt     int
	state     joinedState
}

func (i *joinedIterator[T, S]) Next() (T, bool) {
	for {
		switch i.state {
		case joinedStart:
			if !i.nextInner() {
				continue
			}
			i.state = joinedElement

		case joinedElement:
			if v, ok := i.inner.Next(); ok {
				return v, true
			}
			if !i.nextInner() {
				continue
			}
			if 0 < len(i.separator) {
				i.sepAt = 0
				i.state = joinedSeparator
			}

		case joinedSeparator:
			if i.sepAt < len(i.separator) {
				v := i.separator[i.sepAt]
				i.sepAt++
				return v, true
			}
			i.state = joinedElement

		case joinedEnd:
			var zero T
			return zero, false
		}
	}
}

// nextInner moves to the next inner sequence.
// When the outer Sequence is exhausted, the iterator ends.
func (i *joinedIterator[T, S]) nextInner() bool {
	s, ok := i.base.Next()
	if !ok {
		i.state = joinedEnd
		i.inner = nil
		return false
	}
	i.inner = s.Iterator()
	return true
}

// JoinString concatenates the strings of the Sequence with the separator placed between them.
func JoinString(s collection.Sequence[string], separator string) string {
	var (
		b     strings.Builder
		it    = s.Iterator()
		first = true
	)
	for {
		v, ok := it.Next()
		if !ok {
			return b.String()
		}
		if !first {
			b.WriteString(separator)
		}
		first = false
		b.WriteString(v)
	}
}
