package stride

import (
	"cmp"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/pkg/mathkit"
	"go.llib.dev/collkit/port/collection"
	"golang.org/x/exp/constraints"
)

// IntTo is the integer variant of To.
func IntTo[N constraints.Integer](start, end, step N) *IntRange[N] {
	checkStep(step)
	return &IntRange[N]{start: start, step: step, n: count(start, end, step, false)}
}

// IntThrough is the integer variant of Through.
func IntThrough[N constraints.Integer](start, end, step N) *IntRange[N] {
	checkStep(step)
	return &IntRange[N]{start: start, step: step, n: count(start, end, step, true)}
}

// IntRange is an arithmetic progression of integers.
// Its positions are the offsets of the values from the start, in [0, Len()].
type IntRange[N constraints.Integer] struct {
	start, step N
	n           int
}

var _ collection.RandomAccessCollection[int, int] = (*IntRange[int])(nil)

func (r *IntRange[N]) Iterator() collection.Iterator[N] {
	return collkit.NewIndexingIterator[N, int](r)
}

func (r *IntRange[N]) StartIndex() int { return 0 }

func (r *IntRange[N]) EndIndex() int { return r.n }

func (r *IntRange[N]) At(i int) N {
	if i < 0 || r.n <= i {
		panic(collkit.ErrIndexOutOfRange.F("%d is outside of the [0, %d) bounds", i, r.n))
	}
	return r.start + N(i)*r.step
}

func (r *IntRange[N]) IndexAfter(i int) int {
	return r.IndexOffset(i, 1)
}

func (r *IntRange[N]) IndexBefore(i int) int {
	return r.IndexOffset(i, -1)
}

func (r *IntRange[N]) IndexOffset(i int, n int) int {
	o := i + n
	if o < 0 || r.n < o {
		panic(collkit.ErrIndexOutOfRange.F("offsetting %d by %d is outside of the [0, %d] bounds", i, n, r.n))
	}
	return o
}

func (r *IntRange[N]) Distance(from, to int) int { return to - from }

func (r *IntRange[N]) CompareIndex(a, b int) int { return cmp.Compare(a, b) }

func (r *IntRange[N]) Len() int { return r.n }

func (r *IntRange[N]) UnderestimatedCount() int { return r.n }

// Contains reports whether v is one of the values of the progression, in O(1).
func (r *IntRange[N]) Contains(v N) bool {
	if r.n == 0 || behind(r.start, v, r.step) {
		return false
	}
	var (
		d = mathkit.Distance(r.start, v)
		s = mathkit.AbsInt(r.step)
	)
	return d%s == 0 && d/s < uint64(r.n)
}

// count computes the number of elements in unsigned 64 bit space,
// so a span that crosses zero can't overflow.
func count[N constraints.Integer](start, end, step N, closed bool) int {
	if behind(start, end, step) {
		return 0
	}
	var (
		d = mathkit.Distance(start, end)
		s = mathkit.AbsInt(step)
		n = d / s
	)
	if closed || d%s != 0 {
		var ok bool
		if n, ok = mathkit.SumInt(n, 1); !ok {
			panic(ErrRangeTooLarge)
		}
	}
	if mathkit.AbsInt(mathkit.MaxInt[int]()) < n {
		panic(ErrRangeTooLarge)
	}
	return int(n)
}

// behind reports whether v lies before start, looking in the direction of the step.
func behind[N constraints.Integer](start, v, step N) bool {
	if 0 < step {
		return v < start
	}
	return start < v
}
