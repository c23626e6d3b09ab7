// Package stride implements arithmetic sequences.
//
// To and Through make a lazy Sequence over any Number.
// IntTo and IntThrough are the integer variants,
// which are also random access collections, with an O(1) length and element lookup.
package stride

import (
	"go.llib.dev/collkit/pkg/errorkit"
	"go.llib.dev/collkit/pkg/mathkit"
	"go.llib.dev/collkit/port/collection"
)

const (
	ErrZeroStep      errorkit.Error = "stride: step must not be zero"
	ErrRangeTooLarge errorkit.Error = "stride: range has more elements than an int can count"
)

type Number = mathkit.Number

// To returns the progression from start towards end, by step, excluding end.
func To[N Number](start, end, step N) *Range[N] {
	checkStep(step)
	return &Range[N]{start: start, end: end, step: step}
}

// Through returns the progression from start towards end, by step, including end when it is reached exactly.
func Through[N Number](start, end, step N) *Range[N] {
	checkStep(step)
	return &Range[N]{start: start, end: end, step: step, closed: true}
}

// Range is a lazy arithmetic progression.
//
// The k-th value is computed as start + k*step,
// so with floating point numbers the rounding error doesn't accumulate over the iteration.
// The iteration ends when the next value would pass the end bound,
// or when it would fall outside the range of N.
type Range[N Number] struct {
	start, end, step N
	closed           bool
}

func (r *Range[N]) Start() N { return r.start }

func (r *Range[N]) End() N { return r.end }

func (r *Range[N]) Step() N { return r.step }

// Closed reports whether the end bound is part of the progression.
func (r *Range[N]) Closed() bool { return r.closed }

func (r *Range[N]) Iterator() collection.Iterator[N] {
	var (
		k, prev N
		started bool
		done    bool
	)
	return collection.IteratorFunc[N](func() (N, bool) {
		if done {
			var zero N
			return zero, false
		}
		v := r.start + k*r.step
		// a float step can be too small to change the value
		stuck := started && (mathkit.CanSumOverflow(prev, r.step) || v == prev)
		if stuck || !r.within(v) {
			done = true
			var zero N
			return zero, false
		}
		prev, started = v, true
		k++
		return v, true
	})
}

func (r *Range[N]) within(v N) bool {
	switch {
	case 0 < r.step && r.closed:
		return v <= r.end
	case 0 < r.step:
		return v < r.end
	case r.closed:
		return r.end <= v
	default:
		return r.end < v
	}
}

func checkStep[N Number](step N) {
	if step == 0 {
		panic(ErrZeroStep)
	}
}
