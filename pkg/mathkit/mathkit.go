// Package mathkit holds overflow aware integer arithmetic.
package mathkit

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// AInt is the type of an absolute integer value.
// Every integer's magnitude fits into it, including the minimum of int64.
type AInt = uint64

func MaxInt[T constraints.Integer]() T {
	var zero T
	if !isSigned[T]() {
		return ^zero
	}
	// all bits set except the sign bit
	return ^MinInt[T]()
}

func MinInt[T constraints.Integer]() T {
	var zero T
	if !isSigned[T]() {
		return zero
	}
	var one T = 1
	return one << (8*unsafe.Sizeof(zero) - 1)
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// IsInteger reports whether N is an integer type.
func IsInteger[N Number]() bool {
	var one, two N = 1, 2
	return one/two == 0
}

func SumInt[INT constraints.Integer](a, b INT) (INT, bool) {
	if CanIntSumOverflow(a, b) {
		var zero INT
		return zero, false
	}
	return a + b, true
}

func CanIntSumOverflow[INT constraints.Integer](a, b INT) bool {
	less, more := a, b
	if more < less {
		less, more = more, less
	}
	switch {
	case 0 < less && 0 < more:
		maxLess := MaxInt[INT]() - more
		return maxLess < less // positive overflow
	case less < 0 && more < 0:
		minMore := MinInt[INT]() - less // min + abs(less)
		return more < minMore // negative overflow
	}
	// MinInt plus MaxInt is still in range
	return false
}

// CanSumOverflow is CanIntSumOverflow for any Number.
// A float sum saturates at infinity instead of wrapping, so for floats it is always false.
func CanSumOverflow[N Number](a, b N) bool {
	if !IsInteger[N]() {
		return false
	}
	s := a + b
	return (0 < b && s < a) || (b < 0 && a < s)
}

func AbsInt[N constraints.Integer](n N) AInt {
	if 0 <= n {
		return AInt(n)
	}
	// uint64 conversion sign-extends, so negating it gives the magnitude even for MinInt
	return 0 - AInt(n)
}

// Distance returns |b-a| without overflowing,
// even when the span is wider than the maximum of the type.
func Distance[N constraints.Integer](a, b N) AInt {
	if a <= b {
		return AInt(b) - AInt(a)
	}
	return AInt(a) - AInt(b)
}
