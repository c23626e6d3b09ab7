package collkit

import (
	"math"

	"go.llib.dev/collkit/port/collection"
	"go.llib.dev/collkit/port/option"
)

type SplitConfig struct {
	// MaxSplits is the maximum number of times the Sequence is split.
	// Once it is reached, the remaining elements, separators included,
	// form the last span as they are.
	MaxSplits int
	// OmitEmpty tells whether spans without elements are left out from the result.
	OmitEmpty bool
}

func (c *SplitConfig) Init() {
	c.MaxSplits = math.MaxInt
	c.OmitEmpty = true
}

type SplitOption option.Option[SplitConfig]

func SplitMaxSplits(n int) SplitOption {
	checkCount(n)
	return option.Func[SplitConfig](func(c *SplitConfig) {
		c.MaxSplits = n
	})
}

func SplitOmitEmpty(omit bool) SplitOption {
	return option.Func[SplitConfig](func(c *SplitConfig) {
		c.OmitEmpty = omit
	})
}

// Split cuts the Sequence into spans at the elements that satisfy the separator predicate.
// The separators themselves are not part of the result.
//
// By default, the number of splits is not limited and empty spans are omitted.
func Split[T any, FN predicateFunc[T]](s collection.Sequence[T], isSeparator FN, opts ...SplitOption) ([][]T, error) {
	var (
		c     = option.ToConfig[SplitConfig](opts)
		isSep = toPredicateFunc[T](isSeparator)
		spans [][]T
		span  []T
	)
	var closeSpan = func() bool {
		if len(span) == 0 && c.OmitEmpty {
			return false
		}
		spans = append(spans, span)
		span = nil
		return true
	}

	if c.MaxSplits == 0 {
		span = Collect(s)
		closeSpan()
		return spans, nil
	}

	var it = s.Iterator()
scanning:
	for {
		v, ok := it.Next()
		if !ok {
			break scanning
		}
		sep, err := isSep(v)
		if err != nil {
			return nil, err
		}
		if !sep {
			span = append(span, v)
			continue scanning
		}
		if !closeSpan() {
			continue scanning
		}
		if len(spans) == c.MaxSplits {
			break scanning
		}
	}
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		span = append(span, v)
	}
	closeSpan()
	return spans, nil
}

// SplitSeparator cuts the Sequence into spans at the elements that are equal to the separator.
func SplitSeparator[T comparable](s collection.Sequence[T], separator T, opts ...SplitOption) [][]T {
	spans, _ := Split[T](s, func(v T) bool { return v == separator }, opts...)
	return spans
}

// SplitCollection is the Collection counterpart of Split.
// Instead of copying the elements, every span is a Slice view over the original Collection.
func SplitCollection[T, I any, FN predicateFunc[T]](c collection.Collection[T, I], isSeparator FN, opts ...SplitOption) ([]Slice[T, I], error) {
	var (
		conf     = option.ToConfig[SplitConfig](opts)
		isSep    = toPredicateFunc[T](isSeparator)
		spans    []Slice[T, I]
		subStart = c.StartIndex()
		end      = c.EndIndex()
	)
	var closeSpan = func(subEnd I) bool {
		if c.CompareIndex(subStart, subEnd) == 0 && conf.OmitEmpty {
			return false
		}
		spans = append(spans, Slice[T, I]{base: c, start: subStart, end: subEnd})
		return true
	}

	if conf.MaxSplits == 0 || IsEmpty(c) {
		closeSpan(end)
		return spans, nil
	}

	var subEnd = subStart
	for c.CompareIndex(subEnd, end) < 0 {
		sep, err := isSep(c.At(subEnd))
		if err != nil {
			return nil, err
		}
		if !sep {
			subEnd = c.IndexAfter(subEnd)
			continue
		}
		closed := closeSpan(subEnd)
		subEnd = c.IndexAfter(subEnd)
		subStart = subEnd
		if closed && len(spans) == conf.MaxSplits {
			break
		}
	}
	if c.CompareIndex(subStart, end) != 0 || !conf.OmitEmpty {
		spans = append(spans, Slice[T, I]{base: c, start: subStart, end: end})
	}
	return spans, nil
}
