package main

import (
	"fmt"
	"io"
	"strconv"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/port/collection"
)

// printer writes spans to the output, one line per span, with space separated elements.
type printer struct {
	Out io.Writer
}

func (p printer) Span(s collection.Sequence[int64]) error {
	return writeLine(p.Out, s, func(v int64) string { return strconv.FormatInt(v, 10) })
}

func (p printer) Spans(spans [][]int64) error {
	for _, span := range spans {
		if err := p.Span(collkit.FromSlice(span)); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) FloatSpan(s collection.Sequence[float64]) error {
	return writeLine(p.Out, s, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
}

func writeLine[T any](w io.Writer, s collection.Sequence[T], format func(T) string) error {
	vs, err := collkit.Map[string](s, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, collkit.JoinString(collkit.FromSlice(vs), " "))
	return err
}
