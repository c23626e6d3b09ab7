// Package collectioncontract holds the behavioural contracts of the capability interfaces of port/collection.
package collectioncontract

import (
	"fmt"
	"reflect"
	"testing"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/port/collection"
	"go.llib.dev/collkit/port/contract"
	"go.llib.dev/collkit/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Subject is what a contract's Make function returns.
// Each call must return a fresh Collection, since some contracts mutate it.
type Subject[T, C any] struct {
	// Collection is the testing subject.
	Collection C
	// Elements are the values the Collection holds, in iteration order.
	Elements []T
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem makes a value that the contracts of mutable capabilities can write into the Collection.
	MakeElem func(testing.TB) T
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(reflect.TypeOf((*T)(nil)).Elem()).(T)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Sequence checks the single pass iteration of a Sequence.
func Sequence[T any, S collection.Sequence[T]](mk contract.Make[Subject[T, S]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, S] {
		return mk(t)
	})

	s.Test("iteration yields the elements in order", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, norm(sub.Elements), collect[T](sub.Collection))
	})

	s.Test("an exhausted iterator keeps reporting the end", func(t *testcase.T) {
		it := subject.Get(t).Collection.Iterator()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
		t.Random.Repeat(1, 3, func() {
			_, ok := it.Next()
			assert.False(t, ok)
		})
	})

	s.Test("the count estimate is not greater than the real count", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, collkit.UnderestimatedCount[T](sub.Collection) <= len(sub.Elements))
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", typeName[T]()))
}

// Collection checks the indexed access of a Collection.
func Collection[T, I any, C collection.Collection[T, I]](mk contract.Make[Subject[T, C]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C] {
		return mk(t)
	})

	s.Context("implements Sequence", Sequence[T, C](mk).Spec)

	s.Test("it can be iterated multiple times", func(t *testcase.T) {
		c := subject.Get(t).Collection
		assert.Equal(t, collect[T](c), collect[T](c))
	})

	s.Test("walking the positions from start to end visits every element", func(t *testcase.T) {
		sub := subject.Get(t)
		var got []T
		for _, i := range positions[T, I](sub.Collection) {
			got = append(got, sub.Collection.At(i))
		}
		assert.Equal(t, norm(sub.Elements), got)
	})

	s.Test("positions are strictly increasing", func(t *testcase.T) {
		sub := subject.Get(t)
		ps := append(positions[T, I](sub.Collection), sub.Collection.EndIndex())
		for k := 1; k < len(ps); k++ {
			assert.True(t, sub.Collection.CompareIndex(ps[k-1], ps[k]) < 0)
			assert.True(t, 0 < sub.Collection.CompareIndex(ps[k], ps[k-1]))
			assert.Equal(t, 0, sub.Collection.CompareIndex(ps[k], ps[k]))
		}
	})

	s.Test("emptiness and count match the elements", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Elements) == 0, collkit.IsEmpty[T, I](sub.Collection))
		assert.Equal(t, len(sub.Elements), collkit.Count[T, I](sub.Collection))
		assert.Equal(t, len(sub.Elements), collkit.Distance[T, I](sub.Collection, sub.Collection.StartIndex(), sub.Collection.EndIndex()))
	})

	s.Test("distance and offset agree with the walked positions", func(t *testcase.T) {
		sub := subject.Get(t)
		ps := append(positions[T, I](sub.Collection), sub.Collection.EndIndex())
		a := t.Random.IntN(len(ps))
		b := t.Random.IntBetween(a, len(ps)-1)
		assert.Equal(t, b-a, collkit.Distance[T, I](sub.Collection, ps[a], ps[b]))
		got := collkit.IndexOffset[T, I](sub.Collection, ps[a], b-a)
		assert.Equal(t, 0, sub.Collection.CompareIndex(ps[b], got))
	})

	s.Test("offsetting past the limit is reported", func(t *testcase.T) {
		sub := subject.Get(t)
		c := sub.Collection
		got, ok := collkit.IndexOffsetLimited[T, I](c, c.StartIndex(), len(sub.Elements)+1, c.EndIndex())
		assert.False(t, ok)
		assert.Equal(t, 0, c.CompareIndex(c.EndIndex(), got))
		got, ok = collkit.IndexOffsetLimited[T, I](c, c.StartIndex(), len(sub.Elements), c.EndIndex())
		assert.True(t, ok)
		assert.Equal(t, 0, c.CompareIndex(c.EndIndex(), got))
	})

	s.Test("a slice view holds the contiguous run of the elements", func(t *testcase.T) {
		sub := subject.Get(t)
		ps := append(positions[T, I](sub.Collection), sub.Collection.EndIndex())
		a := t.Random.IntN(len(ps))
		b := t.Random.IntBetween(a, len(ps)-1)
		view := collkit.SliceOf[T, I](sub.Collection, ps[a], ps[b])
		assert.Equal(t, norm(sub.Elements[a:b]), collect[T](view))
		assert.Equal(t, b-a, collkit.Count[T, I](view))
	})

	s.Test("the end position can't be dereferenced", func(t *testcase.T) {
		c := subject.Get(t).Collection
		assert.Panic(t, func() { c.At(c.EndIndex()) })
	})

	return s.AsSuite(fmt.Sprintf("Collection[%s]", typeName[T]()))
}

// Bidirectional checks the backward stepping of a BidirectionalCollection.
func Bidirectional[T, I any, C collection.BidirectionalCollection[T, I]](mk contract.Make[Subject[T, C]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C] {
		return mk(t)
	})

	s.Context("implements Collection", Collection[T, I, C](mk).Spec)

	s.Test("stepping back and forth returns to the same position", func(t *testcase.T) {
		c := subject.Get(t).Collection
		ps := append(positions[T, I](c), c.EndIndex())
		for k, p := range ps {
			if 0 < k {
				assert.Equal(t, 0, c.CompareIndex(p, c.IndexAfter(c.IndexBefore(p))))
				assert.Equal(t, 0, c.CompareIndex(ps[k-1], c.IndexBefore(p)))
			}
			if k < len(ps)-1 {
				assert.Equal(t, 0, c.CompareIndex(p, c.IndexBefore(c.IndexAfter(p))))
			}
		}
	})

	s.Test("walking backwards visits the elements in reverse order", func(t *testcase.T) {
		sub := subject.Get(t)
		var (
			c   = sub.Collection
			got []T
		)
		for i := c.EndIndex(); c.CompareIndex(c.StartIndex(), i) < 0; {
			i = c.IndexBefore(i)
			got = append(got, c.At(i))
		}
		assert.Equal(t, reversed(sub.Elements), got)
		assert.Equal(t, reversed(sub.Elements), collect[T](collkit.Reversed[T, I](c)))
	})

	s.Test("distance is antisymmetric", func(t *testcase.T) {
		c := subject.Get(t).Collection
		ps := append(positions[T, I](c), c.EndIndex())
		a, b := ps[t.Random.IntN(len(ps))], ps[t.Random.IntN(len(ps))]
		assert.Equal(t, collkit.BidirectionalDistance[T, I](c, a, b), -collkit.BidirectionalDistance[T, I](c, b, a))
	})

	s.Test("last is the final element", func(t *testcase.T) {
		sub := subject.Get(t)
		last, ok := collkit.Last[T, I](sub.Collection)
		assert.Equal(t, 0 < len(sub.Elements), ok)
		if ok {
			assert.Equal(t, sub.Elements[len(sub.Elements)-1], last)
		}
	})

	s.Test("the start position has no position before it", func(t *testcase.T) {
		c := subject.Get(t).Collection
		assert.Panic(t, func() { c.IndexBefore(c.StartIndex()) })
	})

	return s.AsSuite(fmt.Sprintf("BidirectionalCollection[%s]", typeName[T]()))
}

// RandomAccess checks the position arithmetic of a RandomAccessCollection.
func RandomAccess[T, I any, C collection.RandomAccessCollection[T, I]](mk contract.Make[Subject[T, C]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C] {
		return mk(t)
	})

	s.Context("implements BidirectionalCollection", Bidirectional[T, I, C](mk).Spec)

	s.Test("offsetting matches stepping", func(t *testcase.T) {
		c := subject.Get(t).Collection
		ps := append(positions[T, I](c), c.EndIndex())
		for k, p := range ps {
			assert.Equal(t, 0, c.CompareIndex(p, c.IndexOffset(c.StartIndex(), k)))
			assert.Equal(t, 0, c.CompareIndex(c.StartIndex(), c.IndexOffset(p, -k)))
			assert.Equal(t, k, c.Distance(c.StartIndex(), p))
			assert.Equal(t, -k, c.Distance(p, c.StartIndex()))
		}
	})

	s.Test("offsetting outside of the bounds is rejected", func(t *testcase.T) {
		sub := subject.Get(t)
		c := sub.Collection
		assert.Panic(t, func() { c.IndexOffset(c.StartIndex(), len(sub.Elements)+1) })
		assert.Panic(t, func() { c.IndexOffset(c.StartIndex(), -1) })
	})

	s.Test("the length is known without iterating", func(t *testcase.T) {
		sub := subject.Get(t)
		if counter, ok := any(sub.Collection).(collection.Counter); ok {
			assert.Equal(t, len(sub.Elements), counter.Len())
		}
		assert.Equal(t, len(sub.Elements), collkit.Count[T, I](sub.Collection))
	})

	return s.AsSuite(fmt.Sprintf("RandomAccessCollection[%s]", typeName[T]()))
}

// Mutable checks the element writes of a MutableCollection.
func Mutable[T, I any, C collection.MutableCollection[T, I]](mk contract.Make[Subject[T, C]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C] {
		return mk(t)
	})

	s.Context("implements Collection", Collection[T, I, C](mk).Spec)

	s.Test("set replaces a single element", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Elements) == 0 {
			t.Skip("the collection is empty")
		}
		var (
			k   = t.Random.IntN(len(sub.Elements))
			v   = c.makeElem(t)
			exp = append([]T{}, sub.Elements...)
			p   = collkit.IndexOffset[T, I](sub.Collection, sub.Collection.StartIndex(), k)
		)
		exp[k] = v
		sub.Collection.Set(p, v)
		assert.Equal(t, v, sub.Collection.At(p))
		assert.Equal(t, exp, collect[T](sub.Collection))
	})

	s.Test("swap exchanges two elements", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Elements) == 0 {
			t.Skip("the collection is empty")
		}
		var (
			a   = t.Random.IntN(len(sub.Elements))
			b   = t.Random.IntN(len(sub.Elements))
			exp = append([]T{}, sub.Elements...)
			col = sub.Collection
		)
		exp[a], exp[b] = exp[b], exp[a]
		col.Swap(collkit.IndexOffset[T, I](col, col.StartIndex(), a), collkit.IndexOffset[T, I](col, col.StartIndex(), b))
		assert.Equal(t, exp, collect[T](col))
	})

	s.Test("partition splits the elements by the predicate", func(t *testcase.T) {
		sub := subject.Get(t)
		col := sub.Collection
		pivot, err := collkit.Partition[T, I](col, evenlyFormatted[T])
		assert.NoError(t, err)
		for i := col.StartIndex(); col.CompareIndex(i, col.EndIndex()) < 0; i = col.IndexAfter(i) {
			assert.Equal(t, col.CompareIndex(pivot, i) <= 0, evenlyFormatted(col.At(i)))
		}
		assert.ContainsExactly(t, norm(sub.Elements), collect[T](col))
	})

	return s.AsSuite(fmt.Sprintf("MutableCollection[%s]", typeName[T]()))
}

// RangeReplaceable checks the size changing mutations of a RangeReplaceableCollection.
func RangeReplaceable[T, I any, C collection.RangeReplaceableCollection[T, I]](mk contract.Make[Subject[T, C]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C] {
		return mk(t)
	})

	randomRange := func(t *testcase.T, col C, n int) (int, int, I, I) {
		ps := append(positions[T, I](col), col.EndIndex())
		a := t.Random.IntN(n + 1)
		b := t.Random.IntBetween(a, n)
		return a, b, ps[a], ps[b]
	}

	newElems := func(t *testcase.T) []T {
		var vs []T
		t.Random.Repeat(0, 3, func() { vs = append(vs, c.makeElem(t)) })
		return vs
	}

	s.Context("implements Collection", Collection[T, I, C](mk).Spec)

	s.Test("replacing a range with its own contents changes nothing", func(t *testcase.T) {
		sub := subject.Get(t)
		col := sub.Collection
		a, b, from, to := randomRange(t, col, len(sub.Elements))
		col.ReplaceSubrange(from, to, collkit.FromSlice(append([]T{}, sub.Elements[a:b]...)))
		assert.Equal(t, norm(sub.Elements), collect[T](col))
	})

	s.Test("replacing a range with a different number of elements", func(t *testcase.T) {
		sub := subject.Get(t)
		col := sub.Collection
		a, b, from, to := randomRange(t, col, len(sub.Elements))
		vs := newElems(t)
		col.ReplaceSubrange(from, to, collkit.FromSlice(vs))
		var exp []T
		exp = append(exp, sub.Elements[:a]...)
		exp = append(exp, vs...)
		exp = append(exp, sub.Elements[b:]...)
		assert.Equal(t, norm(exp), collect[T](col))
		assert.Equal(t, len(exp), collkit.Count[T, I](col))
	})

	s.Test("append adds to the end", func(t *testcase.T) {
		sub := subject.Get(t)
		v := c.makeElem(t)
		collkit.Append[T, I](sub.Collection, v)
		assert.Equal(t, append(append([]T{}, sub.Elements...), v), collect[T](sub.Collection))
	})

	s.Test("insert at the start puts the element first", func(t *testcase.T) {
		sub := subject.Get(t)
		v := c.makeElem(t)
		collkit.Insert[T, I](sub.Collection, v, sub.Collection.StartIndex())
		assert.Equal(t, append([]T{v}, sub.Elements...), collect[T](sub.Collection))
	})

	s.Test("remove returns the removed element", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Elements) == 0 {
			t.Skip("the collection is empty")
		}
		col := sub.Collection
		k := t.Random.IntN(len(sub.Elements))
		got := collkit.Remove[T, I](col, collkit.IndexOffset[T, I](col, col.StartIndex(), k))
		assert.Equal(t, sub.Elements[k], got)
		exp := append(append([]T{}, sub.Elements[:k]...), sub.Elements[k+1:]...)
		assert.Equal(t, norm(exp), collect[T](col))
	})

	s.Test("removing the first n elements is removing the leading range", func(t *testcase.T) {
		var (
			sub = subject.Get(t)
			oth = mk(t)
			n   = t.Random.IntN(len(sub.Elements) + 1)
			m   = t.Random.IntN(len(oth.Elements) + 1)
		)
		collkit.RemoveFirstN[T, I](sub.Collection, n)
		collkit.RemoveSubrange[T, I](oth.Collection, oth.Collection.StartIndex(), collkit.IndexOffset[T, I](oth.Collection, oth.Collection.StartIndex(), m))
		assert.Equal(t, norm(sub.Elements[n:]), collect[T](sub.Collection))
		assert.Equal(t, norm(oth.Elements[m:]), collect[T](oth.Collection))
	})

	s.Test("removing more elements than the collection has is rejected", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Panic(t, func() { collkit.RemoveFirstN[T, I](sub.Collection, len(sub.Elements)+1) })
	})

	s.Test("remove all leaves the collection empty", func(t *testcase.T) {
		col := subject.Get(t).Collection
		collkit.RemoveAll[T, I](col)
		assert.True(t, collkit.IsEmpty[T, I](col))
		assert.Empty(t, collect[T](col))
		assert.Panic(t, func() { collkit.RemoveFirst[T, I](col) })
	})

	return s.AsSuite(fmt.Sprintf("RangeReplaceableCollection[%s]", typeName[T]()))
}

func positions[T, I any](c collection.Collection[T, I]) []I {
	var ps []I
	for i := c.StartIndex(); c.CompareIndex(i, c.EndIndex()) < 0; i = c.IndexAfter(i) {
		ps = append(ps, i)
	}
	return ps
}

// collect returns nil for an empty Sequence, see norm.
func collect[T any](s collection.Sequence[T]) []T {
	var vs []T
	it := s.Iterator()
	for {
		v, ok := it.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

func reversed[T any](vs []T) []T {
	var out []T
	for i := len(vs) - 1; 0 <= i; i-- {
		out = append(out, vs[i])
	}
	return out
}

// norm makes an empty slice nil, so it compares equal with the result of collect.
func norm[T any](vs []T) []T {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

func evenlyFormatted[T any](v T) bool {
	return len(fmt.Sprint(v))%2 == 0
}
