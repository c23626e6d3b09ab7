package datastructcontract

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"go.llib.dev/collkit/pkg/datastruct"
	"go.llib.dev/collkit/port/contract"
	"go.llib.dev/collkit/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func List[T any, Subject datastruct.List[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)

		list.Append()
		assert.Equal(t, 0, list.Len())

		var expLen int
		for _, v := range expected {
			assert.Equal(t, expLen, list.Len())
			list.Append(v)
			expLen++
		}

		assert.ContainsExactly(t, expected, slices.Collect(list.Iter()))
	})

	s.Test("Append many", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)
		list.Append(expected...)
		assert.Equal(t, len(expected), list.Len())
		assert.ContainsExactly(t, expected, slices.Collect(list.Iter()))
		assert.ContainsExactly(t, expected, list.ToSlice())
	})

	s.Test("ToSlice returns a copy", func(t *testcase.T) {
		list := mk(t)
		list.Append(c.makeElem(t), c.makeElem(t))
		before := list.ToSlice()
		vs := list.ToSlice()
		vs[0] = c.makeElem(t)
		assert.Equal(t, before, list.ToSlice())
	})

	s.Test("Iter can stop early", func(t *testcase.T) {
		list := mk(t)
		list.Append(random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })...)
		var n int
		for range list.Iter() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	return s.AsSuite(fmt.Sprintf("List[%s]", typeName[T]()))
}

// OrderedList is a List that keeps the values in the order they were appended.
func OrderedList[T any, Subject datastruct.List[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	List[T, Subject](mk, c).Spec(s)

	s.Test("ordered", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)
		list.Append(expected...)
		assert.Equal(t, expected, list.ToSlice())
		assert.Equal(t, expected, slices.Collect(list.Iter()))
	})

	return s.AsSuite(fmt.Sprintf("ordered List[%s]", typeName[T]()))
}

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

type ListConfig[T any] struct {
	MakeElem func(testing.TB) T
}

var _ ListOption[any] = ListConfig[any]{}

func (c ListConfig[T]) Configure(o *ListConfig[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c ListConfig[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(reflect.TypeOf((*T)(nil)).Elem()).(T)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
