package collkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/pkg/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestRemoveFirstN(t *testing.T) {
	s := testcase.NewSpec(t)

	n := let.VarOf(s, 2)

	s.Test("array", func(t *testcase.T) {
		a := datastruct.NewArray(1, 2, 3, 4)
		collkit.RemoveFirstN[int, int](a, n.Get(t))
		assert.Equal(t, []int{3, 4}, a.ToSlice())
	})

	s.Test("forward list", func(t *testcase.T) {
		fl := newForwardList(1, 2, 3, 4)
		collkit.RemoveFirstN[int, datastruct.ForwardListIndex[int]](fl, n.Get(t))
		assert.Equal(t, []int{3, 4}, fl.ToSlice())

		other := newForwardList(1, 2, 3, 4)
		collkit.RemoveSubrange[int](other, other.StartIndex(), collkit.IndexOffset[int](other, other.StartIndex(), n.Get(t)))
		assert.Equal(t, fl.ToSlice(), other.ToSlice())
	})

	s.When("n is zero", func(s *testcase.Spec) {
		n.LetValue(s, 0)

		s.Then("nothing is removed, even from an empty collection", func(t *testcase.T) {
			a := datastruct.NewArray[int]()
			collkit.RemoveFirstN[int, int](a, n.Get(t))
			assert.Empty(t, a.ToSlice())
		})
	})

	s.When("n is greater than the count", func(s *testcase.Spec) {
		n.LetValue(s, 5)

		s.Then("it is a contract violation", func(t *testcase.T) {
			fl := newForwardList(1, 2, 3, 4)
			out := assert.Panic(t, func() { collkit.RemoveFirstN[int, datastruct.ForwardListIndex[int]](fl, n.Get(t)) })
			assert.ErrorIs(t, out.(error), collkit.ErrIndexOutOfRange)
			assert.Equal(t, []int{1, 2, 3, 4}, fl.ToSlice())
		})
	})
}

func TestRemoveLastN(t *testing.T) {
	var ll datastruct.LinkedList[int]
	ll.Append(1, 2, 3, 4)
	collkit.RemoveLastN[int, datastruct.LinkedListIndex[int]](&ll, 3)
	assert.Equal(t, []int{1}, ll.ToSlice())

	out := assert.Panic(t, func() { collkit.RemoveLastN[int, datastruct.LinkedListIndex[int]](&ll, 2) })
	assert.ErrorIs(t, out.(error), collkit.ErrIndexOutOfRange)

	assert.Equal(t, 1, collkit.RemoveLast[int, datastruct.LinkedListIndex[int]](&ll))
	out = assert.Panic(t, func() { collkit.RemoveLast[int, datastruct.LinkedListIndex[int]](&ll) })
	assert.ErrorIs(t, out.(error), collkit.ErrEmptyCollection)
}

func TestRemoveFirst(t *testing.T) {
	fl := newForwardList("a", "b")
	assert.Equal(t, "a", collkit.RemoveFirst[string, datastruct.ForwardListIndex[string]](fl))
	assert.Equal(t, "b", collkit.RemoveFirst[string, datastruct.ForwardListIndex[string]](fl))
	out := assert.Panic(t, func() { collkit.RemoveFirst[string, datastruct.ForwardListIndex[string]](fl) })
	assert.ErrorIs(t, out.(error), collkit.ErrEmptyCollection)
}

func TestRemoveWhere(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("matching elements are removed, the order of the rest is kept", func(t *testcase.T) {
		fl := newForwardList(1, 2, 3, 4, 5, 6)
		assert.NoError(t, collkit.RemoveWhere[int, datastruct.ForwardListIndex[int]](fl, isEven))
		assert.Equal(t, []int{1, 3, 5}, fl.ToSlice())
	})

	s.Test("the collection is untouched when the predicate fails", func(t *testcase.T) {
		expErr := errors.New(t.Random.String())
		a := datastruct.NewArray(1, 2, 3)
		err := collkit.RemoveWhere[int, int](a, func(v int) (bool, error) {
			if v == 3 {
				return false, expErr
			}
			return true, nil
		})
		assert.ErrorIs(t, err, expErr)
		assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
	})
}

func TestInsertAndReplace(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("insert in the middle", func(t *testcase.T) {
		var ll datastruct.LinkedList[int]
		ll.Append(1, 4)
		at := ll.IndexAfter(ll.StartIndex())
		collkit.InsertAll[int](&ll, collkit.FromSlice([]int{2, 3}), at)
		assert.Equal(t, []int{1, 2, 3, 4}, ll.ToSlice())
	})

	s.Test("insert at the end is append", func(t *testcase.T) {
		a := datastruct.NewArray(1)
		collkit.Insert[int, int](a, 2, a.EndIndex())
		collkit.AppendRepeating[int, int](a, 3, 2)
		assert.Equal(t, []int{1, 2, 3, 3}, a.ToSlice())
	})

	s.Test("insert outside of the bounds is rejected", func(t *testcase.T) {
		a := datastruct.NewArray(1)
		out := assert.Panic(t, func() { collkit.Insert[int, int](a, 2, 2) })
		assert.ErrorIs(t, out.(error), collkit.ErrIndexOutOfRange)
	})

	s.Test("replace with a different number of elements", func(t *testcase.T) {
		a := datastruct.NewArray(1, 2, 3, 4)
		collkit.Replace[int, int](a, 1, 3, collkit.Repeat(9, 3))
		assert.Equal(t, []int{1, 9, 9, 9, 4}, a.ToSlice())
		collkit.Replace[int, int](a, 0, 4, nil)
		assert.Equal(t, []int{4}, a.ToSlice())
	})

	s.Test("replace with a view of the collection itself", func(t *testcase.T) {
		a := datastruct.NewArray(1, 2, 3)
		collkit.Replace[int, int](a, 0, 0, collkit.SliceOf[int, int](a, 1, 3))
		assert.Equal(t, []int{2, 3, 1, 2, 3}, a.ToSlice())
	})

	s.Test("an inverted range is rejected", func(t *testcase.T) {
		a := datastruct.NewArray(1, 2, 3)
		out := assert.Panic(t, func() { collkit.RemoveSubrange[int, int](a, 2, 1) })
		assert.ErrorIs(t, out.(error), collkit.ErrInvalidRange)
	})
}
