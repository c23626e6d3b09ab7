package datastruct_test

import (
	"testing"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/pkg/datastruct"
	"go.llib.dev/collkit/pkg/datastruct/datastructcontract"
	"go.llib.dev/collkit/port/collection/collectioncontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestForwardList(t *testing.T) {
	s := testcase.NewSpec(t)

	fl := let.Var(s, func(t *testcase.T) *datastruct.ForwardList[int] {
		return &datastruct.ForwardList[int]{}
	})

	s.Test("smoke", func(t *testcase.T) {
		list := fl.Get(t)
		list.Append(2, 3)
		list.Prepend(0, 1)
		list.Append(4)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, list.ToSlice())
		assert.Equal(t, 5, list.Len())

		var shifted []int
		for {
			v, ok := list.Shift()
			if !ok {
				break
			}
			shifted = append(shifted, v)
		}
		assert.Equal(t, []int{0, 1, 2, 3, 4}, shifted)
		assert.Equal(t, 0, list.Len())
		assert.Empty(t, list.ToSlice())

		list.Append(42)
		assert.Equal(t, []int{42}, list.ToSlice())
	})

	s.Describe("#ReplaceSubrange", func(s *testcase.Spec) {
		var (
			values = let.Var(s, func(*testcase.T) []int { return []int{1, 2, 3, 4} })
			from   = let.VarOf(s, 1)
			to     = let.VarOf(s, 3)
			with   = let.Var(s, func(*testcase.T) []int { return []int{8, 9} })
		)
		fl.Let(s, func(t *testcase.T) *datastruct.ForwardList[int] {
			var list datastruct.ForwardList[int]
			list.Append(values.Get(t)...)
			return &list
		})
		act := let.Act0(func(t *testcase.T) {
			list := fl.Get(t)
			list.ReplaceSubrange(
				collkit.IndexOffset[int](list, list.StartIndex(), from.Get(t)),
				collkit.IndexOffset[int](list, list.StartIndex(), to.Get(t)),
				collkit.FromSlice(with.Get(t)))
		})

		thenTheListIs := func(s *testcase.Spec, exp []int) {
			s.Then("the elements are replaced", func(t *testcase.T) {
				act(t)
				assert.Equal(t, exp, fl.Get(t).ToSlice())
				assert.Equal(t, len(exp), fl.Get(t).Len())
			})

			s.Then("the list can still be appended to", func(t *testcase.T) {
				act(t)
				fl.Get(t).Append(100)
				assert.Equal(t, append(append([]int{}, exp...), 100), fl.Get(t).ToSlice())
			})
		}

		thenTheListIs(s, []int{1, 8, 9, 4})

		s.When("the range is at the head", func(s *testcase.Spec) {
			from.LetValue(s, 0)

			thenTheListIs(s, []int{8, 9, 4})
		})

		s.When("the range is at the tail", func(s *testcase.Spec) {
			to.LetValue(s, 4)

			thenTheListIs(s, []int{1, 8, 9})
		})

		s.When("the range is empty at the end", func(s *testcase.Spec) {
			from.LetValue(s, 4)
			to.LetValue(s, 4)

			thenTheListIs(s, []int{1, 2, 3, 4, 8, 9})
		})

		s.When("everything is removed", func(s *testcase.Spec) {
			from.LetValue(s, 0)
			to.LetValue(s, 4)
			with.LetValue(s, nil)

			thenTheListIs(s, []int{})
		})
	})

	s.Test("stepping back is rejected", func(t *testcase.T) {
		list := fl.Get(t)
		list.Append(1, 2)
		out := assert.Panic(t, func() { collkit.IndexOffset[int](list, list.EndIndex(), -1) })
		assert.ErrorIs(t, out.(error), collkit.ErrNegativeCount)
	})
}

func TestForwardList_contracts(t *testing.T) {
	makeSubject := func(tb testing.TB) collectioncontract.Subject[int, *datastruct.ForwardList[int]] {
		t := testcase.ToT(&tb)
		vs := random.Slice(t.Random.IntBetween(0, 7), t.Random.Int)
		var list datastruct.ForwardList[int]
		list.Append(vs...)
		return collectioncontract.Subject[int, *datastruct.ForwardList[int]]{Collection: &list, Elements: vs}
	}

	testcase.RunSuite(t,
		datastructcontract.OrderedList[int](func(tb testing.TB) *datastruct.ForwardList[int] {
			return &datastruct.ForwardList[int]{}
		}),
		collectioncontract.Mutable[int, datastruct.ForwardListIndex[int]](makeSubject),
		collectioncontract.RangeReplaceable[int, datastruct.ForwardListIndex[int]](makeSubject),
	)
}
