package datastruct_test

import (
	"fmt"
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

func ExampleLinkedList() {
	var ll datastruct.LinkedList[string]
	ll.Append("b", "c")
	ll.Prepend("a")
	fmt.Println(ll.Pop())
	fmt.Println(ll.Shift())
	fmt.Println(ll.Len())
	// Output:
	// c true
	// a true
	// 1
}

func TestLinkedList(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(0, 7), t.Random.Int)
	})
	ll := let.Var(s, func(t *testcase.T) *datastruct.LinkedList[int] {
		var list datastruct.LinkedList[int]
		list.Append(values.Get(t)...)
		return &list
	})
	more := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(0, 3), t.Random.Int)
	})

	s.Test("Append adds the values after the existing ones", func(t *testcase.T) {
		ll.Get(t).Append(more.Get(t)...)
		assert.Equal(t, append(append([]int{}, values.Get(t)...), more.Get(t)...), ll.Get(t).ToSlice())
		assert.Equal(t, len(values.Get(t))+len(more.Get(t)), ll.Get(t).Len())
	})

	s.Test("Prepend adds the values before the existing ones, in their order", func(t *testcase.T) {
		ll.Get(t).Prepend(more.Get(t)...)
		assert.Equal(t, append(append([]int{}, more.Get(t)...), values.Get(t)...), ll.Get(t).ToSlice())
		assert.Equal(t, len(values.Get(t))+len(more.Get(t)), ll.Get(t).Len())
	})

	s.Test("Pop drains the list from the back", func(t *testcase.T) {
		var popped []int
		for {
			v, ok := ll.Get(t).Pop()
			if !ok {
				assert.Equal(t, 0, v)
				break
			}
			popped = append(popped, v)
		}
		assert.Equal(t, len(values.Get(t)), len(popped))
		for i, v := range popped {
			assert.Equal(t, values.Get(t)[len(values.Get(t))-1-i], v)
		}
		assert.Equal(t, 0, ll.Get(t).Len())
	})

	s.Test("Shift drains the list from the front", func(t *testcase.T) {
		var shifted []int
		for {
			v, ok := ll.Get(t).Shift()
			if !ok {
				assert.Equal(t, 0, v)
				break
			}
			shifted = append(shifted, v)
		}
		assert.Equal(t, len(values.Get(t)), len(shifted))
		for i, v := range shifted {
			assert.Equal(t, values.Get(t)[i], v)
		}
		assert.Empty(t, ll.Get(t).ToSlice())
	})

	s.Test("a drained list can be reused", func(t *testcase.T) {
		for _, ok := ll.Get(t).Pop(); ok; _, ok = ll.Get(t).Pop() {
		}
		ll.Get(t).Prepend(1)
		ll.Get(t).Append(2)
		assert.Equal(t, []int{1, 2}, ll.Get(t).ToSlice())
		assert.Equal(t, []int{2, 1}, collkit.Collect[int](collkit.Reversed[int, datastruct.LinkedListIndex[int]](ll.Get(t))))
	})

	s.Describe("#Lookup", func(s *testcase.Spec) {
		s.Test("every offset finds its value, from either end", func(t *testcase.T) {
			for i, exp := range values.Get(t) {
				got, ok := ll.Get(t).Lookup(i)
				assert.True(t, ok)
				assert.Equal(t, exp, got)
			}
		})

		s.Test("offsets outside of the list are not found", func(t *testcase.T) {
			_, ok := ll.Get(t).Lookup(len(values.Get(t)))
			assert.False(t, ok)
			_, ok = ll.Get(t).Lookup(t.Random.IntBetween(-100, -1))
			assert.False(t, ok)
		})
	})
}

func TestLinkedList_ReplaceSubrange(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = let.Var(s, func(*testcase.T) []int { return []int{1, 2, 3, 4, 5} })
		from   = let.VarOf(s, 1)
		to     = let.VarOf(s, 3)
		with   = let.Var(s, func(*testcase.T) []int { return []int{7, 8, 9} })
	)
	ll := let.Var(s, func(t *testcase.T) *datastruct.LinkedList[int] {
		var list datastruct.LinkedList[int]
		list.Append(values.Get(t)...)
		return &list
	})
	act := let.Act0(func(t *testcase.T) {
		list := ll.Get(t)
		list.ReplaceSubrange(
			collkit.IndexOffset[int](list, list.StartIndex(), from.Get(t)),
			collkit.IndexOffset[int](list, list.StartIndex(), to.Get(t)),
			collkit.FromSlice(with.Get(t)))
	})

	thenTheLinksAreConsistent := func(s *testcase.Spec, exp func(t *testcase.T) []int) {
		s.Then("the elements are replaced", func(t *testcase.T) {
			act(t)
			assert.Equal(t, exp(t), ll.Get(t).ToSlice())
			assert.Equal(t, len(exp(t)), ll.Get(t).Len())
		})

		s.Then("the backward links are updated too", func(t *testcase.T) {
			act(t)
			got := collkit.Collect[int](collkit.Reversed[int, datastruct.LinkedListIndex[int]](ll.Get(t)))
			var rev []int
			for i := len(exp(t)) - 1; 0 <= i; i-- {
				rev = append(rev, exp(t)[i])
			}
			assert.Equal(t, len(rev), len(got))
			for i := range rev {
				assert.Equal(t, rev[i], got[i])
			}
		})
	}

	s.When("a range in the middle is replaced", func(s *testcase.Spec) {
		thenTheLinksAreConsistent(s, func(t *testcase.T) []int { return []int{1, 7, 8, 9, 4, 5} })
	})

	s.When("the head is replaced", func(s *testcase.Spec) {
		from.LetValue(s, 0)

		thenTheLinksAreConsistent(s, func(t *testcase.T) []int { return []int{7, 8, 9, 4, 5} })
	})

	s.When("the tail is replaced", func(s *testcase.Spec) {
		to.LetValue(s, 5)

		thenTheLinksAreConsistent(s, func(t *testcase.T) []int { return []int{1, 7, 8, 9} })
	})

	s.When("everything is removed", func(s *testcase.Spec) {
		from.LetValue(s, 0)
		to.LetValue(s, 5)
		with.LetValue(s, nil)

		thenTheLinksAreConsistent(s, func(t *testcase.T) []int { return []int{} })
	})

	s.When("the values are inserted into an empty list", func(s *testcase.Spec) {
		values.LetValue(s, nil)
		from.LetValue(s, 0)
		to.LetValue(s, 0)

		thenTheLinksAreConsistent(s, func(t *testcase.T) []int { return []int{7, 8, 9} })
	})

	s.Then("a range outside of the list is rejected", func(t *testcase.T) {
		list := ll.Get(t)
		out := assert.Panic(t, func() {
			list.ReplaceSubrange(list.EndIndex(), list.StartIndex(), collkit.Empty[int]())
		})
		assert.ErrorIs(t, out.(error), collkit.ErrIndexOutOfRange)
	})
}

func TestLinkedList_contracts(t *testing.T) {
	makeSubject := func(tb testing.TB) collectioncontract.Subject[int, *datastruct.LinkedList[int]] {
		t := testcase.ToT(&tb)
		vs := random.Slice(t.Random.IntBetween(0, 7), t.Random.Int)
		var list datastruct.LinkedList[int]
		list.Append(vs...)
		return collectioncontract.Subject[int, *datastruct.LinkedList[int]]{Collection: &list, Elements: vs}
	}

	testcase.RunSuite(t,
		datastructcontract.OrderedList[int](func(tb testing.TB) *datastruct.LinkedList[int] {
			return &datastruct.LinkedList[int]{}
		}),
		collectioncontract.Bidirectional[int, datastruct.LinkedListIndex[int]](makeSubject),
		collectioncontract.Mutable[int, datastruct.LinkedListIndex[int]](makeSubject),
		collectioncontract.RangeReplaceable[int, datastruct.LinkedListIndex[int]](makeSubject),
	)
}
