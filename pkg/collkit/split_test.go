package collkit_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/pkg/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func isEven(n int) bool { return n%2 == 0 }

func ExampleSplit() {
	spans, _ := collkit.Split(collkit.FromSlice([]int{1, 2, 3, 4, 5}), isEven, collkit.SplitMaxSplits(1))
	fmt.Println(spans)
	// Output: [[1] [3 4 5]]
}

func TestSplit(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		input = let.Var(s, func(*testcase.T) []int { return []int{1, 2, 3, 4, 5} })
		opts  = let.VarOf[[]collkit.SplitOption](s, nil)
	)
	act := func(t *testcase.T) [][]int {
		spans, err := collkit.Split(collkit.FromSlice(input.Get(t)), isEven, opts.Get(t)...)
		assert.NoError(t, err)
		return spans
	}

	s.Test("separators are cut out", func(t *testcase.T) {
		assert.Equal(t, [][]int{{1}, {3}, {5}}, act(t))
	})

	s.When("max splits is reached", func(s *testcase.Spec) {
		opts.Let(s, func(*testcase.T) []collkit.SplitOption { return []collkit.SplitOption{collkit.SplitMaxSplits(1)} })

		s.Then("the remainder is kept as is, separators included", func(t *testcase.T) {
			assert.Equal(t, [][]int{{1}, {3, 4, 5}}, act(t))
		})
	})

	s.When("splitting is disabled", func(s *testcase.Spec) {
		opts.Let(s, func(*testcase.T) []collkit.SplitOption { return []collkit.SplitOption{collkit.SplitMaxSplits(0)} })

		s.Then("the whole input is a single span", func(t *testcase.T) {
			assert.Equal(t, [][]int{{1, 2, 3, 4, 5}}, act(t))
		})
	})

	s.When("separators are adjacent", func(s *testcase.Spec) {
		input.Let(s, func(*testcase.T) []int { return []int{2, 1, 4, 6, 3, 8} })

		s.Then("the empty spans are omitted by default", func(t *testcase.T) {
			assert.Equal(t, [][]int{{1}, {3}}, act(t))
		})

		s.And("empty spans are requested", func(s *testcase.Spec) {
			opts.Let(s, func(*testcase.T) []collkit.SplitOption { return []collkit.SplitOption{collkit.SplitOmitEmpty(false)} })

			s.Then("every boundary makes a span", func(t *testcase.T) {
				assert.Equal(t, [][]int{nil, {1}, nil, {3}, nil}, act(t))
			})
		})
	})

	s.When("the input is empty", func(s *testcase.Spec) {
		input.LetValue(s, nil)

		s.Then("there are no spans", func(t *testcase.T) {
			assert.Empty(t, act(t))
		})
	})

	s.Test("predicate error is returned", func(t *testcase.T) {
		expErr := errors.New(t.Random.String())
		_, err := collkit.Split(collkit.FromSlice(input.Get(t)), func(int) (bool, error) { return false, expErr })
		assert.ErrorIs(t, err, expErr)
	})

	s.Test("negative max splits is a contract violation", func(t *testcase.T) {
		out := assert.Panic(t, func() { collkit.SplitMaxSplits(-1) })
		assert.ErrorIs(t, out.(error), collkit.ErrNegativeCount)
	})
}

func TestSplitSeparator(t *testing.T) {
	got := collkit.SplitSeparator(collkit.FromSlice([]rune("a,b,,c")), ',')
	assert.Equal(t, [][]rune{[]rune("a"), []rune("b"), []rune("c")}, got)
}

func TestSplitCollection(t *testing.T) {
	s := testcase.NewSpec(t)

	list := testcase.Let(s, func(t *testcase.T) *datastruct.ForwardList[int] {
		fl := &datastruct.ForwardList[int]{}
		fl.Append(1, 2, 3, 4, 5)
		return fl
	})
	opts := let.VarOf[[]collkit.SplitOption](s, nil)
	act := func(t *testcase.T) [][]int {
		spans, err := collkit.SplitCollection[int, datastruct.ForwardListIndex[int]](list.Get(t), isEven, opts.Get(t)...)
		assert.NoError(t, err)
		var out [][]int
		for _, span := range spans {
			out = append(out, collkit.Collect[int](span))
		}
		return out
	}

	s.Test("spans are views over the list", func(t *testcase.T) {
		assert.Equal(t, [][]int{{1}, {3}, {5}}, act(t))
	})

	s.When("max splits is one", func(s *testcase.Spec) {
		opts.Let(s, func(*testcase.T) []collkit.SplitOption { return []collkit.SplitOption{collkit.SplitMaxSplits(1)} })

		s.Then("the remainder keeps the separator", func(t *testcase.T) {
			assert.Equal(t, [][]int{{1}, {3, 4, 5}}, act(t))
		})
	})

	s.When("empty spans are kept", func(s *testcase.Spec) {
		list.Let(s, func(t *testcase.T) *datastruct.ForwardList[int] {
			fl := &datastruct.ForwardList[int]{}
			fl.Append(2, 1, 4)
			return fl
		})
		opts.Let(s, func(*testcase.T) []collkit.SplitOption { return []collkit.SplitOption{collkit.SplitOmitEmpty(false)} })

		s.Then("spans are made at both ends", func(t *testcase.T) {
			assert.Equal(t, [][]int{{}, {1}, {}}, act(t))
		})
	})

	s.Test("a span writes through to the list", func(t *testcase.T) {
		spans, err := collkit.SplitCollection[int, datastruct.ForwardListIndex[int]](list.Get(t), isEven)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(spans))
		list.Get(t).Set(spans[1].StartIndex(), 42)
		assert.Equal(t, []int{42}, collkit.Collect[int](spans[1]))
	})
}
