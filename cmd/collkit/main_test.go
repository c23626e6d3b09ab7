package main

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestRun(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	args := let.Var[[]string](s, nil)
	out := let.Var(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
	act := let.Act(func(t *testcase.T) error {
		return run(context.Background(), args.Get(t), out.Get(t))
	})

	lines := func(t *testcase.T) []string {
		return strings.Split(strings.TrimSuffix(out.Get(t).String(), "\n"), "\n")
	}

	thenItPrints := func(s *testcase.Spec, exp ...string) {
		s.Then("it prints the result, one span per line", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, exp, lines(t))
		})
	}

	s.Describe("stride", func(s *testcase.Spec) {
		args.Let(s, func(*testcase.T) []string { return []string{"stride", "--from", "0", "--to", "10", "--by", "3"} })

		thenItPrints(s, "0 3 6 9")

		s.When("the end bound is included", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"stride", "--from", "0", "--to", "9", "--by", "3", "--through"} })

			thenItPrints(s, "0 3 6 9")
		})

		s.When("the step is fractional", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"stride", "--from", "0", "--to", "1", "--by", "0.25"} })

			thenItPrints(s, "0 0.25 0.5 0.75")
		})

		s.When("the step is zero", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"stride", "--to", "10", "--by", "0"} })

			s.Then("the contract violation is returned as an error", func(t *testcase.T) {
				assert.Error(t, act(t))
			})
		})
	})

	s.Describe("split", func(s *testcase.Spec) {
		args.Let(s, func(*testcase.T) []string { return []string{"split", "1", "0", "0", "3", "4", "0"} })

		thenItPrints(s, "1", "3 4")

		s.When("empty spans are kept", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"split", "--keep-empty", "1", "0", "0", "3"} })

			thenItPrints(s, "1", "", "3")
		})

		s.When("the number of splits is limited", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"split", "--separator", "9", "--max-splits", "1", "1", "9", "3", "9", "5"} })

			thenItPrints(s, "1", "3 9 5")
		})
	})

	s.Describe("reverse", func(s *testcase.Spec) {
		args.Let(s, func(*testcase.T) []string { return []string{"reverse", "10", "20", "30"} })

		thenItPrints(s, "30 20 10")

		s.When("a view is used", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"reverse", "--view", "10", "20", "30"} })

			thenItPrints(s, "30 20 10")
		})
	})

	s.Describe("shuffle", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []string {
			return random.Slice(t.Random.IntBetween(1, 12), func() string {
				return strconv.Itoa(t.Random.IntBetween(0, 1000))
			})
		})
		seed := let.Var(s, func(t *testcase.T) string {
			return strconv.Itoa(t.Random.IntBetween(1, 1<<30))
		})
		args.Let(s, func(t *testcase.T) []string {
			return append([]string{"shuffle", "--seed", seed.Get(t)}, values.Get(t)...)
		})

		s.Then("every value is printed", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.ContainsExactly(t, values.Get(t), strings.Fields(out.Get(t).String()))
		})

		s.Then("the same seed gives the same order", func(t *testcase.T) {
			assert.NoError(t, act(t))
			var other bytes.Buffer
			assert.NoError(t, run(context.Background(), args.Get(t), &other))
			assert.Equal(t, out.Get(t).String(), other.String())
		})
	})

	s.Describe("partition", func(s *testcase.Spec) {
		args.Let(s, func(*testcase.T) []string { return []string{"partition", "--pivot", "5", "7", "1", "9", "3", "5", "2"} })

		s.Then("the values below the pivot come first", func(t *testcase.T) {
			assert.NoError(t, act(t))
			got := lines(t)
			assert.Equal(t, 2, len(got))
			assert.ContainsExactly(t, []string{"1", "3", "2"}, strings.Fields(got[0]))
			assert.ContainsExactly(t, []string{"7", "9", "5"}, strings.Fields(got[1]))
		})
	})

	s.Describe("slice", func(s *testcase.Spec) {
		args.Let(s, func(*testcase.T) []string { return []string{"slice", "--from", "1", "--to", "3", "10", "20", "30", "40"} })

		thenItPrints(s, "20 30")

		s.When("the end is left open", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"slice", "--from", "2", "10", "20", "30", "40"} })

			thenItPrints(s, "30 40")
		})

		s.When("the range is out of bounds", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"slice", "--from", "1", "--to", "5", "10", "20"} })

			s.Then("the contract violation is returned as an error", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), collkit.ErrIndexOutOfRange)
			})
		})
	})

	s.Describe("sort", func(s *testcase.Spec) {
		args.Let(s, func(*testcase.T) []string { return []string{"sort", "3", "1", "2"} })

		thenItPrints(s, "1 2 3")

		s.When("descending order is asked", func(s *testcase.Spec) {
			args.Let(s, func(*testcase.T) []string { return []string{"sort", "--desc", "3", "1", "2"} })

			thenItPrints(s, "3 2 1")
		})
	})

	s.When("the values are not integers", func(s *testcase.Spec) {
		args.Let(s, func(*testcase.T) []string { return []string{"sort", "3", "x"} })

		s.Then("an error is returned", func(t *testcase.T) {
			assert.Error(t, act(t))
		})
	})

	s.When("the log level is set", func(s *testcase.Spec) {
		args.Let(s, func(*testcase.T) []string { return []string{"--log-level", "warn", "sort", "1"} })

		s.Then("the logger uses it", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, logger.LevelWarn, logger.Default.Level)
		})
	})
}
