package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.llib.dev/collkit/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/clock/timecop"
	"go.llib.dev/testcase/let"
)

func ExampleLogger() {
	l := logger.Logger{Level: logger.LevelDebug}
	ctx := logger.ContextWith(context.Background(), logger.Field("command", "split"))
	l.Debug(ctx, "input parsed", logger.Field("count", 7))
	// {"command":"split","count":7,"level":"debug","message":"input parsed","timestamp":"..."}
}

func ExampleContextWith() {
	ctx := logger.ContextWith(context.Background(), logger.Fields{
		"foo": "bar",
		"baz": "qux",
	})
	logger.Info(ctx, "foo") // will have details from the context
}

func decode(tb testing.TB, buf *bytes.Buffer) []map[string]any {
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		assert.NoError(tb, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestLogger(t *testing.T) {
	s := testcase.NewSpec(t)

	now := time.Now().Truncate(time.Second)
	s.Before(func(t *testcase.T) { timecop.Travel(t, now, timecop.Freeze) })

	buf := let.Var(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
	subject := let.Var(s, func(t *testcase.T) *logger.Logger {
		return &logger.Logger{Out: buf.Get(t), Level: logger.LevelDebug}
	})

	s.Test("output is a JSON line per entry", func(t *testcase.T) {
		n := t.Random.IntBetween(1, 7)
		for range n {
			subject.Get(t).Info(context.Background(), t.Random.String())
		}
		assert.Equal(t, n, strings.Count(buf.Get(t).String(), "\n"))
		assert.Equal(t, n, len(decode(t, buf.Get(t))))
	})

	s.Test("an entry has the level, the message and the timestamp", func(t *testcase.T) {
		msg := t.Random.String()
		subject.Get(t).Warn(context.Background(), msg)
		entries := decode(t, buf.Get(t))
		assert.Equal(t, 1, len(entries))
		assert.Equal(t, "warn", entries[0]["level"])
		assert.Equal[any](t, msg, entries[0]["message"])
		assert.Equal[any](t, now.Format(time.RFC3339), entries[0]["timestamp"])
	})

	s.Test("fields are added to the entry with snake case keys", func(t *testcase.T) {
		subject.Get(t).Info(context.Background(), "msg",
			logger.Field("maxSplits", 2),
			logger.Fields{"omit-empty": true})
		entries := decode(t, buf.Get(t))
		assert.Equal(t, 1, len(entries))
		assert.Equal[any](t, float64(2), entries[0]["max_splits"])
		assert.Equal(t, true, entries[0]["omit_empty"])
	})

	s.Test("ErrField adds the error message", func(t *testcase.T) {
		err := errors.New(t.Random.String())
		subject.Get(t).Error(context.Background(), "msg", logger.ErrField(err), logger.ErrField(nil))
		entries := decode(t, buf.Get(t))
		assert.Equal[any](t, map[string]any{"message": err.Error()}, entries[0]["error"])
	})

	s.Test("details in the context are added to the entry", func(t *testcase.T) {
		ctx := logger.ContextWith(context.Background(), logger.Field("a", "1"), logger.Field("b", "1"))
		ctx = logger.ContextWith(ctx, logger.Field("b", "2"))
		subject.Get(t).Info(ctx, "msg", logger.Field("c", "3"))
		entries := decode(t, buf.Get(t))
		assert.Equal(t, "1", entries[0]["a"])
		assert.Equal(t, "2", entries[0]["b"])
		assert.Equal(t, "3", entries[0]["c"])
	})

	s.Test("a nil context is accepted", func(t *testcase.T) {
		//nolint:staticcheck
		subject.Get(t).Info(nil, "msg")
		assert.Equal(t, 1, len(decode(t, buf.Get(t))))
	})

	s.When("the level is raised", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) *logger.Logger {
			return &logger.Logger{Out: buf.Get(t), Level: logger.LevelWarn}
		})

		s.Then("entries below the level are not written", func(t *testcase.T) {
			ctx := context.Background()
			subject.Get(t).Debug(ctx, "debug")
			subject.Get(t).Info(ctx, "info")
			subject.Get(t).Warn(ctx, "warn")
			subject.Get(t).Error(ctx, "error")
			var levels []any
			for _, e := range decode(t, buf.Get(t)) {
				levels = append(levels, e["level"])
			}
			assert.Equal(t, []any{"warn", "error"}, levels)
		})
	})

	s.When("the keys are configured", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) *logger.Logger {
			return &logger.Logger{
				Out:          buf.Get(t),
				MessageKey:   "msg",
				LevelKey:     "lvl",
				TimestampKey: "ts",
				KeyFormatter: strings.ToUpper,
			}
		})

		s.Then("they are used for the entry", func(t *testcase.T) {
			subject.Get(t).Info(context.Background(), "hello", logger.Field("foo", "bar"))
			entries := decode(t, buf.Get(t))
			assert.Equal(t, "hello", entries[0]["MSG"])
			assert.Equal(t, "info", entries[0]["LVL"])
			assert.Equal(t, "bar", entries[0]["FOO"])
			_, ok := entries[0]["TS"]
			assert.True(t, ok)
		})
	})

	s.When("the separator is configured", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) *logger.Logger {
			return &logger.Logger{Out: buf.Get(t), Separator: "|"}
		})

		s.Then("entries are split by it", func(t *testcase.T) {
			n := t.Random.IntBetween(2, 5)
			for range n {
				subject.Get(t).Info(context.Background(), "msg")
			}
			assert.Equal(t, n, strings.Count(buf.Get(t).String(), "|"))
			assert.NotContains(t, buf.Get(t).String(), "\n")
		})
	})

	s.When("the marshal func is configured", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) *logger.Logger {
			return &logger.Logger{Out: buf.Get(t), MarshalFunc: func(v any) ([]byte, error) {
				return []byte("Hello, world!"), nil
			}}
		})

		s.Then("it is used to encode the entry", func(t *testcase.T) {
			subject.Get(t).Info(context.Background(), "msg")
			assert.Equal(t, "Hello, world!\n", buf.Get(t).String())
		})
	})
}

func TestParseLevel(t *testing.T) {
	for raw, exp := range map[string]logger.Level{
		"debug":   logger.LevelDebug,
		"INFO":    logger.LevelInfo,
		"warning": logger.LevelWarn,
		" e ":     logger.LevelError,
	} {
		got, err := logger.ParseLevel(raw)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	}
	_, err := logger.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestStub(t *testing.T) {
	og := logger.Default.Out
	t.Run("", func(t *testing.T) {
		out := logger.Stub(t)
		logger.Debug(context.Background(), "hello")
		assert.Contains(t, out.String(), `"message":"hello"`)
	})
	assert.Equal(t, og, logger.Default.Out, "logger has been restored")
}

type testLogRecorder struct {
	testing.TB
	logs []string
}

func (r *testLogRecorder) Log(args ...any) {
	for _, arg := range args {
		r.logs = append(r.logs, arg.(string))
	}
}

func TestTesting(t *testing.T) {
	rec := &testLogRecorder{TB: t}
	logger.Testing(rec)
	logger.Debug(context.Background(), "foo", logger.Field("bar", 42))
	assert.Equal(t, 1, len(rec.logs))
	assert.Contains(t, rec.logs[0], `"message":"foo"`)
	assert.Contains(t, rec.logs[0], `"bar":42`)
	assert.NotContains(t, rec.logs[0], "\n")
}
