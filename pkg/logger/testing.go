package logger

import (
	"bytes"
	"io"
	"strings"
	"sync"
)

type testingTB interface {
	Helper()
	Cleanup(func())
	Log(args ...any)
}

// Testing redirects the output of logger.Default into the test log at debug level,
// so the log entries are only shown for failing or verbose tests.
// The original configuration of logger.Default is restored at the end of the test.
func Testing(tb testingTB) {
	tb.Helper()
	out := &tbWriter{TB: tb}
	stub(tb, func(s *settings) {
		s.Out = out
		s.Level = LevelDebug
	})
}

// Stub replaces the output of logger.Default with a buffer, and returns it.
// logger.Default is restored at the end of the test.
func Stub(tb testingTB) StubOutput {
	tb.Helper()
	buf := &stubOutput{}
	stub(tb, func(s *settings) {
		s.Out = buf
		s.Level = LevelDebug
	})
	return buf
}

func stub(tb testingTB, configure func(s *settings)) {
	og := Default.settings()
	tb.Cleanup(func() { Default.apply(og) })
	s := og
	configure(&s)
	Default.apply(s)
}

// settings is the configurable part of a Logger.
type settings struct {
	Out          io.Writer
	MessageKey   string
	LevelKey     string
	TimestampKey string
	Level        Level
	Separator    string
	MarshalFunc  func(any) ([]byte, error)
	KeyFormatter func(string) string
}

func (l *Logger) settings() settings {
	l.outLock.Lock()
	defer l.outLock.Unlock()
	return settings{
		Out:          l.Out,
		MessageKey:   l.MessageKey,
		LevelKey:     l.LevelKey,
		TimestampKey: l.TimestampKey,
		Level:        l.Level,
		Separator:    l.Separator,
		MarshalFunc:  l.MarshalFunc,
		KeyFormatter: l.KeyFormatter,
	}
}

func (l *Logger) apply(s settings) {
	l.outLock.Lock()
	defer l.outLock.Unlock()
	l.Out = s.Out
	l.MessageKey = s.MessageKey
	l.LevelKey = s.LevelKey
	l.TimestampKey = s.TimestampKey
	l.Level = s.Level
	l.Separator = s.Separator
	l.MarshalFunc = s.MarshalFunc
	l.KeyFormatter = s.KeyFormatter
}

type tbWriter struct {
	TB testingTB
}

func (w *tbWriter) Write(p []byte) (int, error) {
	w.TB.Helper()
	w.TB.Log(strings.TrimRight(string(p), "\r\n"))
	return len(p), nil
}

type StubOutput interface {
	String() string
	Bytes() []byte
}

type stubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *stubOutput) Write(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *stubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}

func (o *stubOutput) Bytes() []byte {
	o.m.Lock()
	defer o.m.Unlock()
	return append([]byte{}, o.buf.Bytes()...)
}
