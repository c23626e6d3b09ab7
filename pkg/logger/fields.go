package logger

import (
	"strings"
	"unicode"
)

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(l *Logger, e entry)
}

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e entry) {
	e[l.getKeyFormatter()(f.Key)] = l.toFieldValue(f.Value)
}

// Fields is a collection of field that you can add to your logging record.
type Fields map[string]any

func (fields Fields) addTo(l *Logger, e entry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// ErrField adds the error's message under the "error" key.
// A nil error adds nothing.
func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

func (l *Logger) toFieldValue(val any) any {
	switch val := val.(type) {
	case Fields:
		le := entry{}
		val.addTo(l, le)
		return map[string]any(le)
	case field:
		le := entry{}
		val.addTo(l, le)
		return map[string]any(le)
	case []Detail:
		le := entry{}
		for _, d := range val {
			d.addTo(l, le)
		}
		return map[string]any(le)
	case error:
		return val.Error()
	default:
		return val
	}
}

type entry map[string]any

type nullDetail struct{}

func (nullDetail) addTo(*Logger, entry) {}

// toSnake formats "fooBar", "FooBar" and "foo-bar" as "foo_bar".
func toSnake(s string) string {
	var (
		b    strings.Builder
		prev rune
	)
	for i, r := range s {
		switch {
		case r == '-' || r == ' ' || r == '.':
			b.WriteRune('_')
		case unicode.IsUpper(r):
			if 0 < i && !unicode.IsUpper(prev) && !strings.ContainsRune("_- .", prev) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
