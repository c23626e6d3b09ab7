package logger

import (
	"fmt"
	"os"
	"strings"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Level string

func (ll Level) String() string { return string(ll) }

var levelAliases = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
}

// ParseLevel accepts a level name or its first letter, in any case.
func ParseLevel(raw string) (Level, error) {
	if level, ok := levelAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return level, nil
	}
	return "", fmt.Errorf("unknown logging level: %q", raw)
}

var defaultLevel = LevelInfo

func init() {
	if level, ok := lookupLevelFromENV(); ok {
		defaultLevel = level
	}
}

var levelEnvKeys = []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"}

func lookupLevelFromENV() (Level, bool) {
	for _, key := range levelEnvKeys {
		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if level, err := ParseLevel(raw); err == nil {
			return level, true
		}
	}
	return "", false
}

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,

	*new(Level): 1, // zero Level value is considered as LevelInfo
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}
