// ABOUTME: Plain-text logger on Go's standard log package, honoring a minimum level
// ABOUTME: The LOG_FORMAT=text alternative to the logrus JSON logger

package standard

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// StandardLogger implements the Logger interface with line-oriented text
// output. Messages below the configured minimum level are dropped.
type StandardLogger struct {
	min    level
	out    *log.Logger
	errOut *log.Logger
}

// NewStandardLogger creates a text logger at info level.
func NewStandardLogger() *StandardLogger {
	return NewStandardLoggerAt("info")
}

// NewStandardLoggerAt creates a text logger with the given minimum level.
// Unknown level strings fall back to info.
func NewStandardLoggerAt(minLevel string) *StandardLogger {
	return &StandardLogger{
		min:    parseLevel(minLevel),
		out:    log.New(os.Stdout, "", log.LstdFlags),
		errOut: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.write(levelDebug, "[DEBUG]", msg, fields)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.write(levelInfo, "[INFO]", msg, fields)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.write(levelWarn, "[WARN]", msg, fields)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.write(levelError, "[ERROR]", msg, fields)
}

func (l *StandardLogger) write(lv level, tag, msg string, fields map[string]interface{}) {
	if lv < l.min {
		return
	}
	logger := l.out
	if lv == levelError {
		logger = l.errOut
	}

	if len(fields) == 0 {
		logger.Printf("%s %s", tag, msg)
		return
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		logger.Printf("%s %s (failed to marshal fields: %v)", tag, msg, err)
		return
	}
	logger.Printf("%s %s %s", tag, msg, fieldsJSON)
}
