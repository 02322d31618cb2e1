// Package grepio provides the line-sourcing and output-formatting
// collaborators the core engine is driven from: reading stdin, reading
// named files, walking directories recursively, and printing matching
// lines with the filename-prefix convention of line-oriented search tools.
package grepio

import (
	"fmt"
	"os"
	"strings"
)

var levelOrder = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// Logger is a small leveled stderr logger. Lines below the configured
// level are dropped; everything else is written as
// "[funcName] [LEVEL] message".
type Logger struct {
	level string
}

// NewLogger returns a Logger that only emits lines at or above level.
// Unrecognized levels behave as "debug" (emit everything).
func NewLogger(level string) *Logger {
	return &Logger{level: level}
}

func (l *Logger) Debugf(funcName, format string, args ...interface{}) {
	l.logf(funcName, "debug", format, args...)
}

func (l *Logger) Infof(funcName, format string, args ...interface{}) {
	l.logf(funcName, "info", format, args...)
}

func (l *Logger) Warnf(funcName, format string, args ...interface{}) {
	l.logf(funcName, "warn", format, args...)
}

func (l *Logger) Errorf(funcName, format string, args ...interface{}) {
	l.logf(funcName, "error", format, args...)
}

func (l *Logger) logf(funcName, level, format string, args ...interface{}) {
	if levelOrder[level] < levelOrder[l.level] {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] [%s] %s\n", funcName, strings.ToUpper(level), fmt.Sprintf(format, args...))
}
