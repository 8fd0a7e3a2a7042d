// Package logging configures the structured loggers used by evmkit. The
// library logs through component-scoped children of one process-wide
// default, so an embedding application can redirect or silence everything
// by swapping that default.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the charmbracelet logger type used throughout evmkit.
type Logger = log.Logger

// New builds a logger writing to w at the named level ("debug", "info",
// "warn", "error", "fatal"). Unknown names fall back to info; a nil writer
// falls back to stderr.
func New(level string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	l.SetLevel(parseLevel(level))
	return l
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

var defaultLogger = New("info", os.Stderr)

// SetDefault replaces the process-wide default that Component derives its
// children from. Loggers already handed out keep their old sink.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the process-wide default logger.
func Default() *Logger {
	return defaultLogger
}

// Component returns a child of the default logger prefixed with a
// component name, e.g. "chain" for the RPC facade.
func Component(name string) *Logger {
	child := defaultLogger.With()
	child.SetPrefix(name)
	return child
}
