package uievents

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package logger. The pipeline runs on one goroutine, so a
// plain variable is enough.
var logger = newDefaultLogger()

func newDefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "uievents",
		Level:  log.WarnLevel,
	})
}

// SetLogger replaces the logger used by uievents and its sub-packages.
// Pass nil to discard all output.
//
// Levels used:
//   - debug: per-frame stats, selection changes, module switches
//   - warn: duplicate event systems, deep trees
//   - error: handler failures, reentrant selection
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}
	logger = l
}

// Logger returns the current logger.
func Logger() *log.Logger {
	return logger
}
