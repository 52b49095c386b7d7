// Package logging builds the diagnostic logger shared by the dispatcher and
// the task store.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed ahead of every log line.
const Prefix = "task"

// New creates a leveled text logger writing to w.
// Unknown level names fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
