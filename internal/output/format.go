// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"task/internal/config"
	"task/internal/service"
)

// FormatTask formats a pending task line.
// Format: "{N}. {DESCRIPTION} [{PRIORITY}]\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%d. %s [%d]\n", num, task.Description, task.Priority)
}

// FormatCompleted formats a completed task line.
// Format: "{N}. {DESCRIPTION}\n"
func FormatCompleted(w io.Writer, num int, task service.CompletedTask) {
	fmt.Fprintf(w, "%d. %s\n", num, task.Description)
}

// FormatCount formats a report section header such as "Pending : 3".
func FormatCount(w io.Writer, label string, n int) {
	fmt.Fprintf(w, "%s : %d\n", label, n)
}

// Messenger prints status lines, colored according to the configured mode.
// In auto mode each writer is checked on its own, so stderr can be colored
// while stdout is piped, and the reverse.
type Messenger struct {
	mode string
}

// NewMessenger creates a Messenger for the given color mode
// (config.ColorAuto, config.ColorAlways or config.ColorNever).
func NewMessenger(mode string) *Messenger {
	return &Messenger{mode: mode}
}

// Errorf prints an "Error: ..." line.
func (m *Messenger) Errorf(w io.Writer, format string, args ...any) {
	m.paint(w, color.FgRed).Fprintf(w, "Error: "+format, args...)
	fmt.Fprintln(w)
}

// Okf prints a success line.
func (m *Messenger) Okf(w io.Writer, format string, args ...any) {
	m.paint(w, color.FgGreen).Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

func (m *Messenger) paint(w io.Writer, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if m.colorize(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// colorize reports whether output to w gets escape sequences.
func (m *Messenger) colorize(w io.Writer) bool {
	switch m.mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
