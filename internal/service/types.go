// Package service defines the storage-agnostic interface for task operations.
package service

import (
	"errors"
	"fmt"
)

// Task represents a single pending task.
type Task struct {
	Priority    int
	Description string
}

// CompletedTask represents a task that has been marked done.
// The priority is discarded on completion.
type CompletedTask struct {
	Description string
}

var (
	// ErrInvalidPriority indicates a priority that is not a non-negative integer.
	ErrInvalidPriority = errors.New("priority should be a non-negative integer")

	// ErrIndexOutOfRange indicates a task index outside the current list.
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrMalformedLine indicates a stored line that cannot be parsed as a task.
	ErrMalformedLine = errors.New("malformed task line")
)

// LineError reports a stored line that failed to parse.
type LineError struct {
	Path string
	Line int // 1-based, counting blank lines
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %s %q", e.Path, e.Line, ErrMalformedLine, e.Text)
}

// Unwrap lets errors.Is match ErrMalformedLine.
func (e *LineError) Unwrap() error {
	return ErrMalformedLine
}

// IndexError reports an out-of-range index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d (have %d)", ErrIndexOutOfRange, e.Index, e.Len)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
