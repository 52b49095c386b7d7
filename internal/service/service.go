// Package service defines the storage-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task store operations.
// Commands never touch the task files directly; everything goes through
// this interface.
type Service interface {
	// Pending returns the pending tasks in stored order (not sorted).
	// A missing store yields an empty slice and no error.
	Pending(ctx context.Context) ([]Task, error)

	// Completed returns completed tasks in the order they were completed.
	Completed(ctx context.Context) ([]CompletedTask, error)

	// Add inserts a task ahead of the first pending task with a strictly
	// greater priority, or at the end.
	// Returns ErrInvalidPriority if the priority is negative.
	Add(ctx context.Context, task Task) error

	// Delete removes the pending task at the 1-based index (stored order)
	// and returns it. Returns ErrIndexOutOfRange if index is not in [1, len].
	Delete(ctx context.Context, index int) (Task, error)

	// Complete removes the pending task at the 1-based index (stored order)
	// and appends its description to the completed tasks.
	// Returns ErrIndexOutOfRange if index is not in [1, len].
	Complete(ctx context.Context, index int) (Task, error)
}
