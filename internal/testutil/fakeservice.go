// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"slices"
	"sync"

	"task/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu        sync.RWMutex
	pending   []service.Task
	completed []service.CompletedTask

	// Error injection for testing
	PendingErr   error
	CompletedErr error
	AddErr       error
	DeleteErr    error
	CompleteErr  error

	// Calls counts mutating calls that reached the store.
	Calls int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddPending appends a pending task in stored order, bypassing insertion
// rules, to model a hand-edited store.
func (f *FakeService) AddPending(priority int, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, service.Task{Priority: priority, Description: description})
}

// AddCompleted appends a completed task.
func (f *FakeService) AddCompleted(description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, service.CompletedTask{Description: description})
}

// PendingTasks returns a copy of the pending tasks in stored order.
func (f *FakeService) PendingTasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.pending)
}

// CompletedTasks returns a copy of the completed tasks.
func (f *FakeService) CompletedTasks() []service.CompletedTask {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.completed)
}

// Pending implements service.Service.
func (f *FakeService) Pending(ctx context.Context) ([]service.Task, error) {
	if f.PendingErr != nil {
		return nil, f.PendingErr
	}
	return f.PendingTasks(), nil
}

// Completed implements service.Service.
func (f *FakeService) Completed(ctx context.Context) ([]service.CompletedTask, error) {
	if f.CompletedErr != nil {
		return nil, f.CompletedErr
	}
	return f.CompletedTasks(), nil
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, task service.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.AddErr != nil {
		return f.AddErr
	}
	if task.Priority < 0 {
		return service.ErrInvalidPriority
	}
	task.Description = service.NormalizeDescription(task.Description)
	f.pending = service.Insert(f.pending, task)
	return nil
}

// Delete implements service.Service.
func (f *FakeService) Delete(ctx context.Context, index int) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.DeleteErr != nil {
		return service.Task{}, f.DeleteErr
	}
	rest, removed, err := service.Remove(f.pending, index)
	if err != nil {
		return service.Task{}, err
	}
	f.pending = rest
	return removed, nil
}

// Complete implements service.Service.
func (f *FakeService) Complete(ctx context.Context, index int) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.CompleteErr != nil {
		return service.Task{}, f.CompleteErr
	}
	rest, removed, err := service.Remove(f.pending, index)
	if err != nil {
		return service.Task{}, err
	}
	f.pending = rest
	f.completed = append(f.completed, service.CompletedTask{Description: removed.Description})
	return removed, nil
}
