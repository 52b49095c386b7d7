// Package textfile implements the service.Service interface on two
// line-oriented text files: one for pending tasks, one for completed tasks.
package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"task/internal/config"
	"task/internal/logging"
	"task/internal/service"
)

// FileMode is the permission used when creating task files.
const FileMode = 0644

var _ service.Service = (*Store)(nil)

// Store implements service.Service on the pending and completed files.
type Store struct {
	pendingPath   string
	completedPath string
	logger        *log.Logger
}

// New creates a Store for the paths in cfg. The files are not touched
// until an operation needs them. A nil logger discards diagnostics.
func New(cfg *config.Config, logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		pendingPath:   cfg.PendingPath(),
		completedPath: cfg.CompletedPath(),
		logger:        logger,
	}
}

// Pending implements service.Service.
func (s *Store) Pending(ctx context.Context) ([]service.Task, error) {
	lines := s.readLines(s.pendingPath)
	tasks := make([]service.Task, 0, len(lines))
	for _, l := range lines {
		task, ok := service.ParseLine(l.text)
		if !ok {
			return nil, &service.LineError{Path: s.pendingPath, Line: l.num, Text: l.text}
		}
		tasks = append(tasks, task)
	}
	s.logger.Debug("read pending tasks", "path", s.pendingPath, "count", len(tasks))
	return tasks, nil
}

// Completed implements service.Service.
func (s *Store) Completed(ctx context.Context) ([]service.CompletedTask, error) {
	lines := s.readLines(s.completedPath)
	done := make([]service.CompletedTask, len(lines))
	for i, l := range lines {
		done[i] = service.CompletedTask{Description: l.text}
	}
	s.logger.Debug("read completed tasks", "path", s.completedPath, "count", len(done))
	return done, nil
}

// Add implements service.Service.
func (s *Store) Add(ctx context.Context, task service.Task) error {
	if task.Priority < 0 {
		return service.ErrInvalidPriority
	}
	task.Description = service.NormalizeDescription(task.Description)

	tasks, err := s.Pending(ctx)
	if err != nil {
		return err
	}
	return s.writePending(ctx, service.Insert(tasks, task))
}

// Delete implements service.Service.
func (s *Store) Delete(ctx context.Context, index int) (service.Task, error) {
	tasks, err := s.Pending(ctx)
	if err != nil {
		return service.Task{}, err
	}

	rest, removed, err := service.Remove(tasks, index)
	if err != nil {
		return service.Task{}, err
	}
	if err := s.writePending(ctx, rest); err != nil {
		return service.Task{}, err
	}
	return removed, nil
}

// Complete implements service.Service.
// The completed file is appended to before the pending file is rewritten.
func (s *Store) Complete(ctx context.Context, index int) (service.Task, error) {
	tasks, err := s.Pending(ctx)
	if err != nil {
		return service.Task{}, err
	}

	rest, removed, err := service.Remove(tasks, index)
	if err != nil {
		return service.Task{}, err
	}
	if err := s.appendCompleted(ctx, removed.Description); err != nil {
		return service.Task{}, err
	}
	if err := s.writePending(ctx, rest); err != nil {
		return service.Task{}, err
	}
	return removed, nil
}

type line struct {
	num  int // 1-based position in the file
	text string
}

// readLines returns the non-blank lines of path.
// A missing or unreadable file reads as empty.
func (s *Store) readLines(path string) []line {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("treating unreadable file as empty", "path", path, "err", err)
		}
		return nil
	}

	var lines []line
	for i, text := range strings.Split(string(data), "\n") {
		text = strings.TrimSuffix(text, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, line{num: i + 1, text: text})
	}
	return lines
}

func (s *Store) writePending(ctx context.Context, tasks []service.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, t := range tasks {
		buf.WriteString(t.Line())
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(s.pendingPath, buf.Bytes(), FileMode); err != nil {
		return fmt.Errorf("writing pending tasks: %w", err)
	}
	s.logger.Debug("wrote pending tasks", "path", s.pendingPath, "count", len(tasks))
	return nil
}

func (s *Store) appendCompleted(ctx context.Context, description string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.completedPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, FileMode)
	if err != nil {
		return fmt.Errorf("opening completed tasks: %w", err)
	}
	defer f.Close()

	entry := description + "\n"
	if needsNewline(f) {
		entry = "\n" + entry
	}
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("appending completed task: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("appending completed task: %w", err)
	}
	s.logger.Debug("appended completed task", "path", s.completedPath)
	return nil
}

// needsNewline reports whether f is non-empty and its last byte is not a
// line break, as left behind by a hand edit.
func needsNewline(f *os.File) bool {
	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return false
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false
	}
	return last[0] != '\n'
}
