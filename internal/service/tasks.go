package service

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// ParsePriority parses a user-supplied priority.
// Only plain decimal digits are accepted: no sign, no whitespace.
func ParsePriority(s string) (int, error) {
	if s == "" {
		return 0, ErrInvalidPriority
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidPriority
		}
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		// Overflow.
		return 0, ErrInvalidPriority
	}
	return p, nil
}

// ParseLine parses a stored "<priority> <description>" line.
// The description is everything after the first space, verbatim.
// A line with no description, such as "5" or "5  ", is rejected: add never
// writes one, and completing it would record an empty line.
func ParseLine(line string) (Task, bool) {
	prio, desc, found := strings.Cut(line, " ")
	if !found || strings.TrimSpace(desc) == "" {
		return Task{}, false
	}
	p, err := ParsePriority(prio)
	if err != nil {
		return Task{}, false
	}
	return Task{Priority: p, Description: desc}, true
}

// Line serializes a task into its stored form.
func (t Task) Line() string {
	return strconv.Itoa(t.Priority) + " " + t.Description
}

// NormalizeDescription replaces line breaks with spaces so that a task
// always occupies exactly one stored line.
func NormalizeDescription(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// Insert returns tasks with t placed before the first task whose priority
// strictly exceeds t's, or appended at the end. Tasks of equal priority
// therefore stay grouped, newest last.
func Insert(tasks []Task, t Task) []Task {
	i := slices.IndexFunc(tasks, func(x Task) bool { return x.Priority > t.Priority })
	if i < 0 {
		return append(tasks, t)
	}
	return slices.Insert(tasks, i, t)
}

// Remove returns tasks without the task at the 1-based index, and the
// removed task.
func Remove(tasks []Task, index int) ([]Task, Task, error) {
	if index < 1 || index > len(tasks) {
		return tasks, Task{}, &IndexError{Index: index, Len: len(tasks)}
	}
	removed := tasks[index-1]
	return slices.Delete(tasks, index-1, index), removed, nil
}

// SortByPriority returns a copy of tasks sorted by ascending priority.
// The sort is stable: equal priorities keep their stored order.
func SortByPriority(tasks []Task) []Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b Task) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return sorted
}
