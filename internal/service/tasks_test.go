package service

import (
	"errors"
	"slices"
	"testing"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"2", 2, false},
		{"007", 7, false},
		{"", 0, true},
		{"-1", 0, true},
		{"+3", 0, true},
		{"1.5", 0, true},
		{" 1", 0, true},
		{"abc", 0, true},
		{"99999999999999999999999", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPriority) {
				t.Errorf("ParsePriority(%q): expected ErrInvalidPriority, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestParseLine(t *testing.T) {
	task, ok := ParseLine("2 hello  world ")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if task.Priority != 2 {
		t.Errorf("expected priority 2, got %d", task.Priority)
	}
	if task.Description != "hello  world " {
		t.Errorf("expected description to be kept verbatim, got %q", task.Description)
	}

	for _, line := range []string{"x hello", "-1 hello", " 1 hello", "5", "5 ", "5   "} {
		if _, ok := ParseLine(line); ok {
			t.Errorf("expected %q to be rejected", line)
		}
	}
}

func TestTaskLine_RoundTrip(t *testing.T) {
	in := Task{Priority: 3, Description: "buy milk"}
	if in.Line() != "3 buy milk" {
		t.Errorf("expected %q, got %q", "3 buy milk", in.Line())
	}
	out, ok := ParseLine(in.Line())
	if !ok || out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestNormalizeDescription(t *testing.T) {
	got := NormalizeDescription("a\r\nb\nc\rd")
	if got != "a b c d" {
		t.Errorf("expected %q, got %q", "a b c d", got)
	}
}

func TestInsert_GroupsEqualPriorities(t *testing.T) {
	var tasks []Task
	tasks = Insert(tasks, Task{Priority: 2, Description: "a"})
	tasks = Insert(tasks, Task{Priority: 1, Description: "b"})
	tasks = Insert(tasks, Task{Priority: 2, Description: "c"})
	tasks = Insert(tasks, Task{Priority: 0, Description: "d"})
	tasks = Insert(tasks, Task{Priority: 5, Description: "e"})
	tasks = Insert(tasks, Task{Priority: 1, Description: "f"})

	var got []string
	for _, task := range tasks {
		got = append(got, task.Description)
	}
	want := []string{"d", "b", "f", "a", "c", "e"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestInsert_UnsortedStore(t *testing.T) {
	// A hand-edited store need not be sorted; insertion goes before the
	// first strictly greater priority regardless.
	tasks := []Task{{3, "x"}, {1, "y"}}
	tasks = Insert(tasks, Task{Priority: 2, Description: "z"})

	want := []Task{{2, "z"}, {3, "x"}, {1, "y"}}
	if !slices.Equal(tasks, want) {
		t.Errorf("expected %v, got %v", want, tasks)
	}
}

func TestRemove(t *testing.T) {
	tasks := []Task{{1, "a"}, {2, "b"}, {3, "c"}}

	rest, removed, err := Remove(slices.Clone(tasks), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != (Task{2, "b"}) {
		t.Errorf("expected removed {2 b}, got %+v", removed)
	}
	if !slices.Equal(rest, []Task{{1, "a"}, {3, "c"}}) {
		t.Errorf("unexpected remainder %v", rest)
	}

	for _, index := range []int{0, -1, 4} {
		rest, _, err := Remove(slices.Clone(tasks), index)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("index %d: expected ErrIndexOutOfRange, got %v", index, err)
		}
		if !slices.Equal(rest, tasks) {
			t.Errorf("index %d: tasks changed to %v", index, rest)
		}
	}
}

func TestSortByPriority_Stable(t *testing.T) {
	tasks := []Task{{3, "a"}, {1, "b"}, {3, "c"}, {0, "d"}, {1, "e"}}
	sorted := SortByPriority(tasks)

	want := []Task{{0, "d"}, {1, "b"}, {1, "e"}, {3, "a"}, {3, "c"}}
	if !slices.Equal(sorted, want) {
		t.Errorf("expected %v, got %v", want, sorted)
	}
	if tasks[0] != (Task{3, "a"}) {
		t.Error("SortByPriority must not modify its input")
	}
}

func TestLineError(t *testing.T) {
	err := error(&LineError{Path: "task.txt", Line: 3, Text: "oops"})
	if !errors.Is(err, ErrMalformedLine) {
		t.Error("expected LineError to match ErrMalformedLine")
	}
	want := `task.txt:3: malformed task line "oops"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
