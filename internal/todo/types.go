// Package todo parses, updates, and writes the task list file.
package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status markers written in front of every task line.
const (
	DoneMarker    = "✔"
	PendingMarker = "✖"
)

var (
	// ErrEmpty is returned by index-based operations on an empty list.
	ErrEmpty = errors.New("task list is empty")
	// ErrIndex is returned when an index does not address a task.
	ErrIndex = errors.New("task index out of range")
)

// Task represents a single task in the list.
type Task struct {
	Text string
	Done bool
}

// Marker returns the status marker for the task.
func (t Task) Marker() string {
	if t.Done {
		return DoneMarker
	}
	return PendingMarker
}

// List is the ordered, in-memory task list.
type List struct {
	tasks []Task
}

// NewList creates a list holding a copy of tasks.
func NewList(tasks ...Task) *List {
	l := &List{}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Task returns the task at index.
func (l *List) Task(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	return l.tasks[index], nil
}

// Add appends a new not-done task. Blank text is ignored and reported as false.
func (l *List) Add(text string) (Task, bool) {
	normalized := Normalize(text)
	if normalized == "" {
		return Task{}, false
	}
	task := Task{Text: normalized}
	l.tasks = append(l.tasks, task)
	return task, true
}

// Toggle flips the done flag of the task at index and returns the updated task.
func (l *List) Toggle(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	l.tasks[index].Done = !l.tasks[index].Done
	return l.tasks[index], nil
}

// Remove deletes the task at index and returns it.
func (l *List) Remove(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed, nil
}

// Clear discards every task.
func (l *List) Clear() {
	l.tasks = nil
}

func (l *List) checkIndex(index int) error {
	if len(l.tasks) == 0 {
		return ErrEmpty
	}
	if index < 0 || index >= len(l.tasks) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndex, index, len(l.tasks))
	}
	return nil
}

// Normalize trims text and capitalizes it: the first letter is upper-cased
// and the rest lower-cased.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	runes := []rune(text)
	head := cases.Upper(language.Und).String(string(runes[0]))
	tail := cases.Lower(language.Und).String(string(runes[1:]))
	return head + tail
}

// ParseLine parses one line of a task file. It reports false for blank lines.
func ParseLine(line string) (Task, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Task{}, false
	}

	if text, ok := strings.CutPrefix(line, DoneMarker+" "); ok {
		return Task{Text: strings.TrimSpace(text), Done: true}, true
	}
	if text, ok := strings.CutPrefix(line, PendingMarker+" "); ok {
		return Task{Text: strings.TrimSpace(text)}, true
	}

	// Legacy format: plain line = not done
	return Task{Text: line}, true
}

// FormatLine formats a task as a file line without the trailing newline.
func FormatLine(t Task) string {
	return t.Marker() + " " + t.Text
}

// Read parses a task list from r. Lines of any length are accepted.
func Read(r io.Reader) (*List, error) {
	l := &List{}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if task, ok := ParseLine(line); ok {
				l.tasks = append(l.tasks, task)
			}
		}
		if errors.Is(err, io.EOF) {
			return l, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read task line: %w", err)
		}
	}
}

// Write writes the task list to w, one line per task.
func (l *List) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, task := range l.tasks {
		if _, err := bw.WriteString(FormatLine(task) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads the task file at path. A missing file yields an empty list.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &List{}, nil
		}
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return l, nil
}

// Save overwrites the task file at path with the current list.
// The write is not atomic.
func (l *List) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open task file: %w", err)
	}

	if err := l.Write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write task file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close task file: %w", err)
	}
	return nil
}
