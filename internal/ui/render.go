package ui

import (
	"fmt"
	"strings"

	"github.com/nibzard/todo-go/internal/todo"
)

// EmptyListMessage replaces the listing when there are no tasks.
const EmptyListMessage = "No tasks yet."

// FormatTask formats a task as its colored status marker followed by the text.
// Each segment carries the body background so the line stays filled after the
// marker's reset.
func FormatTask(theme Theme, t todo.Task) string {
	style := theme.Pending
	if t.Done {
		style = theme.Done
	}
	return style.Render(t.Marker()) + theme.Body.Render(" "+t.Text)
}

// FormatListing formats tasks as a 1-indexed list, one per line.
func FormatListing(theme Theme, tasks []todo.Task) string {
	if len(tasks) == 0 {
		return EmptyListMessage
	}
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("%d. %s", i+1, FormatTask(theme, t))
	}
	return strings.Join(lines, "\n")
}

// Rule returns a horizontal rule that fits, together with the dialog frame,
// inside a terminal of the given width.
func Rule(theme Theme, width int) string {
	n := width - theme.Frame.GetHorizontalFrameSize() - 1
	if n < 1 {
		n = 1
	}
	return strings.Repeat("─", n)
}

// MenuText builds the main menu body: the listing, a rule, and the prompt.
func MenuText(theme Theme, tasks []todo.Task, width int) string {
	return fmt.Sprintf("Your tasks:\n\n%s\n\n%s\n\nChoose an option:",
		FormatListing(theme, tasks), Rule(theme, width))
}

// TaskOptions returns one option per task, valued by its 1-based position.
func TaskOptions(tasks []todo.Task) []Option {
	options := make([]Option, len(tasks))
	for i, t := range tasks {
		options[i] = Option{Value: fmt.Sprintf("%d", i+1), Label: t.Text}
	}
	return options
}
