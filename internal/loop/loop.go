// Package loop runs the menu-driven task list session.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/todo"
	"github.com/nibzard/todo-go/internal/ui"
)

// Action is a main menu choice.
type Action string

const (
	ActionAdd    Action = "add"
	ActionToggle Action = "toggle"
	ActionRemove Action = "remove"
	ActionClear  Action = "clear"
	ActionQuit   Action = "quit"
)

// MenuOptions are the main menu entries in display order.
var MenuOptions = []ui.Option{
	{Value: string(ActionAdd), Label: "Add task"},
	{Value: string(ActionToggle), Label: "Mark task as done/undone"},
	{Value: string(ActionRemove), Label: "Remove task"},
	{Value: string(ActionClear), Label: "Clear all tasks"},
	{Value: string(ActionQuit), Label: "Save + Quit"},
}

// Prompter shows modal dialogs. Every call blocks until the user answers;
// ok is false when the dialog was dismissed without a value.
type Prompter interface {
	Select(ctx context.Context, title, text string, options []ui.Option) (choice string, ok bool, err error)
	Input(ctx context.Context, title, text string) (value string, ok bool, err error)
	Confirm(ctx context.Context, title, text string) (yes bool, err error)
}

// Option configures a Loop.
type Option func(*Loop)

// WithOutput sets where feedback messages are printed.
func WithOutput(w io.Writer) Option {
	return func(l *Loop) {
		l.out = w
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithWidth sets the function that reports the terminal width before each menu.
func WithWidth(width func() int) Option {
	return func(l *Loop) {
		l.width = width
	}
}

// Loop manages the menu state and the in-memory task list.
type Loop struct {
	prompter Prompter
	theme    ui.Theme
	taskPath string
	list     *todo.List
	out      io.Writer
	logger   *log.Logger
	width    func() int
}

// New creates a loop over the task file at taskPath.
func New(prompter Prompter, theme ui.Theme, taskPath string, opts ...Option) *Loop {
	l := &Loop{
		prompter: prompter,
		theme:    theme,
		taskPath: taskPath,
		list:     todo.NewList(),
		out:      os.Stdout,
		logger:   logging.Discard(),
		width:    func() int { return ui.TerminalWidth(os.Stdout) },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tasks returns a copy of the in-memory tasks.
func (l *Loop) Tasks() []todo.Task {
	return l.list.Tasks()
}

// Run loads the task file, then shows the menu until the user quits.
// The list is saved only on quit.
func (l *Loop) Run(ctx context.Context) error {
	list, err := todo.Load(l.taskPath)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	l.list = list
	l.logger.Debug("loaded tasks", "path", l.taskPath, "count", list.Len())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := l.Step(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step shows the main menu once and performs the chosen action.
// It reports true after the list was saved on quit.
func (l *Loop) Step(ctx context.Context) (bool, error) {
	text := ui.MenuText(l.theme, l.list.Tasks(), l.width())
	choice, ok, err := l.prompter.Select(ctx, "TO DO List", text, MenuOptions)
	if err != nil {
		return false, fmt.Errorf("main menu: %w", err)
	}
	if !ok {
		return false, nil
	}

	switch Action(choice) {
	case ActionAdd:
		return false, l.add(ctx)
	case ActionToggle:
		return false, l.toggle(ctx)
	case ActionRemove:
		return false, l.remove(ctx)
	case ActionClear:
		return false, l.clear(ctx)
	case ActionQuit:
		return true, l.quit()
	default:
		l.logger.Warn("unknown menu choice", "choice", choice)
		return false, nil
	}
}

func (l *Loop) add(ctx context.Context) error {
	value, ok, err := l.prompter.Input(ctx, "Add Task", "Enter the new task:")
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	if !ok {
		return nil
	}
	task, added := l.list.Add(value)
	if !added {
		return nil
	}
	l.logger.Debug("added task", "text", task.Text)
	l.success(fmt.Sprintf("\"%s\" added.", task.Text))
	return nil
}

func (l *Loop) toggle(ctx context.Context) error {
	if l.list.Len() == 0 {
		l.failure("No tasks to update.")
		return nil
	}
	index, ok, err := l.pickTask(ctx, "Toggle Task", "Select a task to mark as done/undone:")
	if err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}
	if !ok {
		return nil
	}
	task, err := l.list.Toggle(index)
	if err != nil {
		l.logger.Warn("toggle failed", "index", index, "err", err)
		return nil
	}
	state := "Not done"
	if task.Done {
		state = "Done"
	}
	l.success("Task marked as: " + state)
	return nil
}

func (l *Loop) remove(ctx context.Context) error {
	if l.list.Len() == 0 {
		l.failure("No tasks to remove.")
		return nil
	}
	index, ok, err := l.pickTask(ctx, "Remove Task", "Select a task:")
	if err != nil {
		return fmt.Errorf("remove task: %w", err)
	}
	if !ok {
		return nil
	}
	task, err := l.list.Remove(index)
	if err != nil {
		l.logger.Warn("remove failed", "index", index, "err", err)
		return nil
	}
	l.failure(fmt.Sprintf("Removed \"%s\".", task.Text))
	return nil
}

func (l *Loop) clear(ctx context.Context) error {
	yes, err := l.prompter.Confirm(ctx, "Confirm", "Delete ALL tasks?")
	if err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if !yes {
		return nil
	}
	l.list.Clear()
	l.failure("All tasks cleared.")
	return nil
}

func (l *Loop) quit() error {
	if err := l.list.Save(l.taskPath); err != nil {
		l.logger.Error("save failed", "path", l.taskPath, "err", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	l.logger.Info("saved tasks", "path", l.taskPath, "count", l.list.Len())
	l.success("Goodbye!")
	return nil
}

// pickTask asks for a task and returns its 0-based index.
func (l *Loop) pickTask(ctx context.Context, title, text string) (int, bool, error) {
	choice, ok, err := l.prompter.Select(ctx, title, text, ui.TaskOptions(l.list.Tasks()))
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(choice)
	if err != nil {
		l.logger.Warn("invalid task choice", "choice", choice)
		return 0, false, nil
	}
	return n - 1, true, nil
}

func (l *Loop) success(msg string) {
	fmt.Fprintln(l.out, l.theme.Success.Render(msg))
}

func (l *Loop) failure(msg string) {
	fmt.Fprintln(l.out, l.theme.Failure.Render(msg))
}

// IsCanceled reports whether err came from an interrupted session.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
