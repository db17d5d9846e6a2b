// Package ui provides the terminal dialogs and task list rendering.
package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// DialogOption configures how dialogs are run.
type DialogOption func(*Dialogs)

// WithInput reads key presses from r instead of stdin.
func WithInput(r io.Reader) DialogOption {
	return func(d *Dialogs) {
		d.input = r
	}
}

// WithOutput renders dialogs to w instead of stdout.
func WithOutput(w io.Writer) DialogOption {
	return func(d *Dialogs) {
		d.output = w
	}
}

// WithAltScreen toggles drawing dialogs in the alternate screen buffer.
func WithAltScreen(enabled bool) DialogOption {
	return func(d *Dialogs) {
		d.altScreen = enabled
	}
}

// Dialogs shows modal dialogs. Each call blocks until the dialog is closed
// and reports false when the user dismissed it.
type Dialogs struct {
	theme     Theme
	input     io.Reader
	output    io.Writer
	altScreen bool
}

// NewDialogs creates a dialog runner using theme.
func NewDialogs(theme Theme, opts ...DialogOption) *Dialogs {
	d := &Dialogs{
		theme:     theme,
		altScreen: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Select shows a single-choice list and returns the chosen option's value.
func (d *Dialogs) Select(ctx context.Context, title, text string, options []Option) (string, bool, error) {
	final, err := d.run(ctx, newSelectModel(d.theme, title, text, options))
	if err != nil {
		return "", false, err
	}
	m, ok := final.(*selectModel)
	if !ok {
		return "", false, nil
	}
	choice, chosen := m.result()
	return choice, chosen, nil
}

// Input shows a free text prompt and returns what was typed.
func (d *Dialogs) Input(ctx context.Context, title, text string) (string, bool, error) {
	final, err := d.run(ctx, newInputModel(d.theme, title, text))
	if err != nil {
		return "", false, err
	}
	m, ok := final.(*inputModel)
	if !ok {
		return "", false, nil
	}
	value, submitted := m.result()
	return value, submitted, nil
}

// Confirm shows a yes/no question. Dismissing it answers No.
func (d *Dialogs) Confirm(ctx context.Context, title, text string) (bool, error) {
	final, err := d.run(ctx, newConfirmModel(d.theme, title, text))
	if err != nil {
		return false, err
	}
	m, ok := final.(*confirmModel)
	if !ok {
		return false, nil
	}
	return m.result(), nil
}

func (d *Dialogs) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if d.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if d.input != nil {
		opts = append(opts, tea.WithInput(d.input))
	}
	if d.output != nil {
		opts = append(opts, tea.WithOutput(d.output))
	}

	program := tea.NewProgram(model, opts...)
	finalModel, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, fmt.Errorf("run dialog: %w", err)
	}
	return finalModel, nil
}
