package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a single-line free text prompt.
type inputModel struct {
	theme     Theme
	title     string
	text      string
	input     textinput.Model
	width     int
	height    int
	submitted bool
}

func newInputModel(theme Theme, title, text string) *inputModel {
	ti := textinput.New()
	ti.Placeholder = "Task"
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = "> "
	ti.Focus()

	return &inputModel{
		theme: theme,
		title: title,
		text:  text,
		input: ti,
	}
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 20; w > 10 {
			m.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.submitted = false
			return m, tea.Quit
		case "enter":
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Body.Render(m.text))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("enter ok • esc cancel"))
	return m.theme.dialog(m.title, b.String(), m.width, m.height)
}

// result returns the typed text, or false when the dialog was canceled.
func (m *inputModel) result() (string, bool) {
	if !m.submitted {
		return "", false
	}
	return m.input.Value(), true
}
