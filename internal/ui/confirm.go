package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a yes/no question. Focus starts on Yes.
type confirmModel struct {
	theme    Theme
	title    string
	text     string
	yes      bool
	width    int
	height   int
	answered bool
}

func newConfirmModel(theme Theme, title, text string) *confirmModel {
	return &confirmModel{
		theme: theme,
		title: title,
		text:  text,
		yes:   true,
	}
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.answered = false
			return m, tea.Quit
		case "left", "right", "tab", "shift+tab", "h", "l":
			m.yes = !m.yes
		case "y", "Y":
			m.yes = true
			m.answered = true
			return m, tea.Quit
		case "n", "N":
			m.yes = false
			m.answered = true
			return m, tea.Quit
		case "enter", " ":
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	yes, no := m.theme.Body.Render(" Yes "), m.theme.Body.Render(" No ")
	if m.yes {
		yes = m.theme.Selected.Render(" Yes ")
	} else {
		no = m.theme.Selected.Render(" No ")
	}

	var b strings.Builder
	b.WriteString(m.theme.Body.Render(m.text))
	b.WriteString("\n\n")
	b.WriteString("<" + yes + ">   <" + no + ">")
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("←/→ switch • y/n answer • esc cancel"))
	return m.theme.dialog(m.title, b.String(), m.width, m.height)
}

// result reports whether the user answered Yes. Canceling counts as No.
func (m *confirmModel) result() bool {
	return m.answered && m.yes
}
