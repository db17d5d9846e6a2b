package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Option is one entry of a selection dialog.
type Option struct {
	Value string
	Label string
}

// selectModel is a single-choice radio list.
type selectModel struct {
	theme   Theme
	title   string
	text    string
	options []Option
	cursor  int
	width   int
	height  int
	choice  string
	chosen  bool
}

func newSelectModel(theme Theme, title, text string, options []Option) *selectModel {
	return &selectModel{
		theme:   theme,
		title:   title,
		text:    text,
		options: options,
	}
}

func (m *selectModel) Init() tea.Cmd {
	return nil
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.chosen = false
			return m, tea.Quit
		case "up", "k", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j", "tab":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.options) > 0 {
				m.cursor = len(m.options) - 1
			}
		case "enter", " ":
			if len(m.options) == 0 {
				return m, tea.Quit
			}
			m.choice = m.options[m.cursor].Value
			m.chosen = true
			return m, tea.Quit
		default:
			// 1-9 jump to an option
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if idx := int(s[0] - '1'); idx < len(m.options) {
					m.cursor = idx
				}
			}
		}
	}
	return m, nil
}

func (m *selectModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Body.Render(m.text))
	b.WriteString("\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(m.theme.Selected.Render("(*) " + opt.Label))
		} else {
			b.WriteString(m.theme.Body.Render("( ) " + opt.Label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("↑/↓ move • enter select • esc cancel"))
	return m.theme.dialog(m.title, b.String(), m.width, m.height)
}

// result returns the chosen value, or false when the dialog was canceled.
func (m *selectModel) result() (string, bool) {
	return m.choice, m.chosen
}
