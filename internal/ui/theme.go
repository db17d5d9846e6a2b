package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette lists the colors of a dialog theme.
type palette struct {
	dialogBg, dialogFg string
	labelBg, labelFg   string
	bodyBg, bodyFg     string
	shadow             string
}

var palettes = map[string]palette{
	"matrix": {
		dialogBg: "#000000", dialogFg: "#00ff00",
		labelBg: "#000000", labelFg: "#00ff00",
		bodyBg: "#000000", bodyFg: "#00ff00",
		shadow: "#003300",
	},
	"solarized-dark": {
		dialogBg: "#002b36", dialogFg: "#93a1a1",
		labelBg: "#073642", labelFg: "#b58900",
		bodyBg: "#002b36", bodyFg: "#839496",
		shadow: "#001f27",
	},
	"sunset": {
		dialogBg: "#2b1b17", dialogFg: "#ffd8b5",
		labelBg: "#402319", labelFg: "#ff8c42",
		bodyBg: "#2b1b17", bodyFg: "#ffd8b5",
		shadow: "#1a0f0b",
	},
	"pastel-breeze": {
		dialogBg: "#f2faff", dialogFg: "#4a4a4a",
		labelBg: "#dceeff", labelFg: "#6aa6ff",
		bodyBg: "#f2faff", bodyFg: "#4a4a4a",
		shadow: "#c9ddea",
	},
	"hacker": {
		dialogBg: "#000000", dialogFg: "#33ff33",
		labelBg: "#003300", labelFg: "#66ff66",
		bodyBg: "#000000", bodyFg: "#33ff33",
		shadow: "#001a00",
	},
	"terminal-amber": {
		dialogBg: "#000000", dialogFg: "#ffbf00",
		labelBg: "#1a0f00", labelFg: "#ffcc33",
		bodyBg: "#000000", bodyFg: "#ffbf00",
		shadow: "#260f00",
	},
}

// Theme holds the styles used by dialogs and printed messages.
// Build one with NewTheme and pass it to whatever renders.
type Theme struct {
	Name string

	Frame    lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	Done    lipgloss.Style
	Pending lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// ThemeNames returns the available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTheme builds the named theme on renderer r. A nil renderer uses the
// lipgloss default renderer.
func NewTheme(name string, r *lipgloss.Renderer) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	p, ok := palettes[key]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return Theme{
		Name: key,
		Frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.shadow)).
			Background(lipgloss.Color(p.dialogBg)).
			Foreground(lipgloss.Color(p.dialogFg)).
			Padding(1, 2),
		Label: r.NewStyle().
			Bold(true).
			Background(lipgloss.Color(p.labelBg)).
			Foreground(lipgloss.Color(p.labelFg)),
		Body: r.NewStyle().
			Background(lipgloss.Color(p.bodyBg)).
			Foreground(lipgloss.Color(p.bodyFg)),
		Selected: r.NewStyle().
			Bold(true).
			Background(lipgloss.Color(p.bodyFg)).
			Foreground(lipgloss.Color(p.bodyBg)),
		Help: r.NewStyle().
			Faint(true),
		Done: r.NewStyle().
			Background(lipgloss.Color(p.bodyBg)).
			Foreground(lipgloss.Color("2")),
		Pending: r.NewStyle().
			Background(lipgloss.Color(p.bodyBg)).
			Foreground(lipgloss.Color("1")),
		Success: r.NewStyle().Foreground(lipgloss.Color("2")),
		Failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}, nil
}

// dialog renders a framed dialog box with a title label, centered in a
// width x height area when the size is known. A box wider than the area is
// re-rendered with its content wrapped to fit.
func (t Theme) dialog(title, body string, width, height int) string {
	label := t.Label.Render(" " + title + " ")
	content := lipgloss.JoinVertical(lipgloss.Left, label, "", body)
	box := t.Frame.Render(content)
	if width <= 0 || height <= 0 {
		return box
	}
	if lipgloss.Width(box) > width {
		inner := width - t.Frame.GetHorizontalBorderSize()
		if inner < t.Frame.GetHorizontalPadding()+1 {
			inner = t.Frame.GetHorizontalPadding() + 1
		}
		box = t.Frame.Width(inner).Render(content)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
