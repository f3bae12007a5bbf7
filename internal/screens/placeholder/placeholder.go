package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adit/pathwise/internal/router"
	"github.com/adit/pathwise/internal/screen"
	"github.com/adit/pathwise/internal/ui/theme"
)

// PlaceholderScreen points at functionality that lives outside the TUI,
// typically a pathwise subcommand.
type PlaceholderScreen struct {
	title string
	hint  string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen with the given title and hint text.
func New(title, hint string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, hint: hint}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	text := "╌╌ " + p.title + " ╌╌\n\n" + p.hint + "\n\npress esc to go back"
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(text)

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
