// Package assessments lists the assessment catalog with completion badges.
package assessments

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adit/pathwise/internal/assessment"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/router"
	"github.com/adit/pathwise/internal/screen"
	"github.com/adit/pathwise/internal/screens/quiz"
	"github.com/adit/pathwise/internal/store"
	"github.com/adit/pathwise/internal/ui/layout"
	"github.com/adit/pathwise/internal/ui/theme"
)

// catalogLoadedMsg carries the catalog and the completed-assessment set.
type catalogLoadedMsg struct {
	catalog   []*store.Assessment
	completed map[string]bool
	err       error
}

// AssessmentsScreen lists the catalog; Enter starts a quiz.
type AssessmentsScreen struct {
	catalog   store.AssessmentRepo
	profiles  *profile.Service
	generator *assessment.LLMGenerator
	completer *assessment.Completer

	entries   []*store.Assessment
	completed map[string]bool
	cursor    int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*AssessmentsScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentsScreen)(nil)

// New creates the assessments list screen.
func New(catalog store.AssessmentRepo, profiles *profile.Service, generator *assessment.LLMGenerator, completer *assessment.Completer) *AssessmentsScreen {
	return &AssessmentsScreen{
		catalog:   catalog,
		profiles:  profiles,
		generator: generator,
		completer: completer,
	}
}

func (a *AssessmentsScreen) Title() string {
	return "Assessments"
}

func (a *AssessmentsScreen) Init() tea.Cmd {
	return a.load()
}

func (a *AssessmentsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AssessmentsScreen) load() tea.Cmd {
	catalog := a.catalog
	profiles := a.profiles
	return func() tea.Msg {
		ctx := context.Background()
		entries, err := catalog.List(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}

		completed := make(map[string]bool)
		if p, err := profiles.Me(ctx); err == nil {
			for _, id := range p.AssessmentProgress.CompletedAssessments {
				completed[id] = true
			}
		}
		return catalogLoadedMsg{catalog: entries, completed: completed}
	}
}

func (a *AssessmentsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.entries = msg.catalog
		a.completed = msg.completed
		a.loaded = true
		return a, nil

	case screen.StatsChangedMsg:
		// A quiz just finished underneath us; refresh the badges.
		return a, a.load()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *AssessmentsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.entries)-1 {
			a.cursor++
		}
	case "enter":
		if !a.loaded || a.cursor >= len(a.entries) {
			return a, nil
		}
		entry := a.entries[a.cursor]
		if a.completed[entry.AssessmentID] {
			// One result per assessment; retakes would collide.
			return a, nil
		}
		def := assessment.Definition{
			ID:              entry.AssessmentID,
			Title:           entry.Title,
			Category:        entry.Category,
			Description:     entry.Description,
			DurationMinutes: entry.DurationMinutes,
		}
		return a, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quiz.New(def, a.generator, a.completer, a.profiles),
			}
		}
	}
	return a, nil
}

func (a *AssessmentsScreen) View(width, height int) string {
	if a.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not load the assessment catalog:\n" + a.errMsg)
	}
	if !a.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nLoading assessments...")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Choose an assessment"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(0, width-6))))
	b.WriteString("\n\n")

	for i, entry := range a.entries {
		badge := "  "
		badgeStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if a.completed[entry.AssessmentID] {
			badge = "✓ "
			badgeStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		prefix := "    "
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == a.cursor {
			prefix = "  ▸ "
			titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		if a.completed[entry.AssessmentID] {
			titleStyle = titleStyle.Faint(true)
		}

		line := prefix + badgeStyle.Render(badge) + titleStyle.Render(entry.Title) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  ~%d min", entry.DurationMinutes))
		b.WriteString(line)
		b.WriteString("\n")

		if i == a.cursor {
			desc := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("      " + entry.Description)
			b.WriteString(desc)
			b.WriteString("\n")
		}
	}

	return b.String()
}
