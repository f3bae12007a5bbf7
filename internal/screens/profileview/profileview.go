// Package profileview shows the profile with aggregated assessment insights.
package profileview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/router"
	"github.com/adit/pathwise/internal/screen"
	"github.com/adit/pathwise/internal/store"
	"github.com/adit/pathwise/internal/ui/components"
	"github.com/adit/pathwise/internal/ui/layout"
	"github.com/adit/pathwise/internal/ui/theme"
)

// loadedMsg carries everything the view needs.
type loadedMsg struct {
	profile *store.Profile
	results []*store.Result
	titles  map[string]string
	err     error
}

// ProfileScreen renders the profile, progress and per-assessment insights.
type ProfileScreen struct {
	profiles *profile.Service
	results  store.ResultRepo
	catalog  store.AssessmentRepo

	data   *loadedMsg
	scroll int
	errMsg string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(profiles *profile.Service, results store.ResultRepo, catalog store.AssessmentRepo) *ProfileScreen {
	return &ProfileScreen{
		profiles: profiles,
		results:  results,
		catalog:  catalog,
	}
}

func (s *ProfileScreen) Title() string {
	return "My Profile"
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) load() tea.Cmd {
	profiles := s.profiles
	resultRepo := s.results
	catalog := s.catalog
	return func() tea.Msg {
		ctx := context.Background()
		p, err := profiles.Me(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		results, err := resultRepo.ListByUser(ctx, p.Email)
		if err != nil {
			return loadedMsg{err: err}
		}

		titles := make(map[string]string)
		if entries, err := catalog.List(ctx); err == nil {
			for _, e := range entries {
				titles[e.AssessmentID] = e.Title
			}
		}
		return loadedMsg{profile: p, results: results, titles: titles}
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.data = &msg
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not load your profile:\n" + s.errMsg)
	}
	if s.data == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nLoading profile...")
	}

	lines := s.renderLines(width)

	// Simple line-based scrolling.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scroll:end], "\n")
}

func (s *ProfileScreen) renderLines(width int) []string {
	p := s.data.profile

	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(0, width-6)))

	var lines []string
	add := func(l string) { lines = append(lines, l) }

	add(heading.Render("  " + p.FullName))
	add(label.Render("  " + p.Email))
	add("")

	eduLabel := profile.LabelFor(profile.EducationStatusOptions, p.AcademicInfo.EducationStatus)
	add(label.Render("  Education   ") + value.Render(eduLabel))
	if p.PersonalBackground.Age > 0 {
		add(label.Render("  Age         ") + value.Render(fmt.Sprintf("%d", p.PersonalBackground.Age)))
	}
	if len(p.PersonalBackground.Hobbies) > 0 {
		add(label.Render("  Hobbies     ") + value.Render(strings.Join(p.PersonalBackground.Hobbies, ", ")))
	}
	if p.SelectedCareerPath != nil && p.SelectedCareerPath.Field != "" {
		add(label.Render("  Career path ") + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(p.SelectedCareerPath.Field))
	}
	add("")

	// Progress.
	add(heading.Render("  Assessment progress"))
	add("")
	bar := components.NewProgressBar("  ", float64(p.AssessmentProgress.CompletionPercentage)/100, true, min(width-8, 56))
	add(bar.View())
	add("")
	add(rule)

	// Per-assessment insights, newest first.
	if len(s.data.results) == 0 {
		add("")
		add(label.Render("  No completed assessments yet."))
		return lines
	}

	for _, r := range s.data.results {
		title := s.data.titles[r.AssessmentID]
		if title == "" {
			title = r.AssessmentID
		}
		add("")
		add(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + title))
		if r.Insights != nil {
			if len(r.Insights.PrimaryTraits) > 0 {
				add(label.Render("    Traits      ") + value.Render(strings.Join(r.Insights.PrimaryTraits, ", ")))
			}
			if len(r.Insights.Strengths) > 0 {
				add(label.Render("    Strengths   ") + value.Render(strings.Join(r.Insights.Strengths, ", ")))
			}
			if len(r.Insights.DevelopmentAreas) > 0 {
				add(label.Render("    Growth areas") + value.Render(" "+strings.Join(r.Insights.DevelopmentAreas, ", ")))
			}
			if r.Insights.Summary != "" {
				wrapped := lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Width(min(width-8, 72)).
					PaddingLeft(4).
					Render(r.Insights.Summary)
				for _, l := range strings.Split(wrapped, "\n") {
					add(l)
				}
			}
		}
	}

	// Recommendations recap, if any have been generated.
	if len(p.CareerRecommendations) > 0 {
		add("")
		add(rule)
		add("")
		add(heading.Render("  Career recommendations"))
		for _, rec := range p.CareerRecommendations {
			add(label.Render(fmt.Sprintf("    %3.0f%%  ", rec.MatchPercentage)) + value.Render(rec.Field))
		}
	}

	return lines
}
