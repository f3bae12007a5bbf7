package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/adit/pathwise/internal/assessment"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/router"
	"github.com/adit/pathwise/internal/screen"
	assessmentsscreen "github.com/adit/pathwise/internal/screens/assessments"
	"github.com/adit/pathwise/internal/screens/placeholder"
	"github.com/adit/pathwise/internal/screens/profileview"
	"github.com/adit/pathwise/internal/store"
	"github.com/adit/pathwise/internal/ui/components"
)

// Deps carries everything the home screen and its children need.
type Deps struct {
	Profiles  *profile.Service
	Catalog   store.AssessmentRepo
	Results   store.ResultRepo
	Generator *assessment.LLMGenerator
	Completer *assessment.Completer
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string

	userName       string
	completionPct  int
	completedCount int
	totalCount     int
	careerPath     string
	nextUp         string
	llmMissing     bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:       deps,
		llmMissing: deps.Generator == nil,
	}
	h.refresh()

	menuLabels := []string{
		"TAKE ASSESSMENTS", "MY PROFILE", "CAREER RECOMMENDATIONS",
		"GOALS", "PORTFOLIO", "EXIT",
	}

	cliHint := func(title, command, blurb string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: placeholder.New(title, blurb+"\n\nRun `pathwise "+command+"` in your shell."),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if deps.Generator == nil || deps.Completer == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: placeholder.New("Assessments", "Assessments need an LLM provider.\nSet an API key first (see pathwise --help)."),
					}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessmentsscreen.New(deps.Catalog, deps.Profiles, deps.Generator, deps.Completer),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: profileview.New(deps.Profiles, deps.Results, deps.Catalog),
				}
			}
		}},
		{Label: menuLabels[2], Action: cliHint("Career Recommendations", "recommend",
			"Career recommendations are generated from your completed assessments.")},
		{Label: menuLabels[3], Action: cliHint("Goals", "goals list",
			"Track goals and get LLM-suggested ones for your chosen path.")},
		{Label: menuLabels[4], Action: cliHint("Portfolio", "portfolio list",
			"Collect projects, achievements and experiences in your portfolio.")},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	h.menuLabels = menuLabels
	return h
}

// refresh re-reads the profile-derived dashboard numbers.
func (h *HomeScreen) refresh() {
	ctx := context.Background()

	if h.deps.Catalog != nil {
		h.totalCount, _ = h.deps.Catalog.Count(ctx)
	}

	if h.deps.Profiles == nil {
		return
	}
	p, err := h.deps.Profiles.Me(ctx)
	if err != nil {
		return
	}
	h.userName = p.FullName
	h.completionPct = p.AssessmentProgress.CompletionPercentage
	h.completedCount = len(p.AssessmentProgress.CompletedAssessments)
	if p.SelectedCareerPath != nil {
		h.careerPath = p.SelectedCareerPath.Field
	}

	h.nextUp = ""
	if next := p.AssessmentProgress.NextRecommended; next != "" && h.deps.Catalog != nil {
		if a, err := h.deps.Catalog.Get(ctx, next); err == nil {
			h.nextUp = a.Title
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.StatsChangedMsg); ok {
		h.refresh()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	name := h.userName
	if name == "" {
		name = "Explorer"
	}
	sections = append(sections, renderStatsBar(
		name, h.completionPct, h.completedCount, h.totalCount, h.careerPath, cw, compact))

	if h.llmMissing {
		sections = append(sections, renderLLMBanner(cw))
	} else if h.nextUp != "" && h.completedCount < h.totalCount {
		sections = append(sections, renderNextHint(h.nextUp, cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenuButtons(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
