package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adit/pathwise/internal/assessment"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/router"
	"github.com/adit/pathwise/internal/screen"
	"github.com/adit/pathwise/internal/screens/home"
	"github.com/adit/pathwise/internal/screens/onboarding"
	"github.com/adit/pathwise/internal/screens/welcome"
	"github.com/adit/pathwise/internal/store"
	"github.com/adit/pathwise/internal/ui/layout"
)

// Options carries the wired services for the TUI.
type Options struct {
	Profiles  *profile.Service
	Catalog   store.AssessmentRepo
	Results   store.ResultRepo
	Generator *assessment.LLMGenerator
	Completer *assessment.Completer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	completed int
	total     int
}

// newAppModel creates the AppModel. First runs land on the onboarding form
// after the splash; onboarded users go straight to home.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Profiles:  opts.Profiles,
			Catalog:   opts.Catalog,
			Results:   opts.Results,
			Generator: opts.Generator,
			Completer: opts.Completer,
		})
	}

	nextFactory := homeFactory
	if _, err := opts.Profiles.Me(context.Background()); errors.Is(err, profile.ErrNoProfile) {
		nextFactory = func() screen.Screen {
			return onboarding.New(opts.Profiles, homeFactory)
		}
	}

	m := AppModel{
		opts:   opts,
		router: router.New(welcome.New(nextFactory)),
	}
	m.refreshStats()
	return m
}

// refreshStats re-reads the header completion counter.
func (m *AppModel) refreshStats() {
	ctx := context.Background()
	if m.opts.Catalog != nil {
		m.total, _ = m.opts.Catalog.Count(ctx)
	}
	if m.opts.Profiles == nil {
		return
	}
	if p, err := m.opts.Profiles.Me(ctx); err == nil {
		m.completed = len(p.AssessmentProgress.CompletedAssessments)
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatsChangedMsg:
		m.refreshStats()
		// Fall through to the router so the active screen can reload too.

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash renders full-bleed, without the header/footer chrome.
	if _, splash := active.(*welcome.WelcomeScreen); splash {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.completed, m.total, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		if hints := hinter.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
