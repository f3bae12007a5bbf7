// Package onboarding implements the first-run profile form. The answers feed
// every LLM prompt later, so the form pushes for completeness but only name,
// email, age and education status are required.
package onboarding

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/router"
	"github.com/adit/pathwise/internal/screen"
	"github.com/adit/pathwise/internal/ui/components"
	"github.com/adit/pathwise/internal/ui/layout"
	"github.com/adit/pathwise/internal/ui/theme"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldSelect
	fieldMulti
)

// field is one entry in the onboarding form.
type field struct {
	label    string
	hint     string
	kind     fieldKind
	required bool

	input   components.TextInput
	options []profile.Option
	cursor  int
	chosen  int
	checked map[int]bool
}

func (f *field) answered() bool {
	switch f.kind {
	case fieldText, fieldNumber:
		return strings.TrimSpace(f.input.Value()) != ""
	case fieldSelect:
		return f.chosen >= 0
	case fieldMulti:
		return len(f.checked) > 0
	}
	return false
}

// summary is the one-line recap shown for completed fields.
func (f *field) summary() string {
	switch f.kind {
	case fieldText, fieldNumber:
		return f.input.Value()
	case fieldSelect:
		if f.chosen >= 0 {
			return f.options[f.chosen].Label
		}
	case fieldMulti:
		var picked []string
		for i, o := range f.options {
			if f.checked[i] {
				picked = append(picked, o.Value)
			}
		}
		return strings.Join(picked, ", ")
	}
	return ""
}

type step struct {
	title  string
	fields []*field
}

type savedMsg struct {
	err error
}

// OnboardingScreen walks the user through the three profile steps.
type OnboardingScreen struct {
	profiles    *profile.Service
	homeFactory func() screen.Screen

	steps     []step
	stepIdx   int
	fieldIdx  int
	saving    bool
	errNote   string
	completed bool
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding form. homeFactory builds the screen shown after
// the profile is saved.
func New(profiles *profile.Service, homeFactory func() screen.Screen) *OnboardingScreen {
	textField := func(label, placeholder string, required bool, maxWidth int) *field {
		return &field{
			label:    label,
			kind:     fieldText,
			required: required,
			input:    components.NewTextInput(placeholder, false, maxWidth),
		}
	}
	numberField := func(label, placeholder string) *field {
		return &field{
			label:    label,
			kind:     fieldNumber,
			required: true,
			input:    components.NewTextInput(placeholder, true, 3),
		}
	}
	selectField := func(label string, opts []profile.Option, required bool) *field {
		return &field{
			label:    label,
			kind:     fieldSelect,
			required: required,
			options:  opts,
			chosen:   -1,
		}
	}
	multiField := func(label, hint string, values []string) *field {
		opts := make([]profile.Option, len(values))
		for i, v := range values {
			opts[i] = profile.Option{Value: v, Label: v}
		}
		return &field{
			label:   label,
			hint:    hint,
			kind:    fieldMulti,
			options: opts,
			checked: make(map[int]bool),
		}
	}

	steps := []step{
		{
			title: "About you",
			fields: []*field{
				textField("Full name", "Your name", true, 60),
				textField("Email", "you@example.com", true, 120),
				numberField("Age", "16"),
				textField("Location", "City, Country (optional)", false, 80),
			},
		},
		{
			title: "School & interests",
			fields: []*field{
				selectField("Education status", profile.EducationStatusOptions, true),
				textField("Current studies", "e.g. 2nd year CS (optional)", false, 120),
				multiField("Hobbies", "space toggles, enter continues", profile.HobbyOptions),
				multiField("Current challenges", "space toggles, enter continues", profile.ChallengeOptions),
			},
		},
		{
			title: "Looking ahead",
			fields: []*field{
				selectField("Family background", profile.FamilyBackgroundOptions, false),
				selectField("Main future goal", profile.FutureGoalsOptions, false),
				selectField("Preferred work environment", profile.WorkEnvironmentOptions, false),
				selectField("How important is income?", profile.FinancialConsiderationsOptions, false),
			},
		},
	}

	return &OnboardingScreen{
		profiles:    profiles,
		homeFactory: homeFactory,
		steps:       steps,
	}
}

func (o *OnboardingScreen) Title() string {
	return "Welcome"
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.activeField().input.Init()
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	f := o.activeField()
	hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	if f.kind == fieldMulti {
		hints = append([]layout.KeyHint{{Key: "Space", Description: "Toggle"}}, hints...)
	}
	if o.stepIdx > 0 || o.fieldIdx > 0 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return hints
}

func (o *OnboardingScreen) activeField() *field {
	return o.steps[o.stepIdx].fields[o.fieldIdx]
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		o.saving = false
		if msg.err != nil {
			o.errNote = fmt.Sprintf("Could not save your profile: %v", msg.err)
			return o, nil
		}
		o.completed = true
		next := o.homeFactory()
		return o, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if o.saving {
			return o, nil
		}
		return o.handleKey(msg)
	}

	if !o.saving {
		f := o.activeField()
		if f.kind == fieldText || f.kind == fieldNumber {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			return o, cmd
		}
	}
	return o, nil
}

func (o *OnboardingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	f := o.activeField()
	key := msg.String()

	switch key {
	case "esc":
		return o, o.back()
	case "enter":
		return o.advance()
	}

	switch f.kind {
	case fieldSelect, fieldMulti:
		switch key {
		case "up", "k":
			if f.cursor > 0 {
				f.cursor--
			}
		case "down", "j":
			if f.cursor < len(f.options)-1 {
				f.cursor++
			}
		case " ":
			if f.kind == fieldMulti {
				if f.checked[f.cursor] {
					delete(f.checked, f.cursor)
				} else {
					f.checked[f.cursor] = true
				}
			}
		}
		return o, nil

	default:
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return o, cmd
	}
}

// back moves to the previous field, crossing step boundaries.
func (o *OnboardingScreen) back() tea.Cmd {
	o.errNote = ""
	if o.fieldIdx > 0 {
		o.fieldIdx--
		return nil
	}
	if o.stepIdx > 0 {
		o.stepIdx--
		o.fieldIdx = len(o.steps[o.stepIdx].fields) - 1
	}
	return nil
}

// advance validates the active field and moves forward; on the last field it
// kicks off the save.
func (o *OnboardingScreen) advance() (screen.Screen, tea.Cmd) {
	f := o.activeField()
	o.errNote = ""

	if note := o.validate(f); note != "" {
		o.errNote = note
		return o, nil
	}
	if f.kind == fieldSelect {
		f.chosen = f.cursor
	}

	if o.fieldIdx < len(o.steps[o.stepIdx].fields)-1 {
		o.fieldIdx++
		return o, o.activeField().input.Init()
	}
	if o.stepIdx < len(o.steps)-1 {
		o.stepIdx++
		o.fieldIdx = 0
		return o, o.activeField().input.Init()
	}

	o.saving = true
	return o, o.save()
}

func (o *OnboardingScreen) validate(f *field) string {
	switch f.kind {
	case fieldText:
		if f.required && strings.TrimSpace(f.input.Value()) == "" {
			return f.label + " is required."
		}
		if f.label == "Email" && !strings.Contains(f.input.Value(), "@") {
			return "That doesn't look like an email address."
		}
	case fieldNumber:
		n, err := f.input.NumericValue()
		if err != nil || n < 10 || n > 100 {
			return "Enter an age between 10 and 100."
		}
	case fieldSelect:
		// cursor doubles as the answer; nothing to reject
	}
	return ""
}

// save builds the Onboarding payload from the form and persists it.
func (o *OnboardingScreen) save() tea.Cmd {
	ob := o.buildOnboarding()
	profiles := o.profiles
	return func() tea.Msg {
		_, err := profiles.SaveOnboarding(context.Background(), ob)
		return savedMsg{err: err}
	}
}

func (o *OnboardingScreen) buildOnboarding() profile.Onboarding {
	get := func(stepIdx, fieldIdx int) *field {
		return o.steps[stepIdx].fields[fieldIdx]
	}
	multi := func(f *field) []string {
		var values []string
		for i, opt := range f.options {
			if f.checked[i] {
				values = append(values, opt.Value)
			}
		}
		return values
	}

	age, _ := get(0, 2).input.NumericValue()

	// Selects are confirmed by advance(); an unconfirmed one stays empty.
	pick := func(f *field) string {
		if f.chosen >= 0 {
			return f.options[f.chosen].Value
		}
		return ""
	}

	return profile.Onboarding{
		FullName: strings.TrimSpace(get(0, 0).input.Value()),
		Email:    strings.TrimSpace(get(0, 1).input.Value()),
		AcademicInfo: schema.AcademicInfo{
			EducationStatus:         pick(get(1, 0)),
			CurrentEducationDetails: strings.TrimSpace(get(1, 1).input.Value()),
		},
		PersonalBackground: schema.PersonalBackground{
			Age:                     age,
			Location:                strings.TrimSpace(get(0, 3).input.Value()),
			FamilyBackground:        pick(get(2, 0)),
			Hobbies:                 multi(get(1, 2)),
			CurrentChallenges:       multi(get(1, 3)),
			FutureGoals:             pick(get(2, 1)),
			PreferredWorkEnv:        pick(get(2, 2)),
			FinancialConsiderations: pick(get(2, 3)),
		},
	}
}

func (o *OnboardingScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  Step %d of %d — %s", o.stepIdx+1, len(o.steps), o.steps[o.stepIdx].title))
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(0, width-6))))
	b.WriteString("\n\n")

	if o.saving {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Saving your profile..."))
		return b.String()
	}

	for i, f := range o.steps[o.stepIdx].fields {
		switch {
		case i < o.fieldIdx:
			line := fmt.Sprintf("  ✓ %s: %s", f.label, f.summary())
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
			b.WriteString("\n")
		case i == o.fieldIdx:
			b.WriteString(o.renderActiveField(f, width))
		}
	}

	if o.errNote != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + o.errNote))
		b.WriteString("\n")
	}

	return b.String()
}

func (o *OnboardingScreen) renderActiveField(f *field, width int) string {
	var b strings.Builder

	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  " + f.label)
	b.WriteString(label)
	if f.hint != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("  (" + f.hint + ")"))
	}
	b.WriteString("\n")

	switch f.kind {
	case fieldText, fieldNumber:
		b.WriteString("  " + f.input.View() + "\n")

	case fieldSelect:
		for i, opt := range f.options {
			prefix := "    "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == f.cursor {
				prefix = "  ▸ "
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(style.Render(prefix+opt.Label) + "\n")
		}

	case fieldMulti:
		for i, opt := range f.options {
			marker := "☐"
			if f.checked[i] {
				marker = "☑"
			}
			prefix := "    "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == f.cursor {
				prefix = "  ▸ "
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			if f.checked[i] && i != f.cursor {
				style = lipgloss.NewStyle().Foreground(theme.Secondary)
			}
			b.WriteString(style.Render(prefix+marker+" "+opt.Label) + "\n")
		}
	}

	return b.String()
}
