package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adit/pathwise/internal/ui/theme"
)

// AnswerList is an option selector for assessment questions. There is no
// right answer; the chosen option is simply recorded.
type AnswerList struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int // -1 until an option is picked
}

// NewAnswerList creates an answer list with nothing chosen yet.
func NewAnswerList(question string, options []string) AnswerList {
	return AnswerList{
		Question: question,
		Options:  options,
		Cursor:   0,
		Chosen:   -1,
	}
}

// Preselect restores a previously chosen option, e.g. when navigating back
// to an already-answered question.
func (a AnswerList) Preselect(index int) AnswerList {
	if index >= 0 && index < len(a.Options) {
		a.Chosen = index
		a.Cursor = index
	}
	return a
}

// Init returns nil.
func (a AnswerList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.Cursor > 0 {
			a.Cursor--
		}
	case "down", "j":
		if a.Cursor < len(a.Options)-1 {
			a.Cursor++
		}
	case "enter", " ":
		a.Chosen = a.Cursor
	}

	return a, nil
}

// Answer returns the chosen option text, or "" if nothing is chosen.
func (a AnswerList) Answer() string {
	if a.Chosen < 0 || a.Chosen >= len(a.Options) {
		return ""
	}
	return a.Options[a.Chosen]
}

// Answered reports whether an option has been chosen.
func (a AnswerList) Answered() bool {
	return a.Chosen >= 0
}

// View renders the question and its options.
func (a AnswerList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(a.Question) + "\n\n"

	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Cursor {
			prefix = "▸ "
		}

		marker := "○"
		if i == a.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s  %s", prefix, marker, opt)

		switch {
		case i == a.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == a.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
