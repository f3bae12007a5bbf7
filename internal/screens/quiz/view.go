package quiz

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adit/pathwise/internal/assessment"
	"github.com/adit/pathwise/internal/ui/components"
	"github.com/adit/pathwise/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (q *QuizScreen) View(width, height int) string {
	switch q.sess.Phase {
	case assessment.PhaseLoading:
		return q.renderSpinner(width, height, "Preparing your personalized questions...")
	case assessment.PhaseSubmitting:
		return q.renderSpinner(width, height, "Scoring your answers...")
	case assessment.PhaseComplete:
		return q.renderComplete(width, height)
	case assessment.PhaseCancelled:
		return ""
	default:
		return q.renderQuestion(width, height)
	}
}

func (q *QuizScreen) renderSpinner(width, height int, label string) string {
	frame := spinnerFrames[q.spinnerTick%len(spinnerFrames)]
	text := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame) + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)

	if q.errNote != "" {
		text += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(q.errNote)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	// Position line + progress bar.
	position := fmt.Sprintf("  Question %d of %d", q.sess.Index+1, len(q.sess.Questions))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(position))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(q.sess.Progress())/100, true, min(width-6, 60))
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(0, width-6))))
	b.WriteString("\n\n")

	// Question + options.
	answerView := q.answers.View()
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(answerView))
	b.WriteString("\n")

	if q.sess.CanSubmit() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("  All answered — press S to submit"))
		b.WriteString("\n")
	}

	if q.errNote != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + q.errNote))
		b.WriteString("\n")
	}

	return b.String()
}

func (q *QuizScreen) renderComplete(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render("✓ " + q.sess.Definition.Title + " complete"))
	b.WriteString("\n\n")

	if q.result != nil && len(q.result.Scores) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your top dimensions"))
		b.WriteString("\n\n")
		for _, s := range topScores(q.result.Scores, 5) {
			bar := components.NewProgressBar(padDimension(s.name), s.value/100, true, min(width-10, 56))
			b.WriteString(bar.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if q.result != nil && q.result.Insights != nil && q.result.Insights.Summary != "" {
		summary := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 70)).
			Render(q.result.Insights.Summary)
		b.WriteString(summary)
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press any key to finish"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

type scoreEntry struct {
	name  string
	value float64
}

// topScores returns the n highest-scoring dimensions, sorted descending.
func topScores(scores map[string]float64, n int) []scoreEntry {
	entries := make([]scoreEntry, 0, len(scores))
	for name, value := range scores {
		entries = append(entries, scoreEntry{name: name, value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// padDimension turns a snake_case dimension into a fixed-width label.
func padDimension(dim string) string {
	label := strings.ReplaceAll(dim, "_", " ")
	if len(label) > 22 {
		label = label[:22]
	}
	return fmt.Sprintf("%-22s", label)
}
