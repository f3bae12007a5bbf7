// Package quiz runs a single assessment from generation to submission.
package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adit/pathwise/internal/assessment"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/router"
	"github.com/adit/pathwise/internal/screen"
	"github.com/adit/pathwise/internal/store"
	"github.com/adit/pathwise/internal/ui/components"
	"github.com/adit/pathwise/internal/ui/layout"
)

// Generator produces the question set for a definition. It never fails; a
// generation problem degrades to the fallback question.
type Generator interface {
	Generate(ctx context.Context, in assessment.GenerateInput) []assessment.Question
}

// QuizScreen drives one assessment session.
type QuizScreen struct {
	sess      *assessment.Session
	generator Generator
	completer *assessment.Completer
	profiles  *profile.Service

	answers     components.AnswerList
	result      *store.Result
	spinnerTick int
	errNote     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given assessment definition.
func New(def assessment.Definition, generator Generator, completer *assessment.Completer, profiles *profile.Service) *QuizScreen {
	return &QuizScreen{
		sess:      assessment.NewSession(def),
		generator: generator,
		completer: completer,
		profiles:  profiles,
	}
}

func (q *QuizScreen) Title() string {
	return q.sess.Definition.Title
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.generateQuestions(), spinnerCmd())
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.sess.Phase {
	case assessment.PhaseActive:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
		if q.sess.CanPrev() {
			hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
		}
		if q.sess.CanSubmit() {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
	case assessment.PhaseComplete:
		return []layout.KeyHint{{Key: "any key", Description: "Finish"}}
	default:
		return nil
	}
}

// generateQuestions builds the personalized question set off the profile.
func (q *QuizScreen) generateQuestions() tea.Cmd {
	def := q.sess.Definition
	generator := q.generator
	profiles := q.profiles
	return func() tea.Msg {
		ctx := context.Background()

		in := assessment.GenerateInput{Definition: def}
		if p, err := profiles.Me(ctx); err == nil {
			in.Age = p.PersonalBackground.Age
			in.Hobbies = p.PersonalBackground.Hobbies
			in.Challenges = p.PersonalBackground.CurrentChallenges
		}

		return questionsReadyMsg{Questions: generator.Generate(ctx, in)}
	}
}

// submit runs the scoring and persistence pipeline.
func (q *QuizScreen) submit() tea.Cmd {
	completer := q.completer
	sess := q.sess
	return func() tea.Msg {
		result, err := completer.Complete(context.Background(), sess)
		return submitDoneMsg{Result: result, Err: err}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		if q.sess.Phase != assessment.PhaseLoading {
			// Cancelled while generating; drop the questions.
			return q, nil
		}
		if err := q.sess.Begin(msg.Questions); err != nil {
			q.errNote = err.Error()
			return q, nil
		}
		q.rebuildAnswers()
		return q, nil

	case submitDoneMsg:
		return q.handleSubmitDone(msg)

	case spinnerTickMsg:
		if q.sess.Phase == assessment.PhaseLoading || q.sess.Phase == assessment.PhaseSubmitting {
			q.spinnerTick++
			return q, spinnerCmd()
		}
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	if q.sess.Phase != assessment.PhaseSubmitting {
		return q, nil
	}
	if msg.Err != nil {
		q.sess.FailSubmit()
		if errors.Is(msg.Err, store.ErrDuplicateResult) {
			q.errNote = "You have already completed this assessment."
		} else {
			q.errNote = "Saving your result failed: " + msg.Err.Error()
		}
		q.rebuildAnswers()
		return q, nil
	}
	q.sess.CompleteSubmit()
	q.result = msg.Result
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch q.sess.Phase {
	case assessment.PhaseComplete:
		// Any key finishes. Pop first so the list underneath gets the
		// stats refresh.
		return q, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return screen.StatsChangedMsg{} },
		)

	case assessment.PhaseLoading:
		if key == "esc" {
			q.sess.Cancel()
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil

	case assessment.PhaseSubmitting:
		// Submit is in flight; ignore input so the session can't fork.
		return q, nil

	case assessment.PhaseActive:
		switch key {
		case "esc":
			q.sess.Cancel()
			return q, func() tea.Msg { return router.PopScreenMsg{} }

		case "enter":
			if !q.answers.Answered() {
				return q, nil
			}
			q.errNote = ""
			if err := q.sess.Select(q.answers.Answer()); err != nil {
				q.errNote = err.Error()
				return q, nil
			}
			if q.sess.CanNext() {
				q.sess.Next()
				q.rebuildAnswers()
				return q, nil
			}
			if q.sess.CanSubmit() {
				return q.beginSubmit()
			}
			return q, nil

		case "s", "S":
			if q.sess.CanSubmit() {
				return q.beginSubmit()
			}
			return q, nil

		case "left", "p":
			if q.sess.CanPrev() {
				q.sess.Prev()
				q.rebuildAnswers()
			}
			return q, nil

		case "right", "n":
			if q.sess.CanNext() {
				q.sess.Next()
				q.rebuildAnswers()
			}
			return q, nil
		}

		var cmd tea.Cmd
		q.answers, cmd = q.answers.Update(msg)
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) beginSubmit() (screen.Screen, tea.Cmd) {
	q.errNote = ""
	if err := q.sess.BeginSubmit(); err != nil {
		q.errNote = err.Error()
		return q, nil
	}
	return q, tea.Batch(q.submit(), spinnerCmd())
}

// rebuildAnswers recreates the answer list for the current question,
// preselecting a previously chosen answer when navigating back.
func (q *QuizScreen) rebuildAnswers() {
	question := q.sess.Current()
	if len(question.Options) == 0 {
		return
	}
	list := components.NewAnswerList(question.Text, question.Options)
	if prior := q.sess.CurrentAnswer(); prior != "" {
		for i, opt := range question.Options {
			if opt == prior {
				list = list.Preselect(i)
				break
			}
		}
	}
	q.answers = list
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
