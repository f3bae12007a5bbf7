package assessment

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Phase is the lifecycle state of a quiz session.
type Phase int

const (
	PhaseLoading    Phase = iota // questions are being generated
	PhaseActive                  // user is answering
	PhaseSubmitting              // responses sent for scoring
	PhaseComplete                // result persisted
	PhaseCancelled               // user backed out
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseSubmitting:
		return "submitting"
	case PhaseComplete:
		return "complete"
	case PhaseCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// Session tracks one quiz attempt from question loading through submission.
// All transitions are guarded; callers that try an out-of-phase move get an
// error instead of a silently corrupted session.
type Session struct {
	// Definition is the assessment being taken.
	Definition Definition

	// Questions is the generated set. Empty until Begin.
	Questions []Question

	// Responses holds one slot per question, filled as the user answers.
	// An empty Answer means unanswered.
	Responses []Response

	// Index is the cursor into Questions.
	Index int

	// Phase is the current lifecycle state.
	Phase Phase

	// StartedAt is when the session was created, used for the
	// completion-time metric.
	StartedAt time.Time
}

// NewSession creates a session in the loading phase.
func NewSession(def Definition) *Session {
	return &Session{
		Definition: def,
		Phase:      PhaseLoading,
		StartedAt:  time.Now(),
	}
}

func (s *Session) phaseErr(op string) error {
	return fmt.Errorf("%s: not allowed in phase %s", op, s.Phase)
}

// Begin installs the generated questions and activates the session.
func (s *Session) Begin(questions []Question) error {
	if s.Phase != PhaseLoading {
		return s.phaseErr("begin")
	}
	if len(questions) == 0 {
		return errors.New("begin: question set is empty")
	}
	s.Questions = questions
	s.Responses = make([]Response, len(questions))
	for i := range s.Responses {
		s.Responses[i].QuestionIndex = i
	}
	s.Index = 0
	s.Phase = PhaseActive
	return nil
}

// Current returns the question under the cursor.
func (s *Session) Current() Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return Question{}
	}
	return s.Questions[s.Index]
}

// CurrentAnswer returns the recorded answer for the current question, or ""
// when it hasn't been answered yet.
func (s *Session) CurrentAnswer() string {
	if s.Index < 0 || s.Index >= len(s.Responses) {
		return ""
	}
	return s.Responses[s.Index].Answer
}

// Select records the answer for the current question. Re-selecting
// overwrites the previous choice.
func (s *Session) Select(answer string) error {
	if s.Phase != PhaseActive {
		return s.phaseErr("select")
	}
	s.Responses[s.Index].Answer = answer
	return nil
}

func (s *Session) answered(i int) bool {
	return i >= 0 && i < len(s.Responses) && s.Responses[i].Answer != ""
}

// CanNext reports whether the cursor may advance: the current question must
// be answered and another question must exist.
func (s *Session) CanNext() bool {
	return s.Phase == PhaseActive && s.answered(s.Index) && s.Index < len(s.Questions)-1
}

// Next advances the cursor.
func (s *Session) Next() error {
	if !s.CanNext() {
		if s.Phase != PhaseActive {
			return s.phaseErr("next")
		}
		return errors.New("next: current question not answered or already at the last question")
	}
	s.Index++
	return nil
}

// CanPrev reports whether the cursor may move back.
func (s *Session) CanPrev() bool {
	return s.Phase == PhaseActive && s.Index > 0
}

// Prev moves the cursor back one question. Earlier answers stay recorded.
func (s *Session) Prev() error {
	if !s.CanPrev() {
		if s.Phase != PhaseActive {
			return s.phaseErr("prev")
		}
		return errors.New("prev: already at the first question")
	}
	s.Index--
	return nil
}

// CanSubmit reports whether the quiz may be submitted: the cursor is on the
// last question and it has been answered.
func (s *Session) CanSubmit() bool {
	return s.Phase == PhaseActive && s.Index == len(s.Questions)-1 && s.answered(s.Index)
}

// BeginSubmit moves the session into the submitting phase.
func (s *Session) BeginSubmit() error {
	if !s.CanSubmit() {
		if s.Phase != PhaseActive {
			return s.phaseErr("submit")
		}
		return errors.New("submit: last question not answered")
	}
	s.Phase = PhaseSubmitting
	return nil
}

// CompleteSubmit marks the submission as persisted.
func (s *Session) CompleteSubmit() error {
	if s.Phase != PhaseSubmitting {
		return s.phaseErr("complete")
	}
	s.Phase = PhaseComplete
	return nil
}

// FailSubmit returns a failed submission to the active phase. Responses and
// the cursor are preserved so the user can retry.
func (s *Session) FailSubmit() error {
	if s.Phase != PhaseSubmitting {
		return s.phaseErr("fail submit")
	}
	s.Phase = PhaseActive
	return nil
}

// Cancel abandons the session. Allowed from any non-terminal phase;
// responses are discarded with the session.
func (s *Session) Cancel() error {
	if s.Phase == PhaseComplete || s.Phase == PhaseCancelled {
		return s.phaseErr("cancel")
	}
	s.Phase = PhaseCancelled
	return nil
}

// Progress returns the percentage of the quiz reached, rounded to the
// nearest integer. Zero before questions are loaded.
func (s *Session) Progress() int {
	if len(s.Questions) == 0 {
		return 0
	}
	return int(math.Round(float64(s.Index+1) / float64(len(s.Questions)) * 100))
}

// CompletionMinutes returns the elapsed quiz time in whole minutes.
func (s *Session) CompletionMinutes(now time.Time) int {
	return int(math.Round(now.Sub(s.StartedAt).Minutes()))
}
