package assessment

import (
	"testing"
	"time"
)

func activeSession(t *testing.T, n int) *Session {
	t.Helper()
	sess := NewSession(Definition{ID: "personality", Title: "Personality Assessment", Category: "personality"})
	questions := make([]Question, n)
	for i := range questions {
		questions[i] = Question{Text: "q", Options: []string{"a", "b"}, Dimension: "d"}
	}
	if err := sess.Begin(questions); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return sess
}

func TestSessionBeginGuards(t *testing.T) {
	sess := NewSession(Definition{ID: "values"})
	if err := sess.Begin(nil); err == nil {
		t.Error("expected error for empty question set")
	}
	if sess.Phase != PhaseLoading {
		t.Errorf("phase = %s after failed begin, want loading", sess.Phase)
	}

	sess = activeSession(t, 3)
	if err := sess.Begin([]Question{{Text: "again"}}); err == nil {
		t.Error("expected error for begin on active session")
	}
}

func TestSessionSelectAndNavigate(t *testing.T) {
	sess := activeSession(t, 3)

	if sess.CanNext() {
		t.Error("CanNext before answering")
	}
	if err := sess.Next(); err == nil {
		t.Error("Next succeeded without an answer")
	}

	if err := sess.Select("a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !sess.CanNext() {
		t.Error("CanNext false after answering")
	}
	if err := sess.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if sess.Index != 1 {
		t.Errorf("index = %d, want 1", sess.Index)
	}

	// Going back keeps the earlier answer.
	if err := sess.Prev(); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if sess.CurrentAnswer() != "a" {
		t.Errorf("answer after prev = %q, want a", sess.CurrentAnswer())
	}
	if err := sess.Prev(); err == nil {
		t.Error("Prev succeeded at the first question")
	}

	// Re-selecting overwrites.
	if err := sess.Select("b"); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if sess.CurrentAnswer() != "b" {
		t.Errorf("answer after reselect = %q, want b", sess.CurrentAnswer())
	}
}

func TestSessionNextStopsAtLastQuestion(t *testing.T) {
	sess := activeSession(t, 2)
	sess.Select("a")
	sess.Next()
	sess.Select("b")

	if sess.CanNext() {
		t.Error("CanNext true at the last question")
	}
	if err := sess.Next(); err == nil {
		t.Error("Next succeeded past the last question")
	}
}

func TestSessionProgress(t *testing.T) {
	sess := NewSession(Definition{ID: "personality"})
	if got := sess.Progress(); got != 0 {
		t.Errorf("progress before begin = %d, want 0", got)
	}

	sess = activeSession(t, 8)
	sess.Index = 2
	if got := sess.Progress(); got != 38 {
		t.Errorf("progress at 3 of 8 = %d, want 38", got)
	}
	sess.Index = 7
	if got := sess.Progress(); got != 100 {
		t.Errorf("progress at 8 of 8 = %d, want 100", got)
	}
}

func TestSessionSubmitGuards(t *testing.T) {
	sess := activeSession(t, 2)
	if sess.CanSubmit() {
		t.Error("CanSubmit on first question")
	}
	sess.Select("a")
	sess.Next()
	if sess.CanSubmit() {
		t.Error("CanSubmit with unanswered last question")
	}
	if err := sess.BeginSubmit(); err == nil {
		t.Error("BeginSubmit succeeded without the last answer")
	}

	sess.Select("b")
	if !sess.CanSubmit() {
		t.Error("CanSubmit false on answered last question")
	}
	if err := sess.BeginSubmit(); err != nil {
		t.Fatalf("begin submit: %v", err)
	}
	if sess.Phase != PhaseSubmitting {
		t.Errorf("phase = %s, want submitting", sess.Phase)
	}

	// No answering while submitting.
	if err := sess.Select("c"); err == nil {
		t.Error("Select succeeded while submitting")
	}

	if err := sess.CompleteSubmit(); err != nil {
		t.Fatalf("complete submit: %v", err)
	}
	if sess.Phase != PhaseComplete {
		t.Errorf("phase = %s, want complete", sess.Phase)
	}
}

func TestSessionFailSubmitPreservesResponses(t *testing.T) {
	sess := activeSession(t, 2)
	sess.Select("a")
	sess.Next()
	sess.Select("b")
	if err := sess.BeginSubmit(); err != nil {
		t.Fatalf("begin submit: %v", err)
	}

	if err := sess.FailSubmit(); err != nil {
		t.Fatalf("fail submit: %v", err)
	}
	if sess.Phase != PhaseActive {
		t.Errorf("phase = %s, want active", sess.Phase)
	}
	if sess.Responses[0].Answer != "a" || sess.Responses[1].Answer != "b" {
		t.Errorf("responses lost on failed submit: %+v", sess.Responses)
	}
	// Retry is possible.
	if !sess.CanSubmit() {
		t.Error("cannot resubmit after failed submit")
	}
}

func TestSessionCancel(t *testing.T) {
	sess := NewSession(Definition{ID: "values"})
	if err := sess.Cancel(); err != nil {
		t.Fatalf("cancel while loading: %v", err)
	}
	if sess.Phase != PhaseCancelled {
		t.Errorf("phase = %s, want cancelled", sess.Phase)
	}
	if err := sess.Cancel(); err == nil {
		t.Error("cancel succeeded twice")
	}

	sess = activeSession(t, 2)
	sess.Select("a")
	sess.Next()
	sess.Select("b")
	sess.BeginSubmit()
	sess.CompleteSubmit()
	if err := sess.Cancel(); err == nil {
		t.Error("cancel succeeded on completed session")
	}
}

func TestSessionFallbackQuestionIsPlayable(t *testing.T) {
	sess := NewSession(Definition{ID: "interests", Category: "interests"})
	if err := sess.Begin([]Question{FallbackQuestion}); err != nil {
		t.Fatalf("begin with fallback: %v", err)
	}
	if sess.Phase != PhaseActive {
		t.Errorf("phase = %s, want active", sess.Phase)
	}
	if err := sess.Select("Ok"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !sess.CanSubmit() {
		t.Error("single fallback question should be submittable")
	}
	if got := sess.Progress(); got != 100 {
		t.Errorf("progress = %d, want 100", got)
	}
}

func TestCompletionMinutes(t *testing.T) {
	sess := NewSession(Definition{ID: "values"})
	sess.StartedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{20 * time.Second, 0},
		{90 * time.Second, 2},
		{7 * time.Minute, 7},
	}
	for _, tt := range tests {
		now := sess.StartedAt.Add(tt.elapsed)
		if got := sess.CompletionMinutes(now); got != tt.want {
			t.Errorf("CompletionMinutes(+%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}
