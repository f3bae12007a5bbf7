package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
)

func newCompleterFixture(t *testing.T, mock *llm.MockProvider) (*Completer, *store.Store, *profile.Service) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	profiles := profile.NewService(s.ProfileRepo(), s.AssessmentRepo())
	if _, err := profiles.SaveOnboarding(context.Background(), profile.Onboarding{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		AcademicInfo: schema.AcademicInfo{
			EducationStatus: "university_student",
		},
		PersonalBackground: schema.PersonalBackground{
			Age:     20,
			Hobbies: []string{"Technology", "Music"},
		},
	}); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	return NewCompleter(NewAnalyzer(mock), s.ResultRepo(), profiles), s, profiles
}

func valuesDefinition(t *testing.T, s *store.Store) Definition {
	t.Helper()
	a, err := s.AssessmentRepo().Get(context.Background(), "values")
	if err != nil {
		t.Fatalf("get values assessment: %v", err)
	}
	return Definition{
		ID:              a.AssessmentID,
		Title:           a.Title,
		Category:        a.Category,
		Description:     a.Description,
		DurationMinutes: a.DurationMinutes,
	}
}

func submittedValuesSession(t *testing.T, def Definition) *Session {
	t.Helper()
	sess := NewSession(def)
	questions := []Question{
		{Text: "What drives you most?", Options: []string{"Winning", "Helping"}, Dimension: "achievement"},
		{Text: "Pick a weekend plan.", Options: []string{"Side project", "Volunteering"}, Dimension: "independence"},
	}
	if err := sess.Begin(questions); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := sess.Select("Winning"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := sess.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := sess.Select("Side project"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := sess.BeginSubmit(); err != nil {
		t.Fatalf("begin submit: %v", err)
	}
	return sess
}

func TestCompleteEndToEnd(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"scores": {"achievement": 80},
			"insights": {
				"primary_traits": ["ambitious"],
				"strengths": ["self-direction"],
				"development_areas": ["collaboration"],
				"summary": "Driven by achievement and autonomy."
			}
		}`),
	})
	completer, s, _ := newCompleterFixture(t, mock)
	ctx := context.Background()

	sess := submittedValuesSession(t, valuesDefinition(t, s))
	result, err := completer.Complete(ctx, sess)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := sess.CompleteSubmit(); err != nil {
		t.Fatalf("complete submit: %v", err)
	}

	if result.Scores["achievement"] != 80 {
		t.Errorf("achievement = %v, want 80", result.Scores["achievement"])
	}
	if result.Insights == nil || result.Insights.Summary == "" {
		t.Errorf("insights = %+v", result.Insights)
	}
	if len(result.Responses) != 2 || result.Responses[0].Answer != "Winning" {
		t.Errorf("responses = %+v", result.Responses)
	}

	// The stored copy matches what was returned.
	stored, err := s.ResultRepo().Get(ctx, "values", "asha@example.com")
	if err != nil {
		t.Fatalf("get stored result: %v", err)
	}
	if stored.Scores["achievement"] != 80 {
		t.Errorf("stored achievement = %v", stored.Scores["achievement"])
	}

	// The profile progress was advanced.
	p, err := s.ProfileRepo().Me(ctx)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	found := false
	for _, id := range p.AssessmentProgress.CompletedAssessments {
		if id == "values" {
			found = true
		}
	}
	if !found {
		t.Errorf("values not in completed list: %v", p.AssessmentProgress.CompletedAssessments)
	}

	// The analysis prompt carried the age-derived persona.
	req := mock.Calls[0]
	if want := "college-age young adult"; !strings.Contains(req.Prompt, want) {
		t.Errorf("analysis prompt missing %q", want)
	}
}

func TestCompleteStoresEmptyAnalysisOnScoringFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("overloaded")})
	completer, s, _ := newCompleterFixture(t, mock)
	ctx := context.Background()

	sess := submittedValuesSession(t, valuesDefinition(t, s))
	result, err := completer.Complete(ctx, sess)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if len(result.Scores) != 0 {
		t.Errorf("scores = %v, want empty", result.Scores)
	}
	if len(result.Responses) != 2 {
		t.Errorf("responses = %d, want 2", len(result.Responses))
	}
}

func TestCompleteRejectsDuplicate(t *testing.T) {
	analysis := json.RawMessage(`{"scores": {"achievement": 80}, "insights": {"summary": "ok"}}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: analysis},
		llm.MockResponse{Content: analysis},
	)
	completer, s, _ := newCompleterFixture(t, mock)
	ctx := context.Background()
	def := valuesDefinition(t, s)

	first := submittedValuesSession(t, def)
	if _, err := completer.Complete(ctx, first); err != nil {
		t.Fatalf("first complete: %v", err)
	}

	second := submittedValuesSession(t, def)
	_, err := completer.Complete(ctx, second)
	if !errors.Is(err, store.ErrDuplicateResult) {
		t.Fatalf("second complete = %v, want ErrDuplicateResult", err)
	}

	// The caller rolls the session back and keeps the responses.
	if err := second.FailSubmit(); err != nil {
		t.Fatalf("fail submit: %v", err)
	}
	if second.Responses[0].Answer != "Winning" {
		t.Errorf("responses lost after duplicate rejection: %+v", second.Responses)
	}
}

func TestCompleteRequiresSubmittingPhase(t *testing.T) {
	mock := llm.NewMockProvider()
	completer, s, _ := newCompleterFixture(t, mock)

	sess := NewSession(valuesDefinition(t, s))
	if _, err := completer.Complete(context.Background(), sess); err == nil {
		t.Error("expected error for loading-phase session")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for invalid session", mock.CallCount())
	}
}
