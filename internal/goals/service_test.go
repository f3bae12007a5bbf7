package goals

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
)

func newGoalsFixture(t *testing.T, mock *llm.MockProvider) (*Service, *profile.Service) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	profiles := profile.NewService(s.ProfileRepo(), s.AssessmentRepo())
	if _, err := profiles.SaveOnboarding(context.Background(), profile.Onboarding{
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
		AcademicInfo: schema.AcademicInfo{EducationStatus: "university_student"},
		PersonalBackground: schema.PersonalBackground{
			Age: 20,
		},
	}); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	return NewService(mock, s.GoalRepo(), profiles), profiles
}

func TestGoalLifecycle(t *testing.T) {
	svc, _ := newGoalsFixture(t, llm.NewMockProvider())
	ctx := context.Background()

	g, err := svc.Add(ctx, "Ship a side project", "Build and release something real.", "skill_development", "2026-12-31")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if g.Status != StatusInProgress {
		t.Errorf("status = %q, want in_progress", g.Status)
	}

	if err := svc.Complete(ctx, g.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Status != StatusCompleted {
		t.Errorf("listed = %+v", listed)
	}

	if err := svc.Reopen(ctx, g.ID); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := svc.Delete(ctx, g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, _ = svc.List(ctx)
	if len(listed) != 0 {
		t.Errorf("goals remain after delete: %+v", listed)
	}
}

func TestAddValidation(t *testing.T) {
	svc, _ := newGoalsFixture(t, llm.NewMockProvider())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "", "desc", "career", ""); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := svc.Add(ctx, "Title", "desc", "weightlifting", ""); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestSuggestRequiresCareerPath(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, _ := newGoalsFixture(t, mock)

	if _, err := svc.Suggest(context.Background()); err == nil {
		t.Fatal("expected error without a selected career path")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times without a career path", mock.CallCount())
	}
}

func TestSuggestAndAdopt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"suggested_goals": [
				{"title": "Finish a data structures course", "description": "Core CS grounding for Software Engineering.", "category": "academic"},
				{"title": "Contribute to open source", "description": "Real code review experience.", "category": "skill_development"},
				{"title": "Attend a local tech meetup", "description": "Grow a professional network.", "category": "career"}
			]
		}`),
	})
	svc, profiles := newGoalsFixture(t, mock)
	ctx := context.Background()

	if _, err := profiles.SelectCareerPath(ctx, "Software Engineering"); err != nil {
		t.Fatalf("select path: %v", err)
	}

	suggestions, err := svc.Suggest(ctx)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(suggestions))
	}
	if suggestions[0].Category != "academic" {
		t.Errorf("category = %q", suggestions[0].Category)
	}

	req := mock.Calls[0]
	for _, want := range []string{`"Software Engineering"`, "university_student", "age of 20", "generate 3-4"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("suggest prompt missing %q", want)
		}
	}
	if req.WebContext {
		t.Error("goal suggestions should not request web grounding")
	}

	g, err := svc.Adopt(ctx, suggestions[0], "2026-10-01")
	if err != nil {
		t.Fatalf("adopt: %v", err)
	}
	if g.Title != "Finish a data structures course" || g.Status != StatusInProgress {
		t.Errorf("adopted goal = %+v", g)
	}
}
