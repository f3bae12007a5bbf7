package advisor

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

func newAdvisorFixture(t *testing.T, mock *llm.MockProvider) (*Service, *store.Store) {
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
			Age: 20, Hobbies: []string{"Technology"},
		},
	}); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	return NewService(mock, s.ResultRepo(), s.CareerFieldRepo(), profiles), s
}

func seedResults(t *testing.T, s *store.Store, assessmentIDs ...string) {
	t.Helper()
	for _, id := range assessmentIDs {
		_, err := s.ResultRepo().Create(context.Background(), &store.Result{
			AssessmentID: id,
			UserEmail:    "asha@example.com",
			Responses:    []schema.QuestionResponse{{QuestionIndex: 0, Answer: "a"}},
			Scores:       map[string]float64{"analytical_thinking": 90},
			Insights: &schema.ResultInsights{
				PrimaryTraits: []string{"analytical"},
				Strengths:     []string{"problem solving"},
				Summary:       "Analytical and curious.",
			},
			CompletionTimeMinutes: 5,
		})
		if err != nil {
			t.Fatalf("seed result %s: %v", id, err)
		}
	}
}

var recommendationPayload = json.RawMessage(`{
	"recommendations": [
		{"field": "Software Engineering", "match_percentage": 91, "reasoning": "Strong analytical profile.", "key_alignments": ["problem solving"], "growth_potential": "High", "next_steps": "Build projects."},
		{"field": "Science & Research", "match_percentage": 84, "reasoning": "Curious and methodical.", "key_alignments": ["curiosity"], "growth_potential": "Medium", "next_steps": "Join a lab."},
		{"field": "Engineering & Manufacturing", "match_percentage": 78, "reasoning": "Systems thinker.", "key_alignments": ["structure"], "growth_potential": "Medium", "next_steps": "Take CAD courses."},
		{"field": "Business & Management", "match_percentage": 70, "reasoning": "Organized.", "key_alignments": ["planning"], "growth_potential": "High", "next_steps": "Lead a club."},
		{"field": "Education & Training", "match_percentage": 65, "reasoning": "Explains well.", "key_alignments": ["communication"], "growth_potential": "Medium", "next_steps": "Tutor peers."}
	]
}`)

func TestRecommendRequiresTwoResults(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, s := newAdvisorFixture(t, mock)
	seedResults(t, s, "personality")

	_, err := svc.Recommend(context.Background())
	if !errors.Is(err, ErrNotEnoughResults) {
		t.Fatalf("Recommend with 1 result = %v, want ErrNotEnoughResults", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times behind the gate", mock.CallCount())
	}
}

func TestRecommendGeneratesAndSaves(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: recommendationPayload})
	svc, s := newAdvisorFixture(t, mock)
	seedResults(t, s, "personality", "values")
	ctx := context.Background()

	recs, err := svc.Recommend(ctx)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("got %d recommendations, want 5", len(recs))
	}
	if recs[0].Field != "Software Engineering" || recs[0].MatchPercentage != 91 {
		t.Errorf("top recommendation = %+v", recs[0])
	}

	// Saved onto the profile.
	saved, err := svc.Saved(ctx)
	if err != nil {
		t.Fatalf("saved: %v", err)
	}
	if len(saved) != 5 {
		t.Errorf("profile carries %d recommendations, want 5", len(saved))
	}

	// The prompt carried insights and the career catalog.
	req := mock.Calls[0]
	for _, want := range []string{
		"Analytical and curious.",
		"Software Engineering",
		"Healthcare & Medicine",
		"Provide 5-8 recommendations",
	} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("recommendation prompt missing %q", want)
		}
	}
	if req.Schema != RecommendationSchema {
		t.Error("request did not carry the recommendation schema")
	}
	if req.WebContext {
		t.Error("recommendations should not request web grounding")
	}
}

func TestRecommendEmptySetIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"recommendations": []}`),
	})
	svc, s := newAdvisorFixture(t, mock)
	seedResults(t, s, "personality", "values")

	if _, err := svc.Recommend(context.Background()); err == nil {
		t.Fatal("expected error for empty recommendation set")
	}
}

func TestSelectPath(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, s := newAdvisorFixture(t, mock)

	if err := svc.SelectPath(context.Background(), "Software Engineering"); err != nil {
		t.Fatalf("select path: %v", err)
	}
	p, err := s.ProfileRepo().Me(context.Background())
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if p.SelectedCareerPath == nil || p.SelectedCareerPath.Field != "Software Engineering" {
		t.Errorf("selected path = %+v", p.SelectedCareerPath)
	}

	if err := svc.SelectPath(context.Background(), ""); err == nil {
		t.Error("expected error for empty field")
	}
}

func TestSkillRoadmapIsWebGrounded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"technical_skills": ["Go", "SQL"],
			"soft_skills": ["Communication"],
			"key_experiences": ["Open source contribution"]
		}`),
	})
	svc, _ := newAdvisorFixture(t, mock)

	roadmap, err := svc.SkillRoadmap(context.Background(), "Software Engineering")
	if err != nil {
		t.Fatalf("roadmap: %v", err)
	}
	if len(roadmap.TechnicalSkills) != 2 || roadmap.TechnicalSkills[0] != "Go" {
		t.Errorf("technical skills = %v", roadmap.TechnicalSkills)
	}

	req := mock.Calls[0]
	if !req.WebContext {
		t.Error("roadmap request must ask for web grounding")
	}
	if !strings.Contains(req.Prompt, `"Software Engineering"`) {
		t.Errorf("roadmap prompt missing field: %q", req.Prompt)
	}

	if _, err := svc.SkillRoadmap(context.Background(), ""); err == nil {
		t.Error("expected error for empty field")
	}
}
