package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.ProfileRepo(), s.AssessmentRepo()), s
}

func onboardTestUser(t *testing.T, svc *Service) *store.Profile {
	t.Helper()
	p, err := svc.SaveOnboarding(context.Background(), Onboarding{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		AcademicInfo: schema.AcademicInfo{
			EducationStatus: "university_student",
		},
		PersonalBackground: schema.PersonalBackground{
			Age:     20,
			Hobbies: []string{"Technology", "Music"},
		},
	})
	if err != nil {
		t.Fatalf("save onboarding: %v", err)
	}
	return p
}

func TestMeBeforeOnboarding(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Me(context.Background())
	if !errors.Is(err, ErrNoProfile) {
		t.Fatalf("Me before onboarding = %v, want ErrNoProfile", err)
	}
}

func TestSaveOnboardingThenMe(t *testing.T) {
	svc, _ := newTestService(t)
	onboardTestUser(t, svc)

	p, err := svc.Me(context.Background())
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if p.FullName != "Asha Rao" {
		t.Errorf("full name = %q", p.FullName)
	}
	if p.PersonalBackground.Age != 20 {
		t.Errorf("age = %d, want 20", p.PersonalBackground.Age)
	}
}

func TestSetMentorOptIn(t *testing.T) {
	svc, _ := newTestService(t)
	onboardTestUser(t, svc)

	p, err := svc.SetMentorOptIn(context.Background(), true)
	if err != nil {
		t.Fatalf("opt in: %v", err)
	}
	if !p.IsMentor {
		t.Error("expected mentor flag set")
	}
}

func TestSelectCareerPath(t *testing.T) {
	svc, _ := newTestService(t)
	onboardTestUser(t, svc)

	p, err := svc.SelectCareerPath(context.Background(), "Software Engineering")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if p.SelectedCareerPath == nil || p.SelectedCareerPath.Field != "Software Engineering" {
		t.Errorf("selected path = %+v", p.SelectedCareerPath)
	}

	if _, err := svc.SelectCareerPath(context.Background(), ""); err == nil {
		t.Error("expected error for empty field")
	}
}

func TestMutateRetriesAfterCompetingWrite(t *testing.T) {
	svc, st := newTestService(t)
	onboardTestUser(t, svc)
	ctx := context.Background()

	calls := 0
	updated, err := svc.mutate(ctx, func(p *store.Profile) error {
		calls++
		if calls == 1 {
			// Sneak in a competing write so the first update attempt
			// hits a version conflict and the loop reloads.
			other, err := st.ProfileRepo().Me(ctx)
			if err != nil {
				return err
			}
			other.FullName = "Competing Writer"
			if _, err := st.ProfileRepo().Update(ctx, other); err != nil {
				return err
			}
		}
		p.IsMentor = true
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if calls != 2 {
		t.Errorf("apply calls = %d, want 2", calls)
	}
	if !updated.IsMentor {
		t.Error("expected mentor flag set")
	}
	if updated.FullName != "Competing Writer" {
		t.Errorf("full name = %q, want the competing write preserved", updated.FullName)
	}
}

func TestSaveRecommendations(t *testing.T) {
	svc, _ := newTestService(t)
	onboardTestUser(t, svc)

	recs := []schema.CareerRecommendation{
		{Field: "Software Engineering", MatchPercentage: 88, Reasoning: "Analytical profile."},
		{Field: "Science & Research", MatchPercentage: 75, Reasoning: "Curious."},
	}
	p, err := svc.SaveRecommendations(context.Background(), recs)
	if err != nil {
		t.Fatalf("save recommendations: %v", err)
	}
	if len(p.CareerRecommendations) != 2 {
		t.Errorf("recommendations = %d, want 2", len(p.CareerRecommendations))
	}
}

func TestRecordCompletedAssessment(t *testing.T) {
	svc, s := newTestService(t)
	onboardTestUser(t, svc)
	ctx := context.Background()

	total, err := s.AssessmentRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	p, err := svc.RecordCompletedAssessment(ctx, "values")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(p.AssessmentProgress.CompletedAssessments) != 1 {
		t.Fatalf("completed = %v", p.AssessmentProgress.CompletedAssessments)
	}

	// Percentage is computed against the catalog size, not a constant.
	want := int(float64(1)/float64(total)*100 + 0.5)
	if p.AssessmentProgress.CompletionPercentage != want {
		t.Errorf("percentage = %d, want %d", p.AssessmentProgress.CompletionPercentage, want)
	}

	// Next recommended is the first catalog entry not yet completed.
	if p.AssessmentProgress.NextRecommended != "personality" {
		t.Errorf("next recommended = %q, want personality", p.AssessmentProgress.NextRecommended)
	}
}

func TestRecordCompletedAssessmentIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	onboardTestUser(t, svc)
	ctx := context.Background()

	if _, err := svc.RecordCompletedAssessment(ctx, "values"); err != nil {
		t.Fatalf("first record: %v", err)
	}
	p, err := svc.RecordCompletedAssessment(ctx, "values")
	if err != nil {
		t.Fatalf("second record: %v", err)
	}

	count := 0
	for _, id := range p.AssessmentProgress.CompletedAssessments {
		if id == "values" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("values recorded %d times, want 1", count)
	}
}
