package profile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/store"
)

// ErrNoProfile indicates onboarding has not run yet; callers should route
// the user to the welcome flow instead of showing an error.
var ErrNoProfile = errors.New("profile not onboarded")

// conflictRetries bounds how often a read-modify-write is repeated when
// another flow bumped the profile version in between.
const conflictRetries = 3

// Onboarding carries everything the welcome flow collects.
type Onboarding struct {
	FullName           string
	Email              string
	AcademicInfo       schema.AcademicInfo
	PersonalBackground schema.PersonalBackground
}

// Service owns all reads and writes of the user profile.
type Service struct {
	profiles    store.ProfileRepo
	assessments store.AssessmentRepo
}

// NewService creates a profile Service.
func NewService(profiles store.ProfileRepo, assessments store.AssessmentRepo) *Service {
	return &Service{profiles: profiles, assessments: assessments}
}

// Me returns the onboarded profile, or ErrNoProfile when the welcome flow
// hasn't run yet.
func (s *Service) Me(ctx context.Context) (*store.Profile, error) {
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}
	if p.AcademicInfo.EducationStatus == "" {
		return nil, ErrNoProfile
	}
	return p, nil
}

// SaveOnboarding persists the welcome-flow answers.
func (s *Service) SaveOnboarding(ctx context.Context, ob Onboarding) (*store.Profile, error) {
	return s.mutate(ctx, func(p *store.Profile) error {
		if ob.FullName != "" {
			p.FullName = ob.FullName
		}
		if ob.Email != "" {
			p.Email = ob.Email
		}
		p.AcademicInfo = ob.AcademicInfo
		p.PersonalBackground = ob.PersonalBackground
		return nil
	})
}

// SetMentorOptIn flips the mentor flag.
func (s *Service) SetMentorOptIn(ctx context.Context, optIn bool) (*store.Profile, error) {
	return s.mutate(ctx, func(p *store.Profile) error {
		p.IsMentor = optIn
		return nil
	})
}

// SelectCareerPath records the user's chosen target field.
func (s *Service) SelectCareerPath(ctx context.Context, field string) (*store.Profile, error) {
	if field == "" {
		return nil, fmt.Errorf("career field must not be empty")
	}
	return s.mutate(ctx, func(p *store.Profile) error {
		p.SelectedCareerPath = &schema.CareerPath{Field: field}
		return nil
	})
}

// SaveRecommendations replaces the stored recommendation list.
func (s *Service) SaveRecommendations(ctx context.Context, recs []schema.CareerRecommendation) (*store.Profile, error) {
	return s.mutate(ctx, func(p *store.Profile) error {
		p.CareerRecommendations = recs
		return nil
	})
}

// RecordCompletedAssessment appends the assessment id to the progress list
// exactly once and recomputes the completion percentage against the catalog
// size. Recording an already-recorded id is a no-op.
func (s *Service) RecordCompletedAssessment(ctx context.Context, assessmentID string) (*store.Profile, error) {
	total, err := s.assessments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count catalog: %w", err)
	}
	catalog, err := s.assessments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	return s.mutate(ctx, func(p *store.Profile) error {
		completed := p.AssessmentProgress.CompletedAssessments
		for _, id := range completed {
			if id == assessmentID {
				return nil
			}
		}
		completed = append(completed, assessmentID)

		p.AssessmentProgress.CompletedAssessments = completed
		p.AssessmentProgress.CompletionPercentage = completionPercentage(len(completed), total)
		p.AssessmentProgress.NextRecommended = nextRecommended(catalog, completed)
		return nil
	})
}

// mutate runs a read-modify-write through the versioned update, retrying a
// bounded number of times when a concurrent flow won the write race.
func (s *Service) mutate(ctx context.Context, apply func(*store.Profile) error) (*store.Profile, error) {
	var lastErr error
	for range conflictRetries {
		p, err := s.profiles.Me(ctx)
		if err != nil {
			return nil, err
		}

		// Apply on a copy so a failed callback leaves the loaded profile
		// untouched for the next attempt.
		draft := store.ProfileSnapshot(p)
		if err := apply(draft); err != nil {
			return nil, err
		}
		draft.UpdatedAt = time.Now().UTC()

		updated, err := s.profiles.Update(ctx, draft)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("profile update kept conflicting: %w", lastErr)
}

func completionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// nextRecommended returns the first catalog assessment not completed yet.
func nextRecommended(catalog []*store.Assessment, completed []string) string {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	for _, a := range catalog {
		if !done[a.AssessmentID] {
			return a.AssessmentID
		}
	}
	return ""
}
