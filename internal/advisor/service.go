package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
)

// minResults is how many completed assessments recommendations require.
// Fewer than that and the profile signal is too thin to rank fields.
const minResults = 2

// ErrNotEnoughResults indicates the user hasn't completed enough
// assessments for meaningful recommendations.
var ErrNotEnoughResults = fmt.Errorf("complete at least %d assessments before requesting recommendations", minResults)

// Roadmap lists what to build toward a target career field.
type Roadmap struct {
	TechnicalSkills []string
	SoftSkills      []string
	KeyExperiences  []string
}

// Service generates, persists and selects career recommendations.
type Service struct {
	provider llm.Provider
	results  store.ResultRepo
	fields   store.CareerFieldRepo
	profiles *profile.Service
}

// NewService creates an advisor Service.
func NewService(provider llm.Provider, results store.ResultRepo, fields store.CareerFieldRepo, profiles *profile.Service) *Service {
	return &Service{provider: provider, results: results, fields: fields, profiles: profiles}
}

type rawRecommendations struct {
	Recommendations []struct {
		Field           string   `json:"field"`
		MatchPercentage float64  `json:"match_percentage"`
		Reasoning       string   `json:"reasoning"`
		KeyAlignments   []string `json:"key_alignments"`
		GrowthPotential string   `json:"growth_potential"`
		NextSteps       string   `json:"next_steps"`
	} `json:"recommendations"`
}

// Recommend generates fresh career recommendations from the user's
// assessment results and saves them to the profile.
func (s *Service) Recommend(ctx context.Context) ([]schema.CareerRecommendation, error) {
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.results.ListByUser(ctx, p.Email)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	if len(results) < minResults {
		return nil, ErrNotEnoughResults
	}
	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list career fields: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "recommendations")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    buildRecommendationPrompt(p, results, fields),
		Schema:    RecommendationSchema,
		MaxTokens: 4096,
	})
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	var raw rawRecommendations
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	if len(raw.Recommendations) == 0 {
		return nil, fmt.Errorf("model returned no recommendations")
	}

	recs := make([]schema.CareerRecommendation, 0, len(raw.Recommendations))
	for _, r := range raw.Recommendations {
		recs = append(recs, schema.CareerRecommendation{
			Field:           r.Field,
			MatchPercentage: r.MatchPercentage,
			Reasoning:       r.Reasoning,
			KeyAlignments:   r.KeyAlignments,
			GrowthPotential: r.GrowthPotential,
			NextSteps:       r.NextSteps,
		})
	}

	if _, err := s.profiles.SaveRecommendations(ctx, recs); err != nil {
		return nil, fmt.Errorf("save recommendations: %w", err)
	}
	return recs, nil
}

// Saved returns the recommendations already stored on the profile.
func (s *Service) Saved(ctx context.Context) ([]schema.CareerRecommendation, error) {
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}
	return p.CareerRecommendations, nil
}

// SelectPath records a recommendation's field as the chosen career path.
func (s *Service) SelectPath(ctx context.Context, field string) error {
	_, err := s.profiles.SelectCareerPath(ctx, field)
	return err
}

// SkillRoadmap builds a web-grounded skill roadmap for a career field.
func (s *Service) SkillRoadmap(ctx context.Context, field string) (*Roadmap, error) {
	if field == "" {
		return nil, fmt.Errorf("career field must not be empty")
	}

	ctx = llm.WithPurpose(ctx, "roadmap")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:     buildRoadmapPrompt(field),
		Schema:     RoadmapSchema,
		WebContext: true,
		MaxTokens:  2048,
	})
	if err != nil {
		return nil, fmt.Errorf("generate roadmap: %w", err)
	}

	var raw struct {
		TechnicalSkills []string `json:"technical_skills"`
		SoftSkills      []string `json:"soft_skills"`
		KeyExperiences  []string `json:"key_experiences"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("decode roadmap: %w", err)
	}
	return &Roadmap{
		TechnicalSkills: raw.TechnicalSkills,
		SoftSkills:      raw.SoftSkills,
		KeyExperiences:  raw.KeyExperiences,
	}, nil
}
