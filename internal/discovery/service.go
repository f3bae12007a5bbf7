package discovery

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adit/pathwise/internal/llm"
)

// Service runs the web-grounded discovery searches. Every call sets
// WebContext; results are only as current as the provider's search tool.
type Service struct {
	provider llm.Provider
}

// NewService creates a discovery Service.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// generate runs one grounded search call and decodes into out. Decoding is
// tolerant: fields the model omits stay at their zero values.
func (s *Service) generate(ctx context.Context, prompt string, schema *llm.Schema, out any) error {
	ctx = llm.WithPurpose(ctx, "search")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:     prompt,
		Schema:     schema,
		WebContext: true,
		MaxTokens:  4096,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("decode %s response: %w", schema.Name, err)
	}
	return nil
}

// Mentors searches public mentoring platforms for matching mentors.
func (s *Service) Mentors(ctx context.Context, f MentorFilters) ([]Mentor, error) {
	var raw struct {
		Mentors []struct {
			Name            string   `json:"name"`
			Title           string   `json:"title"`
			Company         string   `json:"company"`
			ExperienceYears string   `json:"experience_years"`
			Specialization  string   `json:"specialization"`
			Bio             string   `json:"bio"`
			Platform        string   `json:"platform"`
			ProfileURL      string   `json:"profile_url"`
			Skills          []string `json:"skills"`
			MentoringFocus  string   `json:"mentoring_focus"`
			Availability    string   `json:"availability"`
			Cost            string   `json:"cost"`
		} `json:"mentors"`
	}
	if err := s.generate(ctx, buildMentorPrompt(f), MentorSchema, &raw); err != nil {
		return nil, fmt.Errorf("search mentors: %w", err)
	}

	mentors := make([]Mentor, 0, len(raw.Mentors))
	for _, m := range raw.Mentors {
		mentors = append(mentors, Mentor{
			Name:            m.Name,
			Title:           m.Title,
			Company:         m.Company,
			ExperienceYears: m.ExperienceYears,
			Specialization:  m.Specialization,
			Bio:             m.Bio,
			Platform:        m.Platform,
			ProfileURL:      m.ProfileURL,
			Skills:          m.Skills,
			MentoringFocus:  m.MentoringFocus,
			Availability:    m.Availability,
			Cost:            m.Cost,
		})
	}
	return mentors, nil
}

// Jobs searches major job boards for current listings.
func (s *Service) Jobs(ctx context.Context, f JobFilters) ([]Job, error) {
	var raw struct {
		Jobs []struct {
			Title              string `json:"title"`
			Company            string `json:"company"`
			Location           string `json:"location"`
			Summary            string `json:"summary"`
			SalaryRange        string `json:"salary_range"`
			ExperienceRequired string `json:"experience_required"`
			Link               string `json:"link"`
		} `json:"jobs"`
	}
	if err := s.generate(ctx, buildJobPrompt(f), JobSchema, &raw); err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}

	jobs := make([]Job, 0, len(raw.Jobs))
	for _, j := range raw.Jobs {
		jobs = append(jobs, Job{
			Title:              j.Title,
			Company:            j.Company,
			Location:           j.Location,
			Summary:            j.Summary,
			SalaryRange:        j.SalaryRange,
			ExperienceRequired: j.ExperienceRequired,
			Link:               j.Link,
		})
	}
	return jobs, nil
}

// Universities searches for institutions matching the filters.
func (s *Service) Universities(ctx context.Context, f UniversityFilters) ([]University, error) {
	var raw struct {
		Universities []struct {
			Name              string `json:"name"`
			Location          string `json:"location"`
			Description       string `json:"description"`
			TuitionCost       string `json:"tuition_cost"`
			Website           string `json:"website"`
			ProgramHighlights string `json:"program_highlights"`
		} `json:"universities"`
	}
	if err := s.generate(ctx, buildUniversityPrompt(f), UniversitySchema, &raw); err != nil {
		return nil, fmt.Errorf("search universities: %w", err)
	}

	universities := make([]University, 0, len(raw.Universities))
	for _, u := range raw.Universities {
		universities = append(universities, University{
			Name:              u.Name,
			Location:          u.Location,
			Description:       u.Description,
			TuitionCost:       u.TuitionCost,
			Website:           u.Website,
			ProgramHighlights: u.ProgramHighlights,
		})
	}
	return universities, nil
}

// MarketTrends summarizes which fields are growing and declining.
func (s *Service) MarketTrends(ctx context.Context) (*Trends, error) {
	var raw struct {
		GrowingFields []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"growing_fields"`
		DecliningFields []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"declining_fields"`
	}
	if err := s.generate(ctx, trendsPrompt, TrendsSchema, &raw); err != nil {
		return nil, fmt.Errorf("fetch market trends: %w", err)
	}

	trends := &Trends{}
	for _, f := range raw.GrowingFields {
		trends.GrowingFields = append(trends.GrowingFields, FieldTrend{Field: f.Field, Reason: f.Reason})
	}
	for _, f := range raw.DecliningFields {
		trends.DecliningFields = append(trends.DecliningFields, FieldTrend{Field: f.Field, Reason: f.Reason})
	}
	return trends, nil
}

// Convert converts an amount between currencies at current rates.
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (*Conversion, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("both currencies must be set")
	}

	var raw struct {
		ConvertedAmount float64 `json:"converted_amount"`
		ExchangeRate    float64 `json:"exchange_rate"`
		FromCurrency    string  `json:"from_currency"`
		ToCurrency      string  `json:"to_currency"`
		OriginalAmount  float64 `json:"original_amount"`
	}
	if err := s.generate(ctx, buildConversionPrompt(amount, from, to), ConversionSchema, &raw); err != nil {
		return nil, fmt.Errorf("convert currency: %w", err)
	}
	return &Conversion{
		ConvertedAmount: raw.ConvertedAmount,
		ExchangeRate:    raw.ExchangeRate,
		FromCurrency:    raw.FromCurrency,
		ToCurrency:      raw.ToCurrency,
		OriginalAmount:  raw.OriginalAmount,
	}, nil
}
