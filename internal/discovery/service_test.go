package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adit/pathwise/internal/llm"
)

func TestMentorsSearch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"mentors": [
				{
					"name": "Dana Feld",
					"title": "Staff Engineer",
					"company": "Example Corp",
					"experience_years": "12",
					"specialization": "Backend systems",
					"bio": "Mentors early-career engineers.",
					"platform": "ADPList",
					"profile_url": "https://adplist.org/mentors/dana-feld",
					"skills": ["Go", "Distributed systems"],
					"mentoring_focus": "Career transitions",
					"availability": "Weekends",
					"cost": "Free"
				}
			]
		}`),
	})
	svc := NewService(mock)

	mentors, err := svc.Mentors(context.Background(), MentorFilters{Field: "Software Engineering", Location: "Remote"})
	if err != nil {
		t.Fatalf("mentors: %v", err)
	}
	if len(mentors) != 1 || mentors[0].Platform != "ADPList" {
		t.Errorf("mentors = %+v", mentors)
	}
	if len(mentors[0].Skills) != 2 {
		t.Errorf("skills = %v", mentors[0].Skills)
	}

	req := mock.Calls[0]
	if !req.WebContext {
		t.Error("mentor search must request web grounding")
	}
	for _, want := range []string{"Software Engineering", "Remote", "any level", "4-6 highly relevant"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("mentor prompt missing %q", want)
		}
	}
}

func TestJobsSearchEmptyTolerant(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"jobs": []}`),
	})
	svc := NewService(mock)

	jobs, err := svc.Jobs(context.Background(), JobFilters{})
	if err != nil {
		t.Fatalf("jobs: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("jobs = %+v, want empty", jobs)
	}

	// Empty filters fall back to open criteria.
	req := mock.Calls[0]
	for _, want := range []string{`"any field"`, `"any location"`, `"entry-level"`, `"any salary"`} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("job prompt missing %q", want)
		}
	}
}

func TestUniversitiesSearch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"universities": [
				{
					"name": "State Tech",
					"location": "Springfield, IL",
					"description": "Strong CS program.",
					"tuition_cost": "$12,000",
					"website": "https://statetech.example.edu",
					"program_highlights": "Co-op placements"
				}
			]
		}`),
	})
	svc := NewService(mock)

	got, err := svc.Universities(context.Background(), UniversityFilters{
		Major:        "Computer Science",
		MaxTuition:   15000,
		PartTimeJobs: true,
	})
	if err != nil {
		t.Fatalf("universities: %v", err)
	}
	if len(got) != 1 || got[0].Website != "https://statetech.example.edu" {
		t.Errorf("universities = %+v", got)
	}

	req := mock.Calls[0]
	for _, want := range []string{`"Computer Science"`, "$15000", "part-time job opportunities: Yes", "boarding/housing: No"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("university prompt missing %q", want)
		}
	}
}

func TestMarketTrends(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"growing_fields": [{"field": "Renewable Energy", "reason": "Grid buildout."}],
			"declining_fields": [{"field": "Print Media", "reason": "Digital shift."}]
		}`),
	})
	svc := NewService(mock)

	trends, err := svc.MarketTrends(context.Background())
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if len(trends.GrowingFields) != 1 || trends.GrowingFields[0].Field != "Renewable Energy" {
		t.Errorf("growing = %+v", trends.GrowingFields)
	}
	if len(trends.DecliningFields) != 1 {
		t.Errorf("declining = %+v", trends.DecliningFields)
	}
	if !mock.Calls[0].WebContext {
		t.Error("trends must request web grounding")
	}
}

func TestConvert(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"converted_amount": 920.50,
			"exchange_rate": 0.9205,
			"from_currency": "USD",
			"to_currency": "EUR",
			"original_amount": 1000
		}`),
	})
	svc := NewService(mock)

	conv, err := svc.Convert(context.Background(), 1000, "USD", "EUR")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if conv.ConvertedAmount != 920.50 || conv.ExchangeRate != 0.9205 {
		t.Errorf("conversion = %+v", conv)
	}
	if !strings.Contains(mock.Calls[0].Prompt, "Convert 1000 USD to EUR") {
		t.Errorf("conversion prompt = %q", mock.Calls[0].Prompt)
	}
}

func TestConvertValidation(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)
	ctx := context.Background()

	if _, err := svc.Convert(ctx, 0, "USD", "EUR"); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, err := svc.Convert(ctx, 100, "", "EUR"); err == nil {
		t.Error("expected error for missing currency")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times on invalid input", mock.CallCount())
	}
}

func TestSearchPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("search tool unavailable")})
	svc := NewService(mock)

	if _, err := svc.MarketTrends(context.Background()); err == nil {
		t.Fatal("expected error from failing provider")
	}
}
