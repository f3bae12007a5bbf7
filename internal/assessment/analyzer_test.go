package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/adit/pathwise/internal/llm"
)

func TestAnalyzeMapsScoresAndInsights(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"scores": {"extroversion": 72, "conscientiousness": 85.5},
			"insights": {
				"primary_traits": ["organized", "outgoing"],
				"strengths": ["planning"],
				"development_areas": ["delegation"],
				"summary": "A structured and social profile."
			}
		}`),
	})
	analyzer := NewAnalyzer(mock)

	analysis, err := analyzer.Analyze(context.Background(), AnalyzeInput{
		Title:        "Personality Assessment",
		ContextLabel: "college-age young adult",
		Questions:    []Question{{Text: "q", Dimension: "extroversion"}},
		Responses:    []Response{{QuestionIndex: 0, Answer: "a"}},
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if analysis.Scores["conscientiousness"] != 85.5 {
		t.Errorf("conscientiousness = %v", analysis.Scores["conscientiousness"])
	}
	if len(analysis.Insights.PrimaryTraits) != 2 {
		t.Errorf("primary traits = %v", analysis.Insights.PrimaryTraits)
	}
	if analysis.Insights.Summary == "" {
		t.Error("summary missing")
	}

	req := mock.Calls[0]
	if req.Schema != AnalysisSchema {
		t.Error("request did not carry the analysis schema")
	}
}

func TestAnalyzeToleratesMissingInsightFields(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"scores": {"achievement": 80}, "insights": {}}`),
	})
	analyzer := NewAnalyzer(mock)

	analysis, err := analyzer.Analyze(context.Background(), AnalyzeInput{Title: "Values Assessment"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.Scores["achievement"] != 80 {
		t.Errorf("achievement = %v", analysis.Scores["achievement"])
	}
	if analysis.Insights.Summary != "" || analysis.Insights.PrimaryTraits != nil {
		t.Errorf("insights should be empty: %+v", analysis.Insights)
	}
}

func TestAnalyzeNilScoresBecomeEmptyMap(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"insights": {"summary": "thin response"}}`),
	})
	analyzer := NewAnalyzer(mock)

	analysis, err := analyzer.Analyze(context.Background(), AnalyzeInput{Title: "Strengths Assessment"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.Scores == nil {
		t.Fatal("scores map is nil")
	}
	if len(analysis.Scores) != 0 {
		t.Errorf("scores = %v, want empty", analysis.Scores)
	}
}

func TestAnalyzePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("overloaded")})
	analyzer := NewAnalyzer(mock)

	_, err := analyzer.Analyze(context.Background(), AnalyzeInput{Title: "Personality Assessment"})
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}
