package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adit/pathwise/internal/llm"
)

// Analyzer scores a completed quiz through an LLM provider.
type Analyzer struct {
	provider llm.Provider
}

// NewAnalyzer creates an analyzer backed by the given provider.
func NewAnalyzer(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// AnalyzeInput is the transcript handed to the scoring call.
type AnalyzeInput struct {
	// Title is the assessment's display title, quoted in the prompt.
	Title string

	// ContextLabel is the user's persona label, e.g. "college-age young adult".
	ContextLabel string

	Questions []Question
	Responses []Response
}

// rawAnalysis mirrors the wire format of AnalysisSchema.
type rawAnalysis struct {
	Scores   map[string]float64 `json:"scores"`
	Insights struct {
		PrimaryTraits    []string `json:"primary_traits"`
		Strengths        []string `json:"strengths"`
		DevelopmentAreas []string `json:"development_areas"`
		Summary          string   `json:"summary"`
	} `json:"insights"`
}

// Analyze scores the responses and returns the analysis. Insight fields the
// model omits come back empty, never nil-panicking downstream consumers.
func (a *Analyzer) Analyze(ctx context.Context, in AnalyzeInput) (*Analysis, error) {
	ctx = llm.WithPurpose(ctx, "scoring")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    buildAnalysisPrompt(in.Title, in.ContextLabel, in.Questions, in.Responses),
		Schema:    AnalysisSchema,
		MaxTokens: 2048,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze responses: %w", err)
	}

	var raw rawAnalysis
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}

	out := &Analysis{
		Scores: Scores(raw.Scores),
		Insights: Insights{
			PrimaryTraits:    raw.Insights.PrimaryTraits,
			Strengths:        raw.Insights.Strengths,
			DevelopmentAreas: raw.Insights.DevelopmentAreas,
			Summary:          raw.Insights.Summary,
		},
	}
	if out.Scores == nil {
		out.Scores = Scores{}
	}
	return out, nil
}
