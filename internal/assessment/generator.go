package assessment

import (
	"context"
	"encoding/json"

	"github.com/adit/pathwise/internal/llm"
)

// LLMGenerator produces personalized question sets through an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider}
}

// rawQuestionSet mirrors the wire format of QuestionSetSchema.
type rawQuestionSet struct {
	Questions []struct {
		Question  string   `json:"question"`
		Options   []string `json:"options"`
		Dimension string   `json:"dimension"`
	} `json:"questions"`
}

// Generate returns a personalized question set for the assessment. It never
// fails: any generation error degrades to the single fallback question so the
// quiz stays reachable. The underlying error is recorded in the event log by
// the provider chain.
func (g *LLMGenerator) Generate(ctx context.Context, in GenerateInput) []Question {
	ctx = llm.WithPurpose(ctx, "question-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    buildQuestionPrompt(in),
		Schema:    QuestionSetSchema,
		MaxTokens: 4096,
	})
	if err != nil {
		return []Question{FallbackQuestion}
	}

	var raw rawQuestionSet
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return []Question{FallbackQuestion}
	}
	if len(raw.Questions) == 0 {
		return []Question{FallbackQuestion}
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		questions = append(questions, Question{
			Text:      q.Question,
			Options:   q.Options,
			Dimension: q.Dimension,
		})
	}
	return questions
}
