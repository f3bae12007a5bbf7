package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/adit/pathwise/internal/llm"
)

func TestGenerateMapsQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"questions": [
				{"question": "At a party, you usually...", "options": ["Mingle", "Find one person", "Observe", "Leave early"], "dimension": "extroversion"},
				{"question": "Before a deadline, you...", "options": ["Plan ahead", "Sprint late", "Delegate", "Negotiate more time"], "dimension": "conscientiousness"}
			]
		}`),
	})
	gen := NewLLMGenerator(mock)

	questions := gen.Generate(context.Background(), GenerateInput{
		Definition: Definition{ID: "personality", Category: "personality"},
		Age:        20,
	})

	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Text != "At a party, you usually..." {
		t.Errorf("text = %q", questions[0].Text)
	}
	if questions[1].Dimension != "conscientiousness" {
		t.Errorf("dimension = %q", questions[1].Dimension)
	}
	if len(questions[0].Options) != 4 {
		t.Errorf("options = %d, want 4", len(questions[0].Options))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuestionSetSchema {
		t.Error("request did not carry the question set schema")
	}
	if req.System == "" {
		t.Error("request missing system prompt")
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	gen := NewLLMGenerator(mock)

	questions := gen.Generate(context.Background(), GenerateInput{
		Definition: Definition{ID: "values", Category: "values"},
	})

	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1 fallback", len(questions))
	}
	if questions[0].Dimension != "fallback" {
		t.Errorf("dimension = %q, want fallback", questions[0].Dimension)
	}
	if len(questions[0].Options) != 1 || questions[0].Options[0] != "Ok" {
		t.Errorf("options = %v", questions[0].Options)
	}
}

func TestGenerateFallsBackOnEmptySet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	gen := NewLLMGenerator(mock)

	questions := gen.Generate(context.Background(), GenerateInput{
		Definition: Definition{ID: "interests", Category: "interests"},
	})

	if len(questions) != 1 || questions[0].Dimension != "fallback" {
		t.Errorf("expected single fallback question, got %+v", questions)
	}
}

func TestGenerateFallsBackOnMalformedContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"just a string"`),
	})
	gen := NewLLMGenerator(mock)

	questions := gen.Generate(context.Background(), GenerateInput{
		Definition: Definition{ID: "strengths", Category: "strengths"},
	})

	if len(questions) != 1 || questions[0].Dimension != "fallback" {
		t.Errorf("expected single fallback question, got %+v", questions)
	}
}
