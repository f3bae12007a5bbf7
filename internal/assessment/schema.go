package assessment

import "github.com/adit/pathwise/internal/llm"

// QuestionSetSchema is the JSON Schema for generated question sets.
var QuestionSetSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A personalized set of multiple-choice assessment questions.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in presentation order.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The scenario question shown to the user.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Selectable answers, each reflecting a different approach.",
						},
						"dimension": map[string]any{
							"type":        "string",
							"description": "The trait this question measures.",
						},
					},
					"required":             []string{"question", "options", "dimension"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	},
}

// AnalysisSchema is the JSON Schema for quiz scoring responses. The scores
// object is open-ended because dimensions vary per generated question set.
var AnalysisSchema = &llm.Schema{
	Name:        "quiz-analysis",
	Description: "Dimension scores and qualitative insights for a completed quiz.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scores": map[string]any{
				"type":                 "object",
				"description":          "Score per measured dimension, 0-100.",
				"additionalProperties": map[string]any{"type": "number"},
			},
			"insights": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"primary_traits": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"strengths": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"development_areas": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"summary": map[string]any{
						"type":        "string",
						"description": "A 2-3 sentence summary of the person's profile.",
					},
				},
			},
		},
		"required": []string{"scores", "insights"},
	},
}
