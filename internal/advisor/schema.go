package advisor

import "github.com/adit/pathwise/internal/llm"

// RecommendationSchema is the JSON Schema for career recommendation sets.
var RecommendationSchema = &llm.Schema{
	Name:        "career-recommendations",
	Description: "Ranked career field recommendations matched to an assessment profile.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field": map[string]any{
							"type":        "string",
							"description": "Career field name.",
						},
						"match_percentage": map[string]any{
							"type":        "number",
							"description": "How well the field matches the profile, 0-100.",
						},
						"reasoning": map[string]any{
							"type":        "string",
							"description": "Why this career matches the user's profile.",
						},
						"key_alignments": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"growth_potential": map[string]any{
							"type":        "string",
							"description": "High, Medium or Low.",
						},
						"next_steps": map[string]any{
							"type":        "string",
							"description": "Specific actionable advice.",
						},
					},
					"required": []string{
						"field", "match_percentage", "reasoning",
						"key_alignments", "growth_potential", "next_steps",
					},
				},
			},
		},
		"required": []string{"recommendations"},
	},
}

// RoadmapSchema is the JSON Schema for skill roadmaps.
var RoadmapSchema = &llm.Schema{
	Name:        "skill-roadmap",
	Description: "Skills and experiences to gain for a target career field.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"technical_skills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"soft_skills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"key_experiences": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"technical_skills", "soft_skills", "key_experiences"},
	},
}
