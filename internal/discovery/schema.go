package discovery

import "github.com/adit/pathwise/internal/llm"

// MentorSchema is the JSON Schema for mentor search results.
var MentorSchema = &llm.Schema{
	Name:        "mentor-search",
	Description: "Publicly available mentors matching the search criteria.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mentors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":             map[string]any{"type": "string"},
						"title":            map[string]any{"type": "string"},
						"company":          map[string]any{"type": "string"},
						"experience_years": map[string]any{"type": "string"},
						"specialization":   map[string]any{"type": "string"},
						"bio":              map[string]any{"type": "string"},
						"platform":         map[string]any{"type": "string"},
						"profile_url":      map[string]any{"type": "string"},
						"skills": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"mentoring_focus": map[string]any{"type": "string"},
						"availability":    map[string]any{"type": "string"},
						"cost":            map[string]any{"type": "string"},
					},
					"required": []string{"name", "title", "platform"},
				},
			},
		},
		"required": []string{"mentors"},
	},
}

// JobSchema is the JSON Schema for job search results.
var JobSchema = &llm.Schema{
	Name:        "job-search",
	Description: "Current job listings matching the search criteria.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"jobs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":               map[string]any{"type": "string"},
						"company":             map[string]any{"type": "string"},
						"location":            map[string]any{"type": "string"},
						"summary":             map[string]any{"type": "string"},
						"salary_range":        map[string]any{"type": "string"},
						"experience_required": map[string]any{"type": "string"},
						"link":                map[string]any{"type": "string"},
					},
					"required": []string{"title", "company", "location", "link"},
				},
			},
		},
		"required": []string{"jobs"},
	},
}

// UniversitySchema is the JSON Schema for university search results.
var UniversitySchema = &llm.Schema{
	Name:        "university-search",
	Description: "Universities matching the search criteria.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"universities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":               map[string]any{"type": "string"},
						"location":           map[string]any{"type": "string"},
						"description":        map[string]any{"type": "string"},
						"tuition_cost":       map[string]any{"type": "string"},
						"website":            map[string]any{"type": "string"},
						"program_highlights": map[string]any{"type": "string"},
					},
					"required": []string{"name", "location", "description", "website"},
				},
			},
		},
		"required": []string{"universities"},
	},
}

// TrendsSchema is the JSON Schema for market trend summaries.
var TrendsSchema = &llm.Schema{
	Name:        "market-trends",
	Description: "Growing and declining job market fields with reasons.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"growing_fields": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field":  map[string]any{"type": "string"},
						"reason": map[string]any{"type": "string"},
					},
				},
			},
			"declining_fields": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field":  map[string]any{"type": "string"},
						"reason": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

// ConversionSchema is the JSON Schema for currency conversions.
var ConversionSchema = &llm.Schema{
	Name:        "currency-conversion",
	Description: "A currency conversion at current exchange rates.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"converted_amount": map[string]any{"type": "number"},
			"exchange_rate":    map[string]any{"type": "number"},
			"from_currency":    map[string]any{"type": "string"},
			"to_currency":      map[string]any{"type": "string"},
			"original_amount":  map[string]any{"type": "number"},
		},
		"required": []string{"converted_amount", "exchange_rate", "from_currency", "to_currency", "original_amount"},
	},
}
