package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentResult stores one completed assessment for one user.
// Created exactly once per (assessment, user) pair and never updated.
type AssessmentResult struct {
	ent.Schema
}

// QuestionResponse is one serialized answer, addressed by position.
type QuestionResponse struct {
	QuestionIndex int    `json:"question_index"`
	Answer        string `json:"answer"`
}

// ResultInsights is the qualitative half of a scoring response.
type ResultInsights struct {
	PrimaryTraits    []string `json:"primary_traits"`
	Strengths        []string `json:"strengths"`
	DevelopmentAreas []string `json:"development_areas"`
	Summary          string   `json:"summary"`
}

func (AssessmentResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty(),
		field.String("user_email").
			NotEmpty(),
		field.JSON("responses", []QuestionResponse{}),
		field.JSON("scores", map[string]float64{}).
			Optional(),
		field.JSON("insights", &ResultInsights{}).
			Optional(),
		field.Int("completion_time_minutes").
			Default(0).
			Comment("Wall-clock minutes from first question shown to submit"),
		field.Time("created_at").
			Immutable(),
	}
}

func (AssessmentResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id", "user_email").Unique(),
		index.Fields("user_email"),
	}
}
