package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CareerField is one entry in the read-only career catalog used to ground
// recommendation prompts.
type CareerField struct {
	ent.Schema
}

// AcademicRequirements describes the typical entry bar for a field.
type AcademicRequirements struct {
	MinimumEducation  string   `json:"minimum_education,omitempty"`
	PreferredSubjects []string `json:"preferred_subjects,omitempty"`
}

func (CareerField) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			Unique(),
		field.String("category").
			Default(""),
		field.String("description").
			Default(""),
		field.JSON("required_strengths", []string{}).
			Optional(),
		field.JSON("personality_match", []string{}).
			Optional(),
		field.JSON("academic_requirements", &AcademicRequirements{}).
			Optional(),
	}
}
