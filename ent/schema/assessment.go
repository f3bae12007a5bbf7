package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment is one entry in the read-only assessment catalog.
// The catalog is seeded on first open and never modified by user flows.
type Assessment struct {
	ent.Schema
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Unique().
			Comment("Stable identifier referenced by results and progress"),
		field.String("title").
			NotEmpty(),
		field.Enum("category").
			Values("personality", "strengths", "interests", "values", "learning_style", "cognitive_skills"),
		field.String("description").
			Default(""),
		field.Int("duration_minutes").
			Default(10),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
