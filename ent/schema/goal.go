package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal is a user-owned goal, created by hand or adopted from an AI suggestion.
type Goal struct {
	ent.Schema
}

func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_email").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Enum("category").
			Values("academic", "skill_development", "personal_growth", "career").
			Default("personal_growth"),
		field.String("due_date").
			Default("").
			Comment("ISO date string; empty when no deadline is set"),
		field.Enum("status").
			Values("in_progress", "completed").
			Default("in_progress"),
		field.Time("created_at").
			Immutable(),
	}
}

func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_email"),
		index.Fields("status"),
	}
}
