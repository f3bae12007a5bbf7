package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PortfolioItem is a user-owned portfolio entry, optionally backed by an
// uploaded file.
type PortfolioItem struct {
	ent.Schema
}

func (PortfolioItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_email").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Enum("category").
			Values("project", "achievement", "experience", "skill").
			Default("project"),
		field.String("date").
			Default(""),
		field.String("link").
			Default(""),
		field.String("file_url").
			Default("").
			Comment("URL returned by the upload boundary; empty when nothing was attached"),
		field.Time("created_at").
			Immutable(),
	}
}

func (PortfolioItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_email"),
	}
}
