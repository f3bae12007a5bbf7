package store

import (
	"context"
	"fmt"

	"github.com/adit/pathwise/ent"
	"github.com/adit/pathwise/ent/careerfield"
)

// careerFieldRepo implements CareerFieldRepo backed by ent.
type careerFieldRepo struct {
	client *ent.Client
}

func (r *careerFieldRepo) List(ctx context.Context) ([]*CareerField, error) {
	rows, err := r.client.CareerField.Query().
		Order(ent.Asc(careerfield.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list career fields: %w", err)
	}
	out := make([]*CareerField, 0, len(rows))
	for _, row := range rows {
		out = append(out, &CareerField{
			ID:                   row.ID,
			Title:                row.Title,
			Category:             row.Category,
			Description:          row.Description,
			RequiredStrengths:    row.RequiredStrengths,
			PersonalityMatch:     row.PersonalityMatch,
			AcademicRequirements: row.AcademicRequirements,
		})
	}
	return out, nil
}
