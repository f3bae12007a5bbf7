package store

import (
	"context"
	"fmt"

	"github.com/adit/pathwise/ent"
	"github.com/adit/pathwise/ent/assessment"
)

// assessmentRepo implements AssessmentRepo backed by ent.
type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) List(ctx context.Context) ([]*Assessment, error) {
	rows, err := r.client.Assessment.Query().
		Order(ent.Asc(assessment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	out := make([]*Assessment, 0, len(rows))
	for _, row := range rows {
		out = append(out, assessmentFromEnt(row))
	}
	return out, nil
}

func (r *assessmentRepo) Get(ctx context.Context, assessmentID string) (*Assessment, error) {
	row, err := r.client.Assessment.Query().
		Where(assessment.AssessmentID(assessmentID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment %s: %w", assessmentID, err)
	}
	return assessmentFromEnt(row), nil
}

func (r *assessmentRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Assessment.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}

func assessmentFromEnt(row *ent.Assessment) *Assessment {
	return &Assessment{
		ID:              row.ID,
		AssessmentID:    row.AssessmentID,
		Title:           row.Title,
		Category:        string(row.Category),
		Description:     row.Description,
		DurationMinutes: row.DurationMinutes,
	}
}
