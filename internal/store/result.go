package store

import (
	"context"
	"fmt"

	"github.com/adit/pathwise/ent"
	"github.com/adit/pathwise/ent/assessmentresult"
)

// resultRepo implements ResultRepo backed by ent.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Create(ctx context.Context, res *Result) (*Result, error) {
	create := r.client.AssessmentResult.Create().
		SetAssessmentID(res.AssessmentID).
		SetUserEmail(res.UserEmail).
		SetResponses(res.Responses).
		SetCompletionTimeMinutes(res.CompletionTimeMinutes).
		SetCreatedAt(res.CreatedAt)
	if res.Scores != nil {
		create.SetScores(res.Scores)
	}
	if res.Insights != nil {
		create.SetInsights(res.Insights)
	}

	row, err := create.Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, ErrDuplicateResult
	}
	if err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	return resultFromEnt(row), nil
}

func (r *resultRepo) Get(ctx context.Context, assessmentID, userEmail string) (*Result, error) {
	row, err := r.client.AssessmentResult.Query().
		Where(
			assessmentresult.AssessmentID(assessmentID),
			assessmentresult.UserEmail(userEmail),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	return resultFromEnt(row), nil
}

func (r *resultRepo) ListByUser(ctx context.Context, userEmail string) ([]*Result, error) {
	rows, err := r.client.AssessmentResult.Query().
		Where(assessmentresult.UserEmail(userEmail)).
		Order(ent.Desc(assessmentresult.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	out := make([]*Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, resultFromEnt(row))
	}
	return out, nil
}

func (r *resultRepo) CountByUser(ctx context.Context, userEmail string) (int, error) {
	n, err := r.client.AssessmentResult.Query().
		Where(assessmentresult.UserEmail(userEmail)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

func resultFromEnt(row *ent.AssessmentResult) *Result {
	return &Result{
		ID:                    row.ID,
		AssessmentID:          row.AssessmentID,
		UserEmail:             row.UserEmail,
		Responses:             row.Responses,
		Scores:                row.Scores,
		Insights:              row.Insights,
		CompletionTimeMinutes: row.CompletionTimeMinutes,
		CreatedAt:             row.CreatedAt,
	}
}
