package store

import (
	"context"
	"fmt"

	"github.com/adit/pathwise/ent"
	"github.com/adit/pathwise/ent/goal"
)

// goalRepo implements GoalRepo backed by ent.
type goalRepo struct {
	client *ent.Client
}

func (r *goalRepo) Create(ctx context.Context, g *Goal) (*Goal, error) {
	row, err := r.client.Goal.Create().
		SetUserEmail(g.UserEmail).
		SetTitle(g.Title).
		SetDescription(g.Description).
		SetCategory(goal.Category(g.Category)).
		SetDueDate(g.DueDate).
		SetStatus(goal.Status(g.Status)).
		SetCreatedAt(g.CreatedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save goal: %w", err)
	}
	return goalFromEnt(row), nil
}

func (r *goalRepo) ListByUser(ctx context.Context, userEmail string) ([]*Goal, error) {
	rows, err := r.client.Goal.Query().
		Where(goal.UserEmail(userEmail)).
		Order(ent.Desc(goal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	out := make([]*Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromEnt(row))
	}
	return out, nil
}

func (r *goalRepo) SetStatus(ctx context.Context, id int, status string) error {
	err := r.client.Goal.UpdateOneID(id).
		SetStatus(goal.Status(status)).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update goal %d: %w", id, err)
	}
	return nil
}

func (r *goalRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Goal.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete goal %d: %w", id, err)
	}
	return nil
}

func goalFromEnt(row *ent.Goal) *Goal {
	return &Goal{
		ID:          row.ID,
		UserEmail:   row.UserEmail,
		Title:       row.Title,
		Description: row.Description,
		Category:    string(row.Category),
		DueDate:     row.DueDate,
		Status:      string(row.Status),
		CreatedAt:   row.CreatedAt,
	}
}
