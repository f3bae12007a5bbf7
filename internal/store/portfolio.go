package store

import (
	"context"
	"fmt"

	"github.com/adit/pathwise/ent"
	"github.com/adit/pathwise/ent/portfolioitem"
)

// portfolioRepo implements PortfolioRepo backed by ent.
type portfolioRepo struct {
	client *ent.Client
}

func (r *portfolioRepo) Create(ctx context.Context, item *PortfolioItem) (*PortfolioItem, error) {
	row, err := r.client.PortfolioItem.Create().
		SetUserEmail(item.UserEmail).
		SetTitle(item.Title).
		SetDescription(item.Description).
		SetCategory(portfolioitem.Category(item.Category)).
		SetDate(item.Date).
		SetLink(item.Link).
		SetFileURL(item.FileURL).
		SetCreatedAt(item.CreatedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save portfolio item: %w", err)
	}
	return portfolioItemFromEnt(row), nil
}

func (r *portfolioRepo) ListByUser(ctx context.Context, userEmail string) ([]*PortfolioItem, error) {
	rows, err := r.client.PortfolioItem.Query().
		Where(portfolioitem.UserEmail(userEmail)).
		Order(ent.Desc(portfolioitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list portfolio items: %w", err)
	}
	out := make([]*PortfolioItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, portfolioItemFromEnt(row))
	}
	return out, nil
}

func (r *portfolioRepo) Delete(ctx context.Context, id int) error {
	err := r.client.PortfolioItem.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete portfolio item %d: %w", id, err)
	}
	return nil
}

func portfolioItemFromEnt(row *ent.PortfolioItem) *PortfolioItem {
	return &PortfolioItem{
		ID:          row.ID,
		UserEmail:   row.UserEmail,
		Title:       row.Title,
		Description: row.Description,
		Category:    string(row.Category),
		Date:        row.Date,
		Link:        row.Link,
		FileURL:     row.FileURL,
		CreatedAt:   row.CreatedAt,
	}
}
