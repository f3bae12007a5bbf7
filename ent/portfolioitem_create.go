// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adit/pathwise/ent/portfolioitem"
)

// PortfolioItemCreate is the builder for creating a PortfolioItem entity.
type PortfolioItemCreate struct {
	config
	mutation *PortfolioItemMutation
	hooks    []Hook
}

// SetUserEmail sets the "user_email" field.
func (_c *PortfolioItemCreate) SetUserEmail(v string) *PortfolioItemCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PortfolioItemCreate) SetTitle(v string) *PortfolioItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PortfolioItemCreate) SetDescription(v string) *PortfolioItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PortfolioItemCreate) SetNillableDescription(v *string) *PortfolioItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *PortfolioItemCreate) SetCategory(v portfolioitem.Category) *PortfolioItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *PortfolioItemCreate) SetNillableCategory(v *portfolioitem.Category) *PortfolioItemCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *PortfolioItemCreate) SetDate(v string) *PortfolioItemCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *PortfolioItemCreate) SetNillableDate(v *string) *PortfolioItemCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetLink sets the "link" field.
func (_c *PortfolioItemCreate) SetLink(v string) *PortfolioItemCreate {
	_c.mutation.SetLink(v)
	return _c
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_c *PortfolioItemCreate) SetNillableLink(v *string) *PortfolioItemCreate {
	if v != nil {
		_c.SetLink(*v)
	}
	return _c
}

// SetFileURL sets the "file_url" field.
func (_c *PortfolioItemCreate) SetFileURL(v string) *PortfolioItemCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_c *PortfolioItemCreate) SetNillableFileURL(v *string) *PortfolioItemCreate {
	if v != nil {
		_c.SetFileURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PortfolioItemCreate) SetCreatedAt(v time.Time) *PortfolioItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the PortfolioItemMutation object of the builder.
func (_c *PortfolioItemCreate) Mutation() *PortfolioItemMutation {
	return _c.mutation
}

// Save creates the PortfolioItem in the database.
func (_c *PortfolioItemCreate) Save(ctx context.Context) (*PortfolioItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PortfolioItemCreate) SaveX(ctx context.Context) *PortfolioItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortfolioItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortfolioItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PortfolioItemCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := portfolioitem.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := portfolioitem.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Date(); !ok {
		v := portfolioitem.DefaultDate
		_c.mutation.SetDate(v)
	}
	if _, ok := _c.mutation.Link(); !ok {
		v := portfolioitem.DefaultLink
		_c.mutation.SetLink(v)
	}
	if _, ok := _c.mutation.FileURL(); !ok {
		v := portfolioitem.DefaultFileURL
		_c.mutation.SetFileURL(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PortfolioItemCreate) check() error {
	if _, ok := _c.mutation.UserEmail(); !ok {
		return &ValidationError{Name: "user_email", err: errors.New(`ent: missing required field "PortfolioItem.user_email"`)}
	}
	if v, ok := _c.mutation.UserEmail(); ok {
		if err := portfolioitem.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.user_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PortfolioItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := portfolioitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "PortfolioItem.description"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PortfolioItem.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := portfolioitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "PortfolioItem.date"`)}
	}
	if _, ok := _c.mutation.Link(); !ok {
		return &ValidationError{Name: "link", err: errors.New(`ent: missing required field "PortfolioItem.link"`)}
	}
	if _, ok := _c.mutation.FileURL(); !ok {
		return &ValidationError{Name: "file_url", err: errors.New(`ent: missing required field "PortfolioItem.file_url"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PortfolioItem.created_at"`)}
	}
	return nil
}

func (_c *PortfolioItemCreate) sqlSave(ctx context.Context) (*PortfolioItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PortfolioItemCreate) createSpec() (*PortfolioItem, *sqlgraph.CreateSpec) {
	var (
		_node = &PortfolioItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(portfolioitem.Table, sqlgraph.NewFieldSpec(portfolioitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(portfolioitem.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(portfolioitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(portfolioitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(portfolioitem.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(portfolioitem.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Link(); ok {
		_spec.SetField(portfolioitem.FieldLink, field.TypeString, value)
		_node.Link = value
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(portfolioitem.FieldFileURL, field.TypeString, value)
		_node.FileURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(portfolioitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PortfolioItemCreateBulk is the builder for creating many PortfolioItem entities in bulk.
type PortfolioItemCreateBulk struct {
	config
	err      error
	builders []*PortfolioItemCreate
}

// Save creates the PortfolioItem entities in the database.
func (_c *PortfolioItemCreateBulk) Save(ctx context.Context) ([]*PortfolioItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PortfolioItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PortfolioItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PortfolioItemCreateBulk) SaveX(ctx context.Context) []*PortfolioItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortfolioItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortfolioItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
