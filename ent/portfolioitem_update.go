// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adit/pathwise/ent/portfolioitem"
	"github.com/adit/pathwise/ent/predicate"
)

// PortfolioItemUpdate is the builder for updating PortfolioItem entities.
type PortfolioItemUpdate struct {
	config
	hooks    []Hook
	mutation *PortfolioItemMutation
}

// Where appends a list predicates to the PortfolioItemUpdate builder.
func (_u *PortfolioItemUpdate) Where(ps ...predicate.PortfolioItem) *PortfolioItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *PortfolioItemUpdate) SetUserEmail(v string) *PortfolioItemUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *PortfolioItemUpdate) SetNillableUserEmail(v *string) *PortfolioItemUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PortfolioItemUpdate) SetTitle(v string) *PortfolioItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PortfolioItemUpdate) SetNillableTitle(v *string) *PortfolioItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PortfolioItemUpdate) SetDescription(v string) *PortfolioItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PortfolioItemUpdate) SetNillableDescription(v *string) *PortfolioItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PortfolioItemUpdate) SetCategory(v portfolioitem.Category) *PortfolioItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PortfolioItemUpdate) SetNillableCategory(v *portfolioitem.Category) *PortfolioItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *PortfolioItemUpdate) SetDate(v string) *PortfolioItemUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PortfolioItemUpdate) SetNillableDate(v *string) *PortfolioItemUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetLink sets the "link" field.
func (_u *PortfolioItemUpdate) SetLink(v string) *PortfolioItemUpdate {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *PortfolioItemUpdate) SetNillableLink(v *string) *PortfolioItemUpdate {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *PortfolioItemUpdate) SetFileURL(v string) *PortfolioItemUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *PortfolioItemUpdate) SetNillableFileURL(v *string) *PortfolioItemUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// Mutation returns the PortfolioItemMutation object of the builder.
func (_u *PortfolioItemUpdate) Mutation() *PortfolioItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PortfolioItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortfolioItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PortfolioItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortfolioItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortfolioItemUpdate) check() error {
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := portfolioitem.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.user_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := portfolioitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := portfolioitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.category": %w`, err)}
		}
	}
	return nil
}

func (_u *PortfolioItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(portfolioitem.Table, portfolioitem.Columns, sqlgraph.NewFieldSpec(portfolioitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(portfolioitem.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(portfolioitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(portfolioitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(portfolioitem.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(portfolioitem.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(portfolioitem.FieldLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(portfolioitem.FieldFileURL, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{portfolioitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PortfolioItemUpdateOne is the builder for updating a single PortfolioItem entity.
type PortfolioItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PortfolioItemMutation
}

// SetUserEmail sets the "user_email" field.
func (_u *PortfolioItemUpdateOne) SetUserEmail(v string) *PortfolioItemUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *PortfolioItemUpdateOne) SetNillableUserEmail(v *string) *PortfolioItemUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PortfolioItemUpdateOne) SetTitle(v string) *PortfolioItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PortfolioItemUpdateOne) SetNillableTitle(v *string) *PortfolioItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PortfolioItemUpdateOne) SetDescription(v string) *PortfolioItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PortfolioItemUpdateOne) SetNillableDescription(v *string) *PortfolioItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PortfolioItemUpdateOne) SetCategory(v portfolioitem.Category) *PortfolioItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PortfolioItemUpdateOne) SetNillableCategory(v *portfolioitem.Category) *PortfolioItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *PortfolioItemUpdateOne) SetDate(v string) *PortfolioItemUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PortfolioItemUpdateOne) SetNillableDate(v *string) *PortfolioItemUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetLink sets the "link" field.
func (_u *PortfolioItemUpdateOne) SetLink(v string) *PortfolioItemUpdateOne {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *PortfolioItemUpdateOne) SetNillableLink(v *string) *PortfolioItemUpdateOne {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *PortfolioItemUpdateOne) SetFileURL(v string) *PortfolioItemUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *PortfolioItemUpdateOne) SetNillableFileURL(v *string) *PortfolioItemUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// Mutation returns the PortfolioItemMutation object of the builder.
func (_u *PortfolioItemUpdateOne) Mutation() *PortfolioItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the PortfolioItemUpdate builder.
func (_u *PortfolioItemUpdateOne) Where(ps ...predicate.PortfolioItem) *PortfolioItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PortfolioItemUpdateOne) Select(field string, fields ...string) *PortfolioItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PortfolioItem entity.
func (_u *PortfolioItemUpdateOne) Save(ctx context.Context) (*PortfolioItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortfolioItemUpdateOne) SaveX(ctx context.Context) *PortfolioItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PortfolioItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortfolioItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortfolioItemUpdateOne) check() error {
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := portfolioitem.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.user_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := portfolioitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := portfolioitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PortfolioItem.category": %w`, err)}
		}
	}
	return nil
}

func (_u *PortfolioItemUpdateOne) sqlSave(ctx context.Context) (_node *PortfolioItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(portfolioitem.Table, portfolioitem.Columns, sqlgraph.NewFieldSpec(portfolioitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PortfolioItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, portfolioitem.FieldID)
		for _, f := range fields {
			if !portfolioitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != portfolioitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(portfolioitem.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(portfolioitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(portfolioitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(portfolioitem.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(portfolioitem.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(portfolioitem.FieldLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(portfolioitem.FieldFileURL, field.TypeString, value)
	}
	_node = &PortfolioItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{portfolioitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
