// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adit/pathwise/ent/careerfield"
	"github.com/adit/pathwise/ent/schema"
)

// CareerFieldCreate is the builder for creating a CareerField entity.
type CareerFieldCreate struct {
	config
	mutation *CareerFieldMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *CareerFieldCreate) SetTitle(v string) *CareerFieldCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CareerFieldCreate) SetCategory(v string) *CareerFieldCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *CareerFieldCreate) SetNillableCategory(v *string) *CareerFieldCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CareerFieldCreate) SetDescription(v string) *CareerFieldCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CareerFieldCreate) SetNillableDescription(v *string) *CareerFieldCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequiredStrengths sets the "required_strengths" field.
func (_c *CareerFieldCreate) SetRequiredStrengths(v []string) *CareerFieldCreate {
	_c.mutation.SetRequiredStrengths(v)
	return _c
}

// SetPersonalityMatch sets the "personality_match" field.
func (_c *CareerFieldCreate) SetPersonalityMatch(v []string) *CareerFieldCreate {
	_c.mutation.SetPersonalityMatch(v)
	return _c
}

// SetAcademicRequirements sets the "academic_requirements" field.
func (_c *CareerFieldCreate) SetAcademicRequirements(v *schema.AcademicRequirements) *CareerFieldCreate {
	_c.mutation.SetAcademicRequirements(v)
	return _c
}

// Mutation returns the CareerFieldMutation object of the builder.
func (_c *CareerFieldCreate) Mutation() *CareerFieldMutation {
	return _c.mutation
}

// Save creates the CareerField in the database.
func (_c *CareerFieldCreate) Save(ctx context.Context) (*CareerField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CareerFieldCreate) SaveX(ctx context.Context) *CareerField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CareerFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CareerFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CareerFieldCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := careerfield.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := careerfield.DefaultDescription
		_c.mutation.SetDescription(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CareerFieldCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CareerField.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := careerfield.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CareerField.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CareerField.category"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "CareerField.description"`)}
	}
	return nil
}

func (_c *CareerFieldCreate) sqlSave(ctx context.Context) (*CareerField, error) {
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

func (_c *CareerFieldCreate) createSpec() (*CareerField, *sqlgraph.CreateSpec) {
	var (
		_node = &CareerField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(careerfield.Table, sqlgraph.NewFieldSpec(careerfield.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(careerfield.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(careerfield.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(careerfield.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.RequiredStrengths(); ok {
		_spec.SetField(careerfield.FieldRequiredStrengths, field.TypeJSON, value)
		_node.RequiredStrengths = value
	}
	if value, ok := _c.mutation.PersonalityMatch(); ok {
		_spec.SetField(careerfield.FieldPersonalityMatch, field.TypeJSON, value)
		_node.PersonalityMatch = value
	}
	if value, ok := _c.mutation.AcademicRequirements(); ok {
		_spec.SetField(careerfield.FieldAcademicRequirements, field.TypeJSON, value)
		_node.AcademicRequirements = value
	}
	return _node, _spec
}

// CareerFieldCreateBulk is the builder for creating many CareerField entities in bulk.
type CareerFieldCreateBulk struct {
	config
	err      error
	builders []*CareerFieldCreate
}

// Save creates the CareerField entities in the database.
func (_c *CareerFieldCreateBulk) Save(ctx context.Context) ([]*CareerField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CareerField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CareerFieldMutation)
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
func (_c *CareerFieldCreateBulk) SaveX(ctx context.Context) []*CareerField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CareerFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CareerFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
