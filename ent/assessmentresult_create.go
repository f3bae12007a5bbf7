// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adit/pathwise/ent/assessmentresult"
	"github.com/adit/pathwise/ent/schema"
)

// AssessmentResultCreate is the builder for creating a AssessmentResult entity.
type AssessmentResultCreate struct {
	config
	mutation *AssessmentResultMutation
	hooks    []Hook
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentResultCreate) SetAssessmentID(v string) *AssessmentResultCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetUserEmail sets the "user_email" field.
func (_c *AssessmentResultCreate) SetUserEmail(v string) *AssessmentResultCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetResponses sets the "responses" field.
func (_c *AssessmentResultCreate) SetResponses(v []schema.QuestionResponse) *AssessmentResultCreate {
	_c.mutation.SetResponses(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *AssessmentResultCreate) SetScores(v map[string]float64) *AssessmentResultCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetInsights sets the "insights" field.
func (_c *AssessmentResultCreate) SetInsights(v *schema.ResultInsights) *AssessmentResultCreate {
	_c.mutation.SetInsights(v)
	return _c
}

// SetCompletionTimeMinutes sets the "completion_time_minutes" field.
func (_c *AssessmentResultCreate) SetCompletionTimeMinutes(v int) *AssessmentResultCreate {
	_c.mutation.SetCompletionTimeMinutes(v)
	return _c
}

// SetNillableCompletionTimeMinutes sets the "completion_time_minutes" field if the given value is not nil.
func (_c *AssessmentResultCreate) SetNillableCompletionTimeMinutes(v *int) *AssessmentResultCreate {
	if v != nil {
		_c.SetCompletionTimeMinutes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentResultCreate) SetCreatedAt(v time.Time) *AssessmentResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_c *AssessmentResultCreate) Mutation() *AssessmentResultMutation {
	return _c.mutation
}

// Save creates the AssessmentResult in the database.
func (_c *AssessmentResultCreate) Save(ctx context.Context) (*AssessmentResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentResultCreate) SaveX(ctx context.Context) *AssessmentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentResultCreate) defaults() {
	if _, ok := _c.mutation.CompletionTimeMinutes(); !ok {
		v := assessmentresult.DefaultCompletionTimeMinutes
		_c.mutation.SetCompletionTimeMinutes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentResultCreate) check() error {
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "AssessmentResult.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := assessmentresult.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserEmail(); !ok {
		return &ValidationError{Name: "user_email", err: errors.New(`ent: missing required field "AssessmentResult.user_email"`)}
	}
	if v, ok := _c.mutation.UserEmail(); ok {
		if err := assessmentresult.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.user_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Responses(); !ok {
		return &ValidationError{Name: "responses", err: errors.New(`ent: missing required field "AssessmentResult.responses"`)}
	}
	if _, ok := _c.mutation.CompletionTimeMinutes(); !ok {
		return &ValidationError{Name: "completion_time_minutes", err: errors.New(`ent: missing required field "AssessmentResult.completion_time_minutes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssessmentResult.created_at"`)}
	}
	return nil
}

func (_c *AssessmentResultCreate) sqlSave(ctx context.Context) (*AssessmentResult, error) {
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

func (_c *AssessmentResultCreate) createSpec() (*AssessmentResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentresult.Table, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentresult.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(assessmentresult.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	if value, ok := _c.mutation.Responses(); ok {
		_spec.SetField(assessmentresult.FieldResponses, field.TypeJSON, value)
		_node.Responses = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(assessmentresult.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.Insights(); ok {
		_spec.SetField(assessmentresult.FieldInsights, field.TypeJSON, value)
		_node.Insights = value
	}
	if value, ok := _c.mutation.CompletionTimeMinutes(); ok {
		_spec.SetField(assessmentresult.FieldCompletionTimeMinutes, field.TypeInt, value)
		_node.CompletionTimeMinutes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessmentresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AssessmentResultCreateBulk is the builder for creating many AssessmentResult entities in bulk.
type AssessmentResultCreateBulk struct {
	config
	err      error
	builders []*AssessmentResultCreate
}

// Save creates the AssessmentResult entities in the database.
func (_c *AssessmentResultCreateBulk) Save(ctx context.Context) ([]*AssessmentResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentResultMutation)
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
func (_c *AssessmentResultCreateBulk) SaveX(ctx context.Context) []*AssessmentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
