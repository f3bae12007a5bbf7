// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/adit/pathwise/ent/assessmentresult"
	"github.com/adit/pathwise/ent/predicate"
	"github.com/adit/pathwise/ent/schema"
)

// AssessmentResultUpdate is the builder for updating AssessmentResult entities.
type AssessmentResultUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentResultMutation
}

// Where appends a list predicates to the AssessmentResultUpdate builder.
func (_u *AssessmentResultUpdate) Where(ps ...predicate.AssessmentResult) *AssessmentResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentResultUpdate) SetAssessmentID(v string) *AssessmentResultUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableAssessmentID(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *AssessmentResultUpdate) SetUserEmail(v string) *AssessmentResultUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableUserEmail(v *string) *AssessmentResultUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetResponses sets the "responses" field.
func (_u *AssessmentResultUpdate) SetResponses(v []schema.QuestionResponse) *AssessmentResultUpdate {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *AssessmentResultUpdate) AppendResponses(v []schema.QuestionResponse) *AssessmentResultUpdate {
	_u.mutation.AppendResponses(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *AssessmentResultUpdate) SetScores(v map[string]float64) *AssessmentResultUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *AssessmentResultUpdate) ClearScores() *AssessmentResultUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetInsights sets the "insights" field.
func (_u *AssessmentResultUpdate) SetInsights(v *schema.ResultInsights) *AssessmentResultUpdate {
	_u.mutation.SetInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *AssessmentResultUpdate) ClearInsights() *AssessmentResultUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// SetCompletionTimeMinutes sets the "completion_time_minutes" field.
func (_u *AssessmentResultUpdate) SetCompletionTimeMinutes(v int) *AssessmentResultUpdate {
	_u.mutation.ResetCompletionTimeMinutes()
	_u.mutation.SetCompletionTimeMinutes(v)
	return _u
}

// SetNillableCompletionTimeMinutes sets the "completion_time_minutes" field if the given value is not nil.
func (_u *AssessmentResultUpdate) SetNillableCompletionTimeMinutes(v *int) *AssessmentResultUpdate {
	if v != nil {
		_u.SetCompletionTimeMinutes(*v)
	}
	return _u
}

// AddCompletionTimeMinutes adds value to the "completion_time_minutes" field.
func (_u *AssessmentResultUpdate) AddCompletionTimeMinutes(v int) *AssessmentResultUpdate {
	_u.mutation.AddCompletionTimeMinutes(v)
	return _u
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_u *AssessmentResultUpdate) Mutation() *AssessmentResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResultUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentresult.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := assessmentresult.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.user_email": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresult.Table, assessmentresult.Columns, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentresult.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(assessmentresult.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(assessmentresult.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentresult.FieldResponses, value)
		})
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(assessmentresult.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(assessmentresult.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(assessmentresult.FieldInsights, field.TypeJSON, value)
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(assessmentresult.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletionTimeMinutes(); ok {
		_spec.SetField(assessmentresult.FieldCompletionTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTimeMinutes(); ok {
		_spec.AddField(assessmentresult.FieldCompletionTimeMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentResultUpdateOne is the builder for updating a single AssessmentResult entity.
type AssessmentResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentResultMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentResultUpdateOne) SetAssessmentID(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableAssessmentID(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *AssessmentResultUpdateOne) SetUserEmail(v string) *AssessmentResultUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableUserEmail(v *string) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetResponses sets the "responses" field.
func (_u *AssessmentResultUpdateOne) SetResponses(v []schema.QuestionResponse) *AssessmentResultUpdateOne {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *AssessmentResultUpdateOne) AppendResponses(v []schema.QuestionResponse) *AssessmentResultUpdateOne {
	_u.mutation.AppendResponses(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *AssessmentResultUpdateOne) SetScores(v map[string]float64) *AssessmentResultUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *AssessmentResultUpdateOne) ClearScores() *AssessmentResultUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetInsights sets the "insights" field.
func (_u *AssessmentResultUpdateOne) SetInsights(v *schema.ResultInsights) *AssessmentResultUpdateOne {
	_u.mutation.SetInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *AssessmentResultUpdateOne) ClearInsights() *AssessmentResultUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// SetCompletionTimeMinutes sets the "completion_time_minutes" field.
func (_u *AssessmentResultUpdateOne) SetCompletionTimeMinutes(v int) *AssessmentResultUpdateOne {
	_u.mutation.ResetCompletionTimeMinutes()
	_u.mutation.SetCompletionTimeMinutes(v)
	return _u
}

// SetNillableCompletionTimeMinutes sets the "completion_time_minutes" field if the given value is not nil.
func (_u *AssessmentResultUpdateOne) SetNillableCompletionTimeMinutes(v *int) *AssessmentResultUpdateOne {
	if v != nil {
		_u.SetCompletionTimeMinutes(*v)
	}
	return _u
}

// AddCompletionTimeMinutes adds value to the "completion_time_minutes" field.
func (_u *AssessmentResultUpdateOne) AddCompletionTimeMinutes(v int) *AssessmentResultUpdateOne {
	_u.mutation.AddCompletionTimeMinutes(v)
	return _u
}

// Mutation returns the AssessmentResultMutation object of the builder.
func (_u *AssessmentResultUpdateOne) Mutation() *AssessmentResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentResultUpdate builder.
func (_u *AssessmentResultUpdateOne) Where(ps ...predicate.AssessmentResult) *AssessmentResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentResultUpdateOne) Select(field string, fields ...string) *AssessmentResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentResult entity.
func (_u *AssessmentResultUpdateOne) Save(ctx context.Context) (*AssessmentResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResultUpdateOne) SaveX(ctx context.Context) *AssessmentResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResultUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentresult.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := assessmentresult.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "AssessmentResult.user_email": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResultUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresult.Table, assessmentresult.Columns, sqlgraph.NewFieldSpec(assessmentresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentresult.FieldID)
		for _, f := range fields {
			if !assessmentresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentresult.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentresult.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(assessmentresult.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(assessmentresult.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentresult.FieldResponses, value)
		})
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(assessmentresult.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(assessmentresult.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(assessmentresult.FieldInsights, field.TypeJSON, value)
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(assessmentresult.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletionTimeMinutes(); ok {
		_spec.SetField(assessmentresult.FieldCompletionTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTimeMinutes(); ok {
		_spec.AddField(assessmentresult.FieldCompletionTimeMinutes, field.TypeInt, value)
	}
	_node = &AssessmentResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
