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
	"github.com/adit/pathwise/ent/careerfield"
	"github.com/adit/pathwise/ent/predicate"
	"github.com/adit/pathwise/ent/schema"
)

// CareerFieldUpdate is the builder for updating CareerField entities.
type CareerFieldUpdate struct {
	config
	hooks    []Hook
	mutation *CareerFieldMutation
}

// Where appends a list predicates to the CareerFieldUpdate builder.
func (_u *CareerFieldUpdate) Where(ps ...predicate.CareerField) *CareerFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CareerFieldUpdate) SetTitle(v string) *CareerFieldUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CareerFieldUpdate) SetNillableTitle(v *string) *CareerFieldUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CareerFieldUpdate) SetCategory(v string) *CareerFieldUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CareerFieldUpdate) SetNillableCategory(v *string) *CareerFieldUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CareerFieldUpdate) SetDescription(v string) *CareerFieldUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CareerFieldUpdate) SetNillableDescription(v *string) *CareerFieldUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequiredStrengths sets the "required_strengths" field.
func (_u *CareerFieldUpdate) SetRequiredStrengths(v []string) *CareerFieldUpdate {
	_u.mutation.SetRequiredStrengths(v)
	return _u
}

// AppendRequiredStrengths appends value to the "required_strengths" field.
func (_u *CareerFieldUpdate) AppendRequiredStrengths(v []string) *CareerFieldUpdate {
	_u.mutation.AppendRequiredStrengths(v)
	return _u
}

// ClearRequiredStrengths clears the value of the "required_strengths" field.
func (_u *CareerFieldUpdate) ClearRequiredStrengths() *CareerFieldUpdate {
	_u.mutation.ClearRequiredStrengths()
	return _u
}

// SetPersonalityMatch sets the "personality_match" field.
func (_u *CareerFieldUpdate) SetPersonalityMatch(v []string) *CareerFieldUpdate {
	_u.mutation.SetPersonalityMatch(v)
	return _u
}

// AppendPersonalityMatch appends value to the "personality_match" field.
func (_u *CareerFieldUpdate) AppendPersonalityMatch(v []string) *CareerFieldUpdate {
	_u.mutation.AppendPersonalityMatch(v)
	return _u
}

// ClearPersonalityMatch clears the value of the "personality_match" field.
func (_u *CareerFieldUpdate) ClearPersonalityMatch() *CareerFieldUpdate {
	_u.mutation.ClearPersonalityMatch()
	return _u
}

// SetAcademicRequirements sets the "academic_requirements" field.
func (_u *CareerFieldUpdate) SetAcademicRequirements(v *schema.AcademicRequirements) *CareerFieldUpdate {
	_u.mutation.SetAcademicRequirements(v)
	return _u
}

// ClearAcademicRequirements clears the value of the "academic_requirements" field.
func (_u *CareerFieldUpdate) ClearAcademicRequirements() *CareerFieldUpdate {
	_u.mutation.ClearAcademicRequirements()
	return _u
}

// Mutation returns the CareerFieldMutation object of the builder.
func (_u *CareerFieldUpdate) Mutation() *CareerFieldMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CareerFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CareerFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CareerFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CareerFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CareerFieldUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := careerfield.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CareerField.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CareerFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(careerfield.Table, careerfield.Columns, sqlgraph.NewFieldSpec(careerfield.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(careerfield.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(careerfield.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(careerfield.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredStrengths(); ok {
		_spec.SetField(careerfield.FieldRequiredStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careerfield.FieldRequiredStrengths, value)
		})
	}
	if _u.mutation.RequiredStrengthsCleared() {
		_spec.ClearField(careerfield.FieldRequiredStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.PersonalityMatch(); ok {
		_spec.SetField(careerfield.FieldPersonalityMatch, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPersonalityMatch(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careerfield.FieldPersonalityMatch, value)
		})
	}
	if _u.mutation.PersonalityMatchCleared() {
		_spec.ClearField(careerfield.FieldPersonalityMatch, field.TypeJSON)
	}
	if value, ok := _u.mutation.AcademicRequirements(); ok {
		_spec.SetField(careerfield.FieldAcademicRequirements, field.TypeJSON, value)
	}
	if _u.mutation.AcademicRequirementsCleared() {
		_spec.ClearField(careerfield.FieldAcademicRequirements, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{careerfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CareerFieldUpdateOne is the builder for updating a single CareerField entity.
type CareerFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CareerFieldMutation
}

// SetTitle sets the "title" field.
func (_u *CareerFieldUpdateOne) SetTitle(v string) *CareerFieldUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CareerFieldUpdateOne) SetNillableTitle(v *string) *CareerFieldUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CareerFieldUpdateOne) SetCategory(v string) *CareerFieldUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CareerFieldUpdateOne) SetNillableCategory(v *string) *CareerFieldUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CareerFieldUpdateOne) SetDescription(v string) *CareerFieldUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CareerFieldUpdateOne) SetNillableDescription(v *string) *CareerFieldUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequiredStrengths sets the "required_strengths" field.
func (_u *CareerFieldUpdateOne) SetRequiredStrengths(v []string) *CareerFieldUpdateOne {
	_u.mutation.SetRequiredStrengths(v)
	return _u
}

// AppendRequiredStrengths appends value to the "required_strengths" field.
func (_u *CareerFieldUpdateOne) AppendRequiredStrengths(v []string) *CareerFieldUpdateOne {
	_u.mutation.AppendRequiredStrengths(v)
	return _u
}

// ClearRequiredStrengths clears the value of the "required_strengths" field.
func (_u *CareerFieldUpdateOne) ClearRequiredStrengths() *CareerFieldUpdateOne {
	_u.mutation.ClearRequiredStrengths()
	return _u
}

// SetPersonalityMatch sets the "personality_match" field.
func (_u *CareerFieldUpdateOne) SetPersonalityMatch(v []string) *CareerFieldUpdateOne {
	_u.mutation.SetPersonalityMatch(v)
	return _u
}

// AppendPersonalityMatch appends value to the "personality_match" field.
func (_u *CareerFieldUpdateOne) AppendPersonalityMatch(v []string) *CareerFieldUpdateOne {
	_u.mutation.AppendPersonalityMatch(v)
	return _u
}

// ClearPersonalityMatch clears the value of the "personality_match" field.
func (_u *CareerFieldUpdateOne) ClearPersonalityMatch() *CareerFieldUpdateOne {
	_u.mutation.ClearPersonalityMatch()
	return _u
}

// SetAcademicRequirements sets the "academic_requirements" field.
func (_u *CareerFieldUpdateOne) SetAcademicRequirements(v *schema.AcademicRequirements) *CareerFieldUpdateOne {
	_u.mutation.SetAcademicRequirements(v)
	return _u
}

// ClearAcademicRequirements clears the value of the "academic_requirements" field.
func (_u *CareerFieldUpdateOne) ClearAcademicRequirements() *CareerFieldUpdateOne {
	_u.mutation.ClearAcademicRequirements()
	return _u
}

// Mutation returns the CareerFieldMutation object of the builder.
func (_u *CareerFieldUpdateOne) Mutation() *CareerFieldMutation {
	return _u.mutation
}

// Where appends a list predicates to the CareerFieldUpdate builder.
func (_u *CareerFieldUpdateOne) Where(ps ...predicate.CareerField) *CareerFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CareerFieldUpdateOne) Select(field string, fields ...string) *CareerFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CareerField entity.
func (_u *CareerFieldUpdateOne) Save(ctx context.Context) (*CareerField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CareerFieldUpdateOne) SaveX(ctx context.Context) *CareerField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CareerFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CareerFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CareerFieldUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := careerfield.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CareerField.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CareerFieldUpdateOne) sqlSave(ctx context.Context) (_node *CareerField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(careerfield.Table, careerfield.Columns, sqlgraph.NewFieldSpec(careerfield.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CareerField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, careerfield.FieldID)
		for _, f := range fields {
			if !careerfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != careerfield.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(careerfield.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(careerfield.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(careerfield.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredStrengths(); ok {
		_spec.SetField(careerfield.FieldRequiredStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careerfield.FieldRequiredStrengths, value)
		})
	}
	if _u.mutation.RequiredStrengthsCleared() {
		_spec.ClearField(careerfield.FieldRequiredStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.PersonalityMatch(); ok {
		_spec.SetField(careerfield.FieldPersonalityMatch, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPersonalityMatch(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careerfield.FieldPersonalityMatch, value)
		})
	}
	if _u.mutation.PersonalityMatchCleared() {
		_spec.ClearField(careerfield.FieldPersonalityMatch, field.TypeJSON)
	}
	if value, ok := _u.mutation.AcademicRequirements(); ok {
		_spec.SetField(careerfield.FieldAcademicRequirements, field.TypeJSON, value)
	}
	if _u.mutation.AcademicRequirementsCleared() {
		_spec.ClearField(careerfield.FieldAcademicRequirements, field.TypeJSON)
	}
	_node = &CareerField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{careerfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
