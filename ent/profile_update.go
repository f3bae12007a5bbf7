// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/adit/pathwise/ent/predicate"
	"github.com/adit/pathwise/ent/profile"
	"github.com/adit/pathwise/ent/schema"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdate) SetEmail(v string) *ProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEmail(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProfileUpdate) SetFullName(v string) *ProfileUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableFullName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetAcademicInfo sets the "academic_info" field.
func (_u *ProfileUpdate) SetAcademicInfo(v schema.AcademicInfo) *ProfileUpdate {
	_u.mutation.SetAcademicInfo(v)
	return _u
}

// SetNillableAcademicInfo sets the "academic_info" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAcademicInfo(v *schema.AcademicInfo) *ProfileUpdate {
	if v != nil {
		_u.SetAcademicInfo(*v)
	}
	return _u
}

// ClearAcademicInfo clears the value of the "academic_info" field.
func (_u *ProfileUpdate) ClearAcademicInfo() *ProfileUpdate {
	_u.mutation.ClearAcademicInfo()
	return _u
}

// SetPersonalBackground sets the "personal_background" field.
func (_u *ProfileUpdate) SetPersonalBackground(v schema.PersonalBackground) *ProfileUpdate {
	_u.mutation.SetPersonalBackground(v)
	return _u
}

// SetNillablePersonalBackground sets the "personal_background" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePersonalBackground(v *schema.PersonalBackground) *ProfileUpdate {
	if v != nil {
		_u.SetPersonalBackground(*v)
	}
	return _u
}

// ClearPersonalBackground clears the value of the "personal_background" field.
func (_u *ProfileUpdate) ClearPersonalBackground() *ProfileUpdate {
	_u.mutation.ClearPersonalBackground()
	return _u
}

// SetCareerRecommendations sets the "career_recommendations" field.
func (_u *ProfileUpdate) SetCareerRecommendations(v []schema.CareerRecommendation) *ProfileUpdate {
	_u.mutation.SetCareerRecommendations(v)
	return _u
}

// AppendCareerRecommendations appends value to the "career_recommendations" field.
func (_u *ProfileUpdate) AppendCareerRecommendations(v []schema.CareerRecommendation) *ProfileUpdate {
	_u.mutation.AppendCareerRecommendations(v)
	return _u
}

// ClearCareerRecommendations clears the value of the "career_recommendations" field.
func (_u *ProfileUpdate) ClearCareerRecommendations() *ProfileUpdate {
	_u.mutation.ClearCareerRecommendations()
	return _u
}

// SetSelectedCareerPath sets the "selected_career_path" field.
func (_u *ProfileUpdate) SetSelectedCareerPath(v *schema.CareerPath) *ProfileUpdate {
	_u.mutation.SetSelectedCareerPath(v)
	return _u
}

// ClearSelectedCareerPath clears the value of the "selected_career_path" field.
func (_u *ProfileUpdate) ClearSelectedCareerPath() *ProfileUpdate {
	_u.mutation.ClearSelectedCareerPath()
	return _u
}

// SetAssessmentProgress sets the "assessment_progress" field.
func (_u *ProfileUpdate) SetAssessmentProgress(v schema.AssessmentProgress) *ProfileUpdate {
	_u.mutation.SetAssessmentProgress(v)
	return _u
}

// SetNillableAssessmentProgress sets the "assessment_progress" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAssessmentProgress(v *schema.AssessmentProgress) *ProfileUpdate {
	if v != nil {
		_u.SetAssessmentProgress(*v)
	}
	return _u
}

// ClearAssessmentProgress clears the value of the "assessment_progress" field.
func (_u *ProfileUpdate) ClearAssessmentProgress() *ProfileUpdate {
	_u.mutation.ClearAssessmentProgress()
	return _u
}

// SetIsMentor sets the "is_mentor" field.
func (_u *ProfileUpdate) SetIsMentor(v bool) *ProfileUpdate {
	_u.mutation.SetIsMentor(v)
	return _u
}

// SetNillableIsMentor sets the "is_mentor" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableIsMentor(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetIsMentor(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProfileUpdate) SetVersion(v int64) *ProfileUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableVersion(v *int64) *ProfileUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProfileUpdate) AddVersion(v int64) *ProfileUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableUpdatedAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (_u *ProfileUpdate) ClearUpdatedAt() *ProfileUpdate {
	_u.mutation.ClearUpdatedAt()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Profile.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcademicInfo(); ok {
		_spec.SetField(profile.FieldAcademicInfo, field.TypeJSON, value)
	}
	if _u.mutation.AcademicInfoCleared() {
		_spec.ClearField(profile.FieldAcademicInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.PersonalBackground(); ok {
		_spec.SetField(profile.FieldPersonalBackground, field.TypeJSON, value)
	}
	if _u.mutation.PersonalBackgroundCleared() {
		_spec.ClearField(profile.FieldPersonalBackground, field.TypeJSON)
	}
	if value, ok := _u.mutation.CareerRecommendations(); ok {
		_spec.SetField(profile.FieldCareerRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCareerRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldCareerRecommendations, value)
		})
	}
	if _u.mutation.CareerRecommendationsCleared() {
		_spec.ClearField(profile.FieldCareerRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.SelectedCareerPath(); ok {
		_spec.SetField(profile.FieldSelectedCareerPath, field.TypeJSON, value)
	}
	if _u.mutation.SelectedCareerPathCleared() {
		_spec.ClearField(profile.FieldSelectedCareerPath, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessmentProgress(); ok {
		_spec.SetField(profile.FieldAssessmentProgress, field.TypeJSON, value)
	}
	if _u.mutation.AssessmentProgressCleared() {
		_spec.ClearField(profile.FieldAssessmentProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsMentor(); ok {
		_spec.SetField(profile.FieldIsMentor, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(profile.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(profile.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UpdatedAtCleared() {
		_spec.ClearField(profile.FieldUpdatedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdateOne) SetEmail(v string) *ProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEmail(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProfileUpdateOne) SetFullName(v string) *ProfileUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableFullName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetAcademicInfo sets the "academic_info" field.
func (_u *ProfileUpdateOne) SetAcademicInfo(v schema.AcademicInfo) *ProfileUpdateOne {
	_u.mutation.SetAcademicInfo(v)
	return _u
}

// SetNillableAcademicInfo sets the "academic_info" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAcademicInfo(v *schema.AcademicInfo) *ProfileUpdateOne {
	if v != nil {
		_u.SetAcademicInfo(*v)
	}
	return _u
}

// ClearAcademicInfo clears the value of the "academic_info" field.
func (_u *ProfileUpdateOne) ClearAcademicInfo() *ProfileUpdateOne {
	_u.mutation.ClearAcademicInfo()
	return _u
}

// SetPersonalBackground sets the "personal_background" field.
func (_u *ProfileUpdateOne) SetPersonalBackground(v schema.PersonalBackground) *ProfileUpdateOne {
	_u.mutation.SetPersonalBackground(v)
	return _u
}

// SetNillablePersonalBackground sets the "personal_background" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePersonalBackground(v *schema.PersonalBackground) *ProfileUpdateOne {
	if v != nil {
		_u.SetPersonalBackground(*v)
	}
	return _u
}

// ClearPersonalBackground clears the value of the "personal_background" field.
func (_u *ProfileUpdateOne) ClearPersonalBackground() *ProfileUpdateOne {
	_u.mutation.ClearPersonalBackground()
	return _u
}

// SetCareerRecommendations sets the "career_recommendations" field.
func (_u *ProfileUpdateOne) SetCareerRecommendations(v []schema.CareerRecommendation) *ProfileUpdateOne {
	_u.mutation.SetCareerRecommendations(v)
	return _u
}

// AppendCareerRecommendations appends value to the "career_recommendations" field.
func (_u *ProfileUpdateOne) AppendCareerRecommendations(v []schema.CareerRecommendation) *ProfileUpdateOne {
	_u.mutation.AppendCareerRecommendations(v)
	return _u
}

// ClearCareerRecommendations clears the value of the "career_recommendations" field.
func (_u *ProfileUpdateOne) ClearCareerRecommendations() *ProfileUpdateOne {
	_u.mutation.ClearCareerRecommendations()
	return _u
}

// SetSelectedCareerPath sets the "selected_career_path" field.
func (_u *ProfileUpdateOne) SetSelectedCareerPath(v *schema.CareerPath) *ProfileUpdateOne {
	_u.mutation.SetSelectedCareerPath(v)
	return _u
}

// ClearSelectedCareerPath clears the value of the "selected_career_path" field.
func (_u *ProfileUpdateOne) ClearSelectedCareerPath() *ProfileUpdateOne {
	_u.mutation.ClearSelectedCareerPath()
	return _u
}

// SetAssessmentProgress sets the "assessment_progress" field.
func (_u *ProfileUpdateOne) SetAssessmentProgress(v schema.AssessmentProgress) *ProfileUpdateOne {
	_u.mutation.SetAssessmentProgress(v)
	return _u
}

// SetNillableAssessmentProgress sets the "assessment_progress" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAssessmentProgress(v *schema.AssessmentProgress) *ProfileUpdateOne {
	if v != nil {
		_u.SetAssessmentProgress(*v)
	}
	return _u
}

// ClearAssessmentProgress clears the value of the "assessment_progress" field.
func (_u *ProfileUpdateOne) ClearAssessmentProgress() *ProfileUpdateOne {
	_u.mutation.ClearAssessmentProgress()
	return _u
}

// SetIsMentor sets the "is_mentor" field.
func (_u *ProfileUpdateOne) SetIsMentor(v bool) *ProfileUpdateOne {
	_u.mutation.SetIsMentor(v)
	return _u
}

// SetNillableIsMentor sets the "is_mentor" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableIsMentor(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetIsMentor(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProfileUpdateOne) SetVersion(v int64) *ProfileUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableVersion(v *int64) *ProfileUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProfileUpdateOne) AddVersion(v int64) *ProfileUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableUpdatedAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (_u *ProfileUpdateOne) ClearUpdatedAt() *ProfileUpdateOne {
	_u.mutation.ClearUpdatedAt()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Profile.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcademicInfo(); ok {
		_spec.SetField(profile.FieldAcademicInfo, field.TypeJSON, value)
	}
	if _u.mutation.AcademicInfoCleared() {
		_spec.ClearField(profile.FieldAcademicInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.PersonalBackground(); ok {
		_spec.SetField(profile.FieldPersonalBackground, field.TypeJSON, value)
	}
	if _u.mutation.PersonalBackgroundCleared() {
		_spec.ClearField(profile.FieldPersonalBackground, field.TypeJSON)
	}
	if value, ok := _u.mutation.CareerRecommendations(); ok {
		_spec.SetField(profile.FieldCareerRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCareerRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldCareerRecommendations, value)
		})
	}
	if _u.mutation.CareerRecommendationsCleared() {
		_spec.ClearField(profile.FieldCareerRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.SelectedCareerPath(); ok {
		_spec.SetField(profile.FieldSelectedCareerPath, field.TypeJSON, value)
	}
	if _u.mutation.SelectedCareerPathCleared() {
		_spec.ClearField(profile.FieldSelectedCareerPath, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessmentProgress(); ok {
		_spec.SetField(profile.FieldAssessmentProgress, field.TypeJSON, value)
	}
	if _u.mutation.AssessmentProgressCleared() {
		_spec.ClearField(profile.FieldAssessmentProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsMentor(); ok {
		_spec.SetField(profile.FieldIsMentor, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(profile.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(profile.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UpdatedAtCleared() {
		_spec.ClearField(profile.FieldUpdatedAt, field.TypeTime)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
