// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adit/pathwise/ent/profile"
	"github.com/adit/pathwise/ent/schema"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *ProfileCreate) SetEmail(v string) *ProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *ProfileCreate) SetFullName(v string) *ProfileCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableFullName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetAcademicInfo sets the "academic_info" field.
func (_c *ProfileCreate) SetAcademicInfo(v schema.AcademicInfo) *ProfileCreate {
	_c.mutation.SetAcademicInfo(v)
	return _c
}

// SetNillableAcademicInfo sets the "academic_info" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAcademicInfo(v *schema.AcademicInfo) *ProfileCreate {
	if v != nil {
		_c.SetAcademicInfo(*v)
	}
	return _c
}

// SetPersonalBackground sets the "personal_background" field.
func (_c *ProfileCreate) SetPersonalBackground(v schema.PersonalBackground) *ProfileCreate {
	_c.mutation.SetPersonalBackground(v)
	return _c
}

// SetNillablePersonalBackground sets the "personal_background" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePersonalBackground(v *schema.PersonalBackground) *ProfileCreate {
	if v != nil {
		_c.SetPersonalBackground(*v)
	}
	return _c
}

// SetCareerRecommendations sets the "career_recommendations" field.
func (_c *ProfileCreate) SetCareerRecommendations(v []schema.CareerRecommendation) *ProfileCreate {
	_c.mutation.SetCareerRecommendations(v)
	return _c
}

// SetSelectedCareerPath sets the "selected_career_path" field.
func (_c *ProfileCreate) SetSelectedCareerPath(v *schema.CareerPath) *ProfileCreate {
	_c.mutation.SetSelectedCareerPath(v)
	return _c
}

// SetAssessmentProgress sets the "assessment_progress" field.
func (_c *ProfileCreate) SetAssessmentProgress(v schema.AssessmentProgress) *ProfileCreate {
	_c.mutation.SetAssessmentProgress(v)
	return _c
}

// SetNillableAssessmentProgress sets the "assessment_progress" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAssessmentProgress(v *schema.AssessmentProgress) *ProfileCreate {
	if v != nil {
		_c.SetAssessmentProgress(*v)
	}
	return _c
}

// SetIsMentor sets the "is_mentor" field.
func (_c *ProfileCreate) SetIsMentor(v bool) *ProfileCreate {
	_c.mutation.SetIsMentor(v)
	return _c
}

// SetNillableIsMentor sets the "is_mentor" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableIsMentor(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetIsMentor(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProfileCreate) SetVersion(v int64) *ProfileCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableVersion(v *int64) *ProfileCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.FullName(); !ok {
		v := profile.DefaultFullName
		_c.mutation.SetFullName(v)
	}
	if _, ok := _c.mutation.IsMentor(); !ok {
		v := profile.DefaultIsMentor
		_c.mutation.SetIsMentor(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := profile.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Profile.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Profile.full_name"`)}
	}
	if _, ok := _c.mutation.IsMentor(); !ok {
		return &ValidationError{Name: "is_mentor", err: errors.New(`ent: missing required field "Profile.is_mentor"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Profile.version"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.AcademicInfo(); ok {
		_spec.SetField(profile.FieldAcademicInfo, field.TypeJSON, value)
		_node.AcademicInfo = value
	}
	if value, ok := _c.mutation.PersonalBackground(); ok {
		_spec.SetField(profile.FieldPersonalBackground, field.TypeJSON, value)
		_node.PersonalBackground = value
	}
	if value, ok := _c.mutation.CareerRecommendations(); ok {
		_spec.SetField(profile.FieldCareerRecommendations, field.TypeJSON, value)
		_node.CareerRecommendations = value
	}
	if value, ok := _c.mutation.SelectedCareerPath(); ok {
		_spec.SetField(profile.FieldSelectedCareerPath, field.TypeJSON, value)
		_node.SelectedCareerPath = value
	}
	if value, ok := _c.mutation.AssessmentProgress(); ok {
		_spec.SetField(profile.FieldAssessmentProgress, field.TypeJSON, value)
		_node.AssessmentProgress = value
	}
	if value, ok := _c.mutation.IsMentor(); ok {
		_spec.SetField(profile.FieldIsMentor, field.TypeBool, value)
		_node.IsMentor = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(profile.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
