// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adit/pathwise/ent/profile"
	"github.com/adit/pathwise/ent/schema"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// AcademicInfo holds the value of the "academic_info" field.
	AcademicInfo schema.AcademicInfo `json:"academic_info,omitempty"`
	// PersonalBackground holds the value of the "personal_background" field.
	PersonalBackground schema.PersonalBackground `json:"personal_background,omitempty"`
	// CareerRecommendations holds the value of the "career_recommendations" field.
	CareerRecommendations []schema.CareerRecommendation `json:"career_recommendations,omitempty"`
	// SelectedCareerPath holds the value of the "selected_career_path" field.
	SelectedCareerPath *schema.CareerPath `json:"selected_career_path,omitempty"`
	// AssessmentProgress holds the value of the "assessment_progress" field.
	AssessmentProgress schema.AssessmentProgress `json:"assessment_progress,omitempty"`
	// IsMentor holds the value of the "is_mentor" field.
	IsMentor bool `json:"is_mentor,omitempty"`
	// Optimistic concurrency token. Every update must carry the observed version.
	Version int64 `json:"version,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldAcademicInfo, profile.FieldPersonalBackground, profile.FieldCareerRecommendations, profile.FieldSelectedCareerPath, profile.FieldAssessmentProgress:
			values[i] = new([]byte)
		case profile.FieldIsMentor:
			values[i] = new(sql.NullBool)
		case profile.FieldID, profile.FieldVersion:
			values[i] = new(sql.NullInt64)
		case profile.FieldEmail, profile.FieldFullName:
			values[i] = new(sql.NullString)
		case profile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case profile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case profile.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case profile.FieldAcademicInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field academic_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AcademicInfo); err != nil {
					return fmt.Errorf("unmarshal field academic_info: %w", err)
				}
			}
		case profile.FieldPersonalBackground:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field personal_background", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PersonalBackground); err != nil {
					return fmt.Errorf("unmarshal field personal_background: %w", err)
				}
			}
		case profile.FieldCareerRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field career_recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CareerRecommendations); err != nil {
					return fmt.Errorf("unmarshal field career_recommendations: %w", err)
				}
			}
		case profile.FieldSelectedCareerPath:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field selected_career_path", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SelectedCareerPath); err != nil {
					return fmt.Errorf("unmarshal field selected_career_path: %w", err)
				}
			}
		case profile.FieldAssessmentProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssessmentProgress); err != nil {
					return fmt.Errorf("unmarshal field assessment_progress: %w", err)
				}
			}
		case profile.FieldIsMentor:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_mentor", values[i])
			} else if value.Valid {
				_m.IsMentor = value.Bool
			}
		case profile.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case profile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("academic_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcademicInfo))
	builder.WriteString(", ")
	builder.WriteString("personal_background=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonalBackground))
	builder.WriteString(", ")
	builder.WriteString("career_recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.CareerRecommendations))
	builder.WriteString(", ")
	builder.WriteString("selected_career_path=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectedCareerPath))
	builder.WriteString(", ")
	builder.WriteString("assessment_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssessmentProgress))
	builder.WriteString(", ")
	builder.WriteString("is_mentor=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsMentor))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
