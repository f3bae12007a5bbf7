// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adit/pathwise/ent/careerfield"
	"github.com/adit/pathwise/ent/schema"
)

// CareerField is the model entity for the CareerField schema.
type CareerField struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// RequiredStrengths holds the value of the "required_strengths" field.
	RequiredStrengths []string `json:"required_strengths,omitempty"`
	// PersonalityMatch holds the value of the "personality_match" field.
	PersonalityMatch []string `json:"personality_match,omitempty"`
	// AcademicRequirements holds the value of the "academic_requirements" field.
	AcademicRequirements *schema.AcademicRequirements `json:"academic_requirements,omitempty"`
	selectValues         sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CareerField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case careerfield.FieldRequiredStrengths, careerfield.FieldPersonalityMatch, careerfield.FieldAcademicRequirements:
			values[i] = new([]byte)
		case careerfield.FieldID:
			values[i] = new(sql.NullInt64)
		case careerfield.FieldTitle, careerfield.FieldCategory, careerfield.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CareerField fields.
func (_m *CareerField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case careerfield.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case careerfield.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case careerfield.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case careerfield.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case careerfield.FieldRequiredStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredStrengths); err != nil {
					return fmt.Errorf("unmarshal field required_strengths: %w", err)
				}
			}
		case careerfield.FieldPersonalityMatch:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field personality_match", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PersonalityMatch); err != nil {
					return fmt.Errorf("unmarshal field personality_match: %w", err)
				}
			}
		case careerfield.FieldAcademicRequirements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field academic_requirements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AcademicRequirements); err != nil {
					return fmt.Errorf("unmarshal field academic_requirements: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CareerField.
// This includes values selected through modifiers, order, etc.
func (_m *CareerField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CareerField.
// Note that you need to call CareerField.Unwrap() before calling this method if this CareerField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CareerField) Update() *CareerFieldUpdateOne {
	return NewCareerFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CareerField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CareerField) Unwrap() *CareerField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CareerField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CareerField) String() string {
	var builder strings.Builder
	builder.WriteString("CareerField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("required_strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredStrengths))
	builder.WriteString(", ")
	builder.WriteString("personality_match=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonalityMatch))
	builder.WriteString(", ")
	builder.WriteString("academic_requirements=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcademicRequirements))
	builder.WriteByte(')')
	return builder.String()
}

// CareerFields is a parsable slice of CareerField.
type CareerFields []*CareerField
