// Code generated by ent, DO NOT EDIT.

package careerfield

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the careerfield type in the database.
	Label = "career_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRequiredStrengths holds the string denoting the required_strengths field in the database.
	FieldRequiredStrengths = "required_strengths"
	// FieldPersonalityMatch holds the string denoting the personality_match field in the database.
	FieldPersonalityMatch = "personality_match"
	// FieldAcademicRequirements holds the string denoting the academic_requirements field in the database.
	FieldAcademicRequirements = "academic_requirements"
	// Table holds the table name of the careerfield in the database.
	Table = "career_fields"
)

// Columns holds all SQL columns for careerfield fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldCategory,
	FieldDescription,
	FieldRequiredStrengths,
	FieldPersonalityMatch,
	FieldAcademicRequirements,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
)

// OrderOption defines the ordering options for the CareerField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}
