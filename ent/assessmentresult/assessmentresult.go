// Code generated by ent, DO NOT EDIT.

package assessmentresult

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentresult type in the database.
	Label = "assessment_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldUserEmail holds the string denoting the user_email field in the database.
	FieldUserEmail = "user_email"
	// FieldResponses holds the string denoting the responses field in the database.
	FieldResponses = "responses"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldInsights holds the string denoting the insights field in the database.
	FieldInsights = "insights"
	// FieldCompletionTimeMinutes holds the string denoting the completion_time_minutes field in the database.
	FieldCompletionTimeMinutes = "completion_time_minutes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the assessmentresult in the database.
	Table = "assessment_results"
)

// Columns holds all SQL columns for assessmentresult fields.
var Columns = []string{
	FieldID,
	FieldAssessmentID,
	FieldUserEmail,
	FieldResponses,
	FieldScores,
	FieldInsights,
	FieldCompletionTimeMinutes,
	FieldCreatedAt,
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
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
	// UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	UserEmailValidator func(string) error
	// DefaultCompletionTimeMinutes holds the default value on creation for the "completion_time_minutes" field.
	DefaultCompletionTimeMinutes int
)

// OrderOption defines the ordering options for the AssessmentResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByUserEmail orders the results by the user_email field.
func ByUserEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserEmail, opts...).ToFunc()
}

// ByCompletionTimeMinutes orders the results by the completion_time_minutes field.
func ByCompletionTimeMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTimeMinutes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
