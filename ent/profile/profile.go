// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldAcademicInfo holds the string denoting the academic_info field in the database.
	FieldAcademicInfo = "academic_info"
	// FieldPersonalBackground holds the string denoting the personal_background field in the database.
	FieldPersonalBackground = "personal_background"
	// FieldCareerRecommendations holds the string denoting the career_recommendations field in the database.
	FieldCareerRecommendations = "career_recommendations"
	// FieldSelectedCareerPath holds the string denoting the selected_career_path field in the database.
	FieldSelectedCareerPath = "selected_career_path"
	// FieldAssessmentProgress holds the string denoting the assessment_progress field in the database.
	FieldAssessmentProgress = "assessment_progress"
	// FieldIsMentor holds the string denoting the is_mentor field in the database.
	FieldIsMentor = "is_mentor"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldFullName,
	FieldAcademicInfo,
	FieldPersonalBackground,
	FieldCareerRecommendations,
	FieldSelectedCareerPath,
	FieldAssessmentProgress,
	FieldIsMentor,
	FieldVersion,
	FieldUpdatedAt,
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
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultFullName holds the default value on creation for the "full_name" field.
	DefaultFullName string
	// DefaultIsMentor holds the default value on creation for the "is_mentor" field.
	DefaultIsMentor bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByIsMentor orders the results by the is_mentor field.
func ByIsMentor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsMentor, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
