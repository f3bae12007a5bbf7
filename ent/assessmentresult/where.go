// Code generated by ent, DO NOT EDIT.

package assessmentresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adit/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldID, id))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldAssessmentID, v))
}

// UserEmail applies equality check predicate on the "user_email" field. It's identical to UserEmailEQ.
func UserEmail(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldUserEmail, v))
}

// CompletionTimeMinutes applies equality check predicate on the "completion_time_minutes" field. It's identical to CompletionTimeMinutesEQ.
func CompletionTimeMinutes(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldCompletionTimeMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldCreatedAt, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContainsFold(FieldAssessmentID, v))
}

// UserEmailEQ applies the EQ predicate on the "user_email" field.
func UserEmailEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldUserEmail, v))
}

// UserEmailNEQ applies the NEQ predicate on the "user_email" field.
func UserEmailNEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldUserEmail, v))
}

// UserEmailIn applies the In predicate on the "user_email" field.
func UserEmailIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldUserEmail, vs...))
}

// UserEmailNotIn applies the NotIn predicate on the "user_email" field.
func UserEmailNotIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldUserEmail, vs...))
}

// UserEmailGT applies the GT predicate on the "user_email" field.
func UserEmailGT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldUserEmail, v))
}

// UserEmailGTE applies the GTE predicate on the "user_email" field.
func UserEmailGTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldUserEmail, v))
}

// UserEmailLT applies the LT predicate on the "user_email" field.
func UserEmailLT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldUserEmail, v))
}

// UserEmailLTE applies the LTE predicate on the "user_email" field.
func UserEmailLTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldUserEmail, v))
}

// UserEmailContains applies the Contains predicate on the "user_email" field.
func UserEmailContains(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContains(FieldUserEmail, v))
}

// UserEmailHasPrefix applies the HasPrefix predicate on the "user_email" field.
func UserEmailHasPrefix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasPrefix(FieldUserEmail, v))
}

// UserEmailHasSuffix applies the HasSuffix predicate on the "user_email" field.
func UserEmailHasSuffix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasSuffix(FieldUserEmail, v))
}

// UserEmailEqualFold applies the EqualFold predicate on the "user_email" field.
func UserEmailEqualFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEqualFold(FieldUserEmail, v))
}

// UserEmailContainsFold applies the ContainsFold predicate on the "user_email" field.
func UserEmailContainsFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContainsFold(FieldUserEmail, v))
}

// ScoresIsNil applies the IsNil predicate on the "scores" field.
func ScoresIsNil() predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIsNull(FieldScores))
}

// ScoresNotNil applies the NotNil predicate on the "scores" field.
func ScoresNotNil() predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotNull(FieldScores))
}

// InsightsIsNil applies the IsNil predicate on the "insights" field.
func InsightsIsNil() predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIsNull(FieldInsights))
}

// InsightsNotNil applies the NotNil predicate on the "insights" field.
func InsightsNotNil() predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotNull(FieldInsights))
}

// CompletionTimeMinutesEQ applies the EQ predicate on the "completion_time_minutes" field.
func CompletionTimeMinutesEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldCompletionTimeMinutes, v))
}

// CompletionTimeMinutesNEQ applies the NEQ predicate on the "completion_time_minutes" field.
func CompletionTimeMinutesNEQ(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldCompletionTimeMinutes, v))
}

// CompletionTimeMinutesIn applies the In predicate on the "completion_time_minutes" field.
func CompletionTimeMinutesIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldCompletionTimeMinutes, vs...))
}

// CompletionTimeMinutesNotIn applies the NotIn predicate on the "completion_time_minutes" field.
func CompletionTimeMinutesNotIn(vs ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldCompletionTimeMinutes, vs...))
}

// CompletionTimeMinutesGT applies the GT predicate on the "completion_time_minutes" field.
func CompletionTimeMinutesGT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldCompletionTimeMinutes, v))
}

// CompletionTimeMinutesGTE applies the GTE predicate on the "completion_time_minutes" field.
func CompletionTimeMinutesGTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldCompletionTimeMinutes, v))
}

// CompletionTimeMinutesLT applies the LT predicate on the "completion_time_minutes" field.
func CompletionTimeMinutesLT(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldCompletionTimeMinutes, v))
}

// CompletionTimeMinutesLTE applies the LTE predicate on the "completion_time_minutes" field.
func CompletionTimeMinutesLTE(v int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldCompletionTimeMinutes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.NotPredicates(p))
}
