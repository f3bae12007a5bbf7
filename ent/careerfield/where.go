// Code generated by ent, DO NOT EDIT.

package careerfield

import (
	"entgo.io/ent/dialect/sql"
	"github.com/adit/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CareerField {
	return predicate.CareerField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CareerField {
	return predicate.CareerField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CareerField {
	return predicate.CareerField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CareerField {
	return predicate.CareerField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CareerField {
	return predicate.CareerField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CareerField {
	return predicate.CareerField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CareerField {
	return predicate.CareerField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CareerField {
	return predicate.CareerField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CareerField {
	return predicate.CareerField(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEQ(FieldTitle, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEQ(FieldCategory, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEQ(FieldDescription, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CareerField {
	return predicate.CareerField(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CareerField {
	return predicate.CareerField(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldContainsFold(FieldTitle, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CareerField {
	return predicate.CareerField(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CareerField {
	return predicate.CareerField(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldContainsFold(FieldCategory, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CareerField {
	return predicate.CareerField(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CareerField {
	return predicate.CareerField(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CareerField {
	return predicate.CareerField(sql.FieldContainsFold(FieldDescription, v))
}

// RequiredStrengthsIsNil applies the IsNil predicate on the "required_strengths" field.
func RequiredStrengthsIsNil() predicate.CareerField {
	return predicate.CareerField(sql.FieldIsNull(FieldRequiredStrengths))
}

// RequiredStrengthsNotNil applies the NotNil predicate on the "required_strengths" field.
func RequiredStrengthsNotNil() predicate.CareerField {
	return predicate.CareerField(sql.FieldNotNull(FieldRequiredStrengths))
}

// PersonalityMatchIsNil applies the IsNil predicate on the "personality_match" field.
func PersonalityMatchIsNil() predicate.CareerField {
	return predicate.CareerField(sql.FieldIsNull(FieldPersonalityMatch))
}

// PersonalityMatchNotNil applies the NotNil predicate on the "personality_match" field.
func PersonalityMatchNotNil() predicate.CareerField {
	return predicate.CareerField(sql.FieldNotNull(FieldPersonalityMatch))
}

// AcademicRequirementsIsNil applies the IsNil predicate on the "academic_requirements" field.
func AcademicRequirementsIsNil() predicate.CareerField {
	return predicate.CareerField(sql.FieldIsNull(FieldAcademicRequirements))
}

// AcademicRequirementsNotNil applies the NotNil predicate on the "academic_requirements" field.
func AcademicRequirementsNotNil() predicate.CareerField {
	return predicate.CareerField(sql.FieldNotNull(FieldAcademicRequirements))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CareerField) predicate.CareerField {
	return predicate.CareerField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CareerField) predicate.CareerField {
	return predicate.CareerField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CareerField) predicate.CareerField {
	return predicate.CareerField(sql.NotPredicates(p))
}
