package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile holds the current user's account record. Pathwise is a single-user
// app, so there is at most one row per email and "me" is the only lookup.
type Profile struct {
	ent.Schema
}

// AcademicInfo is the serialized academic section of a profile.
type AcademicInfo struct {
	EducationStatus         string `json:"education_status"`
	CurrentEducationDetails string `json:"current_education_details,omitempty"`
}

// PersonalBackground is the serialized personal section of a profile.
type PersonalBackground struct {
	Age                     int      `json:"age"`
	Location                string   `json:"location,omitempty"`
	FamilyBackground        string   `json:"family_background,omitempty"`
	Hobbies                 []string `json:"hobbies,omitempty"`
	CurrentChallenges       []string `json:"current_challenges,omitempty"`
	FutureGoals             string   `json:"future_goals,omitempty"`
	PreferredWorkEnv        string   `json:"preferred_work_environment,omitempty"`
	FinancialConsiderations string   `json:"financial_considerations,omitempty"`
}

// CareerRecommendation is one serialized recommendation entry.
type CareerRecommendation struct {
	Field           string   `json:"field"`
	MatchPercentage float64  `json:"match_percentage"`
	Reasoning       string   `json:"reasoning"`
	KeyAlignments   []string `json:"key_alignments"`
	GrowthPotential string   `json:"growth_potential"`
	NextSteps       string   `json:"next_steps"`
}

// CareerPath is the user's selected target field.
type CareerPath struct {
	Field string `json:"field"`
}

// AssessmentProgress tracks which assessments the user has completed.
type AssessmentProgress struct {
	CompletedAssessments []string `json:"completed_assessments"`
	CompletionPercentage int      `json:"completion_percentage"`
	NextRecommended      string   `json:"next_recommended,omitempty"`
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("full_name").
			Default(""),
		field.JSON("academic_info", AcademicInfo{}).
			Optional(),
		field.JSON("personal_background", PersonalBackground{}).
			Optional(),
		field.JSON("career_recommendations", []CareerRecommendation{}).
			Optional(),
		field.JSON("selected_career_path", &CareerPath{}).
			Optional(),
		field.JSON("assessment_progress", AssessmentProgress{}).
			Optional(),
		field.Bool("is_mentor").
			Default(false),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency token. Every update must carry the observed version."),
		field.Time("updated_at").
			Optional(),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
