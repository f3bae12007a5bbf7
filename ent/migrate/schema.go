// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"personality", "strengths", "interests", "values", "learning_style", "cognitive_skills"}},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 10},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_category",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[3]},
			},
		},
	}
	// AssessmentResultsColumns holds the columns for the "assessment_results" table.
	AssessmentResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "user_email", Type: field.TypeString},
		{Name: "responses", Type: field.TypeJSON},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "insights", Type: field.TypeJSON, Nullable: true},
		{Name: "completion_time_minutes", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AssessmentResultsTable holds the schema information for the "assessment_results" table.
	AssessmentResultsTable = &schema.Table{
		Name:       "assessment_results",
		Columns:    AssessmentResultsColumns,
		PrimaryKey: []*schema.Column{AssessmentResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentresult_assessment_id_user_email",
				Unique:  true,
				Columns: []*schema.Column{AssessmentResultsColumns[1], AssessmentResultsColumns[2]},
			},
			{
				Name:    "assessmentresult_user_email",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResultsColumns[2]},
			},
		},
	}
	// CareerFieldsColumns holds the columns for the "career_fields" table.
	CareerFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "required_strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "personality_match", Type: field.TypeJSON, Nullable: true},
		{Name: "academic_requirements", Type: field.TypeJSON, Nullable: true},
	}
	// CareerFieldsTable holds the schema information for the "career_fields" table.
	CareerFieldsTable = &schema.Table{
		Name:       "career_fields",
		Columns:    CareerFieldsColumns,
		PrimaryKey: []*schema.Column{CareerFieldsColumns[0]},
	}
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_email", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"academic", "skill_development", "personal_growth", "career"}, Default: "personal_growth"},
		{Name: "due_date", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed"}, Default: "in_progress"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_user_email",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[1]},
			},
			{
				Name:    "goal_status",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PortfolioItemsColumns holds the columns for the "portfolio_items" table.
	PortfolioItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_email", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"project", "achievement", "experience", "skill"}, Default: "project"},
		{Name: "date", Type: field.TypeString, Default: ""},
		{Name: "link", Type: field.TypeString, Default: ""},
		{Name: "file_url", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PortfolioItemsTable holds the schema information for the "portfolio_items" table.
	PortfolioItemsTable = &schema.Table{
		Name:       "portfolio_items",
		Columns:    PortfolioItemsColumns,
		PrimaryKey: []*schema.Column{PortfolioItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "portfolioitem_user_email",
				Unique:  false,
				Columns: []*schema.Column{PortfolioItemsColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString, Default: ""},
		{Name: "academic_info", Type: field.TypeJSON, Nullable: true},
		{Name: "personal_background", Type: field.TypeJSON, Nullable: true},
		{Name: "career_recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "selected_career_path", Type: field.TypeJSON, Nullable: true},
		{Name: "assessment_progress", Type: field.TypeJSON, Nullable: true},
		{Name: "is_mentor", Type: field.TypeBool, Default: false},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "updated_at", Type: field.TypeTime, Nullable: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_email",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		AssessmentResultsTable,
		CareerFieldsTable,
		GoalsTable,
		LlmRequestEventsTable,
		PortfolioItemsTable,
		ProfilesTable,
	}
)

func init() {
}
