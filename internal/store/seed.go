package store

import (
	"context"
	"fmt"

	"github.com/adit/pathwise/ent"
	"github.com/adit/pathwise/ent/assessment"
	"github.com/adit/pathwise/ent/schema"
)

// seedAssessments is the built-in assessment catalog, inserted on first open.
var seedAssessments = []Assessment{
	{
		AssessmentID:    "personality",
		Title:           "Personality Assessment",
		Category:        "personality",
		Description:     "Discover your personality traits and how they shape the way you work with others.",
		DurationMinutes: 10,
	},
	{
		AssessmentID:    "strengths",
		Title:           "Strengths Discovery",
		Category:        "strengths",
		Description:     "Identify your natural talents and the abilities you rely on most.",
		DurationMinutes: 8,
	},
	{
		AssessmentID:    "interests",
		Title:           "Interest Explorer",
		Category:        "interests",
		Description:     "Map the activities and subjects that genuinely hold your attention.",
		DurationMinutes: 8,
	},
	{
		AssessmentID:    "values",
		Title:           "Work Values",
		Category:        "values",
		Description:     "Clarify what matters most to you in work and life decisions.",
		DurationMinutes: 8,
	},
	{
		AssessmentID:    "learning_style",
		Title:           "Learning Style",
		Category:        "learning_style",
		Description:     "Understand how you absorb and retain new information best.",
		DurationMinutes: 6,
	},
	{
		AssessmentID:    "cognitive_skills",
		Title:           "Cognitive Skills",
		Category:        "cognitive_skills",
		Description:     "Gauge how you approach problem-solving, analysis, and decisions.",
		DurationMinutes: 7,
	},
}

// seedCareerFields is the built-in career catalog used to ground
// recommendation prompts.
var seedCareerFields = []CareerField{
	{
		Title:             "Software Engineering",
		Category:          "Technology",
		Description:       "Designing, building, and maintaining software systems.",
		RequiredStrengths: []string{"problem solving", "logical thinking", "attention to detail"},
		PersonalityMatch:  []string{"analytical", "curious", "persistent"},
		AcademicRequirements: &schema.AcademicRequirements{
			MinimumEducation:  "bachelor",
			PreferredSubjects: []string{"mathematics", "computer science"},
		},
	},
	{
		Title:             "Healthcare & Medicine",
		Category:          "Healthcare",
		Description:       "Diagnosing, treating, and caring for patients.",
		RequiredStrengths: []string{"empathy", "composure under pressure", "communication"},
		PersonalityMatch:  []string{"caring", "detail-oriented", "resilient"},
		AcademicRequirements: &schema.AcademicRequirements{
			MinimumEducation:  "doctorate",
			PreferredSubjects: []string{"biology", "chemistry"},
		},
	},
	{
		Title:             "Business & Management",
		Category:          "Business",
		Description:       "Leading teams and organizations toward commercial goals.",
		RequiredStrengths: []string{"leadership", "decision making", "negotiation"},
		PersonalityMatch:  []string{"assertive", "strategic", "sociable"},
		AcademicRequirements: &schema.AcademicRequirements{
			MinimumEducation:  "bachelor",
			PreferredSubjects: []string{"economics", "business studies"},
		},
	},
	{
		Title:             "Creative Arts & Design",
		Category:          "Creative",
		Description:       "Producing visual, written, or performed creative work.",
		RequiredStrengths: []string{"creativity", "visual thinking", "storytelling"},
		PersonalityMatch:  []string{"imaginative", "expressive", "open-minded"},
		AcademicRequirements: &schema.AcademicRequirements{
			MinimumEducation:  "varies",
			PreferredSubjects: []string{"art", "design", "literature"},
		},
	},
	{
		Title:             "Education & Training",
		Category:          "Education",
		Description:       "Teaching, mentoring, and developing other people.",
		RequiredStrengths: []string{"communication", "patience", "organization"},
		PersonalityMatch:  []string{"supportive", "articulate", "structured"},
		AcademicRequirements: &schema.AcademicRequirements{
			MinimumEducation:  "bachelor",
			PreferredSubjects: []string{"education", "psychology"},
		},
	},
	{
		Title:             "Engineering & Manufacturing",
		Category:          "Engineering",
		Description:       "Applying science to design and build physical systems.",
		RequiredStrengths: []string{"analytical thinking", "precision", "project planning"},
		PersonalityMatch:  []string{"methodical", "practical", "inventive"},
		AcademicRequirements: &schema.AcademicRequirements{
			MinimumEducation:  "bachelor",
			PreferredSubjects: []string{"physics", "mathematics"},
		},
	},
	{
		Title:             "Science & Research",
		Category:          "Science",
		Description:       "Investigating questions through systematic study and experiment.",
		RequiredStrengths: []string{"curiosity", "rigor", "written communication"},
		PersonalityMatch:  []string{"inquisitive", "patient", "skeptical"},
		AcademicRequirements: &schema.AcademicRequirements{
			MinimumEducation:  "masters",
			PreferredSubjects: []string{"sciences", "statistics"},
		},
	},
	{
		Title:             "Social Services & Community",
		Category:          "Social",
		Description:       "Supporting individuals and communities through direct service.",
		RequiredStrengths: []string{"empathy", "listening", "advocacy"},
		PersonalityMatch:  []string{"compassionate", "dependable", "principled"},
		AcademicRequirements: &schema.AcademicRequirements{
			MinimumEducation:  "bachelor",
			PreferredSubjects: []string{"sociology", "psychology"},
		},
	},
}

// seedCatalogs inserts the assessment and career catalogs if their tables
// are empty. Seeding is idempotent across opens.
func (s *Store) seedCatalogs(ctx context.Context) error {
	n, err := s.client.Assessment.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count assessments: %w", err)
	}
	if n == 0 {
		builders := make([]*ent.AssessmentCreate, 0, len(seedAssessments))
		for _, a := range seedAssessments {
			builders = append(builders, s.client.Assessment.Create().
				SetAssessmentID(a.AssessmentID).
				SetTitle(a.Title).
				SetCategory(assessment.Category(a.Category)).
				SetDescription(a.Description).
				SetDurationMinutes(a.DurationMinutes))
		}
		if err := s.client.Assessment.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("seed assessments: %w", err)
		}
	}

	n, err = s.client.CareerField.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count career fields: %w", err)
	}
	if n == 0 {
		builders := make([]*ent.CareerFieldCreate, 0, len(seedCareerFields))
		for _, f := range seedCareerFields {
			builders = append(builders, s.client.CareerField.Create().
				SetTitle(f.Title).
				SetCategory(f.Category).
				SetDescription(f.Description).
				SetRequiredStrengths(f.RequiredStrengths).
				SetPersonalityMatch(f.PersonalityMatch).
				SetAcademicRequirements(f.AcademicRequirements))
		}
		if err := s.client.CareerField.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("seed career fields: %w", err)
		}
	}

	return nil
}
