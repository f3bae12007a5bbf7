package assessment

import (
	"strings"
	"testing"
)

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{"personality", 8},
		{"strengths", 6},
		{"interests", 6},
		{"values", 6},
		{"cognitive_skills", 5},
		{"learning_style", 5},
		{"", 5},
	}
	for _, tt := range tests {
		if got := questionCount(tt.category); got != tt.want {
			t.Errorf("questionCount(%q) = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestBuildQuestionPromptPersonality(t *testing.T) {
	got := buildQuestionPrompt(GenerateInput{
		Definition: Definition{ID: "personality", Category: "personality"},
		Age:        20,
		Hobbies:    []string{"Gaming", "Music"},
		Challenges: []string{"Time management"},
	})

	for _, want := range []string{
		"Generate 8 psychological personality assessment questions",
		"20-year-old college-age young adult",
		"Gaming, Music",
		"Time management",
		"college life, internships, first jobs, independence",
		"extroversion, conscientiousness, openness",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("personality prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildQuestionPromptDefaults(t *testing.T) {
	got := buildQuestionPrompt(GenerateInput{
		Definition: Definition{ID: "personality", Category: "personality"},
	})

	// Missing age and selections fall back to safe placeholders.
	for _, want := range []string{
		"18-year-old",
		"general activities",
		"typical life challenges",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("default prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildQuestionPromptValuesUsesChallenges(t *testing.T) {
	got := buildQuestionPrompt(GenerateInput{
		Definition: Definition{ID: "values", Category: "values"},
		Age:        26,
		Challenges: []string{"Financial concerns", "Family expectations"},
	})

	if !strings.Contains(got, "Generate 6 values assessment questions") {
		t.Errorf("values prompt has wrong header:\n%s", got)
	}
	if !strings.Contains(got, "Financial concerns, Family expectations") {
		t.Errorf("values prompt missing challenges:\n%s", got)
	}
	if !strings.Contains(got, "achievement, security, helping_others") {
		t.Errorf("values prompt missing dimensions:\n%s", got)
	}
}

func TestBuildQuestionPromptUnknownCategory(t *testing.T) {
	got := buildQuestionPrompt(GenerateInput{
		Definition: Definition{ID: "learning_style", Title: "Learning Style Assessment", Category: "learning_style"},
		Age:        17,
	})

	if !strings.Contains(got, "Generate 5 general assessment questions") {
		t.Errorf("unknown-category prompt has wrong header:\n%s", got)
	}
	if !strings.Contains(got, `"Learning Style Assessment"`) {
		t.Errorf("unknown-category prompt missing title:\n%s", got)
	}
}

func TestBuildAnalysisPrompt(t *testing.T) {
	questions := []Question{
		{Text: "How do you recharge?", Options: []string{"Alone", "With friends"}, Dimension: "extroversion"},
		{Text: "How do you plan?", Options: []string{"Lists", "Improvise"}, Dimension: "conscientiousness"},
	}
	responses := []Response{
		{QuestionIndex: 0, Answer: "Alone"},
		{QuestionIndex: 1}, // left unanswered
	}

	got := buildAnalysisPrompt("Personality Assessment", "young professional", questions, responses)

	for _, want := range []string{
		`"Personality Assessment"`,
		"User Context: young professional",
		"Question 1: How do you recharge?",
		"Answer: Alone",
		"Dimension: extroversion",
		"Question 2: How do you plan?",
		"Answer: Not answered",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("analysis prompt missing %q:\n%s", want, got)
		}
	}
}
