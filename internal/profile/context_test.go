package profile

import (
	"strings"
	"testing"
)

func TestContextLabelBrackets(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{13, "young high school student"},
		{15, "young high school student"},
		{16, "high school student approaching graduation"},
		{17, "high school student approaching graduation"},
		{18, "college-age young adult"},
		{21, "college-age young adult"},
		{22, "young professional"},
		{29, "young professional"},
		{30, "adult professional"},
		{65, "adult professional"},
	}
	for _, tt := range tests {
		if got := ContextLabel(tt.age); got != tt.want {
			t.Errorf("ContextLabel(%d) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestContextLabelTotal(t *testing.T) {
	// Any int gets a label, even nonsense ages.
	for _, age := range []int{-5, 0, 1000} {
		if got := ContextLabel(age); got == "" {
			t.Errorf("ContextLabel(%d) returned empty label", age)
		}
	}
}

func TestScenariosAgeBands(t *testing.T) {
	tests := []struct {
		age   int
		first string
	}{
		{15, "school projects"},
		{17, "school projects"},
		{18, "college life"},
		{24, "college life"},
		{25, "career decisions"},
		{40, "career decisions"},
	}
	for _, tt := range tests {
		got := Scenarios(tt.age, nil)
		if !strings.HasPrefix(got, tt.first) {
			t.Errorf("Scenarios(%d, nil) = %q, want prefix %q", tt.age, got, tt.first)
		}
	}
}

func TestScenariosTruncatedToFour(t *testing.T) {
	got := Scenarios(16, []string{"Gaming", "Sports", "Music", "Technology"})
	parts := strings.Split(got, ", ")
	if len(parts) != 4 {
		t.Fatalf("Scenarios returned %d entries, want 4: %q", len(parts), got)
	}
}

func TestScenariosIgnoresUnknownHobbies(t *testing.T) {
	plain := Scenarios(20, nil)
	withUnknown := Scenarios(20, []string{"Cooking", "Travel"})
	if plain != withUnknown {
		t.Errorf("unknown hobbies changed scenarios: %q vs %q", plain, withUnknown)
	}
}

func TestLabelFor(t *testing.T) {
	if got := LabelFor(EducationStatusOptions, "university_student"); got != "University/College Student" {
		t.Errorf("LabelFor = %q", got)
	}
	// Unknown values pass through.
	if got := LabelFor(EducationStatusOptions, "something_else"); got != "something_else" {
		t.Errorf("LabelFor fallback = %q", got)
	}
}
