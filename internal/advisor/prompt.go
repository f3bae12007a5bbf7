package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adit/pathwise/internal/store"
)

const systemPrompt = `You are a career counselor matching assessment profiles to career fields. Ground every recommendation in the supplied assessment insights and catalog. Respond with JSON only.`

// resultInsight is the condensed view of one assessment result fed into the
// recommendation prompt.
type resultInsight struct {
	Assessment string   `json:"assessment"`
	Traits     []string `json:"traits"`
	Strengths  []string `json:"strengths"`
	Summary    string   `json:"summary"`
}

func compileInsights(results []*store.Result) []resultInsight {
	insights := make([]resultInsight, 0, len(results))
	for _, r := range results {
		in := resultInsight{Assessment: r.AssessmentID}
		if r.Insights != nil {
			in.Traits = r.Insights.PrimaryTraits
			in.Strengths = r.Insights.Strengths
			in.Summary = r.Insights.Summary
		}
		insights = append(insights, in)
	}
	return insights
}

// buildRecommendationPrompt renders the recommendation prompt from the
// user's profile, their compiled assessment insights, and the career catalog.
func buildRecommendationPrompt(p *store.Profile, results []*store.Result, fields []*store.CareerField) string {
	academic, err := json.Marshal(p.AcademicInfo)
	if err != nil {
		academic = []byte("{}")
	}
	insights, err := json.Marshal(compileInsights(results))
	if err != nil {
		insights = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("Based on the following personality assessment results, recommend the most suitable career fields:\n\n")
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Academic Info: %s\n", academic)
	fmt.Fprintf(&b, "- Assessment Results: %s\n\n", insights)

	b.WriteString("Available Career Fields:\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "- %s: %s\n", f.Title, f.Description)
		fmt.Fprintf(&b, "  Category: %s\n", f.Category)
		fmt.Fprintf(&b, "  Required Strengths: %s\n", joinOr(f.RequiredStrengths, "None specified"))
		fmt.Fprintf(&b, "  Personality Match: %s\n", joinOr(f.PersonalityMatch, "None specified"))
		if f.AcademicRequirements != nil {
			reqs, err := json.Marshal(f.AcademicRequirements)
			if err == nil {
				fmt.Fprintf(&b, "  Academic Requirements: %s\n", reqs)
			}
		}
	}

	b.WriteString("\nConsider:\n")
	b.WriteString("1. Personality traits and how they align with career requirements\n")
	b.WriteString("2. Identified strengths and how they apply to different fields\n")
	b.WriteString("3. Academic performance and requirements\n")
	b.WriteString("4. Interest areas and values\n")
	b.WriteString("5. Growth potential and market demand\n\n")
	b.WriteString("Provide 5-8 recommendations, ranked by match percentage.\n")
	return b.String()
}

// buildRoadmapPrompt renders the skill roadmap prompt for a career field.
func buildRoadmapPrompt(field string) string {
	return fmt.Sprintf("Create a skill roadmap for someone pursuing a career in %q. Include technical skills, soft skills, and key experiences to gain.", field)
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
