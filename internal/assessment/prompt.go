package assessment

import (
	"fmt"
	"strings"

	"github.com/adit/pathwise/internal/profile"
)

// defaultAge stands in when onboarding didn't capture an age.
const defaultAge = 18

// systemPrompt frames every quiz call. Individual prompts carry the
// category-specific instructions.
const systemPrompt = `You are a career guidance counselor who designs short, personalized self-assessment quizzes. Questions are multiple choice with no right or wrong answer; every option reflects a different legitimate approach. Respond with JSON only.`

// questionCount returns how many questions a category's quiz asks.
func questionCount(category string) int {
	switch category {
	case "personality":
		return 8
	case "strengths", "interests", "values":
		return 6
	default:
		// cognitive_skills and any unrecognized category.
		return 5
	}
}

// buildQuestionPrompt renders the generation prompt for one assessment,
// personalized with the user's age, hobbies and challenges.
func buildQuestionPrompt(in GenerateInput) string {
	age := in.Age
	if age <= 0 {
		age = defaultAge
	}
	label := profile.ContextLabel(age)
	scenarios := profile.Scenarios(age, in.Hobbies)

	var b strings.Builder
	switch in.Definition.Category {
	case "personality":
		fmt.Fprintf(&b, "Generate %d psychological personality assessment questions for a %d-year-old %s.\n",
			questionCount("personality"), age, label)
		fmt.Fprintf(&b, "Their hobbies include: %s\n", joinOr(in.Hobbies, "general activities"))
		fmt.Fprintf(&b, "Their challenges include: %s\n\n", joinOr(in.Challenges, "typical life challenges"))
		b.WriteString("Create relatable scenarios based on their actual interests and age-appropriate situations.\n\n")
		b.WriteString("Guidelines:\n")
		fmt.Fprintf(&b, "- Use scenarios from their actual hobbies: %s\n", firstN(in.Hobbies, 3))
		fmt.Fprintf(&b, "- Reference age-appropriate situations for %d-year-olds\n", age)
		fmt.Fprintf(&b, "- Include scenarios about %s\n", scenarios)
		b.WriteString("- NO generic \"agree/disagree\" questions\n")
		b.WriteString("- Make options reflect different personality approaches, not right/wrong answers\n")
		b.WriteString("- Measure: extroversion, conscientiousness, openness, agreeableness, emotional_stability, leadership, decision_making, stress_response\n")

	case "strengths":
		fmt.Fprintf(&b, "Generate %d strengths discovery questions for a %d-year-old %s.\n",
			questionCount("strengths"), age, label)
		fmt.Fprintf(&b, "Focus on their actual experiences with: %s\n", joinOr(in.Hobbies, "various activities"))
		fmt.Fprintf(&b, "Consider their challenges: %s\n\n", joinOr(in.Challenges, "general challenges"))
		b.WriteString("Guidelines:\n")
		fmt.Fprintf(&b, "- Ask about their experiences with their actual hobbies: %s\n", firstN(in.Hobbies, 3))
		fmt.Fprintf(&b, "- Use age %d appropriate scenarios\n", age)
		fmt.Fprintf(&b, "- Reference %s\n", scenarios)
		b.WriteString("- Measure: analytical_thinking, creativity, leadership, communication, empathy, organization, problem_solving\n")

	case "interests":
		fmt.Fprintf(&b, "Generate %d interest exploration questions for a %d-year-old %s.\n",
			questionCount("interests"), age, label)
		fmt.Fprintf(&b, "They currently enjoy: %s\n", joinOr(in.Hobbies, "various activities"))
		b.WriteString("Expand beyond their current hobbies to discover new interests.\n\n")
		b.WriteString("Guidelines:\n")
		fmt.Fprintf(&b, "- Reference their current hobbies: %s but explore beyond them\n", firstN(in.Hobbies, 3))
		fmt.Fprintf(&b, "- Use age %d appropriate scenarios\n", age)
		fmt.Fprintf(&b, "- Include scenarios about %s\n", scenarios)
		b.WriteString("- Measure: stem_interests, business_interests, creative_interests, social_interests, hands_on_interests\n")

	case "values":
		fmt.Fprintf(&b, "Generate %d values assessment questions for a %d-year-old %s.\n",
			questionCount("values"), age, label)
		fmt.Fprintf(&b, "Consider their life stage and challenges: %s\n\n", joinOr(in.Challenges, "general life decisions"))
		b.WriteString("Guidelines:\n")
		fmt.Fprintf(&b, "- Use age %d appropriate life decisions and dilemmas\n", age)
		fmt.Fprintf(&b, "- Reference %s\n", scenarios)
		fmt.Fprintf(&b, "- Consider their current challenges: %s\n", firstN(in.Challenges, 3))
		b.WriteString("- Measure: achievement, security, helping_others, creativity, independence, stability, adventure, recognition\n")

	case "cognitive_skills":
		fmt.Fprintf(&b, "Generate %d cognitive skills questions for a %d-year-old %s.\n",
			questionCount("cognitive_skills"), age, label)
		b.WriteString("Focus on their learning style and thinking patterns.\n\n")
		b.WriteString("Guidelines:\n")
		fmt.Fprintf(&b, "- Use age %d appropriate learning scenarios\n", age)
		fmt.Fprintf(&b, "- Reference %s\n", scenarios)
		fmt.Fprintf(&b, "- Consider their hobbies: %s\n", firstN(in.Hobbies, 3))
		b.WriteString("- Measure: analytical_thinking, creative_thinking, spatial_reasoning, verbal_reasoning, memory_strategies\n")

	default:
		title := in.Definition.Title
		if title == "" {
			title = in.Definition.Category
		}
		fmt.Fprintf(&b, "Generate %d general assessment questions for the category %q.\n",
			questionCount(in.Definition.Category), title)
		b.WriteString("Focus on broad areas relevant to personal and career development.\n\n")
		b.WriteString("Guidelines:\n")
		b.WriteString("- Options should be distinct and reflect different approaches.\n")
		fmt.Fprintf(&b, "- Ensure questions are neutral and applicable to a %s.\n", label)
	}
	return b.String()
}

// buildAnalysisPrompt renders the scoring prompt from the full quiz
// transcript. Unanswered questions are marked rather than skipped so the
// model sees the gaps.
func buildAnalysisPrompt(title, contextLabel string, questions []Question, responses []Response) string {
	answers := make(map[int]string, len(responses))
	for _, r := range responses {
		answers[r.QuestionIndex] = r.Answer
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze these assessment responses for the %q assessment:\n\n", title)
	fmt.Fprintf(&b, "User Context: %s\n\n", contextLabel)
	b.WriteString("Assessment Questions and Responses:\n")
	for i, q := range questions {
		answer := answers[i]
		if answer == "" {
			answer = "Not answered"
		}
		fmt.Fprintf(&b, "Question %d: %s\n", i+1, q.Text)
		fmt.Fprintf(&b, "Answer: %s\n", answer)
		fmt.Fprintf(&b, "Dimension: %s\n\n", q.Dimension)
	}
	b.WriteString("Based on these responses, calculate a 0-100 score for each measured dimension and provide qualitative insights.\n")
	fmt.Fprintf(&b, "Make the insights specific, actionable, and encouraging for a %s.\n", contextLabel)
	return b.String()
}

// joinOr comma-joins items, substituting fallback when the list is empty.
func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// firstN comma-joins at most n items. Empty input yields the empty string.
func firstN(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
