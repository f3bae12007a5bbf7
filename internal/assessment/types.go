package assessment

// Definition mirrors one catalog entry for the quiz flow.
type Definition struct {
	// ID is the stable catalog identifier, e.g. "personality".
	ID string

	// Title is the display title, e.g. "Personality Assessment".
	Title string

	// Category selects the prompt template and question count.
	Category string

	// Description is shown in the catalog list.
	Description string

	// DurationMinutes is the advertised length, not a limit.
	DurationMinutes int
}

// Question is one generated quiz question. All questions are multiple
// choice; there is no correct option.
type Question struct {
	// Text is the scenario question shown to the user.
	Text string

	// Options are the selectable answers, each reflecting a different
	// trait or approach.
	Options []string

	// Dimension is the trait this question measures, e.g. "extroversion".
	Dimension string
}

// Response records the chosen option for a question, addressed by position.
type Response struct {
	QuestionIndex int
	Answer        string
}

// Scores maps a dimension name to a 0-100 score.
type Scores map[string]float64

// Insights is the qualitative half of an analysis.
type Insights struct {
	PrimaryTraits    []string
	Strengths        []string
	DevelopmentAreas []string
	Summary          string
}

// Analysis is the full scoring result for a completed quiz.
type Analysis struct {
	Scores   Scores
	Insights Insights
}

// GenerateInput holds the user context a question set is personalized with.
type GenerateInput struct {
	// Definition is the assessment being taken.
	Definition Definition

	// Age is the user's age. Zero means unknown; a default is substituted.
	Age int

	// Hobbies are the user's onboarding hobby selections.
	Hobbies []string

	// Challenges are the user's onboarding challenge selections.
	Challenges []string
}

// FallbackQuestion is the single question served when generation fails.
// It keeps the quiz reachable so the user sees a message instead of a crash.
var FallbackQuestion = Question{
	Text:      "We encountered an issue generating your personalized assessment. Please try again later.",
	Options:   []string{"Ok"},
	Dimension: "fallback",
}
