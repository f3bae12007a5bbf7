package profile

// Option pairs a stored value with its display label for onboarding selects.
type Option struct {
	Value string
	Label string
}

// HobbyOptions are the free-time activities offered during onboarding.
// Stored verbatim; a subset feeds the scenario table in context.go.
var HobbyOptions = []string{
	"Reading", "Gaming", "Sports", "Music", "Art/Drawing", "Cooking", "Technology",
	"Social Media", "Movies/TV", "Outdoor Activities", "Photography", "Writing",
	"Dance", "Volunteering", "Travel", "Fashion", "Fitness", "Learning Languages",
}

// ChallengeOptions are the current-challenge choices offered during onboarding.
var ChallengeOptions = []string{
	"Choosing a career path", "Academic pressure", "Financial concerns", "Social anxiety",
	"Time management", "Family expectations", "Peer pressure", "Self-confidence",
	"Work-life balance", "Technology skills", "Public speaking", "Decision making",
}

var EducationStatusOptions = []Option{
	{"high_school_student", "High School Student"},
	{"high_school_graduate", "High School Graduate"},
	{"university_student", "University/College Student"},
	{"university_graduate", "University/College Graduate"},
	{"professional", "Working Professional"},
}

var FamilyBackgroundOptions = []Option{
	{"supportive_academic", "Very supportive of education and career goals"},
	{"practical_focused", "Focused on practical, stable career choices"},
	{"creative_encouraging", "Encouraging of creative and artistic pursuits"},
	{"business_oriented", "Business and entrepreneurship focused"},
	{"independent_choice", "Lets me make my own choices"},
	{"traditional_expectations", "Has traditional career expectations"},
}

var FutureGoalsOptions = []Option{
	{"get_into_university", "Get into a good university/college"},
	{"find_career_path", "Discover my ideal career path"},
	{"develop_skills", "Develop specific skills and talents"},
	{"start_career", "Start my professional career"},
	{"change_career", "Change to a different career"},
	{"start_business", "Start my own business"},
}

var WorkEnvironmentOptions = []Option{
	{"collaborative_office", "Collaborative office with team projects"},
	{"quiet_focused", "Quiet, focused environment for deep work"},
	{"creative_flexible", "Creative, flexible workspace"},
	{"remote_home", "Working from home/remotely"},
	{"active_outdoors", "Active, outdoors, or hands-on work"},
	{"client_facing", "Meeting and helping people directly"},
}

var FinancialConsiderationsOptions = []Option{
	{"very_important", "Very important - I need financial security"},
	{"moderately_important", "Moderately important - decent income is needed"},
	{"somewhat_important", "Somewhat important - passion over pay"},
	{"not_important", "Not important - I'll follow my passion"},
}

// LabelFor returns the display label for a stored value, or the value
// itself when it isn't in the table.
func LabelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
