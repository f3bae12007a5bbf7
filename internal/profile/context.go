package profile

import "strings"

// ContextLabel maps an age to the persona label used in prompts.
// Total over all ints; non-positive ages land in the youngest bracket,
// which is harmless because callers substitute a default age first.
func ContextLabel(age int) string {
	switch {
	case age < 16:
		return "young high school student"
	case age < 18:
		return "high school student approaching graduation"
	case age < 22:
		return "college-age young adult"
	case age < 30:
		return "young professional"
	default:
		return "adult professional"
	}
}

// hobbyScenarios maps onboarding hobby choices to prompt scenarios.
// Keys must match the option strings in HobbyOptions exactly.
var hobbyScenarios = []struct {
	hobby     string
	scenarios []string
}{
	{"Gaming", []string{"online gaming communities", "competitive gaming"}},
	{"Sports", []string{"team sports", "athletic challenges"}},
	{"Music", []string{"musical performances", "creative expression"}},
	{"Art/Drawing", []string{"artistic projects", "creative showcases"}},
	{"Technology", []string{"tech projects", "digital innovation"}},
	{"Social Media", []string{"online interactions", "digital communication"}},
	{"Volunteering", []string{"community service", "helping others"}},
}

// Scenarios builds the comma-joined scenario list used to personalize
// question prompts: an age band contributes four baseline scenarios,
// hobbies append theirs, and the result is truncated to four entries.
// Returns "everyday life situations" when nothing matches.
func Scenarios(age int, hobbies []string) string {
	var scenarios []string

	switch {
	case age < 18:
		scenarios = append(scenarios, "school projects", "friend groups", "family expectations", "college decisions")
	case age < 25:
		scenarios = append(scenarios, "college life", "internships", "first jobs", "independence")
	default:
		scenarios = append(scenarios, "career decisions", "workplace dynamics", "life goals", "relationships")
	}

	chosen := make(map[string]bool, len(hobbies))
	for _, h := range hobbies {
		chosen[h] = true
	}
	for _, hs := range hobbyScenarios {
		if chosen[hs.hobby] {
			scenarios = append(scenarios, hs.scenarios...)
		}
	}

	if len(scenarios) > 4 {
		scenarios = scenarios[:4]
	}
	if len(scenarios) == 0 {
		return "everyday life situations"
	}
	return strings.Join(scenarios, ", ")
}
