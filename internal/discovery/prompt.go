package discovery

import (
	"fmt"
	"strings"
)

func orAny(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func buildMentorPrompt(f MentorFilters) string {
	var b strings.Builder
	b.WriteString("Find real, verified mentors and professionals who are publicly available for mentoring in these areas:\n\n")
	b.WriteString("Search Criteria:\n")
	fmt.Fprintf(&b, "- Field/Industry: %s\n", orAny(f.Field, "any field"))
	fmt.Fprintf(&b, "- Experience Level: %s\n", orAny(f.Experience, "any level"))
	fmt.Fprintf(&b, "- Location: %s\n\n", orAny(f.Location, "any location"))
	b.WriteString("Search specifically on these verified platforms for mentoring:\n")
	b.WriteString("1. LinkedIn (professionals who mention mentoring in their profiles)\n")
	b.WriteString("2. MentorCruise (verified mentoring platform)\n")
	b.WriteString("3. ADPList (free mentoring platform)\n")
	b.WriteString("4. Ten Thousand Coffees (professional mentoring)\n")
	b.WriteString("5. MentorCode (tech mentoring)\n")
	b.WriteString("6. Clarity.fm (business mentoring)\n\n")
	b.WriteString("IMPORTANT: Only include mentors who:\n")
	b.WriteString("- Have publicly available profiles\n")
	b.WriteString("- Actively offer mentoring services\n")
	b.WriteString("- Have verified professional experience\n")
	b.WriteString("- Include their real platform links\n\n")
	b.WriteString("Focus on quality over quantity - provide 4-6 highly relevant, verified mentors.\n")
	b.WriteString("Ensure all profile URLs are real and accessible.\n")
	return b.String()
}

func buildJobPrompt(f JobFilters) string {
	var b strings.Builder
	b.WriteString("Find current job opportunities based on these criteria. Use accurate, real-time data from major job boards like Indeed, LinkedIn, Glassdoor:\n\n")
	fmt.Fprintf(&b, "- Job Field: %q\n", orAny(f.Field, "any field"))
	fmt.Fprintf(&b, "- Location: %q\n", orAny(f.Location, "any location"))
	fmt.Fprintf(&b, "- Experience Level: %q\n", orAny(f.Experience, "entry-level"))
	fmt.Fprintf(&b, "- Salary Range: %q\n\n", orAny(f.Salary, "any salary"))
	b.WriteString("Return a list of 5-6 actual job listings.\n")
	b.WriteString("Important: Provide links to real, current job postings that users can actually apply to. Focus on accuracy and current market availability.\n")
	return b.String()
}

func buildUniversityPrompt(f UniversityFilters) string {
	var b strings.Builder
	b.WriteString("Find universities or colleges based on these specific criteria. Use accurate, real-time data from official university websites and educational databases:\n\n")
	fmt.Fprintf(&b, "- Major/Field of study: %q\n", orAny(f.Major, "any"))
	fmt.Fprintf(&b, "- Location: %q\n", orAny(f.Location, "any location"))
	fmt.Fprintf(&b, "- Maximum annual tuition cost: $%d\n", f.MaxTuition)
	fmt.Fprintf(&b, "- Must have nearby part-time job opportunities: %s\n", yesNo(f.PartTimeJobs))
	fmt.Fprintf(&b, "- Must offer on-campus boarding/housing: %s\n\n", yesNo(f.Boarding))
	b.WriteString("Return a list of 5-6 matching institutions with accurate information.\n")
	b.WriteString("Important: Provide accurate, verifiable information only. Include direct links to official university websites.\n")
	return b.String()
}

const trendsPrompt = "Identify current job market trends: which career fields are growing and which are declining, with a brief reason for each."

func buildConversionPrompt(amount float64, from, to string) string {
	return fmt.Sprintf("Convert %g %s to %s using current exchange rates.\nUse accurate, real-time exchange rates from financial sources.", amount, from, to)
}
