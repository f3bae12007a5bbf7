// Package discovery runs web-grounded searches: mentors, jobs, universities,
// market trends and currency conversion.
package discovery

// MentorFilters narrows a mentor search. Empty fields mean "any".
type MentorFilters struct {
	Field      string
	Experience string
	Location   string
}

// Mentor is one mentor card from a search.
type Mentor struct {
	Name            string
	Title           string
	Company         string
	ExperienceYears string
	Specialization  string
	Bio             string
	Platform        string
	ProfileURL      string
	Skills          []string
	MentoringFocus  string
	Availability    string
	Cost            string
}

// JobFilters narrows a job search. Empty fields mean "any".
type JobFilters struct {
	Field      string
	Location   string
	Experience string
	Salary     string
}

// Job is one job listing from a search.
type Job struct {
	Title              string
	Company            string
	Location           string
	Summary            string
	SalaryRange        string
	ExperienceRequired string
	Link               string
}

// UniversityFilters narrows a university search.
type UniversityFilters struct {
	Major        string
	Location     string
	MaxTuition   int
	PartTimeJobs bool
	Boarding     bool
}

// University is one institution from a search.
type University struct {
	Name              string
	Location          string
	Description       string
	TuitionCost       string
	Website           string
	ProgramHighlights string
}

// FieldTrend is one field with the reason it's moving.
type FieldTrend struct {
	Field  string
	Reason string
}

// Trends summarizes the current job market.
type Trends struct {
	GrowingFields   []FieldTrend
	DecliningFields []FieldTrend
}

// Conversion is the result of a currency conversion.
type Conversion struct {
	ConvertedAmount float64
	ExchangeRate    float64
	FromCurrency    string
	ToCurrency      string
	OriginalAmount  float64
}

// Currency pairs an ISO code with its display label.
type Currency struct {
	Code  string
	Label string
}

// Currencies are the supported conversion currencies, in display order.
var Currencies = []Currency{
	{"USD", "USD - US Dollar"},
	{"EUR", "EUR - Euro"},
	{"GBP", "GBP - British Pound"},
	{"CAD", "CAD - Canadian Dollar"},
	{"AUD", "AUD - Australian Dollar"},
	{"JPY", "JPY - Japanese Yen"},
	{"CNY", "CNY - Chinese Yuan"},
	{"INR", "INR - Indian Rupee"},
	{"KRW", "KRW - South Korean Won"},
	{"SGD", "SGD - Singapore Dollar"},
	{"CHF", "CHF - Swiss Franc"},
	{"SEK", "SEK - Swedish Krona"},
	{"NOK", "NOK - Norwegian Krone"},
	{"DKK", "DKK - Danish Krone"},
	{"NZD", "NZD - New Zealand Dollar"},
	{"ZAR", "ZAR - South African Rand"},
	{"BRL", "BRL - Brazilian Real"},
	{"MXN", "MXN - Mexican Peso"},
	{"AED", "AED - UAE Dirham"},
	{"SAR", "SAR - Saudi Riyal"},
}
