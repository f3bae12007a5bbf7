package store

import (
	"context"
	"time"

	"github.com/adit/pathwise/ent/schema"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Profile is the single local user's profile.
type Profile struct {
	ID                    int
	Email                 string
	FullName              string
	AcademicInfo          schema.AcademicInfo
	PersonalBackground    schema.PersonalBackground
	CareerRecommendations []schema.CareerRecommendation
	SelectedCareerPath    *schema.CareerPath
	AssessmentProgress    schema.AssessmentProgress
	IsMentor              bool
	Version               int64
	UpdatedAt             time.Time
}

// Assessment is one entry in the assessment catalog.
type Assessment struct {
	ID              int
	AssessmentID    string
	Title           string
	Category        string
	Description     string
	DurationMinutes int
}

// Result is one completed assessment.
type Result struct {
	ID                    int
	AssessmentID          string
	UserEmail             string
	Responses             []schema.QuestionResponse
	Scores                map[string]float64
	Insights              *schema.ResultInsights
	CompletionTimeMinutes int
	CreatedAt             time.Time
}

// Goal is a user-owned goal.
type Goal struct {
	ID          int
	UserEmail   string
	Title       string
	Description string
	Category    string
	DueDate     string
	Status      string
	CreatedAt   time.Time
}

// PortfolioItem is a user-owned portfolio entry.
type PortfolioItem struct {
	ID          int
	UserEmail   string
	Title       string
	Description string
	Category    string
	Date        string
	Link        string
	FileURL     string
	CreatedAt   time.Time
}

// CareerField is one entry in the career catalog.
type CareerField struct {
	ID                   int
	Title                string
	Category             string
	Description          string
	RequiredStrengths    []string
	PersonalityMatch     []string
	AcademicRequirements *schema.AcademicRequirements
}

// ProfileRepo manages the local user profile.
type ProfileRepo interface {
	// Me returns the profile, creating an empty one on first call.
	Me(ctx context.Context) (*Profile, error)

	// Update persists the profile. The profile's Version must match the
	// stored row or the update fails with ErrVersionConflict. On success
	// the returned profile carries the incremented version.
	Update(ctx context.Context, p *Profile) (*Profile, error)
}

// AssessmentRepo provides read access to the assessment catalog.
type AssessmentRepo interface {
	// List returns the full catalog in seeded order.
	List(ctx context.Context) ([]*Assessment, error)

	// Get returns the assessment with the given assessment_id,
	// or ErrNotFound.
	Get(ctx context.Context, assessmentID string) (*Assessment, error)

	// Count returns the catalog size.
	Count(ctx context.Context) (int, error)
}

// ResultRepo manages completed assessment results.
type ResultRepo interface {
	// Create stores a new result. A second result for the same
	// (assessment, user) pair fails with ErrDuplicateResult.
	Create(ctx context.Context, r *Result) (*Result, error)

	// Get returns the result for the pair, or ErrNotFound.
	Get(ctx context.Context, assessmentID, userEmail string) (*Result, error)

	// ListByUser returns all results for a user, newest first.
	ListByUser(ctx context.Context, userEmail string) ([]*Result, error)

	// CountByUser returns the number of results for a user.
	CountByUser(ctx context.Context, userEmail string) (int, error)
}

// GoalRepo manages user goals.
type GoalRepo interface {
	Create(ctx context.Context, g *Goal) (*Goal, error)
	ListByUser(ctx context.Context, userEmail string) ([]*Goal, error)
	SetStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

// PortfolioRepo manages user portfolio items.
type PortfolioRepo interface {
	Create(ctx context.Context, item *PortfolioItem) (*PortfolioItem, error)
	ListByUser(ctx context.Context, userEmail string) ([]*PortfolioItem, error)
	Delete(ctx context.Context, id int) error
}

// CareerFieldRepo provides read access to the career catalog.
type CareerFieldRepo interface {
	List(ctx context.Context) ([]*CareerField, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request with its sequence and timestamp.
type LLMEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls by purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls by model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns recorded LLM events matching opts,
	// oldest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMRequest returns the event with the given sequence, or nil.
	GetLLMRequest(ctx context.Context, sequence int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
