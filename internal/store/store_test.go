package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adit/pathwise/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCatalogSeededOnOpen(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	assessments, err := s.AssessmentRepo().List(ctx)
	if err != nil {
		t.Fatalf("list assessments: %v", err)
	}
	if len(assessments) != len(seedAssessments) {
		t.Fatalf("assessments = %d, want %d", len(assessments), len(seedAssessments))
	}
	if assessments[0].AssessmentID != "personality" {
		t.Errorf("first assessment = %q, want personality", assessments[0].AssessmentID)
	}

	fields, err := s.CareerFieldRepo().List(ctx)
	if err != nil {
		t.Fatalf("list career fields: %v", err)
	}
	if len(fields) != len(seedCareerFields) {
		t.Errorf("career fields = %d, want %d", len(fields), len(seedCareerFields))
	}
}

func TestAssessmentGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.AssessmentRepo()

	a, err := repo.Get(ctx, "values")
	if err != nil {
		t.Fatalf("get values: %v", err)
	}
	if a.Category != "values" {
		t.Errorf("category = %q, want values", a.Category)
	}

	_, err = repo.Get(ctx, "does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing = %v, want ErrNotFound", err)
	}
}

func TestProfileCreatedOnFirstRead(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	p, err := repo.Me(ctx)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if p.Version != 1 {
		t.Errorf("version = %d, want 1", p.Version)
	}

	// Second read returns the same row, not a new one.
	p2, err := repo.Me(ctx)
	if err != nil {
		t.Fatalf("me (second): %v", err)
	}
	if p2.ID != p.ID {
		t.Errorf("second read returned different profile: %d vs %d", p2.ID, p.ID)
	}
}

func TestProfileUpdateBumpsVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	p, err := repo.Me(ctx)
	if err != nil {
		t.Fatalf("me: %v", err)
	}

	p.FullName = "Asha Rao"
	p.Email = "asha@example.com"
	p.PersonalBackground.Age = 17
	p.UpdatedAt = time.Now().UTC()

	updated, err := repo.Update(ctx, p)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Version != p.Version+1 {
		t.Errorf("version = %d, want %d", updated.Version, p.Version+1)
	}
	if updated.FullName != "Asha Rao" {
		t.Errorf("full name = %q", updated.FullName)
	}
	if updated.PersonalBackground.Age != 17 {
		t.Errorf("age = %d, want 17", updated.PersonalBackground.Age)
	}
}

func TestProfileStaleUpdateRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	p, err := repo.Me(ctx)
	if err != nil {
		t.Fatalf("me: %v", err)
	}

	// Two flows read the same version.
	a := ProfileSnapshot(p)
	b := ProfileSnapshot(p)

	a.FullName = "First Writer"
	if _, err := repo.Update(ctx, a); err != nil {
		t.Fatalf("first update: %v", err)
	}

	b.FullName = "Second Writer"
	_, err = repo.Update(ctx, b)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("stale update = %v, want ErrVersionConflict", err)
	}

	// First write survives.
	cur, err := repo.Me(ctx)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if cur.FullName != "First Writer" {
		t.Errorf("full name = %q, want First Writer", cur.FullName)
	}
}

func TestResultCreateAndDuplicate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ResultRepo()

	res := &Result{
		AssessmentID: "values",
		UserEmail:    "asha@example.com",
		Responses: []schema.QuestionResponse{
			{QuestionIndex: 0, Answer: "Helping others"},
		},
		Scores:                map[string]float64{"achievement": 80},
		Insights:              &schema.ResultInsights{Summary: "Values achievement."},
		CompletionTimeMinutes: 4,
		CreatedAt:             time.Now().UTC(),
	}

	saved, err := repo.Create(ctx, res)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected non-zero ID")
	}

	_, err = repo.Create(ctx, res)
	if !errors.Is(err, ErrDuplicateResult) {
		t.Errorf("duplicate create = %v, want ErrDuplicateResult", err)
	}

	// Same assessment, different user is fine.
	res2 := *res
	res2.UserEmail = "ben@example.com"
	if _, err := repo.Create(ctx, &res2); err != nil {
		t.Errorf("create for second user: %v", err)
	}

	n, err := repo.CountByUser(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestResultGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ResultRepo()

	_, err := repo.Create(ctx, &Result{
		AssessmentID: "personality",
		UserEmail:    "asha@example.com",
		Responses: []schema.QuestionResponse{
			{QuestionIndex: 0, Answer: "Plan it out"},
			{QuestionIndex: 1, Answer: "Talk it through"},
		},
		Scores:    map[string]float64{"openness": 72, "conscientiousness": 64},
		Insights:  &schema.ResultInsights{PrimaryTraits: []string{"organized"}, Summary: "Structured."},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "personality", "asha@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Responses) != 2 {
		t.Errorf("responses = %d, want 2", len(got.Responses))
	}
	if got.Scores["openness"] != 72 {
		t.Errorf("openness = %v, want 72", got.Scores["openness"])
	}
	if got.Insights == nil || got.Insights.Summary != "Structured." {
		t.Errorf("insights = %+v", got.Insights)
	}

	_, err = repo.Get(ctx, "strengths", "asha@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing = %v, want ErrNotFound", err)
	}
}

func TestGoalLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.GoalRepo()

	g, err := repo.Create(ctx, &Goal{
		UserEmail: "asha@example.com",
		Title:     "Finish portfolio site",
		Category:  "skill_development",
		Status:    "in_progress",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SetStatus(ctx, g.ID, "completed"); err != nil {
		t.Fatalf("set status: %v", err)
	}

	goals, err := repo.ListByUser(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 1 || goals[0].Status != "completed" {
		t.Errorf("goals = %+v", goals)
	}

	if err := repo.Delete(ctx, g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, g.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestPortfolioLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.PortfolioRepo()

	item, err := repo.Create(ctx, &PortfolioItem{
		UserEmail:   "asha@example.com",
		Title:       "Science fair robot",
		Description: "Line-following robot, first place regional",
		Category:    "project",
		FileURL:     "file:///tmp/robot.pdf",
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := repo.ListByUser(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Science fair robot" {
		t.Errorf("items = %+v", items)
	}

	if err := repo.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "question-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}

	// Sequences are monotonically increasing.
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}

	limited, err := repo.QueryLLMRequests(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited events = %d, want 2", len(limited))
	}
}

func TestEventLookupAndUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	data := []LLMRequestEventData{
		{Provider: "mock", Model: "mock-a", Purpose: "question-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 20, Success: true},
		{Provider: "mock", Model: "mock-a", Purpose: "question-gen", InputTokens: 200, OutputTokens: 60, LatencyMs: 40, Success: true},
		{Provider: "mock", Model: "mock-b", Purpose: "scoring", InputTokens: 50, OutputTokens: 10, LatencyMs: 30, Success: false},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got, err := repo.GetLLMRequest(ctx, events[1].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.InputTokens != 200 {
		t.Fatalf("got = %+v, want the 200-token event", got)
	}

	missing, err := repo.GetLLMRequest(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := make(map[string]LLMUsage, len(byPurpose))
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	if u := usage["question-gen"]; u.Calls != 2 || u.InputTokens != 300 || u.OutputTokens != 100 {
		t.Errorf("question-gen usage = %+v", u)
	}
	if u := usage["scoring"]; u.Calls != 1 || u.InputTokens != 50 {
		t.Errorf("scoring usage = %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]LLMModelUsage, len(byModel))
	for _, u := range byModel {
		models[u.Model] = u
	}
	if u := models["mock-a"]; u.Calls != 2 || u.InputTokens != 300 {
		t.Errorf("mock-a usage = %+v", u)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profiles", "assessments", "assessment_results", "goals", "portfolio_items"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
