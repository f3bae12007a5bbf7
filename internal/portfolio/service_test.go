package portfolio

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
	"github.com/adit/pathwise/internal/upload"
)

func newPortfolioFixture(t *testing.T, mock *llm.MockProvider) (*Service, *profile.Service) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	profiles := profile.NewService(s.ProfileRepo(), s.AssessmentRepo())
	if _, err := profiles.SaveOnboarding(context.Background(), profile.Onboarding{
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
		AcademicInfo: schema.AcademicInfo{EducationStatus: "university_student"},
	}); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	uploader, err := upload.NewLocalUploader(t.TempDir())
	if err != nil {
		t.Fatalf("new uploader: %v", err)
	}
	return NewService(mock, s.PortfolioRepo(), uploader, profiles), profiles
}

func TestAddAndListItems(t *testing.T) {
	svc, _ := newPortfolioFixture(t, llm.NewMockProvider())
	ctx := context.Background()

	item, err := svc.Add(ctx, NewItem{
		Title:       "Science Fair Project",
		Description: "Built a weather station.",
		Category:    "project",
		Date:        "2026-05-01",
		Link:        "https://example.com/project",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.FileURL != "" {
		t.Errorf("file url = %q, want empty without attachment", item.FileURL)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Science Fair Project" {
		t.Errorf("listed = %+v", listed)
	}

	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, _ = svc.List(ctx)
	if len(listed) != 0 {
		t.Errorf("items remain after delete: %+v", listed)
	}
}

func TestAddWithAttachment(t *testing.T) {
	svc, _ := newPortfolioFixture(t, llm.NewMockProvider())

	item, err := svc.Add(context.Background(), NewItem{
		Title:          "Design Portfolio",
		Category:       "project",
		Attachment:     strings.NewReader("pdf bytes"),
		AttachmentName: "portfolio.pdf",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.HasPrefix(item.FileURL, "file://") {
		t.Errorf("file url = %q, want file:// URL", item.FileURL)
	}
	if !strings.HasSuffix(item.FileURL, "-portfolio.pdf") {
		t.Errorf("file url = %q, want original name preserved", item.FileURL)
	}
}

func TestAddValidation(t *testing.T) {
	svc, _ := newPortfolioFixture(t, llm.NewMockProvider())
	ctx := context.Background()

	if _, err := svc.Add(ctx, NewItem{Category: "project"}); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := svc.Add(ctx, NewItem{Title: "T", Category: "hobby"}); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestChecklistRequiresCareerPath(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, _ := newPortfolioFixture(t, mock)

	if _, err := svc.Checklist(context.Background()); err == nil {
		t.Fatal("expected error without a selected career path")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times without a career path", mock.CallCount())
	}
}

func TestChecklistIsWebGrounded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"checklist": [
				{"item": "Project Case Studies", "description": "Show end-to-end problem solving."},
				{"item": "Open Source Contributions", "description": "Demonstrate collaboration."},
				{"item": "Technical Blog", "description": "Communicate ideas clearly."},
				{"item": "Deployed Applications", "description": "Prove shipping ability."},
				{"item": "Code Samples", "description": "Evidence of craft."}
			]
		}`),
	})
	svc, profiles := newPortfolioFixture(t, mock)
	ctx := context.Background()

	if _, err := profiles.SelectCareerPath(ctx, "Software Engineering"); err != nil {
		t.Fatalf("select path: %v", err)
	}

	items, err := svc.Checklist(ctx)
	if err != nil {
		t.Fatalf("checklist: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5", len(items))
	}
	if items[0].Item != "Project Case Studies" {
		t.Errorf("first item = %+v", items[0])
	}

	req := mock.Calls[0]
	if !req.WebContext {
		t.Error("checklist request must ask for web grounding")
	}
	if !strings.Contains(req.Prompt, `"Software Engineering"`) {
		t.Errorf("checklist prompt missing field: %q", req.Prompt)
	}
}

func TestChecklistToleratesEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"checklist": []}`),
	})
	svc, profiles := newPortfolioFixture(t, mock)
	ctx := context.Background()

	if _, err := profiles.SelectCareerPath(ctx, "Creative Arts & Design"); err != nil {
		t.Fatalf("select path: %v", err)
	}
	items, err := svc.Checklist(ctx)
	if err != nil {
		t.Fatalf("checklist: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %+v, want empty", items)
	}
}
