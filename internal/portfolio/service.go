// Package portfolio manages portfolio items and the AI portfolio checklist.
package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
	"github.com/adit/pathwise/internal/upload"
)

// Categories are the allowed portfolio item categories, in display order.
var Categories = []string{"project", "achievement", "experience", "skill"}

// ChecklistItem is one web-grounded portfolio-building recommendation.
type ChecklistItem struct {
	Item        string
	Description string
}

// NewItem carries the fields for a portfolio item to add.
type NewItem struct {
	Title       string
	Description string
	Category    string
	Date        string
	Link        string

	// Attachment, when set, is uploaded and its URL stored on the item.
	Attachment io.Reader

	// AttachmentName is the original filename of the attachment.
	AttachmentName string
}

// Service manages portfolio items for the local user.
type Service struct {
	provider llm.Provider
	items    store.PortfolioRepo
	uploader upload.Uploader
	profiles *profile.Service
}

// NewService creates a portfolio Service. uploader may be nil when the app
// runs without an upload backend; adding attachments then fails cleanly.
func NewService(provider llm.Provider, items store.PortfolioRepo, uploader upload.Uploader, profiles *profile.Service) *Service {
	return &Service{provider: provider, items: items, uploader: uploader, profiles: profiles}
}

// Add creates a portfolio item, uploading the attachment first if present.
func (s *Service) Add(ctx context.Context, item NewItem) (*store.PortfolioItem, error) {
	if item.Title == "" {
		return nil, fmt.Errorf("portfolio item title must not be empty")
	}
	if !validCategory(item.Category) {
		return nil, fmt.Errorf("unknown portfolio category %q", item.Category)
	}
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}

	fileURL := ""
	if item.Attachment != nil {
		if s.uploader == nil {
			return nil, fmt.Errorf("no upload backend configured")
		}
		fileURL, err = s.uploader.Upload(ctx, item.AttachmentName, item.Attachment)
		if err != nil {
			return nil, fmt.Errorf("upload attachment: %w", err)
		}
	}

	return s.items.Create(ctx, &store.PortfolioItem{
		UserEmail:   p.Email,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Date:        item.Date,
		Link:        item.Link,
		FileURL:     fileURL,
	})
}

// List returns the current user's portfolio items.
func (s *Service) List(ctx context.Context) ([]*store.PortfolioItem, error) {
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}
	return s.items.ListByUser(ctx, p.Email)
}

// Delete removes a portfolio item.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.items.Delete(ctx, id)
}

// Checklist asks the LLM, with web grounding, what a strong portfolio for
// the user's selected career path contains. Returns 5-6 items; an empty
// model response yields an empty list rather than an error.
func (s *Service) Checklist(ctx context.Context) ([]ChecklistItem, error) {
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}
	if p.SelectedCareerPath == nil || p.SelectedCareerPath.Field == "" {
		return nil, fmt.Errorf("select a career path before requesting a portfolio checklist")
	}
	field := p.SelectedCareerPath.Field

	ctx = llm.WithPurpose(ctx, "checklist")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt: fmt.Sprintf(
			"A user wants to build a portfolio for a career in %q. What are 5-6 essential components of a strong portfolio for this specific field?\nFor each component, briefly explain what it is and why it matters for a %s role.",
			field, field),
		Schema:     ChecklistSchema,
		WebContext: true,
		MaxTokens:  2048,
	})
	if err != nil {
		return nil, fmt.Errorf("generate checklist: %w", err)
	}

	var raw struct {
		Checklist []struct {
			Item        string `json:"item"`
			Description string `json:"description"`
		} `json:"checklist"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("decode checklist: %w", err)
	}

	items := make([]ChecklistItem, 0, len(raw.Checklist))
	for _, c := range raw.Checklist {
		items = append(items, ChecklistItem{Item: c.Item, Description: c.Description})
	}
	return items, nil
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ChecklistSchema is the JSON Schema for portfolio checklists.
var ChecklistSchema = &llm.Schema{
	Name:        "portfolio-checklist",
	Description: "Essential components of a strong portfolio for a career field.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"checklist": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"item":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					},
					"required": []string{"item", "description"},
				},
			},
		},
		"required": []string{"checklist"},
	},
}
