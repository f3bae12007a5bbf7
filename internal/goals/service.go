// Package goals manages user goals and AI goal suggestions.
package goals

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
)

// Categories are the allowed goal categories, in display order.
var Categories = []string{"academic", "skill_development", "personal_growth", "career"}

// Statuses a goal can be in.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Suggestion is one AI-proposed goal, not yet persisted.
type Suggestion struct {
	Title       string
	Description string
	Category    string
}

// Service manages goals for the local user.
type Service struct {
	provider llm.Provider
	goals    store.GoalRepo
	profiles *profile.Service
}

// NewService creates a goals Service.
func NewService(provider llm.Provider, goals store.GoalRepo, profiles *profile.Service) *Service {
	return &Service{provider: provider, goals: goals, profiles: profiles}
}

// Add creates a goal for the current user.
func (s *Service) Add(ctx context.Context, title, description, category, dueDate string) (*store.Goal, error) {
	if title == "" {
		return nil, fmt.Errorf("goal title must not be empty")
	}
	if !validCategory(category) {
		return nil, fmt.Errorf("unknown goal category %q", category)
	}
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}
	return s.goals.Create(ctx, &store.Goal{
		UserEmail:   p.Email,
		Title:       title,
		Description: description,
		Category:    category,
		DueDate:     dueDate,
		Status:      StatusInProgress,
	})
}

// List returns the current user's goals.
func (s *Service) List(ctx context.Context) ([]*store.Goal, error) {
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}
	return s.goals.ListByUser(ctx, p.Email)
}

// Complete marks a goal completed.
func (s *Service) Complete(ctx context.Context, id int) error {
	return s.goals.SetStatus(ctx, id, StatusCompleted)
}

// Reopen returns a completed goal to in-progress.
func (s *Service) Reopen(ctx context.Context, id int) error {
	return s.goals.SetStatus(ctx, id, StatusInProgress)
}

// Delete removes a goal.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.goals.Delete(ctx, id)
}

// Suggest asks the LLM for 3-4 actionable goals aimed at the user's selected
// career path. The suggestions are returned for review, not persisted.
func (s *Service) Suggest(ctx context.Context) ([]Suggestion, error) {
	p, err := s.profiles.Me(ctx)
	if err != nil {
		return nil, err
	}
	if p.SelectedCareerPath == nil || p.SelectedCareerPath.Field == "" {
		return nil, fmt.Errorf("select a career path before requesting goal suggestions")
	}

	ctx = llm.WithPurpose(ctx, "goal-suggest")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:    buildSuggestPrompt(p.SelectedCareerPath.Field, p.AcademicInfo.EducationStatus, p.PersonalBackground.Age),
		Schema:    SuggestionSchema,
		MaxTokens: 2048,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest goals: %w", err)
	}

	var raw struct {
		SuggestedGoals []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Category    string `json:"category"`
		} `json:"suggested_goals"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(raw.SuggestedGoals))
	for _, g := range raw.SuggestedGoals {
		if !validCategory(g.Category) {
			// Schema enum should prevent this; route strays somewhere visible.
			g.Category = "personal_growth"
		}
		suggestions = append(suggestions, Suggestion{
			Title:       g.Title,
			Description: g.Description,
			Category:    g.Category,
		})
	}
	return suggestions, nil
}

// Adopt persists a suggestion as a real goal.
func (s *Service) Adopt(ctx context.Context, sug Suggestion, dueDate string) (*store.Goal, error) {
	return s.Add(ctx, sug.Title, sug.Description, sug.Category, dueDate)
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func buildSuggestPrompt(careerPath, educationStatus string, age int) string {
	if educationStatus == "" {
		educationStatus = "high_school_graduate"
	}
	if age <= 0 {
		age = 18
	}
	return fmt.Sprintf(
		"Based on a user's goal of pursuing a career in %q, their current status as %s, and their age of %d, generate 3-4 specific and actionable goals.\nCategorize each goal as 'academic', 'skill_development', or 'career'.\nEach description should briefly explain why the goal matters for %s.",
		careerPath, educationStatus, age, careerPath)
}

// SuggestionSchema is the JSON Schema for goal suggestions.
var SuggestionSchema = &llm.Schema{
	Name:        "goal-suggestions",
	Description: "Actionable goals aimed at a chosen career path.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggested_goals": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"category": map[string]any{
							"type": "string",
							"enum": []string{"academic", "skill_development", "personal_growth", "career"},
						},
					},
					"required": []string{"title", "description", "category"},
				},
			},
		},
		"required": []string{"suggested_goals"},
	},
}
