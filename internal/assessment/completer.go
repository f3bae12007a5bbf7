package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
)

// Completer scores a submitted session, persists the result, and marks the
// assessment completed on the profile.
type Completer struct {
	analyzer *Analyzer
	results  store.ResultRepo
	profiles *profile.Service
}

// NewCompleter creates a Completer.
func NewCompleter(analyzer *Analyzer, results store.ResultRepo, profiles *profile.Service) *Completer {
	return &Completer{analyzer: analyzer, results: results, profiles: profiles}
}

// Complete runs the submission pipeline for a session in the submitting
// phase. A scoring failure degrades to an empty analysis rather than losing
// the responses; a duplicate result aborts before the profile is touched.
// The session's phase transition is the caller's job: CompleteSubmit on
// success, FailSubmit on error.
func (c *Completer) Complete(ctx context.Context, sess *Session) (*store.Result, error) {
	if sess.Phase != PhaseSubmitting {
		return nil, fmt.Errorf("complete: not allowed in phase %s", sess.Phase)
	}

	p, err := c.profiles.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	age := p.PersonalBackground.Age
	if age <= 0 {
		age = defaultAge
	}

	analysis, err := c.analyzer.Analyze(ctx, AnalyzeInput{
		Title:        sess.Definition.Title,
		ContextLabel: profile.ContextLabel(age),
		Questions:    sess.Questions,
		Responses:    sess.Responses,
	})
	if err != nil {
		// The quiz answers are worth more than the scores. Store the
		// result with an empty analysis instead of failing the submit.
		analysis = &Analysis{Scores: Scores{}}
	}

	responses := make([]schema.QuestionResponse, len(sess.Responses))
	for i, r := range sess.Responses {
		responses[i] = schema.QuestionResponse{
			QuestionIndex: r.QuestionIndex,
			Answer:        r.Answer,
		}
	}

	created, err := c.results.Create(ctx, &store.Result{
		AssessmentID: sess.Definition.ID,
		UserEmail:    p.Email,
		Responses:    responses,
		Scores:       analysis.Scores,
		Insights: &schema.ResultInsights{
			PrimaryTraits:    analysis.Insights.PrimaryTraits,
			Strengths:        analysis.Insights.Strengths,
			DevelopmentAreas: analysis.Insights.DevelopmentAreas,
			Summary:          analysis.Insights.Summary,
		},
		CompletionTimeMinutes: sess.CompletionMinutes(time.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}

	if _, err := c.profiles.RecordCompletedAssessment(ctx, sess.Definition.ID); err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}
	return created, nil
}
