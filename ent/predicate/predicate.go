// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// AssessmentResult is the predicate function for assessmentresult builders.
type AssessmentResult func(*sql.Selector)

// CareerField is the predicate function for careerfield builders.
type CareerField func(*sql.Selector)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PortfolioItem is the predicate function for portfolioitem builders.
type PortfolioItem func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
