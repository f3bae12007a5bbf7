// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adit/pathwise/ent/assessment"
	"github.com/adit/pathwise/ent/assessmentresult"
	"github.com/adit/pathwise/ent/careerfield"
	"github.com/adit/pathwise/ent/goal"
	"github.com/adit/pathwise/ent/llmrequestevent"
	"github.com/adit/pathwise/ent/portfolioitem"
	"github.com/adit/pathwise/ent/profile"
	"github.com/adit/pathwise/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescAssessmentID is the schema descriptor for assessment_id field.
	assessmentDescAssessmentID := assessmentFields[0].Descriptor()
	// assessment.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessment.AssessmentIDValidator = assessmentDescAssessmentID.Validators[0].(func(string) error)
	// assessmentDescTitle is the schema descriptor for title field.
	assessmentDescTitle := assessmentFields[1].Descriptor()
	// assessment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assessment.TitleValidator = assessmentDescTitle.Validators[0].(func(string) error)
	// assessmentDescDescription is the schema descriptor for description field.
	assessmentDescDescription := assessmentFields[3].Descriptor()
	// assessment.DefaultDescription holds the default value on creation for the description field.
	assessment.DefaultDescription = assessmentDescDescription.Default.(string)
	// assessmentDescDurationMinutes is the schema descriptor for duration_minutes field.
	assessmentDescDurationMinutes := assessmentFields[4].Descriptor()
	// assessment.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	assessment.DefaultDurationMinutes = assessmentDescDurationMinutes.Default.(int)
	assessmentresultFields := schema.AssessmentResult{}.Fields()
	_ = assessmentresultFields
	// assessmentresultDescAssessmentID is the schema descriptor for assessment_id field.
	assessmentresultDescAssessmentID := assessmentresultFields[0].Descriptor()
	// assessmentresult.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentresult.AssessmentIDValidator = assessmentresultDescAssessmentID.Validators[0].(func(string) error)
	// assessmentresultDescUserEmail is the schema descriptor for user_email field.
	assessmentresultDescUserEmail := assessmentresultFields[1].Descriptor()
	// assessmentresult.UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	assessmentresult.UserEmailValidator = assessmentresultDescUserEmail.Validators[0].(func(string) error)
	// assessmentresultDescCompletionTimeMinutes is the schema descriptor for completion_time_minutes field.
	assessmentresultDescCompletionTimeMinutes := assessmentresultFields[5].Descriptor()
	// assessmentresult.DefaultCompletionTimeMinutes holds the default value on creation for the completion_time_minutes field.
	assessmentresult.DefaultCompletionTimeMinutes = assessmentresultDescCompletionTimeMinutes.Default.(int)
	careerfieldFields := schema.CareerField{}.Fields()
	_ = careerfieldFields
	// careerfieldDescTitle is the schema descriptor for title field.
	careerfieldDescTitle := careerfieldFields[0].Descriptor()
	// careerfield.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	careerfield.TitleValidator = careerfieldDescTitle.Validators[0].(func(string) error)
	// careerfieldDescCategory is the schema descriptor for category field.
	careerfieldDescCategory := careerfieldFields[1].Descriptor()
	// careerfield.DefaultCategory holds the default value on creation for the category field.
	careerfield.DefaultCategory = careerfieldDescCategory.Default.(string)
	// careerfieldDescDescription is the schema descriptor for description field.
	careerfieldDescDescription := careerfieldFields[2].Descriptor()
	// careerfield.DefaultDescription holds the default value on creation for the description field.
	careerfield.DefaultDescription = careerfieldDescDescription.Default.(string)
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescUserEmail is the schema descriptor for user_email field.
	goalDescUserEmail := goalFields[0].Descriptor()
	// goal.UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	goal.UserEmailValidator = goalDescUserEmail.Validators[0].(func(string) error)
	// goalDescTitle is the schema descriptor for title field.
	goalDescTitle := goalFields[1].Descriptor()
	// goal.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	goal.TitleValidator = goalDescTitle.Validators[0].(func(string) error)
	// goalDescDescription is the schema descriptor for description field.
	goalDescDescription := goalFields[2].Descriptor()
	// goal.DefaultDescription holds the default value on creation for the description field.
	goal.DefaultDescription = goalDescDescription.Default.(string)
	// goalDescDueDate is the schema descriptor for due_date field.
	goalDescDueDate := goalFields[4].Descriptor()
	// goal.DefaultDueDate holds the default value on creation for the due_date field.
	goal.DefaultDueDate = goalDescDueDate.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	portfolioitemFields := schema.PortfolioItem{}.Fields()
	_ = portfolioitemFields
	// portfolioitemDescUserEmail is the schema descriptor for user_email field.
	portfolioitemDescUserEmail := portfolioitemFields[0].Descriptor()
	// portfolioitem.UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	portfolioitem.UserEmailValidator = portfolioitemDescUserEmail.Validators[0].(func(string) error)
	// portfolioitemDescTitle is the schema descriptor for title field.
	portfolioitemDescTitle := portfolioitemFields[1].Descriptor()
	// portfolioitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	portfolioitem.TitleValidator = portfolioitemDescTitle.Validators[0].(func(string) error)
	// portfolioitemDescDescription is the schema descriptor for description field.
	portfolioitemDescDescription := portfolioitemFields[2].Descriptor()
	// portfolioitem.DefaultDescription holds the default value on creation for the description field.
	portfolioitem.DefaultDescription = portfolioitemDescDescription.Default.(string)
	// portfolioitemDescDate is the schema descriptor for date field.
	portfolioitemDescDate := portfolioitemFields[4].Descriptor()
	// portfolioitem.DefaultDate holds the default value on creation for the date field.
	portfolioitem.DefaultDate = portfolioitemDescDate.Default.(string)
	// portfolioitemDescLink is the schema descriptor for link field.
	portfolioitemDescLink := portfolioitemFields[5].Descriptor()
	// portfolioitem.DefaultLink holds the default value on creation for the link field.
	portfolioitem.DefaultLink = portfolioitemDescLink.Default.(string)
	// portfolioitemDescFileURL is the schema descriptor for file_url field.
	portfolioitemDescFileURL := portfolioitemFields[6].Descriptor()
	// portfolioitem.DefaultFileURL holds the default value on creation for the file_url field.
	portfolioitem.DefaultFileURL = portfolioitemDescFileURL.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[0].Descriptor()
	// profile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	profile.EmailValidator = profileDescEmail.Validators[0].(func(string) error)
	// profileDescFullName is the schema descriptor for full_name field.
	profileDescFullName := profileFields[1].Descriptor()
	// profile.DefaultFullName holds the default value on creation for the full_name field.
	profile.DefaultFullName = profileDescFullName.Default.(string)
	// profileDescIsMentor is the schema descriptor for is_mentor field.
	profileDescIsMentor := profileFields[7].Descriptor()
	// profile.DefaultIsMentor holds the default value on creation for the is_mentor field.
	profile.DefaultIsMentor = profileDescIsMentor.Default.(bool)
	// profileDescVersion is the schema descriptor for version field.
	profileDescVersion := profileFields[8].Descriptor()
	// profile.DefaultVersion holds the default value on creation for the version field.
	profile.DefaultVersion = profileDescVersion.Default.(int64)
}
