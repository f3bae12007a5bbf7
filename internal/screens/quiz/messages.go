package quiz

import (
	"time"

	"github.com/adit/pathwise/internal/assessment"
	"github.com/adit/pathwise/internal/store"
)

// questionsReadyMsg is sent when the question set has been generated.
type questionsReadyMsg struct {
	Questions []assessment.Question
}

// submitDoneMsg is sent when the scoring/persistence pipeline finishes.
type submitDoneMsg struct {
	Result *store.Result
	Err    error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
