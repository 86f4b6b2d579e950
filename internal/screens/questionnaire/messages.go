package questionnaire

import (
	"time"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/assessment"
)

// questionsLoadedMsg is sent when the question fetch completes. Err is
// non-nil when the backend was unreachable; the screen then falls back
// to the built-in bank.
type questionsLoadedMsg struct {
	Questions []assessment.Question
	Err       error
}

// analyzeTickMsg advances the analyzing status line. It is cosmetic
// only and never gates leaving the analyzing stage.
type analyzeTickMsg time.Time

// submitDoneMsg is sent when the submission round-trip finishes.
type submitDoneMsg struct {
	Result *api.AssessmentResult
	Err    error
}
