// Package questionnaire implements the paged self-assessment wizard.
package questionnaire

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/assessment"
	"github.com/nadavh/skillscope/internal/router"
	"github.com/nadavh/skillscope/internal/screen"
	"github.com/nadavh/skillscope/internal/screens/results"
	"github.com/nadavh/skillscope/internal/session"
	"github.com/nadavh/skillscope/internal/ui/components"
	"github.com/nadavh/skillscope/internal/ui/layout"
)

// analyzeStatuses cycle in the analyzing stage while the submission is
// in flight.
var analyzeStatuses = []string{
	"Collecting your responses...",
	"Scoring skill categories...",
	"Matching strengths to roles...",
	"Preparing your profile...",
}

const analyzeInterval = 900 * time.Millisecond

// QuestionnaireScreen implements screen.Screen for the assessment flow.
type QuestionnaireScreen struct {
	client *api.Client
	sess   *session.Session
	logger *zap.Logger

	paginator *assessment.Paginator
	total     int
	rows      []components.LikertRow
	focus     int // row index; len(rows) means the nav controls

	loading   bool
	analyzing bool
	statusIdx int
	inlineMsg string
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates a questionnaire screen over the shared session.
func New(client *api.Client, sess *session.Session, logger *zap.Logger) *QuestionnaireScreen {
	return &QuestionnaireScreen{
		client:  client,
		sess:    sess,
		logger:  logger,
		loading: true,
	}
}

func (q *QuestionnaireScreen) Init() tea.Cmd {
	return q.fetchQuestions()
}

func (q *QuestionnaireScreen) Title() string {
	return "Assessment"
}

func (q *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	if q.analyzing {
		return nil
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Answer"},
		{Key: "↑/↓", Description: "Focus"},
		{Key: "n", Description: "Next"},
		{Key: "p", Description: "Back"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (q *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return q.handleQuestionsLoaded(msg)
	case analyzeTickMsg:
		if !q.analyzing {
			return q, nil
		}
		q.statusIdx = (q.statusIdx + 1) % len(analyzeStatuses)
		return q, analyzeTick()
	case submitDoneMsg:
		return q.handleSubmitDone(msg)
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

// fetchQuestions loads the question list from the backend. Any failure
// is reported through questionsLoadedMsg so the screen can fall back to
// the built-in bank.
func (q *QuestionnaireScreen) fetchQuestions() tea.Cmd {
	testMode := q.sess.TestMode
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		remote, err := q.client.Questions(ctx, testMode)
		if err != nil {
			return questionsLoadedMsg{Err: err}
		}
		qs := make([]assessment.Question, 0, len(remote))
		for _, r := range remote {
			qs = append(qs, assessment.Question{ID: r.ID, Category: r.Category, Text: r.Text})
		}
		return questionsLoadedMsg{Questions: qs}
	}
}

func (q *QuestionnaireScreen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	qs := msg.Questions
	if msg.Err != nil || len(qs) == 0 {
		if msg.Err != nil {
			q.logger.Warn("question fetch failed, using built-in bank", zap.Error(msg.Err))
		}
		qs = assessment.ActiveQuestions(q.sess.TestMode)
	}

	q.loading = false
	q.total = len(qs)
	q.paginator = assessment.NewPaginator(qs)
	q.rebuildPage()
	return q, nil
}

func (q *QuestionnaireScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	result := msg.Result
	degraded := false
	if msg.Err != nil {
		q.logger.Warn("submission failed, computing results locally", zap.Error(msg.Err))
		result = q.localResult()
		degraded = true
	}

	q.sess.Result = result
	q.sess.Degraded = degraded

	// Replace rather than push: a submitted questionnaire must not be
	// reachable via back navigation.
	client, sess, logger := q.client, q.sess, q.logger
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(sess, func() screen.Screen {
				return New(client, sess, logger)
			}),
		}
	}
}

func (q *QuestionnaireScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.loading || q.analyzing {
		return q, nil
	}

	key := msg.String()

	// Focused row gets first claim on the key.
	if q.focus < len(q.rows) {
		row, committed := q.rows[q.focus].Update(msg)
		q.rows[q.focus] = row
		if committed {
			return q.commitAnswer(row)
		}
	}

	switch key {
	case "esc":
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if q.focus > 0 {
			q.setFocus(q.focus - 1)
		}
	case "down", "j":
		if q.focus < len(q.rows) {
			q.setFocus(q.focus + 1)
		}
	case "n":
		return q.next()
	case "enter":
		if q.focus == len(q.rows) {
			return q.next()
		}
	case "p":
		q.prev()
	case "left", "h":
		if q.focus == len(q.rows) {
			q.prev()
		}
	case "right":
		if q.focus == len(q.rows) {
			return q.next()
		}
	}
	return q, nil
}

// commitAnswer records the score of a just-committed row and moves
// focus per the paginator's hint.
func (q *QuestionnaireScreen) commitAnswer(row components.LikertRow) (screen.Screen, tea.Cmd) {
	page := q.paginator.CurrentPage()
	if q.focus >= len(page) {
		return q, nil
	}
	question := page[q.focus]
	if err := q.sess.Answers.Set(question.ID, row.Score); err != nil {
		q.logger.Error("answer rejected", zap.Int("question", question.ID), zap.Error(err))
		return q, nil
	}
	q.inlineMsg = ""

	hint := q.paginator.FocusAfterAnswer(question.ID)
	if hint.Controls {
		q.setFocus(len(q.rows))
		return q, nil
	}
	for i, pq := range page {
		if pq.ID == hint.QuestionID {
			q.setFocus(i)
			break
		}
	}
	return q, nil
}

func (q *QuestionnaireScreen) next() (screen.Screen, tea.Cmd) {
	switch q.paginator.Next(q.sess.Answers) {
	case assessment.AdvanceBlocked:
		q.inlineMsg = assessment.IncompletePageMessage
	case assessment.AdvanceNext:
		q.inlineMsg = ""
		q.rebuildPage()
	case assessment.AdvanceSubmit:
		q.analyzing = true
		q.statusIdx = 0
		return q, tea.Batch(q.submit(), analyzeTick())
	}
	return q, nil
}

func (q *QuestionnaireScreen) prev() {
	if q.paginator.Prev() {
		q.inlineMsg = ""
		q.rebuildPage()
	}
}

// submit posts the answers. Both outcomes arrive as submitDoneMsg so
// the analyzing stage can never dead-end.
func (q *QuestionnaireScreen) submit() tea.Cmd {
	answers := q.sess.Answers.Snapshot()
	testMode := q.sess.TestMode
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		result, err := q.client.SubmitAssessment(ctx, answers, testMode)
		return submitDoneMsg{Result: result, Err: err}
	}
}

// localResult computes degraded results from the full bank when the
// backend is unavailable. The AI fields stay empty; the results screen
// synthesizes a narrative and a local ranking from the scores.
func (q *QuestionnaireScreen) localResult() *api.AssessmentResult {
	scores := assessment.ComputeCategoryScores(assessment.Bank(), q.sess.Answers)

	wire := make([]api.CategoryScore, 0, len(scores))
	for _, cs := range scores {
		wire = append(wire, api.CategoryScore{
			Category:      cs.Category,
			Score:         cs.Score,
			QuestionCount: cs.QuestionCount,
		})
	}

	return &api.AssessmentResult{
		SubmittedAt:    time.Now().Format(time.RFC3339),
		CategoryScores: wire,
	}
}

// rebuildPage recreates the Likert rows for the current page, restoring
// recorded scores, and focuses the first unanswered row.
func (q *QuestionnaireScreen) rebuildPage() {
	page := q.paginator.CurrentPage()
	q.rows = make([]components.LikertRow, 0, len(page))
	focus := len(page)
	for i, question := range page {
		score, _ := q.sess.Answers.Get(question.ID)
		q.rows = append(q.rows, components.NewLikertRow(question.Text, score))
		if score == 0 && i < focus {
			focus = i
		}
	}
	if focus > len(q.rows) {
		focus = len(q.rows)
	}
	q.setFocus(focus)
}

func (q *QuestionnaireScreen) setFocus(idx int) {
	q.focus = idx
	for i := range q.rows {
		q.rows[i].Focused = i == idx
	}
}

func analyzeTick() tea.Cmd {
	return tea.Tick(analyzeInterval, func(t time.Time) tea.Msg {
		return analyzeTickMsg(t)
	})
}
