package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/router"
	"github.com/nadavh/skillscope/internal/screen"
	"github.com/nadavh/skillscope/internal/session"
)

type stubScreen struct{}

func (s stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s stubScreen) View(int, int) string                    { return "" }
func (s stubScreen) Title() string                           { return "stub" }

func sampleResult() *api.AssessmentResult {
	return &api.AssessmentResult{
		CategoryScores: []api.CategoryScore{
			{Category: "Leadership", Score: 4.5, QuestionCount: 8},
			{Category: "Teamwork", Score: 3.2, QuestionCount: 8},
			{Category: "Problem Solving", Score: 3.0, QuestionCount: 0},
		},
		AISummary:            "A thoughtful summary.",
		TopStrengths:         []string{"Leadership", "Teamwork"},
		GrowthRecommendation: "Take on a mentoring role.",
	}
}

func testResults(degraded bool) (*ResultsScreen, *session.Session) {
	sess := session.New(false)
	sess.Result = sampleResult()
	sess.Degraded = degraded
	r := New(sess, func() screen.Screen { return stubScreen{} })
	return r, sess
}

func TestResults_ViewShowsStrengthsAndNarrative(t *testing.T) {
	r, _ := testResults(false)
	view := r.View(100, 40)

	for _, want := range []string{"Leadership", "Teamwork", "A thoughtful summary.", "mentoring"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, DegradedNotice) {
		t.Error("degraded notice shown for a clean result")
	}
}

func TestResults_DegradedAdvisoryShown(t *testing.T) {
	r, _ := testResults(true)
	if !strings.Contains(r.View(100, 40), DegradedNotice) {
		t.Error("degraded notice missing")
	}
}

func TestResults_SynthesizesNarrativeWhenSummaryEmpty(t *testing.T) {
	r, sess := testResults(true)
	sess.Result.AISummary = ""
	sess.Result.TopStrengths = nil
	sess.Result.GrowthRecommendation = ""

	// Single words only: the narrative block wraps at the style width.
	view := r.View(100, 40)
	for _, want := range []string{"strongest", "Leadership"} {
		if !strings.Contains(view, want) {
			t.Errorf("fallback narrative missing %q", want)
		}
	}
}

func TestResults_NoResultPlaceholder(t *testing.T) {
	sess := session.New(false)
	r := New(sess, nil)
	if !strings.Contains(r.View(80, 24), "No results yet") {
		t.Error("placeholder missing when result is nil")
	}
}

func TestResults_RestartResetsAndReplaces(t *testing.T) {
	r, sess := testResults(false)
	if err := sess.Answers.Set(1, 5); err != nil {
		t.Fatal(err)
	}

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if sess.Answers.Count() != 0 || sess.Result != nil || sess.Degraded {
		t.Error("assessment state not reset")
	}
}

func TestResults_EscPops(t *testing.T) {
	r, _ := testResults(false)
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestTopScores_PrefersBackendOrder(t *testing.T) {
	top := topScores(sampleResult(), 3)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2 (backend named two)", len(top))
	}
	if top[0].Category != "Leadership" || top[1].Category != "Teamwork" {
		t.Errorf("order = %v", top)
	}
}

func TestTopScores_SkipsUnscoredBackendNames(t *testing.T) {
	result := sampleResult()
	result.TopStrengths = []string{"Ghost Category", "Leadership"}

	top := topScores(result, 3)
	if len(top) != 1 || top[0].Category != "Leadership" {
		t.Fatalf("top = %v, want just Leadership", top)
	}
}

func TestTopScores_FallsBackWhenNoBackendNameMatches(t *testing.T) {
	result := sampleResult()
	result.TopStrengths = []string{"Ghost Category"}

	top := topScores(result, 2)
	if len(top) != 2 || top[0].Category != "Leadership" || top[1].Category != "Teamwork" {
		t.Errorf("top = %v, want local ranking", top)
	}
}

func TestTopScores_RanksLocallyWithoutBackendList(t *testing.T) {
	result := sampleResult()
	result.TopStrengths = nil
	top := topScores(result, 2)
	if len(top) != 2 || top[0].Category != "Leadership" || top[1].Category != "Teamwork" {
		t.Errorf("top = %v", top)
	}
}
