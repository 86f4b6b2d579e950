// Package results renders the assessment outcome: strengths, category
// scores and the analysis narrative.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/assessment"
	"github.com/nadavh/skillscope/internal/router"
	"github.com/nadavh/skillscope/internal/screen"
	"github.com/nadavh/skillscope/internal/session"
	"github.com/nadavh/skillscope/internal/ui/components"
	"github.com/nadavh/skillscope/internal/ui/layout"
	"github.com/nadavh/skillscope/internal/ui/theme"
)

// DegradedNotice is shown under locally computed results.
const DegradedNotice = "Analysis service unavailable. Showing locally computed scores."

// ResultsScreen implements screen.Screen for the results view.
type ResultsScreen struct {
	sess    *session.Session
	restart func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. restart builds a fresh questionnaire
// screen when the user retakes the assessment.
func New(sess *session.Session, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{sess: sess, restart: restart}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Your Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Retake"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		r.sess.ResetAssessment()
		if r.restart == nil {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
		next := r.restart()
		return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "esc", "enter":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	result := r.sess.Result
	if result == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No results yet. Complete the assessment first.")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment complete!"))
	b.WriteString("\n\n")

	// Top strengths with bars.
	top := topScores(result, 3)
	if len(top) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Top strengths"))
		b.WriteString("\n\n")
		for i, cs := range top {
			bar := components.ProgressBar{
				Label:   fmt.Sprintf("%d. %-16s", i+1, cs.Category),
				Percent: cs.Score / float64(assessment.MaxScore),
				Width:   min(width-16, 60),
				Color:   theme.MatchColor(cs.Score / float64(assessment.MaxScore) * 100),
			}
			line := fmt.Sprintf("  %s  %.1f", bar.View(), cs.Score)
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// All categories. Zero-count rows are neutral placeholders and
	// rendered dimmed.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  All categories"))
	b.WriteString("\n\n")
	for _, cs := range result.CategoryScores {
		line := fmt.Sprintf("  %-18s %.2f  (%d answered)", cs.Category, cs.Score, cs.QuestionCount)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if cs.QuestionCount == 0 {
			style = theme.Dimmed
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Narrative. When the backend supplied no analysis the screen
	// synthesizes one from the category scores.
	narrative := result.AISummary
	if narrative == "" {
		narrative = assessment.FallbackNarrative(localScores(result))
	}
	narrativeStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Left,
		"  "+strings.ReplaceAll(narrativeStyle.Render(narrative), "\n", "\n  ")))
	b.WriteString("\n")

	if result.GrowthRecommendation != "" {
		b.WriteString("\n")
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("Growth: ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(result.GrowthRecommendation))
		b.WriteString("\n")
	}

	if r.sess.Degraded {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true).
			Render("  " + DegradedNotice))
		b.WriteString("\n")
	}

	return b.String()
}

// topScores picks the highest n category scores, preferring the
// backend's own strengths order when it provided one. Backend names
// with no matching score entry are skipped rather than shown as 0.0;
// if none match, the local ranking takes over.
func topScores(result *api.AssessmentResult, n int) []api.CategoryScore {
	byName := make(map[string]api.CategoryScore, len(result.CategoryScores))
	for _, cs := range result.CategoryScores {
		byName[cs.Category] = cs
	}

	if len(result.TopStrengths) > 0 {
		out := make([]api.CategoryScore, 0, n)
		for _, name := range result.TopStrengths {
			cs, ok := byName[name]
			if !ok {
				continue
			}
			out = append(out, cs)
			if len(out) == n {
				break
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	top := assessment.TopStrengths(localScores(result), n)
	out := make([]api.CategoryScore, 0, len(top))
	for _, cs := range top {
		out = append(out, api.CategoryScore{
			Category:      cs.Category,
			Score:         cs.Score,
			QuestionCount: cs.QuestionCount,
		})
	}
	return out
}

// localScores converts the wire scores into the domain type used by
// the ranking and narrative helpers.
func localScores(result *api.AssessmentResult) []assessment.CategoryScore {
	scores := make([]assessment.CategoryScore, 0, len(result.CategoryScores))
	for _, cs := range result.CategoryScores {
		scores = append(scores, assessment.CategoryScore{
			Category:      cs.Category,
			Score:         cs.Score,
			QuestionCount: cs.QuestionCount,
		})
	}
	return scores
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
