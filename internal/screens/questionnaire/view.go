package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nadavh/skillscope/internal/ui/components"
	"github.com/nadavh/skillscope/internal/ui/theme"
)

func (q *QuestionnaireScreen) View(width, height int) string {
	if q.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading questions...")
	}
	if q.analyzing {
		return q.renderAnalyzing(width)
	}
	return q.renderPage(width)
}

func (q *QuestionnaireScreen) renderPage(width int) string {
	var b strings.Builder

	// Progress header.
	page := q.paginator.Page() + 1
	total := q.paginator.TotalPages()
	answered := q.sess.Answers.Count()

	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Page %d of %d", page, total))
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d answered", answered))

	gap := width - lipgloss.Width(header) - lipgloss.Width(counter) - 4
	if gap < 1 {
		gap = 1
	}
	b.WriteString(header + strings.Repeat(" ", gap) + counter)
	b.WriteString("\n")

	progress := components.NewProgressBar("", float64(answered)/float64(max(q.total, 1)), false, width-8)
	b.WriteString("  " + progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Likert rows.
	for _, row := range q.rows {
		b.WriteString("  " + strings.ReplaceAll(row.View(width-4), "\n", "\n  "))
		b.WriteString("\n\n")
	}

	// Inline validation message.
	if q.inlineMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + q.inlineMsg))
		b.WriteString("\n\n")
	}

	// Nav controls.
	b.WriteString("  " + q.renderControls())
	return b.String()
}

func (q *QuestionnaireScreen) renderControls() string {
	nextLabel := "Next"
	if q.paginator.IsLast() {
		nextLabel = "Submit"
	}

	focused := q.focus == len(q.rows)

	var parts []string
	if !q.paginator.IsFirst() {
		parts = append(parts, theme.ButtonInactive.Render("< Back"))
	}
	if focused {
		parts = append(parts, theme.ButtonActive.Render(nextLabel+" >"))
	} else {
		parts = append(parts, theme.ButtonInactive.Render(nextLabel+" >"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

func (q *QuestionnaireScreen) renderAnalyzing(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Analyzing your answers"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(analyzeStatuses[q.statusIdx]))
	b.WriteString("\n\n")

	dots := strings.Repeat("·", q.statusIdx+1)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(dots))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
