package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nadavh/skillscope/internal/ui/theme"
)

// ScaleLabels are the agreement labels for scores 1..5, indexed by
// score-1.
var ScaleLabels = [5]string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

// LikertRow is a single 1-5 agreement selector for one statement.
type LikertRow struct {
	Statement string
	Score     int // 0 means unanswered
	Focused   bool
	hovered   int // provisional selection while focused, 1..5
}

// NewLikertRow creates a row for the given statement. A previously
// chosen score (0 if none) is restored so navigating back shows the
// earlier answer.
func NewLikertRow(statement string, score int) LikertRow {
	hovered := score
	if hovered == 0 {
		hovered = 3
	}
	return LikertRow{
		Statement: statement,
		Score:     score,
		hovered:   hovered,
	}
}

// Answered reports whether the row has a committed score.
func (l LikertRow) Answered() bool {
	return l.Score > 0
}

// Update handles keys while the row is focused. Digits commit
// immediately; left/right move the provisional choice and enter or
// space commits it. The second return value is true when a score was
// just committed.
func (l LikertRow) Update(msg tea.Msg) (LikertRow, bool) {
	if !l.Focused {
		return l, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, false
	}

	switch key := kmsg.String(); key {
	case "1", "2", "3", "4", "5":
		l.Score = int(key[0] - '0')
		l.hovered = l.Score
		return l, true
	case "left", "h":
		if l.hovered > 1 {
			l.hovered--
		}
	case "right":
		if l.hovered < 5 {
			l.hovered++
		}
	case "enter", "space":
		l.Score = l.hovered
		return l, true
	}
	return l, false
}

// View renders the statement and its five score cells.
func (l LikertRow) View(width int) string {
	stmtStyle := lipgloss.NewStyle().Foreground(theme.Text)
	marker := "  "
	if l.Focused {
		stmtStyle = stmtStyle.Bold(true)
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ")
	}

	var cells []string
	for score := 1; score <= 5; score++ {
		cell := fmt.Sprintf("(%d)", score)
		switch {
		case score == l.Score:
			cell = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("[%d]", score))
		case l.Focused && score == l.hovered:
			cell = lipgloss.NewStyle().Foreground(theme.Primary).Render(fmt.Sprintf("(%d)", score))
		default:
			cell = lipgloss.NewStyle().Foreground(theme.TextDim).Render(cell)
		}
		cells = append(cells, cell)
	}

	scale := strings.Join(cells, " ")
	if l.Focused {
		label := ScaleLabels[l.hovered-1]
		if l.Score > 0 {
			label = ScaleLabels[l.Score-1]
		}
		scale += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(label)
	}

	return marker + stmtStyle.Render(truncate(l.Statement, width-4)) + "\n    " + scale
}

func truncate(s string, limit int) string {
	if limit <= 3 || len([]rune(s)) <= limit {
		return s
	}
	return string([]rune(s)[:limit-3]) + "..."
}
