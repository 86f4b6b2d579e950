// Package dashboard shows the employee's best position matches.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/router"
	"github.com/nadavh/skillscope/internal/screen"
	"github.com/nadavh/skillscope/internal/session"
	"github.com/nadavh/skillscope/internal/ui/components"
	"github.com/nadavh/skillscope/internal/ui/layout"
	"github.com/nadavh/skillscope/internal/ui/theme"
)

// topMatchCount is how many match cards the dashboard shows.
const topMatchCount = 3

var scanStatuses = []string{
	"Scanning your skills profile...",
	"Comparing against open positions...",
	"Ranking the best fits...",
}

const scanInterval = 700 * time.Millisecond

// matchesLoadedMsg delivers the fetch outcome. Matches may be empty on
// error; Err is logged and an empty state is rendered. Employee carries
// a profile fetched along the way so it can be adopted on the event
// loop; the command itself never touches the session.
type matchesLoadedMsg struct {
	Matches  []api.Match
	Employee *api.Employee
	MeErr    error
	Err      error
}

// scanTickMsg animates the scan status line. Purely cosmetic: arrival
// of matchesLoadedMsg always wins.
type scanTickMsg time.Time

// DashboardScreen implements screen.Screen for the dashboard.
type DashboardScreen struct {
	client *api.Client
	sess   *session.Session
	logger *zap.Logger

	scanIdx int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(client *api.Client, sess *session.Session, logger *zap.Logger) *DashboardScreen {
	return &DashboardScreen{client: client, sess: sess, logger: logger}
}

func (d *DashboardScreen) Init() tea.Cmd {
	// The guard prevents a duplicate fetch when the screen is remounted.
	if d.sess.MatchesLoaded {
		return nil
	}
	return tea.Batch(d.fetchMatches(), scanTick())
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Home"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case matchesLoadedMsg:
		if msg.MeErr != nil {
			d.logger.Warn("profile fetch failed", zap.Error(msg.MeErr))
		}
		if msg.Employee != nil {
			d.sess.AdoptEmployee(msg.Employee)
		}
		if msg.Err != nil {
			d.logger.Warn("match fetch failed", zap.Error(msg.Err))
		}
		d.sess.Matches = msg.Matches
		d.sess.MatchesLoaded = true
		return d, nil
	case scanTickMsg:
		if d.sess.MatchesLoaded {
			return d, nil
		}
		d.scanIdx = (d.scanIdx + 1) % len(scanStatuses)
		return d, scanTick()
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

// fetchMatches loads the profile if needed, then the top matches.
// Session state is read here, on the event loop; the returned command
// works only on captured values and reports back via matchesLoadedMsg.
func (d *DashboardScreen) fetchMatches() tea.Cmd {
	client := d.client

	candidateID := ""
	if d.sess.Employee != nil {
		candidateID = d.sess.Employee.ID
	}
	needProfile := candidateID == "" && !d.sess.EmployeeLoaded

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		var employee *api.Employee
		var meErr error
		if needProfile {
			employee, meErr = client.Me(ctx)
			if meErr == nil {
				candidateID = employee.ID
			}
		}
		if candidateID == "" {
			candidateID = "me"
		}

		matches, err := client.TopMatches(ctx, candidateID, topMatchCount)
		return matchesLoadedMsg{Matches: matches, Employee: employee, MeErr: meErr, Err: err}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	if !d.sess.MatchesLoaded {
		return d.renderScanning(width)
	}
	return d.renderMatches(width)
}

func (d *DashboardScreen) renderScanning(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Matching in progress"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(scanStatuses[d.scanIdx]))
	return b.String()
}

func (d *DashboardScreen) renderMatches(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Your top matches"))
	b.WriteString("\n\n")

	if len(d.sess.Matches) == 0 {
		card := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				"No matches available right now.\nComplete the assessment to sharpen your profile."))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		return b.String()
	}

	for i, m := range d.sess.Matches {
		if i >= topMatchCount {
			break
		}
		bar := components.ProgressBar{
			Percent:     m.Score / 100,
			ShowPercent: true,
			Width:       min(width-20, 50),
			Color:       theme.MatchColor(m.Score),
		}
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
			fmt.Sprintf("%d. %s", i+1, m.Name))
		card := theme.Card.Render(title + "\n" + bar.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n")
	}

	return b.String()
}

func scanTick() tea.Cmd {
	return tea.Tick(scanInterval, func(t time.Time) tea.Msg {
		return scanTickMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
