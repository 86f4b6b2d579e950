// Package profile renders the current employee's profile card.
package profile

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

// profileLoadedMsg delivers the fetch outcome.
type profileLoadedMsg struct {
	Employee *api.Employee
	Err      error
}

// ProfileScreen implements screen.Screen for the profile view.
type ProfileScreen struct {
	client  *api.Client
	sess    *session.Session
	logger  *zap.Logger
	loading bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(client *api.Client, sess *session.Session, logger *zap.Logger) *ProfileScreen {
	return &ProfileScreen{client: client, sess: sess, logger: logger}
}

func (p *ProfileScreen) Init() tea.Cmd {
	if p.sess.EmployeeLoaded {
		return nil
	}
	p.loading = true
	client := p.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		e, err := client.Me(ctx)
		return profileLoadedMsg{Employee: e, Err: err}
	}
}

func (p *ProfileScreen) Title() string {
	return "My Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Home"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		p.loading = false
		if msg.Err != nil {
			p.logger.Warn("profile fetch failed", zap.Error(msg.Err))
			p.sess.AdoptEmployee(nil)
			return p, nil
		}
		p.sess.AdoptEmployee(msg.Employee)
		return p, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	if p.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading profile...")
	}

	e := p.sess.Employee
	if e == nil {
		card := theme.Card.Render(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Profile unavailable.\nCheck that the platform API is reachable."))
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
	}

	var b strings.Builder

	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(e.Name)
	title := lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.Title)
	org := lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.Organization)
	header := name + "\n" + title
	if e.Organization != "" {
		header += "  ·  " + org
	}

	quality := components.ProgressBar{
		Label:       "Profile quality",
		Percent:     e.DataQuality / 100,
		ShowPercent: true,
		Width:       min(width-20, 50),
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(header+"\n\n"+quality.View())))
	b.WriteString("\n\n")

	if len(e.HardSkills) > 0 || len(e.SoftSkills) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Render(renderSkills(e))))
		b.WriteString("\n\n")
	}

	if len(e.LikedPositions) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Render(p.renderLiked(e))))
	}

	return "\n" + b.String()
}

func renderSkills(e *api.Employee) string {
	var b strings.Builder
	if len(e.HardSkills) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Hard skills"))
		b.WriteString("\n")
		for _, s := range e.HardSkills {
			line := "  " + s.Name
			if s.Level > 0 {
				line += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(
					strings.Repeat("●", s.Level)+strings.Repeat("○", max(5-s.Level, 0)))
			}
			b.WriteString(line + "\n")
		}
	}
	if len(e.SoftSkills) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Soft skills"))
		b.WriteString("\n")
		names := make([]string, 0, len(e.SoftSkills))
		for _, s := range e.SoftSkills {
			names = append(names, s.Name)
		}
		b.WriteString("  " + strings.Join(names, ", "))
	}
	return b.String()
}

func (p *ProfileScreen) renderLiked(e *api.Employee) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Liked positions"))
	b.WriteString("\n")
	for _, lp := range e.LikedPositions {
		star := "  "
		if lp.PositionID == p.sess.Starred {
			star = lipgloss.NewStyle().Foreground(theme.Accent).Render("★ ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", star, lp.Title,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%.0f%% match", lp.Score))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
