// Package home is the entry screen with the main navigation menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/router"
	"github.com/nadavh/skillscope/internal/screen"
	"github.com/nadavh/skillscope/internal/screens/dashboard"
	positionsscreen "github.com/nadavh/skillscope/internal/screens/positions"
	"github.com/nadavh/skillscope/internal/screens/profile"
	"github.com/nadavh/skillscope/internal/screens/questionnaire"
	"github.com/nadavh/skillscope/internal/session"
	"github.com/nadavh/skillscope/internal/ui/components"
	"github.com/nadavh/skillscope/internal/ui/layout"
	"github.com/nadavh/skillscope/internal/ui/theme"
)

// HomeScreen is the main navigation screen.
type HomeScreen struct {
	menu     components.Menu
	testMode bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(client *api.Client, sess *session.Session, logger *zap.Logger) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	assessmentLabel := "Take Assessment"
	assessmentDesc := "40 questions, about 10 minutes"
	if sess.TestMode {
		assessmentDesc = "quick run, 5 questions"
	}

	items := []components.MenuItem{
		{Label: "Dashboard", Description: "your top position matches", Action: push(func() screen.Screen {
			return dashboard.New(client, sess, logger)
		})},
		{Label: "My Profile", Description: "skills and liked positions", Action: push(func() screen.Screen {
			return profile.New(client, sess, logger)
		})},
		{Label: "Open Positions", Description: "browse, like and star", Action: push(func() screen.Screen {
			return positionsscreen.New(client, sess, logger)
		})},
		{Label: assessmentLabel, Description: assessmentDesc, Action: push(func() screen.Screen {
			return questionnaire.New(client, sess, logger)
		})},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		testMode: sess.TestMode,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("SkillScope"))

	subtitle := "Find where your skills fit best"
	if h.testMode {
		subtitle += "  (quick mode)"
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(subtitle))

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return "\n\n" + strings.Join(sections, "\n\n")
}
