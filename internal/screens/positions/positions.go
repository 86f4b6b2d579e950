// Package positions is the position browser: filterable list on the
// left, detail pane for the selected position on the right.
package positions

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/nadavh/skillscope/internal/api"
	poslist "github.com/nadavh/skillscope/internal/positions"
	"github.com/nadavh/skillscope/internal/router"
	"github.com/nadavh/skillscope/internal/screen"
	"github.com/nadavh/skillscope/internal/session"
	"github.com/nadavh/skillscope/internal/ui/components"
	"github.com/nadavh/skillscope/internal/ui/layout"
)

// positionsLoadedMsg delivers the initial fetch outcome.
type positionsLoadedMsg struct {
	Positions []api.Position
	Err       error
}

// likeResultMsg reports the backend's answer to a like toggle. On
// error the optimistic local mark is reverted.
type likeResultMsg struct {
	PositionID string
	Err        error
}

// starResultMsg reports the backend's answer to a star change. Prev
// holds the mark to restore on error.
type starResultMsg struct {
	PositionID string
	Prev       string
	Err        error
}

// PositionsScreen implements screen.Screen for the browser.
type PositionsScreen struct {
	client *api.Client
	sess   *session.Session
	logger *zap.Logger

	loading   bool
	filters   poslist.Filters
	sortBy    poslist.SortBy
	visible   []api.Position
	cursor    int
	searching bool
	search    components.TextInput
	catIdx    int // -1 means all
	locIdx    int
}

var _ screen.Screen = (*PositionsScreen)(nil)
var _ screen.KeyHintProvider = (*PositionsScreen)(nil)

// New creates a new PositionsScreen.
func New(client *api.Client, sess *session.Session, logger *zap.Logger) *PositionsScreen {
	p := &PositionsScreen{
		client: client,
		sess:   sess,
		logger: logger,
		catIdx: -1,
		locIdx: -1,
	}
	p.refresh()
	return p
}

func (p *PositionsScreen) Init() tea.Cmd {
	if p.sess.PositionsLoaded {
		return nil
	}
	p.loading = true
	client := p.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		list, err := client.Positions(ctx)
		return positionsLoadedMsg{Positions: list, Err: err}
	}
}

func (p *PositionsScreen) Title() string {
	return "Open Positions"
}

func (p *PositionsScreen) KeyHints() []layout.KeyHint {
	if p.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "c", Description: "Category"},
		{Key: "g", Description: "Location"},
		{Key: "o", Description: "Open only"},
		{Key: "m", Description: "Sort"},
		{Key: "l", Description: "Like"},
		{Key: "s", Description: "Star"},
		{Key: "Esc", Description: "Home"},
	}
}

func (p *PositionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case positionsLoadedMsg:
		p.loading = false
		if msg.Err != nil {
			p.logger.Warn("positions fetch failed", zap.Error(msg.Err))
		}
		p.sess.Positions = msg.Positions
		p.sess.PositionsLoaded = true
		p.refresh()
		return p, nil

	case likeResultMsg:
		if msg.Err != nil {
			p.logger.Warn("like update failed, reverting",
				zap.String("position", msg.PositionID), zap.Error(msg.Err))
			p.sess.ToggleLiked(msg.PositionID)
		}
		return p, nil

	case starResultMsg:
		if msg.Err != nil {
			p.logger.Warn("star update failed, reverting",
				zap.String("position", msg.PositionID), zap.Error(msg.Err))
			p.sess.Starred = msg.Prev
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.searching {
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PositionsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.searching {
		switch key {
		case "enter":
			p.searching = false
			p.filters.Search = p.search.Value()
			p.refresh()
			return p, nil
		case "esc":
			p.searching = false
			return p, nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.filters.Search = p.search.Value()
		p.refresh()
		return p, cmd
	}

	switch key {
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.visible)-1 {
			p.cursor++
		}
	case "/":
		p.searching = true
		p.search = components.NewTextInput("Search positions...", false, 40)
		return p, p.search.Init()
	case "c":
		p.cycleCategory()
	case "g":
		p.cycleLocation()
	case "o":
		p.filters.OpenOnly = !p.filters.OpenOnly
		p.refresh()
	case "m":
		p.sortBy = p.sortBy.Toggle()
		p.refresh()
	case "l":
		return p.toggleLike()
	case "s":
		return p.star()
	}
	return p, nil
}

func (p *PositionsScreen) cycleCategory() {
	cats := poslist.Categories(p.sess.Positions)
	p.catIdx++
	if p.catIdx >= len(cats) {
		p.catIdx = -1
	}
	if p.catIdx == -1 {
		p.filters.Category = ""
	} else {
		p.filters.Category = cats[p.catIdx]
	}
	p.refresh()
}

func (p *PositionsScreen) cycleLocation() {
	locs := poslist.Locations(p.sess.Positions)
	p.locIdx++
	if p.locIdx >= len(locs) {
		p.locIdx = -1
	}
	if p.locIdx == -1 {
		p.filters.Location = ""
	} else {
		p.filters.Location = locs[p.locIdx]
	}
	p.refresh()
}

// toggleLike flips the mark locally first, then syncs. The message
// carries enough to revert on failure.
func (p *PositionsScreen) toggleLike() (screen.Screen, tea.Cmd) {
	pos, ok := p.selected()
	if !ok {
		return p, nil
	}
	ids := p.sess.ToggleLiked(pos.ID)

	client := p.client
	employeeID := p.employeeID()
	positionID := pos.ID
	return p, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := client.UpdateLikedPositions(ctx, employeeID, ids)
		return likeResultMsg{PositionID: positionID, Err: err}
	}
}

func (p *PositionsScreen) star() (screen.Screen, tea.Cmd) {
	pos, ok := p.selected()
	if !ok {
		return p, nil
	}
	prev := p.sess.Starred
	p.sess.Starred = pos.ID

	client := p.client
	employeeID := p.employeeID()
	positionID := pos.ID
	return p, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := client.StarPosition(ctx, employeeID, positionID)
		return starResultMsg{PositionID: positionID, Prev: prev, Err: err}
	}
}

func (p *PositionsScreen) selected() (api.Position, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return api.Position{}, false
	}
	return p.visible[p.cursor], true
}

func (p *PositionsScreen) employeeID() string {
	if p.sess.Employee != nil {
		return p.sess.Employee.ID
	}
	return "me"
}

// refresh recomputes the visible list and clamps the cursor.
func (p *PositionsScreen) refresh() {
	p.visible = poslist.Apply(p.sess.Positions, p.filters, p.sortBy)
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}
