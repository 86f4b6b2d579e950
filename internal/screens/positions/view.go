package positions

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/ui/theme"
)

func (p *PositionsScreen) View(width, height int) string {
	if p.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading positions...")
	}

	var b strings.Builder
	b.WriteString(p.renderFilterBar(width))
	b.WriteString("\n")

	if len(p.visible) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No positions match the current filters."))
		return b.String()
	}

	listWidth := width * 2 / 5
	detailWidth := width - listWidth - 4

	list := p.renderList(listWidth, height-4)
	detail := ""
	if pos, ok := p.selected(); ok {
		detail = p.renderDetail(pos, detailWidth)
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	return b.String()
}

func (p *PositionsScreen) renderFilterBar(width int) string {
	var parts []string

	if p.searching {
		parts = append(parts, "Search: "+p.search.View())
	} else if p.filters.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", p.filters.Search))
	}
	if p.filters.Category != "" {
		parts = append(parts, "category="+p.filters.Category)
	}
	if p.filters.Location != "" {
		parts = append(parts, "location="+p.filters.Location)
	}
	if p.filters.OpenOnly {
		parts = append(parts, "open only")
	}
	parts = append(parts, "sort="+p.sortBy.String())
	parts = append(parts, fmt.Sprintf("%d shown", len(p.visible)))

	return "  " + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.Join(parts, "   "))
}

func (p *PositionsScreen) renderList(width, height int) string {
	var b strings.Builder
	for i, pos := range p.visible {
		if height > 0 && i >= height {
			break
		}

		marks := ""
		if p.sess.Starred == pos.ID {
			marks += lipgloss.NewStyle().Foreground(theme.Accent).Render("★")
		}
		if p.sess.Liked[pos.ID] {
			marks += lipgloss.NewStyle().Foreground(theme.Error).Render("♥")
		}

		pct := lipgloss.NewStyle().
			Foreground(theme.MatchColor(pos.MatchPercent)).
			Render(fmt.Sprintf("%3.0f%%", pos.MatchPercent))

		title := pos.Title
		maxTitle := width - 12
		if maxTitle > 3 && len([]rune(title)) > maxTitle {
			title = string([]rune(title)[:maxTitle-3]) + "..."
		}

		line := fmt.Sprintf("%s %s %s", pct, title, marks)
		if i == p.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (p *PositionsScreen) renderDetail(pos api.Position, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(pos.Title))
	b.WriteString("\n")

	var meta []string
	if pos.Category != "" {
		meta = append(meta, pos.Category)
	}
	if pos.Division != "" {
		meta = append(meta, pos.Division)
	}
	if pos.Location != "" {
		meta = append(meta, pos.Location)
	}
	if pos.WorkModel != "" {
		meta = append(meta, pos.WorkModel)
	}
	if len(meta) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}

	status := "Closed"
	statusStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if pos.IsOpen {
		status = "Open"
		statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}
	b.WriteString(statusStyle.Render(status))
	if pos.PostedTime != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + pos.PostedTime))
	}
	b.WriteString("\n\n")

	if pos.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Foreground(theme.Text).
			Render(pos.Description))
		b.WriteString("\n\n")
	}

	if len(pos.Requirements) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Requirements"))
		b.WriteString("\n")
		for _, r := range pos.Requirements {
			mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
			switch r.Status {
			case "met", "match":
				mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
			case "gap", "missing":
				mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
			}
			line := fmt.Sprintf("%s %s", mark, r.Skill)
			if r.Note != "" {
				line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (" + r.Note + ")")
			}
			b.WriteString(line + "\n")
		}
	}

	return theme.Card.Width(width).Render(b.String())
}
