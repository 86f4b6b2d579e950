// Package positions filters and orders the normalized position list for
// the positions browser.
package positions

import (
	"sort"
	"strings"

	"github.com/nadavh/skillscope/internal/api"
)

// SortBy selects the ordering applied after filtering.
type SortBy int

const (
	SortByMatch SortBy = iota
	SortByNewest
)

func (s SortBy) String() string {
	if s == SortByNewest {
		return "newest"
	}
	return "match"
}

// Toggle returns the other sort order.
func (s SortBy) Toggle() SortBy {
	if s == SortByMatch {
		return SortByNewest
	}
	return SortByMatch
}

// Filters narrows the position list. Zero values mean "no constraint":
// an empty Category or Location matches everything.
type Filters struct {
	Search   string
	Category string
	Location string
	OpenOnly bool
}

// Apply filters the list and stable-sorts the survivors. The input
// slice is never mutated.
func Apply(all []api.Position, f Filters, sortBy SortBy) []api.Position {
	out := make([]api.Position, 0, len(all))
	for _, p := range all {
		if f.OpenOnly && !p.IsOpen {
			continue
		}
		if !matchesSearch(p, f.Search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Location != "" &&
			!strings.Contains(p.Location, f.Location) &&
			!strings.Contains(p.WorkModel, f.Location) {
			continue
		}
		out = append(out, p)
	}

	switch sortBy {
	case SortByNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return recencyRank(out[i].PostedTime) > recencyRank(out[j].PostedTime)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].MatchPercent > out[j].MatchPercent
		})
	}
	return out
}

func matchesSearch(p api.Position, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range []string{p.Title, p.Division, p.Category} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// recencyRank buckets a free-text posted-time phrase. Higher means more
// recent; anything unrecognized sinks to the bottom.
func recencyRank(posted string) int {
	t := strings.ToLower(posted)
	switch {
	case t == "":
		return 0
	case strings.Contains(t, "today"):
		return 5
	case strings.Contains(t, "yesterday"):
		return 4
	case strings.Contains(t, "2 days"), strings.Contains(t, "1 day"):
		return 4
	case strings.Contains(t, "3 days"), strings.Contains(t, "4 days"):
		return 3
	case strings.Contains(t, "5 days"), strings.Contains(t, "6 days"):
		return 2
	case strings.Contains(t, "weeks"):
		return 0
	case strings.Contains(t, "week"):
		return 1
	default:
		return 0
	}
}

// Categories returns the distinct category values in first-seen order,
// for cycling through filter options. Empty categories are skipped.
func Categories(all []api.Position) []string {
	return distinct(all, func(p api.Position) string { return p.Category })
}

// Locations returns the distinct location values in first-seen order.
func Locations(all []api.Position) []string {
	return distinct(all, func(p api.Position) string { return p.Location })
}

func distinct(all []api.Position, key func(api.Position) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range all {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
