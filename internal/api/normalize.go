package api

import (
	"encoding/json"
	"math"
	"strconv"
)

// The backend returns loosely-typed JSON: ids may be numbers or
// strings, names and scores hide behind several alternative keys, and
// numeric fields are occasionally absent or non-finite. Each external
// entity is normalized by exactly one function here so the defaults are
// documented in one place instead of scattered through the views.

// normalizePosition maps a raw position object into a Position.
// Defaults: id falls back through position_id → id → index; title
// through position_name → name → title → id; match percentage through
// match_percentage → score → match, coerced and clamped to [0,100]
// with non-finite values becoming 0.
func normalizePosition(raw map[string]any, idx int) Position {
	p := Position{
		ID:           stringField(raw, "position_id", "id"),
		Title:        stringField(raw, "position_name", "name", "title"),
		Category:     stringField(raw, "category", "department"),
		Division:     stringField(raw, "division"),
		Location:     stringField(raw, "location"),
		WorkModel:    stringField(raw, "work_model"),
		Description:  stringField(raw, "description"),
		MatchLevel:   stringField(raw, "match_level"),
		PostedTime:   stringField(raw, "posted_time"),
		IsOpen:       boolField(raw, "is_open"),
		MatchPercent: clampPct(percentField(raw, "match_percentage", "score", "match")),
	}
	if p.ID == "" {
		p.ID = strconv.Itoa(idx + 1)
	}
	if p.Title == "" {
		p.Title = p.ID
	}
	if reqs, ok := raw["requirements"].([]any); ok {
		for _, r := range reqs {
			m, ok := r.(map[string]any)
			if !ok {
				continue
			}
			p.Requirements = append(p.Requirements, Requirement{
				Skill:  stringField(m, "skill", "name"),
				Status: stringField(m, "status"),
				Note:   stringField(m, "note"),
			})
		}
	}
	return p
}

// normalizeEmployee maps a raw employee profile into an Employee.
func normalizeEmployee(raw map[string]any) Employee {
	e := Employee{
		ID:           stringField(raw, "id", "employee_number"),
		Name:         stringField(raw, "name", "full_name"),
		Title:        stringField(raw, "title", "position_name"),
		Organization: stringField(raw, "organization", "division"),
		StarPosition: stringField(raw, "star_position"),
	}
	if e.ID == "" {
		e.ID = "me"
	}
	if metrics, ok := raw["metrics"].(map[string]any); ok {
		e.DataQuality = clampPct(percentField(metrics, "data_quality"))
	}
	e.HardSkills = normalizeSkills(raw["hard_skills"])
	e.SoftSkills = normalizeSkills(raw["soft_skills"])
	if liked, ok := raw["liked_positions"].([]any); ok {
		for i, l := range liked {
			m, ok := l.(map[string]any)
			if !ok {
				continue
			}
			lp := LikedPosition{
				PositionID: stringField(m, "position_id", "id"),
				Title:      stringField(m, "position_name", "name", "title", "id"),
				Category:   stringField(m, "category", "department"),
				Location:   stringField(m, "location", "work_model"),
				Score:      clampPct(percentField(m, "score", "match", "match_percent")),
			}
			if lp.PositionID == "" {
				lp.PositionID = strconv.Itoa(i + 1)
			}
			if lp.Title == "" {
				lp.Title = lp.PositionID
			}
			e.LikedPositions = append(e.LikedPositions, lp)
		}
	}
	return e
}

// normalizeMatch maps a raw smart-match entry into a Match. The smart
// endpoint reports similarity in [0,1]; values on that scale are
// converted to percentages before clamping.
func normalizeMatch(raw map[string]any, idx int) Match {
	m := Match{
		PositionID: stringField(raw, "position_id", "id"),
		Name:       stringField(raw, "name", "position_name", "title"),
	}
	if m.PositionID == "" {
		m.PositionID = strconv.Itoa(idx + 1)
	}
	if m.Name == "" {
		m.Name = m.PositionID
	}
	score := percentField(raw, "score", "match", "match_percentage")
	if score > 0 && score <= 1 {
		score *= 100
	}
	m.Score = clampPct(score)
	return m
}

func normalizeSkills(v any) []Skill {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []Skill
	for _, item := range items {
		switch s := item.(type) {
		case string:
			out = append(out, Skill{Name: s})
		case map[string]any:
			out = append(out, Skill{
				Name:  stringField(s, "skill", "name"),
				Level: int(percentField(s, "level")),
			})
		}
	}
	return out
}

// stringField returns the first present, non-empty string among keys.
// Numeric values are rendered to their decimal form so an id of 7 and
// an id of "7" normalize identically.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// percentField returns the first coercible numeric value among keys.
// Strings are parsed; anything non-finite or unparseable yields 0.
func percentField(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, present := m[k]
		if !present || v == nil {
			continue
		}
		var f float64
		var err error
		switch n := v.(type) {
		case json.Number:
			f, err = n.Float64()
		case float64:
			f = n
		case string:
			f, err = strconv.ParseFloat(n, 64)
		default:
			continue
		}
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
