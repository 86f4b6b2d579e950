package assessment

import "math"

// NeutralScore is reported for categories with no answered questions.
// Zero would read as a measured low score, so unanswered categories sit
// at the middle of the scale until the user answers.
const NeutralScore = 3.0

// CategoryScore is the mean answer for one skill category.
type CategoryScore struct {
	Category      string  `json:"category"`
	Score         float64 `json:"score"`
	QuestionCount int     `json:"question_count"`
}

// ComputeCategoryScores computes the per-category mean of answered
// questions. It always runs over the full bank, not the active subset:
// category membership is a property of the bank, and answers recorded
// in one mode keep counting after a mode switch. Results are ordered by
// first appearance of each category in the bank, scores rounded to two
// decimals. A category with no answers reports NeutralScore with
// QuestionCount 0.
func ComputeCategoryScores(bank []Question, store *Store) []CategoryScore {
	categories := Categories(bank)
	sums := make(map[string]int, len(categories))
	counts := make(map[string]int, len(categories))

	for _, q := range bank {
		if score, ok := store.Get(q.ID); ok {
			sums[q.Category] += score
			counts[q.Category]++
		}
	}

	out := make([]CategoryScore, 0, len(categories))
	for _, cat := range categories {
		cs := CategoryScore{Category: cat, Score: NeutralScore}
		if n := counts[cat]; n > 0 {
			cs.Score = round2(float64(sums[cat]) / float64(n))
			cs.QuestionCount = n
		}
		out = append(out, cs)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
