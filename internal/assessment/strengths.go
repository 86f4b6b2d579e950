package assessment

import (
	"fmt"
	"sort"
	"strings"
)

// TopStrengths returns the n highest-scoring categories in descending
// order. The sort is stable: categories with equal scores keep their
// bank order.
func TopStrengths(scores []CategoryScore, n int) []CategoryScore {
	ranked := make([]CategoryScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// FallbackNarrative builds a deterministic results paragraph from the
// locally computed category scores. It is shown when the remote
// analysis is unavailable, naming the top three categories and their
// scores.
func FallbackNarrative(scores []CategoryScore) string {
	top := TopStrengths(scores, 3)
	if len(top) == 0 {
		return "Your skills profile will appear here once you complete the assessment."
	}

	var b strings.Builder
	b.WriteString("Your skills profile shows a clear set of professional strengths. ")
	b.WriteString(fmt.Sprintf(
		"Your strongest area is %s (%.1f), which points to a capability you can lean on in your current role.",
		top[0].Category, top[0].Score))
	if len(top) > 1 {
		b.WriteString(fmt.Sprintf(
			" Close behind, %s (%.1f) indicates a reliable foundation even in demanding situations.",
			top[1].Category, top[1].Score))
	}
	if len(top) > 2 {
		b.WriteString(fmt.Sprintf(
			" Your %s skills (%.1f) round out the profile and support both individual and team performance.",
			top[2].Category, top[2].Score))
	}
	return b.String()
}
