package assessment

// Question is a single Likert-scale statement in the skills assessment.
// IDs are stable, unique, and ordered 1..N.
type Question struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Skill categories. Each bank question is tagged with exactly one.
const (
	CategoryLeadership     = "Leadership"
	CategoryTeamwork       = "Teamwork"
	CategoryProblemSolving = "Problem Solving"
	CategoryAdaptability   = "Adaptability"
	CategoryGrowth         = "Growth"
)

// MinScore and MaxScore bound the Likert scale.
const (
	MinScore = 1
	MaxScore = 5
)

// bank is the built-in question set, used when the backend's question
// endpoint is unreachable. The backend serves the same 40 questions.
var bank = []Question{
	{ID: 1, Category: CategoryLeadership, Text: "When a group is unsure, I tend to take charge and set the direction."},
	{ID: 2, Category: CategoryLeadership, Text: "I am comfortable giving constructive feedback to colleagues."},
	{ID: 3, Category: CategoryLeadership, Text: "I enjoy mentoring others and helping them develop."},
	{ID: 4, Category: CategoryLeadership, Text: "I keep the team committed and motivated even under pressure."},
	{ID: 5, Category: CategoryLeadership, Text: "I put team goals ahead of personal recognition."},
	{ID: 6, Category: CategoryLeadership, Text: "I am not afraid to make hard decisions."},
	{ID: 7, Category: CategoryLeadership, Text: "I listen to diverse opinions before I decide."},
	{ID: 8, Category: CategoryLeadership, Text: "I delegate tasks according to people's strengths."},
	{ID: 9, Category: CategoryTeamwork, Text: "I prefer working in collaboration with others over working alone."},
	{ID: 10, Category: CategoryTeamwork, Text: "I make a point of bringing quiet team members into discussions."},
	{ID: 11, Category: CategoryTeamwork, Text: "I communicate complex ideas clearly and simply."},
	{ID: 12, Category: CategoryTeamwork, Text: "I act quickly to resolve conflicts within the team."},
	{ID: 13, Category: CategoryTeamwork, Text: "I keep the team regularly updated on my progress."},
	{ID: 14, Category: CategoryTeamwork, Text: "I value feedback and use it to improve."},
	{ID: 15, Category: CategoryTeamwork, Text: "I build strong professional relationships easily."},
	{ID: 16, Category: CategoryTeamwork, Text: "I offer support when a teammate is struggling."},
	{ID: 17, Category: CategoryProblemSolving, Text: "I enjoy analyzing complex data to find patterns."},
	{ID: 18, Category: CategoryProblemSolving, Text: "I look for the root cause of a problem, not just the symptoms."},
	{ID: 19, Category: CategoryProblemSolving, Text: "I can break a large problem into actionable steps."},
	{ID: 20, Category: CategoryProblemSolving, Text: "I am creative at finding ways around obstacles."},
	{ID: 21, Category: CategoryProblemSolving, Text: "I rely on logic and facts more than intuition."},
	{ID: 22, Category: CategoryProblemSolving, Text: "I enjoy streamlining processes and making them more efficient."},
	{ID: 23, Category: CategoryProblemSolving, Text: "I stay calm when things do not go as planned."},
	{ID: 24, Category: CategoryProblemSolving, Text: "I often propose novel solutions to long-standing problems."},
	{ID: 25, Category: CategoryAdaptability, Text: "I adapt quickly to changes in project scope."},
	{ID: 26, Category: CategoryAdaptability, Text: "I am comfortable working with ambiguous guidelines."},
	{ID: 27, Category: CategoryAdaptability, Text: "I see failure as an opportunity to learn."},
	{ID: 28, Category: CategoryAdaptability, Text: "I can switch between different tasks with ease."},
	{ID: 29, Category: CategoryAdaptability, Text: "I am open to trying new ways of working."},
	{ID: 30, Category: CategoryAdaptability, Text: "I recover quickly from setbacks."},
	{ID: 31, Category: CategoryAdaptability, Text: "I thrive in dynamic, fast-moving environments."},
	{ID: 32, Category: CategoryAdaptability, Text: "I am willing to take on tasks outside my formal role."},
	{ID: 33, Category: CategoryGrowth, Text: "I actively seek out new things to learn."},
	{ID: 34, Category: CategoryGrowth, Text: "I regularly teach myself new tools or software."},
	{ID: 35, Category: CategoryGrowth, Text: "I keep up with the latest trends in the industry."},
	{ID: 36, Category: CategoryGrowth, Text: "I set ambitious professional goals for myself."},
	{ID: 37, Category: CategoryGrowth, Text: "I ask for help when I do not understand something."},
	{ID: 38, Category: CategoryGrowth, Text: "I enjoy intellectual challenges."},
	{ID: 39, Category: CategoryGrowth, Text: "I am always looking for ways to improve my skills."},
	{ID: 40, Category: CategoryGrowth, Text: "I believe my abilities grow through effort and persistence."},
}

// Bank returns a copy of the full built-in question bank in id order.
func Bank() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// ActiveQuestions returns the question set for the given mode: the full
// bank, or in test mode the first question of each category in bank
// order (one per category).
func ActiveQuestions(testMode bool) []Question {
	if !testMode {
		return Bank()
	}
	seen := make(map[string]bool)
	var out []Question
	for _, q := range bank {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q)
		}
	}
	return out
}

// Categories returns the distinct categories of qs in first-seen order.
func Categories(qs []Question) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range qs {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}
