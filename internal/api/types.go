package api

// Wire types for the career-matching platform API. Everything here is
// consumed, never produced: the backend owns these entities and the
// client normalizes them defensively (see normalize.go).

// AssessmentQuestion mirrors GET /assessment/questions items.
type AssessmentQuestion struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// CategoryScore mirrors the per-category entries of an AssessmentResult.
type CategoryScore struct {
	Category      string  `json:"category"`
	Score         float64 `json:"score"`
	QuestionCount int     `json:"question_count"`
}

// AssessmentResult mirrors POST /assessment/submit responses.
type AssessmentResult struct {
	UserID               string          `json:"user_id"`
	SubmittedAt          string          `json:"submitted_at"`
	CategoryScores       []CategoryScore `json:"category_scores"`
	AISummary            string          `json:"ai_summary"`
	TopStrengths         []string        `json:"top_strengths"`
	GrowthRecommendation string          `json:"growth_recommendation"`
}

// Requirement is one position requirement with its match status.
type Requirement struct {
	Skill  string
	Status string
	Note   string
}

// Position is the normalized view model for a job position.
type Position struct {
	ID           string
	Title        string
	Category     string
	Division     string
	Location     string
	WorkModel    string
	Description  string
	MatchPercent float64 // clamped to [0,100]
	MatchLevel   string
	PostedTime   string
	IsOpen       bool
	Requirements []Requirement
}

// Skill is a named skill with a proficiency level.
type Skill struct {
	Name  string
	Level int
}

// LikedPosition is a position the employee marked as liked.
type LikedPosition struct {
	PositionID string
	Title      string
	Category   string
	Location   string
	Score      float64 // clamped to [0,100]
}

// Employee is the normalized view model for the current user's profile.
type Employee struct {
	ID             string
	Name           string
	Title          string
	Organization   string
	DataQuality    float64 // clamped to [0,100]
	HardSkills     []Skill
	SoftSkills     []Skill
	LikedPositions []LikedPosition
	StarPosition   string
}

// Match is one entry from GET /smart/positions/top.
type Match struct {
	PositionID string
	Name       string
	Score      float64 // percentage, clamped to [0,100]
}
