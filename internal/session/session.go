// Package session holds the state shared across screens. Screens come
// and go on the router stack; the Session outlives them so answers,
// fetched data and liked/starred marks survive navigation.
package session

import (
	"sort"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/assessment"
)

// Session is the in-memory application state. It is owned by the root
// model and handed to screens by pointer; nothing here is persisted.
type Session struct {
	TestMode bool

	// Assessment state. Answers accumulate across page navigation and
	// screen remounts until Reset.
	Answers *assessment.Store
	Result  *api.AssessmentResult
	// Degraded is set when submission failed and Result holds locally
	// computed scores instead of the backend's.
	Degraded bool

	// Fetched data with load guards. A true guard means the fetch
	// already ran (successfully or not) and should not be repeated on
	// remount.
	Employee       *api.Employee
	EmployeeLoaded bool

	Positions       []api.Position
	PositionsLoaded bool

	Matches       []api.Match
	MatchesLoaded bool

	// Liked and Starred mirror the backend marks and are updated
	// optimistically when the user toggles them.
	Liked   map[string]bool
	Starred string
}

// New creates an empty session.
func New(testMode bool) *Session {
	return &Session{
		TestMode: testMode,
		Answers:  assessment.NewStore(),
		Liked:    make(map[string]bool),
	}
}

// ResetAssessment clears all questionnaire state for a fresh run.
func (s *Session) ResetAssessment() {
	s.Answers.Reset()
	s.Result = nil
	s.Degraded = false
}

// ToggleLiked flips the liked mark for a position and returns the new
// full list of liked ids, sorted for a stable request body.
func (s *Session) ToggleLiked(positionID string) []string {
	if s.Liked[positionID] {
		delete(s.Liked, positionID)
	} else {
		s.Liked[positionID] = true
	}
	return s.LikedIDs()
}

// LikedIDs returns the liked position ids in insertion-independent
// sorted order.
func (s *Session) LikedIDs() []string {
	ids := make([]string, 0, len(s.Liked))
	for id := range s.Liked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AdoptEmployee stores a fetched profile and seeds liked/starred marks
// from it.
func (s *Session) AdoptEmployee(e *api.Employee) {
	s.Employee = e
	s.EmployeeLoaded = true
	if e == nil {
		return
	}
	for _, lp := range e.LikedPositions {
		s.Liked[lp.PositionID] = true
	}
	if e.StarPosition != "" {
		s.Starred = e.StarPosition
	}
}
