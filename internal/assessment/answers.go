package assessment

import "fmt"

// Store holds the answers recorded during an assessment session, keyed
// by question id. It is in-memory session state: created empty, grown
// as the user answers, cleared on reset. It deliberately accepts ids
// for questions outside the active set so answers survive mode changes.
type Store struct {
	answers map[int]int
}

// NewStore creates an empty answer store.
func NewStore() *Store {
	return &Store{answers: make(map[int]int)}
}

// Set records score for questionID, overwriting any prior answer.
// Scores outside the Likert scale are rejected.
func (s *Store) Set(questionID, score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("score %d out of range [%d,%d]", score, MinScore, MaxScore)
	}
	s.answers[questionID] = score
	return nil
}

// Get returns the recorded score for questionID.
func (s *Store) Get(questionID int) (int, bool) {
	score, ok := s.answers[questionID]
	return score, ok
}

// Count returns the number of distinct questions answered.
func (s *Store) Count() int {
	return len(s.answers)
}

// AllAnswered reports whether every question in active has an answer.
// An empty active set is never considered answered.
func (s *Store) AllAnswered(active []Question) bool {
	if len(active) == 0 {
		return false
	}
	for _, q := range active {
		if _, ok := s.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Reset clears all recorded answers.
func (s *Store) Reset() {
	s.answers = make(map[int]int)
}

// Snapshot returns a copy of the answer map for serialization.
func (s *Store) Snapshot() map[int]int {
	out := make(map[int]int, len(s.answers))
	for id, score := range s.answers {
		out[id] = score
	}
	return out
}
