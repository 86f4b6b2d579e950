package assessment

import (
	"encoding/json"
	"testing"
)

func TestStore_CountDistinctIDs(t *testing.T) {
	s := NewStore()

	if err := s.Set(1, 5); err != nil {
		t.Fatalf("Set(1, 5): %v", err)
	}
	if err := s.Set(2, 3); err != nil {
		t.Fatalf("Set(2, 3): %v", err)
	}
	// Re-answering the same question must not grow the count.
	if err := s.Set(1, 2); err != nil {
		t.Fatalf("Set(1, 2): %v", err)
	}

	if s.Count() != 2 {
		t.Errorf("Count = %d, want 2", s.Count())
	}
	if score, _ := s.Get(1); score != 2 {
		t.Errorf("Get(1) = %d, want 2 (overwrite)", score)
	}
}

func TestStore_RejectsOutOfRangeScores(t *testing.T) {
	s := NewStore()
	for _, score := range []int{0, 6, -1, 100} {
		if err := s.Set(1, score); err == nil {
			t.Errorf("Set(1, %d) accepted out-of-range score", score)
		}
	}
	if s.Count() != 0 {
		t.Errorf("Count = %d after rejected sets, want 0", s.Count())
	}
}

func TestStore_AcceptsInactiveIDs(t *testing.T) {
	// Answers for questions outside the active set are kept so a mode
	// switch does not discard them.
	s := NewStore()
	if err := s.Set(999, 4); err != nil {
		t.Fatalf("Set(999, 4): %v", err)
	}
	if _, ok := s.Get(999); !ok {
		t.Error("answer for inactive id was dropped")
	}
}

func TestStore_AllAnswered(t *testing.T) {
	active := ActiveQuestions(true)
	s := NewStore()

	if s.AllAnswered(active) {
		t.Error("empty store reported all answered")
	}
	for _, q := range active[:len(active)-1] {
		s.Set(q.ID, 3)
	}
	if s.AllAnswered(active) {
		t.Error("store with one missing answer reported all answered")
	}
	s.Set(active[len(active)-1].ID, 3)
	if !s.AllAnswered(active) {
		t.Error("fully answered store reported incomplete")
	}
	if s.AllAnswered(nil) {
		t.Error("empty active set reported answered")
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.Set(1, 5)
	s.Set(2, 4)
	s.Reset()
	if s.Count() != 0 {
		t.Errorf("Count after Reset = %d, want 0", s.Count())
	}
	if _, ok := s.Get(1); ok {
		t.Error("answer survived Reset")
	}
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	// Serializing the answer map into a request body and re-parsing it
	// must yield identical id:score pairs.
	s := NewStore()
	want := map[int]int{1: 5, 2: 4, 3: 3, 4: 2, 5: 1}
	for id, score := range want {
		if err := s.Set(id, score); err != nil {
			t.Fatalf("Set(%d, %d): %v", id, score, err)
		}
	}

	body, err := json.Marshal(struct {
		Answers map[int]int `json:"answers"`
	}{Answers: s.Snapshot()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed struct {
		Answers map[int]int `json:"answers"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(parsed.Answers) != len(want) {
		t.Fatalf("round-trip size = %d, want %d", len(parsed.Answers), len(want))
	}
	for id, score := range want {
		if parsed.Answers[id] != score {
			t.Errorf("round-trip answers[%d] = %d, want %d", id, parsed.Answers[id], score)
		}
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Set(1, 5)
	snap := s.Snapshot()
	snap[1] = 1
	if score, _ := s.Get(1); score != 5 {
		t.Error("Snapshot() exposed internal map")
	}
}
