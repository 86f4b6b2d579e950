package assessment

import "testing"

func answerPage(t *testing.T, s *Store, qs []Question) {
	t.Helper()
	for _, q := range qs {
		if err := s.Set(q.ID, 3); err != nil {
			t.Fatalf("Set(%d): %v", q.ID, err)
		}
	}
}

func TestPaginator_TotalPages(t *testing.T) {
	cases := []struct {
		questions int
		want      int
	}{
		{40, 8},
		{5, 1},
		{6, 2},
		{4, 1},
		{0, 0},
	}
	for _, tc := range cases {
		qs := make([]Question, tc.questions)
		for i := range qs {
			qs[i] = Question{ID: i + 1, Category: CategoryGrowth}
		}
		p := NewPaginator(qs)
		if got := p.TotalPages(); got != tc.want {
			t.Errorf("TotalPages with %d questions = %d, want %d", tc.questions, got, tc.want)
		}
	}
}

func TestPaginator_CurrentPageSlices(t *testing.T) {
	p := NewPaginator(Bank())

	page := p.CurrentPage()
	if len(page) != 5 {
		t.Fatalf("page 0 size = %d, want 5", len(page))
	}
	if page[0].ID != 1 || page[4].ID != 5 {
		t.Errorf("page 0 ids = %d..%d, want 1..5", page[0].ID, page[4].ID)
	}

	s := NewStore()
	answerPage(t, s, page)
	p.Next(s)

	page = p.CurrentPage()
	if page[0].ID != 6 || page[4].ID != 10 {
		t.Errorf("page 1 ids = %d..%d, want 6..10", page[0].ID, page[4].ID)
	}
}

func TestPaginator_NextBlockedOnIncompletePage(t *testing.T) {
	p := NewPaginator(Bank())
	s := NewStore()
	s.Set(1, 5)
	s.Set(2, 5)

	if got := p.Next(s); got != AdvanceBlocked {
		t.Errorf("Next on incomplete page = %v, want AdvanceBlocked", got)
	}
	if p.Page() != 0 {
		t.Errorf("page index changed to %d on blocked Next", p.Page())
	}
}

func TestPaginator_NextAdvancesWhenComplete(t *testing.T) {
	p := NewPaginator(Bank())
	s := NewStore()
	answerPage(t, s, p.CurrentPage())

	if got := p.Next(s); got != AdvanceNext {
		t.Errorf("Next on complete page = %v, want AdvanceNext", got)
	}
	if p.Page() != 1 {
		t.Errorf("page = %d after Next, want 1", p.Page())
	}
}

func TestPaginator_LastPageNextSignalsSubmit(t *testing.T) {
	qs := ActiveQuestions(true) // 5 questions, 1 page
	p := NewPaginator(qs)
	s := NewStore()

	if p.TotalPages() != 1 {
		t.Fatalf("TotalPages = %d, want 1", p.TotalPages())
	}
	answerPage(t, s, qs)

	if got := p.Next(s); got != AdvanceSubmit {
		t.Errorf("Next on completed last page = %v, want AdvanceSubmit", got)
	}
	if p.Page() != 0 {
		t.Errorf("page = %d after submit signal, want 0 (never past the last page)", p.Page())
	}
}

func TestPaginator_PrevNeverGated(t *testing.T) {
	p := NewPaginator(Bank())
	s := NewStore()

	if p.Prev() {
		t.Error("Prev on first page reported movement")
	}

	answerPage(t, s, p.CurrentPage())
	p.Next(s)

	// Backward navigation works regardless of completion state.
	if !p.Prev() {
		t.Error("Prev from page 1 did not move")
	}
	if p.Page() != 0 {
		t.Errorf("page = %d after Prev, want 0", p.Page())
	}
}

func TestPaginator_PageCompleteMatchesAnswers(t *testing.T) {
	p := NewPaginator(Bank())
	s := NewStore()

	if p.PageComplete(s) {
		t.Error("empty store reported page complete")
	}
	for _, q := range p.CurrentPage()[:4] {
		s.Set(q.ID, 4)
	}
	if p.PageComplete(s) {
		t.Error("page with 4/5 answers reported complete")
	}
	s.Set(p.CurrentPage()[4].ID, 4)
	if !p.PageComplete(s) {
		t.Error("fully answered page reported incomplete")
	}
}

func TestPaginator_FocusAfterAnswer(t *testing.T) {
	p := NewPaginator(Bank())

	// Answering question k of n with k < n focuses question k+1.
	hint := p.FocusAfterAnswer(2)
	if hint.Controls || hint.QuestionID != 3 {
		t.Errorf("focus after answering 2 = %+v, want question 3", hint)
	}

	// Answering the page's last question focuses the navigation controls.
	hint = p.FocusAfterAnswer(5)
	if !hint.Controls {
		t.Errorf("focus after answering 5 = %+v, want controls", hint)
	}
}

func TestPaginator_Reset(t *testing.T) {
	p := NewPaginator(Bank())
	s := NewStore()
	answerPage(t, s, p.CurrentPage())
	p.Next(s)
	p.Reset()
	if p.Page() != 0 {
		t.Errorf("page after Reset = %d, want 0", p.Page())
	}
}
