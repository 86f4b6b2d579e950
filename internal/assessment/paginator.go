package assessment

// QuestionsPerPage is the fixed page size of the questionnaire wizard.
const QuestionsPerPage = 5

// IncompletePageMessage is the inline validation message shown when
// forward navigation is blocked.
const IncompletePageMessage = "Please answer every question on this page before continuing."

// Advance is the outcome of a forward-navigation attempt.
type Advance int

const (
	// AdvanceBlocked means the current page is incomplete; the page
	// index is unchanged.
	AdvanceBlocked Advance = iota
	// AdvanceNext means the paginator moved to the next page.
	AdvanceNext
	// AdvanceSubmit means the last page was completed; the session
	// should leave the questions stage and enter submission.
	AdvanceSubmit
)

// FocusHint tells the view where to move focus after an answer is
// recorded: to a specific question, or to the navigation controls when
// the last question on the page was just answered.
type FocusHint struct {
	QuestionID int
	Controls   bool
}

// Paginator slices the active question list into fixed-size pages and
// gates forward navigation on page completion.
type Paginator struct {
	questions []Question
	perPage   int
	page      int
}

// NewPaginator creates a paginator over qs at page 0.
func NewPaginator(qs []Question) *Paginator {
	return &Paginator{questions: qs, perPage: QuestionsPerPage}
}

// TotalPages returns ceil(len(questions) / perPage).
func (p *Paginator) TotalPages() int {
	if len(p.questions) == 0 {
		return 0
	}
	return (len(p.questions) + p.perPage - 1) / p.perPage
}

// Page returns the current zero-based page index.
func (p *Paginator) Page() int {
	return p.page
}

// CurrentPage returns the question slice for the current page.
func (p *Paginator) CurrentPage() []Question {
	start := p.page * p.perPage
	if start >= len(p.questions) {
		return nil
	}
	end := start + p.perPage
	if end > len(p.questions) {
		end = len(p.questions)
	}
	return p.questions[start:end]
}

// PageComplete reports whether every question on the current page has
// an answer in store.
func (p *Paginator) PageComplete(store *Store) bool {
	for _, q := range p.CurrentPage() {
		if _, ok := store.Get(q.ID); !ok {
			return false
		}
	}
	return true
}

// IsFirst reports whether the current page is the first.
func (p *Paginator) IsFirst() bool {
	return p.page == 0
}

// IsLast reports whether the current page is the last.
func (p *Paginator) IsLast() bool {
	return p.page >= p.TotalPages()-1
}

// Next attempts forward navigation. It is a no-op returning
// AdvanceBlocked when the current page is incomplete. On the last page
// it returns AdvanceSubmit without moving; the page index never exceeds
// TotalPages-1.
func (p *Paginator) Next(store *Store) Advance {
	if !p.PageComplete(store) {
		return AdvanceBlocked
	}
	if p.IsLast() {
		return AdvanceSubmit
	}
	p.page++
	return AdvanceNext
}

// Prev moves to the previous page. Backward navigation is never gated;
// it reports false only when already on the first page.
func (p *Paginator) Prev() bool {
	if p.page == 0 {
		return false
	}
	p.page--
	return true
}

// Reset returns the paginator to the first page.
func (p *Paginator) Reset() {
	p.page = 0
}

// FocusAfterAnswer returns the focus hint for an answer just recorded
// for questionID: the next question on the current page, or the
// navigation controls when questionID is the page's last question (or
// not on the page at all).
func (p *Paginator) FocusAfterAnswer(questionID int) FocusHint {
	page := p.CurrentPage()
	for i, q := range page {
		if q.ID == questionID && i < len(page)-1 {
			return FocusHint{QuestionID: page[i+1].ID}
		}
	}
	return FocusHint{Controls: true}
}
