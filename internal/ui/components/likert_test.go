package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestLikertRow_DigitCommits(t *testing.T) {
	l := NewLikertRow("I enjoy leading", 0)
	l.Focused = true

	l, committed := l.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	if !committed {
		t.Fatal("digit key should commit")
	}
	if l.Score != 4 {
		t.Errorf("Score = %d, want 4", l.Score)
	}
	if !l.Answered() {
		t.Error("Answered() should be true")
	}
}

func TestLikertRow_ArrowsThenEnter(t *testing.T) {
	l := NewLikertRow("statement", 0)
	l.Focused = true

	// Provisional choice starts at neutral; two rights land on 5.
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	l, committed := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !committed || l.Score != 5 {
		t.Errorf("Score = %d committed=%v, want 5 true", l.Score, committed)
	}

	// Hover never leaves the scale.
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if l.hovered != 5 {
		t.Errorf("hovered = %d, want clamped at 5", l.hovered)
	}
}

func TestLikertRow_IgnoresKeysWhenUnfocused(t *testing.T) {
	l := NewLikertRow("statement", 0)

	l, committed := l.Update(tea.KeyPressMsg{Code: '5', Text: "5"})
	if committed || l.Score != 0 {
		t.Errorf("unfocused row changed: score %d committed %v", l.Score, committed)
	}
}

func TestLikertRow_RestoresPriorScore(t *testing.T) {
	l := NewLikertRow("statement", 2)
	if !l.Answered() || l.Score != 2 {
		t.Errorf("prior score lost: %d", l.Score)
	}
	if l.hovered != 2 {
		t.Errorf("hover should start on the prior answer, got %d", l.hovered)
	}
}
