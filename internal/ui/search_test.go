package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeQuery(m *Model, text string) {
	for _, r := range text {
		pressRune(m, r)
	}
}

func TestRapidTypingAppliesOnlyFinalTerm(t *testing.T) {
	m, _ := newTestModel(t, "alpha", "beta", "abacus")

	// Three keystrokes inside one debounce window: a, ab, abc.
	typeQuery(m, "abc")
	if m.Controller().SearchTerm() != "" {
		t.Fatalf("expected no search applied before the debounce fires, got %q", m.Controller().SearchTerm())
	}
	if m.searchSeq != 3 {
		t.Fatalf("expected three armed timers, got seq %d", m.searchSeq)
	}

	// Ticks from the superseded keystrokes arrive and are dropped.
	m.Update(searchDebounceMsg{seq: 1})
	m.Update(searchDebounceMsg{seq: 2})
	if m.Controller().SearchTerm() != "" {
		t.Fatalf("expected stale ticks ignored, got %q", m.Controller().SearchTerm())
	}

	// Only the latest tick applies, carrying the full text.
	m.Update(searchDebounceMsg{seq: 3})
	if m.Controller().SearchTerm() != "abc" {
		t.Fatalf("expected final term applied, got %q", m.Controller().SearchTerm())
	}
}

func TestSearchFiltersAndResetsPage(t *testing.T) {
	m, _ := newTestModel(t)
	for i := 0; i < 7; i++ {
		seedOne(t, m, "widget")
	}
	seedOne(t, m, "gizmo")
	pressKey(m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.Controller().Page() != 2 {
		t.Fatalf("expected page 2 before searching, got %d", m.Controller().Page())
	}

	typeQuery(m, "giz")
	m.Update(searchDebounceMsg{seq: m.searchSeq})
	view := m.Controller().View()
	if view.Total != 1 || view.Page != 1 {
		t.Fatalf("expected 1 match on page 1, got %d on page %d", view.Total, view.Page)
	}
	if view.Items[0].Name != "gizmo" {
		t.Fatalf("unexpected match %q", view.Items[0].Name)
	}
}

func TestEscClearsSearchImmediately(t *testing.T) {
	m, _ := newTestModel(t, "alpha", "beta")
	typeQuery(m, "alp")
	m.Update(searchDebounceMsg{seq: m.searchSeq})
	if m.Controller().View().Total != 1 {
		t.Fatalf("expected filter applied, got %d items", m.Controller().View().Total)
	}

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Controller().SearchTerm() != "" {
		t.Fatalf("expected search cleared, got %q", m.Controller().SearchTerm())
	}
	if got := m.Controller().View().Total; got != 2 {
		t.Fatalf("expected full collection restored, got %d items", got)
	}
	if m.browse.Query != "" {
		t.Fatalf("expected pending query cleared, got %q", m.browse.Query)
	}
}

func TestClearSearchCancelsPendingTick(t *testing.T) {
	m, _ := newTestModel(t, "alpha")
	typeQuery(m, "x")
	pending := m.searchSeq
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	// The tick armed before the clear arrives late and must not re-apply.
	m.Update(searchDebounceMsg{seq: pending})
	if m.Controller().SearchTerm() != "" {
		t.Fatalf("expected cancelled tick ignored, got %q", m.Controller().SearchTerm())
	}
}

func TestDebounceTickAppliesWhileFormOpen(t *testing.T) {
	m, _ := newTestModel(t, "abacus", "beta")
	typeQuery(m, "ab")
	pending := m.searchSeq

	// The form opens inside the debounce window; the armed tick must
	// still apply when it arrives.
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.mode != ModeForm {
		t.Fatalf("expected form mode, got %v", m.mode)
	}
	m.Update(searchDebounceMsg{seq: pending})
	if m.Controller().SearchTerm() != "ab" {
		t.Fatalf("expected search applied while form open, got %q", m.Controller().SearchTerm())
	}
	if m.mode != ModeForm {
		t.Fatalf("expected form untouched by the tick, got %v", m.mode)
	}

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.Controller().View().Total; got != 1 {
		t.Fatalf("expected filtered view after cancelling the form, got %d items", got)
	}
}

func TestSearchJumpsCursorToBestMatch(t *testing.T) {
	m, _ := newTestModel(t, "cable", "adapter", "charger")
	typeQuery(m, "a")
	m.Update(searchDebounceMsg{seq: m.searchSeq})
	view := m.Controller().View()
	if view.Total != 3 {
		t.Fatalf("expected all three to match %q, got %d", "a", view.Total)
	}
	if view.Items[m.browse.Cursor].Name != "adapter" {
		t.Fatalf("expected cursor on the prefix match, got %q", view.Items[m.browse.Cursor].Name)
	}
}
