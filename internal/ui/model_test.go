package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfctl/shelfctl/internal/catalog"
)

func newTestModel(t *testing.T, names ...string) (*Model, []catalog.Product) {
	t.Helper()
	m := NewModel(0, 0, false, false)
	products := make([]catalog.Product, 0, len(names))
	for _, name := range names {
		p, _, err := m.Controller().Submit(catalog.Draft{
			Name:     name,
			Price:    "9.99",
			Category: "toys",
			Stock:    "1",
		})
		if err != nil {
			t.Fatalf("seed %q failed: %v", name, err)
		}
		products = append(products, p)
	}
	return m, products
}

func pressKey(m *Model, msg tea.KeyMsg) {
	m.Update(msg)
}

func pressRune(m *Model, r rune) {
	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestTabTogglesViewMode(t *testing.T) {
	m, _ := newTestModel(t, "a")
	if m.Controller().Mode() != catalog.ViewList {
		t.Fatalf("expected list view by default")
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Controller().Mode() != catalog.ViewCard {
		t.Fatalf("expected card view after tab")
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Controller().Mode() != catalog.ViewList {
		t.Fatalf("expected list view after second tab")
	}
}

func TestPageKeysRespectRange(t *testing.T) {
	m, _ := newTestModel(t)
	for i := 0; i < 7; i++ {
		seedOne(t, m, fmt.Sprintf("p%d", i))
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.Controller().Page() != 2 {
		t.Fatalf("expected page 2, got %d", m.Controller().Page())
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.Controller().Page() != 2 {
		t.Fatalf("expected page request past end to be ignored, got %d", m.Controller().Page())
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Controller().Page() != 1 {
		t.Fatalf("expected page 1, got %d", m.Controller().Page())
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Controller().Page() != 1 {
		t.Fatalf("expected page request below 1 to be ignored, got %d", m.Controller().Page())
	}
}

func seedOne(t *testing.T, m *Model, name string) catalog.Product {
	t.Helper()
	p, _, err := m.Controller().Submit(catalog.Draft{
		Name:     name,
		Price:    "1",
		Category: "home",
		Stock:    "0",
	})
	if err != nil {
		t.Fatalf("seed %q failed: %v", name, err)
	}
	return p
}

func TestCursorMovesWithinVisiblePage(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")
	pressKey(m, tea.KeyMsg{Type: tea.KeyDown})
	pressKey(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.browse.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.browse.Cursor)
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.browse.Cursor != 2 {
		t.Fatalf("expected cursor pinned at last item, got %d", m.browse.Cursor)
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyHome})
	if m.browse.Cursor != 0 {
		t.Fatalf("expected cursor home, got %d", m.browse.Cursor)
	}
}

func TestCtrlNOpensCreateForm(t *testing.T) {
	m, _ := newTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.mode != ModeForm {
		t.Fatalf("expected form mode, got %v", m.mode)
	}
	if _, editing := m.form.Editing(); editing {
		t.Fatal("expected create form, not edit")
	}
}

func TestEnterEditsCursorItemAndKeepsID(t *testing.T) {
	m, products := newTestModel(t, "a", "b")
	pressKey(m, tea.KeyMsg{Type: tea.KeyDown})
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeForm {
		t.Fatalf("expected form mode, got %v", m.mode)
	}
	id, editing := m.form.Editing()
	if !editing || id != products[1].ID {
		t.Fatalf("expected edit of %s, got %q (editing=%v)", products[1].ID, id, editing)
	}

	// The pre-filled form is valid; submitting updates in place.
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeBrowse {
		t.Fatalf("expected browse mode after submit, got %v", m.mode)
	}
	if m.Controller().Len() != 2 {
		t.Fatalf("expected update, not insert: %d products", m.Controller().Len())
	}
	if _, editing := m.Controller().Editing(); editing {
		t.Fatal("expected session back in create mode")
	}
}

func TestEscCancelsFormWithoutMutating(t *testing.T) {
	m, products := newTestModel(t, "a")
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeForm {
		t.Fatalf("expected form mode, got %v", m.mode)
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeBrowse {
		t.Fatalf("expected browse mode after cancel, got %v", m.mode)
	}
	if _, editing := m.Controller().Editing(); editing {
		t.Fatal("expected edit session cleared on cancel")
	}
	got, _ := m.Controller().Get(products[0].ID)
	if got.Name != "a" {
		t.Fatalf("expected product untouched, got %q", got.Name)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m, _ := newTestModel(t, "a", "b")

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if m.mode != ModeConfirmDelete {
		t.Fatalf("expected confirm mode, got %v", m.mode)
	}
	pressRune(m, 'n')
	if m.Controller().Len() != 2 {
		t.Fatalf("expected declined delete to keep both products, got %d", m.Controller().Len())
	}

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	pressRune(m, 'y')
	if m.Controller().Len() != 1 {
		t.Fatalf("expected confirmed delete to remove one product, got %d", m.Controller().Len())
	}
	if m.mode != ModeBrowse {
		t.Fatalf("expected browse mode after delete, got %v", m.mode)
	}
}

func TestConfirmedDeleteShowsNotice(t *testing.T) {
	m, _ := newTestModel(t, "a")
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	pressRune(m, 'y')
	if m.notice == "" {
		t.Fatal("expected a transient notice after delete")
	}

	// The matching expiry tick dismisses it; a stale one does not.
	m.Update(noticeExpireMsg{seq: m.noticeSeq - 1})
	if m.notice == "" {
		t.Fatal("expected stale expiry tick to be ignored")
	}
	m.Update(noticeExpireMsg{seq: m.noticeSeq})
	if m.notice != "" {
		t.Fatalf("expected notice dismissed, still have %q", m.notice)
	}
}

func TestNoticeExpiresWhileFormOpen(t *testing.T) {
	m, _ := newTestModel(t, "a", "b")
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	pressRune(m, 'y')
	if m.notice == "" {
		t.Fatal("expected a transient notice after delete")
	}

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m.Update(noticeExpireMsg{seq: m.noticeSeq})
	if m.notice != "" {
		t.Fatalf("expected notice dismissed while form open, still have %q", m.notice)
	}
	if m.mode != ModeForm {
		t.Fatalf("expected form untouched by the expiry tick, got %v", m.mode)
	}
}
