package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfctl/shelfctl/internal/catalog"
)

func TestBlurValidatesFieldLeft(t *testing.T) {
	f := newCreateForm()
	f.Focus()
	if f.Error(fieldName) != "" {
		t.Fatalf("expected no error before blur, got %q", f.Error(fieldName))
	}
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.Error(fieldName) == "" {
		t.Fatal("expected blank name flagged when focus leaves the field")
	}

	f.inputs[fieldName].SetValue("Lamp")
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.Error(fieldName) != "" {
		t.Fatalf("expected error cleared on revalidation, got %q", f.Error(fieldName))
	}
}

func TestSubmitEmptyFormFlagsAllRequiredFields(t *testing.T) {
	f := newCreateForm()
	f.Focus()
	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	f.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, done, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if done {
		t.Fatal("expected empty form rejected")
	}
	for _, field := range []formField{fieldName, fieldPrice, fieldCategory, fieldStock} {
		if f.Error(field) == "" {
			t.Fatalf("expected error on %s", fieldLabels[field])
		}
	}
	if f.Error(fieldDescription) != "" || f.Error(fieldImage) != "" {
		t.Fatal("expected optional fields to pass blank")
	}
	if f.focus != fieldName {
		t.Fatalf("expected focus jumped to first failing field, got %v", f.focus)
	}
}

func TestCategoryCycling(t *testing.T) {
	f := newCreateForm()
	f.Focus()
	f.focus = fieldCategory

	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	if f.category != 0 {
		t.Fatalf("expected first category selected, got %d", f.category)
	}
	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if f.category != len(catalog.Categories)-1 {
		t.Fatalf("expected wrap to last category, got %d", f.category)
	}
	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	if f.category != 0 {
		t.Fatalf("expected wrap back to first category, got %d", f.category)
	}
	if f.Error(fieldCategory) != "" {
		t.Fatalf("expected category error cleared, got %q", f.Error(fieldCategory))
	}
}

func TestEditFormRoundTripsDraft(t *testing.T) {
	d := catalog.Draft{
		Name:        "Desk lamp",
		Price:       "24.99",
		Category:    "home",
		Stock:       "3",
		Description: "warm white",
		Image:       "https://example.com/lamp.png",
	}
	f := newEditForm("some-id", d)
	if got := f.Draft(); got != d {
		t.Fatalf("draft round trip mismatch:\n got %+v\nwant %+v", got, d)
	}
	id, editing := f.Editing()
	if !editing || id != "some-id" {
		t.Fatalf("expected edit form for some-id, got %q (editing=%v)", id, editing)
	}
}

func TestInvalidSubmitLeavesCatalogUntouched(t *testing.T) {
	m, _ := newTestModel(t, "a")
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m.form.inputs[fieldName].SetValue("Broken")
	m.form.inputs[fieldPrice].SetValue("-5")
	m.form.inputs[fieldStock].SetValue("1")
	m.form.category = 0

	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeForm {
		t.Fatalf("expected form to stay open on rejection, got %v", m.mode)
	}
	if m.form.Error(fieldPrice) == "" {
		t.Fatal("expected inline error on price")
	}
	if m.Controller().Len() != 1 {
		t.Fatalf("expected collection untouched, got %d products", m.Controller().Len())
	}
}

func TestValidSubmitAddsProductAndNotifies(t *testing.T) {
	m, _ := newTestModel(t)
	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m.form.inputs[fieldName].SetValue("Lamp")
	m.form.inputs[fieldPrice].SetValue("12.50")
	m.form.inputs[fieldStock].SetValue("4")
	m.form.category = 0

	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeBrowse {
		t.Fatalf("expected browse mode after submit, got %v", m.mode)
	}
	if m.Controller().Len() != 1 {
		t.Fatalf("expected one product, got %d", m.Controller().Len())
	}
	if m.notice == "" {
		t.Fatal("expected a success notice")
	}
	if m.noticeKind != catalog.NoticeSuccess {
		t.Fatalf("expected success notice kind, got %v", m.noticeKind)
	}
}
