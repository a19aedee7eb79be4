package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfctl/shelfctl/internal/catalog"
	"github.com/shelfctl/shelfctl/internal/logging/events"
)

type formField int

const (
	fieldName formField = iota
	fieldPrice
	fieldCategory
	fieldStock
	fieldDescription
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:        "Name",
	fieldPrice:       "Price",
	fieldCategory:    "Category",
	fieldStock:       "Stock",
	fieldDescription: "Description",
	fieldImage:       "Image URL",
}

func (f formField) catalogField() catalog.Field {
	switch f {
	case fieldName:
		return catalog.FieldName
	case fieldPrice:
		return catalog.FieldPrice
	case fieldCategory:
		return catalog.FieldCategory
	case fieldStock:
		return catalog.FieldStock
	case fieldDescription:
		return catalog.FieldDescription
	}
	return catalog.FieldImage
}

// Form is the create/edit product screen: one text input per field, a
// category cycler, and inline per-field errors. The same form serves both
// halves of the edit-session state machine; editing carries the id of the
// product under edit.
type Form struct {
	inputs   [fieldCount]textinput.Model
	category int // index into catalog.Categories; -1 when unset
	focus    formField
	errors   catalog.FieldErrors
	editing  string
	title    string
	help     string
}

func newForm() *Form {
	f := &Form{
		category: -1,
		errors:   catalog.FieldErrors{},
		help:     "tab/shift+tab fields · enter submit · esc cancel",
	}
	placeholders := [fieldCount]string{
		fieldName:        "product name",
		fieldPrice:       "0.00",
		fieldStock:       "0",
		fieldDescription: "(optional)",
		fieldImage:       "(optional)",
	}
	limits := [fieldCount]int{
		fieldName:        100,
		fieldPrice:       16,
		fieldStock:       9,
		fieldDescription: 200,
		fieldImage:       200,
	}
	for field := fieldName; field < fieldCount; field++ {
		if field == fieldCategory {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = placeholders[field]
		ti.CharLimit = limits[field]
		f.inputs[field] = ti
	}
	return f
}

// newCreateForm returns an empty form for a new product.
func newCreateForm() *Form {
	f := newForm()
	f.title = "New Product"
	return f
}

// newEditForm returns a form pre-filled with the product's current
// fields.
func newEditForm(id string, d catalog.Draft) *Form {
	f := newForm()
	f.editing = id
	f.title = fmt.Sprintf("Edit %s", d.Name)
	f.inputs[fieldName].SetValue(d.Name)
	f.inputs[fieldPrice].SetValue(d.Price)
	f.inputs[fieldStock].SetValue(d.Stock)
	f.inputs[fieldDescription].SetValue(d.Description)
	f.inputs[fieldImage].SetValue(d.Image)
	for i, c := range catalog.Categories {
		if c == d.Category {
			f.category = i
			break
		}
	}
	return f
}

// Focus places the keyboard on the first field.
func (f *Form) Focus() tea.Cmd {
	f.focus = fieldName
	return f.inputs[fieldName].Focus()
}

// Draft collects the current field values.
func (f *Form) Draft() catalog.Draft {
	category := ""
	if f.category >= 0 && f.category < len(catalog.Categories) {
		category = catalog.Categories[f.category]
	}
	return catalog.Draft{
		Name:        f.inputs[fieldName].Value(),
		Price:       f.inputs[fieldPrice].Value(),
		Category:    category,
		Stock:       f.inputs[fieldStock].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Image:       f.inputs[fieldImage].Value(),
	}
}

// Editing returns the id of the product being edited, or false when the
// form is creating.
func (f *Form) Editing() (string, bool) {
	return f.editing, f.editing != ""
}

// Error returns the inline message for a field, if any.
func (f *Form) Error(field formField) string {
	return f.errors[field.catalogField()]
}

// Update processes a message. The returned booleans mirror the session
// form contract: done means a validated draft is ready to submit, cancel
// means the user backed out.
func (f *Form) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocusedInput(msg), false, false
	}
	switch key.String() {
	case "esc":
		return nil, false, true
	case "ctrl+c":
		return tea.Quit, false, false
	case "tab", "down":
		return f.moveFocus(1), false, false
	case "shift+tab", "up":
		return f.moveFocus(-1), false, false
	case "ctrl+u":
		if f.focus != fieldCategory && f.inputs[f.focus].Value() != "" {
			f.inputs[f.focus].SetValue("")
			f.inputs[f.focus].CursorStart()
		}
		return nil, false, false
	}
	if key.Type == tea.KeyEnter {
		if f.validateAll() {
			return nil, true, false
		}
		events.Form.Rejected(len(f.errors))
		return nil, false, false
	}
	if f.focus == fieldCategory {
		f.cycleCategory(key)
		return nil, false, false
	}
	return f.updateFocusedInput(msg), false, false
}

func (f *Form) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if f.focus == fieldCategory {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *Form) cycleCategory(key tea.KeyMsg) {
	switch key.Type {
	case tea.KeyLeft:
		if f.category <= 0 {
			f.category = len(catalog.Categories) - 1
		} else {
			f.category--
		}
	case tea.KeyRight, tea.KeySpace:
		f.category = (f.category + 1) % len(catalog.Categories)
	}
	f.validateField(fieldCategory)
}

// moveFocus shifts focus by delta, validating the field being left.
func (f *Form) moveFocus(delta int) tea.Cmd {
	f.validateField(f.focus)
	if f.focus != fieldCategory {
		f.inputs[f.focus].Blur()
	}
	next := (int(f.focus) + delta + int(fieldCount)) % int(fieldCount)
	f.focus = formField(next)
	if f.focus == fieldCategory {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

// validateField runs the single-field check used on loss of focus.
func (f *Form) validateField(field formField) {
	cf := field.catalogField()
	if msg := catalog.ValidateField(f.Draft(), cf); msg != "" {
		f.errors[cf] = msg
	} else {
		delete(f.errors, cf)
	}
}

// validateAll runs the exhaustive pre-submit check. On failure the focus
// jumps to the first failing field.
func (f *Form) validateAll() bool {
	f.errors = catalog.ValidateDraft(f.Draft())
	if f.errors.OK() {
		return true
	}
	for field := fieldName; field < fieldCount; field++ {
		if _, failing := f.errors[field.catalogField()]; failing {
			if f.focus != fieldCategory {
				f.inputs[f.focus].Blur()
			}
			f.focus = field
			if field != fieldCategory {
				f.inputs[field].Focus()
			}
			break
		}
	}
	return false
}

// handleActiveForm routes messages to the form while it owns the screen.
// Debounce and notice timers stay with the dispatch table: a search armed
// just before the form opened must still apply, and a notice must still
// expire.
func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode != ModeForm || m.form == nil {
		return false, nil
	}
	switch msg.(type) {
	case searchDebounceMsg, noticeExpireMsg:
		return false, nil
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		mode := "create"
		if _, editing := m.form.Editing(); editing {
			mode = "edit"
		}
		events.Form.Cancel(mode)
		m.controller.CancelEdit()
		m.form = nil
		m.mode = ModeBrowse
		return true, cmd
	}
	if done {
		return true, m.submitForm()
	}
	return true, cmd
}

// submitForm commits the validated draft through the controller and
// returns to the browse screen.
func (m *Model) submitForm() tea.Cmd {
	draft := m.form.Draft()
	p, notice, err := m.controller.Submit(draft)
	if err != nil {
		if invalid, ok := err.(*catalog.InvalidDraftError); ok {
			m.form.errors = invalid.Fields
			return nil
		}
		// Not-found on an edited product: absorb and fall back to browse.
		events.Catalog.NotFound("update", m.form.editing)
		m.form = nil
		m.mode = ModeBrowse
		return nil
	}
	if _, editing := m.form.Editing(); editing {
		events.Catalog.Update(p.ID, p.Name)
	} else {
		events.Catalog.Add(p.ID, p.Name)
	}
	events.Form.Submitted(p.ID, p.Name)
	m.form = nil
	m.mode = ModeBrowse
	m.browse.ClampCursor(len(m.visibleItems()))
	return m.setNotice(notice)
}
