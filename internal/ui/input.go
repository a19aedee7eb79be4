package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shelfctl/shelfctl/internal/catalog"
	"github.com/shelfctl/shelfctl/internal/logging/events"
)

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

func (m *Model) noteQueryCursorChange(before int) {
	if before != m.browse.QueryCursorPos() {
		m.queryCursorDirty = true
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode == ModeConfirmDelete {
		return m.handleConfirmKey(key)
	}
	return m.handleBrowseKey(key)
}

func (m *Model) handleConfirmKey(key tea.KeyMsg) tea.Cmd {
	target := m.confirm
	switch key.String() {
	case "y", "Y", "enter":
		m.confirm = nil
		m.mode = ModeBrowse
		if target == nil {
			return nil
		}
		notice, ok := m.controller.Delete(target.id)
		if !ok {
			events.Catalog.NotFound("delete", target.id)
			return nil
		}
		events.Catalog.Delete(target.id, target.name)
		m.browse.ClampCursor(len(m.visibleItems()))
		return m.setNotice(notice)
	case "n", "N", "esc", "ctrl+c":
		m.confirm = nil
		m.mode = ModeBrowse
		return nil
	}
	return nil
}

func (m *Model) handleBrowseKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c":
		events.App.Exit("ctrl+c")
		return tea.Quit
	case "esc":
		if m.browse.Query != "" || m.controller.SearchTerm() != "" {
			return m.clearSearch()
		}
		events.App.Exit("escape")
		return tea.Quit
	case "tab":
		return m.toggleView()
	case "ctrl+n":
		return m.openCreateForm()
	case "ctrl+d":
		return m.requestDelete()
	case "ctrl+u":
		return m.clearSearch()
	case "ctrl+w":
		before := m.browse.QueryCursorPos()
		if !m.browse.DeleteQueryWordBackward() {
			return nil
		}
		m.noteQueryCursorChange(before)
		m.clearStatus()
		return m.scheduleSearch()
	case "ctrl+a":
		before := m.browse.QueryCursorPos()
		if !m.browse.MoveQueryCursorStart() {
			return nil
		}
		m.noteQueryCursorChange(before)
		return nil
	case "ctrl+e":
		before := m.browse.QueryCursorPos()
		if !m.browse.MoveQueryCursorEnd() {
			return nil
		}
		m.noteQueryCursorChange(before)
		return nil
	}
	switch key.Type {
	case tea.KeyEnter:
		return m.openEditForm()
	case tea.KeyUp:
		if m.browse.MoveCursorUp() {
			events.UI.Cursor(m.browse.Cursor)
		}
		return nil
	case tea.KeyDown:
		if m.browse.MoveCursorDown(len(m.visibleItems())) {
			events.UI.Cursor(m.browse.Cursor)
		}
		return nil
	case tea.KeyHome:
		if m.browse.MoveCursorHome(len(m.visibleItems())) {
			events.UI.Cursor(m.browse.Cursor)
		}
		return nil
	case tea.KeyEnd:
		if m.browse.MoveCursorEnd(len(m.visibleItems())) {
			events.UI.Cursor(m.browse.Cursor)
		}
		return nil
	case tea.KeyPgUp:
		return m.requestPage(m.controller.Page() - 1)
	case tea.KeyPgDown:
		return m.requestPage(m.controller.Page() + 1)
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := m.browse.QueryCursorPos()
		if !m.browse.DeleteQueryRuneBackward() {
			return nil
		}
		m.noteQueryCursorChange(before)
		m.clearStatus()
		return m.scheduleSearch()
	case tea.KeyLeft:
		before := m.browse.QueryCursorPos()
		if !m.browse.MoveQueryCursorRuneBackward() {
			return nil
		}
		m.noteQueryCursorChange(before)
		return nil
	case tea.KeyRight:
		before := m.browse.QueryCursorPos()
		if !m.browse.MoveQueryCursorRuneForward() {
			return nil
		}
		m.noteQueryCursorChange(before)
		return nil
	case tea.KeyRunes:
		if key.Alt || len(key.Runes) == 0 {
			return nil
		}
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		return m.appendToQuery(string(key.Runes))
	case tea.KeySpace:
		return m.appendToQuery(" ")
	}
	return nil
}

func (m *Model) appendToQuery(text string) tea.Cmd {
	before := m.browse.QueryCursorPos()
	if !m.browse.InsertQueryText(text) {
		return nil
	}
	m.noteQueryCursorChange(before)
	m.clearStatus()
	return m.scheduleSearch()
}

func (m *Model) toggleView() tea.Cmd {
	mode := catalog.ViewList
	if m.controller.Mode() == catalog.ViewList {
		mode = catalog.ViewCard
	}
	m.controller.SwitchView(mode)
	events.UI.ViewSwitch(mode.String())
	if m.verbose {
		return m.setNotice(catalog.Notice{Kind: catalog.NoticeInfo, Message: "Switched to " + mode.String() + " view"})
	}
	return nil
}

// requestPage forwards a page change to the controller; out-of-range
// requests are dropped without touching state.
func (m *Model) requestPage(n int) tea.Cmd {
	if !m.controller.ChangePage(n) {
		events.UI.PageRejected(n)
		return nil
	}
	view := m.controller.View()
	events.UI.PageChange(view.Page, view.TotalPages)
	m.browse.Cursor = 0
	m.browse.ClampCursor(len(view.Items))
	return nil
}

func (m *Model) openCreateForm() tea.Cmd {
	m.controller.CancelEdit()
	m.form = newCreateForm()
	m.mode = ModeForm
	events.Form.Open("create", "")
	return m.form.Focus()
}

func (m *Model) openEditForm() tea.Cmd {
	items := m.visibleItems()
	if len(items) == 0 {
		return nil
	}
	m.browse.ClampCursor(len(items))
	target := items[m.browse.Cursor]
	draft, ok := m.controller.BeginEdit(target.ID)
	if !ok {
		events.Catalog.NotFound("edit", target.ID)
		return nil
	}
	m.form = newEditForm(target.ID, draft)
	m.mode = ModeForm
	events.Form.Open("edit", target.ID)
	return m.form.Focus()
}

func (m *Model) requestDelete() tea.Cmd {
	items := m.visibleItems()
	if len(items) == 0 {
		return nil
	}
	m.browse.ClampCursor(len(items))
	target := items[m.browse.Cursor]
	m.confirm = &deleteTarget{id: target.ID, name: target.Name}
	m.mode = ModeConfirmDelete
	return nil
}

func (m *Model) clearStatus() {
	m.errMsg = ""
	m.clearNotice()
}

// queryPrompt renders the search line with an inline cursor, falling back
// to a placeholder while the query is empty.
func (m *Model) queryPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.queryCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.queryCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.queryCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.browse.Query
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			m.queryCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderQueryCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.browse.QueryCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	if pos < len(runes) {
		caretRune = string(runes[pos])
	}
	caret := m.renderQueryCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderQueryCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)

	base := m.queryCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.queryCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
	}
	return base.Render(char)
}
