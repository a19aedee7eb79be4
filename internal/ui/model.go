package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfctl/shelfctl/internal/catalog"
	"github.com/shelfctl/shelfctl/internal/theme"
	uistate "github.com/shelfctl/shelfctl/internal/ui/state"
)

// Mode selects which screen owns the keyboard.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
	ModeConfirmDelete
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// deleteTarget is a pending delete awaiting y/n confirmation.
type deleteTarget struct {
	id   string
	name string
}

// Model implements the Bubble Tea model for the catalog editor. All
// catalog and session state lives in the embedded controller; the model
// only adds presentation concerns (pending search text, cursors, the
// active form, transient notices).
type Model struct {
	controller *catalog.Controller
	mode       Mode
	browse     uistate.Browse
	form       *Form
	confirm    *deleteTarget

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	notice     string
	noticeKind catalog.NoticeKind
	noticeSeq  int

	searchSeq int

	queryCursor      cursor.Model
	queryCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with an empty catalog and session defaults.
func NewModel(width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		controller: catalog.NewController(),
		mode:       ModeBrowse,
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.queryCursor = c
	m.registerHandlers()
	return m
}

// Controller exposes the underlying catalog controller, used by tests and
// by startup seeding.
func (m *Model) Controller() *catalog.Controller {
	return m.controller
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.queryCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(searchDebounceMsg{}): m.handleSearchDebounceMsg,
		reflect.TypeOf(noticeExpireMsg{}):   m.handleNoticeExpireMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.queryCursorDirty {
		m.queryCursorDirty = false
		m.queryCursor.Blink = false
		if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// visibleItems returns the derived slice for the current page.
func (m *Model) visibleItems() []catalog.Product {
	return m.controller.View().Items
}
