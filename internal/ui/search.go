package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfctl/shelfctl/internal/logging/events"
	uistate "github.com/shelfctl/shelfctl/internal/ui/state"
)

// searchDebounceInterval is the quiet period a search term must survive
// before it is applied to the catalog.
const searchDebounceInterval = 500 * time.Millisecond

// searchDebounceMsg fires when a debounce window closes. The sequence
// number identifies which keystroke armed it; stale ticks are dropped.
type searchDebounceMsg struct {
	seq int
}

// scheduleSearch arms the debounce timer for the current query text.
// Re-arming supersedes any pending application: only the tick carrying
// the latest sequence number is honoured when it arrives, so rapid
// keystrokes collapse into a single recomputation. Last write wins.
func (m *Model) scheduleSearch() tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	events.Filter.Pending(m.browse.Query)
	return tea.Tick(searchDebounceInterval, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (m *Model) handleSearchDebounceMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(searchDebounceMsg)
	if !ok || tick.seq != m.searchSeq {
		return nil
	}
	m.applySearch()
	return nil
}

// applySearch pushes the pending query into the controller and positions
// the cursor on the closest match of the first result page.
func (m *Model) applySearch() {
	m.controller.Search(m.browse.Query)
	view := m.controller.View()
	m.browse.Cursor = 0
	if view.Search != "" && len(view.Items) > 0 {
		labels := make([]string, len(view.Items))
		for i, p := range view.Items {
			labels[i] = p.Name
		}
		if idx := uistate.BestMatchIndex(labels, view.Search); idx >= 0 {
			m.browse.Cursor = idx
		}
	}
	events.Filter.Applied(view.Search, view.Total)
}

// clearSearch drops both the pending query and the applied term without
// waiting out a debounce window.
func (m *Model) clearSearch() tea.Cmd {
	m.searchSeq++ // cancel any in-flight debounce tick
	changed := m.browse.ClearQuery()
	if m.controller.SearchTerm() != "" {
		changed = true
	}
	if !changed {
		return nil
	}
	m.queryCursorDirty = true
	m.applySearch()
	events.Filter.Cleared()
	return nil
}
