package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfctl/shelfctl/internal/catalog"
)

// noticeDisplayDuration is how long a transient notice stays on screen
// before auto-dismissing.
const noticeDisplayDuration = 4 * time.Second

// noticeExpireMsg fires when a notice's display window ends. Stale
// sequence numbers are ignored so a newer notice is never dismissed by an
// older timer.
type noticeExpireMsg struct {
	seq int
}

// setNotice shows a transient notification and arms its dismissal timer.
func (m *Model) setNotice(n catalog.Notice) tea.Cmd {
	m.notice = n.Message
	m.noticeKind = n.Kind
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeDisplayDuration, func(time.Time) tea.Msg {
		return noticeExpireMsg{seq: seq}
	})
}

func (m *Model) handleNoticeExpireMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(noticeExpireMsg)
	if !ok || tick.seq != m.noticeSeq {
		return nil
	}
	m.clearNotice()
	return nil
}

func (m *Model) clearNotice() {
	m.notice = ""
}
