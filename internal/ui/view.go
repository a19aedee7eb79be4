package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/shelfctl/shelfctl/internal/catalog"
	"github.com/shelfctl/shelfctl/internal/format/table"
)

const (
	maxNameColumnWidth = 32
	cardWidth          = 30
	cardsPerRow        = 2
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; pass through untouched
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.header()
	switch m.mode {
	case ModeForm:
		if m.form != nil {
			return m.viewForm(header)
		}
	case ModeConfirmDelete:
		if m.confirm != nil {
			return m.viewConfirm(header)
		}
	}
	return m.viewBrowse(header)
}

func (m *Model) header() string {
	segments := []string{"shelfctl", "products"}
	if term := m.controller.SearchTerm(); term != "" {
		segments = append(segments, fmt.Sprintf("%q", term))
	}
	return strings.Join(segments, " → ")
}

func (m *Model) viewBrowse(header string) string {
	view := m.controller.View()
	m.browse.ClampCursor(len(view.Items))

	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: header, style: styles.Header})
	lines = append(lines, styledLine{})

	if len(view.Items) == 0 {
		msg := "(no products)"
		if view.Search != "" {
			msg = fmt.Sprintf("No matches for %q", view.Search)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else if view.Mode == catalog.ViewCard {
		lines = append(lines, m.cardLines(view)...)
	} else {
		lines = append(lines, m.listLines(view)...)
	}

	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.paginationLine(view), style: styles.Footer})

	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{
			text:  "↑/↓ move  enter edit  ctrl+n new  ctrl+d delete  tab view  pgup/pgdn page  esc quit",
			style: styles.Help,
		})
	}

	// Reserve 2 rows for the bottom bar (status + search prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	switch {
	case m.errMsg != "":
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.notice != "":
		noticeStyle := styles.Info
		if m.noticeKind == catalog.NoticeSuccess {
			noticeStyle = styles.Success
		}
		statusLine = styledLine{text: m.notice, style: noticeStyle}
	}
	bottomLines := applyWidth([]styledLine{statusLine}, m.width)
	bottomLines = append(bottomLines, styledLine{text: m.queryPrompt(), raw: true})
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// listLines renders the visible slice as an aligned table.
func (m *Model) listLines(view catalog.View) []styledLine {
	rows := make([][]string, 0, len(view.Items)+1)
	rows = append(rows, []string{"NAME", "CATEGORY", "PRICE", "STOCK"})
	for _, p := range view.Items {
		name := truncate.StringWithTail(p.Name, maxNameColumnWidth, "…")
		rows = append(rows, []string{
			name,
			p.Category,
			fmt.Sprintf("%.2f", p.Price),
			fmt.Sprintf("%d", p.Stock),
		})
	}
	formatted := table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignRight,
	})

	lines := make([]styledLine, 0, len(formatted))
	lines = append(lines, styledLine{text: "  " + formatted[0], style: styles.TableHeader})
	for i, row := range formatted[1:] {
		lines = append(lines, m.buildItemLine(row, i))
	}
	return lines
}

func (m *Model) buildItemLine(text string, idx int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	if idx == m.browse.Cursor {
		lineStyle = styles.SelectedItem
	}
	return styledLine{
		text:          indicator + " " + text,
		style:         lineStyle,
		prefixStyle:   styles.ItemIndicator,
		highlightFrom: 1, // just the ▌ character
	}
}

// cardLines renders the visible slice as a bordered card grid.
func (m *Model) cardLines(view catalog.View) []styledLine {
	cards := make([]string, 0, len(view.Items))
	for i, p := range view.Items {
		cards = append(cards, m.renderCard(p, i == m.browse.Cursor))
	}

	lines := make([]styledLine, 0, len(cards)*4)
	for start := 0; start < len(cards); start += cardsPerRow {
		end := start + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...)
		for _, line := range strings.Split(row, "\n") {
			lines = append(lines, styledLine{text: line, raw: true})
		}
	}
	return lines
}

func (m *Model) renderCard(p catalog.Product, selected bool) string {
	innerWidth := cardWidth - 2
	titleStyle := styles.CardTitle
	if selected {
		titleStyle = styles.SelectedItem
	}
	title := truncate.StringWithTail(p.Name, uint(innerWidth), "…")

	body := []string{
		renderWith(titleStyle, title),
		renderWith(styles.Badge, " "+p.Category+" "),
		renderWith(styles.Card, fmt.Sprintf("%.2f · %d in stock", p.Price, p.Stock)),
	}
	if p.Description != "" {
		desc := truncate.StringWithTail(p.Description, uint(innerWidth), "…")
		body = append(body, renderWith(styles.Card, desc))
	}
	image := truncate.StringWithTail(p.ImageURL(), uint(innerWidth), "…")
	body = append(body, renderWith(styles.Help, image))

	box := lipgloss.NewStyle().
		Border(styles.CardBorder).
		Padding(0, 1).
		Width(cardWidth)
	return box.Render(strings.Join(body, "\n"))
}

func (m *Model) paginationLine(view catalog.View) string {
	if view.Total == 0 {
		return "0 items"
	}
	noun := "items"
	if view.Total == 1 {
		noun = "item"
	}
	return fmt.Sprintf("page %d/%d · %d %s", view.Page, view.TotalPages, view.Total, noun)
}

func (m *Model) viewForm(header string) string {
	f := m.form
	lines := []styledLine{
		{text: header, style: styles.Header},
		{},
		{text: f.title, style: styles.Header},
		{},
	}
	for field := fieldName; field < fieldCount; field++ {
		focused := field == f.focus
		label := fieldLabels[field]
		labelStyle := styles.FormLabel
		prefix := "  "
		if focused {
			prefix = "▌ "
			labelStyle = styles.FilterPrompt
		}
		lines = append(lines, styledLine{text: prefix + label, style: labelStyle})
		if field == fieldCategory {
			lines = append(lines, styledLine{text: "    " + f.categoryView(), raw: true})
		} else {
			lines = append(lines, styledLine{text: "    " + f.inputs[field].View(), raw: true})
		}
		if msg := f.Error(field); msg != "" {
			lines = append(lines, styledLine{text: "    " + msg, style: styles.FormError})
		}
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: f.help, style: styles.Help})
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (f *Form) categoryView() string {
	label := "(choose)"
	if f.category >= 0 && f.category < len(catalog.Categories) {
		label = catalog.Categories[f.category]
	}
	return renderWith(styles.Filter, "‹ "+label+" ›")
}

func (m *Model) viewConfirm(header string) string {
	lines := []styledLine{
		{text: header, style: styles.Header},
		{},
		{text: fmt.Sprintf("Delete %q? (y/n)", m.confirm.name), style: styles.Error},
		{},
		{text: "y confirm · n cancel", style: styles.Help},
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func renderWith(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				if width == 1 {
					text = truncate.String(text, 1)
				} else {
					text = truncate.StringWithTail(text, uint(width-1), "…")
				}
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
