// Package state holds the presentation-side browse state: the pending
// search query being edited and the cursor over the visible page slice.
package state

import "unicode"

// Browse tracks what the user is doing on the catalog screen. Query is
// the live search text; it only reaches the controller once the debounce
// window closes.
type Browse struct {
	Query       string
	QueryCursor int // rune offset into Query
	Cursor      int // index into the visible page slice
}

// QueryCursorPos returns the rune offset of the query cursor, clamped to
// the query bounds.
func (b *Browse) QueryCursorPos() int {
	runes := []rune(b.Query)
	if b.QueryCursor < 0 {
		return 0
	}
	if b.QueryCursor > len(runes) {
		return len(runes)
	}
	return b.QueryCursor
}

// SetQuery replaces the query and cursor position wholesale.
func (b *Browse) SetQuery(query string, cursor int) {
	b.Query = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	b.QueryCursor = cursor
}

// InsertQueryText inserts text into the query at the cursor position.
func (b *Browse) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	b.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes a rune before the query cursor.
func (b *Browse) DeleteQueryRuneBackward() bool {
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	b.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the cursor.
func (b *Browse) DeleteQueryWordBackward() bool {
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	b.SetQuery(string(updated), i)
	return true
}

// ClearQuery empties the query.
func (b *Browse) ClearQuery() bool {
	if b.Query == "" {
		return false
	}
	b.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (b *Browse) MoveQueryCursorStart() bool {
	if b.QueryCursorPos() == 0 {
		return false
	}
	b.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (b *Browse) MoveQueryCursorEnd() bool {
	end := len([]rune(b.Query))
	if b.QueryCursorPos() == end {
		return false
	}
	b.QueryCursor = end
	return true
}

// MoveQueryCursorRuneBackward moves the query cursor one rune backward.
func (b *Browse) MoveQueryCursorRuneBackward() bool {
	if b.QueryCursorPos() == 0 {
		return false
	}
	b.QueryCursor = b.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune forward.
func (b *Browse) MoveQueryCursorRuneForward() bool {
	runes := []rune(b.Query)
	pos := b.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	b.QueryCursor = pos + 1
	return true
}

// ClampCursor keeps the item cursor inside [0, visible).
func (b *Browse) ClampCursor(visible int) {
	if visible <= 0 {
		b.Cursor = 0
		return
	}
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	if b.Cursor >= visible {
		b.Cursor = visible - 1
	}
}

// MoveCursorUp moves the item cursor up one entry.
func (b *Browse) MoveCursorUp() bool {
	if b.Cursor <= 0 {
		return false
	}
	b.Cursor--
	return true
}

// MoveCursorDown moves the item cursor down one entry, stopping at the
// last visible item.
func (b *Browse) MoveCursorDown(visible int) bool {
	if b.Cursor >= visible-1 {
		return false
	}
	b.Cursor++
	return true
}

// MoveCursorHome moves the item cursor to the first visible item.
func (b *Browse) MoveCursorHome(visible int) bool {
	if visible == 0 {
		b.Cursor = 0
		return false
	}
	old := b.Cursor
	b.Cursor = 0
	return old != b.Cursor
}

// MoveCursorEnd moves the item cursor to the last visible item.
func (b *Browse) MoveCursorEnd(visible int) bool {
	if visible == 0 {
		b.Cursor = 0
		return false
	}
	old := b.Cursor
	b.Cursor = visible - 1
	return old != b.Cursor
}
