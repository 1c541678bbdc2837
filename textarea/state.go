package textarea

import "github.com/ashenforge/ecsui/textinput"

// TextSelection holds an anchor and a cursor, both buffer-wide byte
// offsets; equal means no selection.
type TextSelection struct {
	Anchor int
	Cursor int
}

func (s TextSelection) HasSelection() bool { return s.Anchor != s.Cursor }

func (s TextSelection) Range() (int, int) {
	if s.Anchor < s.Cursor {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// State is a multi-line editable text buffer. Unlike editor_state.go's
// EditorState, which stores lines as a []string and must rejoin them
// with "\n" on every Value() call, State keeps one contiguous string
// and a LineIndex rebuilt only when the content actually changes.
type State struct {
	text      string
	cursor    int // byte offset
	selection TextSelection

	preferredCol int // byte col remembered across MoveUp/MoveDown, -1 if unset
	ScrollRow    int
	ScrollCol    int
	ViewportRows int
	ViewportCols int

	index *LineIndex
}

// New returns a textarea pre-loaded with initial text, cursor at 0.
func New(initial string) *State {
	s := &State{text: initial, preferredCol: -1}
	s.index = BuildLineIndex(initial)
	return s
}

func (t *State) ensureIndex() {
	if t.index == nil || t.index.StaleFor(t.text) {
		t.index = BuildLineIndex(t.text)
	}
}

// Value returns the full buffer text.
func (t *State) Value() string { return t.text }

// Cursor returns the cursor's byte offset into the buffer.
func (t *State) Cursor() int { return t.cursor }

// Position returns the cursor as a (row, col) pair.
func (t *State) Position() (row, col int) {
	t.ensureIndex()
	return t.index.OffsetToPosition(t.cursor)
}

// LineCount returns the number of lines.
func (t *State) LineCount() int {
	t.ensureIndex()
	return t.index.LineCount()
}

// Line returns the text of row, without its trailing newline.
func (t *State) Line(row int) string {
	t.ensureIndex()
	return t.text[t.index.LineStart(row):t.index.LineEnd(row)]
}

// SetValue replaces the buffer outright, cursor moves to 0.
func (t *State) SetValue(s string) {
	t.text = s
	t.cursor = 0
	t.selection = TextSelection{}
	t.preferredCol = -1
	t.index = BuildLineIndex(s)
}

// Clear empties the buffer.
func (t *State) Clear() { t.SetValue("") }

// Insert adds s at the cursor, or replaces the selection with s if one
// is active. s may itself contain newlines.
func (t *State) Insert(s string) {
	if t.selection.HasSelection() {
		t.deleteSelection()
	}
	t.text = t.text[:t.cursor] + s + t.text[t.cursor:]
	t.cursor += len(s)
	t.preferredCol = -1
	t.ensureIndex()
}

// InsertNewline splits the current line at the cursor, mirroring
// editor_state.go's InsertNewline.
func (t *State) InsertNewline() { t.Insert("\n") }

// DeleteBackward removes the grapheme cluster before the cursor, or
// merges with the previous line at column 0, or deletes the selection.
func (t *State) DeleteBackward() bool {
	if t.selection.HasSelection() {
		return t.deleteSelection()
	}
	if t.cursor == 0 {
		return false
	}
	start := textinput.PrevGraphemeBoundary(t.text, t.cursor)
	t.text = t.text[:start] + t.text[t.cursor:]
	t.cursor = start
	t.preferredCol = -1
	t.ensureIndex()
	return true
}

// DeleteForward removes the grapheme cluster at the cursor, or merges
// with the next line, or deletes the selection.
func (t *State) DeleteForward() bool {
	if t.selection.HasSelection() {
		return t.deleteSelection()
	}
	if t.cursor >= len(t.text) {
		return false
	}
	end := textinput.NextGraphemeBoundary(t.text, t.cursor)
	t.text = t.text[:t.cursor] + t.text[end:]
	t.ensureIndex()
	return true
}

func (t *State) deleteSelection() bool {
	lo, hi := t.selection.Range()
	if lo == hi {
		return false
	}
	t.text = t.text[:lo] + t.text[hi:]
	t.cursor = lo
	t.selection = TextSelection{}
	t.preferredCol = -1
	t.ensureIndex()
	return true
}

// DeleteWordBackward removes the word before the cursor, mirroring
// editor_state.go's DeleteWordBackward.
func (t *State) DeleteWordBackward() bool {
	row, col := t.Position()
	line := t.Line(row)
	if col == 0 {
		return t.DeleteBackward()
	}
	start := textinput.WordBoundaryLeft(line, col)
	lineStart := t.cursor - col
	t.text = t.text[:lineStart+start] + t.text[t.cursor:]
	t.cursor = lineStart + start
	t.preferredCol = -1
	t.ensureIndex()
	return true
}

// DeleteWordForward removes the word after the cursor.
func (t *State) DeleteWordForward() bool {
	row, col := t.Position()
	line := t.Line(row)
	if col >= len(line) {
		return t.DeleteForward()
	}
	end := textinput.WordBoundaryRight(line, col)
	lineStart := t.cursor - col
	t.text = t.text[:t.cursor] + t.text[lineStart+end:]
	t.ensureIndex()
	return true
}

// DeleteToEndOfLine removes from the cursor to the end of the current
// line, or merges with the next line if already at end.
func (t *State) DeleteToEndOfLine() bool {
	row, _ := t.Position()
	t.ensureIndex()
	end := t.index.LineEnd(row)
	if t.cursor < end {
		t.text = t.text[:t.cursor] + t.text[end:]
		t.ensureIndex()
		return true
	}
	return t.DeleteForward()
}

// DeleteToStartOfLine removes from the start of the current line to
// the cursor.
func (t *State) DeleteToStartOfLine() bool {
	row, col := t.Position()
	if col == 0 {
		return false
	}
	t.ensureIndex()
	start := t.index.LineStart(row)
	t.text = t.text[:start] + t.text[t.cursor:]
	t.cursor = start
	t.preferredCol = -1
	t.ensureIndex()
	return true
}

// MoveLeft moves the cursor back one grapheme cluster, wrapping to the
// previous line's end at column 0.
func (t *State) MoveLeft() {
	if t.cursor > 0 {
		t.cursor = textinput.PrevGraphemeBoundary(t.text, t.cursor)
	}
	t.preferredCol = -1
}

// MoveRight moves the cursor forward one grapheme cluster, wrapping to
// the next line's start at end of line.
func (t *State) MoveRight() {
	if t.cursor < len(t.text) {
		t.cursor = textinput.NextGraphemeBoundary(t.text, t.cursor)
	}
	t.preferredCol = -1
}

// MoveWordLeft moves to the previous word boundary on the current
// line, or to the previous line's end if already at column 0.
func (t *State) MoveWordLeft() {
	row, col := t.Position()
	if col == 0 {
		if row > 0 {
			t.ensureIndex()
			t.cursor = t.index.LineEnd(row - 1)
		}
		t.preferredCol = -1
		return
	}
	line := t.Line(row)
	lineStart := t.cursor - col
	t.cursor = lineStart + textinput.WordBoundaryLeft(line, col)
	t.preferredCol = -1
}

// MoveWordRight moves to the next word boundary on the current line,
// or to the next line's start if already at the line's end.
func (t *State) MoveWordRight() {
	row, col := t.Position()
	line := t.Line(row)
	if col >= len(line) {
		t.ensureIndex()
		if row+1 < t.index.LineCount() {
			t.cursor = t.index.LineStart(row + 1)
		}
		t.preferredCol = -1
		return
	}
	lineStart := t.cursor - col
	t.cursor = lineStart + textinput.WordBoundaryRight(line, col)
	t.preferredCol = -1
}

// MoveUp moves the cursor to the previous line, preferring the column
// last used across a run of MoveUp/MoveDown calls rather than
// snapping to whatever column the new line happens to clamp to —
// editor_state.go's MoveUp has no such memory, so a vertical move
// through a short line permanently forgets the original column.
func (t *State) MoveUp() {
	row, col := t.Position()
	if row == 0 {
		return
	}
	if t.preferredCol < 0 {
		t.preferredCol = col
	}
	t.ensureIndex()
	t.cursor = t.index.PositionToOffset(row-1, t.preferredCol)
}

// MoveDown moves the cursor to the next line, same preferred-column
// rule as MoveUp.
func (t *State) MoveDown() {
	row, col := t.Position()
	t.ensureIndex()
	if row+1 >= t.index.LineCount() {
		return
	}
	if t.preferredCol < 0 {
		t.preferredCol = col
	}
	t.cursor = t.index.PositionToOffset(row+1, t.preferredCol)
}

// Home moves the cursor to the start of the current line.
func (t *State) Home() {
	row, _ := t.Position()
	t.ensureIndex()
	t.cursor = t.index.LineStart(row)
	t.preferredCol = -1
}

// End moves the cursor to the end of the current line.
func (t *State) End() {
	row, _ := t.Position()
	t.ensureIndex()
	t.cursor = t.index.LineEnd(row)
	t.preferredCol = -1
}

// StartSelection anchors a selection at the current cursor.
func (t *State) StartSelection() { t.selection = TextSelection{Anchor: t.cursor, Cursor: t.cursor} }

// ExtendSelection moves the selection's cursor end to the current
// cursor, keeping the anchor in place.
func (t *State) ExtendSelection() { t.selection.Cursor = t.cursor }

// ClearSelection drops any active selection.
func (t *State) ClearSelection() { t.selection = TextSelection{} }

// Selection returns the current selection.
func (t *State) Selection() TextSelection { return t.selection }

// EnsureCursorVisible adjusts ScrollRow/ScrollCol so the cursor falls
// within a ViewportRows x ViewportCols window, mirroring
// scroll_state.go's EnsureVisible generalized to two axes.
func (t *State) EnsureCursorVisible() {
	row, col := t.Position()
	if t.ViewportRows > 0 {
		if row < t.ScrollRow {
			t.ScrollRow = row
		} else if row >= t.ScrollRow+t.ViewportRows {
			t.ScrollRow = row - t.ViewportRows + 1
		}
	}
	if t.ViewportCols > 0 {
		if col < t.ScrollCol {
			t.ScrollCol = col
		} else if col >= t.ScrollCol+t.ViewportCols {
			t.ScrollCol = col - t.ViewportCols + 1
		}
	}
}
