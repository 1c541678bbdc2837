package textinput

// TextSelection holds an anchor and a cursor; equal means no
// selection, mirroring how a mouse-drag selection is usually modeled
// as two offsets into the same buffer.
type TextSelection struct {
	Anchor int
	Cursor int
}

// HasSelection reports whether anchor and cursor differ.
func (s TextSelection) HasSelection() bool {
	return s.Anchor != s.Cursor
}

// Range returns the selection as an ordered [low, high) byte range.
func (s TextSelection) Range() (int, int) {
	if s.Anchor < s.Cursor {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// State is a single-line editable text buffer, grounded on
// textfield_state.go's TextFieldState with the rune slice replaced by
// a byte string and the cursor's unit of movement by grapheme cluster.
type State struct {
	text      string
	cursor    int // byte offset, always on a grapheme boundary
	selection TextSelection
	MaxLength int // grapheme cluster cap, 0 = unlimited

	blinkTimer float64
	blinkOn    bool
}

// New returns a field pre-loaded with initial text, cursor at the end.
func New(initial string, maxLength int) *State {
	return &State{text: initial, cursor: len(initial), MaxLength: maxLength, blinkOn: true}
}

// Value returns the current text.
func (t *State) Value() string { return t.text }

// Cursor returns the current byte offset.
func (t *State) Cursor() int { return t.cursor }

// Len returns the grapheme cluster count, respected against MaxLength.
func (t *State) Len() int { return ClusterCount(t.text) }

// SetValue replaces the text outright and moves the cursor to the end.
func (t *State) SetValue(s string) {
	t.text = s
	t.cursor = len(s)
	t.selection = TextSelection{}
}

// Clear empties the field.
func (t *State) Clear() {
	t.text = ""
	t.cursor = 0
	t.selection = TextSelection{}
}

// Insert adds s at the cursor, or replaces the selection with s if one
// is active, refusing the insert entirely if it would push the
// grapheme count past MaxLength.
func (t *State) Insert(s string) bool {
	if t.selection.HasSelection() {
		t.deleteSelection()
	}
	if t.MaxLength > 0 && t.Len()+ClusterCount(s) > t.MaxLength {
		return false
	}
	t.text = t.text[:t.cursor] + s + t.text[t.cursor:]
	t.cursor += len(s)
	return true
}

// DeleteBackward removes the grapheme cluster before the cursor, or
// the selection if one is active.
func (t *State) DeleteBackward() bool {
	if t.selection.HasSelection() {
		return t.deleteSelection()
	}
	if t.cursor == 0 {
		return false
	}
	start := PrevGraphemeBoundary(t.text, t.cursor)
	t.text = t.text[:start] + t.text[t.cursor:]
	t.cursor = start
	return true
}

// DeleteForward removes the grapheme cluster at the cursor, or the
// selection if one is active.
func (t *State) DeleteForward() bool {
	if t.selection.HasSelection() {
		return t.deleteSelection()
	}
	if t.cursor >= len(t.text) {
		return false
	}
	end := NextGraphemeBoundary(t.text, t.cursor)
	t.text = t.text[:t.cursor] + t.text[end:]
	return true
}

// DeleteWordBackward removes the word before the cursor.
func (t *State) DeleteWordBackward() bool {
	if t.cursor == 0 {
		return false
	}
	start := WordBoundaryLeft(t.text, t.cursor)
	t.text = t.text[:start] + t.text[t.cursor:]
	t.cursor = start
	return true
}

// DeleteWordForward removes the word after the cursor.
func (t *State) DeleteWordForward() bool {
	if t.cursor >= len(t.text) {
		return false
	}
	end := WordBoundaryRight(t.text, t.cursor)
	t.text = t.text[:t.cursor] + t.text[end:]
	return true
}

// DeleteToEnd removes from the cursor to the end of the text.
func (t *State) DeleteToEnd() bool {
	if t.cursor >= len(t.text) {
		return false
	}
	t.text = t.text[:t.cursor]
	return true
}

// DeleteToStart removes from the start of the text to the cursor.
func (t *State) DeleteToStart() bool {
	if t.cursor == 0 {
		return false
	}
	t.text = t.text[t.cursor:]
	t.cursor = 0
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
	return true
}

// MoveLeft moves the cursor back one grapheme cluster.
func (t *State) MoveLeft() {
	if t.cursor > 0 {
		t.cursor = PrevGraphemeBoundary(t.text, t.cursor)
	}
}

// MoveRight moves the cursor forward one grapheme cluster.
func (t *State) MoveRight() {
	if t.cursor < len(t.text) {
		t.cursor = NextGraphemeBoundary(t.text, t.cursor)
	}
}

// MoveWordLeft moves the cursor to the previous word boundary.
func (t *State) MoveWordLeft() { t.cursor = WordBoundaryLeft(t.text, t.cursor) }

// MoveWordRight moves the cursor to the next word boundary.
func (t *State) MoveWordRight() { t.cursor = WordBoundaryRight(t.text, t.cursor) }

// Home moves the cursor to the start of the text.
func (t *State) Home() { t.cursor = 0 }

// End moves the cursor to the end of the text.
func (t *State) End() { t.cursor = len(t.text) }

// StartSelection anchors a selection at the current cursor.
func (t *State) StartSelection() { t.selection = TextSelection{Anchor: t.cursor, Cursor: t.cursor} }

// ExtendSelection moves the cursor, keeping the anchor in place.
func (t *State) ExtendSelection() { t.selection.Cursor = t.cursor }

// ClearSelection drops any active selection without touching the text.
func (t *State) ClearSelection() { t.selection = TextSelection{} }

// Selection returns the current selection.
func (t *State) Selection() TextSelection { return t.selection }

// AdjustBlink advances the caret blink phase by dt seconds, toggling
// every half second; a host calls this once per frame and reads
// BlinkOn to decide whether to draw the caret this frame.
func (t *State) AdjustBlink(dt float64) {
	t.blinkTimer += dt
	if t.blinkTimer >= 0.5 {
		t.blinkTimer -= 0.5
		t.blinkOn = !t.blinkOn
	}
}

// BlinkOn reports whether the caret should be drawn this frame.
func (t *State) BlinkOn() bool { return t.blinkOn }

// ResetBlink forces the caret visible and restarts the blink phase,
// called whenever the cursor moves so the caret doesn't disappear
// mid-edit.
func (t *State) ResetBlink() {
	t.blinkTimer = 0
	t.blinkOn = true
}
