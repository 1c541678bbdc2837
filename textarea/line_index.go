// Package textarea implements a multi-line editable text buffer with
// byte-offset/row-column translation, grounded on
// terminal/tui/editor_state.go's EditorState generalized from a
// []string-of-lines model (which loses the original newline bytes and
// must re-join them on Value()) to a single contiguous byte buffer
// indexed by line offsets, the same way textinput moved
// textfield_state.go's []rune buffer to grapheme-indexed bytes.
package textarea

import "hash/fnv"

// LineIndex maps byte offsets into a buffer to (row, col) positions
// and back, rebuilt whenever the buffer's content hash changes.
type LineIndex struct {
	lineStarts []int // byte offset of the first byte of each line
	length     int
	hash       uint64
}

func contentHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// BuildLineIndex scans text once, recording the byte offset each line
// begins at; a line is the span between newlines, and the newline
// itself belongs to no line.
func BuildLineIndex(text string) *LineIndex {
	idx := &LineIndex{lineStarts: []int{0}, length: len(text), hash: contentHash(text)}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			idx.lineStarts = append(idx.lineStarts, i+1)
		}
	}
	return idx
}

// StaleFor reports whether text has changed since idx was built.
func (idx *LineIndex) StaleFor(text string) bool {
	return idx.length != len(text) || idx.hash != contentHash(text)
}

// LineCount returns the number of lines (always at least 1).
func (idx *LineIndex) LineCount() int {
	return len(idx.lineStarts)
}

// LineStart returns the byte offset row begins at.
func (idx *LineIndex) LineStart(row int) int {
	if row < 0 {
		row = 0
	}
	if row >= len(idx.lineStarts) {
		row = len(idx.lineStarts) - 1
	}
	return idx.lineStarts[row]
}

// LineEnd returns the byte offset row ends at, exclusive of its
// trailing newline (or the buffer length, for the last line).
func (idx *LineIndex) LineEnd(row int) int {
	if row < 0 {
		row = 0
	}
	if row+1 < len(idx.lineStarts) {
		return idx.lineStarts[row+1] - 1
	}
	return idx.length
}

// OffsetToPosition converts a byte offset into a (row, col) pair, col
// itself a byte offset within the row.
func (idx *LineIndex) OffsetToPosition(offset int) (row, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > idx.length {
		offset = idx.length
	}
	row = 0
	for row+1 < len(idx.lineStarts) && idx.lineStarts[row+1] <= offset {
		row++
	}
	return row, offset - idx.lineStarts[row]
}

// PositionToOffset converts a (row, col) pair back to a byte offset,
// clamping col to the row's actual length. PositionToOffset and
// OffsetToPosition are exact inverses for any offset in [0, length]:
// PositionToOffset(OffsetToPosition(i)) == i.
func (idx *LineIndex) PositionToOffset(row, col int) int {
	if row < 0 {
		row = 0
	}
	if row >= len(idx.lineStarts) {
		row = len(idx.lineStarts) - 1
	}
	start := idx.lineStarts[row]
	end := idx.LineEnd(row)
	if col < 0 {
		col = 0
	}
	if start+col > end {
		col = end - start
	}
	return start + col
}
