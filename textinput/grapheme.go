// Package textinput implements a single-line editable text buffer with
// a byte cursor that moves by grapheme cluster rather than by byte or
// rune, grounded on terminal/tui/textfield_state.go's TextFieldState
// generalized from a []rune buffer (one cursor step per code point) to
// a string buffer segmented by github.com/clipperhouse/uax29/v2, since
// a code point is not always a user-perceived character (combining
// marks, flag sequences).
package textinput

import "github.com/clipperhouse/uax29/v2/graphemes"

// boundaries returns every grapheme-cluster boundary in s as byte
// offsets, starting at 0 and ending at len(s) inclusive.
func boundaries(s string) []int {
	bounds := make([]int, 1, 8)
	bounds[0] = 0
	offset := 0
	seg := graphemes.FromString(s)
	for seg.Next() {
		offset += len(seg.Value())
		bounds = append(bounds, offset)
	}
	return bounds
}

// NextGraphemeBoundary returns the smallest grapheme boundary strictly
// after pos, or len(s) if pos is already at or past the last cluster.
// Exported so textarea's per-line cursor movement can reuse it rather
// than re-segmenting graphemes on its own.
func NextGraphemeBoundary(s string, pos int) int {
	for _, b := range boundaries(s) {
		if b > pos {
			return b
		}
	}
	return len(s)
}

// PrevGraphemeBoundary returns the largest grapheme boundary strictly
// before pos, or 0 if pos is already at or before the first cluster.
func PrevGraphemeBoundary(s string, pos int) int {
	best := 0
	for _, b := range boundaries(s) {
		if b < pos {
			best = b
		} else {
			break
		}
	}
	return best
}

// ClusterCount returns the number of grapheme clusters in s.
func ClusterCount(s string) int {
	n := 0
	seg := graphemes.FromString(s)
	for seg.Next() {
		n++
	}
	return n
}
