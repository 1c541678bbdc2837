package textinput

import (
	"unicode"
	"unicode/utf8"
)

// isWordChar mirrors textfield_state.go's isWordChar exactly.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// runeBefore decodes the rune ending at byte offset pos in s.
func runeBefore(s string, pos int) rune {
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return r
}

// runeAt decodes the rune starting at byte offset pos in s.
func runeAt(s string, pos int) rune {
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return r
}

// WordBoundaryLeft walks left from pos to the start of the previous
// word, skipping trailing non-word runes first, mirroring
// textfield_state.go's MoveWordLeft. Exported for textarea's per-line
// word movement.
func WordBoundaryLeft(s string, pos int) int {
	for pos > 0 && !isWordChar(runeBefore(s, pos)) {
		_, size := utf8.DecodeLastRuneInString(s[:pos])
		pos -= size
	}
	for pos > 0 && isWordChar(runeBefore(s, pos)) {
		_, size := utf8.DecodeLastRuneInString(s[:pos])
		pos -= size
	}
	return pos
}

// WordBoundaryRight walks right from pos to the end of the next word,
// mirroring textfield_state.go's MoveWordRight.
func WordBoundaryRight(s string, pos int) int {
	n := len(s)
	for pos < n && isWordChar(runeAt(s, pos)) {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	for pos < n && !isWordChar(runeAt(s, pos)) {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}
