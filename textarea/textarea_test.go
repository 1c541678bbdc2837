package textarea

import "testing"

func TestLineIndexRoundTripsEveryOffset(t *testing.T) {
	text := "foo\nbar\nbaz qux\n\nlast"
	idx := BuildLineIndex(text)
	for i := 0; i <= len(text); i++ {
		row, col := idx.OffsetToPosition(i)
		if got := idx.PositionToOffset(row, col); got != i {
			t.Fatalf("offset %d -> (%d,%d) -> %d, want %d", i, row, col, got, i)
		}
	}
}

func TestLineIndexLineBoundaries(t *testing.T) {
	idx := BuildLineIndex("foo\nbar\nbaz")
	if idx.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", idx.LineCount())
	}
	if s := idx.LineStart(1); s != 4 {
		t.Fatalf("LineStart(1) = %d, want 4", s)
	}
	if e := idx.LineEnd(1); e != 7 {
		t.Fatalf("LineEnd(1) = %d, want 7", e)
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	s := New("hello world")
	s.cursor = 5
	s.InsertNewline()
	if s.Value() != "hello\n world" {
		t.Fatalf("text %q, want %q", s.Value(), "hello\n world")
	}
	if s.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", s.LineCount())
	}
}

func TestDeleteBackwardMergesLines(t *testing.T) {
	s := New("foo\nbar")
	s.cursor = 4 // start of second line
	if !s.DeleteBackward() {
		t.Fatal("expected delete to succeed")
	}
	if s.Value() != "foobar" {
		t.Fatalf("text %q, want foobar", s.Value())
	}
	row, col := s.Position()
	if row != 0 || col != 3 {
		t.Fatalf("position (%d,%d), want (0,3)", row, col)
	}
}

func TestMoveUpDownPreservesPreferredColumn(t *testing.T) {
	s := New("abcdef\nxy\nuvwxyz")
	s.cursor = 5 // row 0, col 5
	s.MoveDown() // row 1 only has 2 cols, clamps to col 2
	if row, col := s.Position(); row != 1 || col != 2 {
		t.Fatalf("after MoveDown: (%d,%d), want (1,2)", row, col)
	}
	s.MoveDown() // row 2 has 6 cols, should restore preferred col 5
	if row, col := s.Position(); row != 2 || col != 5 {
		t.Fatalf("after second MoveDown: (%d,%d), want (2,5)", row, col)
	}
}

func TestMoveUpDownResetsPreferredColumnOnHorizontalMove(t *testing.T) {
	s := New("abcdef\nxy\nuvwxyz")
	s.cursor = 5
	s.MoveDown()
	s.MoveLeft() // horizontal move should drop the remembered column
	s.MoveDown()
	if row, col := s.Position(); row != 2 || col != 1 {
		t.Fatalf("position (%d,%d), want (2,1)", row, col)
	}
}

func TestDeleteWordBackwardWithinLine(t *testing.T) {
	s := New("foo bar")
	s.cursor = len(s.Value())
	s.DeleteWordBackward()
	if s.Value() != "foo " {
		t.Fatalf("text %q, want %q", s.Value(), "foo ")
	}
}

func TestSelectionDeletesAcrossLines(t *testing.T) {
	s := New("foo\nbar\nbaz")
	s.cursor = 1
	s.StartSelection()
	s.cursor = 9
	s.ExtendSelection()
	s.Insert("X")
	if s.Value() != "fXaz" {
		t.Fatalf("text %q, want fXaz", s.Value())
	}
}

func TestEnsureCursorVisibleScrollsBothAxes(t *testing.T) {
	s := New("a\nb\nc\nd\ne")
	s.ViewportRows = 2
	s.ViewportCols = 10
	s.cursor = s.indexOffsetForTest(4, 0)
	s.EnsureCursorVisible()
	if s.ScrollRow != 3 {
		t.Fatalf("ScrollRow = %d, want 3", s.ScrollRow)
	}
}

func (t *State) indexOffsetForTest(row, col int) int {
	t.ensureIndex()
	return t.index.PositionToOffset(row, col)
}
