package core

import (
	"strings"
	"testing"
)

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.GetCell(3, 2).Rune; got != 'X' {
		t.Errorf("GetCell(3,2) = %q, want 'X'", got)
	}

	s.SetColored(4, 2, 'Y', ColorOrange)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorOrange {
		t.Errorf("GetCell(4,2) = %+v, want {Y orange}", cell)
	}

	// Out of bounds writes are ignored, reads return a blank cell.
	s.Set(-1, 0, 'Z')
	s.Set(10, 0, 'Z')
	s.Set(0, 5, 'Z')
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, want blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '#', ColorRed)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, want blank", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "score")
	if got := s.Row(1); got != "  score   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge.
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCenteredClipsTail(t *testing.T) {
	// Text wider than the screen keeps its head and loses the tail.
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "abcdefghijkl")
	if got := s.Row(0); got != "abcdefghij" {
		t.Errorf("Row(0) = %q, want %q", got, "abcdefghij")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(Rect{X: 0, Y: 0, W: 5, H: 3})

	want := strings.Join([]string{
		"┌───┐ ",
		"│   │ ",
		"└───┘ ",
		"      ",
	}, "\n")

	if got := s.String(); got != want {
		t.Errorf("DrawBox rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(1, 1, 'A')
	s.Set(5, 2, 'B')

	s.Resize(4, 2)

	if got := s.GetCell(1, 1).Rune; got != 'A' {
		t.Errorf("cell (1,1) after shrink = %q, want 'A'", got)
	}
	if s.Width() != 4 || s.Height() != 2 {
		t.Errorf("size after resize = %dx%d, want 4x2", s.Width(), s.Height())
	}

	s.Resize(8, 4)
	if got := s.GetCell(1, 1).Rune; got != 'A' {
		t.Errorf("cell (1,1) after grow = %q, want 'A'", got)
	}
	if got := s.GetCell(7, 3).Rune; got != ' ' {
		t.Errorf("new cell after grow = %q, want blank", got)
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()

	if _, ok := f.Direction(); ok {
		t.Error("empty frame should have no direction")
	}

	f.Set(ActionLeft)
	dir, ok := f.Direction()
	if !ok || dir != ActionLeft {
		t.Errorf("Direction() = %v, %v; want ActionLeft, true", dir, ok)
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should drop all actions")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}
