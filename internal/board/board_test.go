package board

import "testing"

func TestFromRowsValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr bool
	}{
		{
			name: "valid board",
			rows: [][]int{
				{2, 4, 0, 0},
				{0, 8, 16, 0},
				{0, 0, 32, 64},
				{0, 0, 0, 2048},
			},
		},
		{
			name: "non power of two",
			rows: [][]int{
				{2, 3, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantErr: true,
		},
		{
			name: "one is not a tile",
			rows: [][]int{
				{1, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantErr: true,
		},
		{
			name: "negative value",
			rows: [][]int{
				{-2, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantErr: true,
		},
		{
			name: "ragged rows",
			rows: [][]int{
				{2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantErr: true,
		},
		{
			name:    "too small",
			rows:    [][]int{{2}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows)
			if tt.wantErr && err == nil {
				t.Error("FromRows() accepted an invalid board")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("FromRows() rejected a valid board: %v", err)
			}
		})
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{
			name: "full board no adjacent pairs is terminal",
			rows: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "full board with horizontal pair",
			rows: [][]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "full board with vertical pair",
			rows: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{32, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "empty cell always movable",
			rows: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows)
			if got := b.CanMove(); got != tt.want {
				t.Errorf("CanMove() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalBoardIsNoOpInAllDirections(t *testing.T) {
	// The adjacency scan must agree with simulating all four slides.
	b := mustBoard(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if res := Slide(b, dir); res.Moved {
			t.Errorf("terminal board changed on slide %v", dir)
		}
	}
}

func TestMaxTile(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})

	if got := b.MaxTile(); got != 2048 {
		t.Errorf("MaxTile() = %d, want 2048", got)
	}

	if got := New(4).MaxTile(); got != 0 {
		t.Errorf("MaxTile() on empty board = %d, want 0", got)
	}
}

func TestEmptyCells(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := b.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells() count = %d, want 8", len(cells))
	}
	for _, c := range cells {
		if b.At(c.X, c.Y) != 0 {
			t.Errorf("EmptyCells() reported occupied cell (%d,%d)", c.X, c.Y)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	c := b.Clone()
	c.set(0, 0, 4)

	if b.At(0, 0) != 2 {
		t.Error("mutating a clone changed the original board")
	}
}
