// Package board implements the 2048 grid and its pure move logic:
// sliding, merging, tile spawning and terminal-state detection.
// It has no dependencies beyond math/rand so it stays trivially testable.
package board

import "fmt"

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Cell identifies a single grid position.
type Cell struct {
	X, Y int
}

// Board is a square grid of tile values. 0 means empty; every non-zero
// value is a power of two >= 2.
type Board struct {
	size  int
	cells []int // row-major
}

// New creates an empty board of the given dimension.
// Panics on dimensions smaller than 2, which is a programming error.
func New(size int) Board {
	if size < 2 {
		panic(fmt.Sprintf("board: invalid size %d", size))
	}
	return Board{
		size:  size,
		cells: make([]int, size*size),
	}
}

// FromRows builds a board from row-major values, validating the tile
// invariant: every non-zero value must be a power of two >= 2.
func FromRows(rows [][]int) (Board, error) {
	size := len(rows)
	if size < 2 {
		return Board{}, fmt.Errorf("board: invalid size %d", size)
	}

	b := New(size)
	for y, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("board: row %d has %d cells, want %d", y, len(row), size)
		}
		for x, v := range row {
			if v != 0 && !isPowerOfTwo(v) {
				return Board{}, fmt.Errorf("board: invalid tile value %d at (%d,%d)", v, x, y)
			}
			b.cells[y*size+x] = v
		}
	}

	return b, nil
}

// isPowerOfTwo reports whether v is a power of two >= 2.
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension.
func (b Board) Size() int {
	return b.size
}

// At returns the tile value at (x, y). Out-of-bounds reads return 0.
func (b Board) At(x, y int) int {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return 0
	}
	return b.cells[y*b.size+x]
}

// set places a tile value. Callers guarantee bounds and validity.
func (b Board) set(x, y, v int) {
	b.cells[y*b.size+x] = v
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := Board{
		size:  b.size,
		cells: make([]int, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether two boards have identical size and tiles.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Rows returns the board contents as row-major slices, for display
// and snapshotting.
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for y := range rows {
		rows[y] = make([]int, b.size)
		for x := range rows[y] {
			rows[y][x] = b.At(x, y)
		}
	}
	return rows
}

// EmptyCells returns the coordinates of all empty cells.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.At(x, y) == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func (b Board) HasEmptyCell() bool {
	for _, v := range b.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// HasAdjacentPair reports whether any two horizontally or vertically
// adjacent cells hold the same non-zero value.
func (b Board) HasAdjacentPair() bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			v := b.At(x, y)
			if v == 0 {
				continue
			}
			if x < b.size-1 && b.At(x+1, y) == v {
				return true
			}
			if y < b.size-1 && b.At(x, y+1) == v {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any move in any direction would change the
// board: there is an empty cell or an adjacent equal pair.
func (b Board) CanMove() bool {
	return b.HasEmptyCell() || b.HasAdjacentPair()
}

// String renders the board as aligned rows of numbers, for test
// failures and debug logging.
func (b Board) String() string {
	s := ""
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			s += fmt.Sprintf("%6d", b.At(x, y))
		}
		s += "\n"
	}
	return s
}
