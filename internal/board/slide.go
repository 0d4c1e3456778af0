package board

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// TileMove describes one tile's journey during a slide: where it
// started, where it ended up, and whether it merged into the tile
// already at the destination. Value is the tile's value before the
// merge, so renderers can animate the original tile.
type TileMove struct {
	FromX, FromY int
	ToX, ToY     int
	Value        int
	Merged       bool
}

// MoveResult is the outcome of sliding a board in one direction.
type MoveResult struct {
	Board      Board      // Resulting board
	ScoreDelta int        // Sum of values of tiles created by merges
	Moved      bool       // False when the board is unchanged (no-op move)
	Moves      []TileMove // Per-tile movement records, in travel order
}

// lineMove tracks a tile's movement along a single line, in travel
// order indices (0 = leading edge).
type lineMove struct {
	from, to int
	value    int
	merged   bool
}

// slideLine compacts and merges a single line toward index 0.
// Each tile merges at most once per move: a tile created by a merge
// cannot absorb another tile in the same pass, so [2 2 2] -> [4 2]
// and [2 2 4] -> [4 4].
func slideLine(line []int) (out []int, score int, moves []lineMove) {
	out = make([]int, len(line))
	write := 0
	lastMerged := -1

	for i, v := range line {
		if v == 0 {
			continue
		}

		if write > 0 && out[write-1] == v && lastMerged != write-1 {
			out[write-1] *= 2
			score += out[write-1]
			lastMerged = write - 1
			moves = append(moves, lineMove{from: i, to: write - 1, value: v, merged: true})
		} else {
			out[write] = v
			moves = append(moves, lineMove{from: i, to: write, value: v})
			write++
		}
	}

	return out, score, moves
}

// lineCell maps a travel-order index within a lane to board
// coordinates. Index 0 is the leading edge for the given direction.
func lineCell(dir Direction, lane, i, size int) (x, y int) {
	switch dir {
	case DirLeft:
		return i, lane
	case DirRight:
		return size - 1 - i, lane
	case DirUp:
		return lane, i
	default: // DirDown
		return lane, size - 1 - i
	}
}

// Slide moves all tiles in the given direction, merging equal
// neighbors once per move. It is a pure function: the input board is
// never modified. When the resulting board equals the input, the move
// is a no-op (Moved=false) and must not trigger a spawn or score.
func Slide(b Board, dir Direction) MoveResult {
	size := b.Size()
	result := MoveResult{Board: New(size)}
	line := make([]int, size)

	for lane := 0; lane < size; lane++ {
		for i := 0; i < size; i++ {
			x, y := lineCell(dir, lane, i, size)
			line[i] = b.At(x, y)
		}

		out, score, moves := slideLine(line)
		result.ScoreDelta += score

		for i, v := range out {
			if v == 0 {
				continue
			}
			x, y := lineCell(dir, lane, i, size)
			result.Board.set(x, y, v)
		}

		for _, m := range moves {
			fx, fy := lineCell(dir, lane, m.from, size)
			tx, ty := lineCell(dir, lane, m.to, size)
			result.Moves = append(result.Moves, TileMove{
				FromX: fx, FromY: fy,
				ToX: tx, ToY: ty,
				Value:  m.value,
				Merged: m.merged,
			})
		}
	}

	result.Moved = !result.Board.Equal(b)
	return result
}
