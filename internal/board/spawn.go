package board

import "math/rand"

// Spawn places a new tile in a uniformly random empty cell: value 2
// with probability 1-fourProb, value 4 otherwise. It returns the cell
// and value used, or ok=false when the board is full (the caller
// should run the terminal check in that case).
func (b *Board) Spawn(rng *rand.Rand, fourProb float64) (cell Cell, value int, ok bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, 0, false
	}

	cell = empty[rng.Intn(len(empty))]

	value = 2
	if rng.Float64() < fourProb {
		value = 4
	}

	b.set(cell.X, cell.Y, value)
	return cell, value, true
}
