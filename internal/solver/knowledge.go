package solver

import "github.com/vancomm/minesweeper-agent/internal/board"

// Knowledge is what a strategy is allowed to see: the numbers on
// revealed cells plus the covered and flagged sets. It is a snapshot,
// recomputed from scratch for every decision and never cached across
// board mutations.
type Knowledge struct {
	Numbers map[board.Cell]int
	Covered map[board.Cell]bool
	Flagged map[board.Cell]bool

	// NumberedCells holds the keys of Numbers in row-major order, so
	// that rule passes are deterministic.
	NumberedCells []board.Cell
}

// ExtractKnowledge builds a snapshot in one pass over the grid.
func ExtractKnowledge(b *board.Board) *Knowledge {
	k := &Knowledge{
		Numbers: make(map[board.Cell]int),
		Covered: make(map[board.Cell]bool),
		Flagged: make(map[board.Cell]bool),
	}
	for row := range b.Rows() {
		for col := range b.Cols() {
			c := board.Cell{Row: row, Col: col}
			switch {
			case b.IsFlagged(c):
				k.Flagged[c] = true
			case b.IsRevealed(c):
				k.Numbers[c] = b.Adjacency(c)
				k.NumberedCells = append(k.NumberedCells, c)
			default:
				k.Covered[c] = true
			}
		}
	}
	return k
}

// neighborBuckets splits the neighbors of a numbered cell into its
// covered neighbors (row-major order) and a flagged-neighbor count.
func (k *Knowledge) neighborBuckets(
	b *board.Board, c board.Cell,
) (covered []board.Cell, flagged int) {
	for _, nb := range b.Neighbors(c) {
		if k.Flagged[nb] {
			flagged++
		} else if k.Covered[nb] {
			covered = append(covered, nb)
		}
	}
	return covered, flagged
}
