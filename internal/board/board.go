package board

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// MineAdjacency is the adjacency value reported for mine cells.
const MineAdjacency = -1

// Cell addresses a single square, 0-indexed from the top-left corner.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

type Status int8

const (
	InProgress Status = iota
	Lost
	Won
)

func (s Status) String() string {
	switch s {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "in progress"
	}
}

// Board is a minesweeper field with basic game mechanics. The mine
// layout is fixed at construction; the only mutators are Reveal, Flag
// and Unflag, and once the status leaves InProgress they all become
// no-ops.
type Board struct {
	rows, cols int
	mineCount  int

	mine     []bool
	revealed []bool
	flagged  []bool
	adj      []int8

	status Status
}

// New creates a board with mineCount mines placed uniformly without
// replacement and every cell's adjacency count precomputed. A nil
// source is replaced with a maphash-seeded one.
func New(rows, cols, mineCount int, r *rand.Rand) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("invalid board size %dx%d", rows, cols)
	}
	if mineCount < 1 || mineCount >= rows*cols {
		return nil, fmt.Errorf(
			"mine count %d out of range [1, %d)", mineCount, rows*cols,
		)
	}
	if r == nil {
		r = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(),
			new(maphash.Hash).Sum64(),
		))
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		mine:      make([]bool, rows*cols),
		revealed:  make([]bool, rows*cols),
		flagged:   make([]bool, rows*cols),
		adj:       make([]int8, rows*cols),
	}

	candidates := make([]int, rows*cols)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		b.mine[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	for row := range rows {
		for col := range cols {
			i := row*cols + col
			if b.mine[i] {
				b.adj[i] = MineAdjacency
				continue
			}
			for _, nb := range b.Neighbors(Cell{row, col}) {
				if b.mine[b.index(nb)] {
					b.adj[i]++
				}
			}
		}
	}

	return b, nil
}

func (b *Board) index(c Cell) int {
	return c.Row*b.cols + c.Col
}

func (b *Board) Rows() int      { return b.rows }
func (b *Board) Cols() int      { return b.cols }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(c Cell) bool {
	return 0 <= c.Row && c.Row < b.rows && 0 <= c.Col && c.Col < b.cols
}

// Neighbors returns the up-to-8 in-bounds cells around c in row-major
// order.
func (b *Board) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nb := Cell{c.Row + dr, c.Col + dc}
			if b.InBounds(nb) {
				out = append(out, nb)
			}
		}
	}
	return out
}

func (b *Board) IsMine(c Cell) bool { return b.mine[b.index(c)] }

// Adjacency reports the number of neighboring mines (0-8), or
// MineAdjacency when the cell itself is a mine.
func (b *Board) Adjacency(c Cell) int { return int(b.adj[b.index(c)]) }

func (b *Board) IsRevealed(c Cell) bool { return b.revealed[b.index(c)] }
func (b *Board) IsFlagged(c Cell) bool  { return b.flagged[b.index(c)] }

func (b *Board) Status() Status { return b.status }
func (b *Board) GameOver() bool { return b.status != InProgress }
func (b *Board) Won() bool      { return b.status == Won }

// CoveredCells lists all cells that are neither revealed nor flagged,
// in row-major order.
func (b *Board) CoveredCells() []Cell {
	var out []Cell
	for row := range b.rows {
		for col := range b.cols {
			i := row*b.cols + col
			if !b.revealed[i] && !b.flagged[i] {
				out = append(out, Cell{row, col})
			}
		}
	}
	return out
}

// Reveal opens a cell. It returns false only when a mine was hit; the
// board is then Lost for good. Revealing a flagged, already revealed
// or post-game cell is silently ignored.
func (b *Board) Reveal(c Cell) (alive bool) {
	i := b.index(c)
	if b.status != InProgress || b.flagged[i] || b.revealed[i] {
		return true
	}
	if b.mine[i] {
		b.revealed[i] = true
		b.status = Lost
		return false
	}

	b.floodReveal(c)

	for j := range b.mine {
		if !b.mine[j] && !b.revealed[j] {
			return true
		}
	}
	b.status = Won
	return true
}

// floodReveal opens the connected zero-adjacency region around start
// plus its bordering layer of numbered cells. Flagged cells are left
// alone and a mine is never opened: the expansion only ever queues
// neighbors of zero-adjacency cells, which have no mined neighbors.
func (b *Board) floodReveal(start Cell) {
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		i := b.index(c)
		if b.revealed[i] || b.flagged[i] {
			continue
		}
		b.revealed[i] = true
		if b.adj[i] != 0 {
			continue
		}
		for _, nb := range b.Neighbors(c) {
			j := b.index(nb)
			if !b.revealed[j] && !b.flagged[j] {
				queue = append(queue, nb)
			}
		}
	}
}

// Flag marks a covered cell. No effect on revealed cells or after the
// game has ended.
func (b *Board) Flag(c Cell) {
	i := b.index(c)
	if b.status != InProgress || b.revealed[i] {
		return
	}
	b.flagged[i] = true
}

func (b *Board) Unflag(c Cell) {
	if b.status != InProgress {
		return
	}
	b.flagged[b.index(c)] = false
}
