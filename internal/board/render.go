package board

import (
	"fmt"
	"strings"
)

// Render returns a player-view text rendering of the board. Covered
// cells print as "#", flags as "F", open zero cells as "." and open
// numbered cells as their count. With showMines, covered mines print
// as "*".
func (b *Board) Render(showMines bool) string {
	var sb strings.Builder
	for row := range b.rows {
		for col := range b.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cellString(Cell{row, col}, showMines))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render(false)
}

func (b *Board) cellString(c Cell, showMines bool) string {
	switch {
	case b.IsFlagged(c):
		return "F"
	case !b.IsRevealed(c):
		if showMines && b.IsMine(c) {
			return "*"
		}
		return "#"
	case b.IsMine(c):
		return "*"
	case b.Adjacency(c) == 0:
		return "."
	default:
		return fmt.Sprintf("%d", b.Adjacency(c))
	}
}
