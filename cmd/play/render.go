package main

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/board"
)

const ansiReset = "\033[0m"

var ansiColors = map[string]string{
	"1": "\033[34m", // blue
	"2": "\033[32m", // green
	"3": "\033[31m", // red
	"4": "\033[35m", // magenta
	"5": "\033[33m", // yellow
	"6": "\033[36m", // cyan
	"7": "\033[90m", // grey
	"8": "\033[37m", // white
	"F": "\033[33m",
	"*": "\033[31m",
	"#": "\033[90m",
}

func colorize(s string) string {
	if code, ok := ansiColors[s]; ok {
		return code + s + ansiReset
	}
	return s
}

// printBoard renders the player view with row/column headers and ANSI
// colors, one colorized cell at a time.
func printBoard(b *board.Board, showMines bool) {
	fmt.Println()
	var header strings.Builder
	header.WriteString("   ")
	for col := range b.Cols() {
		if col > 0 {
			header.WriteByte(' ')
		}
		fmt.Fprintf(&header, "%d", col)
	}
	fmt.Println(header.String())
	fmt.Println("   " + strings.Repeat("-", 2*b.Cols()-1))

	for row := range b.Rows() {
		cells := make([]string, 0, b.Cols())
		for col := range b.Cols() {
			cells = append(cells, colorize(cellGlyph(b, board.Cell{Row: row, Col: col}, showMines)))
		}
		fmt.Printf("%d: %s\n", row, strings.Join(cells, " "))
	}
	fmt.Println()
}

func cellGlyph(b *board.Board, c board.Cell, showMines bool) string {
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
