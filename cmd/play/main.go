package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/sim"
	"github.com/vancomm/minesweeper-agent/internal/solver"
)

var (
	rows  = flag.Int("rows", 8, "board rows")
	cols  = flag.Int("cols", 8, "board columns")
	mines = flag.Int("mines", 10, "mine count")
	agent = flag.String("agent", string(sim.AgentCSP),
		"agent for ai/hint commands (single-point or csp)")
	seed = flag.Uint64("seed", 0, "board seed (0 = random)")
)

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  r <row> <col>  reveal a cell")
	fmt.Println("  f <row> <col>  flag/unflag a cell")
	fmt.Println("  ai             let the agent make one move")
	fmt.Println("  hint           agent suggests a move without playing it")
	fmt.Println("  help           show this help")
	fmt.Println("  quit           exit")
	fmt.Println()
}

func main() {
	flag.Parse()

	var r *rand.Rand
	if *seed != 0 {
		r = rand.New(rand.NewPCG(*seed, *seed))
	}
	b, err := board.New(*rows, *cols, *mines, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	strategy, err := sim.NewStrategy(sim.AgentKind(*agent), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("\nMinesweeper manual mode (%dx%d, mines=%d)\n",
		*rows, *cols, *mines)
	fmt.Printf("Agent: %s\n\n", *agent)
	printHelp()
	printBoard(b, false)

	scanner := bufio.NewScanner(os.Stdin)
	for !b.GameOver() {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch {
		case cmd == "quit" || cmd == "q":
			return
		case cmd == "help" || cmd == "h":
			printHelp()
		case cmd == "hint":
			if action := strategy.ChooseAction(b); action == nil {
				fmt.Println("agent has no suggestion")
			} else {
				fmt.Printf("agent suggests: %s\n", action)
			}
		case cmd == "ai":
			action := strategy.ChooseAction(b)
			if action == nil {
				fmt.Println("agent has no move")
				continue
			}
			fmt.Printf("agent plays: %s\n", action)
			if action.Kind == solver.ActionFlag {
				b.Flag(action.Cell)
			} else if !b.Reveal(action.Cell) {
				fmt.Println("agent hit a mine!")
			}
			printBoard(b, false)
		default:
			if err := runCommand(b, cmd); err != nil {
				fmt.Println(err)
				continue
			}
			printBoard(b, false)
		}
	}

	fmt.Println("\nFinal board (mines shown):")
	printBoard(b, true)
	if b.Won() {
		fmt.Println("Result: WIN")
	} else {
		fmt.Println("Result: GAME OVER")
	}
}

func runCommand(b *board.Board, cmd string) error {
	parts := strings.Fields(cmd)
	if len(parts) != 3 || (parts[0] != "r" && parts[0] != "f") {
		return fmt.Errorf("unknown command (type 'help' for options)")
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("row must be an int")
	}
	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("col must be an int")
	}
	c := board.Cell{Row: row, Col: col}
	if !b.InBounds(c) {
		return fmt.Errorf("out of bounds")
	}

	switch parts[0] {
	case "r":
		if b.IsRevealed(c) {
			return fmt.Errorf("cell already revealed")
		}
		if !b.Reveal(c) {
			fmt.Println("you hit a mine!")
		}
	case "f":
		if b.IsRevealed(c) {
			return fmt.Errorf("cannot flag a revealed cell")
		}
		if b.IsFlagged(c) {
			b.Unflag(c)
		} else {
			b.Flag(c)
		}
	}
	return nil
}
