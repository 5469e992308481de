package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/sim"
	"github.com/vancomm/minesweeper-agent/internal/solver"
)

var (
	rows  = flag.Int("rows", 8, "board rows")
	cols  = flag.Int("cols", 8, "board columns")
	mines = flag.Int("mines", 10, "mine count")
	agent = flag.String("agent", string(sim.AgentCSP),
		"agent to watch (single-point or csp)")
	seed  = flag.Uint64("seed", 0, "seed (0 = random)")
	delay = flag.Duration("delay", 300*time.Millisecond, "pause between moves")
)

func main() {
	flag.Parse()

	var boardRng, agentRng *rand.Rand
	if *seed != 0 {
		boardRng = rand.New(rand.NewPCG(*seed, *seed))
		agentRng = rand.New(rand.NewPCG(*seed+1, *seed+1))
	}
	b, err := board.New(*rows, *cols, *mines, boardRng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	strategy, err := sim.NewStrategy(sim.AgentKind(*agent), agentRng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("=== New game (%s) ===\n", *agent)
	b.Reveal(board.Cell{})
	fmt.Println(b.Render(false))

	step := 0
	for !b.GameOver() {
		action := strategy.ChooseAction(b)
		if action == nil {
			break
		}
		step++
		tag := "logic"
		if action.Guess {
			tag = "guess"
		}
		fmt.Printf("step %d: %s (%s)\n", step, action, tag)
		if action.Kind == solver.ActionFlag {
			b.Flag(action.Cell)
		} else {
			b.Reveal(action.Cell)
		}
		fmt.Println(b.Render(false))
		time.Sleep(*delay)
	}

	if b.Won() {
		fmt.Println("Result: WIN")
	} else {
		fmt.Println("Result: LOSS")
		fmt.Println(b.Render(true))
	}
}
