package solver

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-agent/internal/board"
)

// SinglePoint deduces moves by looking at one numbered cell at a time.
// On its own it is the deduction-only strategy: certain rules first,
// a uniformly random reveal when they stall.
type SinglePoint struct {
	rnd *rand.Rand
}

// NewSinglePoint creates the strategy around the given random source
// (used only for fallback guesses). A nil source is replaced with a
// maphash-seeded one.
func NewSinglePoint(r *rand.Rand) *SinglePoint {
	if r == nil {
		r = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(),
			new(maphash.Hash).Sum64(),
		))
	}
	return &SinglePoint{rnd: r}
}

// ChooseAction never mutates the board. It returns at most one action
// per call: the first certain mine, else the first certain safe
// reveal, else a random guess, else nil once no covered cells remain.
func (s *SinglePoint) ChooseAction(b *board.Board) *Action {
	return s.decide(b, ExtractKnowledge(b))
}

func (s *SinglePoint) decide(b *board.Board, k *Knowledge) *Action {
	// Certain-mine pass: a number satisfied only if every covered
	// neighbor is a mine.
	for _, c := range k.NumberedCells {
		covered, flagged := k.neighborBuckets(b, c)
		remaining := k.Numbers[c] - flagged
		if len(covered) > 0 && remaining == len(covered) {
			return &Action{Kind: ActionFlag, Cell: covered[0]}
		}
	}

	// Certain-safe pass: a number already accounted for by flags makes
	// every covered neighbor safe.
	for _, c := range k.NumberedCells {
		covered, flagged := k.neighborBuckets(b, c)
		if len(covered) > 0 && k.Numbers[c]-flagged == 0 {
			return &Action{Kind: ActionReveal, Cell: covered[0]}
		}
	}

	covered := b.CoveredCells()
	if len(covered) == 0 {
		return nil
	}
	return &Action{
		Kind:  ActionReveal,
		Cell:  covered[s.rnd.IntN(len(covered))],
		Guess: true,
	}
}
