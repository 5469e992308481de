package solver

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-agent/internal/board"
)

// DefaultMaxComponentSize bounds exhaustive enumeration at 2^14
// branches per component. Larger components are skipped outright.
const DefaultMaxComponentSize = 14

// Solver is the two-tier strategy: single-point deduction first, exact
// frontier inference when that would otherwise guess at random.
type Solver struct {
	MaxComponentSize int

	sp *SinglePoint
}

func New(r *rand.Rand) *Solver {
	return &Solver{
		MaxComponentSize: DefaultMaxComponentSize,
		sp:               NewSinglePoint(r),
	}
}

// ChooseAction picks one move from the board's current state, without
// mutating it. Priority: single-point certain flag, single-point
// certain reveal, CSP certain flag, CSP certain reveal, CSP
// minimum-probability reveal, uniform random reveal, none.
func (s *Solver) ChooseAction(b *board.Board) *Action {
	k := ExtractKnowledge(b)
	action := s.sp.decide(b, k)
	if action == nil || !action.Guess {
		return action
	}

	// Single-point stalled. Work the frontier component by component;
	// stop as soon as any component proves a cell.
	var (
		certainMine *board.Cell
		certainSafe *board.Cell
		bestCell    board.Cell
		bestProb    = 1.1
		haveBest    bool
	)
	for _, comp := range buildComponents(b, k) {
		if len(comp.cells) > s.MaxComponentSize {
			Log.WithFields(logrus.Fields{
				"size": len(comp.cells),
				"cap":  s.MaxComponentSize,
			}).Debug("skipping oversized component")
			continue
		}
		if len(comp.constraints) == 0 {
			continue
		}
		enum := enumerate(comp)
		if enum.models == 0 {
			// Consistent with the dropped-constraint approximation;
			// not an error.
			Log.WithField("cells", comp.cells).
				Debug("component admits no models")
			continue
		}
		for i, p := range enum.probabilities {
			cell := comp.cells[i]
			switch p {
			case 0:
				c := cell
				certainSafe = &c
			case 1:
				c := cell
				certainMine = &c
			}
			if p < bestProb {
				bestProb, bestCell, haveBest = p, cell, true
			}
		}
		if certainMine != nil || certainSafe != nil {
			break
		}
	}

	switch {
	case certainMine != nil:
		return &Action{Kind: ActionFlag, Cell: *certainMine}
	case certainSafe != nil:
		return &Action{Kind: ActionReveal, Cell: *certainSafe}
	case haveBest:
		Log.WithFields(logrus.Fields{
			"cell": bestCell,
			"p":    bestProb,
		}).Debug("probabilistic reveal")
		return &Action{Kind: ActionReveal, Cell: bestCell, Guess: true}
	default:
		// No usable constraints anywhere: keep the single-point
		// engine's uniform random reveal.
		return action
	}
}
