// Package solver decides minesweeper moves from visible board state.
//
// Two strategies are provided. SinglePoint applies local certainty
// rules around each numbered cell and otherwise guesses at random.
// Solver layers exact constraint-satisfaction inference on top: when
// the single-point rules stall it partitions the frontier into
// independent components, exhaustively counts the consistent mine
// assignments of each and acts on the resulting probabilities.
package solver

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-agent/internal/board"
)

var Log = logrus.New()

type ActionKind int8

const (
	ActionReveal ActionKind = iota
	ActionFlag
)

func (k ActionKind) String() string {
	if k == ActionFlag {
		return "flag"
	}
	return "reveal"
}

// [ActionKind] implements [json.Marshaler]
func (k ActionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Action is a single move for the driver to apply. Guess marks moves
// that are not logical certainties (probabilistic or random reveals).
// A nil *Action means no move is available.
type Action struct {
	Kind  ActionKind `json:"kind"`
	Cell  board.Cell `json:"cell"`
	Guess bool       `json:"guess"`
}

func (a *Action) String() string {
	return fmt.Sprintf("%s %s", a.Kind, a.Cell)
}
