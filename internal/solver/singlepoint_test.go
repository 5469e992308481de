package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-agent/internal/board"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func rng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// boardWithMines searches seeds until board.New produces the exact
// layout wanted. Only practical for small boards.
func boardWithMines(t *testing.T, rows, cols int, mines []board.Cell) *board.Board {
	t.Helper()
	want := make(map[board.Cell]bool, len(mines))
	for _, m := range mines {
		want[m] = true
	}
seeds:
	for seed := uint64(0); seed < 1_000_000; seed++ {
		b, err := board.New(rows, cols, len(mines), rng(seed))
		require.NoError(t, err)
		for row := range rows {
			for col := range cols {
				c := board.Cell{Row: row, Col: col}
				if b.IsMine(c) != want[c] {
					continue seeds
				}
			}
		}
		return b
	}
	t.Fatalf("no seed yields %dx%d board with mines %v", rows, cols, mines)
	return nil
}

func TestExtractKnowledge(t *testing.T) {
	b := boardWithMines(t, 1, 3, []board.Cell{{Row: 0, Col: 0}})
	b.Flag(board.Cell{Row: 0, Col: 0})
	b.Reveal(board.Cell{Row: 0, Col: 2})

	k := ExtractKnowledge(b)
	assert.Equal(t, map[board.Cell]int{
		{Row: 0, Col: 1}: 1,
		{Row: 0, Col: 2}: 0,
	}, k.Numbers)
	assert.Equal(t, []board.Cell{
		{Row: 0, Col: 1}, {Row: 0, Col: 2},
	}, k.NumberedCells)
	assert.Empty(t, k.Covered)
	assert.Equal(t, map[board.Cell]bool{{Row: 0, Col: 0}: true}, k.Flagged)
}

func TestCertainMineRule(t *testing.T) {
	// A revealed "1" with a single covered neighbor proves the mine.
	b := boardWithMines(t, 1, 2, []board.Cell{{Row: 0, Col: 0}})
	require.True(t, b.Reveal(board.Cell{Row: 0, Col: 1}))

	action := NewSinglePoint(rng(1)).ChooseAction(b)
	require.NotNil(t, action)
	assert.Equal(t, ActionFlag, action.Kind)
	assert.Equal(t, board.Cell{Row: 0, Col: 0}, action.Cell)
	assert.False(t, action.Guess)
}

func TestCertainSafeRule(t *testing.T) {
	// A "1" whose mine is already flagged makes its covered neighbors
	// safe; the first one in row-major order is revealed.
	b := boardWithMines(t, 2, 2, []board.Cell{{Row: 0, Col: 0}})
	require.True(t, b.Reveal(board.Cell{Row: 1, Col: 1}))
	b.Flag(board.Cell{Row: 0, Col: 0})

	action := NewSinglePoint(rng(1)).ChooseAction(b)
	require.NotNil(t, action)
	assert.Equal(t, ActionReveal, action.Kind)
	assert.Equal(t, board.Cell{Row: 0, Col: 1}, action.Cell)
	assert.False(t, action.Guess)
}

func TestMinePassRunsBeforeSafePass(t *testing.T) {
	// Both rules can fire: (0,2) is satisfied by its two flags and
	// would reveal (1,2), while (1,0) proves the mine at (0,0). The
	// mine pass covers every numbered cell first, so the flag wins
	// even though (0,2) precedes (1,0) in row-major order.
	b := boardWithMines(t, 2, 4, []board.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 3}, {Row: 1, Col: 3},
	})
	for _, c := range []board.Cell{
		{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	} {
		require.True(t, b.Reveal(c))
	}
	b.Flag(board.Cell{Row: 0, Col: 3})
	b.Flag(board.Cell{Row: 1, Col: 3})

	action := NewSinglePoint(rng(1)).ChooseAction(b)
	require.NotNil(t, action)
	assert.Equal(t, ActionFlag, action.Kind)
	assert.Equal(t, board.Cell{Row: 0, Col: 0}, action.Cell)
}

func TestRandomGuessWhenNoRuleFires(t *testing.T) {
	b, err := board.New(8, 8, 10, rng(3))
	require.NoError(t, err)

	action := NewSinglePoint(rng(4)).ChooseAction(b)
	require.NotNil(t, action)
	assert.Equal(t, ActionReveal, action.Kind)
	assert.True(t, action.Guess)
	assert.False(t, b.IsRevealed(action.Cell))
	assert.False(t, b.IsFlagged(action.Cell))
}

func TestNoActionWhenNoCoveredCells(t *testing.T) {
	b := boardWithMines(t, 1, 2, []board.Cell{{Row: 0, Col: 0}})
	b.Flag(board.Cell{Row: 0, Col: 0})
	require.True(t, b.Reveal(board.Cell{Row: 0, Col: 1}))
	require.True(t, b.Won())

	assert.Nil(t, NewSinglePoint(rng(1)).ChooseAction(b))
}

func TestSinglePointNeverMutates(t *testing.T) {
	b, err := board.New(9, 9, 10, rng(5))
	require.NoError(t, err)
	require.True(t, b.Reveal(board.Cell{}))
	before := b.Render(true)

	sp := NewSinglePoint(rng(6))
	for range 10 {
		sp.ChooseAction(b)
	}
	assert.Equal(t, before, b.Render(true))
}

// Single-point certainties must be correct against the hidden layout,
// whatever random boards they run on.
func TestSinglePointSoundness(t *testing.T) {
	t.Parallel()
	for seed := uint64(0); seed < 30; seed++ {
		b, err := board.New(9, 9, 10, rng(seed))
		require.NoError(t, err)
		b.Reveal(board.Cell{})

		sp := NewSinglePoint(rng(seed + 1000))
		for !b.GameOver() {
			action := sp.ChooseAction(b)
			if action == nil {
				break
			}
			if action.Kind == ActionFlag {
				require.True(t, b.IsMine(action.Cell),
					"seed %d: flagged safe cell %s", seed, action.Cell)
				b.Flag(action.Cell)
				continue
			}
			if !action.Guess {
				require.False(t, b.IsMine(action.Cell),
					"seed %d: revealed mine %s as certain", seed, action.Cell)
			}
			if !b.Reveal(action.Cell) {
				break
			}
		}
	}
}
