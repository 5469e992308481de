package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-agent/internal/board"
)

func TestBuildComponentsEmptyFrontier(t *testing.T) {
	b, err := board.New(8, 8, 10, rng(2))
	require.NoError(t, err)
	// nothing revealed: no numbered cells, no frontier
	assert.Nil(t, buildComponents(b, ExtractKnowledge(b)))
}

func TestBuildComponentsSingleComponent(t *testing.T) {
	// Mines flank (0,1) on a 5x3 board; flooding from the bottom
	// leaves row 0 covered behind a wall of numbers.
	b := boardWithMines(t, 5, 3, []board.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 2},
	})
	require.True(t, b.Reveal(board.Cell{Row: 4, Col: 0}))

	comps := buildComponents(b, ExtractKnowledge(b))
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []board.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}, comps[0].cells)
	// one constraint per bordering number: (1,0), (1,1), (1,2)
	assert.Len(t, comps[0].constraints, 3)
}

func TestBuildComponentsDisjoint(t *testing.T) {
	// Two mine pairs separated by an open corridor in row 0 produce
	// two independent 3-cell components.
	b := boardWithMines(t, 5, 9, []board.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 2},
		{Row: 0, Col: 6}, {Row: 0, Col: 8},
	})
	require.True(t, b.Reveal(board.Cell{Row: 4, Col: 0}))

	comps := buildComponents(b, ExtractKnowledge(b))
	require.Len(t, comps, 2)

	var left, right *component
	for _, comp := range comps {
		switch comp.cells[0].Col {
		case 2:
			left = comp
		case 6:
			right = comp
		}
	}
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.ElementsMatch(t, []board.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}, left.cells)
	assert.ElementsMatch(t, []board.Cell{
		{Row: 0, Col: 6}, {Row: 0, Col: 7}, {Row: 0, Col: 8},
	}, right.cells)

	// enumerating one component does not disturb the other, in either
	// order
	first := enumerate(left)
	_ = enumerate(right)
	again := enumerate(left)
	assert.Equal(t, first, again)

	// both components pin their mines exactly: mine, safe, mine
	for _, comp := range []*component{left, right} {
		enum := enumerate(comp)
		require.Equal(t, 1, enum.models)
		for i, cell := range comp.cells {
			if b.IsMine(cell) {
				assert.Equal(t, 1.0, enum.probabilities[i])
			} else {
				assert.Equal(t, 0.0, enum.probabilities[i])
			}
		}
	}
}

func TestBuildComponentsDeterministic(t *testing.T) {
	b, err := board.New(16, 16, 40, rng(11))
	require.NoError(t, err)
	b.Reveal(board.Cell{})

	k := ExtractKnowledge(b)
	first := buildComponents(b, k)
	for range 5 {
		again := buildComponents(b, ExtractKnowledge(b))
		require.Len(t, again, len(first))
		for i := range first {
			assert.Equal(t, first[i].cells, again[i].cells)
			assert.Equal(t, first[i].constraints, again[i].constraints)
		}
	}
}
