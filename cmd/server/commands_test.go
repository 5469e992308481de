package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/sim"
)

func testSession(t *testing.T) *gameSession {
	t.Helper()
	b, err := board.New(8, 8, 10, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	agent, err := sim.NewStrategy(sim.AgentCSP, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	return newSessionStore().Create(b, sim.AgentCSP, agent)
}

func TestExecuteCommandValidation(t *testing.T) {
	s := testSession(t)

	tests := []struct {
		name string
		cmd  string
	}{
		{"empty", ""},
		{"unknown", "x 1 2"},
		{"missing args", "r 1"},
		{"extra args", "ai 1 2"},
		{"non-int", "r one 2"},
		{"out of bounds", "r 99 0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := executeCommand(s, test.cmd)
			assert.Error(t, err)
		})
	}
}

func TestExecuteCommandFlagUnflag(t *testing.T) {
	s := testSession(t)
	c := board.Cell{Row: 3, Col: 3}

	_, err := executeCommand(s, "f 3 3")
	require.NoError(t, err)
	assert.True(t, s.Board.IsFlagged(c))

	_, err = executeCommand(s, "u 3 3")
	require.NoError(t, err)
	assert.False(t, s.Board.IsFlagged(c))
}

func TestExecuteCommandHintDoesNotMutate(t *testing.T) {
	s := testSession(t)
	before := s.Board.Render(false)

	hint, err := executeCommand(s, "hint")
	require.NoError(t, err)
	assert.NotNil(t, hint)
	assert.Equal(t, before, s.Board.Render(false))
}

func TestGameTokenRoundTrip(t *testing.T) {
	config.Jwt.Secret = "test-secret"

	token, err := createGameToken(42)
	require.NoError(t, err)

	claims, err := parseGameToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.SessionId)

	config.Jwt.Secret = "other-secret"
	_, err = parseGameToken(token)
	assert.Error(t, err)
}

func TestSessionStoreAssignsIds(t *testing.T) {
	st := newSessionStore()
	b, err := board.New(4, 4, 2, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)
	agent, err := sim.NewStrategy(sim.AgentSinglePoint, nil)
	require.NoError(t, err)

	first := st.Create(b, sim.AgentSinglePoint, agent)
	second := st.Create(b, sim.AgentSinglePoint, agent)
	assert.Equal(t, 1, first.SessionId)
	assert.Equal(t, 2, second.SessionId)

	got, ok := st.Get(first.SessionId)
	assert.True(t, ok)
	assert.Same(t, first, got)

	_, ok = st.Get(99)
	assert.False(t, ok)
}
