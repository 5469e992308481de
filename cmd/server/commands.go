package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/solver"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"r":    2,
	"f":    2,
	"u":    2,
	"ai":   0,
	"hint": 0,
}

func parseCell(s *gameSession, twoStrings []string) (board.Cell, error) {
	row, err := strconv.Atoi(twoStrings[0])
	if err != nil {
		return board.Cell{}, errors.New("first argument must be an int")
	}
	col, err := strconv.Atoi(twoStrings[1])
	if err != nil {
		return board.Cell{}, errors.New("second argument must be an int")
	}
	c := board.Cell{Row: row, Col: col}
	if !s.Board.InBounds(c) {
		return board.Cell{}, errors.New("invalid cell coordinates")
	}
	return c, nil
}

// executeCommand runs one command against the session. The caller
// holds the session lock. Only "hint" produces a non-nil action
// without touching the board.
func executeCommand(s *gameSession, cmd string) (*solver.Action, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return nil, errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return nil, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "r":
		c, err := parseCell(s, parts[1:])
		if err != nil {
			return nil, err
		}
		s.Board.Reveal(c)
	case "f":
		c, err := parseCell(s, parts[1:])
		if err != nil {
			return nil, err
		}
		s.Board.Flag(c)
	case "u":
		c, err := parseCell(s, parts[1:])
		if err != nil {
			return nil, err
		}
		s.Board.Unflag(c)
	case "ai":
		action := s.Agent.ChooseAction(s.Board)
		if action == nil {
			return nil, nil
		}
		if action.Kind == solver.ActionFlag {
			s.Board.Flag(action.Cell)
		} else {
			s.Board.Reveal(action.Cell)
		}
	case "hint":
		return s.Agent.ChooseAction(s.Board), nil
	}
	return nil, nil
}
