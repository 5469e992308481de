package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/sim"
)

// gameSession is one live in-memory game. Games are never persisted;
// a session disappears with the process.
type gameSession struct {
	mu sync.Mutex

	SessionId int
	Board     *board.Board
	Agent     sim.Strategy
	AgentKind sim.AgentKind
	StartedAt time.Time
	EndedAt   time.Time
}

// GameView is the wire shape of a session. The grid is the player
// view, one string per row; mines appear only after the game ends.
type GameView struct {
	SessionId int      `json:"session_id"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	MineCount int      `json:"mine_count"`
	Agent     string   `json:"agent"`
	Status    string   `json:"status"`
	Grid      []string `json:"grid"`
	StartedAt string   `json:"started_at"`
	EndedAt   string   `json:"ended_at,omitempty"`
}

// view assumes s.mu is held.
func (s *gameSession) view() GameView {
	b := s.Board
	status := "in_progress"
	switch {
	case b.Won():
		status = "won"
	case b.GameOver():
		status = "lost"
	}
	v := GameView{
		SessionId: s.SessionId,
		Rows:      b.Rows(),
		Cols:      b.Cols(),
		MineCount: b.MineCount(),
		Agent:     string(s.AgentKind),
		Status:    status,
		Grid:      strings.Split(strings.TrimRight(b.Render(b.GameOver()), "\n"), "\n"),
		StartedAt: s.StartedAt.Format(time.RFC3339),
	}
	if !s.EndedAt.IsZero() {
		v.EndedAt = s.EndedAt.Format(time.RFC3339)
	}
	return v
}

// markEnded assumes s.mu is held.
func (s *gameSession) markEnded() {
	if s.Board.GameOver() && s.EndedAt.IsZero() {
		s.EndedAt = time.Now().UTC()
	}
}

type sessionStore struct {
	mu     sync.Mutex
	nextId int
	games  map[int]*gameSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{nextId: 1, games: make(map[int]*gameSession)}
}

func (st *sessionStore) Create(
	b *board.Board, kind sim.AgentKind, agent sim.Strategy,
) *gameSession {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := &gameSession{
		SessionId: st.nextId,
		Board:     b,
		Agent:     agent,
		AgentKind: kind,
		StartedAt: time.Now().UTC(),
	}
	st.games[s.SessionId] = s
	st.nextId++
	return s
}

func (st *sessionStore) Get(sessionId int) (*gameSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.games[sessionId]
	return s, ok
}

type GameClaims struct {
	SessionId int `json:"session_id"`
	jwt.RegisteredClaims
}

func createGameToken(sessionId int) (string, error) {
	lifetime := config.Jwt.TokenLifetime.Duration
	if lifetime == 0 {
		lifetime = 24 * time.Hour
	}
	claims := GameClaims{
		sessionId,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Jwt.Secret))
}

func parseGameToken(tokenString string) (*GameClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString, &GameClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf(
					"unexpected signing method %v", t.Header["alg"])
			}
			return []byte(config.Jwt.Secret), nil
		})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*GameClaims)
	if !ok {
		return nil, errors.New("unknown claims type")
	}
	return claims, nil
}
