package main

import (
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/sim"
	"github.com/vancomm/minesweeper-agent/internal/solver"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	Rows      int    `schema:"rows,required"`
	Cols      int    `schema:"cols,required"`
	MineCount int    `schema:"mine_count,required"`
	Agent     string `schema:"agent"`
	Seed      uint64 `schema:"seed"`
}

type PosParams struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func handleStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := sendJSON(w, map[string]string{"status": "ok"}); err != nil {
		log.Error(err)
	}
}

func handleNewGame(w http.ResponseWriter, r *http.Request) {
	var params NewGameParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var rnd *rand.Rand
	if params.Seed != 0 {
		rnd = rand.New(rand.NewPCG(params.Seed, params.Seed))
	}
	b, err := board.New(params.Rows, params.Cols, params.MineCount, rnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	kind := sim.AgentKind(params.Agent)
	if params.Agent == "" {
		kind = sim.AgentCSP
	}
	agent, err := sim.NewStrategy(kind, nil)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session := sessions.Create(b, kind, agent)
	token, err := createGameToken(session.SessionId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	log.Debug("created session ", session.SessionId)

	session.mu.Lock()
	payload := struct {
		GameView
		Token string `json:"token"`
	}{session.view(), token}
	session.mu.Unlock()

	if _, err := sendJSON(w, payload); err != nil {
		log.Error(err)
	}
}

// sessionFromRequest resolves the {id} path value; mutate demands a
// token whose claims match the session.
func sessionFromRequest(
	w http.ResponseWriter, r *http.Request, mutate bool,
) *gameSession {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil
	}
	session, ok := sessions.Get(sessionId)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return nil
	}
	if mutate {
		claims, ok := r.Context().Value(ctxGameClaims).(*GameClaims)
		if !ok || claims.SessionId != sessionId {
			w.WriteHeader(http.StatusUnauthorized)
			return nil
		}
	}
	return session
}

func handleGetGame(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(w, r, false)
	if session == nil {
		return
	}
	session.mu.Lock()
	view := session.view()
	session.mu.Unlock()
	if _, err := sendJSON(w, view); err != nil {
		log.Error(err)
	}
}

func handleReveal(w http.ResponseWriter, r *http.Request) {
	handleCellAction(w, r, func(b *board.Board, c board.Cell) {
		b.Reveal(c)
	})
}

func handleFlag(w http.ResponseWriter, r *http.Request) {
	handleCellAction(w, r, func(b *board.Board, c board.Cell) {
		b.Flag(c)
	})
}

func handleUnflag(w http.ResponseWriter, r *http.Request) {
	handleCellAction(w, r, func(b *board.Board, c board.Cell) {
		b.Unflag(c)
	})
}

func handleCellAction(
	w http.ResponseWriter, r *http.Request,
	apply func(*board.Board, board.Cell),
) {
	var pos PosParams
	if err := dec.Decode(&pos, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session := sessionFromRequest(w, r, true)
	if session == nil {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	c := board.Cell{Row: pos.Row, Col: pos.Col}
	if !session.Board.InBounds(c) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	apply(session.Board, c)
	session.markEnded()
	if _, err := sendJSON(w, session.view()); err != nil {
		log.Error(err)
	}
}

func handleAgentMove(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(w, r, true)
	if session == nil {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	action := session.Agent.ChooseAction(session.Board)
	if action != nil {
		switch action.Kind {
		case solver.ActionFlag:
			session.Board.Flag(action.Cell)
		case solver.ActionReveal:
			session.Board.Reveal(action.Cell)
		}
		session.markEnded()
	}

	payload := struct {
		GameView
		Action *solver.Action `json:"action"`
	}{session.view(), action}
	if _, err := sendJSON(w, payload); err != nil {
		log.Error(err)
	}
}

func handleHint(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(w, r, false)
	if session == nil {
		return
	}

	session.mu.Lock()
	action := session.Agent.ChooseAction(session.Board)
	session.mu.Unlock()

	if _, err := sendJSON(w, struct {
		Action *solver.Action `json:"action"`
	}{action}); err != nil {
		log.Error(err)
	}
}
