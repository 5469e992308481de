package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/vancomm/minesweeper-agent/internal/solver"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Debug("\tws origin: ", r.Host)
		return true
	},
}

type wsReply struct {
	GameView
	Hint *solver.Action `json:"hint,omitempty"`
}

func handleConnectWs(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(w, r, true)
	if session == nil {
		return
	}
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)

		session.mu.Lock()
		var reply wsReply
		for _, cmd := range byPiece(text, "\n") {
			hint, err := executeCommand(session, cmd)
			if err != nil {
				log.Debug("command: ", err)
				session.mu.Unlock()
				c.WriteJSON(map[string]string{"error": err.Error()})
				return
			}
			reply.Hint = hint
			if session.Board.GameOver() {
				session.markEnded()
				break
			}
		}
		reply.GameView = session.view()
		session.mu.Unlock()

		if err := c.WriteJSON(reply); err != nil {
			log.Error("write: ", err)
			break
		}
		log.Debug("\t< <session data>")
	}
}
