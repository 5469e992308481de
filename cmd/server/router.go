package main

import "net/http"

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/status", handleStatus)

	mux.HandleFunc("POST /v1/game", handleNewGame)
	mux.HandleFunc("GET /v1/game/{id}", handleGetGame)
	mux.HandleFunc("POST /v1/game/{id}/reveal", handleReveal)
	mux.HandleFunc("POST /v1/game/{id}/flag", handleFlag)
	mux.HandleFunc("POST /v1/game/{id}/unflag", handleUnflag)
	mux.HandleFunc("POST /v1/game/{id}/agent", handleAgentMove)
	mux.HandleFunc("GET /v1/game/{id}/hint", handleHint)

	mux.HandleFunc("/v1/game/{id}/connect", handleConnectWs)

	handler := useMiddleware(mux,
		corsMiddleware,
		authMiddleware,
		loggingMiddleware,
	)

	return handler
}
