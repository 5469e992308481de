package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/cors"
)

type Middleware func(http.Handler) http.Handler

func useMiddleware(s *http.ServeMux, mws ...Middleware) http.Handler {
	var h http.Handler = s
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

func corsMiddleware(h http.Handler) http.Handler {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	return cors.New(options).Handler(h)
}

type ctxKey int

const ctxGameClaims ctxKey = iota

// authMiddleware attaches parsed token claims to the request context.
// Handlers that mutate a session decide whether claims are required.
func authMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			if claims, err := parseGameToken(token); err != nil {
				log.Debug("bad session token: ", err)
			} else {
				r = r.WithContext(context.WithValue(
					r.Context(), ctxGameClaims, claims,
				))
			}
		}
		h.ServeHTTP(w, r)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// Unwrap lets http.ResponseController reach the hijacker underneath,
// which the websocket upgrade needs.
func (w *loggingResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func loggingMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Infof("--> %s %s", r.Method, r.URL.String())
		wrapped := &loggingResponseWriter{w, http.StatusOK}
		h.ServeHTTP(wrapped, r)
		code := wrapped.statusCode
		log.Infof("<-- %d %s", code, http.StatusText(code))
	})
}
