package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Word sets
	mux.HandleFunc("POST /wordsets", h.createWordSet)
	mux.HandleFunc("GET /wordsets", h.listWordSets)
	mux.HandleFunc("GET /wordsets/{setID}", h.getWordSet)
	mux.HandleFunc("DELETE /wordsets/{setID}", h.deleteWordSet)
	mux.HandleFunc("GET /wordsets/{setID}/stats", h.getSetStats)

	// Words
	mux.HandleFunc("POST /wordsets/{setID}/words", h.addWord)
	mux.HandleFunc("POST /wordsets/{setID}/import", h.importWords)

	// Practice sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.checkAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.advanceSession)
	mux.HandleFunc("GET /sessions/{sessionID}/progress", h.getProgress)
}
