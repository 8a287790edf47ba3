package api

import (
	"errors"
	"net/http"

	"github.com/lexitrain/backend/internal/domain/drill"
	"github.com/lexitrain/backend/internal/domain/session"
	"github.com/lexitrain/backend/internal/service"
	"github.com/lexitrain/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	WordSetID  string   `json:"word_set_id" validate:"required"`
	Flow       string   `json:"flow" validate:"required,oneof=topic_learning review quiz"`
	DrillTypes []string `json:"drill_types,omitempty"`
	Seed       *int64   `json:"seed,omitempty"` // pins generation, used by tests
}

type DrillItemResponse struct {
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Answer  string   `json:"answer"`
	Options []string `json:"options,omitempty"`
	WordID  string   `json:"word_id"`
}

type SessionResponse struct {
	ID        string             `json:"id"`
	Flow      string             `json:"flow"`
	State     string             `json:"state"`
	Current   *DrillItemResponse `json:"current,omitempty"`
	Answered  int                `json:"answered"`
	Total     int                `json:"total"`
	Correct   int                `json:"correct"`
	Remaining int                `json:"remaining"`
}

type CheckAnswerRequest struct {
	Answer string `json:"answer"`
}

type CheckAnswerResponse struct {
	Correct bool   `json:"correct"`
	State   string `json:"state"`
}

type ProgressResponse struct {
	Answered  int    `json:"answered"`
	Total     int    `json:"total"`
	Correct   int    `json:"correct"`
	Remaining int    `json:"remaining"`
	State     string `json:"state"`
}

func toSessionResponse(v *service.SessionView) SessionResponse {
	resp := SessionResponse{
		ID:        v.ID,
		Flow:      string(v.Flow),
		State:     string(v.State),
		Answered:  v.Answered,
		Total:     v.Total,
		Correct:   v.Correct,
		Remaining: v.Remaining,
	}
	if v.Current != nil {
		resp.Current = &DrillItemResponse{
			Type:    string(v.Current.Type),
			Prompt:  v.Current.Prompt,
			Answer:  v.Current.Answer,
			Options: v.Current.Options,
			WordID:  v.Current.WordID,
		}
	}
	return resp
}

// handleSessionError maps service and engine errors onto HTTP responses.
func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, session.ErrSessionComplete):
		respondError(w, http.StatusConflict, "session already complete")
	case errors.Is(err, session.ErrAnswerNotChecked):
		respondError(w, http.StatusConflict, "answer the current item before advancing")
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /sessions
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	types := make([]drill.Type, len(req.DrillTypes))
	for i, t := range req.DrillTypes {
		types[i] = drill.Type(t)
	}

	view, err := h.practice.StartSession(r.Context(), req.WordSetID, session.Flow(req.Flow), types, req.Seed)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "word set not found")
		case errors.Is(err, drill.ErrNoWords):
			respondError(w, http.StatusBadRequest, "word set has no words")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, toSessionResponse(view))
}

// GET /sessions/{sessionID}
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.practice.GetSession(r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(view))
}

// POST /sessions/{sessionID}/answers
func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req CheckAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	correct, err := h.practice.CheckAnswer(sessionID, req.Answer)
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, CheckAnswerResponse{
		Correct: correct,
		State:   string(session.StateAnswerChecked),
	})
}

// POST /sessions/{sessionID}/advance
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.practice.Advance(r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(view))
}

// GET /sessions/{sessionID}/progress
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	view, err := h.practice.GetSession(r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, ProgressResponse{
		Answered:  view.Answered,
		Total:     view.Total,
		Correct:   view.Correct,
		Remaining: view.Remaining,
		State:     string(view.State),
	})
}
