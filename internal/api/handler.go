package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/lexitrain/backend/internal/service"
	"github.com/lexitrain/backend/internal/store"
	"github.com/lexitrain/backend/pkg/validator"
)

// Handler holds all dependencies needed by HTTP handlers. Every handler
// method receives its dependencies through this struct instead of
// package-level globals.
type Handler struct {
	store    store.Store
	practice *service.PracticeService
	logger   *zap.Logger
}

func NewHandler(s store.Store, practice *service.PracticeService, logger *zap.Logger) *Handler {
	return &Handler{
		store:    s,
		practice: practice,
		logger:   logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// decodeAndValidate parses the JSON body into req and runs its validate
// tags. Returns false after writing the error response.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError maps common store errors onto HTTP responses.
// Returns true if an error was handled and the caller should return.
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", zap.String("entity", entity), zap.Error(err))
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
