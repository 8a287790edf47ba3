package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/lexitrain/backend/internal/domain/vocab"
	"github.com/lexitrain/backend/internal/importer"
)

// ── Request / Response types ────────────────────────────────────────────────

type WordRequest struct {
	Text     string `json:"text" validate:"required"`
	Meaning  string `json:"meaning" validate:"required"`
	Phonetic string `json:"phonetic,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Example  string `json:"example,omitempty"`
}

type CreateWordSetRequest struct {
	Name  string        `json:"name" validate:"required"`
	Topic *string       `json:"topic,omitempty"`
	Words []WordRequest `json:"words,omitempty" validate:"dive"`
}

type WordResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Meaning  string `json:"meaning"`
	Phonetic string `json:"phonetic,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Example  string `json:"example,omitempty"`
}

type WordSetResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Topic *string        `json:"topic,omitempty"`
	Words []WordResponse `json:"words"`
}

type WordSetSummaryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Topic     *string `json:"topic,omitempty"`
	WordCount int     `json:"word_count"`
}

type SetStatsResponse struct {
	SetID        string `json:"set_id"`
	TotalWords   int    `json:"total_words"`
	StudiedWords int    `json:"studied_words"`
	Sessions     int    `json:"sessions"`
}

type ImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

func toWordResponse(w vocab.Word) WordResponse {
	return WordResponse{
		ID:       w.ID,
		Text:     w.Text,
		Meaning:  w.Meaning,
		Phonetic: w.Phonetic,
		AudioURL: w.AudioURL,
		ImageURL: w.ImageURL,
		Example:  w.Example,
	}
}

func toWordSetResponse(ws *vocab.WordSet) WordSetResponse {
	words := make([]WordResponse, len(ws.Words))
	for i, w := range ws.Words {
		words[i] = toWordResponse(w)
	}
	return WordSetResponse{ID: ws.ID, Name: ws.Name, Topic: ws.Topic, Words: words}
}

func fromWordRequest(r WordRequest) vocab.Word {
	return vocab.Word{
		Text:     r.Text,
		Meaning:  r.Meaning,
		Phonetic: r.Phonetic,
		AudioURL: r.AudioURL,
		ImageURL: r.ImageURL,
		Example:  r.Example,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /wordsets
func (h *Handler) createWordSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateWordSetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var ws *vocab.WordSet
	if req.Topic != nil {
		ws = vocab.NewWithTopic(req.Name, *req.Topic)
	} else {
		ws = vocab.New(req.Name)
	}

	for _, wr := range req.Words {
		if err := ws.AddWord(fromWordRequest(wr)); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := h.store.SaveWordSet(ctx, ws); err != nil {
		h.logger.Error("failed to save word set", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save word set")
		return
	}

	respondJSON(w, http.StatusCreated, toWordSetResponse(ws))
}

// GET /wordsets
func (h *Handler) listWordSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.store.ListWordSets(r.Context())
	if err != nil {
		h.logger.Error("failed to list word sets", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list word sets")
		return
	}

	response := make([]WordSetSummaryResponse, len(sets))
	for i, s := range sets {
		response[i] = WordSetSummaryResponse{
			ID:        s.ID,
			Name:      s.Name,
			Topic:     s.Topic,
			WordCount: s.WordCount,
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// GET /wordsets/{setID}
func (h *Handler) getWordSet(w http.ResponseWriter, r *http.Request) {
	ws, err := h.store.GetWordSet(r.Context(), r.PathValue("setID"))
	if h.handleStoreError(w, err, "word set") {
		return
	}

	respondJSON(w, http.StatusOK, toWordSetResponse(ws))
}

// DELETE /wordsets/{setID}
func (h *Handler) deleteWordSet(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteWordSet(r.Context(), r.PathValue("setID"))
	if h.handleStoreError(w, err, "word set") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /wordsets/{setID}/stats
func (h *Handler) getSetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetSetStats(r.Context(), r.PathValue("setID"))
	if h.handleStoreError(w, err, "word set") {
		return
	}

	respondJSON(w, http.StatusOK, SetStatsResponse{
		SetID:        stats.SetID,
		TotalWords:   stats.TotalWords,
		StudiedWords: stats.StudiedWords,
		Sessions:     stats.Sessions,
	})
}

// POST /wordsets/{setID}/words
func (h *Handler) addWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	setID := r.PathValue("setID")

	var req WordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ws, err := h.store.GetWordSet(ctx, setID)
	if h.handleStoreError(w, err, "word set") {
		return
	}

	if err := ws.AddWord(fromWordRequest(req)); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	added := ws.Words[len(ws.Words)-1]
	if err := h.store.AddWord(ctx, setID, added); err != nil {
		h.logger.Error("failed to save word", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save word")
		return
	}

	respondJSON(w, http.StatusCreated, toWordResponse(added))
}

// POST /wordsets/{setID}/import
//
// Accepts a multipart upload under "file"; xlsx and csv are supported.
func (h *Handler) importWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	setID := r.PathValue("setID")

	if _, err := h.store.GetWordSet(ctx, setID); h.handleStoreError(w, err, "word set") {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	words, result, err := importer.Parse(file, header.Filename, importer.DefaultConfig())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	imported := 0
	for _, word := range words {
		if err := h.store.AddWord(ctx, setID, word); err != nil {
			result.Errors = append(result.Errors, "failed to save word "+word.Text)
			continue
		}
		imported++
	}

	respondJSON(w, http.StatusOK, ImportResponse{
		Imported: imported,
		Skipped:  result.Skipped,
		Errors:   result.Errors,
	})
}
