package store

import (
	"context"
	"errors"
	"time"

	"github.com/lexitrain/backend/internal/domain/vocab"
)

var ErrNotFound = errors.New("not found")

// WordSetSummary is a word set row without its words, for list views.
type WordSetSummary struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Topic     *string `db:"topic"`
	WordCount int     `db:"word_count"`
}

// ReviewRecord is one reviewed word at the end of a review session.
type ReviewRecord struct {
	WordID     string    `db:"word_id"`
	WrongCount int       `db:"wrong_count"`
	ReviewedAt time.Time `db:"reviewed_at"`
}

// SessionResult is the final statistics row of a completed session.
type SessionResult struct {
	ID         string    `db:"id"`
	WordSetID  string    `db:"word_set_id"`
	Flow       string    `db:"flow"`
	Answered   int       `db:"answered"`
	Total      int       `db:"total"`
	Correct    int       `db:"correct"`
	FinishedAt time.Time `db:"finished_at"`
}

// SetStats aggregates study progress for one word set.
type SetStats struct {
	SetID        string `db:"set_id"`
	TotalWords   int    `db:"total_words"`
	StudiedWords int    `db:"studied_words"`
	Sessions     int    `db:"sessions"`
}

// Store is the persistence boundary. The session engine never touches
// it; the service layer reads word sets in and writes progress out.
type Store interface {
	SaveWordSet(ctx context.Context, ws *vocab.WordSet) error
	GetWordSet(ctx context.Context, id string) (*vocab.WordSet, error)
	ListWordSets(ctx context.Context) ([]WordSetSummary, error)
	DeleteWordSet(ctx context.Context, id string) error
	AddWord(ctx context.Context, setID string, w vocab.Word) error

	MarkStudied(ctx context.Context, wordIDs []string) error
	SaveReviewRecords(ctx context.Context, recs []ReviewRecord) error
	SaveSessionResult(ctx context.Context, res SessionResult) error
	GetSetStats(ctx context.Context, setID string) (SetStats, error)
}
