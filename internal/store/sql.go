package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lexitrain/backend/internal/domain/vocab"
)

const schema = `
CREATE TABLE IF NOT EXISTS word_sets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    topic TEXT
);

CREATE TABLE IF NOT EXISTS words (
    id TEXT PRIMARY KEY,
    set_id TEXT NOT NULL REFERENCES word_sets(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    meaning TEXT NOT NULL,
    phonetic TEXT NOT NULL DEFAULT '',
    audio_url TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    example TEXT NOT NULL DEFAULT '',
    studied BOOLEAN NOT NULL DEFAULT FALSE,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS review_records (
    word_id TEXT NOT NULL,
    wrong_count INTEGER NOT NULL,
    reviewed_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS session_results (
    id TEXT PRIMARY KEY,
    word_set_id TEXT NOT NULL,
    flow TEXT NOT NULL,
    answered INTEGER NOT NULL,
    total INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    finished_at TIMESTAMP NOT NULL
);
`

type wordRow struct {
	ID       string `db:"id"`
	SetID    string `db:"set_id"`
	Text     string `db:"text"`
	Meaning  string `db:"meaning"`
	Phonetic string `db:"phonetic"`
	AudioURL string `db:"audio_url"`
	ImageURL string `db:"image_url"`
	Example  string `db:"example"`
	Studied  bool   `db:"studied"`
	Position int    `db:"position"`
}

// SQLStore keeps word sets and progress in a relational database.
// driver is "sqlite3" or "postgres"; queries are written with ? and
// rebound for the active driver.
type SQLStore struct {
	db *sqlx.DB
}

// New opens the database and ensures the schema exists.
func New(driver, dsn string) (*SQLStore, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	if driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("store: enable foreign keys: %w", err)
		}
		// sqlite has a single writer
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("store: init schema: %w", err)
	}

	return &SQLStore{db: db}, nil
}

// NewWithDB wraps an already-open connection, used by tests.
func NewWithDB(db *sqlx.DB) (*SQLStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) SaveWordSet(ctx context.Context, ws *vocab.WordSet) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		tx.Rebind("INSERT INTO word_sets (id, name, topic) VALUES (?, ?, ?)"),
		ws.ID, ws.Name, ws.Topic)
	if err != nil {
		return err
	}

	for i, w := range ws.Words {
		if err := insertWord(ctx, tx, ws.ID, w, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLStore) GetWordSet(ctx context.Context, id string) (*vocab.WordSet, error) {
	var set struct {
		ID    string  `db:"id"`
		Name  string  `db:"name"`
		Topic *string `db:"topic"`
	}
	err := s.db.GetContext(ctx, &set,
		s.db.Rebind("SELECT id, name, topic FROM word_sets WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rows []wordRow
	err = s.db.SelectContext(ctx, &rows,
		s.db.Rebind(`SELECT id, set_id, text, meaning, phonetic, audio_url, image_url, example, studied, position
			FROM words WHERE set_id = ? ORDER BY position`), id)
	if err != nil {
		return nil, err
	}

	words := make([]vocab.Word, len(rows))
	for i, r := range rows {
		words[i] = vocab.Word{
			ID:       r.ID,
			Text:     r.Text,
			Meaning:  r.Meaning,
			Phonetic: r.Phonetic,
			AudioURL: r.AudioURL,
			ImageURL: r.ImageURL,
			Example:  r.Example,
		}
	}

	return &vocab.WordSet{
		ID:    set.ID,
		Name:  set.Name,
		Topic: set.Topic,
		Words: words,
	}, nil
}

func (s *SQLStore) ListWordSets(ctx context.Context) ([]WordSetSummary, error) {
	var sets []WordSetSummary
	err := s.db.SelectContext(ctx, &sets, `
		SELECT ws.id, ws.name, ws.topic, COUNT(w.id) AS word_count
		FROM word_sets ws
		LEFT JOIN words w ON w.set_id = ws.id
		GROUP BY ws.id, ws.name, ws.topic
		ORDER BY ws.name`)
	if err != nil {
		return nil, err
	}
	return sets, nil
}

func (s *SQLStore) DeleteWordSet(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		s.db.Rebind("DELETE FROM word_sets WHERE id = ?"), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) AddWord(ctx context.Context, setID string, w vocab.Word) error {
	var next int
	err := s.db.GetContext(ctx, &next,
		s.db.Rebind("SELECT COALESCE(MAX(position), -1) + 1 FROM words WHERE set_id = ?"), setID)
	if err != nil {
		return err
	}

	var exists int
	err = s.db.GetContext(ctx, &exists,
		s.db.Rebind("SELECT COUNT(*) FROM word_sets WHERE id = ?"), setID)
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}

	return insertWord(ctx, s.db, setID, w, next)
}

func (s *SQLStore) MarkStudied(ctx context.Context, wordIDs []string) error {
	if len(wordIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In("UPDATE words SET studied = TRUE WHERE id IN (?)", wordIDs)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	return err
}

func (s *SQLStore) SaveReviewRecords(ctx context.Context, recs []ReviewRecord) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt := tx.Rebind("INSERT INTO review_records (word_id, wrong_count, reviewed_at) VALUES (?, ?, ?)")
	for _, r := range recs {
		if _, err := tx.ExecContext(ctx, stmt, r.WordID, r.WrongCount, r.ReviewedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLStore) SaveSessionResult(ctx context.Context, res SessionResult) error {
	_, err := s.db.ExecContext(ctx,
		s.db.Rebind(`INSERT INTO session_results (id, word_set_id, flow, answered, total, correct, finished_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`),
		res.ID, res.WordSetID, res.Flow, res.Answered, res.Total, res.Correct, res.FinishedAt)
	return err
}

func (s *SQLStore) GetSetStats(ctx context.Context, setID string) (SetStats, error) {
	var exists int
	err := s.db.GetContext(ctx, &exists,
		s.db.Rebind("SELECT COUNT(*) FROM word_sets WHERE id = ?"), setID)
	if err != nil {
		return SetStats{}, err
	}
	if exists == 0 {
		return SetStats{}, ErrNotFound
	}

	stats := SetStats{SetID: setID}
	err = s.db.GetContext(ctx, &stats, s.db.Rebind(`
		SELECT ? AS set_id,
			COUNT(*) AS total_words,
			COALESCE(SUM(CASE WHEN studied THEN 1 ELSE 0 END), 0) AS studied_words,
			(SELECT COUNT(*) FROM session_results WHERE word_set_id = ?) AS sessions
		FROM words WHERE set_id = ?`),
		setID, setID, setID)
	if err != nil {
		return SetStats{}, err
	}
	return stats, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Rebind(query string) string
}

func insertWord(ctx context.Context, e execer, setID string, w vocab.Word, position int) error {
	_, err := e.ExecContext(ctx,
		e.Rebind(`INSERT INTO words (id, set_id, text, meaning, phonetic, audio_url, image_url, example, studied, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, FALSE, ?)`),
		w.ID, setID, w.Text, w.Meaning, w.Phonetic, w.AudioURL, w.ImageURL, w.Example, position)
	return err
}
