package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexitrain/backend/internal/domain/vocab"
	"github.com/lexitrain/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	s, err := store.NewWithDB(db)
	require.NoError(t, err)
	return s
}

func seedSet(t *testing.T, s *store.SQLStore) *vocab.WordSet {
	t.Helper()

	ws := vocab.NewWithTopic("Animals", "nature")
	require.NoError(t, ws.AddWord(vocab.Word{Text: "cat", Meaning: "con mèo"}))
	require.NoError(t, ws.AddWord(vocab.Word{Text: "dog", Meaning: "con chó"}))
	require.NoError(t, s.SaveWordSet(context.Background(), ws))
	return ws
}

func TestSaveAndGetWordSet(t *testing.T) {
	s := newTestStore(t)
	ws := seedSet(t, s)

	got, err := s.GetWordSet(context.Background(), ws.ID)
	require.NoError(t, err)

	assert.Equal(t, ws.ID, got.ID)
	assert.Equal(t, "Animals", got.Name)
	require.NotNil(t, got.Topic)
	assert.Equal(t, "nature", *got.Topic)

	require.Len(t, got.Words, 2)
	assert.Equal(t, "cat", got.Words[0].Text)
	assert.Equal(t, "dog", got.Words[1].Text)
}

func TestGetWordSetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetWordSet(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListWordSets(t *testing.T) {
	s := newTestStore(t)
	ws := seedSet(t, s)

	empty := vocab.New("Zero words")
	require.NoError(t, s.SaveWordSet(context.Background(), empty))

	sets, err := s.ListWordSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 2)

	byID := map[string]store.WordSetSummary{}
	for _, sum := range sets {
		byID[sum.ID] = sum
	}
	assert.Equal(t, 2, byID[ws.ID].WordCount)
	assert.Equal(t, 0, byID[empty.ID].WordCount)
}

func TestDeleteWordSet(t *testing.T) {
	s := newTestStore(t)
	ws := seedSet(t, s)

	require.NoError(t, s.DeleteWordSet(context.Background(), ws.ID))

	_, err := s.GetWordSet(context.Background(), ws.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.DeleteWordSet(context.Background(), ws.ID), store.ErrNotFound)
}

func TestAddWordAppendsInOrder(t *testing.T) {
	s := newTestStore(t)
	ws := seedSet(t, s)

	err := s.AddWord(context.Background(), ws.ID, vocab.Word{ID: "w-new", Text: "bird", Meaning: "con chim"})
	require.NoError(t, err)

	got, err := s.GetWordSet(context.Background(), ws.ID)
	require.NoError(t, err)
	require.Len(t, got.Words, 3)
	assert.Equal(t, "bird", got.Words[2].Text)
}

func TestAddWordMissingSet(t *testing.T) {
	s := newTestStore(t)

	err := s.AddWord(context.Background(), "missing", vocab.Word{ID: "w", Text: "x", Meaning: "y"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMarkStudiedAndStats(t *testing.T) {
	s := newTestStore(t)
	ws := seedSet(t, s)
	ctx := context.Background()

	require.NoError(t, s.MarkStudied(ctx, []string{ws.Words[0].ID}))
	require.NoError(t, s.SaveSessionResult(ctx, store.SessionResult{
		ID:         "sr-1",
		WordSetID:  ws.ID,
		Flow:       "topic_learning",
		Answered:   4,
		Total:      4,
		Correct:    4,
		FinishedAt: time.Now(),
	}))

	stats, err := s.GetSetStats(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalWords)
	assert.Equal(t, 1, stats.StudiedWords)
	assert.Equal(t, 1, stats.Sessions)

	_, err = s.GetSetStats(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMarkStudiedEmptyIsNoop(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.MarkStudied(context.Background(), nil))
}

func TestSaveReviewRecords(t *testing.T) {
	s := newTestStore(t)
	ws := seedSet(t, s)
	ctx := context.Background()

	recs := []store.ReviewRecord{
		{WordID: ws.Words[0].ID, WrongCount: 0, ReviewedAt: time.Now()},
		{WordID: ws.Words[1].ID, WrongCount: 2, ReviewedAt: time.Now()},
	}
	require.NoError(t, s.SaveReviewRecords(ctx, recs))
	assert.NoError(t, s.SaveReviewRecords(ctx, nil))
}
