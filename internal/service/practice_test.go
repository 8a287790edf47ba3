package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lexitrain/backend/internal/domain/drill"
	"github.com/lexitrain/backend/internal/domain/session"
	"github.com/lexitrain/backend/internal/domain/vocab"
	mock_service "github.com/lexitrain/backend/internal/service/mock"
	"github.com/lexitrain/backend/internal/store"
	"github.com/lexitrain/backend/internal/worker"
)

func testSet(words int) *vocab.WordSet {
	ws := &vocab.WordSet{ID: "set1", Name: "Animals"}
	for i := 0; i < words; i++ {
		suffix := string(rune('a' + i))
		ws.Words = append(ws.Words, vocab.Word{
			ID:      "w-" + suffix,
			Text:    "word-" + suffix,
			Meaning: "meaning-" + suffix,
		})
	}
	return ws
}

func newPracticeMock(t *testing.T, setupMock func(*mock_service.MockStore)) (*PracticeService, *worker.Pool) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mock_service.NewMockStore(ctrl)
	if setupMock != nil {
		setupMock(st)
	}

	pool := worker.NewPool(1, 4)
	return NewPracticeService(st, pool, zap.NewNop()), pool
}

// runToCompletion answers every item correctly until the session ends.
func runToCompletion(t *testing.T, p *PracticeService, sessionID string) *SessionView {
	t.Helper()

	view, err := p.GetSession(sessionID)
	require.NoError(t, err)

	for view.State != session.StateComplete {
		ok, err := p.CheckAnswer(sessionID, view.Current.Answer)
		require.NoError(t, err)
		require.True(t, ok)

		view, err = p.Advance(sessionID)
		require.NoError(t, err)
	}
	return view
}

func TestPracticeService_StartSession(t *testing.T) {
	t.Parallel()

	seed := int64(42)

	tests := []struct {
		name    string
		setID   string
		flow    session.Flow
		types   []drill.Type
		f       func(*mock_service.MockStore)
		wantErr error
		items   int
	}{
		{
			name:  "quiz over three words",
			setID: "set1",
			flow:  session.FlowQuiz,
			types: []drill.Type{drill.TypeChooseMeaning},
			f: func(st *mock_service.MockStore) {
				st.EXPECT().GetWordSet(gomock.Any(), "set1").Return(testSet(3), nil)
			},
			items: 3,
		},
		{
			name:  "topic learning doubles the queue",
			setID: "set1",
			flow:  session.FlowTopicLearning,
			f: func(st *mock_service.MockStore) {
				st.EXPECT().GetWordSet(gomock.Any(), "set1").Return(testSet(3), nil)
			},
			items: 6,
		},
		{
			name:  "empty word set",
			setID: "set1",
			flow:  session.FlowReview,
			f: func(st *mock_service.MockStore) {
				st.EXPECT().GetWordSet(gomock.Any(), "set1").Return(testSet(0), nil)
			},
			wantErr: drill.ErrNoWords,
		},
		{
			name:  "unknown word set",
			setID: "missing",
			flow:  session.FlowReview,
			f: func(st *mock_service.MockStore) {
				st.EXPECT().GetWordSet(gomock.Any(), "missing").Return(nil, store.ErrNotFound)
			},
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unknown flow",
			setID:   "set1",
			flow:    "cramming",
			wantErr: nil, // error checked by message below
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, _ := newPracticeMock(t, tt.f)

			view, err := p.StartSession(context.Background(), tt.setID, tt.flow, tt.types, &seed)

			if tt.name == "unknown flow" {
				assert.Error(t, err)
				return
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, session.StateAwaitingAnswer, view.State)
			assert.Equal(t, tt.items, view.Total)
			assert.Equal(t, tt.items, view.Remaining)
			assert.Zero(t, view.Answered)
			assert.NotNil(t, view.Current)
		})
	}
}

func TestPracticeService_LearningFlowPersistsStudiedWords(t *testing.T) {
	seed := int64(7)

	var studied []string
	p, pool := newPracticeMock(t, func(st *mock_service.MockStore) {
		st.EXPECT().GetWordSet(gomock.Any(), "set1").Return(testSet(3), nil)
		st.EXPECT().MarkStudied(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ids []string) error {
				studied = ids
				return nil
			})
		st.EXPECT().SaveSessionResult(gomock.Any(), gomock.Any()).Return(nil)
	})

	view, err := p.StartSession(context.Background(), "set1", session.FlowTopicLearning, nil, &seed)
	require.NoError(t, err)

	final := runToCompletion(t, p, view.ID)
	pool.Shutdown()

	assert.Equal(t, session.StateComplete, final.State)
	assert.Equal(t, 6, final.Correct)
	assert.ElementsMatch(t, []string{"w-a", "w-b", "w-c"}, studied)
}

func TestPracticeService_ReviewFlowRecordsWrongCounts(t *testing.T) {
	seed := int64(11)

	var recs []store.ReviewRecord
	p, pool := newPracticeMock(t, func(st *mock_service.MockStore) {
		st.EXPECT().GetWordSet(gomock.Any(), "set1").Return(testSet(2), nil)
		st.EXPECT().SaveReviewRecords(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r []store.ReviewRecord) error {
				recs = r
				return nil
			})
		st.EXPECT().SaveSessionResult(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res store.SessionResult) error {
				assert.Equal(t, "review", res.Flow)
				assert.Equal(t, 3, res.Answered) // one retry
				assert.Equal(t, 2, res.Total)
				assert.Equal(t, 2, res.Correct)
				return nil
			})
	})

	view, err := p.StartSession(context.Background(), "set1", session.FlowReview,
		[]drill.Type{drill.TypeChooseMeaning}, &seed)
	require.NoError(t, err)

	// Miss the first item once, then clear everything.
	missed := view.Current.WordID
	ok, err := p.CheckAnswer(view.ID, "wrong")
	require.NoError(t, err)
	require.False(t, ok)
	_, err = p.Advance(view.ID)
	require.NoError(t, err)

	runToCompletion(t, p, view.ID)
	pool.Shutdown()

	require.Len(t, recs, 2)
	byWord := make(map[string]int)
	for _, r := range recs {
		byWord[r.WordID] = r.WrongCount
	}
	assert.Equal(t, 1, byWord[missed])
	for w, n := range byWord {
		if w != missed {
			assert.Zero(t, n)
		}
	}
}

func TestPracticeService_UnknownSession(t *testing.T) {
	t.Parallel()

	p, _ := newPracticeMock(t, nil)

	_, err := p.GetSession("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = p.CheckAnswer("nope", "x")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = p.Advance("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPracticeService_AdvanceBeforeCheck(t *testing.T) {
	t.Parallel()

	seed := int64(3)
	p, _ := newPracticeMock(t, func(st *mock_service.MockStore) {
		st.EXPECT().GetWordSet(gomock.Any(), "set1").Return(testSet(2), nil)
	})

	view, err := p.StartSession(context.Background(), "set1", session.FlowQuiz,
		[]drill.Type{drill.TypeChooseWord}, &seed)
	require.NoError(t, err)

	_, err = p.Advance(view.ID)
	assert.ErrorIs(t, err, session.ErrAnswerNotChecked)
}

func TestPracticeService_ExpireBefore(t *testing.T) {
	t.Parallel()

	seed := int64(5)
	p, _ := newPracticeMock(t, func(st *mock_service.MockStore) {
		st.EXPECT().GetWordSet(gomock.Any(), "set1").Return(testSet(2), nil)
	})

	view, err := p.StartSession(context.Background(), "set1", session.FlowQuiz, nil, &seed)
	require.NoError(t, err)

	// A cutoff in the past keeps the fresh session alive.
	assert.Zero(t, p.ExpireBefore(time.Now().Add(-time.Minute)))
	_, err = p.GetSession(view.ID)
	assert.NoError(t, err)

	assert.Equal(t, 1, p.ExpireBefore(time.Now().Add(time.Minute)))
	_, err = p.GetSession(view.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
