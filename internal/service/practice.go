package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexitrain/backend/internal/domain/drill"
	"github.com/lexitrain/backend/internal/domain/session"
	"github.com/lexitrain/backend/internal/store"
	"github.com/lexitrain/backend/internal/worker"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionView is the state a client needs to render one session step.
type SessionView struct {
	ID        string
	Flow      session.Flow
	State     session.State
	Current   *drill.Item // nil once complete
	Answered  int
	Total     int
	Correct   int
	Remaining int
}

// liveSession pairs an engine with its bookkeeping. The engine itself
// is single-threaded, so every access goes through mu.
type liveSession struct {
	id        string
	wordSetID string
	flow      session.Flow
	engine    *session.Engine

	mu        sync.Mutex
	lastTouch time.Time
	persisted bool
}

// PracticeService owns all live sessions. Engines live only in memory;
// the store sees a session exactly once, when it completes.
type PracticeService struct {
	store  store.Store
	pool   *worker.Pool
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

func NewPracticeService(s store.Store, pool *worker.Pool, logger *zap.Logger) *PracticeService {
	return &PracticeService{
		store:    s,
		pool:     pool,
		logger:   logger,
		sessions: make(map[string]*liveSession),
	}
}

// StartSession loads a word set, generates its drill queue and registers
// a fresh engine. seed pins the generator's randomness when non-nil,
// otherwise each session rolls its own.
func (p *PracticeService) StartSession(ctx context.Context, setID string, flow session.Flow, types []drill.Type, seed *int64) (*SessionView, error) {
	cfg, err := session.ConfigForFlow(flow, types)
	if err != nil {
		return nil, err
	}

	ws, err := p.store.GetWordSet(ctx, setID)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	}

	items, err := drill.NewGenerator(rng).Generate(ws.Words, drill.Config{
		Types:   cfg.Types,
		PerWord: cfg.PerWord,
	})
	if err != nil {
		return nil, err
	}

	engine, err := session.NewEngine(items, cfg.AttemptLimits)
	if err != nil {
		return nil, err
	}

	ls := &liveSession{
		id:        uuid.NewString(),
		wordSetID: setID,
		flow:      flow,
		engine:    engine,
		lastTouch: time.Now(),
	}

	p.mu.Lock()
	p.sessions[ls.id] = ls
	p.mu.Unlock()

	p.logger.Info("session started",
		zap.String("session_id", ls.id),
		zap.String("word_set_id", setID),
		zap.String("flow", string(flow)),
		zap.Int("items", len(items)),
	)

	return view(ls), nil
}

// GetSession returns the current state of a live session.
func (p *PracticeService) GetSession(sessionID string) (*SessionView, error) {
	ls, err := p.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	return lockedView(ls), nil
}

// CheckAnswer checks submitted against the session's head item.
func (p *PracticeService) CheckAnswer(sessionID, submitted string) (bool, error) {
	ls, err := p.lookup(sessionID)
	if err != nil {
		return false, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.lastTouch = time.Now()
	return ls.engine.CheckAnswer(submitted)
}

// Advance consumes the last checked answer. When the session completes
// it is persisted once, off the request path.
func (p *PracticeService) Advance(sessionID string) (*SessionView, error) {
	ls, err := p.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.lastTouch = time.Now()

	if err := ls.engine.Advance(); err != nil {
		return nil, err
	}

	if ls.engine.State() == session.StateComplete && !ls.persisted {
		ls.persisted = true
		p.pool.Submit(func() { p.persistResults(ls) })
	}

	return lockedView(ls), nil
}

// ExpireBefore drops sessions untouched since the cutoff. Completed
// sessions are already persisted; abandoned ones are simply discarded.
func (p *PracticeService) ExpireBefore(cutoff time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	dropped := 0
	for id, ls := range p.sessions {
		ls.mu.Lock()
		idle := ls.lastTouch.Before(cutoff)
		ls.mu.Unlock()
		if idle {
			delete(p.sessions, id)
			dropped++
		}
	}

	if dropped > 0 {
		p.logger.Info("expired idle sessions", zap.Int("count", dropped))
	}
	return dropped
}

func (p *PracticeService) lookup(sessionID string) (*liveSession, error) {
	p.mu.RLock()
	ls, ok := p.sessions[sessionID]
	p.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ls, nil
}

// persistResults writes the progress sink data for one completed
// session. It runs on the worker pool with a background context so a
// finished HTTP request cannot cancel the write.
func (p *PracticeService) persistResults(ls *liveSession) {
	ctx := context.Background()

	ls.mu.Lock()
	results := ls.engine.Results()
	answered, total := ls.engine.Progress()
	correct := ls.engine.CorrectCount()
	ls.mu.Unlock()

	// Collapse per-item attempts onto distinct words.
	wrongByWord := make(map[string]int)
	order := make([]string, 0, len(results))
	for _, it := range results {
		if _, seen := wrongByWord[it.WordID]; !seen {
			order = append(order, it.WordID)
		}
		wrongByWord[it.WordID] += it.Attempts
	}

	switch ls.flow {
	case session.FlowTopicLearning:
		if err := p.store.MarkStudied(ctx, order); err != nil {
			p.logger.Error("failed to mark words studied",
				zap.String("session_id", ls.id), zap.Error(err))
		}
	case session.FlowReview:
		now := time.Now()
		recs := make([]store.ReviewRecord, 0, len(order))
		for _, wordID := range order {
			recs = append(recs, store.ReviewRecord{
				WordID:     wordID,
				WrongCount: wrongByWord[wordID],
				ReviewedAt: now,
			})
		}
		if err := p.store.SaveReviewRecords(ctx, recs); err != nil {
			p.logger.Error("failed to save review records",
				zap.String("session_id", ls.id), zap.Error(err))
		}
	}

	err := p.store.SaveSessionResult(ctx, store.SessionResult{
		ID:         ls.id,
		WordSetID:  ls.wordSetID,
		Flow:       string(ls.flow),
		Answered:   answered,
		Total:      total,
		Correct:    correct,
		FinishedAt: time.Now(),
	})
	if err != nil {
		p.logger.Error("failed to save session result",
			zap.String("session_id", ls.id), zap.Error(err))
		return
	}

	p.logger.Info("session persisted",
		zap.String("session_id", ls.id),
		zap.Int("answered", answered),
		zap.Int("correct", correct),
	)
}

func view(ls *liveSession) *SessionView {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return lockedView(ls)
}

// lockedView builds a view; the caller holds ls.mu.
func lockedView(ls *liveSession) *SessionView {
	answered, total := ls.engine.Progress()

	var current *drill.Item
	if cur := ls.engine.Current(); cur != nil {
		copied := *cur
		current = &copied
	}

	return &SessionView{
		ID:        ls.id,
		Flow:      ls.flow,
		State:     ls.engine.State(),
		Current:   current,
		Answered:  answered,
		Total:     total,
		Correct:   ls.engine.CorrectCount(),
		Remaining: ls.engine.Remaining(),
	}
}
