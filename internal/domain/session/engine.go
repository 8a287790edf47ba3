package session

import (
	"errors"

	"github.com/lexitrain/backend/internal/domain/drill"
)

// State is the engine's position in the answer cycle.
type State string

const (
	StateAwaitingAnswer State = "awaiting_answer"
	StateAnswerChecked  State = "answer_checked"
	StateComplete       State = "complete"
)

var (
	// ErrNoItems means the engine was constructed with an empty queue.
	ErrNoItems = errors.New("no drill items to practice")
	// ErrSessionComplete means an operation ran after the queue emptied.
	ErrSessionComplete = errors.New("session already complete")
	// ErrAnswerNotChecked means Advance ran before CheckAnswer for the
	// current head item. This is a caller bug, not a user condition.
	ErrAnswerNotChecked = errors.New("advance before answer check")
)

// Engine drives one practice pass over a drill queue: check the head
// item's answer, then advance. Correct items are evicted, wrong ones go
// to the tail until their type's attempt limit evicts them. The engine
// is not safe for concurrent use; every session owns its own instance.
type Engine struct {
	queue  *deque
	items  []*drill.Item // original order, kept for final reporting
	limits map[drill.Type]int

	state       State
	lastCorrect bool
	steps       int // advances processed, retries included
	correct     int
}

// NewEngine builds an engine over the generated items. limits maps a
// drill type to its maximum wrong attempts; types absent from the map
// retry forever. The engine takes its own copy of items.
func NewEngine(items []drill.Item, limits map[drill.Type]int) (*Engine, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	owned := make([]*drill.Item, len(items))
	for i := range items {
		it := items[i]
		owned[i] = &it
	}

	return &Engine{
		queue:  newDeque(owned),
		items:  owned,
		limits: limits,
		state:  StateAwaitingAnswer,
	}, nil
}

// State returns the engine state.
func (e *Engine) State() State { return e.state }

// Current returns the head item, or nil once the session is complete.
func (e *Engine) Current() *drill.Item {
	return e.queue.front()
}

// CheckAnswer compares submitted to the head item's answer and remembers
// the outcome for the next Advance. The queue is not mutated.
func (e *Engine) CheckAnswer(submitted string) (bool, error) {
	if e.state == StateComplete {
		return false, ErrSessionComplete
	}

	ok := e.queue.front().Matches(submitted)
	e.lastCorrect = ok
	e.state = StateAnswerChecked
	return ok, nil
}

// Advance consumes the last checked outcome. A correct item is evicted
// and counted once; a wrong item gets its attempt counter bumped and is
// requeued at the tail, or evicted uncounted when its type's limit is
// reached. The session completes when the queue empties.
func (e *Engine) Advance() error {
	if e.state == StateComplete {
		return ErrSessionComplete
	}
	if e.state != StateAnswerChecked {
		return ErrAnswerNotChecked
	}

	cur := e.queue.popFront()
	e.steps++

	if e.lastCorrect {
		e.correct++
	} else {
		cur.Attempts++
		limit, capped := e.limits[cur.Type]
		if !capped || cur.Attempts < limit {
			e.queue.pushBack(cur)
		}
	}

	if e.queue.len() == 0 {
		e.state = StateComplete
	} else {
		e.state = StateAwaitingAnswer
	}
	return nil
}

// Progress reports how many advances have been processed against the
// number of items originally queued. Answered can exceed total because
// retried items pass the head again.
func (e *Engine) Progress() (answered, total int) {
	return e.steps, len(e.items)
}

// CorrectCount returns how many items were answered correctly. Each item
// counts at most once.
func (e *Engine) CorrectCount() int { return e.correct }

// Remaining returns how many items are still queued.
func (e *Engine) Remaining() int { return e.queue.len() }

// Results snapshots every item of the session with its final attempt
// count, in generation order. Callers use this to feed progress sinks
// after completion.
func (e *Engine) Results() []drill.Item {
	out := make([]drill.Item, len(e.items))
	for i, it := range e.items {
		out[i] = *it
	}
	return out
}
