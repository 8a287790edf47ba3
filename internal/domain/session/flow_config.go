package session

import (
	"fmt"

	"github.com/lexitrain/backend/internal/domain/drill"
)

// Flow names the product surface a session was started from. All three
// share one engine; only the knobs below differ.
type Flow string

const (
	FlowTopicLearning Flow = "topic_learning"
	FlowReview        Flow = "review"
	FlowQuiz          Flow = "quiz"
)

// FlowConfig parameterizes the engine per flow.
type FlowConfig struct {
	Flow          Flow
	Types         []drill.Type
	PerWord       int
	AttemptLimits map[drill.Type]int
}

// defaultTypes is what a flow falls back to when the caller enables
// nothing. The generator itself refuses an empty type set.
var defaultTypes = []drill.Type{drill.TypeChooseMeaning, drill.TypeChooseWord}

// Pronunciation drills stop being re-asked after two wrong attempts.
// Other types retry until answered.
var defaultAttemptLimits = map[drill.Type]int{
	drill.TypePronounce: 2,
}

// ConfigForFlow returns the preset for a flow. types may be empty, in
// which case the default pair is used.
func ConfigForFlow(flow Flow, types []drill.Type) (FlowConfig, error) {
	for _, t := range types {
		if !t.Valid() {
			return FlowConfig{}, fmt.Errorf("unknown drill type %q", t)
		}
	}
	if len(types) == 0 {
		types = defaultTypes
	}

	cfg := FlowConfig{
		Flow:          flow,
		Types:         types,
		PerWord:       1,
		AttemptLimits: defaultAttemptLimits,
	}

	switch flow {
	case FlowTopicLearning:
		// Learning a topic drills every word twice.
		cfg.PerWord = 2
	case FlowReview, FlowQuiz:
		cfg.PerWord = 1
	default:
		return FlowConfig{}, fmt.Errorf("unknown flow %q", flow)
	}

	return cfg, nil
}
