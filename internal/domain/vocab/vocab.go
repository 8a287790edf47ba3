package vocab

import (
	"errors"

	"github.com/lexitrain/backend/internal/id"
)

// Word is one vocabulary entry drills are generated from.
type Word struct {
	ID       string
	Text     string
	Meaning  string
	Phonetic string // optional
	AudioURL string // optional
	ImageURL string // optional
	Example  string // optional
}

// WordSet groups words for practice, e.g. one topic or one user study set.
type WordSet struct {
	ID    string
	Name  string
	Topic *string // optional, nil for free-form sets
	Words []Word
}

func New(name string) *WordSet {
	return &WordSet{
		ID:    id.GenerateID(),
		Name:  name,
		Topic: nil,
		Words: []Word{},
	}
}

func NewWithTopic(name string, topic string) *WordSet {
	return &WordSet{
		ID:    id.GenerateID(),
		Name:  name,
		Topic: &topic,
		Words: []Word{},
	}
}

func (ws *WordSet) SetTopic(topic *string) {
	ws.Topic = topic
}

// AddWord appends a word to the set, assigning an ID when the caller
// left it empty.
func (ws *WordSet) AddWord(w Word) error {
	if w.Text == "" {
		return errors.New("word text cannot be empty")
	}
	if w.Meaning == "" {
		return errors.New("word meaning cannot be empty")
	}

	if w.ID == "" {
		w.ID = id.GenerateID()
	}
	ws.Words = append(ws.Words, w)
	return nil
}
