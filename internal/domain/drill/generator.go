package drill

import (
	"errors"
	"math/rand"
	"time"

	"github.com/lexitrain/backend/internal/domain/vocab"
)

// Multiple-choice drills aim for this many wrong options next to the
// correct one. Smaller word pools get fewer.
const distractorCount = 3

var (
	ErrNoWords = errors.New("no words to generate drills from")
	ErrNoTypes = errors.New("no drill types enabled")
)

// Config controls one generation run.
type Config struct {
	Types   []Type // enabled drill types, picked uniformly per item
	PerWord int    // items generated per word, minimum 1
}

// Generator expands words into shuffled drill items. The random source
// is explicit so tests can pin a seed and assert exact output.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A nil rng gets a time-seeded one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate produces cfg.PerWord items for every word, each with a type
// drawn uniformly from cfg.Types, and shuffles the full list.
func (g *Generator) Generate(words []vocab.Word, cfg Config) ([]Item, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if len(cfg.Types) == 0 {
		return nil, ErrNoTypes
	}

	perWord := cfg.PerWord
	if perWord < 1 {
		perWord = 1
	}

	items := make([]Item, 0, len(words)*perWord)
	for i := range words {
		for n := 0; n < perWord; n++ {
			t := cfg.Types[g.rng.Intn(len(cfg.Types))]
			items = append(items, g.build(t, words, i))
		}
	}

	g.rng.Shuffle(len(items), func(a, b int) {
		items[a], items[b] = items[b], items[a]
	})

	return items, nil
}

func (g *Generator) build(t Type, words []vocab.Word, cur int) Item {
	w := words[cur]

	switch t {
	case TypeChooseWord:
		return Item{
			Type:    t,
			Prompt:  w.Meaning,
			Answer:  w.Text,
			Options: g.options(words, cur, func(w vocab.Word) string { return w.Text }),
			WordID:  w.ID,
		}

	case TypeTrueFalse:
		shown := w.Meaning
		answer := OptionTrue
		// Coin flip: half the time pair the word with another word's
		// meaning. A single-word pool can only show the true pairing.
		if g.rng.Intn(2) == 1 && len(words) > 1 {
			shown = words[g.otherIndex(len(words), cur)].Meaning
			answer = OptionFalse
		}
		return Item{
			Type:    t,
			Prompt:  w.Text + " = " + shown,
			Answer:  answer,
			Options: []string{OptionTrue, OptionFalse},
			WordID:  w.ID,
		}

	case TypeListenChoose:
		// Audio prompt, the target word text is never shown.
		return Item{
			Type:    t,
			Prompt:  w.AudioURL,
			Answer:  w.Text,
			Options: g.options(words, cur, func(w vocab.Word) string { return w.Text }),
			WordID:  w.ID,
		}

	case TypeListenFill:
		return Item{
			Type:   t,
			Prompt: w.AudioURL,
			Answer: w.Text,
			WordID: w.ID,
		}

	case TypePronounce:
		return Item{
			Type:   t,
			Prompt: w.Text,
			Answer: w.Text,
			WordID: w.ID,
		}

	default: // TypeChooseMeaning
		return Item{
			Type:    TypeChooseMeaning,
			Prompt:  w.Text,
			Answer:  w.Meaning,
			Options: g.options(words, cur, func(w vocab.Word) string { return w.Meaning }),
			WordID:  w.ID,
		}
	}
}

// options builds the shuffled option list: the correct value plus up to
// distractorCount values sampled without replacement from the other words.
func (g *Generator) options(words []vocab.Word, cur int, field func(vocab.Word) string) []string {
	others := make([]int, 0, len(words)-1)
	for i := range words {
		if i != cur {
			others = append(others, i)
		}
	}
	g.rng.Shuffle(len(others), func(a, b int) {
		others[a], others[b] = others[b], others[a]
	})

	n := distractorCount
	if len(others) < n {
		n = len(others)
	}

	opts := make([]string, 0, n+1)
	opts = append(opts, field(words[cur]))
	for _, i := range others[:n] {
		opts = append(opts, field(words[i]))
	}

	g.rng.Shuffle(len(opts), func(a, b int) {
		opts[a], opts[b] = opts[b], opts[a]
	})

	return opts
}

// otherIndex picks a uniform random index in [0, n) excluding cur.
func (g *Generator) otherIndex(n, cur int) int {
	i := g.rng.Intn(n - 1)
	if i >= cur {
		i++
	}
	return i
}
