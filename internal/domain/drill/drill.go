package drill

import "strings"

// Type identifies how a drill presents its word and checks the answer.
type Type string

const (
	TypeChooseMeaning Type = "choose_meaning" // show word, pick its meaning
	TypeChooseWord    Type = "choose_word"    // show meaning, pick the word
	TypeTrueFalse     Type = "true_false"     // is the shown pairing correct
	TypeListenChoose  Type = "listen_choose"  // play audio, pick the word
	TypeListenFill    Type = "listen_fill"    // play audio, type the word
	TypePronounce     Type = "pronounce"      // say the word, transcript checked
)

// Option labels for true/false drills.
const (
	OptionTrue  = "Đúng"
	OptionFalse = "Sai"
)

// AllTypes lists every drill type.
var AllTypes = []Type{
	TypeChooseMeaning,
	TypeChooseWord,
	TypeTrueFalse,
	TypeListenChoose,
	TypeListenFill,
	TypePronounce,
}

// Valid reports whether t is a known drill type.
func (t Type) Valid() bool {
	switch t {
	case TypeChooseMeaning, TypeChooseWord, TypeTrueFalse,
		TypeListenChoose, TypeListenFill, TypePronounce:
		return true
	}
	return false
}

// Item is one generated question instance. Options is empty for the
// free-response types. Attempts counts wrong submissions and is mutated
// by the session engine only.
type Item struct {
	Type     Type
	Prompt   string
	Answer   string
	Options  []string
	WordID   string
	Attempts int
}

// Matches checks a submitted value against the item's answer.
// Free-response types compare case-insensitively with surrounding
// whitespace stripped, everything else is exact string equality.
func (it *Item) Matches(submitted string) bool {
	switch it.Type {
	case TypeListenFill, TypePronounce:
		return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(it.Answer))
	default:
		return submitted == it.Answer
	}
}
