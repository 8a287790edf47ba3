package vocab_test

import (
	"testing"

	"github.com/lexitrain/backend/internal/domain/vocab"
)

func TestNewAssignsID(t *testing.T) {
	ws := vocab.New("Basics")
	if ws.ID == "" {
		t.Fatal("expected generated id")
	}
	if ws.Topic != nil {
		t.Fatalf("expected nil topic, got %q", *ws.Topic)
	}
}

func TestNewWithTopic(t *testing.T) {
	ws := vocab.NewWithTopic("Animals", "nature")
	if ws.Topic == nil || *ws.Topic != "nature" {
		t.Fatal("expected topic to be set")
	}
}

func TestAddWord(t *testing.T) {
	ws := vocab.New("Basics")

	if err := ws.AddWord(vocab.Word{Text: "cat", Meaning: "con mèo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ws.Words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(ws.Words))
	}
	if ws.Words[0].ID == "" {
		t.Error("expected word id to be assigned")
	}

	if err := ws.AddWord(vocab.Word{Meaning: "no text"}); err == nil {
		t.Error("expected error for empty text")
	}
	if err := ws.AddWord(vocab.Word{Text: "no meaning"}); err == nil {
		t.Error("expected error for empty meaning")
	}
	if len(ws.Words) != 1 {
		t.Errorf("invalid words must not be appended, got %d", len(ws.Words))
	}
}

func TestAddWordKeepsCallerID(t *testing.T) {
	ws := vocab.New("Basics")
	if err := ws.AddWord(vocab.Word{ID: "w-1", Text: "dog", Meaning: "con chó"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Words[0].ID != "w-1" {
		t.Errorf("expected caller id to be kept, got %q", ws.Words[0].ID)
	}
}
