package explain

import (
	"strings"
	"testing"

	"github.com/cognicore/sdc/pkg/sdc/corpus"
)

func TestBuildRendersMatchedSpan(t *testing.T) {
	b := New()
	tokens := []string{"Prologue", " .", "  ", "Hello", "  ", "world", " !", "Epilogue", " ."}
	m := corpus.Match{Begin: 3, End: 6, Length: 3, SDC: 0.7058}

	card := b.Build("Helo  wordl", tokens, m)

	if card.ID == "" {
		t.Errorf("expected a non-empty ULID")
	}
	want := "Hello  world"
	if card.MatchedText != want {
		t.Errorf("MatchedText = %q, want %q", card.MatchedText, want)
	}
	if card.Begin != 3 || card.End != 6 || card.Length != 3 {
		t.Errorf("span = [%d,%d,%d], want [3,6,3]", card.Begin, card.End, card.Length)
	}
	if len(card.SharedBigrams) == 0 {
		t.Errorf("expected at least one shared bigram")
	}
	if card.BuiltAt.IsZero() {
		t.Errorf("expected BuiltAt to be set")
	}
}

func TestBuildIDsAreMonotonic(t *testing.T) {
	b := New()
	tokens := []string{"hello", "world"}
	m := corpus.Match{Begin: 0, End: 1, Length: 1, SDC: 1}

	first := b.Build("hello", tokens, m)
	second := b.Build("hello", tokens, m)

	if first.ID >= second.ID {
		t.Errorf("expected monotonically increasing IDs, got %q then %q", first.ID, second.ID)
	}
}

func TestCardStringIncludesMatchedText(t *testing.T) {
	b := New()
	tokens := []string{"hello"}
	m := corpus.Match{Begin: 0, End: 1, Length: 1, SDC: 1}
	card := b.Build("hello", tokens, m)

	if !strings.Contains(card.String(), "hello") {
		t.Errorf("String() = %q, expected it to mention the matched text", card.String())
	}
}
