package engine

import (
	"reflect"
	"testing"
)

// verifySpans checks that every token's span indexes its text within the
// sentence, in codepoints, and that starts are non-decreasing.
func verifySpans(t *testing.T, sentence string, tokens []Token) {
	t.Helper()
	runes := []rune(sentence)
	prev := 0
	for i, tok := range tokens {
		if tok.Start > tok.End || tok.End > len(runes) {
			t.Errorf("token %d span [%d, %d) out of range for %d runes", i, tok.Start, tok.End, len(runes))
			continue
		}
		if got := string(runes[tok.Start:tok.End]); got != tok.Text {
			t.Errorf("token %d: sentence[%d:%d] = %q, Text = %q", i, tok.Start, tok.End, got, tok.Text)
		}
		if tok.Start < prev {
			t.Errorf("token %d start %d decreases from %d", i, tok.Start, prev)
		}
		prev = tok.Start
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{"words and period", "The sky is blue.", []string{"The", "sky", "is", "blue", "."}},
		{"empty", "", nil},
		{"only whitespace", "   \t", nil},
		{"leading whitespace", "  hi", []string{"hi"}},
		{"apostrophe joins", "don't stop", []string{"don't", "stop"}},
		{"hyphen joins", "well-known fact", []string{"well-known", "fact"}},
		{"trailing quote stays punctuation", "said 'hi'", []string{"said", "'", "hi", "'"}},
		{"digits are word runes", "24 hours", []string{"24", "hours"}},
		{"punctuation runs split per rune", "wait...", []string{"wait", ".", ".", "."}},
		{"multibyte letters", "über café", []string{"über", "café"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(tt.sentence)
			var texts []string
			for _, tok := range tokens {
				texts = append(texts, tok.Text)
			}
			if !reflect.DeepEqual(texts, tt.want) {
				t.Fatalf("scan(%q) texts = %v, want %v", tt.sentence, texts, tt.want)
			}
			verifySpans(t, tt.sentence, tokens)
		})
	}
}

func TestScanMultibyteSpansAreCodepoints(t *testing.T) {
	tokens := scan("é b")
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tokens[1].Start != 2 || tokens[1].End != 3 {
		t.Errorf("second token span = [%d, %d), want codepoint span [2, 3)", tokens[1].Start, tokens[1].End)
	}
}
