package nlprule

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Qeenon/nlprule/internal/engine"
)

// testTagger is a small English dictionary covering the test sentences.
func testTagger() *engine.Tagger {
	return &engine.Tagger{
		Words: map[string][]engine.WordData{
			"the":  {{Lemma: "the", POS: "DT"}},
			"sky":  {{Lemma: "sky", POS: "NN"}},
			"is":   {{Lemma: "be", POS: "VBZ"}},
			"blue": {{Lemma: "blue", POS: "JJ"}},
			"bb":   {{Lemma: "bb", POS: "NN"}},
		},
		Groups: map[string][]string{
			"be": {"am", "are", "is", "was", "were"},
		},
	}
}

func newTestTokenizer(splitter SentenceSplitter) *Tokenizer {
	eng := engine.NewTokenizer("en", engine.Options{}, testTagger(), nil)
	return &Tokenizer{engine: eng, splitter: splitter}
}

func newTestRules(splitter SentenceSplitter) *Rules {
	eng := engine.NewRules("en", []engine.Rule{
		{
			ID:           "TYPO_TEH",
			Pattern:      []engine.Matcher{{TextLower: "teh"}},
			Replacements: []string{"the"},
		},
		{
			ID:           "BB_SHORTEN",
			Pattern:      []engine.Matcher{{TextLower: "bb"}},
			Replacements: []string{"b", "B"},
		},
	})
	return &Rules{engine: eng, tokenizer: newTestTokenizer(nil), splitter: splitter}
}

func dotSplitter(t *testing.T) SentenceSplitter {
	t.Helper()
	return mustSplitOn(t, ".")
}

func TestCorrectSentence(t *testing.T) {
	rules := newTestRules(nil)

	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{"no rule fires", "The sky is blue.", "The sky is blue."},
		{"typo corrected", "teh sky is blue.", "the sky is blue."},
		{"case-insensitive match", "Teh sky.", "the sky."},
		{"empty sentence", "", ""},
		{"multiple matches", "teh bb.", "the b."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.CorrectSentence(tt.sentence); got != tt.want {
				t.Errorf("CorrectSentence(%q) = %q, want %q", tt.sentence, got, tt.want)
			}
		})
	}
}

func TestCorrectSentencesShape(t *testing.T) {
	rules := newTestRules(nil)

	in := []string{"teh sky.", "The sky is blue."}
	got := rules.CorrectSentences(in)
	want := []string{"the sky.", "The sky is blue."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CorrectSentences(%q) = %q, want %q", in, got, want)
	}
}

func TestCorrectFullText(t *testing.T) {
	splitter := dotSplitter(t)
	rules := newTestRules(splitter)

	text := "teh sky. teh bb."
	got, err := rules.Correct(text)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}

	// Full text correction equals concatenating per-sentence corrections.
	var want strings.Builder
	for _, sentence := range splitter.Split([]string{text})[0] {
		want.WriteString(rules.CorrectSentence(sentence))
	}
	if got != want.String() {
		t.Errorf("Correct(%q) = %q, want %q", text, got, want.String())
	}
	if got != "the sky. the b." {
		t.Errorf("Correct(%q) = %q, want %q", text, got, "the sky. the b.")
	}
}

func TestCorrectRequiresSplitter(t *testing.T) {
	rules := newTestRules(nil)

	_, err := rules.Correct("teh sky.")
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("Correct without splitter: error = %v, want ErrConfiguration", err)
	}
	if !strings.Contains(err.Error(), "CorrectSentence") {
		t.Errorf("error %q does not name CorrectSentence as the alternative", err)
	}
}

func TestSuggestSentence(t *testing.T) {
	rules := newTestRules(nil)

	got := rules.SuggestSentence("teh sky is blue.")
	if len(got) != 1 {
		t.Fatalf("SuggestSentence returned %d suggestions, want 1", len(got))
	}
	s := got[0]
	if s.Start() != 0 || s.End() != 3 {
		t.Errorf("span = [%d, %d), want [0, 3)", s.Start(), s.End())
	}
	if !reflect.DeepEqual(s.Replacements(), []string{"the"}) {
		t.Errorf("Replacements = %v, want [the]", s.Replacements())
	}
}

func TestSuggestRebasesOffsetsByCodepoints(t *testing.T) {
	rules := newTestRules(dotSplitter(t))

	// First sentence is two codepoints ("é."), so the suggestion in the
	// second sentence shifts by exactly 2 despite é being two bytes.
	got, err := rules.Suggest("é. teh.")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Suggest returned %d suggestions, want 1", len(got))
	}

	local := rules.SuggestSentence(" teh.")[0]
	wantStart := local.Start() + 2
	wantEnd := local.End() + 2
	if got[0].Start() != wantStart || got[0].End() != wantEnd {
		t.Errorf("global span = [%d, %d), want [%d, %d)",
			got[0].Start(), got[0].End(), wantStart, wantEnd)
	}
}

func TestSuggestOffsetsMonotonic(t *testing.T) {
	rules := newTestRules(dotSplitter(t))

	got, err := rules.Suggest("teh bb. teh sky. bb teh.")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) < 3 {
		t.Fatalf("Suggest returned %d suggestions, want at least 3", len(got))
	}
	for i, s := range got {
		if s.End() < s.Start() {
			t.Errorf("suggestion %d has end %d < start %d", i, s.End(), s.Start())
		}
		if i > 0 && s.Start() < got[i-1].Start() {
			t.Errorf("suggestion %d start %d decreases from %d", i, s.Start(), got[i-1].Start())
		}
	}
}

func TestSuggestAllShape(t *testing.T) {
	rules := newTestRules(dotSplitter(t))

	in := []string{"teh sky.", "The sky.", "bb."}
	got, err := rules.SuggestAll(in)
	if err != nil {
		t.Fatalf("SuggestAll: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("SuggestAll returned %d results for %d inputs", len(got), len(in))
	}
	if len(got[0]) != 1 || len(got[1]) != 0 || len(got[2]) != 1 {
		t.Errorf("per-text suggestion counts = [%d %d %d], want [1 0 1]",
			len(got[0]), len(got[1]), len(got[2]))
	}
}

func TestSuggestBestReplacementFirst(t *testing.T) {
	rules := newTestRules(nil)

	got := rules.SuggestSentence("bb")
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].Replacements(), []string{"b", "B"}) {
		t.Errorf("Replacements = %v, want [b B] in order", got[0].Replacements())
	}
}

func TestLoadRulesNeedsTokenizer(t *testing.T) {
	if _, err := LoadRules("en", nil, nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("LoadRules with nil tokenizer: error = %v, want ErrConfiguration", err)
	}
}
