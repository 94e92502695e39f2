package engine

import (
	"reflect"
	"testing"

	"github.com/Qeenon/nlprule/internal/binpack"
)

func fixtureTokenizer() *Tokenizer {
	tagger := &Tagger{
		Words: map[string][]WordData{
			"the":  {{Lemma: "the", POS: "DT"}},
			"old":  {{Lemma: "old", POS: "JJ"}},
			"man":  {{Lemma: "man", POS: "NN"}, {Lemma: "man", POS: "VB"}},
			"can":  {{Lemma: "can", POS: "NN"}, {Lemma: "can", POS: "MD"}},
			"go":   {{Lemma: "go", POS: "VB"}},
			"fast": {{Lemma: "fast", POS: "RB"}},
		},
	}
	disambig := []DisambigRule{
		{ID: "CAN_MODAL", Word: "can", NextPOS: "VB", KeepPOS: "MD"},
		{ID: "MAN_NOUN", Word: "man", PrevPOS: "DT", KeepPOS: "NN"},
	}
	return NewTokenizer("en", Options{}, tagger, disambig)
}

func tokenTexts(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out
}

func TestPipelineDisambiguates(t *testing.T) {
	tok := fixtureTokenizer()

	tokens := tok.Pipeline("the man can go")
	if got := tokenTexts(tokens); !reflect.DeepEqual(got, []string{"the", "man", "can", "go"}) {
		t.Fatalf("texts = %v", got)
	}

	// "man" after a determiner keeps only its noun reading.
	if got := tokens[1].Tags; !reflect.DeepEqual(got, []WordData{{Lemma: "man", POS: "NN"}}) {
		t.Errorf("man tags = %v, want noun only", got)
	}
	// "can" before a verb keeps only its modal reading.
	if got := tokens[2].Tags; !reflect.DeepEqual(got, []WordData{{Lemma: "can", POS: "MD"}}) {
		t.Errorf("can tags = %v, want modal only", got)
	}
}

func TestTokenizeLowerTagMerge(t *testing.T) {
	tagger := &Tagger{Words: map[string][]WordData{
		"the": {{Lemma: "the", POS: "DT"}},
	}}

	with := NewTokenizer("en", Options{AlwaysAddLowerTags: true}, tagger, nil)
	without := NewTokenizer("en", Options{}, tagger, nil)

	want := []WordData{{Lemma: "the", POS: "DT"}}
	if got := with.Pipeline("The")[0].Tags; !reflect.DeepEqual(got, want) {
		t.Errorf("with lower-tag merge: Tags = %v, want %v", got, want)
	}
	if got := without.Pipeline("The")[0].Tags; len(got) != 0 {
		t.Errorf("without lower-tag merge: Tags = %v, want empty", got)
	}
	// Direct hits are unaffected by the option.
	if got := without.Pipeline("the")[0].Tags; !reflect.DeepEqual(got, want) {
		t.Errorf("lowercase direct hit: Tags = %v, want %v", got, want)
	}
}

func TestDisambiguationKeepsReadingsWhenContextMissing(t *testing.T) {
	tok := fixtureTokenizer()

	// No verb follows, so the rule must not fire and both readings stay.
	tokens := tok.Pipeline("can")
	if got := len(tokens[0].Tags); got != 2 {
		t.Errorf("can has %d readings, want 2", got)
	}
}

func TestFinalizeAssignsChunks(t *testing.T) {
	tok := fixtureTokenizer()

	tokens := tok.Pipeline("the old man can go fast")
	wantChunks := [][]string{
		{"B-NP"},       // the
		{"I-NP"},       // old
		{"I-NP"},       // man
		{"B-VP"},       // can (modal after disambiguation)
		{"I-VP"},       // go
		nil,            // fast (adverb, outside any phrase)
	}
	for i, tok := range tokens {
		if !reflect.DeepEqual(tok.Chunks, wantChunks[i]) {
			t.Errorf("token %d (%s) chunks = %v, want %v", i, tok.Text, tok.Chunks, wantChunks[i])
		}
	}
}

func TestFinalizeTagsNeverNil(t *testing.T) {
	tok := fixtureTokenizer()
	tokens := tok.Pipeline("unknownword")
	if tokens[0].Tags == nil {
		t.Error("finalized token has nil Tags")
	}
}

func TestTokenizerSerializeRoundTrip(t *testing.T) {
	tok := fixtureTokenizer()

	data, err := tok.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	archive, err := binpack.FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	got, err := DeserializeTokenizer(archive)
	if err != nil {
		t.Fatalf("DeserializeTokenizer: %v", err)
	}

	if got.Lang() != "en" {
		t.Errorf("Lang = %q, want en", got.Lang())
	}

	// Behavior survives the round trip, disambiguation included.
	want := tok.Pipeline("the man can go")
	have := got.Pipeline("the man can go")
	if !reflect.DeepEqual(have, want) {
		t.Errorf("round-tripped pipeline differs:\n got %v\nwant %v", have, want)
	}
}

func TestDeserializeTokenizerRejectsWrongKind(t *testing.T) {
	rules := NewRules("en", nil)
	data, err := rules.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	archive, err := binpack.FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DeserializeTokenizer(archive); err == nil {
		t.Error("DeserializeTokenizer accepted a rules artifact")
	}
}
