package nlprule

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Qeenon/nlprule/internal/binpack"
	"github.com/Qeenon/nlprule/internal/engine"
)

// RulesName is the logical artifact name of a rules payload.
const RulesName = "rules.bin.gz"

// Rules applies a grammar-rule set to text and produces suggestions or
// corrected output. A Rules value shares its Tokenizer by reference; both
// perform no I/O after construction and are safe for concurrent use.
type Rules struct {
	engine    *engine.Rules
	tokenizer *Tokenizer
	splitter  SentenceSplitter
}

// LoadRules fetches (or reads from cache) the rules artifact for the given
// language code and binds it to tokenizer.
func LoadRules(code string, tokenizer *Tokenizer, splitter SentenceSplitter, opts ...LoadOption) (*Rules, error) {
	if tokenizer == nil {
		return nil, fmt.Errorf("%w: rules need a tokenizer", ErrConfiguration)
	}
	data, err := fetchArtifact(code, RulesName, opts)
	if err != nil {
		return nil, err
	}
	archive, err := openArchive(data)
	if err != nil {
		return nil, err
	}
	return newRulesFromArchive(archive, tokenizer, splitter)
}

// NewRules deserializes a rules artifact from a local file and binds it to
// tokenizer.
func NewRules(path string, tokenizer *Tokenizer, splitter SentenceSplitter) (*Rules, error) {
	if tokenizer == nil {
		return nil, fmt.Errorf("%w: rules need a tokenizer", ErrConfiguration)
	}
	archive, err := openArchiveFile(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()
	return newRulesFromArchive(archive, tokenizer, splitter)
}

func newRulesFromArchive(a *binpack.Archive, tokenizer *Tokenizer, splitter SentenceSplitter) (*Rules, error) {
	eng, err := engine.DeserializeRules(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceCorrupt, err)
	}
	return &Rules{engine: eng, tokenizer: tokenizer, splitter: splitter}, nil
}

// Tokenizer returns the tokenizer this rule set is bound to.
func (r *Rules) Tokenizer() *Tokenizer { return r.tokenizer }

// SuggestSentence applies the rules to one sentence. Suggestion spans are
// codepoint offsets into the sentence.
func (r *Rules) SuggestSentence(sentence string) []Suggestion {
	return newSuggestions(r.engine.Apply(r.tokenizer.pipeline(sentence)))
}

// SuggestSentences is the batch form of SuggestSentence. The result is
// parallel to the input.
func (r *Rules) SuggestSentences(sentences []string) [][]Suggestion {
	out := make([][]Suggestion, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, r.SuggestSentence(s))
	}
	return out
}

// Suggest splits text into sentences, applies the rules to each, and
// returns all suggestions in document order. Each suggestion's span is
// rebased into whole-text coordinates by adding the codepoint count of all
// prior sentences; this relies on the splitter's round-trip property.
// Requires a sentence splitter.
func (r *Rules) Suggest(text string) ([]Suggestion, error) {
	out, err := r.SuggestAll([]string{text})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// SuggestAll is the batch form of Suggest. The result is parallel to the
// input.
func (r *Rules) SuggestAll(texts []string) ([][]Suggestion, error) {
	if r.splitter == nil {
		return nil, missingSplitter("SuggestSentence")
	}
	out := make([][]Suggestion, 0, len(texts))
	for _, sentences := range r.splitter.Split(texts) {
		var suggestions []Suggestion
		offset := 0
		for _, sentence := range sentences {
			for _, s := range r.engine.Apply(r.tokenizer.pipeline(sentence)) {
				s.Start += offset
				s.End += offset
				suggestions = append(suggestions, newSuggestion(s))
			}
			offset += utf8.RuneCountInString(sentence)
		}
		out = append(out, suggestions)
	}
	return out, nil
}

// CorrectSentence rewrites one sentence by applying each suggestion's best
// replacement. With no firing rules the sentence is returned unchanged.
func (r *Rules) CorrectSentence(sentence string) string {
	return engine.CorrectText(sentence, r.engine.Apply(r.tokenizer.pipeline(sentence)))
}

// CorrectSentences is the batch form of CorrectSentence. The result is
// parallel to the input.
func (r *Rules) CorrectSentences(sentences []string) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, r.CorrectSentence(s))
	}
	return out
}

// Correct splits text into sentences, corrects each, and concatenates the
// results with no separator. Requires a sentence splitter.
func (r *Rules) Correct(text string) (string, error) {
	out, err := r.CorrectAll([]string{text})
	if err != nil {
		return "", err
	}
	return out[0], nil
}

// CorrectAll is the batch form of Correct. The result is parallel to the
// input.
func (r *Rules) CorrectAll(texts []string) ([]string, error) {
	if r.splitter == nil {
		return nil, missingSplitter("CorrectSentence")
	}
	out := make([]string, 0, len(texts))
	for _, sentences := range r.splitter.Split(texts) {
		var b strings.Builder
		for _, sentence := range sentences {
			b.WriteString(r.CorrectSentence(sentence))
		}
		out = append(out, b.String())
	}
	return out, nil
}
