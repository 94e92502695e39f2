package nlprule

import (
	"fmt"

	"github.com/Qeenon/nlprule/internal/binpack"
	"github.com/Qeenon/nlprule/internal/engine"
)

// TokenizerName is the logical artifact name of a tokenizer payload.
const TokenizerName = "tokenizer.bin.gz"

// Tokenizer tokenizes, tags and disambiguates text. It performs no I/O
// after construction and is safe for concurrent use.
//
// The splitter may be nil; then only the *Sentence operations are
// available and the full-text ones fail with ErrConfiguration.
type Tokenizer struct {
	engine   *engine.Tokenizer
	splitter SentenceSplitter
}

// LoadTokenizer fetches (or reads from cache) the tokenizer artifact for
// the given language code and deserializes it.
func LoadTokenizer(code string, splitter SentenceSplitter, opts ...LoadOption) (*Tokenizer, error) {
	data, err := fetchArtifact(code, TokenizerName, opts)
	if err != nil {
		return nil, err
	}
	archive, err := openArchive(data)
	if err != nil {
		return nil, err
	}
	return newTokenizerFromArchive(archive, splitter)
}

// NewTokenizer deserializes a tokenizer artifact from a local file.
func NewTokenizer(path string, splitter SentenceSplitter) (*Tokenizer, error) {
	archive, err := openArchiveFile(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()
	return newTokenizerFromArchive(archive, splitter)
}

func newTokenizerFromArchive(a *binpack.Archive, splitter SentenceSplitter) (*Tokenizer, error) {
	eng, err := engine.DeserializeTokenizer(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceCorrupt, err)
	}
	return &Tokenizer{engine: eng, splitter: splitter}, nil
}

// Tagger returns the tagger view bound to this tokenizer's dictionary and
// options.
func (t *Tokenizer) Tagger() *Tagger {
	return &Tagger{tagger: t.engine.Tagger(), opts: t.engine.Options()}
}

// TokenizeSentence tokenizes, disambiguates and finalizes one sentence.
// Token spans are codepoint offsets into the sentence.
func (t *Tokenizer) TokenizeSentence(sentence string) []Token {
	return newTokens(t.engine.Pipeline(sentence))
}

// TokenizeSentences is the batch form of TokenizeSentence. The result is
// parallel to the input.
func (t *Tokenizer) TokenizeSentences(sentences []string) [][]Token {
	out := make([][]Token, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, t.TokenizeSentence(s))
	}
	return out
}

// Tokenize splits text into sentences and tokenizes each. The per-sentence
// token lists are concatenated in document order; spans stay sentence-local
// and are not rebased, so the output alone does not identify sentence
// boundaries. Requires a sentence splitter.
func (t *Tokenizer) Tokenize(text string) ([]Token, error) {
	out, err := t.TokenizeAll([]string{text})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// TokenizeAll is the batch form of Tokenize. The result is parallel to the
// input.
func (t *Tokenizer) TokenizeAll(texts []string) ([][]Token, error) {
	if t.splitter == nil {
		return nil, missingSplitter("TokenizeSentence")
	}
	out := make([][]Token, 0, len(texts))
	for _, sentences := range t.splitter.Split(texts) {
		var tokens []Token
		for _, sentence := range sentences {
			tokens = append(tokens, newTokens(t.engine.Pipeline(sentence))...)
		}
		out = append(out, tokens)
	}
	return out, nil
}

func (t *Tokenizer) pipeline(sentence string) []engine.Token {
	return t.engine.Pipeline(sentence)
}

func missingSplitter(sentenceOp string) error {
	return fmt.Errorf("%w: sentence splitter must be set; use %s to process one sentence", ErrConfiguration, sentenceOp)
}
