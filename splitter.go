package nlprule

import "fmt"

// SentenceSplitter turns each input text into its sentences. The one
// property full-text operations rely on is the round trip: concatenating
// the sentences returned for a text must reproduce that text exactly,
// including whitespace. Splitters that trim or drop characters make the
// rebased suggestion offsets drift from the input; that is not defended
// against.
type SentenceSplitter interface {
	Split(texts []string) [][]string
}

// SplitterFunc adapts a plain function to the SentenceSplitter interface.
type SplitterFunc func(texts []string) [][]string

func (f SplitterFunc) Split(texts []string) [][]string { return f(texts) }

// SplitOn is the trivial sentence splitter: it cuts after every occurrence
// of one of its split characters and keeps the character attached to the
// sentence it terminates. Trailing text after the last split character is
// emitted as a final sentence, so the round-trip property always holds.
type SplitOn struct {
	splitChars []rune
}

// NewSplitOn builds a SplitOn from the given split tokens. Each token must
// be exactly one codepoint wide.
func NewSplitOn(splitChars []string) (*SplitOn, error) {
	chars := make([]rune, 0, len(splitChars))
	for _, s := range splitChars {
		rs := []rune(s)
		if len(rs) != 1 {
			return nil, fmt.Errorf("%w: split token %q must be exactly one character", ErrConfiguration, s)
		}
		chars = append(chars, rs[0])
	}
	return &SplitOn{splitChars: chars}, nil
}

// Split implements SentenceSplitter.
func (s *SplitOn) Split(texts []string) [][]string {
	out := make([][]string, 0, len(texts))
	for _, text := range texts {
		var sentences []string
		start := 0
		for i, c := range text {
			if !s.isSplitChar(c) {
				continue
			}
			end := i + len(string(c))
			sentences = append(sentences, text[start:end])
			start = end
		}
		if start != len(text) {
			sentences = append(sentences, text[start:])
		}
		out = append(out, sentences)
	}
	return out
}

func (s *SplitOn) isSplitChar(c rune) bool {
	for _, sc := range s.splitChars {
		if sc == c {
			return true
		}
	}
	return false
}
