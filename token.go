package nlprule

import (
	"sort"

	"github.com/Qeenon/nlprule/internal/engine"
)

// WordData is one morphological reading of a surface form.
type WordData struct {
	Lemma string
	POS   string
}

// Token is a finalized lexical unit. It is a read-only view; the span is a
// half-open codepoint range into the sentence the token came from.
type Token struct {
	text   string
	start  int
	end    int
	data   []WordData
	chunks []string
}

func newToken(t engine.Token) Token {
	data := make([]WordData, 0, len(t.Tags))
	for _, wd := range t.Tags {
		data = append(data, WordData{Lemma: wd.Lemma, POS: wd.POS})
	}
	return Token{
		text:   t.Text,
		start:  t.Start,
		end:    t.End,
		data:   data,
		chunks: t.Chunks,
	}
}

func newTokens(ts []engine.Token) []Token {
	out := make([]Token, 0, len(ts))
	for _, t := range ts {
		out = append(out, newToken(t))
	}
	return out
}

// Text returns the surface form.
func (t Token) Text() string { return t.text }

// Span returns the half-open codepoint range of the token within its
// sentence.
func (t Token) Span() (start, end int) { return t.start, t.end }

// Data returns the raw (lemma, POS) readings, duplicates preserved.
func (t Token) Data() []WordData { return t.data }

// Lemmas returns the distinct non-empty lemmas, sorted.
func (t Token) Lemmas() []string {
	out := make([]string, 0, len(t.data))
	for _, wd := range t.data {
		if wd.Lemma != "" {
			out = append(out, wd.Lemma)
		}
	}
	return sortedDedup(out)
}

// Tags returns the distinct non-empty POS tags, sorted.
func (t Token) Tags() []string {
	out := make([]string, 0, len(t.data))
	for _, wd := range t.data {
		if wd.POS != "" {
			out = append(out, wd.POS)
		}
	}
	return sortedDedup(out)
}

// Chunks returns the shallow-parse chunk labels, possibly empty.
func (t Token) Chunks() []string { return t.chunks }

func sortedDedup(xs []string) []string {
	sort.Strings(xs)
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}
	return out
}
