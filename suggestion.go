package nlprule

import "github.com/Qeenon/nlprule/internal/engine"

// Suggestion is a correction proposal anchored to a half-open codepoint
// span. For the *Sentence operations the span is relative to the sentence;
// for the full-text operations it is rebased into the coordinate system of
// the whole input text.
type Suggestion struct {
	start        int
	end          int
	replacements []string
}

func newSuggestion(s engine.Suggestion) Suggestion {
	return Suggestion{start: s.Start, end: s.End, replacements: s.Replacements}
}

func newSuggestions(ss []engine.Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(ss))
	for _, s := range ss {
		out = append(out, newSuggestion(s))
	}
	return out
}

// Start returns the inclusive start offset in codepoints.
func (s Suggestion) Start() int { return s.start }

// End returns the exclusive end offset in codepoints.
func (s Suggestion) End() int { return s.end }

// Replacements returns the candidate replacement strings, best first. The
// slice is never empty.
func (s Suggestion) Replacements() []string { return s.replacements }
