package nlprule

import "github.com/Qeenon/nlprule/internal/engine"

// Tagger exposes the tag dictionary of a Tokenizer: morphological readings
// for a surface form and the surface forms related to it. It shares the
// tokenizer's dictionary by reference and carries the tokenizer's options,
// so the compound-split heuristic setting flows through lookups verbatim.
type Tagger struct {
	tagger *engine.Tagger
	opts   engine.Options
}

// Tags returns the (lemma, POS) readings for word. With addLower, readings
// of the lowercased form are included as well.
func (t *Tagger) Tags(word string, addLower bool) []WordData {
	readings := t.tagger.Tags(word, addLower, t.opts.UseCompoundSplitHeuristic)
	out := make([]WordData, 0, len(readings))
	for _, wd := range readings {
		out = append(out, WordData{Lemma: wd.Lemma, POS: wd.POS})
	}
	return out
}

// GroupMembers returns the surface forms that share a lemma with word.
func (t *Tagger) GroupMembers(word string) []string {
	return t.tagger.GroupMembers(word)
}
