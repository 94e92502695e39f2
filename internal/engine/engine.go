// Package engine holds the deserialized correction engines: the tokenizer
// pipeline (scanner, tagger, disambiguator, chunker) and the grammar-rule
// matcher. Both are load-once immutable; every method is safe for
// concurrent use after construction.
//
// Artifacts are binpack containers whose sections carry JSON documents.
// Tokenizer artifacts have sections "meta", "options", "tagger" and
// "disambiguator"; rules artifacts have "meta" and "rules".
package engine

// WordData is one morphological reading: a lemma plus a POS tag.
type WordData struct {
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
}

// Token is a lexical unit scanned from one sentence. Start and End are
// codepoint offsets into the sentence, half-open. Tags carries the raw
// readings in dictionary order, duplicates preserved; Chunks the shallow
// parse labels assigned by finalization.
type Token struct {
	Text   string
	Start  int
	End    int
	Tags   []WordData
	Chunks []string
}

// Suggestion is a replacement proposal over a codepoint span of a sentence.
// Replacements is non-empty and ordered best first.
type Suggestion struct {
	Start        int
	End          int
	Replacements []string
	Source       string
	Message      string
}

// Options are the tokenizer options baked into the artifact at build time.
type Options struct {
	// UseCompoundSplitHeuristic enables suffix lookup for unknown compound
	// words during tag retrieval.
	UseCompoundSplitHeuristic bool `json:"use_compound_split_heuristic"`
	// AlwaysAddLowerTags merges readings of the lowercased form into every
	// pipeline lookup, so capitalized forms inherit the readings of their
	// lowercase spelling.
	AlwaysAddLowerTags bool `json:"always_add_lower_tags"`
}
