package engine

import (
	"encoding/json"
	"fmt"

	"github.com/Qeenon/nlprule/internal/binpack"
)

// Artifact section names shared by serialization and deserialization.
const (
	sectionMeta          = "meta"
	sectionOptions       = "options"
	sectionTagger        = "tagger"
	sectionDisambiguator = "disambiguator"
	sectionRules         = "rules"
)

// artifactSchema is bumped when the section layout or any section's JSON
// shape changes incompatibly.
const artifactSchema = 1

type meta struct {
	Schema int    `json:"schema"`
	Lang   string `json:"lang"`
	Kind   string `json:"kind"`
}

// Tokenizer is the deserialized tokenizer artifact: scanner options, the
// tag dictionary and the disambiguation rules. Immutable after load.
type Tokenizer struct {
	lang     string
	opts     Options
	tagger   *Tagger
	disambig []DisambigRule
}

// NewTokenizer assembles a tokenizer from parts. Used by artifact builders
// and tests; normal loading goes through DeserializeTokenizer.
func NewTokenizer(lang string, opts Options, tagger *Tagger, disambig []DisambigRule) *Tokenizer {
	if tagger == nil {
		tagger = &Tagger{}
	}
	return &Tokenizer{lang: lang, opts: opts, tagger: tagger, disambig: disambig}
}

// Lang returns the language code baked into the artifact.
func (t *Tokenizer) Lang() string { return t.lang }

// Options returns the tokenizer options baked into the artifact.
func (t *Tokenizer) Options() Options { return t.opts }

// Tagger returns the shared tag dictionary.
func (t *Tokenizer) Tagger() *Tagger { return t.tagger }

// Tokenize scans one sentence into word and punctuation tokens and attaches
// the raw readings from the tag dictionary. Lowercase readings are merged
// only when the artifact's AlwaysAddLowerTags option is set.
func (t *Tokenizer) Tokenize(sentence string) []Token {
	tokens := scan(sentence)
	for i := range tokens {
		tokens[i].Tags = t.tagger.Tags(tokens[i].Text, t.opts.AlwaysAddLowerTags, t.opts.UseCompoundSplitHeuristic)
	}
	return tokens
}

// Disambiguate prunes tag ambiguity using the artifact's context rules.
func (t *Tokenizer) Disambiguate(tokens []Token) []Token {
	return disambiguate(t.disambig, tokens)
}

// Finalize produces the user-visible tokens: shallow-parse chunk labels are
// assigned and every token gets a non-nil reading list.
func (t *Tokenizer) Finalize(tokens []Token) []Token {
	tokens = chunk(tokens)
	for i := range tokens {
		if tokens[i].Tags == nil {
			tokens[i].Tags = []WordData{}
		}
	}
	return tokens
}

// Pipeline runs tokenize, disambiguate and finalize over one sentence.
func (t *Tokenizer) Pipeline(sentence string) []Token {
	return t.Finalize(t.Disambiguate(t.Tokenize(sentence)))
}

// DeserializeTokenizer decodes a tokenizer artifact.
func DeserializeTokenizer(a *binpack.Archive) (*Tokenizer, error) {
	var m meta
	if err := decodeSection(a, sectionMeta, &m); err != nil {
		return nil, err
	}
	if m.Schema != artifactSchema {
		return nil, fmt.Errorf("engine: unsupported artifact schema %d", m.Schema)
	}
	if m.Kind != "tokenizer" {
		return nil, fmt.Errorf("engine: artifact is a %q, expected a tokenizer", m.Kind)
	}

	t := &Tokenizer{lang: m.Lang, tagger: &Tagger{}}
	if err := decodeSection(a, sectionOptions, &t.opts); err != nil {
		return nil, err
	}
	if err := decodeSection(a, sectionTagger, t.tagger); err != nil {
		return nil, err
	}
	if err := decodeSection(a, sectionDisambiguator, &t.disambig); err != nil {
		return nil, err
	}
	return t, nil
}

// Serialize encodes the tokenizer into artifact bytes.
func (t *Tokenizer) Serialize() ([]byte, error) {
	w := binpack.NewWriter()
	if err := addJSONSection(w, sectionMeta, meta{Schema: artifactSchema, Lang: t.lang, Kind: "tokenizer"}); err != nil {
		return nil, err
	}
	if err := addJSONSection(w, sectionOptions, t.opts); err != nil {
		return nil, err
	}
	if err := addJSONSection(w, sectionTagger, t.tagger); err != nil {
		return nil, err
	}
	disambig := t.disambig
	if disambig == nil {
		disambig = []DisambigRule{}
	}
	if err := addJSONSection(w, sectionDisambiguator, disambig); err != nil {
		return nil, err
	}
	return w.Bytes()
}

func decodeSection(a *binpack.Archive, name string, v interface{}) error {
	raw, err := a.Section(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("engine: decode section %q: %w", name, err)
	}
	return nil
}

func addJSONSection(w *binpack.Writer, name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("engine: encode section %q: %w", name, err)
	}
	w.Add(name, raw)
	return nil
}
