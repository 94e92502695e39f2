package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Qeenon/nlprule/internal/binpack"
)

// Matcher constrains one token of a rule pattern. Empty fields are
// unconstrained; set fields must all hold.
type Matcher struct {
	// Text matches the surface form exactly.
	Text string `json:"text,omitempty"`
	// TextLower matches the lowercased surface form.
	TextLower string `json:"text_lower,omitempty"`
	// POS matches when any reading's POS tag starts with it.
	POS string `json:"pos,omitempty"`
	// Lemma matches when any reading's lemma equals it.
	Lemma string `json:"lemma,omitempty"`
}

func (m *Matcher) matches(tok Token) bool {
	if m.Text != "" && tok.Text != m.Text {
		return false
	}
	if m.TextLower != "" && strings.ToLower(tok.Text) != m.TextLower {
		return false
	}
	if m.POS != "" && !hasPOSPrefix(tok, m.POS) {
		return false
	}
	if m.Lemma != "" && !hasLemma(tok, m.Lemma) {
		return false
	}
	return true
}

func hasLemma(tok Token, lemma string) bool {
	for _, wd := range tok.Tags {
		if wd.Lemma == lemma {
			return true
		}
	}
	return false
}

// Rule is one grammar rule: a token pattern plus replacement templates.
// Templates may reference matched tokens by 1-based index as $1..$9;
// everything else is literal.
type Rule struct {
	ID           string    `json:"id"`
	Pattern      []Matcher `json:"pattern"`
	Replacements []string  `json:"replacements"`
	Message      string    `json:"message,omitempty"`
}

func (r *Rule) matchAt(tokens []Token, i int) bool {
	if i+len(r.Pattern) > len(tokens) {
		return false
	}
	for j := range r.Pattern {
		if !r.Pattern[j].matches(tokens[i+j]) {
			return false
		}
	}
	return true
}

// expand fills a replacement template from the matched tokens.
func expand(template string, matched []Token) string {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}
		n, err := strconv.Atoi(string(template[i+1]))
		if err != nil || n < 1 || n > len(matched) {
			b.WriteByte(c)
			continue
		}
		b.WriteString(matched[n-1].Text)
		i++
	}
	return b.String()
}

// Rules is the deserialized rules artifact: an ordered rule list applied to
// finalized token streams. Immutable after load.
type Rules struct {
	lang string
	list []Rule
}

// NewRules assembles a rule set from parts. Used by artifact builders and
// tests; normal loading goes through DeserializeRules.
func NewRules(lang string, list []Rule) *Rules {
	return &Rules{lang: lang, list: list}
}

// Lang returns the language code baked into the artifact.
func (r *Rules) Lang() string { return r.lang }

// Len returns the number of rules in the set.
func (r *Rules) Len() int { return len(r.list) }

// Apply matches every rule against the finalized tokens of one sentence
// and returns the suggestions in non-decreasing start order. At each token
// position the first matching rule wins and matching resumes after the
// matched window, so suggestions from one sentence never overlap.
func (r *Rules) Apply(tokens []Token) []Suggestion {
	var out []Suggestion
	for i := 0; i < len(tokens); {
		rule, width := r.firstMatch(tokens, i)
		if rule == nil {
			i++
			continue
		}
		matched := tokens[i : i+width]
		replacements := make([]string, 0, len(rule.Replacements))
		for _, tmpl := range rule.Replacements {
			replacements = append(replacements, expand(tmpl, matched))
		}
		out = append(out, Suggestion{
			Start:        matched[0].Start,
			End:          matched[width-1].End,
			Replacements: replacements,
			Source:       rule.ID,
			Message:      rule.Message,
		})
		i += width
	}
	return out
}

func (r *Rules) firstMatch(tokens []Token, i int) (*Rule, int) {
	for ri := range r.list {
		rule := &r.list[ri]
		if len(rule.Pattern) == 0 || len(rule.Replacements) == 0 {
			continue
		}
		if rule.matchAt(tokens, i) {
			return rule, len(rule.Pattern)
		}
	}
	return nil, 0
}

// CorrectText rewrites sentence by applying each suggestion's first
// replacement in span order. A suggestion overlapping the previously
// applied one is skipped; offsets are codepoints.
func CorrectText(sentence string, suggestions []Suggestion) string {
	if len(suggestions) == 0 {
		return sentence
	}
	runes := []rune(sentence)
	var b strings.Builder
	prev := 0
	for _, s := range suggestions {
		if s.Start < prev || s.End > len(runes) || len(s.Replacements) == 0 {
			continue
		}
		b.WriteString(string(runes[prev:s.Start]))
		b.WriteString(s.Replacements[0])
		prev = s.End
	}
	b.WriteString(string(runes[prev:]))
	return b.String()
}

// DeserializeRules decodes a rules artifact.
func DeserializeRules(a *binpack.Archive) (*Rules, error) {
	var m meta
	if err := decodeSection(a, sectionMeta, &m); err != nil {
		return nil, err
	}
	if m.Schema != artifactSchema {
		return nil, fmt.Errorf("engine: unsupported artifact schema %d", m.Schema)
	}
	if m.Kind != "rules" {
		return nil, fmt.Errorf("engine: artifact is a %q, expected rules", m.Kind)
	}

	r := &Rules{lang: m.Lang}
	if err := decodeSection(a, sectionRules, &r.list); err != nil {
		return nil, err
	}
	return r, nil
}

// Serialize encodes the rule set into artifact bytes.
func (r *Rules) Serialize() ([]byte, error) {
	w := binpack.NewWriter()
	if err := addJSONSection(w, sectionMeta, meta{Schema: artifactSchema, Lang: r.lang, Kind: "rules"}); err != nil {
		return nil, err
	}
	list := r.list
	if list == nil {
		list = []Rule{}
	}
	if err := addJSONSection(w, sectionRules, list); err != nil {
		return nil, err
	}
	return w.Bytes()
}
