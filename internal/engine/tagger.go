package engine

import "strings"

// minCompoundSuffix is the shortest suffix tried by the compound-split
// heuristic, in runes.
const minCompoundSuffix = 4

// Tagger maps surface forms to their morphological readings and groups
// related surface forms by lemma. Immutable after deserialization.
type Tagger struct {
	// Words maps a surface form to its readings in dictionary order.
	Words map[string][]WordData `json:"words"`
	// Groups maps a lemma to the surface forms sharing it.
	Groups map[string][]string `json:"groups"`
}

// Tags returns the readings for word. With addLower, readings of the
// lowercased form are appended when they are not already the primary hit.
// With compoundSplit, unknown words fall back to looking up progressively
// shorter suffixes, so compounds inherit the readings of their head.
func (t *Tagger) Tags(word string, addLower, compoundSplit bool) []WordData {
	tags := append([]WordData(nil), t.Words[word]...)

	if addLower {
		lower := strings.ToLower(word)
		if lower != word {
			tags = append(tags, t.Words[lower]...)
		}
	}

	if len(tags) == 0 && compoundSplit {
		tags = t.compoundTags(word)
	}
	return tags
}

// compoundTags tries suffixes of word, longest first, stopping at the first
// suffix with readings. The split point always lies on a rune boundary and
// the suffix keeps a minimum length so short function words do not match.
func (t *Tagger) compoundTags(word string) []WordData {
	runes := []rune(word)
	for cut := 1; cut <= len(runes)-minCompoundSuffix; cut++ {
		suffix := strings.ToLower(string(runes[cut:]))
		if readings, ok := t.Words[suffix]; ok {
			return append([]WordData(nil), readings...)
		}
	}
	return nil
}

// GroupMembers returns the surface forms morphologically related to word:
// the members of every group whose lemma appears among word's readings.
func (t *Tagger) GroupMembers(word string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, reading := range t.Words[strings.ToLower(word)] {
		for _, member := range t.Groups[reading.Lemma] {
			if !seen[member] {
				seen[member] = true
				out = append(out, member)
			}
		}
	}
	return out
}
