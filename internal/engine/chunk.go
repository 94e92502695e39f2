package engine

import "strings"

// chunkKind classifies a token's primary reading into a phrase kind.
func chunkKind(tok Token) string {
	if len(tok.Tags) == 0 {
		return ""
	}
	pos := tok.Tags[0].POS
	switch {
	case strings.HasPrefix(pos, "NN"),
		strings.HasPrefix(pos, "DT"),
		strings.HasPrefix(pos, "JJ"),
		strings.HasPrefix(pos, "PRP"),
		strings.HasPrefix(pos, "CD"):
		return "NP"
	case strings.HasPrefix(pos, "VB"), strings.HasPrefix(pos, "MD"):
		return "VP"
	default:
		return ""
	}
}

// chunk assigns shallow-parse labels in IOB form: the first token of a run
// of same-kind tokens gets B-<kind>, the rest I-<kind>. Tokens outside any
// phrase keep an empty chunk list.
func chunk(tokens []Token) []Token {
	prev := ""
	for i := range tokens {
		kind := chunkKind(tokens[i])
		if kind == "" {
			tokens[i].Chunks = nil
			prev = ""
			continue
		}
		if kind == prev {
			tokens[i].Chunks = []string{"I-" + kind}
		} else {
			tokens[i].Chunks = []string{"B-" + kind}
		}
		prev = kind
	}
	return tokens
}
