package engine

import "strings"

// DisambigRule prunes tag ambiguity for one surface form using the POS
// context around it. A rule fires on tokens whose lowercased text equals
// Word when the neighboring constraints hold; it then keeps only the
// readings whose POS starts with KeepPOS, unless that would leave none.
type DisambigRule struct {
	ID      string `json:"id"`
	Word    string `json:"word"`
	PrevPOS string `json:"prev_pos,omitempty"`
	NextPOS string `json:"next_pos,omitempty"`
	KeepPOS string `json:"keep_pos"`
}

func (r *DisambigRule) applies(tokens []Token, i int) bool {
	if strings.ToLower(tokens[i].Text) != r.Word {
		return false
	}
	if r.PrevPOS != "" && (i == 0 || !hasPOSPrefix(tokens[i-1], r.PrevPOS)) {
		return false
	}
	if r.NextPOS != "" && (i+1 >= len(tokens) || !hasPOSPrefix(tokens[i+1], r.NextPOS)) {
		return false
	}
	return true
}

func (r *DisambigRule) apply(tok Token) Token {
	kept := make([]WordData, 0, len(tok.Tags))
	for _, wd := range tok.Tags {
		if strings.HasPrefix(wd.POS, r.KeepPOS) {
			kept = append(kept, wd)
		}
	}
	if len(kept) == 0 {
		return tok
	}
	tok.Tags = kept
	return tok
}

func hasPOSPrefix(tok Token, prefix string) bool {
	for _, wd := range tok.Tags {
		if strings.HasPrefix(wd.POS, prefix) {
			return true
		}
	}
	return false
}

// disambiguate runs every rule over the token stream in rule order. Rules
// are independent; a later rule sees the readings left by earlier ones.
func disambiguate(rules []DisambigRule, tokens []Token) []Token {
	for ri := range rules {
		rule := &rules[ri]
		for i, tok := range tokens {
			if rule.applies(tokens, i) {
				tokens[i] = rule.apply(tok)
			}
		}
	}
	return tokens
}
