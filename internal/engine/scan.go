package engine

import "unicode"

// scan splits a sentence into word and punctuation tokens with codepoint
// spans. Whitespace never becomes a token; it only separates them. For
// every token, sentence[Start:End] (in runes) equals Text, and spans are
// non-decreasing in Start.
func scan(sentence string) []Token {
	runes := []rune(sentence)

	var tokens []Token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			start := i
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			// Apostrophes join word parts only when flanked by word runes
			// ("don't"), so a trailing quote stays punctuation.
			for i+1 < len(runes) && isJoiner(runes[i]) && isWordRune(runes[i+1]) {
				i++
				for i < len(runes) && isWordRune(runes[i]) {
					i++
				}
			}
			tokens = append(tokens, Token{Text: string(runes[start:i]), Start: start, End: i})
		default:
			tokens = append(tokens, Token{Text: string(r), Start: i, End: i + 1})
			i++
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}
