package pipeline

import "strings"

// expandSlang replaces whole-word abbreviations with their lexicon
// expansion. The string is split on whitespace, so a key never matches
// a substring of a longer token; placeholder tokens contain no lexicon
// keys by construction and pass through untouched. Words are rejoined
// with single spaces.
func (p *Pipeline) expandSlang(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if exp, ok := p.lex.Expansion(w); ok {
			words[i] = exp
		}
	}
	return strings.Join(words, " ")
}
