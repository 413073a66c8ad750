package pipeline

import "strings"

// maskMentions replaces every @word run with the [MENTION] token.
// Any @ followed by at least one word character is masked; there is no
// notion of a valid username. A bare @ passes through.
//
// Single left-to-right scan into a fresh buffer: emitted tokens are
// never rescanned, so replacement text cannot trigger a second match.
func maskMentions(s string) string {
	if !strings.Contains(s, "@") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '@' {
			j := i + 1
			for j < len(s) && isWordByte(s[j]) {
				j++
			}
			if j > i+1 {
				b.WriteString(TokenMention)
				i = j
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
