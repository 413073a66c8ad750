package pipeline

import "strings"

// compressRepeats collapses any run of 4+ identical runes to exactly
// two ("soooooo" -> "soo"). Runs of 1-3 are kept: mild emphasis is a
// stylistic signal, extreme repetition is noise. The rule is
// character-agnostic, so punctuation runs ("!!!!!!" -> "!!") collapse
// too.
func compressRepeats(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		n := j - i
		if n >= 4 {
			n = 2
		}
		for k := 0; k < n; k++ {
			b.WriteRune(runes[i])
		}
		i = j
	}
	return b.String()
}
