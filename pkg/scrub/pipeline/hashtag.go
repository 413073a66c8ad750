package pipeline

import "strings"

// splitHashtags replaces every #tag with its word-split expansion.
// Every occurrence is rewritten (the scan visits each match in place,
// so repeated hashtags expand identically and replacement text is
// never rescanned).
func splitHashtags(s string) string {
	if !strings.Contains(s, "#") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '#' {
			j := i + 1
			for j < len(s) && isWordByte(s[j]) {
				j++
			}
			if j > i+1 {
				b.WriteString(splitCamel(s[i+1 : j]))
				i = j
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// splitCamel inserts a space before each maximal [A-Z][a-z]+ run, the
// simple camel-case boundary heuristic:
//
//	MachineLearning -> Machine Learning
//	ABCDef          -> ABC Def
//	nocase          -> nocase
//
// Tags with no case boundary (all-lowercase, all-caps, digits) come
// back unchanged.
func splitCamel(tag string) string {
	var b strings.Builder
	b.Grow(len(tag) + 4)
	for i := 0; i < len(tag); {
		if tag[i] >= 'A' && tag[i] <= 'Z' && i+1 < len(tag) && isLowerByte(tag[i+1]) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(tag[i])
			i++
			for i < len(tag) && isLowerByte(tag[i]) {
				b.WriteByte(tag[i])
				i++
			}
			continue
		}
		b.WriteByte(tag[i])
		i++
	}
	return b.String()
}

func isLowerByte(c byte) bool {
	return c >= 'a' && c <= 'z'
}
