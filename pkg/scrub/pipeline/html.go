package pipeline

import (
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"
)

// unescapeEntities resolves HTML entities (&amp; -> &) before any
// other pass sees the text. Runs first so that escaped markup
// (&lt;b&gt;) is visible to the tag stripper.
func unescapeEntities(s string) string {
	return stdhtml.UnescapeString(s)
}

// skipTags lists tags whose text content is discarded entirely rather
// than flattened into the post body.
var skipTags = map[string]bool{
	"script": true,
	"style":  true,
}

// stripTags removes leftover HTML markup, joining adjacent text nodes
// with a space so block-level tags do not produce run-together words.
// Plain text without markup passes through unchanged.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))
	depth := 0 // nesting inside a skip tag
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken:
			// Self-closing skip tags are ignored entirely: they have
			// no content, and counting them would leave depth stuck
			// above zero for the rest of the record.
			name, _ := tok.TagName()
			if skipTags[string(name)] {
				depth++
			}
		case html.EndTagToken:
			name, _ := tok.TagName()
			if skipTags[string(name)] && depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth > 0 {
				continue
			}
			t := string(tok.Text())
			if strings.TrimSpace(t) == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t)
		}
	}
	return b.String()
}
