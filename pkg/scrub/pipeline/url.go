package pipeline

import (
	"net/url"
	"strings"
)

// tokenizeURLs rewrites every http(s) URL into a domain-centric token
// sequence:
//
//	https://example.com/a/b -> [URL] example com [PATH] a b
//
// A URL that cannot be parsed degrades to "[URL] malformed" with a
// warning log; the failure never aborts the record. The scan is a
// single left-to-right pass, so replacement tokens are never
// rescanned.
func (p *Pipeline) tokenizeURLs(s string) string {
	if !strings.Contains(s, "http") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if n := urlPrefixLen(s[i:]); n > 0 {
			j := i + n
			for j < len(s) && !isSpaceByte(s[j]) {
				j++
			}
			b.WriteString(p.urlTokens(s[i:j]))
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// isSpaceByte matches ASCII whitespace only. Bytes >= 0x80 are always
// part of a multi-byte rune and must never terminate a URL run.
func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// urlPrefixLen returns the scheme prefix length when s starts a URL.
func urlPrefixLen(s string) int {
	if strings.HasPrefix(s, "https://") {
		return len("https://")
	}
	if strings.HasPrefix(s, "http://") {
		return len("http://")
	}
	return 0
}

func (p *Pipeline) urlTokens(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		p.logger.Printf("skipping malformed url %q", raw)
		return TokenURL + " malformed"
	}
	tokens := []string{TokenURL}
	tokens = append(tokens, strings.Split(u.Hostname(), ".")...)
	tokens = append(tokens, TokenPath)
	for _, seg := range strings.Split(u.EscapedPath(), "/") {
		if seg != "" {
			tokens = append(tokens, seg)
		}
	}
	return strings.Join(tokens, " ")
}
