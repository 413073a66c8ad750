package pipeline

import (
	"io"
	"log"
	"strings"

	"github.com/cognicore/scrub/pkg/scrub/lexicon"
)

// Reserved placeholder tokens. Once a stage emits one of these, no
// later stage may alter its bracket contents; only the final
// lowercasing pass touches them.
const (
	TokenMention = "[MENTION]"
	TokenURL     = "[URL]"
	TokenPath    = "[PATH]"
)

// Pipeline runs the ordered cleaning passes over one text record at a
// time. It holds only read-only state (lexicon, corrector, prebuilt
// replacer), so a single Pipeline is safe to share across goroutines.
type Pipeline struct {
	lex       *lexicon.Lexicon
	corrector Corrector
	emojiRepl *strings.Replacer
	logger    *log.Logger
}

// New creates a pipeline. A nil corrector falls back to NoopCorrector
// and a nil logger discards warnings.
func New(lex *lexicon.Lexicon, corrector Corrector, logger *log.Logger) *Pipeline {
	if lex == nil {
		lex = lexicon.Default()
	}
	if corrector == nil {
		corrector = NoopCorrector{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	// Shortcode -> placeholder substitution compiled once into a
	// single-scan replacer. Shortcodes are colon-delimited on both
	// ends, so no key can be a prefix of another.
	codes := lex.EmojiShortcodes()
	pairs := make([]string, 0, 2*len(codes))
	for _, code := range codes {
		cat, _ := lex.EmojiCategory(code)
		pairs = append(pairs, code, lexicon.Placeholder(cat))
	}

	return &Pipeline{
		lex:       lex,
		corrector: corrector,
		emojiRepl: strings.NewReplacer(pairs...),
		logger:    logger,
	}
}

// Clean applies the full pass sequence to one raw text record.
//
// The order is load-bearing: mentions are masked before hashtag
// splitting so "@Foo" never gains internal spaces, hashtags are split
// before emoji translation so a tag cannot textually collide with a
// shortcode fragment, and URL tokenization runs after slang expansion
// so an expanded word can never reintroduce a bare URL.
func (p *Pipeline) Clean(text string) string {
	text = unescapeEntities(text)
	text = stripTags(text)
	text = maskMentions(text)
	text = splitHashtags(text)
	text = p.translateEmoji(text)
	text = p.expandSlang(text)
	text = p.guardSpelling(text)
	text = compressRepeats(text)
	text = p.tokenizeURLs(text)
	text = strings.ToLower(text)
	text = collapseWhitespace(text)
	return text
}

// collapseWhitespace replaces runs of whitespace with a single space
// and trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}
