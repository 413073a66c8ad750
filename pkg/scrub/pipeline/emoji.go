package pipeline

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// translateEmoji runs the two-stage emoji translation:
//
//  1. Native glyphs become :name: shortcodes via the gomoji table
//     ("🔥" -> ":fire:"). Glyphs the table does not know stay in
//     place; they are never dropped.
//  2. Shortcodes with a lexicon entry become [EMOJI_<category>]
//     placeholders. Unmapped shortcodes remain as raw shortcode text,
//     which is the intended fallback rather than an error.
func (p *Pipeline) translateEmoji(s string) string {
	for _, e := range gomoji.FindAll(s) {
		s = strings.ReplaceAll(s, e.Character, shortcode(e.Slug))
	}
	return p.emojiRepl.Replace(s)
}

// shortcode converts a gomoji slug ("red-heart") to the colon-wrapped
// snake_case form the lexicon keys use (":red_heart:").
func shortcode(slug string) string {
	return ":" + strings.ReplaceAll(slug, "-", "_") + ":"
}
