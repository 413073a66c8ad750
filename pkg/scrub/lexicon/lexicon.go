package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/scrub/pkg/scrub/internalerr"
)

// Lexicon stores the static substitution tables the cleaning pipeline
// depends on:
// - Emoji: shortcode (":red_heart:") -> semantic category ("affection")
// - Slang: whole word ("gr8") -> expansion ("great")
// - Threshold: 0-100 confidence gate for accepting a spelling correction
//
// Design principles:
// - Immutable after construction: built once at startup and shared
//   read-only across pipeline stages and worker goroutines
// - Exact-match: no fuzzy lookup inside the lexicon itself
// - Explicit fallback: a missing key means "leave the text alone",
//   never an error
type Lexicon struct {
	// shortcode (including colons) -> category
	emoji map[string]string

	// word -> expansion, case-sensitive
	slang map[string]string

	threshold int
}

// Placeholder builds the reserved token for an emoji category.
// The bracketed form is part of the wire contract with downstream
// model training; later pipeline stages never alter it.
func Placeholder(category string) string {
	return "[EMOJI_" + category + "]"
}

// New creates a lexicon from explicit mappings. The maps are copied so
// callers cannot mutate the lexicon afterwards.
func New(emoji, slang map[string]string, threshold int) (*Lexicon, error) {
	l := &Lexicon{
		emoji:     make(map[string]string, len(emoji)),
		slang:     make(map[string]string, len(slang)),
		threshold: threshold,
	}
	for code, cat := range emoji {
		if err := validateShortcode(code); err != nil {
			return nil, err
		}
		if err := validateCategory(cat); err != nil {
			return nil, err
		}
		l.emoji[code] = cat
	}
	for word, expansion := range slang {
		if strings.TrimSpace(word) == "" || strings.ContainsAny(word, " \t\n") {
			return nil, fmt.Errorf("slang key %q: %w", word, internalerr.ErrInvalidConfig)
		}
		if strings.TrimSpace(expansion) == "" {
			return nil, fmt.Errorf("slang %q has empty expansion: %w", word, internalerr.ErrInvalidConfig)
		}
		l.slang[word] = expansion
	}
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("threshold %d outside 0-100: %w", threshold, internalerr.ErrInvalidConfig)
	}
	return l, nil
}

// LoadFromYAML loads a lexicon from a YAML file.
//
// Expected format:
//
//	threshold: 85
//	emoji:
//	  ":red_heart:": affection
//	  ":fire:": intensity
//	slang:
//	  gr8: great
//	  idk: i do not know
//
// A missing threshold falls back to DefaultThreshold.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var cfg struct {
		Threshold *int              `yaml:"threshold"`
		Emoji     map[string]string `yaml:"emoji"`
		Slang     map[string]string `yaml:"slang"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	threshold := DefaultThreshold
	if cfg.Threshold != nil {
		threshold = *cfg.Threshold
	}
	lex, err := New(cfg.Emoji, cfg.Slang, threshold)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// EmojiCategory returns the semantic category for a shortcode.
func (l *Lexicon) EmojiCategory(shortcode string) (string, bool) {
	cat, ok := l.emoji[shortcode]
	return cat, ok
}

// EmojiShortcodes returns every known shortcode, sorted for
// deterministic iteration.
func (l *Lexicon) EmojiShortcodes() []string {
	codes := make([]string, 0, len(l.emoji))
	for code := range l.emoji {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Categories returns the fixed category set, sorted and deduplicated.
// Downstream consumers treat [EMOJI_<category>] for each of these as
// reserved vocabulary.
func (l *Lexicon) Categories() []string {
	seen := make(map[string]struct{}, len(l.emoji))
	for _, cat := range l.emoji {
		seen[cat] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// Expansion returns the slang expansion for a word. Lookup is exact and
// case-sensitive; a miss means the word passes through unchanged.
func (l *Lexicon) Expansion(word string) (string, bool) {
	exp, ok := l.slang[word]
	return exp, ok
}

// Threshold returns the 0-100 confidence cutoff for the spelling guard.
func (l *Lexicon) Threshold() int {
	return l.threshold
}

// Stats returns counts for diagnostics and linting output.
func (l *Lexicon) Stats() Stats {
	return Stats{
		EmojiEntries: len(l.emoji),
		Categories:   len(l.Categories()),
		SlangEntries: len(l.slang),
		Threshold:    l.threshold,
	}
}

// Stats holds lexicon size information.
type Stats struct {
	EmojiEntries int
	Categories   int
	SlangEntries int
	Threshold    int
}

func validateShortcode(code string) error {
	if len(code) < 3 || !strings.HasPrefix(code, ":") || !strings.HasSuffix(code, ":") {
		return fmt.Errorf("shortcode %q must be :name: form: %w", code, internalerr.ErrInvalidConfig)
	}
	for _, r := range code[1 : len(code)-1] {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-' || r == '+' {
			continue
		}
		return fmt.Errorf("shortcode %q has invalid rune %q: %w", code, r, internalerr.ErrInvalidConfig)
	}
	return nil
}

// validateCategory rejects names that later passes would mangle: the
// repetition compressor rewrites any 4+ run, and non [a-z_] runes would
// leave the placeholder outside the reserved vocabulary shape.
func validateCategory(cat string) error {
	if cat == "" {
		return fmt.Errorf("empty emoji category: %w", internalerr.ErrInvalidConfig)
	}
	run := 0
	var prev rune
	for _, r := range cat {
		if (r < 'a' || r > 'z') && r != '_' {
			return fmt.Errorf("category %q has invalid rune %q: %w", cat, r, internalerr.ErrInvalidConfig)
		}
		if r == prev {
			run++
			if run >= 4 {
				return fmt.Errorf("category %q repeats %q 4+ times: %w", cat, r, internalerr.ErrInvalidConfig)
			}
		} else {
			run = 1
		}
		prev = r
	}
	return nil
}
