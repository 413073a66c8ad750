package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Corrector proposes a replacement for a single word together with a
// 0-100 confidence score. The spelling guard applies the proposal only
// when the confidence reaches the lexicon threshold, so a corrector
// can always return its best guess and leave acceptance to the guard.
//
// Correction strategies are pluggable; the pipeline default is
// NoopCorrector, which never changes anything.
type Corrector interface {
	Correct(word string) (string, int)
}

// NoopCorrector proposes no corrections. With it installed the guard
// still enforces placeholder protection but the text is never altered.
type NoopCorrector struct{}

// Correct returns the word unchanged with zero confidence.
func (NoopCorrector) Correct(word string) (string, int) {
	return word, 0
}

// guardSpelling walks whitespace-separated words and applies the
// corrector to each. Words carrying a mention or emoji placeholder are
// never touched, whatever the corrector proposes; everything else is
// corrected only when the confidence clears the lexicon threshold.
func (p *Pipeline) guardSpelling(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if isProtected(w) {
			continue
		}
		cand, conf := p.corrector.Correct(w)
		if cand != w && conf >= p.lex.Threshold() {
			words[i] = cand
		}
	}
	return strings.Join(words, " ")
}

// isProtected reports whether a word contains a placeholder marker.
// Case-insensitive so that re-cleaning already-lowercased output keeps
// the same protection.
func isProtected(w string) bool {
	u := strings.ToUpper(w)
	return strings.Contains(u, TokenMention) || strings.Contains(u, "[EMOJI")
}

// DictCorrector proposes the closest entry of a word-frequency
// dictionary, scored by Levenshtein similarity on a 0-100 scale. Ties
// on similarity are broken by corpus frequency, then alphabetically so
// results are deterministic.
type DictCorrector struct {
	freq  map[string]int
	words []string // dictionary keys, sorted
}

// NewDictCorrector builds a corrector over a word-frequency table.
func NewDictCorrector(freq map[string]int) *DictCorrector {
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Strings(words)
	return &DictCorrector{freq: freq, words: words}
}

// Correct proposes the best dictionary candidate for the word. Known
// words and words with no usable candidate come back unchanged with
// zero confidence.
func (c *DictCorrector) Correct(word string) (string, int) {
	lw := strings.ToLower(word)
	if _, ok := c.freq[lw]; ok {
		return word, 0
	}
	best := word
	bestScore := 0
	for _, cand := range c.words {
		score := Similarity(lw, cand)
		if score > bestScore || (score == bestScore && best != word && c.freq[cand] > c.freq[best]) {
			best = cand
			bestScore = score
		}
	}
	if best == word {
		return word, 0
	}
	return best, bestScore
}

// Similarity scores two strings on a 0-100 scale from their
// Levenshtein distance relative to the longer length.
func Similarity(a, b string) int {
	if a == b {
		return 100
	}
	n := utf8.RuneCountInString(a)
	if m := utf8.RuneCountInString(b); m > n {
		n = m
	}
	if n == 0 {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)
	if d >= n {
		return 0
	}
	return 100 * (n - d) / n
}

// LoadFrequencyDict reads a "word count" per-line frequency dictionary
// (the common spelling-corpus format). Blank lines and #-comments are
// skipped; a malformed line is an error.
func LoadFrequencyDict(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frequency dictionary: %w", err)
	}
	defer f.Close()

	freq := make(map[string]int)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("frequency dictionary %s:%d: want \"word count\", got %q", path, line, text)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("frequency dictionary %s:%d: bad count: %w", path, line, err)
		}
		freq[strings.ToLower(fields[0])] = n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read frequency dictionary: %w", err)
	}
	return freq, nil
}
