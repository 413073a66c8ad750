package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/scrub/pkg/scrub/lexicon"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"hello", "hello", 100},
		{"helo", "hello", 80},
		{"", "", 100},
		{"abc", "xyz", 0},
	}
	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); got != tt.want {
			t.Errorf("Similarity(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDictCorrector(t *testing.T) {
	c := NewDictCorrector(map[string]int{"hello": 100, "world": 50})

	cand, conf := c.Correct("helo")
	if cand != "hello" || conf != 80 {
		t.Errorf("Correct(helo) = %q/%d, want hello/80", cand, conf)
	}

	// Known words come back unchanged with zero confidence.
	cand, conf = c.Correct("world")
	if cand != "world" || conf != 0 {
		t.Errorf("Correct(world) = %q/%d, want world/0", cand, conf)
	}
}

func TestGuardAppliesAboveThreshold(t *testing.T) {
	lex, err := lexicon.New(nil, nil, 75)
	if err != nil {
		t.Fatal(err)
	}
	p := New(lex, NewDictCorrector(map[string]int{"world": 10}), nil)

	if got := p.guardSpelling("wrld"); got != "world" {
		t.Errorf("got %q, want correction applied", got)
	}
}

func TestGuardRejectsBelowThreshold(t *testing.T) {
	lex, err := lexicon.New(nil, nil, 95)
	if err != nil {
		t.Fatal(err)
	}
	p := New(lex, NewDictCorrector(map[string]int{"world": 10}), nil)

	if got := p.guardSpelling("wrld"); got != "wrld" {
		t.Errorf("got %q, want correction rejected", got)
	}
}

func TestGuardProtectsPlaceholders(t *testing.T) {
	lex, err := lexicon.New(nil, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	// An adversarial corrector that rewrites everything it is given
	// with full confidence.
	p := New(lex, rewriteAll{}, nil)

	got := p.guardSpelling("[MENTION] ok [EMOJI_affection] [emoji_affection]")
	want := "[MENTION] X [EMOJI_affection] [emoji_affection]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type rewriteAll struct{}

func (rewriteAll) Correct(word string) (string, int) { return "X", 100 }

func TestNoopCorrectorNeverAlters(t *testing.T) {
	p := New(lexicon.Default(), NoopCorrector{}, nil)

	in := "thsi is nto corrected"
	if got := p.guardSpelling(in); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestLoadFrequencyDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.txt")
	content := "# comment\nhello 100\nWorld 50\n\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	freq, err := LoadFrequencyDict(path)
	if err != nil {
		t.Fatal(err)
	}
	if freq["hello"] != 100 || freq["world"] != 50 {
		t.Errorf("unexpected dict: %v", freq)
	}

	bad := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(bad, []byte("oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrequencyDict(bad); err == nil {
		t.Error("expected error for malformed line")
	}
}
