package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/scrub/pkg/scrub/internalerr"
)

func TestDefaultLexicon(t *testing.T) {
	lex := Default()

	cat, ok := lex.EmojiCategory(":fire:")
	if !ok || cat != "intensity" {
		t.Errorf("EmojiCategory(:fire:) = %q/%v, want intensity/true", cat, ok)
	}

	exp, ok := lex.Expansion("gr8")
	if !ok || exp != "great" {
		t.Errorf("Expansion(gr8) = %q/%v, want great/true", exp, ok)
	}

	// Case-sensitive: "GR8" is not a key.
	if _, ok := lex.Expansion("GR8"); ok {
		t.Error("slang lookup should be case-sensitive")
	}

	if lex.Threshold() != DefaultThreshold {
		t.Errorf("Threshold() = %d, want %d", lex.Threshold(), DefaultThreshold)
	}
}

func TestPlaceholder(t *testing.T) {
	if got := Placeholder("affection"); got != "[EMOJI_affection]" {
		t.Errorf("Placeholder(affection) = %q", got)
	}
}

func TestCategoriesSortedUnique(t *testing.T) {
	lex := Default()
	cats := lex.Categories()

	seen := make(map[string]bool)
	for i, cat := range cats {
		if seen[cat] {
			t.Errorf("duplicate category %q", cat)
		}
		seen[cat] = true
		if i > 0 && cats[i-1] > cat {
			t.Errorf("categories not sorted: %q after %q", cat, cats[i-1])
		}
	}
	if !seen["affection"] || !seen["intensity"] {
		t.Errorf("expected core categories, got %v", cats)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := `
threshold: 70
emoji:
  ":fire:": intensity
  ":red_heart:": affection
slang:
  u: you
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if lex.Threshold() != 70 {
		t.Errorf("Threshold() = %d, want 70", lex.Threshold())
	}
	if cat, _ := lex.EmojiCategory(":red_heart:"); cat != "affection" {
		t.Errorf("EmojiCategory = %q, want affection", cat)
	}
}

func TestLoadFromYAMLMissingThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte(`emoji: {":fire:": intensity}`), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if lex.Threshold() != DefaultThreshold {
		t.Errorf("Threshold() = %d, want default %d", lex.Threshold(), DefaultThreshold)
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name      string
		emoji     map[string]string
		slang     map[string]string
		threshold int
	}{
		{"threshold too high", nil, nil, 101},
		{"threshold negative", nil, nil, -1},
		{"shortcode without colons", map[string]string{"fire": "intensity"}, nil, 85},
		{"empty category", map[string]string{":fire:": ""}, nil, 85},
		{"category with uppercase", map[string]string{":fire:": "Intensity"}, nil, 85},
		{"category with 4-run", map[string]string{":fire:": "hmmmm"}, nil, 85},
		{"slang key with space", nil, map[string]string{"a b": "x"}, 85},
		{"empty expansion", nil, map[string]string{"u": " "}, 85},
	}
	for _, tt := range tests {
		_, err := New(tt.emoji, tt.slang, tt.threshold)
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}
