package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/scrub/pkg/scrub/lexicon"
)

// lexicon-lint validates a lexicon YAML file and prints its stats.
// Validation is the same one the pipeline applies at load time, so a
// file that lints clean will load clean.
func main() {
	lexiconPath := flag.String("lexicon", "", "Lexicon YAML file (required)")
	flag.Parse()

	if *lexiconPath == "" {
		log.Fatal("--lexicon required")
	}

	lex, err := lexicon.LoadFromYAML(*lexiconPath)
	if err != nil {
		log.Fatal("Lexicon invalid: ", err)
	}

	stats := lex.Stats()
	fmt.Printf("emoji entries:  %d\n", stats.EmojiEntries)
	fmt.Printf("categories:     %d\n", stats.Categories)
	fmt.Printf("slang entries:  %d\n", stats.SlangEntries)
	fmt.Printf("threshold:      %d\n", stats.Threshold)
	fmt.Println("\nreserved vocabulary:")
	fmt.Println("  [MENTION] [URL] [PATH]")
	for _, cat := range lex.Categories() {
		fmt.Printf("  %s\n", lexicon.Placeholder(cat))
	}
}
