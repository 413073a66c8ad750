package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/cognicore/scrub/pkg/scrub"
	"github.com/cognicore/scrub/pkg/scrub/lexicon"
	"github.com/cognicore/scrub/pkg/scrub/pipeline"
	"github.com/cognicore/scrub/pkg/scrub/store/sqlite"
)

func main() {
	var (
		inputPath   = flag.String("input", "", "Input JSON records file (required)")
		outputPath  = flag.String("output", "", "Output CSV file (required)")
		lexiconPath = flag.String("lexicon", "", "Lexicon YAML file (optional, compiled-in default otherwise)")
		dictPath    = flag.String("dict", "", "Word-frequency dictionary for spelling correction (optional; corrections are off without it)")
		dbPath      = flag.String("db", "", "SQLite corpus store path (optional)")
		workers     = flag.Int("workers", 1, "Worker goroutines for batch cleaning")
		cacheSize   = flag.Int("cache", 1024, "Duplicate-post cache size (0 disables)")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("--input required")
	}
	if *outputPath == "" {
		log.Fatal("--output required")
	}

	ctx := context.Background()

	lex := lexicon.Default()
	if *lexiconPath != "" {
		var err error
		lex, err = lexicon.LoadFromYAML(*lexiconPath)
		if err != nil {
			log.Fatal("Failed to load lexicon: ", err)
		}
	}

	var corrector pipeline.Corrector = pipeline.NoopCorrector{}
	if *dictPath != "" {
		freq, err := pipeline.LoadFrequencyDict(*dictPath)
		if err != nil {
			log.Fatal("Failed to load frequency dictionary: ", err)
		}
		corrector = pipeline.NewDictCorrector(freq)
	}

	opts := scrub.Options{
		Lexicon:   lex,
		Corrector: corrector,
		Workers:   *workers,
		CacheSize: *cacheSize,
		Logger:    log.New(os.Stderr, "scrub: ", log.LstdFlags),
	}

	if *dbPath != "" {
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal("Failed to open store: ", err)
		}
		opts.Store = st
	}

	cleaner, err := scrub.New(opts)
	if err != nil {
		log.Fatal("Failed to build cleaner: ", err)
	}
	defer cleaner.Close()

	if err := cleaner.Run(ctx, *inputPath, *outputPath); err != nil {
		log.Fatal("Run failed: ", err)
	}
	log.Printf("Cleaned data saved to %s", *outputPath)
}
