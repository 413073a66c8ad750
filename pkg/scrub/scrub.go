// Package scrub cleans raw social-media text into a feature-preserving
// form for downstream personality-trait classification. Noise (HTML,
// raw URLs, extreme character repetition) is stripped while
// linguistically meaningful signals (mentions, hashtags, emoji,
// emphasis) survive as stable placeholder tokens.
package scrub

import (
	"context"
	"fmt"
	"log"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/scrub/pkg/scrub/lexicon"
	"github.com/cognicore/scrub/pkg/scrub/pipeline"
	"github.com/cognicore/scrub/pkg/scrub/record"
	"github.com/cognicore/scrub/pkg/scrub/store"
)

// Options configures a Cleaner.
type Options struct {
	// Lexicon defaults to lexicon.Default() when nil.
	Lexicon *lexicon.Lexicon

	// Corrector defaults to the no-op strategy when nil.
	Corrector pipeline.Corrector

	// Workers bounds the goroutines cleaning a batch. Values < 2 keep
	// batch cleaning synchronous. Records are independent, so any
	// worker count produces identical output.
	Workers int

	// CacheSize bounds the raw-text -> cleaned-text memo. Social-media
	// dumps repeat posts heavily; 0 disables the cache.
	CacheSize int

	// Logger receives per-record warnings (malformed URLs). Nil
	// discards them.
	Logger *log.Logger

	// Store, when set, receives every cleaned record during Run.
	Store store.Store
}

// Cleaner is the batch cleaning facade.
type Cleaner struct {
	pipe    *pipeline.Pipeline
	cache   *lru.Cache[string, string]
	workers int
	store   store.Store
}

// New creates a Cleaner from options.
func New(opts Options) (*Cleaner, error) {
	c := &Cleaner{
		pipe:    pipeline.New(opts.Lexicon, opts.Corrector, opts.Logger),
		workers: opts.Workers,
		store:   opts.Store,
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, string](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("build cache: %w", err)
		}
		c.cache = cache
	}
	return c, nil
}

// Close releases the store, if one was attached.
func (c *Cleaner) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

// CleanPosts cleans a batch of raw texts. The result has the same
// length and order as the input; no record is ever filtered out.
func (c *Cleaner) CleanPosts(texts []string) []string {
	out := make([]string, len(texts))
	if c.workers < 2 || len(texts) < 2 {
		for i, t := range texts {
			out[i] = c.cleanOne(t)
		}
		return out
	}

	// Fan out by index; each worker writes only its own slots, so the
	// output slice needs no locking.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = c.cleanOne(texts[i])
			}
		}()
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

func (c *Cleaner) cleanOne(text string) string {
	if c.cache != nil {
		if v, ok := c.cache.Get(text); ok {
			return v
		}
	}
	v := c.pipe.Clean(text)
	if c.cache != nil {
		c.cache.Add(text, v)
	}
	return v
}

// ProcessTable cleans the body column of a table and attaches the
// result as the cleaned_posts column, row for row.
func (c *Cleaner) ProcessTable(t *record.Table) error {
	return t.SetCleaned(c.CleanPosts(t.Bodies()))
}

// Run executes the whole batch flow: load the JSON records, clean
// them, write the CSV, and persist to the store when one is attached.
// Loading and writing failures are fatal for the run; nothing partial
// is written.
func (c *Cleaner) Run(ctx context.Context, inputPath, outputPath string) error {
	table, err := record.LoadJSON(inputPath)
	if err != nil {
		return err
	}
	if err := c.ProcessTable(table); err != nil {
		return err
	}
	if err := table.WriteCSV(outputPath); err != nil {
		return err
	}
	if c.store != nil {
		for _, r := range table.Records {
			rec := store.CleanedRecord{
				ID:      r.ID,
				Type:    r.Type,
				Body:    r.Body,
				Cleaned: r.Cleaned,
			}
			if err := c.store.UpsertRecord(ctx, rec); err != nil {
				return fmt.Errorf("persist record %s: %w", r.ID, err)
			}
		}
	}
	return nil
}
