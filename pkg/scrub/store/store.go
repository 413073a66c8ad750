package store

import (
	"context"
	"time"
)

// CleanedRecord is a post after the pipeline has run, keyed by the
// record id. Body is the raw text as loaded; Cleaned is the pipeline
// output.
type CleanedRecord struct {
	ID        string
	Type      string
	Body      string
	Cleaned   string
	CleanedAt time.Time
}

// Store persists cleaned records so downstream training jobs can read
// a stable corpus instead of re-parsing CSV output.
type Store interface {
	Close() error

	UpsertRecord(ctx context.Context, r CleanedRecord) error
	GetRecord(ctx context.Context, id string) (CleanedRecord, bool, error)
	ListRecords(ctx context.Context, limit int) ([]CleanedRecord, error)
	Count(ctx context.Context) (int64, error)
}
