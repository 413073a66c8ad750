package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/scrub/pkg/scrub/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	records map[string]store.CleanedRecord
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{records: make(map[string]store.CleanedRecord)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertRecord inserts or replaces a record, keyed by id.
func (s *Store) UpsertRecord(ctx context.Context, r store.CleanedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.CleanedAt.IsZero() {
		r.CleanedAt = time.Now().UTC()
	}
	s.records[r.ID] = r
	return nil
}

// GetRecord returns a record by id.
func (s *Store) GetRecord(ctx context.Context, id string) (store.CleanedRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	return r, ok, nil
}

// ListRecords returns up to limit records, newest first.
func (s *Store) ListRecords(ctx context.Context, limit int) ([]store.CleanedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.CleanedRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CleanedAt.Equal(out[j].CleanedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CleanedAt.After(out[j].CleanedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.records)), nil
}
