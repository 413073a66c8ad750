package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/scrub/pkg/scrub/internalerr"
	"github.com/cognicore/scrub/pkg/scrub/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite corpus store with WAL mode enabled and the
// schema initialized. Safe to call repeatedly on the same path.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	// WAL for concurrent readers while a batch is being written
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("open store %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("open store %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	mbti_type TEXT,
	body TEXT NOT NULL,
	cleaned TEXT NOT NULL,
	cleaned_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_cleaned_at ON records(cleaned_at);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// UpsertRecord inserts or replaces a cleaned record, keyed by id.
func (s *sqliteStore) UpsertRecord(ctx context.Context, r store.CleanedRecord) error {
	if r.CleanedAt.IsZero() {
		r.CleanedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO records (id, mbti_type, body, cleaned, cleaned_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	mbti_type = excluded.mbti_type,
	body = excluded.body,
	cleaned = excluded.cleaned,
	cleaned_at = excluded.cleaned_at`,
		r.ID, r.Type, r.Body, r.Cleaned, r.CleanedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", r.ID, err)
	}
	return nil
}

// GetRecord returns a record by id.
func (s *sqliteStore) GetRecord(ctx context.Context, id string) (store.CleanedRecord, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, mbti_type, body, cleaned, cleaned_at FROM records WHERE id = ?", id)
	r, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return store.CleanedRecord{}, false, nil
	}
	if err != nil {
		return store.CleanedRecord{}, false, fmt.Errorf("get record %s: %w", id, err)
	}
	return r, true, nil
}

// ListRecords returns up to limit records, newest first. limit <= 0
// means no limit.
func (s *sqliteStore) ListRecords(ctx context.Context, limit int) ([]store.CleanedRecord, error) {
	q := "SELECT id, mbti_type, body, cleaned, cleaned_at FROM records ORDER BY cleaned_at DESC"
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []store.CleanedRecord
	for rows.Next() {
		r, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of stored records.
func (s *sqliteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func scanRecord(scan func(...any) error) (store.CleanedRecord, error) {
	var r store.CleanedRecord
	var cleanedAt string
	if err := scan(&r.ID, &r.Type, &r.Body, &r.Cleaned, &cleanedAt); err != nil {
		return store.CleanedRecord{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, cleanedAt)
	if err != nil {
		return store.CleanedRecord{}, fmt.Errorf("parse cleaned_at %q: %w", cleanedAt, err)
	}
	r.CleanedAt = t
	return r, nil
}
