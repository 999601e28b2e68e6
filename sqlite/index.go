package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fwojciec/pageask"
)

// Storage keys. The index entries and their freshness timestamp are
// written together in one transaction so readers never observe a fresh
// timestamp over stale entries.
const (
	indexKey       = "helpSearchIndex"
	lastUpdatedKey = "lastUpdated"
)

// Compile-time interface verification.
var _ pageask.IndexStore = (*IndexStore)(nil)

// IndexStore implements pageask.IndexStore using SQLite keyed storage.
type IndexStore struct {
	db *DB
}

// NewIndexStore creates a new IndexStore.
func NewIndexStore(db *DB) *IndexStore {
	return &IndexStore{db: db}
}

// SaveIndex replaces any previously stored index. Entries and the
// freshness timestamp (epoch millis) are written in a single transaction.
func (s *IndexStore) SaveIndex(ctx context.Context, index *pageask.SearchIndex) error {
	if index == nil {
		return pageask.Errorf(pageask.EINVALID, "index required")
	}

	entries, err := json.Marshal(index.Entries)
	if err != nil {
		return fmt.Errorf("failed to encode index entries: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsert = `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := tx.ExecContext(ctx, upsert, indexKey, string(entries)); err != nil {
		return err
	}
	millis := strconv.FormatInt(index.LastUpdated.UnixMilli(), 10)
	if _, err := tx.ExecContext(ctx, upsert, lastUpdatedKey, millis); err != nil {
		return err
	}

	return tx.Commit()
}

// LoadIndex returns the stored index.
// Returns ENOTFOUND if no index has been saved.
func (s *IndexStore) LoadIndex(ctx context.Context) (*pageask.SearchIndex, error) {
	raw, err := s.get(ctx, indexKey)
	if err != nil {
		return nil, err
	}
	millis, err := s.get(ctx, lastUpdatedKey)
	if err != nil {
		return nil, err
	}

	var entries []pageask.IndexEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode index entries: %w", err)
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last updated timestamp: %w", err)
	}

	return &pageask.SearchIndex{
		Entries:     entries,
		LastUpdated: time.UnixMilli(ms).UTC(),
	}, nil
}

func (s *IndexStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", pageask.Errorf(pageask.ENOTFOUND, "storage key %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
