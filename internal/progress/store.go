package progress

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vmunix/medley/internal/migrations"
)

// Store persists progress records in SQLite. It satisfies the point-lookup
// contract the resolver consumes: a missing record is (nil, nil), not an
// error.
type Store struct {
	db *sql.DB
}

// NewStore creates a progress store on an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the embedded schema. Safe to call on an existing database.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, migrations.InitialSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Get returns the record for (itemID, storagePath), or nil when none exists.
func (s *Store) Get(ctx context.Context, itemID, storagePath string) (*Record, error) {
	rec := &Record{}
	err := s.db.QueryRowContext(ctx, `
		SELECT storage_path, item_id, playhead, duration, percent, watch_time, updated_at
		FROM progress WHERE storage_path = ? AND item_id = ?`,
		storagePath, itemID,
	).Scan(&rec.StoragePath, &rec.ItemID, &rec.Playhead, &rec.Duration,
		&rec.Percent, &rec.WatchTime, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return rec, nil
}

// Upsert records a playback tick: inserts on the first event for an item,
// updates in place afterwards. Percent is derived from playhead/duration
// when the caller leaves it zero.
func (s *Store) Upsert(ctx context.Context, rec *Record) error {
	if rec.Percent == 0 && rec.Duration > 0 {
		rec.Percent = float64(rec.Playhead) / float64(rec.Duration) * 100
	}
	rec.UpdatedAt = time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress (storage_path, item_id, playhead, duration, percent, watch_time, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(storage_path, item_id) DO UPDATE SET
			playhead = excluded.playhead,
			duration = excluded.duration,
			percent = excluded.percent,
			watch_time = excluded.watch_time,
			updated_at = excluded.updated_at`,
		rec.StoragePath, rec.ItemID, rec.Playhead, rec.Duration,
		rec.Percent, rec.WatchTime, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// ListByPath returns all records under a storage path, most recent first.
func (s *Store) ListByPath(ctx context.Context, storagePath string) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT storage_path, item_id, playhead, duration, percent, watch_time, updated_at
		FROM progress WHERE storage_path = ?
		ORDER BY updated_at DESC`,
		storagePath,
	)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.StoragePath, &rec.ItemID, &rec.Playhead,
			&rec.Duration, &rec.Percent, &rec.WatchTime, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
