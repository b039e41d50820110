package progress_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vmunix/medley/internal/progress"
)

func setupStore(t *testing.T) *progress.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := progress.NewStore(db)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return store
}

func TestStore_GetMissingReturnsNil(t *testing.T) {
	store := setupStore(t)

	rec, err := store.Get(context.Background(), "library:x", "library")
	require.NoError(t, err)
	assert.Nil(t, rec, "missing record is nil, not an error")
}

func TestStore_UpsertLifecycle(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// First playback event creates the record.
	require.NoError(t, store.Upsert(ctx, &progress.Record{
		ItemID:      "library:series/pilot",
		StoragePath: "library",
		Playhead:    30,
		Duration:    600,
		WatchTime:   30,
	}))

	rec, err := store.Get(ctx, "library:series/pilot", "library")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.EqualValues(t, 30, rec.Playhead)
	assert.InDelta(t, 5.0, rec.Percent, 0.01, "percent derived from playhead/duration")
	assert.False(t, rec.UpdatedAt.IsZero())

	// Subsequent ticks update in place.
	require.NoError(t, store.Upsert(ctx, &progress.Record{
		ItemID:      "library:series/pilot",
		StoragePath: "library",
		Playhead:    570,
		Duration:    600,
		WatchTime:   570,
	}))

	rec, err = store.Get(ctx, "library:series/pilot", "library")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.EqualValues(t, 570, rec.Playhead)
	assert.InDelta(t, 95.0, rec.Percent, 0.01)

	records, err := store.ListByPath(ctx, "library")
	require.NoError(t, err)
	assert.Len(t, records, 1, "tick must update, not duplicate")
}

func TestStore_LookupsAreScopedByPath(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &progress.Record{
		ItemID:      "singing:hymn/2",
		StoragePath: "singing",
		Playhead:    100,
		Duration:    200,
		WatchTime:   100,
	}))

	rec, err := store.Get(ctx, "singing:hymn/2", "library")
	require.NoError(t, err)
	assert.Nil(t, rec, "same item id under another namespace is a different record")
}

func TestStore_ListByPathOrdersByRecency(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &progress.Record{
		ItemID: "library:a", StoragePath: "library", Playhead: 1, Duration: 10,
	}))
	require.NoError(t, store.Upsert(ctx, &progress.Record{
		ItemID: "library:b", StoragePath: "library", Playhead: 2, Duration: 10,
	}))
	// Touch a again so it becomes most recent.
	require.NoError(t, store.Upsert(ctx, &progress.Record{
		ItemID: "library:a", StoragePath: "library", Playhead: 5, Duration: 10,
	}))

	records, err := store.ListByPath(ctx, "library")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "library:a", records[0].ItemID)
}
