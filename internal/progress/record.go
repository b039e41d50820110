// Package progress tracks per-item consumption state: the persisted record,
// the watched-status classification policy, and a SQLite-backed store.
package progress

import "time"

// Record is the persisted consumption state for one item. It is created on
// the first playback event, updated on every subsequent tick, and never
// deleted by the resolution core; retention belongs to the store's owner.
type Record struct {
	ItemID      string
	StoragePath string // namespace scoping the lookup, usually the source name
	Playhead    int64  // seconds
	Duration    int64  // seconds
	Percent     float64
	WatchTime   int64 // seconds actually consumed
	UpdatedAt   time.Time
}
