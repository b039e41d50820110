// Package content defines the canonical item model shared by the
// resolution pipeline.
package content

import (
	"fmt"
	"strings"
)

// ItemType distinguishes navigable groupings from directly playable items.
type ItemType string

const (
	TypeContainer ItemType = "container"
	TypeLeaf      ItemType = "leaf"
)

// Priority tags an item for selection ordering. The well-known values are
// listed below; callers may supply their own tags.
type Priority string

const (
	PriorityHigh       Priority = "high"
	PriorityNormal     Priority = "normal"
	PriorityInProgress Priority = "in_progress"
	PriorityLow        Priority = "low"
)

// Item is a container or playable leaf produced by a source adapter.
//
// The playback fields (Percent, Playhead, Duration, WatchTime, Watched) are
// derived during enrichment and are never authored by an adapter; on a
// freshly fetched item they are zero.
type Item struct {
	ID       string // canonical "source:localId"
	Type     ItemType
	Title    string
	Priority Priority

	Percent   float64 // 0-100, enrichment only
	Playhead  int64   // seconds
	Duration  int64   // seconds
	WatchTime int64   // seconds actually consumed
	Watched   bool
}

// IsLeaf reports whether the item is directly playable.
func (i *Item) IsLeaf() bool { return i.Type == TypeLeaf }

// CanonicalID builds a canonical id from a source name and local id.
func CanonicalID(source, localID string) string {
	return fmt.Sprintf("%s:%s", source, localID)
}

// SplitID splits a canonical id into its source and local parts.
// Returns ok=false when the id carries no source prefix.
func SplitID(id string) (source, localID string, ok bool) {
	source, localID, ok = strings.Cut(id, ":")
	if !ok {
		return "", id, false
	}
	return source, localID, true
}
