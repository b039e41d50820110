// Package source defines the adapter capability contract and the registry
// that maps source names and address prefixes to adapters.
package source

import (
	"context"

	"github.com/vmunix/medley/internal/content"
)

// Adapter is the minimum contract every content provider implements.
// Additional capabilities are optional interfaces below; consumers
// type-assert for them.
type Adapter interface {
	// Name returns the canonical source name the adapter is registered under.
	Name() string

	// CanResolve reports whether this adapter owns the given canonical id.
	CanResolve(id string) bool
}

// PlayableResolver is the capability to expand a local id into a flat list
// of playable leaves. Adapters expand containers themselves; callers never
// recurse.
type PlayableResolver interface {
	ResolvePlayables(ctx context.Context, localID string) ([]content.Item, error)
}

// StoragePather scopes progress lookups to an adapter-specific namespace.
// When absent, callers fall back to the adapter's source name.
type StoragePather interface {
	StoragePath(itemID string) string
}

// ContainerTyper hints the default selection strategy for a local id
// (e.g. "folder", "watchlist", "queue"). Optional.
type ContainerTyper interface {
	ContainerType(localID string) string
}
