// Package localfs provides a content-source adapter over a local media
// directory. Leaves are media files; a local id addresses a file or a
// directory relative to the configured root.
package localfs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vmunix/medley/internal/content"
	"github.com/vmunix/medley/internal/selection"
)

// mediaExts are the file extensions treated as playable leaves.
var mediaExts = map[string]bool{
	".mp4": true, ".mkv": true, ".avi": true, ".webm": true, ".mov": true,
	".mp3": true, ".m4a": true, ".flac": true, ".ogg": true, ".opus": true,
	".wav": true, ".mid": true,
}

// Adapter serves one named source rooted at a directory.
type Adapter struct {
	name string
	root string
	log  *slog.Logger
}

// New creates a localfs adapter. name becomes the source name and the
// default progress namespace; root is the directory it serves.
func New(name, root string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		name: name,
		root: root,
		log:  logger.With("component", "localfs", "source", name),
	}
}

// Name returns the source name.
func (a *Adapter) Name() string { return a.name }

// CanResolve reports whether the canonical id belongs to this source.
func (a *Adapter) CanResolve(id string) bool {
	src, _, ok := content.SplitID(id)
	return ok && src == a.name
}

// StoragePath scopes progress lookups for this source.
func (a *Adapter) StoragePath(itemID string) string { return a.name }

// ContainerType hints the default strategy: a directory named "watchlist"
// or "queue" gets the corresponding strategy, everything else is a folder.
func (a *Adapter) ContainerType(localID string) string {
	switch path.Base(strings.Trim(localID, "/")) {
	case selection.ContainerWatchlist:
		return selection.ContainerWatchlist
	case selection.ContainerQueue:
		return selection.ContainerQueue
	default:
		return selection.ContainerFolder
	}
}

// ResolvePlayables expands localID into a flat list of leaves. A file id
// yields the single leaf; a directory id yields every media file beneath
// it in lexical walk order. An empty id addresses the root.
func (a *Adapter) ResolvePlayables(ctx context.Context, localID string) ([]content.Item, error) {
	abs := a.resolvePath(localID)

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", localID, err)
	}

	if !info.IsDir() {
		if !isMediaFile(abs) {
			return nil, fmt.Errorf("%s: not a playable file", localID)
		}
		return []content.Item{a.leaf(localID)}, nil
	}

	var items []content.Item
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !isMediaFile(p) {
			return nil
		}
		rel, err := filepath.Rel(a.root, p)
		if err != nil {
			return err
		}
		items = append(items, a.leaf(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", localID, err)
	}

	a.log.Debug("resolved playables", "local_id", localID, "count", len(items))
	return items, nil
}

// resolvePath maps a local id onto the filesystem. Rooting the id at "/"
// before cleaning keeps ".." segments from escaping the root.
func (a *Adapter) resolvePath(localID string) string {
	cleaned := path.Clean("/" + localID)
	if cleaned == "/" {
		return a.root
	}
	return filepath.Join(a.root, filepath.FromSlash(cleaned[1:]))
}

func (a *Adapter) leaf(localID string) content.Item {
	return content.Item{
		ID:    content.CanonicalID(a.name, localID),
		Type:  content.TypeLeaf,
		Title: titleFromPath(localID),
	}
}

func isMediaFile(p string) bool {
	return mediaExts[strings.ToLower(filepath.Ext(p))]
}

// titleFromPath derives a display title from a file path: base name, no
// extension, separators turned into spaces.
func titleFromPath(p string) string {
	base := path.Base(p)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("_", " ", ".", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}
