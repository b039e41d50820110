// internal/resolver/testutil_test.go
package resolver_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/vmunix/medley/internal/content"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAdapter implements the full capability surface with canned data.
type fakeAdapter struct {
	name          string
	items         []content.Item
	err           error
	containerType string
	storagePath   string
	calls         atomic.Int32
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) CanResolve(id string) bool {
	src, _, ok := content.SplitID(id)
	return ok && src == f.name
}

func (f *fakeAdapter) ResolvePlayables(ctx context.Context, localID string) ([]content.Item, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	// Hand out copies so a test can check its fixtures stayed intact.
	out := make([]content.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeAdapter) StoragePath(itemID string) string {
	if f.storagePath != "" {
		return f.storagePath
	}
	return f.name
}

func (f *fakeAdapter) ContainerType(localID string) string {
	return f.containerType
}

// bareAdapter has no optional capabilities and cannot resolve playables.
type bareAdapter struct {
	name string
}

func (b *bareAdapter) Name() string             { return b.name }
func (b *bareAdapter) CanResolve(_ string) bool { return false }

// plainAdapter resolves playables but declares no optional capabilities.
type plainAdapter struct {
	name  string
	items []content.Item
}

func (p *plainAdapter) Name() string { return p.name }

func (p *plainAdapter) CanResolve(id string) bool {
	src, _, ok := content.SplitID(id)
	return ok && src == p.name
}

func (p *plainAdapter) ResolvePlayables(ctx context.Context, localID string) ([]content.Item, error) {
	out := make([]content.Item, len(p.items))
	copy(out, p.items)
	return out, nil
}

func leafItems(t *testing.T, ids ...string) []content.Item {
	t.Helper()
	out := make([]content.Item, len(ids))
	for i, id := range ids {
		out[i] = content.Item{ID: id, Type: content.TypeLeaf, Title: id}
	}
	return out
}
