package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/medley/internal/content"
	"github.com/vmunix/medley/internal/source"
)

// stubAdapter is a minimal adapter for registry tests.
type stubAdapter struct {
	name string
}

func (s *stubAdapter) Name() string { return s.name }
func (s *stubAdapter) CanResolve(id string) bool {
	src, _, ok := content.SplitID(id)
	return ok && src == s.name
}
func (s *stubAdapter) ResolvePlayables(ctx context.Context, localID string) ([]content.Item, error) {
	return nil, nil
}

func TestRegistry_Register(t *testing.T) {
	r := source.NewRegistry(nil)
	a := &stubAdapter{name: "library"}

	require.NoError(t, r.Register("library", a))

	err := r.Register("library", &stubAdapter{name: "library"})
	assert.ErrorIs(t, err, source.ErrDuplicateSource)

	// The original registration survives the failed attempt.
	assert.Same(t, a, r.Get("library"))
}

func TestRegistry_Replace(t *testing.T) {
	r := source.NewRegistry(nil)
	first := &stubAdapter{name: "library"}
	second := &stubAdapter{name: "library"}

	require.NoError(t, r.Register("library", first))
	r.Replace("library", second)

	assert.Same(t, second, r.Get("library"))
}

func TestRegistry_GetUnknownReturnsNil(t *testing.T) {
	r := source.NewRegistry(nil)
	assert.Nil(t, r.Get("nope"))
}

func TestRegistry_GetIsIdempotent(t *testing.T) {
	r := source.NewRegistry(nil)
	a := &stubAdapter{name: "library"}
	require.NoError(t, r.Register("library", a))

	assert.Same(t, r.Get("library"), r.Get("library"))
}

func TestRegistry_ResolveAddress(t *testing.T) {
	r := source.NewRegistry(map[string]string{
		"hymn": "singing:hymn",
	})

	tests := []struct {
		name string
		text string
		want *source.Address
	}{
		{"plain prefix", "library:series/pilot", &source.Address{Source: "library", ID: "series/pilot"}},
		{"prefix is case-insensitive", "LIBRARY:Series/Pilot", &source.Address{Source: "library", ID: "Series/Pilot"}},
		{"legacy alias round-trip", "hymn:2", &source.Address{Source: "singing", ID: "hymn/2"}},
		{"alias case-insensitive", "HYMN:2", &source.Address{Source: "singing", ID: "hymn/2"}},
		{"bare numeric is ambiguous", "42", &source.Address{Source: "", ID: "42"}},
		{"malformed", "not-an-address", nil},
		{"empty", "", nil},
		{"empty value", "library:", nil},
		{"empty prefix", ":x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ResolveAddress(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Suggest(t *testing.T) {
	r := source.NewRegistry(nil)
	require.NoError(t, r.Register("library", &stubAdapter{name: "library"}))
	require.NoError(t, r.Register("singing", &stubAdapter{name: "singing"}))

	assert.Equal(t, "library", r.Suggest("libary"))
	assert.Equal(t, "singing", r.Suggest("singin"))
	assert.Empty(t, r.Suggest("zzzzqq"), "nothing plausible should suggest nothing")
}

func TestRegistry_Names(t *testing.T) {
	r := source.NewRegistry(nil)
	require.NoError(t, r.Register("a", &stubAdapter{name: "a"}))
	require.NoError(t, r.Register("b", &stubAdapter{name: "b"}))

	assert.ElementsMatch(t, []string{"a", "b"}, r.Names())
}
