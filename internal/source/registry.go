package source

import (
	"strings"
	"sync"

	"github.com/hbollon/go-edlib"
)

// Address is a parsed content reference. An empty Source with a non-empty
// ID means the text was a bare numeric id and the caller must already know
// the source.
type Address struct {
	Source string
	ID     string
}

// Registry holds adapters keyed by source name and resolves address
// prefixes, including legacy aliases, to (source, localId) pairs.
//
// The alias table maps a legacy prefix to "targetSource:targetCollection";
// it is fixed at construction. Registration is expected to happen during
// start-up; lookups afterwards are read-mostly.
type Registry struct {
	aliases map[string]string

	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates a registry with the given legacy alias table.
// Alias keys are matched case-insensitively.
func NewRegistry(aliases map[string]string) *Registry {
	normalized := make(map[string]string, len(aliases))
	for k, v := range aliases {
		normalized[strings.ToLower(k)] = v
	}
	return &Registry{
		aliases:  normalized,
		adapters: make(map[string]Adapter),
	}
}

// Register stores an adapter under name. Registering an already-taken name
// fails with ErrDuplicateSource; use Replace to swap explicitly.
func (r *Registry) Register(name string, a Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.adapters[name]; ok {
		return ErrDuplicateSource
	}
	r.adapters[name] = a
	return nil
}

// Replace stores an adapter under name, overwriting any existing entry.
func (r *Registry) Replace(name string, a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[name] = a
}

// Get returns the adapter registered under name, or nil when unknown.
func (r *Registry) Get(name string) Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.adapters[name]
}

// Names returns the registered source names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	return names
}

// ResolveAddress parses a textual reference of the form "prefix:value".
// The prefix is matched case-insensitively; the value is preserved as-is.
//
// A prefix found in the legacy alias table is rewritten: alias
// "hymn" -> "singing:hymn" turns "hymn:2" into {singing, hymn/2}.
// A bare numeric string yields an Address with an empty Source so the
// caller can surface the ambiguity instead of guessing. Anything else
// returns nil.
func (r *Registry) ResolveAddress(text string) *Address {
	prefix, value, found := strings.Cut(text, ":")
	if !found {
		if isNumeric(text) {
			return &Address{ID: text}
		}
		return nil
	}
	if prefix == "" || value == "" {
		return nil
	}

	key := strings.ToLower(prefix)
	if target, ok := r.aliases[key]; ok {
		targetSource, collection, _ := strings.Cut(target, ":")
		return &Address{
			Source: targetSource,
			ID:     collection + "/" + value,
		}
	}
	return &Address{Source: key, ID: value}
}

// Suggest returns the registered source name closest to the given name by
// Jaro-Winkler similarity, or "" when nothing is close enough to be a
// plausible typo.
func (r *Registry) Suggest(name string) string {
	const minScore = 0.75

	r.mu.RLock()
	defer r.mu.RUnlock()

	var best string
	var bestScore float32
	for candidate := range r.adapters {
		score := edlib.JaroWinklerSimilarity(strings.ToLower(name), strings.ToLower(candidate))
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < minScore {
		return ""
	}
	return best
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
