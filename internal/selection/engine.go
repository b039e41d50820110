package selection

import (
	"math/rand/v2"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vmunix/medley/internal/content"
)

// ContainerFolder and friends are the container types with built-in
// default strategies. Unknown types fall back to the folder default.
const (
	ContainerFolder    = "folder"
	ContainerWatchlist = "watchlist"
	ContainerQueue     = "queue"
)

var defaults = map[string]Strategy{
	ContainerFolder: {
		Name:   "sequential",
		Filter: FilterNone,
		Sort:   SortNone,
		Pick:   PickAll,
	},
	ContainerWatchlist: {
		Name:   "prioritized-unwatched",
		Filter: FilterUnwatched,
		Sort:   SortPriority,
		Pick:   PickAll,
	},
	ContainerQueue: {
		Name:   "fixed-order",
		Filter: FilterNone,
		Sort:   SortNone,
		Pick:   PickAll,
	},
}

// priorityRank orders items for SortPriority. Lower sorts first; ties keep
// input order (stable sort).
var priorityRank = map[content.Priority]int{
	content.PriorityInProgress: 0,
	content.PriorityHigh:       1,
	content.PriorityNormal:     2,
	"":                         2,
	content.PriorityLow:        3,
}

// Engine resolves strategies and applies them. It holds no per-call state;
// a single engine is safe for concurrent use.
type Engine struct {
	collator *collate.Collator
}

// NewEngine creates a selection engine.
func NewEngine() *Engine {
	return &Engine{
		// Loose collation folds case and accents for title ordering.
		collator: collate.New(language.Und, collate.Loose),
	}
}

// ResolveStrategy infers the default strategy for the context's container
// type and merges overrides on top. The result is a fresh value.
func (e *Engine) ResolveStrategy(ctx Context, ov Overrides) Strategy {
	def, ok := defaults[ctx.ContainerType]
	if !ok {
		def = defaults[ContainerFolder]
	}
	return merge(def, ov)
}

// Select applies filter, sort, and pick in order and returns a new slice.
// The input slice and its items are never modified. Empty input yields
// empty output; a filter that removes everything is not an error.
func (e *Engine) Select(items []*content.Item, ctx Context, ov Overrides) []*content.Item {
	strategy := e.ResolveStrategy(ctx, ov)

	selected := e.applyFilter(items, strategy.Filter)
	e.applySort(selected, strategy.Sort)
	return e.applyPick(selected, strategy.Pick)
}

func (e *Engine) applyFilter(items []*content.Item, name string) []*content.Item {
	out := make([]*content.Item, 0, len(items))
	for _, item := range items {
		if name == FilterUnwatched && item.Watched {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (e *Engine) applySort(items []*content.Item, name string) {
	switch name {
	case SortPriority:
		sort.SliceStable(items, func(i, j int) bool {
			return rank(items[i].Priority) < rank(items[j].Priority)
		})
	case SortTitle:
		sort.SliceStable(items, func(i, j int) bool {
			return e.collator.CompareString(items[i].Title, items[j].Title) < 0
		})
	}
}

func rank(p content.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	// caller-defined tags sort with normal
	return priorityRank[content.PriorityNormal]
}

func (e *Engine) applyPick(items []*content.Item, name string) []*content.Item {
	switch name {
	case PickFirst:
		if len(items) == 0 {
			return items
		}
		return items[:1]

	case PickRandom:
		// re-evaluated on every call, never memoized
		if len(items) == 0 {
			return items
		}
		return []*content.Item{items[rand.IntN(len(items))]}

	case PickNextUnfinished:
		for i, item := range items {
			if !item.Watched {
				return items[i : i+1]
			}
		}
		return items[:0]

	default: // PickAll
		return items
	}
}
