// Package selection resolves and applies filter/sort/pick strategies to
// candidate item lists.
package selection

import "time"

// Filter names.
const (
	FilterNone      = "none"
	FilterUnwatched = "unwatched"
)

// Sort names.
const (
	SortNone     = "none"
	SortPriority = "priority"
	SortTitle    = "title"
)

// Pick names.
const (
	PickAll            = "all"
	PickFirst          = "first"
	PickRandom         = "random"
	PickNextUnfinished = "nextUnfinished"
)

// Strategy is a resolved selection policy. It is a value type: overriding
// builds a new value, shared defaults are never mutated.
type Strategy struct {
	Name   string
	Filter string
	Sort   string
	Pick   string
}

// Overrides selectively replaces parts of an inferred strategy. Empty
// fields keep the default; Filter may be set to FilterNone to disable
// filtering regardless of the default.
type Overrides struct {
	Filter string
	Sort   string
	Pick   string
}

// merge returns a new strategy with the overrides applied on top of def.
func merge(def Strategy, ov Overrides) Strategy {
	s := def
	if ov.Filter != "" {
		s.Filter = ov.Filter
	}
	if ov.Sort != "" {
		s.Sort = ov.Sort
	}
	if ov.Pick != "" {
		s.Pick = ov.Pick
	}
	if s != def {
		s.Name = def.Name + "+overrides"
	}
	return s
}

// Context carries the per-call selection inputs. ContainerType is the
// primary key for inferring a default strategy; Extra holds any
// caller-supplied fields custom filters may consult.
type Context struct {
	ContainerType string
	Now           time.Time
	Extra         map[string]any
}
