// Package resolver orchestrates content resolution: adapter lookup,
// playables fetch, concurrent progress enrichment, and selection.
package resolver

//go:generate mockgen -source=resolver.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/medley/internal/content"
	"github.com/vmunix/medley/internal/progress"
	"github.com/vmunix/medley/internal/selection"
	"github.com/vmunix/medley/internal/source"
)

// defaultFanOut bounds concurrent progress lookups per resolve call.
const defaultFanOut = 8

// ProgressGetter is the progress collaborator contract. A nil record with
// a nil error means "no progress recorded".
type ProgressGetter interface {
	Get(ctx context.Context, itemID, storagePath string) (*progress.Record, error)
}

// Classifier turns a progress record into a watch status. The default
// implementation is progress.Classifier; applications may inject a
// stricter policy.
type Classifier interface {
	Classify(rec *progress.Record, item *content.Item) progress.Status
}

// Config tunes the resolver.
type Config struct {
	// FanOut caps concurrent progress lookups. 0 means the default (8).
	FanOut int
}

// Result is what a resolve call produces: the selected items and the
// strategy that was actually applied, for display or logging.
type Result struct {
	Items    []*content.Item
	Strategy selection.Strategy
}

// Service is the single entry point turning a (source, localId) reference
// into selected, enriched items. It is stateless between calls and safe
// for concurrent use.
type Service struct {
	registry   *source.Registry
	progress   ProgressGetter
	classifier Classifier
	engine     *selection.Engine
	fanOut     int
	log        *slog.Logger
}

// NewService creates a resolver service. The progress getter may be nil,
// in which case enrichment is skipped. A nil classifier falls back to the
// default thresholds.
func NewService(registry *source.Registry, prog ProgressGetter, classifier Classifier, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if classifier == nil {
		classifier = progress.NewClassifier(progress.DefaultConfig())
	}
	fanOut := cfg.FanOut
	if fanOut <= 0 {
		fanOut = defaultFanOut
	}
	return &Service{
		registry:   registry,
		progress:   prog,
		classifier: classifier,
		engine:     selection.NewEngine(),
		fanOut:     fanOut,
		log:        logger.With("component", "resolver"),
	}
}

// Registry returns the underlying source registry.
func (s *Service) Registry() *source.Registry {
	return s.registry
}

// Resolve turns a (source, localId) reference into selected items.
//
// Adapter and collaborator failures propagate without retry. A failed
// progress lookup for a single item degrades to "no progress" rather than
// aborting the call, unless the failure is the caller's cancellation or
// deadline, which aborts everything.
func (s *Service) Resolve(ctx context.Context, src, localID string, selCtx selection.Context, ov selection.Overrides) (*Result, error) {
	adapter := s.registry.Get(src)
	if adapter == nil {
		return nil, fmt.Errorf("source %q: %w", src, ErrUnknownSource)
	}

	pr, ok := adapter.(source.PlayableResolver)
	if !ok {
		return nil, fmt.Errorf("source %q has no playables resolver: %w", src, ErrUnsupportedCapability)
	}

	fetched, err := pr.ResolvePlayables(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("resolve playables %s:%s: %w", src, localID, err)
	}

	// This call owns the fetched items from here on; enrichment writes
	// into them before selection sees the list.
	items := make([]*content.Item, len(fetched))
	for i := range fetched {
		items[i] = &fetched[i]
	}

	if s.progress != nil {
		if err := s.enrich(ctx, adapter, items); err != nil {
			return nil, fmt.Errorf("enrich %s:%s: %w", src, localID, err)
		}
	}

	if selCtx.ContainerType == "" {
		if ct, ok := adapter.(source.ContainerTyper); ok {
			selCtx.ContainerType = ct.ContainerType(localID)
		}
	}
	if selCtx.ContainerType == "" {
		selCtx.ContainerType = selection.ContainerFolder
	}

	strategy := s.engine.ResolveStrategy(selCtx, ov)
	selected := s.engine.Select(items, selCtx, ov)

	s.log.Debug("resolved",
		"source", src, "local_id", localID,
		"candidates", len(items), "selected", len(selected),
		"strategy", strategy.Name)

	return &Result{Items: selected, Strategy: strategy}, nil
}

// ResolveText resolves a textual address ("prefix:value" or a legacy
// alias) via the registry, then resolves it.
func (s *Service) ResolveText(ctx context.Context, text string, selCtx selection.Context, ov selection.Overrides) (*Result, error) {
	addr := s.registry.ResolveAddress(text)
	if addr == nil || addr.Source == "" {
		return nil, fmt.Errorf("address %q: %w", text, ErrAmbiguousAddress)
	}
	return s.Resolve(ctx, addr.Source, addr.ID, selCtx, ov)
}

// enrich attaches progress state to every item with a recorded position.
// Lookups fan out concurrently, bounded by fanOut; each goroutine writes
// only its own item, so input order is preserved.
func (s *Service) enrich(ctx context.Context, adapter source.Adapter, items []*content.Item) error {
	pather, hasPather := adapter.(source.StoragePather)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOut)
	for _, item := range items {
		g.Go(func() error {
			path := adapter.Name()
			if hasPather {
				path = pather.StoragePath(item.ID)
			}

			rec, err := s.progress.Get(ctx, item.ID, path)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				// Degrade to unwatched rather than failing the whole call.
				s.log.Warn("progress lookup failed", "item", item.ID, "error", err)
				return nil
			}
			if rec == nil {
				return nil
			}

			status := s.classifier.Classify(rec, item)
			item.Percent = rec.Percent
			item.Playhead = rec.Playhead
			item.Duration = rec.Duration
			item.WatchTime = rec.WatchTime
			item.Watched = status == progress.Watched
			if item.Priority == "" && status == progress.InProgress {
				item.Priority = content.PriorityInProgress
			}
			return nil
		})
	}
	return g.Wait()
}
