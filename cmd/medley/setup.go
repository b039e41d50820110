package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/vmunix/medley/internal/adapters/localfs"
	"github.com/vmunix/medley/internal/config"
	"github.com/vmunix/medley/internal/progress"
	"github.com/vmunix/medley/internal/resolver"
	"github.com/vmunix/medley/internal/source"
)

// app bundles the wired-up core for CLI commands.
type app struct {
	cfg      *config.Config
	db       *sql.DB
	store    *progress.Store
	registry *source.Registry
	service  *resolver.Service
	log      *slog.Logger
}

func (a *app) Close() error {
	return a.db.Close()
}

// setup loads configuration and wires the registry, progress store, and
// resolver service.
func setup(ctx context.Context) (*app, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.Discover(); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: errs}
	}

	logger := newLogger(cfg.Log.Level)

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := progress.NewStore(db)
	if err := store.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}

	registry := source.NewRegistry(cfg.Aliases)
	for name, src := range cfg.Sources {
		switch src.Type {
		case "localfs":
			if err := registry.Register(name, localfs.New(name, src.Root, logger)); err != nil {
				db.Close()
				return nil, fmt.Errorf("register source %s: %w", name, err)
			}
		}
	}

	classifier := progress.NewClassifier(cfg.ProgressConfig())
	service := resolver.NewService(registry, store, classifier,
		resolver.Config{FanOut: cfg.Resolver.FanOut}, logger)

	return &app{
		cfg:      cfg,
		db:       db,
		store:    store,
		registry: registry,
		service:  service,
		log:      logger,
	}, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
