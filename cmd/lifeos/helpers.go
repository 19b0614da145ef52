package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/lifeos/internal/config"
	"github.com/at-ishikawa/lifeos/internal/database"
	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/seed"
	"github.com/at-ishikawa/lifeos/internal/snapshot"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/schemas"
)

// now is replaced in tests.
var now = time.Now

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config > %w", err)
	}
	return cfg, nil
}

func opener(ctx context.Context) snapshot.Opener {
	return database.Opener(ctx, schemas.Migrations)
}

// loadLocalState reads the latest snapshot of the configured backend.
// Without one it falls back to seed data, or an empty state when seeding is disabled.
func loadLocalState(ctx context.Context, cfg *config.Config) (store.State, error) {
	repo, closeRepo, err := snapshot.NewRepository(*cfg, opener(ctx))
	if err != nil {
		return store.State{}, fmt.Errorf("snapshot.NewRepository() > %w", err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			slog.Warn("failed to close the snapshot repository", "error", err)
		}
	}()

	state, found, err := snapshot.Restore(ctx, repo, func() store.State {
		if cfg.Seed.Enabled {
			return seed.Generate(now().In(cfg.Location()), uuid.NewString)
		}
		return store.Empty()
	})
	if err != nil {
		return store.State{}, fmt.Errorf("snapshot.Restore() > %w", err)
	}
	slog.Debug("loaded local state", "fromSnapshot", found, "sizes", state.Sizes())
	return state, nil
}

// referenceTime is the date flag at noon, or the current time, in loc.
func referenceTime(date string, loc *time.Location) (time.Time, error) {
	if date == "" {
		return now().In(loc), nil
	}
	day, err := model.ParseDate(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected yyyy-MM-dd > %w", date, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, loc), nil
}
