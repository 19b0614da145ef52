package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/lifeos/internal/store"
)

// Autosaver saves the current state in the background after changes.
// Bursts of changes collapse into one save of the newest state.
type Autosaver struct {
	repo    Repository
	current func() store.State
	now     func() time.Time
	dirty   chan struct{}
}

// NewAutosaver saves whatever current returns at save time.
func NewAutosaver(repo Repository, current func() store.State, now func() time.Time) *Autosaver {
	return &Autosaver{
		repo:    repo,
		current: current,
		now:     now,
		dirty:   make(chan struct{}, 1),
	}
}

// Notify marks the state as changed. It never blocks.
func (a *Autosaver) Notify() {
	select {
	case a.dirty <- struct{}{}:
	default:
	}
}

// Run saves after each notification until ctx is done, then saves once more
// if a change is still pending. The final save uses flushCtx.
func (a *Autosaver) Run(ctx context.Context, flushCtx func() (context.Context, context.CancelFunc)) {
	for {
		select {
		case <-a.dirty:
			if err := a.Save(ctx); err != nil {
				slog.Error("autosave failed", "error", err)
			}
		case <-ctx.Done():
			select {
			case <-a.dirty:
				saveCtx, cancel := flushCtx()
				if err := a.Save(saveCtx); err != nil {
					slog.Error("final autosave failed", "error", err)
				}
				cancel()
			default:
			}
			return
		}
	}
}

// Save stores the current state now.
func (a *Autosaver) Save(ctx context.Context) error {
	takenAt := a.now()
	if err := a.repo.Save(ctx, a.current(), takenAt); err != nil {
		return fmt.Errorf("repo.Save() > %w", err)
	}
	slog.Debug("saved snapshot", "takenAt", takenAt)
	return nil
}

// Restore returns the state of the latest snapshot, or fallback() when there is none.
// The second result reports whether a snapshot was found.
func Restore(ctx context.Context, repo Repository, fallback func() store.State) (store.State, bool, error) {
	latest, err := repo.Latest(ctx)
	if err != nil {
		return store.State{}, false, fmt.Errorf("repo.Latest() > %w", err)
	}
	if latest == nil {
		return fallback(), false, nil
	}
	return latest.State, true, nil
}
