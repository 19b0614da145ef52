// Package snapshot persists whole LifeOS states so a process can restart where it stopped.
package snapshot

import (
	"context"
	"time"

	"github.com/at-ishikawa/lifeos/internal/store"
)

//go:generate mockgen -source=snapshot.go -destination=../mocks/snapshot/mock_repository.go -package=mock_snapshot

// Snapshot is a state captured at a point in time.
type Snapshot struct {
	TakenAt time.Time   `json:"takenAt" yaml:"taken_at"`
	State   store.State `json:"state" yaml:"state"`
}

// Repository saves and loads snapshots.
// Latest returns nil without an error when nothing has been saved yet.
type Repository interface {
	Save(ctx context.Context, state store.State, takenAt time.Time) error
	Latest(ctx context.Context) (*Snapshot, error)
}
