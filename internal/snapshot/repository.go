package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lifeos/internal/config"
	"github.com/at-ishikawa/lifeos/internal/store"
)

// Noop is the repository used when persistence is disabled.
type Noop struct{}

func (Noop) Save(context.Context, store.State, time.Time) error { return nil }

func (Noop) Latest(context.Context) (*Snapshot, error) { return nil, nil }

// Opener connects to the database for the mysql backend.
type Opener func(cfg config.DatabaseConfig) (*sqlx.DB, error)

// NewRepository returns the repository for the configured backend.
// The returned close function releases the database connection, if any.
func NewRepository(cfg config.Config, open Opener) (Repository, func() error, error) {
	noClose := func() error { return nil }
	switch cfg.Snapshot.Backend {
	case "", config.SnapshotBackendNone:
		return Noop{}, noClose, nil
	case config.SnapshotBackendYAML:
		return NewYAMLRepository(cfg.Snapshot.Directory), noClose, nil
	case config.SnapshotBackendMySQL:
		db, err := open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open(%s) > %w", cfg.Database.Database, err)
		}
		return NewDBRepository(db).WithRetention(cfg.Snapshot.Retention), db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
}
