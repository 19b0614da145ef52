package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lifeos/internal/database"
	"github.com/at-ishikawa/lifeos/internal/store"
)

type snapshotRow struct {
	ID      int64     `db:"id"`
	TakenAt time.Time `db:"taken_at"`
	Payload []byte    `db:"payload"`
}

// DBRepository stores snapshots as JSON documents in MySQL.
type DBRepository struct {
	db *sqlx.DB
	// keep is how many snapshots survive a save; zero keeps all of them.
	keep int
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// WithRetention makes Save delete all but the newest keep snapshots.
func (r *DBRepository) WithRetention(keep int) *DBRepository {
	r.keep = keep
	return r
}

func (r *DBRepository) Save(ctx context.Context, state store.State, takenAt time.Time) error {
	payload, err := json.Marshal(state.Normalize())
	if err != nil {
		return fmt.Errorf("json.Marshal() > %w", err)
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO snapshots (taken_at, payload) VALUES (?, ?)",
			takenAt.UTC(), payload); err != nil {
			return fmt.Errorf("tx.ExecContext(insert snapshot) > %w", err)
		}
		if r.keep <= 0 {
			return nil
		}
		// MySQL rejects LIMIT inside IN subqueries, hence the derived table.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM snapshots WHERE id NOT IN (
				SELECT id FROM (SELECT id FROM snapshots ORDER BY taken_at DESC, id DESC LIMIT ?) AS newest
			)`, r.keep); err != nil {
			return fmt.Errorf("tx.ExecContext(prune snapshots) > %w", err)
		}
		return nil
	})
}

func (r *DBRepository) Latest(ctx context.Context) (*Snapshot, error) {
	var row snapshotRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, taken_at, payload FROM snapshots ORDER BY taken_at DESC, id DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(latest snapshot) > %w", err)
	}

	var state store.State
	if err := json.Unmarshal(row.Payload, &state); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(snapshot %d) > %w", row.ID, err)
	}
	return &Snapshot{TakenAt: row.TakenAt, State: state.Normalize()}, nil
}
