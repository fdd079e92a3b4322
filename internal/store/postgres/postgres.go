package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/codermarch/taskboard/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store keeps the whole snapshot as one jsonb row. Same full-document
// contract as the file store, but the row swap is transactional and the
// database survives a crash mid-save.
type Store struct {
	pool *pgxpool.Pool
}

// the snapshot always lives at id = 1
const snapshotID = 1

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate creates the snapshot table. Called once at startup.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			id  int PRIMARY KEY,
			doc jsonb NOT NULL
		)`)

	if err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}

	return nil
}

func (s *Store) Load(ctx context.Context) (store.Snapshot, error) {
	var data []byte

	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM snapshots WHERE id = $1`, snapshotID,
	).Scan(&data)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			snap := store.Empty()

			err = s.Save(ctx, snap)

			if err != nil {
				return store.Snapshot{}, err
			}

			return snap, nil
		}

		return store.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var snap store.Snapshot

	err = json.Unmarshal(data, &snap)

	if err != nil {
		return store.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap store.Snapshot) error {
	data, err := json.Marshal(snap)

	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO snapshots (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`,
		snapshotID, data)

	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}
