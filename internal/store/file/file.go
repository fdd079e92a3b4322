package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codermarch/taskboard/internal/store"
)

// Store keeps the snapshot in a single JSON document on disk.
// Writes go through a temp file plus rename so a crash mid-save leaves
// the previous snapshot intact.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(ctx context.Context) (store.Snapshot, error) {
	data, err := os.ReadFile(s.path)

	if err != nil {
		if os.IsNotExist(err) {
			snap := store.Empty()

			err = s.Save(ctx, snap)

			if err != nil {
				return store.Snapshot{}, err
			}

			return snap, nil
		}

		return store.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap store.Snapshot

	err = json.Unmarshal(data, &snap)

	if err != nil {
		return store.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	return snap, nil
}

func (s *Store) Save(_ context.Context, snap store.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")

	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)

	err = os.MkdirAll(dir, 0o755)

	if err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// temp file in the same dir so the rename stays on one filesystem
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")

	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(data)

	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}

	err = tmp.Close()

	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}

	err = os.Rename(tmpName, s.path)

	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}
