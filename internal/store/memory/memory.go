package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/codermarch/taskboard/internal/store"
)

// Store holds the snapshot in memory. Used by tests and dev mode; it
// honors the same full-replace contract as the durable stores.
type Store struct {
	mu   sync.RWMutex
	snap store.Snapshot
}

func New() *Store {
	return &Store{snap: store.Empty()}
}

func (s *Store) Load(_ context.Context) (store.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// deep copy through json so callers can't mutate the held state
	data, err := json.Marshal(s.snap)

	if err != nil {
		return store.Snapshot{}, err
	}

	var out store.Snapshot

	err = json.Unmarshal(data, &out)

	if err != nil {
		return store.Snapshot{}, err
	}

	return out, nil
}

func (s *Store) Save(_ context.Context, snap store.Snapshot) error {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	return nil
}
