package store

import (
	"context"
	"sync"
	"time"

	"github.com/codermarch/taskboard/internal/domain/board"
	"github.com/codermarch/taskboard/internal/domain/task"
	"github.com/codermarch/taskboard/internal/domain/user"
	"github.com/codermarch/taskboard/internal/observability"
)

// Snapshot is the whole persisted state: three collections, read in full
// and written in full. This layout is the durable contract.
type Snapshot struct {
	Users  []user.User   `json:"users"`
	Boards []board.Board `json:"boards"`
	Tasks  []task.Task   `json:"tasks"`
}

// Empty returns a snapshot with allocated (non-nil) collections so the
// persisted form is always {"users":[],"boards":[],"tasks":[]}.
func Empty() Snapshot {
	return Snapshot{
		Users:  []user.User{},
		Boards: []board.Board{},
		Tasks:  []task.Task{},
	}
}

type Store interface {
	// Load reads the entire persisted state, initializing and persisting
	// an empty snapshot when none exists yet.
	Load(ctx context.Context) (Snapshot, error)
	// Save overwrites the entire persisted state. Full replace, not a patch.
	Save(ctx context.Context, snap Snapshot) error
}

// Manager serializes every mutation behind one in-process mutex so two
// concurrent load-mutate-save sequences cannot silently drop each
// other's writes. Reads skip the lock; a load always sees a
// self-consistent snapshot.
type Manager struct {
	mu    sync.Mutex
	store Store
	prom  *observability.Prom
}

func NewManager(s Store, prom *observability.Prom) *Manager {
	return &Manager{
		store: s,
		prom:  prom,
	}
}

// View loads the current snapshot and hands it to fn.
func (m *Manager) View(ctx context.Context, fn func(snap *Snapshot) error) error {
	snap, err := m.load(ctx)

	if err != nil {
		return err
	}

	return fn(&snap)
}

// Update runs fn against a fresh snapshot and persists the result.
// If fn returns an error nothing is written, so a multi-entity change
// (board delete plus its task cascade) lands in one save or not at all.
func (m *Manager) Update(ctx context.Context, fn func(snap *Snapshot) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, err := m.load(ctx)

	if err != nil {
		return err
	}

	err = fn(&snap)

	if err != nil {
		return err
	}

	return m.save(ctx, snap)
}

func (m *Manager) load(ctx context.Context) (Snapshot, error) {
	start := time.Now()
	snap, err := m.store.Load(ctx)

	if m.prom != nil {
		m.prom.ObserveStoreOp("load", start, err)
	}

	return snap, err
}

func (m *Manager) save(ctx context.Context, snap Snapshot) error {
	start := time.Now()
	err := m.store.Save(ctx, snap)

	if m.prom != nil {
		m.prom.ObserveStoreOp("save", start, err)
	}

	return err
}
