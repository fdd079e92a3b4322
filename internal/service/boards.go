package service

import (
	"context"
	"strings"
	"time"

	"github.com/codermarch/taskboard/internal/domain/board"
	"github.com/codermarch/taskboard/internal/domain/task"
	"github.com/codermarch/taskboard/internal/store"
	"github.com/google/uuid"
)

type Boards struct {
	store *store.Manager
}

func NewBoards(st *store.Manager) *Boards {
	return &Boards{store: st}
}

// List returns every board the user owns, in insertion order.
func (s *Boards) List(ctx context.Context, userID string) ([]board.Board, error) {
	out := []board.Board{}

	err := s.store.View(ctx, func(snap *store.Snapshot) error {
		for _, b := range snap.Boards {
			if b.UserID == userID {
				out = append(out, b)
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Boards) Create(ctx context.Context, userID, name string) (board.Board, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return board.Board{}, invalid("name", "is required")
	}

	now := time.Now().UTC()

	newBoard := board.Board{
		ID:        uuid.NewString(),
		Name:      name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.Update(ctx, func(snap *store.Snapshot) error {
		snap.Boards = append(snap.Boards, newBoard)
		return nil
	})

	if err != nil {
		return board.Board{}, err
	}

	return newBoard, nil
}

func (s *Boards) Rename(ctx context.Context, userID, boardID, name string) (board.Board, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return board.Board{}, invalid("name", "is required")
	}

	var renamed board.Board

	err := s.store.Update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Boards {
			// ownership folded into the lookup
			if snap.Boards[i].ID == boardID && snap.Boards[i].UserID == userID {
				snap.Boards[i].Name = name
				snap.Boards[i].UpdatedAt = time.Now().UTC()
				renamed = snap.Boards[i]
				return nil
			}
		}

		return board.ErrNotFound
	})

	if err != nil {
		return board.Board{}, err
	}

	return renamed, nil
}

// Delete removes the board and every task on it in one save. A task on
// the board can only belong to the board's owner, so the cascade keys
// on boardId alone.
func (s *Boards) Delete(ctx context.Context, userID, boardID string) error {
	return s.store.Update(ctx, func(snap *store.Snapshot) error {
		idx := -1

		for i := range snap.Boards {
			if snap.Boards[i].ID == boardID && snap.Boards[i].UserID == userID {
				idx = i
				break
			}
		}

		if idx == -1 {
			return board.ErrNotFound
		}

		snap.Boards = append(snap.Boards[:idx], snap.Boards[idx+1:]...)

		kept := make([]task.Task, 0, len(snap.Tasks))

		for _, t := range snap.Tasks {
			if t.BoardID != boardID {
				kept = append(kept, t)
			}
		}

		snap.Tasks = kept
		return nil
	})
}
