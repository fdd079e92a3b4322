package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/codermarch/taskboard/internal/domain/board"
	"github.com/codermarch/taskboard/internal/domain/task"
	"github.com/codermarch/taskboard/internal/store"
	"github.com/google/uuid"
)

type Tasks struct {
	store *store.Manager
}

func NewTasks(st *store.Manager) *Tasks {
	return &Tasks{store: st}
}

// List returns the user's tasks, optionally scoped to one board, sorted
// by order then createdAt so equal orders still come back deterministic.
func (s *Tasks) List(ctx context.Context, userID, boardID string) ([]task.Task, error) {
	out := []task.Task{}

	err := s.store.View(ctx, func(snap *store.Snapshot) error {
		for _, t := range snap.Tasks {
			if t.UserID != userID {
				continue
			}

			if boardID != "" && t.BoardID != boardID {
				continue
			}

			out = append(out, t)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

// Create appends a task to the end of the board's sequence. Freed order
// slots are never reused.
func (s *Tasks) Create(ctx context.Context, userID string, req task.CreateTaskRequest) (task.Task, error) {
	title := strings.TrimSpace(req.Title)

	if title == "" {
		return task.Task{}, invalid("title", "is required")
	}

	if req.BoardID == "" {
		return task.Task{}, invalid("boardId", "is required")
	}

	now := time.Now().UTC()

	newTask := task.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      task.StatusPending,
		DueDate:     req.DueDate,
		BoardID:     req.BoardID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.store.Update(ctx, func(snap *store.Snapshot) error {
		owned := false

		for _, b := range snap.Boards {
			if b.ID == req.BoardID && b.UserID == userID {
				owned = true
				break
			}
		}

		if !owned {
			return board.ErrNotFound
		}

		maxOrder := 0

		for _, t := range snap.Tasks {
			if t.BoardID == req.BoardID && t.Order > maxOrder {
				maxOrder = t.Order
			}
		}

		newTask.Order = maxOrder + 1
		snap.Tasks = append(snap.Tasks, newTask)
		return nil
	})

	if err != nil {
		return task.Task{}, err
	}

	return newTask, nil
}

// Update applies a partial patch; nil fields keep their stored values.
func (s *Tasks) Update(ctx context.Context, userID, taskID string, req task.UpdateTaskRequest) (task.Task, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return task.Task{}, invalid("title", "must not be empty")
	}

	if req.Status != nil && !req.Status.Valid() {
		return task.Task{}, invalid("status", "must be pending or completed")
	}

	var updated task.Task

	err := s.store.Update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Tasks {
			if snap.Tasks[i].ID != taskID || snap.Tasks[i].UserID != userID {
				continue
			}

			t := &snap.Tasks[i]

			if req.Title != nil {
				t.Title = strings.TrimSpace(*req.Title)
			}

			if req.Description != nil {
				t.Description = strings.TrimSpace(*req.Description)
			}

			if req.Status != nil {
				t.Status = *req.Status
			}

			if req.DueDate != nil {
				t.DueDate = req.DueDate
			}

			t.UpdatedAt = time.Now().UTC()
			updated = *t
			return nil
		}

		return task.ErrNotFound
	})

	if err != nil {
		return task.Task{}, err
	}

	return updated, nil
}

func (s *Tasks) Delete(ctx context.Context, userID, taskID string) error {
	return s.store.Update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Tasks {
			if snap.Tasks[i].ID == taskID && snap.Tasks[i].UserID == userID {
				snap.Tasks = append(snap.Tasks[:i], snap.Tasks[i+1:]...)
				return nil
			}
		}

		return task.ErrNotFound
	})
}

// Reorder assigns order = position+1 for each id the caller owns. Ids
// that are unknown or owned by someone else are skipped, not failed:
// best-effort reordering over the caller's own subset. Tasks outside
// the given list keep their old orders; no renumbering pass runs.
func (s *Tasks) Reorder(ctx context.Context, userID string, taskIDs []string) error {
	return s.store.Update(ctx, func(snap *store.Snapshot) error {
		now := time.Now().UTC()

		for pos, id := range taskIDs {
			for i := range snap.Tasks {
				if snap.Tasks[i].ID == id && snap.Tasks[i].UserID == userID {
					snap.Tasks[i].Order = pos + 1
					snap.Tasks[i].UpdatedAt = now
					break
				}
			}
		}

		return nil
	})
}
