package file_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/codermarch/taskboard/internal/domain/board"
	"github.com/codermarch/taskboard/internal/domain/task"
	"github.com/codermarch/taskboard/internal/domain/user"
	"github.com/codermarch/taskboard/internal/store"
	"github.com/codermarch/taskboard/internal/store/file"
)

func TestLoadInitializesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := file.New(path)

	snap, err := s.Load(context.Background())

	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(snap.Users) != 0 || len(snap.Boards) != 0 || len(snap.Tasks) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}

	// the empty snapshot must be persisted before Load returns
	data, err := os.ReadFile(path)

	if err != nil {
		t.Fatalf("snapshot file was not created: %v", err)
	}

	for _, key := range []string{`"users"`, `"boards"`, `"tasks"`} {
		if !bytes.Contains(data, []byte(key)) {
			t.Fatalf("persisted snapshot missing %s: %s", key, data)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := file.New(path)
	ctx := context.Background()

	due := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	snap := store.Snapshot{
		Users: []user.User{{
			ID:           "u1",
			Email:        "alice@example.com",
			PasswordHash: "$2a$12$fakehash",
			Name:         "Alice",
			CreatedAt:    now,
		}},
		Boards: []board.Board{{
			ID:        "b1",
			Name:      "Work",
			UserID:    "u1",
			CreatedAt: now,
			UpdatedAt: now,
		}},
		Tasks: []task.Task{{
			ID:          "t1",
			Title:       "A",
			Description: "",
			Status:      task.StatusPending,
			DueDate:     &due,
			BoardID:     "b1",
			UserID:      "u1",
			Order:       1,
			CreatedAt:   now,
			UpdatedAt:   now,
		}},
	}

	err := s.Save(ctx, snap)

	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)

	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.Users[0] != snap.Users[0] {
		t.Fatalf("user did not round-trip: got %+v want %+v", got.Users[0], snap.Users[0])
	}

	if got.Boards[0] != snap.Boards[0] {
		t.Fatalf("board did not round-trip: got %+v want %+v", got.Boards[0], snap.Boards[0])
	}

	gotTask := got.Tasks[0]

	if gotTask.DueDate == nil || !gotTask.DueDate.Equal(due) {
		t.Fatalf("dueDate did not round-trip: %+v", gotTask.DueDate)
	}

	gotTask.DueDate = snap.Tasks[0].DueDate

	if gotTask != snap.Tasks[0] {
		t.Fatalf("task did not round-trip: got %+v want %+v", gotTask, snap.Tasks[0])
	}
}

func TestSaveOfLoadIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := file.New(path)
	ctx := context.Background()

	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	err := s.Save(ctx, store.Snapshot{
		Users:  []user.User{{ID: "u1", Email: "a@example.com", Name: "A", CreatedAt: now}},
		Boards: []board.Board{},
		Tasks:  []task.Task{},
	})

	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	before, err := os.ReadFile(path)

	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	snap, err := s.Load(ctx)

	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	err = s.Save(ctx, snap)

	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	after, err := os.ReadFile(path)

	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if !bytes.Equal(before, after) {
		t.Fatalf("save(load()) changed the persisted representation:\nbefore: %s\nafter: %s", before, after)
	}
}
