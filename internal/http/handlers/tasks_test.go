package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/codermarch/taskboard/internal/domain/board"
	"github.com/codermarch/taskboard/internal/domain/task"
	"github.com/codermarch/taskboard/internal/http/handlers"
)

type fakeTaskService struct {
	listFn    func(ctx context.Context, userID, boardID string) ([]task.Task, error)
	createFn  func(ctx context.Context, userID string, req task.CreateTaskRequest) (task.Task, error)
	updateFn  func(ctx context.Context, userID, taskID string, req task.UpdateTaskRequest) (task.Task, error)
	deleteFn  func(ctx context.Context, userID, taskID string) error
	reorderFn func(ctx context.Context, userID string, taskIDs []string) error
}

func (f *fakeTaskService) List(ctx context.Context, userID, boardID string) ([]task.Task, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID, boardID)
	}
	return nil, nil
}

func (f *fakeTaskService) Create(ctx context.Context, userID string, req task.CreateTaskRequest) (task.Task, error) {
	if f.createFn != nil {
		return f.createFn(ctx, userID, req)
	}
	return task.Task{}, nil
}

func (f *fakeTaskService) Update(ctx context.Context, userID, taskID string, req task.UpdateTaskRequest) (task.Task, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, userID, taskID, req)
	}
	return task.Task{}, nil
}

func (f *fakeTaskService) Delete(ctx context.Context, userID, taskID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, taskID)
	}
	return nil
}

func (f *fakeTaskService) Reorder(ctx context.Context, userID string, taskIDs []string) error {
	if f.reorderFn != nil {
		return f.reorderFn(ctx, userID, taskIDs)
	}
	return nil
}

func TestListTasksPassesBoardFilter(t *testing.T) {
	svc := &fakeTaskService{
		listFn: func(ctx context.Context, userID, boardID string) ([]task.Task, error) {
			if boardID != "b7" {
				t.Fatalf("got boardID %q, want b7", boardID)
			}

			return []task.Task{{ID: "t1", Title: "A", Order: 1}}, nil
		},
	}

	r := setupAuthedRouter(http.MethodGet, "/tasks", "u1", handlers.NewTasksHandler(svc).ListTasks)
	w := doJSON(r, http.MethodGet, "/tasks?boardId=b7", "")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Items []task.Task `json:"items"`
		Count int         `json:"count"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.Count != 1 || resp.Items[0].Title != "A" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateTaskHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createFn   func(ctx context.Context, userID string, req task.CreateTaskRequest) (task.Task, error)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"title":"A","boardId":"b1"}`,
			createFn: func(ctx context.Context, userID string, req task.CreateTaskRequest) (task.Task, error) {
				return task.Task{ID: "t1", Title: req.Title, BoardID: req.BoardID, UserID: userID, Order: 1}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{"boardId":"b1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing board id",
			body:       `{"title":"A"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "board not owned",
			body: `{"title":"A","boardId":"b1"}`,
			createFn: func(ctx context.Context, userID string, req task.CreateTaskRequest) (task.Task, error) {
				return task.Task{}, board.ErrNotFound
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeTaskService{createFn: tc.createFn}
			r := setupAuthedRouter(http.MethodPost, "/tasks", "u1", handlers.NewTasksHandler(svc).CreateTask)

			w := doJSON(r, http.MethodPost, "/tasks", tc.body)

			if w.Code != tc.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestUpdateTaskHandlerStatusValidation(t *testing.T) {
	svc := &fakeTaskService{}
	r := setupAuthedRouter(http.MethodPut, "/tasks/:id", "u1", handlers.NewTasksHandler(svc).UpdateTask)

	// binding rejects unknown status values before the service runs
	w := doJSON(r, http.MethodPut, "/tasks/t1", `{"status":"archived"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateTaskHandlerNotFound(t *testing.T) {
	svc := &fakeTaskService{
		updateFn: func(ctx context.Context, userID, taskID string, req task.UpdateTaskRequest) (task.Task, error) {
			return task.Task{}, task.ErrNotFound
		},
	}

	r := setupAuthedRouter(http.MethodPut, "/tasks/:id", "u1", handlers.NewTasksHandler(svc).UpdateTask)
	w := doJSON(r, http.MethodPut, "/tasks/t1", `{"title":"X"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestReorderTasksHandler(t *testing.T) {
	var gotIDs []string

	svc := &fakeTaskService{
		reorderFn: func(ctx context.Context, userID string, taskIDs []string) error {
			gotIDs = taskIDs
			return nil
		},
	}

	r := setupAuthedRouter(http.MethodPut, "/tasks/reorder", "u1", handlers.NewTasksHandler(svc).ReorderTasks)
	w := doJSON(r, http.MethodPut, "/tasks/reorder", `{"taskIds":["c","a","b"]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	if len(gotIDs) != 3 || gotIDs[0] != "c" {
		t.Fatalf("service got ids %v", gotIDs)
	}
}

func TestReorderTasksRequiresArray(t *testing.T) {
	r := setupAuthedRouter(http.MethodPut, "/tasks/reorder", "u1", handlers.NewTasksHandler(&fakeTaskService{}).ReorderTasks)
	w := doJSON(r, http.MethodPut, "/tasks/reorder", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}
