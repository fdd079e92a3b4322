package handlers

import (
	"context"
	"net/http"

	"github.com/codermarch/taskboard/internal/domain/task"
	"github.com/codermarch/taskboard/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type TaskService interface {
	List(ctx context.Context, userID, boardID string) ([]task.Task, error)
	Create(ctx context.Context, userID string, req task.CreateTaskRequest) (task.Task, error)
	Update(ctx context.Context, userID, taskID string, req task.UpdateTaskRequest) (task.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
	Reorder(ctx context.Context, userID string, taskIDs []string) error
}

type TasksHandler struct {
	tasks TaskService
}

func NewTasksHandler(tasks TaskService) *TasksHandler {
	return &TasksHandler{tasks: tasks}
}

func (h *TasksHandler) ListTasks(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	// optional board scope
	boardID := ctx.Query("boardId")

	items, err := h.tasks.List(ctx.Request.Context(), userID, boardID)

	if err != nil {
		respondServiceError(ctx, err, "Could not list tasks")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *TasksHandler) CreateTask(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	var req task.CreateTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	t, err := h.tasks.Create(ctx.Request.Context(), userID, req)

	if err != nil {
		respondServiceError(ctx, err, "Could not create task")
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

func (h *TasksHandler) UpdateTask(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	var req task.UpdateTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	t, err := h.tasks.Update(ctx.Request.Context(), userID, ctx.Param("id"), req)

	if err != nil {
		respondServiceError(ctx, err, "Could not update task")
		return
	}

	ctx.JSON(http.StatusOK, t)
}

func (h *TasksHandler) DeleteTask(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	err := h.tasks.Delete(ctx.Request.Context(), userID, ctx.Param("id"))

	if err != nil {
		respondServiceError(ctx, err, "Could not delete task")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (h *TasksHandler) ReorderTasks(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	var req task.ReorderRequest

	if !BindJSON(ctx, &req) {
		return
	}

	err := h.tasks.Reorder(ctx.Request.Context(), userID, req.TaskIDs)

	if err != nil {
		respondServiceError(ctx, err, "Could not reorder tasks")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Tasks reordered successfully"})
}
