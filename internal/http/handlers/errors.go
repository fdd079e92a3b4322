package handlers

import (
	"errors"

	"github.com/codermarch/taskboard/internal/domain/board"
	"github.com/codermarch/taskboard/internal/domain/task"
	"github.com/codermarch/taskboard/internal/domain/user"
	"github.com/codermarch/taskboard/internal/service"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps the core error taxonomy onto status codes.
// Anything unrecognized is a storage/internal failure: the request
// fails, the process keeps serving.
func respondServiceError(ctx *gin.Context, err error, fallback string) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		RespondBadRequest(ctx, validationErr.Error(), nil)
	case errors.Is(err, board.ErrNotFound):
		RespondNotFound(ctx, "Board not found")
	case errors.Is(err, task.ErrNotFound):
		RespondNotFound(ctx, "Task not found")
	case errors.Is(err, user.ErrEmailTaken):
		RespondConflict(ctx, "email_taken", "Email is already in use.")
	case errors.Is(err, user.ErrInvalidCredentials):
		RespondUnauthorized(ctx, "invalid_credentials", "Email or password is incorrect.")
	default:
		RespondInternal(ctx, fallback)
	}
}
