package handlers

import (
	"context"
	"net/http"

	"github.com/codermarch/taskboard/internal/domain/board"
	"github.com/codermarch/taskboard/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type BoardService interface {
	List(ctx context.Context, userID string) ([]board.Board, error)
	Create(ctx context.Context, userID, name string) (board.Board, error)
	Rename(ctx context.Context, userID, boardID, name string) (board.Board, error)
	Delete(ctx context.Context, userID, boardID string) error
}

type BoardsHandler struct {
	boards BoardService
}

func NewBoardsHandler(boards BoardService) *BoardsHandler {
	return &BoardsHandler{boards: boards}
}

func (h *BoardsHandler) ListBoards(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	items, err := h.boards.List(ctx.Request.Context(), userID)

	if err != nil {
		respondServiceError(ctx, err, "Could not list boards")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *BoardsHandler) CreateBoard(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	var req board.CreateBoardRequest

	if !BindJSON(ctx, &req) {
		return
	}

	b, err := h.boards.Create(ctx.Request.Context(), userID, req.Name)

	if err != nil {
		respondServiceError(ctx, err, "Could not create board")
		return
	}

	ctx.JSON(http.StatusCreated, b)
}

func (h *BoardsHandler) RenameBoard(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	var req board.RenameBoardRequest

	if !BindJSON(ctx, &req) {
		return
	}

	b, err := h.boards.Rename(ctx.Request.Context(), userID, ctx.Param("id"), req.Name)

	if err != nil {
		respondServiceError(ctx, err, "Could not rename board")
		return
	}

	ctx.JSON(http.StatusOK, b)
}

func (h *BoardsHandler) DeleteBoard(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	err := h.boards.Delete(ctx.Request.Context(), userID, ctx.Param("id"))

	if err != nil {
		respondServiceError(ctx, err, "Could not delete board")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}
