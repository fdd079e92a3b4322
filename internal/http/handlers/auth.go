package handlers

import (
	"context"
	"net/http"

	"github.com/codermarch/taskboard/internal/domain/user"
	"github.com/gin-gonic/gin"
)

// Consumer-side interface so tests can fake the auth service.
type Authenticator interface {
	Register(ctx context.Context, req user.RegisterRequest) (user.Public, error)
	Login(ctx context.Context, req user.LoginRequest) (user.Public, string, error)
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req user.RegisterRequest

	if !BindJSON(ctx, &req) {
		return
	}

	u, err := h.auth.Register(ctx.Request.Context(), req)

	if err != nil {
		respondServiceError(ctx, err, "Could not create user")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    u,
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req user.LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	u, token, err := h.auth.Login(ctx.Request.Context(), req)

	if err != nil {
		respondServiceError(ctx, err, "Could not log in")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    u,
		"token":   token,
	})
}
