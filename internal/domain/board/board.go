package board

import (
	"errors"
	"time"
)

type Board struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Returned for a board that does not exist or belongs to someone else;
// the two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("board not found")

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

type RenameBoardRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}
