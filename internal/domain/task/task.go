package task

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	BoardID     string     `json:"boardId"`
	UserID      string     `json:"userId"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Same conflation as board.ErrNotFound: absent and not-owned look alike.
var ErrNotFound = errors.New("task not found")

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	BoardID     string     `json:"boardId" binding:"required"`
	DueDate     *time.Time `json:"dueDate"`
}

// Patch payload: nil pointers leave the stored value untouched.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Status      *Status    `json:"status" binding:"omitempty,oneof=pending completed"`
	DueDate     *time.Time `json:"dueDate"`
}

type ReorderRequest struct {
	TaskIDs []string `json:"taskIds" binding:"required"`
}
