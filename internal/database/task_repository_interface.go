package database

import (
	"context"

	"github.com/thenoetrevino/lista/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTasks(ctx context.Context, userID int) ([]*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	AddTask(ctx context.Context, task *models.Task) (int, error)
	UpdateTask(ctx context.Context, task *models.Task) (int64, error)
	DeleteTask(ctx context.Context, id int) (int64, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
