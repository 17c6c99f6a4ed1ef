package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/lista/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

// AddTask inserts a task and returns the ID the store assigned
func (r *TaskRepo) AddTask(ctx context.Context, task *models.Task) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, title, content, completed) VALUES (?, ?, ?, ?)`,
		task.UserID, task.Title, task.Content, task.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task '%s': %w", task.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get task ID after insert: %w", err)
	}
	return int(id), nil
}

// GetTasks retrieves every task for a user in insertion order
func (r *TaskRepo) GetTasks(ctx context.Context, userID int) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, content, completed, created_at
		FROM tasks WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for user %d: %w", userID, err)
	}
	defer closeRows(rows)

	tasks := make([]*models.Task, 0, 16)
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Content, &task.Completed, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// GetTask retrieves a single task, or nil if there is none
func (r *TaskRepo) GetTask(ctx context.Context, id int) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, content, completed, created_at FROM tasks WHERE id = ?`,
		id,
	).Scan(&task.ID, &task.UserID, &task.Title, &task.Content, &task.Completed, &task.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// UpdateTask replaces every field of the row matching task.ID and returns
// the number of rows affected
func (r *TaskRepo) UpdateTask(ctx context.Context, task *models.Task) (int64, error) {
	if !task.IsPersisted() {
		return 0, ErrTaskNotPersisted
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET user_id = ?, title = ?, content = ?, completed = ? WHERE id = ?`,
		task.UserID, task.Title, task.Content, task.Completed, task.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	return result.RowsAffected()
}

// DeleteTask removes a task and returns the number of rows affected
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return result.RowsAffected()
}
