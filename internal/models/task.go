package models

import "time"

// Task is a single entry in a user's task list.
// ID is zero until the task has been persisted.
type Task struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID lets output formatters print just the identifier in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// IsPersisted reports whether the store has assigned an ID
func (t *Task) IsPersisted() bool {
	return t.ID > 0
}

// Clone returns a copy that can be mutated without touching the original
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
