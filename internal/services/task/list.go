// Package task holds the in-memory task list of the signed-in user.
//
// Every mutation goes to the store first and then reloads the whole list,
// so ids and defaults always come from the database.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/events"
	"github.com/thenoetrevino/lista/internal/models"
)

// Option configures a List
type Option func(*List)

// WithLogger sets the logger used for mutations
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// List is the task list of one user. A List built without a user is
// unbound: it stays empty and never touches the store.
type List struct {
	repo     database.TaskRepository
	user     *models.User
	notifier *events.Notifier
	logger   *slog.Logger

	mu    sync.RWMutex
	tasks []*models.Task
}

// NewList binds a list to user, which may be nil. It does not load
// anything; call FetchTasks.
func NewList(repo database.TaskRepository, user *models.User, opts ...Option) *List {
	l := &List{
		repo:     repo,
		user:     user,
		notifier: events.NewNotifier(),
		logger:   slog.Default(),
		tasks:    []*models.Task{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FetchTasks reloads the list from the store and notifies subscribers.
// An unbound list does nothing.
func (l *List) FetchTasks(ctx context.Context) error {
	if l.user == nil {
		return nil
	}

	tasks, err := l.repo.GetTasks(ctx, l.user.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}

	l.mu.Lock()
	l.tasks = tasks
	l.mu.Unlock()

	l.notifier.Notify(events.Event{Type: events.EventTasksChanged, UserID: l.user.ID})
	return nil
}

// AddTask stores a new, incomplete task for the bound user and refetches
func (l *List) AddTask(ctx context.Context, title, content string) error {
	if l.user == nil {
		return ErrNoUser
	}
	if err := validateTitle(title); err != nil {
		return err
	}

	t := &models.Task{
		UserID:    l.user.ID,
		Title:     title,
		Content:   content,
		Completed: false,
	}
	id, err := l.repo.AddTask(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	l.logger.Info("task added", "user_id", l.user.ID, "task_id", id)

	return l.FetchTasks(ctx)
}

// UpdateTask stores the current field values of t and refetches. t must
// belong to the bound user.
func (l *List) UpdateTask(ctx context.Context, t *models.Task) error {
	if l.user == nil {
		return ErrNoUser
	}
	if t == nil {
		return ErrNilTask
	}
	if !t.IsPersisted() {
		return fmt.Errorf("%w: %w", ErrTaskNotFound, database.ErrTaskNotPersisted)
	}
	if t.UserID == 0 {
		t.UserID = l.user.ID
	}
	if t.UserID != l.user.ID {
		return ErrTaskNotFound
	}
	if err := validateTitle(t.Title); err != nil {
		return err
	}

	affected, err := l.repo.UpdateTask(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", t.ID, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	l.logger.Info("task updated", "user_id", l.user.ID, "task_id", t.ID, "completed", t.Completed)

	return l.FetchTasks(ctx)
}

// DeleteTask removes one of the bound user's tasks and refetches
func (l *List) DeleteTask(ctx context.Context, id int) error {
	if l.user == nil {
		return ErrNoUser
	}

	existing, err := l.repo.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up task %d: %w", id, err)
	}
	if existing == nil || existing.UserID != l.user.ID {
		return ErrTaskNotFound
	}

	if _, err := l.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	l.logger.Info("task deleted", "user_id", l.user.ID, "task_id", id)

	return l.FetchTasks(ctx)
}

// ToggleTaskStatus flips t.Completed in place and saves it through UpdateTask
func (l *List) ToggleTaskStatus(ctx context.Context, t *models.Task) error {
	if t == nil {
		return ErrNilTask
	}
	t.Completed = !t.Completed
	return l.UpdateTask(ctx, t)
}

// Tasks returns copies of the loaded tasks in store order
func (l *List) Tasks() []*models.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*models.Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Task returns a copy of the loaded task with id, or nil
func (l *List) Task(id int) *models.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, t := range l.tasks {
		if t.ID == id {
			return t.Clone()
		}
	}
	return nil
}

// User returns the user the list is bound to, or nil
func (l *List) User() *models.User {
	return l.user
}

// Subscribe registers fn for list changes
func (l *List) Subscribe(fn events.Listener) func() {
	return l.notifier.Subscribe(fn)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
