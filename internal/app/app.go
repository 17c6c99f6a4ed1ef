package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/events"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/services/auth"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
	"github.com/thenoetrevino/lista/internal/services/theme"
)

// App holds the session, preferences and task list state and keeps them
// consistent with each other. It is the single entry point the
// presentation layer talks to.
type App struct {
	// Repository layer (direct database access)
	repo   database.DataStore
	logger *slog.Logger

	// State holders
	Session *auth.Session
	Theme   *theme.Theme

	mu      sync.Mutex
	tasks   *taskservice.List
	opCtx   context.Context
	lastErr error

	unsubscribe func()
}

// New creates an App with nobody signed in and an unbound task list.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{
		repo:    repo,
		logger:  cfg.logger,
		Session: auth.NewSession(repo, cfg.logger),
		Theme:   theme.NewTheme(repo, cfg.defaults, cfg.logger),
		tasks:   taskservice.NewList(repo, nil, taskservice.WithLogger(cfg.logger)),
	}
	a.unsubscribe = a.Session.Subscribe(a.onSessionChanged)
	return a
}

// Tasks returns the task list bound to the current user. The list is
// replaced on every session change, so don't hold on to it across logins.
func (a *App) Tasks() *taskservice.List {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tasks
}

// CurrentUser returns the signed-in user or nil
func (a *App) CurrentUser() *models.User {
	return a.Session.CurrentUser()
}

// Login signs in and, on success, rebinds the task list and loads the
// user's preferences. Rebind failures do not change the result; see LastError.
func (a *App) Login(ctx context.Context, email, password string) bool {
	return a.withContext(ctx, func() bool {
		return a.Session.Login(ctx, email, password)
	})
}

// Register creates an account and signs it in, like Login
func (a *App) Register(ctx context.Context, name, email, password string) bool {
	return a.withContext(ctx, func() bool {
		return a.Session.Register(ctx, name, email, password)
	})
}

// Logout signs out, unbinds the task list and resets the theme
func (a *App) Logout(ctx context.Context) {
	a.withContext(ctx, func() bool {
		a.Session.Logout()
		return true
	})
}

// DeleteAccount removes the signed-in user along with their tasks and
// preferences, then signs out.
func (a *App) DeleteAccount(ctx context.Context) error {
	user := a.CurrentUser()
	if user == nil {
		return ErrNotSignedIn
	}

	if _, err := a.repo.DeleteUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	a.logger.Info("account deleted", "user_id", user.ID)

	a.Logout(ctx)
	return a.LastError()
}

// LastError returns what went wrong while rebinding state after the most
// recent Login, Register or Logout, or nil.
func (a *App) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close detaches the app from its session. The repository is owned by
// the caller and stays open.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	return nil
}

func (a *App) withContext(ctx context.Context, fn func() bool) bool {
	a.mu.Lock()
	a.opCtx = ctx
	a.lastErr = nil
	a.mu.Unlock()

	ok := fn()

	a.mu.Lock()
	a.opCtx = nil
	a.mu.Unlock()
	return ok
}

func (a *App) currentContext() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.opCtx != nil {
		return a.opCtx
	}
	return context.Background()
}

// onSessionChanged rebuilds the state derived from the current user
func (a *App) onSessionChanged(events.Event) {
	ctx := a.currentContext()
	user := a.Session.CurrentUser()

	list := taskservice.NewList(a.repo, user, taskservice.WithLogger(a.logger))
	var errs []error
	if err := list.FetchTasks(ctx); err != nil {
		errs = append(errs, err)
	}

	if user != nil {
		if err := a.Theme.LoadPreferences(ctx, user); err != nil {
			errs = append(errs, err)
		}
	} else {
		a.Theme.Reset()
	}

	err := errors.Join(errs...)
	if err != nil {
		a.logger.Warn("failed to rebuild session state", "error", err)
	}

	a.mu.Lock()
	a.tasks = list
	a.lastErr = err
	a.mu.Unlock()
}
