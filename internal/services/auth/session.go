// Package auth holds the session state: which user, if any, is signed in.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/events"
	"github.com/thenoetrevino/lista/internal/models"
)

// Session tracks the currently authenticated user and notifies subscribers
// whenever that changes.
type Session struct {
	repo     database.UserAuthenticator
	notifier *events.Notifier
	logger   *slog.Logger

	mu      sync.RWMutex
	current *models.User
}

// NewSession creates a signed-out session backed by repo
func NewSession(repo database.UserAuthenticator, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		repo:     repo,
		notifier: events.NewNotifier(),
		logger:   logger,
	}
}

// NormalizeEmail trims and lower-cases an address before it reaches the store
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login signs in the user matching email and password. It returns false and
// leaves the session untouched when there is no match or the store fails.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		s.logger.Info("login rejected", "reason", "missing credentials")
		return false
	}

	user, err := s.repo.LoginUser(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", "email", email, "error", err)
		return false
	}
	if user == nil {
		s.logger.Info("login rejected", "email", email, "reason", "no matching account")
		return false
	}

	s.setUser(user)
	s.logger.Info("user logged in", "user_id", user.ID)
	return true
}

// Register creates an account and signs it in. Duplicate emails, blank
// fields and store failures all return false.
func (s *Session) Register(ctx context.Context, name, email, password string) bool {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if err := validateRegistration(name, email, password); err != nil {
		s.logger.Info("registration rejected", "email", email, "error", err)
		return false
	}

	user, err := s.repo.RegisterUser(ctx, name, email, password)
	if err != nil {
		s.logger.Warn("registration failed", "email", email, "error", err)
		return false
	}
	if user == nil {
		return false
	}

	s.setUser(user)
	s.logger.Info("user registered", "user_id", user.ID)
	return true
}

// Logout clears the current user and notifies, even if nobody was signed in
func (s *Session) Logout() {
	s.setUser(nil)
}

// CurrentUser returns the signed-in user or nil
func (s *Session) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated reports whether a user is signed in
func (s *Session) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// Subscribe registers fn for session changes
func (s *Session) Subscribe(fn events.Listener) func() {
	return s.notifier.Subscribe(fn)
}

func (s *Session) setUser(user *models.User) {
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	userID := 0
	if user != nil {
		userID = user.ID
	}
	s.notifier.Notify(events.Event{Type: events.EventSessionChanged, UserID: userID})
}

func validateRegistration(name, email, password string) error {
	if name == "" {
		return ErrEmptyName
	}
	if email == "" {
		return ErrEmptyEmail
	}
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}
