package database

import (
	"database/sql"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*UserRepo
	*TaskRepo
	*PreferencesRepo

	db *sql.DB
}

// Option is a functional option for configuring a Repository
type Option func(*repoConfig)

type repoConfig struct {
	passwordCost int
	logger       *slog.Logger
}

// WithPasswordCost sets the bcrypt cost used when registering users
func WithPasswordCost(cost int) Option {
	return func(cfg *repoConfig) {
		cfg.passwordCost = cost
	}
}

// WithLogger sets the logger used for store diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *repoConfig) {
		cfg.logger = logger
	}
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, opts ...Option) *Repository {
	cfg := repoConfig{
		passwordCost: bcrypt.DefaultCost,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.passwordCost < bcrypt.MinCost || cfg.passwordCost > bcrypt.MaxCost {
		cfg.passwordCost = bcrypt.DefaultCost
	}

	return &Repository{
		UserRepo:        &UserRepo{db: db, passwordCost: cfg.passwordCost, logger: cfg.logger},
		TaskRepo:        &TaskRepo{db: db},
		PreferencesRepo: &PreferencesRepo{db: db},
		db:              db,
	}
}

// DB exposes the underlying handle so the owner can close it
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close releases the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
