package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lista/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepo handles all user-related database operations.
type UserRepo struct {
	db           *sql.DB
	passwordCost int
	logger       *slog.Logger
}

// RegisterUser hashes the password and inserts a new user.
// A duplicate email yields ErrEmailTaken.
func (r *UserRepo) RegisterUser(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.passwordCost)
	if err != nil {
		r.logger.Warn("registration failed", "email", email, "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password) VALUES (?, ?, ?)`,
		name, email, string(hash),
	)
	if err != nil {
		r.logger.Warn("registration failed", "email", email, "error", err)
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert user '%s': %w", email, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user ID after insert: %w", err)
	}

	return r.GetUserByID(ctx, int(id))
}

// LoginUser returns the user whose email and password both match.
// Not finding one is not an error: the result is nil.
func (r *UserRepo) LoginUser(ctx context.Context, email, password string) (*models.User, error) {
	user := &models.User{}
	var hash string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, created_at FROM users WHERE email = ?`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Warn("login lookup failed", "email", email, "error", err)
		return nil, fmt.Errorf("failed to look up user '%s': %w", email, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, nil
	}
	if err != nil {
		r.logger.Warn("login comparison failed", "email", email, "error", err)
		return nil, fmt.Errorf("failed to verify password for '%s': %w", email, err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID, or nil if there is none
func (r *UserRepo) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, created_at FROM users WHERE id = ?`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes a user; tasks and preferences go with it (cascade)
func (r *UserRepo) DeleteUser(ctx context.Context, id int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return result.RowsAffected()
}
