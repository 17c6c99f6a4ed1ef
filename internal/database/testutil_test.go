package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/models"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestRepo wraps a fresh in-memory database with the cheapest bcrypt cost
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t), WithPasswordCost(bcrypt.MinCost))
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "lista.db")
	db, err := InitDB(context.Background(), path)
	require.NoError(t, err, "Failed to open file database")
	return db, path
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, path string) *sql.DB {
	t.Helper()
	require.NoError(t, db.Close())

	reopened, err := InitDB(context.Background(), path)
	require.NoError(t, err, "Failed to reopen database")
	t.Cleanup(func() { _ = reopened.Close() })
	return reopened
}

// ============================================================================
// FIXTURES
// ============================================================================

// createTestUser registers a user and fails the test if that does not work
func createTestUser(t *testing.T, repo *Repository, name, email string) *models.User {
	t.Helper()
	user, err := repo.RegisterUser(context.Background(), name, email, "secret")
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

// createTestTask adds an incomplete task for a user and returns it with its ID
func createTestTask(t *testing.T, repo *Repository, userID int, title, content string) *models.Task {
	t.Helper()
	task := &models.Task{UserID: userID, Title: title, Content: content}
	id, err := repo.AddTask(context.Background(), task)
	require.NoError(t, err)
	task.ID = id
	return task
}

// countRows counts rows in a table matching a where clause
func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}
