package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/logging"
	"github.com/thenoetrevino/lista/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// SetupTestDB creates a migrated in-memory database that is closed when the test ends
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo wraps SetupTestDB in a Repository using the cheapest bcrypt cost
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t),
		database.WithPasswordCost(bcrypt.MinCost),
		database.WithLogger(logging.Discard()),
	)
}

// CreateTestUser registers a user directly through the store
func CreateTestUser(t *testing.T, repo database.UserAuthenticator, name, email, password string) *models.User {
	t.Helper()
	user, err := repo.RegisterUser(context.Background(), name, email, password)
	if err != nil {
		t.Fatalf("Failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateTestTask inserts a task for userID and returns its ID
func CreateTestTask(t *testing.T, repo database.TaskWriter, userID int, title, content string) int {
	t.Helper()
	id, err := repo.AddTask(context.Background(), &models.Task{UserID: userID, Title: title, Content: content})
	if err != nil {
		t.Fatalf("Failed to create test task %q: %v", title, err)
	}
	return id
}
