package cli

import (
	"testing"

	"github.com/thenoetrevino/lista/internal/app"
	clipkg "github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/logging"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/testutil"
)

// Credentials of the account created by SetupCLITestWithUser
const (
	TestEmail    = "alice@example.com"
	TestPassword = "secret"
)

// SetupCLITest creates an in-memory DB and returns both the repository and
// an App instance. It lives in its own package so that service tests can
// import testutil without pulling in the CLI.
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	t.Setenv(clipkg.EnvEmail, "")
	t.Setenv(clipkg.EnvPassword, "")
	t.Setenv(clipkg.EnvNoPrompt, "1")

	repo := testutil.SetupTestRepo(t)
	appInstance := app.New(repo, app.WithLogger(logging.Discard()))
	t.Cleanup(func() { _ = appInstance.Close() })

	return repo, appInstance
}

// SetupCLITestWithUser is SetupCLITest plus a registered account
func SetupCLITestWithUser(t *testing.T) (*database.Repository, *app.App, *models.User) {
	t.Helper()
	repo, appInstance := SetupCLITest(t)
	user := testutil.CreateTestUser(t, repo, "Alice", TestEmail, TestPassword)
	return repo, appInstance, user
}

// AuthArgs returns the credential flags for the test account followed by extra
func AuthArgs(extra ...string) []string {
	return append([]string{"--email", TestEmail, "--password", TestPassword}, extra...)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, repo database.TaskWriter, userID int, title string) int {
	t.Helper()
	return testutil.CreateTestTask(t, repo, userID, title, "")
}
