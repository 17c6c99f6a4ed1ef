package task

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/events"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/services/auth"
	"github.com/thenoetrevino/lista/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupList(t *testing.T) (*List, *database.Repository, *models.User) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	user := testutil.CreateTestUser(t, repo, "Alice", "a@x.com", "secret")
	return NewList(repo, user), repo, user
}

func countEvents(l *List) *int {
	n := 0
	l.Subscribe(func(events.Event) { n++ })
	return &n
}

// brokenTasks fails every read and write
type brokenTasks struct{}

func (brokenTasks) GetTasks(context.Context, int) ([]*models.Task, error) {
	return nil, errors.New("disk I/O error")
}
func (brokenTasks) GetTask(context.Context, int) (*models.Task, error) {
	return nil, errors.New("disk I/O error")
}
func (brokenTasks) AddTask(context.Context, *models.Task) (int, error) {
	return 0, errors.New("disk I/O error")
}
func (brokenTasks) UpdateTask(context.Context, *models.Task) (int64, error) {
	return 0, errors.New("disk I/O error")
}
func (brokenTasks) DeleteTask(context.Context, int) (int64, error) {
	return 0, errors.New("disk I/O error")
}

// ============================================================================
// UNBOUND LIST
// ============================================================================

func TestUnboundList(t *testing.T) {
	l := NewList(brokenTasks{}, nil)
	n := countEvents(l)
	ctx := context.Background()

	assert.NoError(t, l.FetchTasks(ctx), "fetch is a no-op without a user")
	assert.Empty(t, l.Tasks())
	assert.NotNil(t, l.Tasks())
	assert.Nil(t, l.User())
	assert.Equal(t, 0, *n)

	assert.ErrorIs(t, l.AddTask(ctx, "x", ""), ErrNoUser)
	assert.ErrorIs(t, l.DeleteTask(ctx, 1), ErrNoUser)
	assert.ErrorIs(t, l.UpdateTask(ctx, &models.Task{ID: 1, Title: "x"}), ErrNoUser)
}

// ============================================================================
// ADD / FETCH
// ============================================================================

func TestAddTask(t *testing.T) {
	l, repo, user := setupList(t)
	n := countEvents(l)
	ctx := context.Background()

	require.NoError(t, l.AddTask(ctx, "Buy milk", "2%"))
	require.NoError(t, l.AddTask(ctx, "Walk dog", ""))

	tasks := l.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "2%", tasks[0].Content)
	assert.False(t, tasks[0].Completed)
	assert.Equal(t, user.ID, tasks[0].UserID)
	assert.True(t, tasks[0].IsPersisted())
	assert.Equal(t, "Walk dog", tasks[1].Title)
	assert.Equal(t, 2, *n, "each add notifies once through the refetch")

	stored, err := repo.GetTasks(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestAddTask_EachAppearsOnce(t *testing.T) {
	l, _, _ := setupList(t)
	ctx := context.Background()
	titles := []string{"a", "b", "c", "a"}

	for _, title := range titles {
		require.NoError(t, l.AddTask(ctx, title, "body "+title))
	}

	tasks := l.Tasks()
	require.Len(t, tasks, len(titles))
	seen := map[int]bool{}
	for i, task := range tasks {
		assert.Equal(t, titles[i], task.Title)
		assert.Equal(t, "body "+titles[i], task.Content)
		assert.False(t, task.Completed)
		assert.False(t, seen[task.ID], "task id %d appears twice", task.ID)
		seen[task.ID] = true
	}
}

func TestAddTask_Validation(t *testing.T) {
	l, _, _ := setupList(t)
	ctx := context.Background()

	assert.ErrorIs(t, l.AddTask(ctx, "", "x"), ErrEmptyTitle)
	assert.ErrorIs(t, l.AddTask(ctx, "   ", "x"), ErrEmptyTitle)
	assert.ErrorIs(t, l.AddTask(ctx, strings.Repeat("a", 256), ""), ErrTitleTooLong)
	assert.NoError(t, l.AddTask(ctx, strings.Repeat("a", 255), ""))
	assert.Len(t, l.Tasks(), 1)
}

func TestFetchTasks_OnlyOwnTasks(t *testing.T) {
	l, repo, _ := setupList(t)
	other := testutil.CreateTestUser(t, repo, "Bob", "b@x.com", "secret")
	testutil.CreateTestTask(t, repo, other.ID, "not mine", "")
	ctx := context.Background()

	require.NoError(t, l.AddTask(ctx, "mine", ""))

	tasks := l.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "mine", tasks[0].Title)
}

func TestFetchTasks_StoreError(t *testing.T) {
	l := NewList(brokenTasks{}, &models.User{ID: 1})
	n := countEvents(l)

	err := l.FetchTasks(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.Equal(t, 0, *n)
}

func TestTasksReturnsCopies(t *testing.T) {
	l, _, _ := setupList(t)
	require.NoError(t, l.AddTask(context.Background(), "original", ""))

	l.Tasks()[0].Title = "mutated"
	assert.Equal(t, "original", l.Tasks()[0].Title)
}

// ============================================================================
// UPDATE / TOGGLE / DELETE
// ============================================================================

func TestUpdateTask(t *testing.T) {
	l, repo, _ := setupList(t)
	ctx := context.Background()
	require.NoError(t, l.AddTask(ctx, "draft", ""))

	task := l.Tasks()[0]
	task.Title = "final"
	task.Content = "done"
	require.NoError(t, l.UpdateTask(ctx, task))

	assert.Equal(t, "final", l.Tasks()[0].Title)
	stored, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "done", stored.Content)
}

func TestUpdateTask_Rejects(t *testing.T) {
	l, repo, _ := setupList(t)
	other := testutil.CreateTestUser(t, repo, "Bob", "b@x.com", "secret")
	otherID := testutil.CreateTestTask(t, repo, other.ID, "bob's", "")
	ctx := context.Background()

	assert.ErrorIs(t, l.UpdateTask(ctx, nil), ErrNilTask)
	assert.ErrorIs(t, l.UpdateTask(ctx, &models.Task{Title: "x"}), ErrTaskNotFound)
	assert.ErrorIs(t, l.UpdateTask(ctx, &models.Task{ID: otherID, UserID: other.ID, Title: "x"}), ErrTaskNotFound)
	assert.ErrorIs(t, l.UpdateTask(ctx, &models.Task{ID: 999, Title: "x"}), ErrTaskNotFound)

	require.NoError(t, l.AddTask(ctx, "mine", ""))
	task := l.Tasks()[0]
	task.Title = ""
	assert.ErrorIs(t, l.UpdateTask(ctx, task), ErrEmptyTitle)
}

func TestToggleTaskStatus_Involution(t *testing.T) {
	l, repo, user := setupList(t)
	ctx := context.Background()
	require.NoError(t, l.AddTask(ctx, "flip me", ""))
	task := l.Tasks()[0]

	require.NoError(t, l.ToggleTaskStatus(ctx, task))
	assert.True(t, task.Completed, "toggle flips the caller's object in place")
	stored, err := repo.GetTasks(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored[0].Completed)
	assert.True(t, l.Tasks()[0].Completed)

	require.NoError(t, l.ToggleTaskStatus(ctx, task))
	assert.False(t, task.Completed)
	stored, err = repo.GetTasks(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored[0].Completed)
}

func TestToggleTaskStatus_Nil(t *testing.T) {
	l, _, _ := setupList(t)
	assert.ErrorIs(t, l.ToggleTaskStatus(context.Background(), nil), ErrNilTask)
}

func TestDeleteTask(t *testing.T) {
	l, repo, user := setupList(t)
	ctx := context.Background()
	require.NoError(t, l.AddTask(ctx, "a", ""))
	require.NoError(t, l.AddTask(ctx, "b", ""))
	first := l.Tasks()[0]

	require.NoError(t, l.DeleteTask(ctx, first.ID))

	tasks := l.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Title)
	assert.Nil(t, l.Task(first.ID))
	stored, err := repo.GetTasks(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestDeleteTask_NotOwned(t *testing.T) {
	l, repo, _ := setupList(t)
	other := testutil.CreateTestUser(t, repo, "Bob", "b@x.com", "secret")
	otherID := testutil.CreateTestTask(t, repo, other.ID, "bob's", "")
	ctx := context.Background()

	assert.ErrorIs(t, l.DeleteTask(ctx, otherID), ErrTaskNotFound)
	assert.ErrorIs(t, l.DeleteTask(ctx, 12345), ErrTaskNotFound)

	stored, err := repo.GetTask(ctx, otherID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestMutationErrorsPropagate(t *testing.T) {
	l := NewList(brokenTasks{}, &models.User{ID: 1})
	ctx := context.Background()

	assert.ErrorContains(t, l.AddTask(ctx, "x", ""), "disk I/O error")
	assert.ErrorContains(t, l.DeleteTask(ctx, 1), "disk I/O error")
	assert.ErrorContains(t, l.UpdateTask(ctx, &models.Task{ID: 1, Title: "x"}), "disk I/O error")
}

func TestTaskLookup(t *testing.T) {
	l, _, _ := setupList(t)
	require.NoError(t, l.AddTask(context.Background(), "find me", ""))
	id := l.Tasks()[0].ID

	found := l.Task(id)
	require.NotNil(t, found)
	assert.Equal(t, "find me", found.Title)
	assert.Nil(t, l.Task(id+1))
}

// ============================================================================
// END TO END
// ============================================================================

func TestRegisterLoginAddToggleDelete(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	ctx := context.Background()

	session := auth.NewSession(repo, nil)
	require.True(t, session.Register(ctx, "Alice", "a@x.com", "secret"))
	registered := session.CurrentUser()
	assert.Equal(t, 1, registered.ID)

	session.Logout()
	require.True(t, session.Login(ctx, "a@x.com", "secret"))
	assert.Equal(t, registered.ID, session.CurrentUser().ID)

	list := NewList(repo, session.CurrentUser())
	require.NoError(t, list.FetchTasks(ctx))
	require.NoError(t, list.AddTask(ctx, "Buy milk", "2%"))

	stored, err := repo.GetTasks(ctx, registered.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Buy milk", stored[0].Title)
	assert.False(t, stored[0].Completed)

	task := list.Tasks()[0]
	require.NoError(t, list.ToggleTaskStatus(ctx, task))
	stored, err = repo.GetTasks(ctx, registered.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Completed)

	require.NoError(t, list.DeleteTask(ctx, task.ID))
	stored, err = repo.GetTasks(ctx, registered.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Empty(t, list.Tasks())
}
