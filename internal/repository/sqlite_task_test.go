package repository

import (
	"context"
	"testing"
	"time"

	"github.com/deyby01/agenda/internal/domain"
	"github.com/deyby01/agenda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	due := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("Write report", testutil.WithDueDate(due))
	task.Notes = "quarterly numbers"

	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, testutil.TestOwner, got.OwnerID)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "quarterly numbers", got.Notes)
	assert.False(t, got.Completed)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
	assert.Nil(t, got.ProjectID)
}

func TestSQLiteTaskRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteTaskRepo_ListByOwner(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	now := time.Now().UTC()
	first := testutil.NewTestTask("first", testutil.WithCreatedAt(now.Add(-2*time.Hour)))
	second := testutil.NewTestTask("second", testutil.WithCreatedAt(now.Add(-1*time.Hour)))
	other := testutil.NewTestTask("other", testutil.WithOwner("someone-else"))

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	tasks, err := repo.ListByOwner(ctx, testutil.TestOwner)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
}

func TestSQLiteTaskRepo_ListByProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	taskRepo := NewSQLiteTaskRepo(database)
	projectRepo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	project := testutil.NewTestProject("Launch")
	require.NoError(t, projectRepo.Create(ctx, project))

	inProject := testutil.NewTestTask("in project", testutil.WithProject(project.ID))
	loose := testutil.NewTestTask("loose")
	require.NoError(t, taskRepo.Create(ctx, inProject))
	require.NoError(t, taskRepo.Create(ctx, loose))

	tasks, err := taskRepo.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, inProject.ID, tasks[0].ID)

	count, err := taskRepo.CountByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteTaskRepo_ListScorable(t *testing.T) {
	database := testutil.NewTestDB(t)
	taskRepo := NewSQLiteTaskRepo(database)
	projectRepo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	end := time.Now().UTC().AddDate(0, 0, 10)
	project := testutil.NewTestProject("Launch", testutil.WithEstimatedEnd(end))
	require.NoError(t, projectRepo.Create(ctx, project))

	a := testutil.NewTestTask("a", testutil.WithProject(project.ID))
	b := testutil.NewTestTask("b", testutil.WithProject(project.ID), testutil.WithCompleted())
	loose := testutil.NewTestTask("loose")
	require.NoError(t, taskRepo.Create(ctx, a))
	require.NoError(t, taskRepo.Create(ctx, b))
	require.NoError(t, taskRepo.Create(ctx, loose))

	scorable, err := taskRepo.ListScorable(ctx, testutil.TestOwner)
	require.NoError(t, err)
	require.Len(t, scorable, 3)

	byID := make(map[string]ScorableTask, len(scorable))
	for _, st := range scorable {
		byID[st.Task.ID] = st
	}

	// Project tasks carry the project snapshot and its task count.
	require.NotNil(t, byID[a.ID].Project)
	assert.Equal(t, "Launch", byID[a.ID].Project.Name)
	assert.Equal(t, domain.ProjectInProgress, byID[a.ID].Project.Status)
	require.NotNil(t, byID[a.ID].Project.EstimatedEnd)
	assert.Equal(t, 2, byID[a.ID].ProjectTaskCount)

	// Completed tasks are still returned; filtering is the caller's job.
	assert.True(t, byID[b.ID].Task.Completed)

	// Tasks without a project have a nil snapshot.
	assert.Nil(t, byID[loose.ID].Project)
	assert.Zero(t, byID[loose.ID].ProjectTaskCount)
}

func TestSQLiteTaskRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("draft")
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "final"
	task.Notes = "reviewed"
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	task.DueDate = &due
	task.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "reviewed", got.Notes)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
}

func TestSQLiteTaskRepo_MarkCompleted(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("todo")
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.MarkCompleted(ctx, task.ID))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	err = repo.MarkCompleted(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteTaskRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("temp")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
