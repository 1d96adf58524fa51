package service

import (
	"context"
	"testing"
	"time"

	"github.com/deyby01/agenda/internal/domain"
	"github.com/deyby01/agenda/internal/engine"
	"github.com/deyby01/agenda/internal/repository"
	"github.com/deyby01/agenda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifyFixture(t *testing.T) (NotifyService, *repository.SQLiteTaskRepo, *repository.SQLiteProjectRepo, *repository.SQLiteNotificationRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)
	svc := NewNotifyService(taskRepo, projectRepo, notificationRepo)
	return svc, taskRepo, projectRepo, notificationRepo
}

func criticalScore(t *testing.T, task domain.Task, now time.Time) engine.TaskPriorityScore {
	t.Helper()
	score, err := engine.Score(engine.TaskContext{Task: task}, now)
	require.NoError(t, err)
	require.True(t, score.IsCritical(), "fixture task must score critical")
	return score
}

func TestEvaluateTask_CreatesAndSuppressesSameDay(t *testing.T) {
	svc, taskRepo, _, _ := newNotifyFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask("Pay invoice",
		testutil.WithDueDate(now.AddDate(0, 0, -2)),
		testutil.WithCreatedAt(now.AddDate(0, 0, -10)),
	)
	require.NoError(t, taskRepo.Create(ctx, task))
	score := criticalScore(t, *task, now)

	n, err := svc.EvaluateTask(ctx, testutil.TestOwner, *task, score, now)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "Critical task: Pay invoice", n.Title)
	assert.Equal(t, `Task "Pay invoice" needs immediate attention. Reasons: Overdue by 2 days, Old task (more than 7 days). Priority score: 11.0/10`, n.Message)
	assert.Equal(t, domain.NotifyTask, n.Kind)
	assert.Equal(t, domain.SeverityCritical, n.Severity)
	require.NotNil(t, n.TaskID)
	assert.Equal(t, task.ID, *n.TaskID)
	assert.Equal(t, "prioritization_engine", n.Context["generated_by"])
	assert.Equal(t, 11.0, n.Context["priority_score"])

	// Second evaluation the same day is suppressed.
	again, err := svc.EvaluateTask(ctx, testutil.TestOwner, *task, score, now.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestEvaluateTask_SuppressedAcrossMidnightWithin24h(t *testing.T) {
	svc, taskRepo, _, _ := newNotifyFixture(t)
	ctx := context.Background()
	lateNight := time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC)

	task := testutil.NewTestTask("Night owl",
		testutil.WithDueDate(lateNight.AddDate(0, 0, -1)),
		testutil.WithCreatedAt(lateNight.AddDate(0, 0, -10)),
	)
	require.NoError(t, taskRepo.Create(ctx, task))
	score := criticalScore(t, *task, lateNight)

	n, err := svc.EvaluateTask(ctx, testutil.TestOwner, *task, score, lateNight)
	require.NoError(t, err)
	require.NotNil(t, n)

	// Next calendar day but only six hours later: the trailing-24h
	// window still suppresses it.
	nextMorning := time.Date(2025, 3, 16, 5, 30, 0, 0, time.UTC)
	again, err := svc.EvaluateTask(ctx, testutil.TestOwner, *task, score, nextMorning)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestEvaluateTask_FiresAgainAfterWindows(t *testing.T) {
	svc, taskRepo, _, _ := newNotifyFixture(t)
	ctx := context.Background()
	day1 := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask("Lingering",
		testutil.WithDueDate(day1.AddDate(0, 0, -1)),
		testutil.WithCreatedAt(day1.AddDate(0, 0, -10)),
	)
	require.NoError(t, taskRepo.Create(ctx, task))
	score := criticalScore(t, *task, day1)

	first, err := svc.EvaluateTask(ctx, testutil.TestOwner, *task, score, day1)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Next day, more than 24 hours later: both windows are clear.
	day2 := time.Date(2025, 3, 16, 11, 0, 0, 0, time.UTC)
	second, err := svc.EvaluateTask(ctx, testutil.TestOwner, *task, score, day2)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEvaluateTask_NonCriticalIsNoOp(t *testing.T) {
	svc, taskRepo, _, notificationRepo := newNotifyFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask("Someday", testutil.WithCreatedAt(now))
	require.NoError(t, taskRepo.Create(ctx, task))
	score, err := engine.Score(engine.TaskContext{Task: *task}, now)
	require.NoError(t, err)
	require.False(t, score.IsCritical())

	n, err := svc.EvaluateTask(ctx, testutil.TestOwner, *task, score, now)
	require.NoError(t, err)
	assert.Nil(t, n)

	count, err := notificationRepo.CountUnread(ctx, testutil.TestOwner)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEvaluateProject_CriticalHealthNotifiesOncePerDay(t *testing.T) {
	svc, taskRepo, projectRepo, _ := newNotifyFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	project := testutil.NewTestProject("Stalled")
	require.NoError(t, projectRepo.Create(ctx, project))
	task := testutil.NewTestTask("only pending", testutil.WithProject(project.ID))
	require.NoError(t, taskRepo.Create(ctx, task))

	progress := engine.CalculateProgress(*project, []domain.Task{*task}, now)
	require.Equal(t, domain.HealthCritical, progress.Health)

	n, err := svc.EvaluateProject(ctx, testutil.TestOwner, *project, progress, now)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "Critical project: Stalled", n.Title)
	assert.Equal(t, `Project "Stalled" is in critical health. Progress: 0.0%. Needs immediate review to avoid delays.`, n.Message)
	assert.Equal(t, domain.NotifyProject, n.Kind)
	require.NotNil(t, n.ProjectID)
	assert.Equal(t, project.ID, *n.ProjectID)
	assert.Equal(t, "progress_calculator", n.Context["generated_by"])

	again, err := svc.EvaluateProject(ctx, testutil.TestOwner, *project, progress, now.Add(5*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, again)

	// A new calendar day clears the project window.
	nextDay, err := svc.EvaluateProject(ctx, testutil.TestOwner, *project, progress, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.NotNil(t, nextDay)
}

func TestEvaluateProject_HealthyProjectIsNoOp(t *testing.T) {
	svc, _, projectRepo, _ := newNotifyFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	project := testutil.NewTestProject("Cruising")
	require.NoError(t, projectRepo.Create(ctx, project))

	done := testutil.NewTestTask("done", testutil.WithCompleted())
	progress := engine.CalculateProgress(*project, []domain.Task{*done}, now)
	require.Equal(t, domain.HealthExcellent, progress.Health)

	n, err := svc.EvaluateProject(ctx, testutil.TestOwner, *project, progress, now)
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestEvaluateAll_SweepThenQuiet(t *testing.T) {
	svc, taskRepo, projectRepo, notificationRepo := newNotifyFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	// A stalled project whose only task is overdue: one task alert and
	// one project alert.
	project := testutil.NewTestProject("Stalled")
	require.NoError(t, projectRepo.Create(ctx, project))
	overdue := testutil.NewTestTask("Overdue task",
		testutil.WithProject(project.ID),
		testutil.WithDueDate(now.AddDate(0, 0, -3)),
		testutil.WithCreatedAt(now.AddDate(0, 0, -10)),
	)
	require.NoError(t, taskRepo.Create(ctx, overdue))

	// A calm task that should produce nothing.
	calm := testutil.NewTestTask("Calm task",
		testutil.WithDueDate(now.AddDate(0, 0, 10)),
		testutil.WithCreatedAt(now),
	)
	require.NoError(t, taskRepo.Create(ctx, calm))

	created, err := svc.EvaluateAll(ctx, testutil.TestOwner, now)
	require.NoError(t, err)
	require.Len(t, created, 2)

	kinds := map[domain.NotificationKind]int{}
	for _, n := range created {
		kinds[n.Kind]++
	}
	assert.Equal(t, 1, kinds[domain.NotifyTask])
	assert.Equal(t, 1, kinds[domain.NotifyProject])

	// Re-running the sweep the same day emits nothing new.
	again, err := svc.EvaluateAll(ctx, testutil.TestOwner, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, again)

	count, err := notificationRepo.CountUnread(ctx, testutil.TestOwner)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
