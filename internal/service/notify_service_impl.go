package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deyby01/agenda/internal/domain"
	"github.com/deyby01/agenda/internal/engine"
	"github.com/deyby01/agenda/internal/repository"
	"github.com/google/uuid"
)

type notifyService struct {
	tasks         repository.TaskRepo
	projects      repository.ProjectRepo
	notifications repository.NotificationRepo
}

func NewNotifyService(
	tasks repository.TaskRepo,
	projects repository.ProjectRepo,
	notifications repository.NotificationRepo,
) NotifyService {
	return &notifyService{
		tasks:         tasks,
		projects:      projects,
		notifications: notifications,
	}
}

func (s *notifyService) EvaluateTask(ctx context.Context, ownerID string, task domain.Task, score engine.TaskPriorityScore, now time.Time) (*domain.Notification, error) {
	if !score.IsCritical() {
		return nil, nil
	}

	key := repository.LookbackKey{
		OwnerID:  ownerID,
		Kind:     domain.NotifyTask,
		Severity: domain.SeverityCritical,
		TaskID:   &task.ID,
	}

	// Same calendar day first, then the trailing 24 hours. A lookback
	// failure propagates: better to skip this run than to double-notify.
	exists, err := s.notifications.ExistsOnDay(ctx, key, now)
	if err != nil {
		return nil, fmt.Errorf("task notification lookback: %w", err)
	}
	if exists {
		return nil, nil
	}
	exists, err = s.notifications.ExistsSince(ctx, key, now.Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("task notification lookback: %w", err)
	}
	if exists {
		return nil, nil
	}

	reasonsText := "Priority analysis"
	if len(score.Reasons) > 0 {
		reasonsText = strings.Join(score.Reasons, ", ")
	}

	n := &domain.Notification{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		Title:    fmt.Sprintf("Critical task: %s", task.Title),
		Message: fmt.Sprintf("Task %q needs immediate attention. Reasons: %s. Priority score: %.1f/10",
			task.Title, reasonsText, score.Score),
		Kind:     domain.NotifyTask,
		Severity: domain.SeverityCritical,
		TaskID:   &task.ID,
		Context: map[string]any{
			"priority_score": score.Score,
			"priority_level": string(score.Priority),
			"urgency_level":  string(score.Urgency),
			"reasons":        score.Reasons,
			"generated_by":   "prioritization_engine",
		},
		CreatedAt: now.UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating task notification: %w", err)
	}
	return n, nil
}

func (s *notifyService) EvaluateProject(ctx context.Context, ownerID string, project domain.Project, progress engine.ProjectProgress, now time.Time) (*domain.Notification, error) {
	if progress.Health != domain.HealthCritical {
		return nil, nil
	}

	key := repository.LookbackKey{
		OwnerID:   ownerID,
		Kind:      domain.NotifyProject,
		Severity:  domain.SeverityCritical,
		ProjectID: &project.ID,
	}
	exists, err := s.notifications.ExistsOnDay(ctx, key, now)
	if err != nil {
		return nil, fmt.Errorf("project notification lookback: %w", err)
	}
	if exists {
		return nil, nil
	}

	n := &domain.Notification{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Title:   fmt.Sprintf("Critical project: %s", project.Name),
		Message: fmt.Sprintf("Project %q is in critical health. Progress: %.1f%%. Needs immediate review to avoid delays.",
			project.Name, progress.CompletionPct),
		Kind:      domain.NotifyProject,
		Severity:  domain.SeverityCritical,
		ProjectID: &project.ID,
		Context: map[string]any{
			"health_status":         string(progress.Health),
			"completion_percentage": progress.CompletionPct,
			"velocity":              progress.Velocity,
			"total_tasks":           progress.TotalTasks,
			"generated_by":          "progress_calculator",
		},
		CreatedAt: now.UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating project notification: %w", err)
	}
	return n, nil
}

// EvaluateAll is the single entry point the CLI calls once per run:
// prioritize every pending task, emit for the critical ones, assess
// every project, emit for the critically unhealthy ones.
func (s *notifyService) EvaluateAll(ctx context.Context, ownerID string, now time.Time) ([]*domain.Notification, error) {
	var created []*domain.Notification

	scorable, err := s.tasks.ListScorable(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	tcs := make([]engine.TaskContext, 0, len(scorable))
	taskByID := make(map[string]domain.Task, len(scorable))
	for _, st := range scorable {
		tcs = append(tcs, engine.TaskContext{
			Task:             st.Task,
			Project:          st.Project,
			ProjectTaskCount: st.ProjectTaskCount,
		})
		taskByID[st.Task.ID] = st.Task
	}

	scores, err := engine.Prioritize(tcs, now)
	if err != nil {
		return nil, fmt.Errorf("prioritizing tasks: %w", err)
	}
	for _, score := range scores {
		if !score.IsCritical() {
			continue
		}
		n, err := s.EvaluateTask(ctx, ownerID, taskByID[score.TaskID], score, now)
		if err != nil {
			return created, err
		}
		if n != nil {
			created = append(created, n)
		}
	}

	projects, err := s.projects.ListByOwner(ctx, ownerID)
	if err != nil {
		return created, fmt.Errorf("loading projects: %w", err)
	}
	for _, p := range projects {
		projectTasks, err := s.tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return created, fmt.Errorf("loading tasks of project %s: %w", p.ID, err)
		}
		tasks := make([]domain.Task, 0, len(projectTasks))
		for _, t := range projectTasks {
			tasks = append(tasks, *t)
		}
		progress := engine.CalculateProgress(*p, tasks, now)
		n, err := s.EvaluateProject(ctx, ownerID, *p, progress, now)
		if err != nil {
			return created, err
		}
		if n != nil {
			created = append(created, n)
		}
	}

	return created, nil
}

func (s *notifyService) List(ctx context.Context, ownerID string, unreadOnly bool) ([]*domain.Notification, error) {
	return s.notifications.ListByOwner(ctx, ownerID, unreadOnly)
}

func (s *notifyService) MarkRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}

func (s *notifyService) MarkActioned(ctx context.Context, id string) error {
	return s.notifications.MarkActioned(ctx, id)
}
