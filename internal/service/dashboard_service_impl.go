package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/app"
	"github.com/deyby01/agenda/internal/domain"
	"github.com/deyby01/agenda/internal/engine"
	"github.com/deyby01/agenda/internal/repository"
)

type dashboardService struct {
	tasks         repository.TaskRepo
	projects      repository.ProjectRepo
	notifications repository.NotificationRepo
}

func NewDashboardService(
	tasks repository.TaskRepo,
	projects repository.ProjectRepo,
	notifications repository.NotificationRepo,
) DashboardService {
	return &dashboardService{
		tasks:         tasks,
		projects:      projects,
		notifications: notifications,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	resp := &app.DashboardResponse{GeneratedAt: now}

	scorable, err := s.tasks.ListScorable(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	tcs := make([]engine.TaskContext, 0, len(scorable))
	byID := make(map[string]repository.ScorableTask, len(scorable))
	for _, st := range scorable {
		tcs = append(tcs, engine.TaskContext{
			Task:             st.Task,
			Project:          st.Project,
			ProjectTaskCount: st.ProjectTaskCount,
		})
		byID[st.Task.ID] = st
	}

	scores, err := engine.Prioritize(tcs, now)
	if err != nil {
		return nil, fmt.Errorf("prioritizing tasks: %w", err)
	}

	for _, score := range scores {
		st := byID[score.TaskID]
		view := app.TaskScoreView{Task: st.Task, Project: st.Project, Score: score}
		switch score.Priority {
		case domain.PriorityCritical:
			resp.CriticalTasks = append(resp.CriticalTasks, view)
		case domain.PriorityHigh, domain.PriorityMedium:
			resp.AttentionTasks = append(resp.AttentionTasks, view)
		default:
			resp.FutureTasks = append(resp.FutureTasks, view)
		}
	}

	projects, err := s.projects.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	for _, p := range projects {
		projectTasks, err := s.tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("loading tasks of project %s: %w", p.ID, err)
		}
		tasks := make([]domain.Task, 0, len(projectTasks))
		for _, t := range projectTasks {
			tasks = append(tasks, *t)
		}
		view := app.ProjectHealthView{
			Project:  *p,
			Progress: engine.CalculateProgress(*p, tasks, now),
		}

		switch {
		case p.Status == domain.ProjectCompleted:
			resp.CompletedProjects = append(resp.CompletedProjects, view)
		case view.Progress.Health == domain.HealthCritical:
			resp.CriticalProjects = append(resp.CriticalProjects, view)
		case view.Progress.Health == domain.HealthPoor || view.Progress.Health == domain.HealthFair:
			resp.AtRiskProjects = append(resp.AtRiskProjects, view)
		default:
			resp.HealthyProjects = append(resp.HealthyProjects, view)
		}
	}

	unread, err := s.notifications.CountUnread(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("counting unread notifications: %w", err)
	}
	resp.UnreadNotifications = unread

	return resp, nil
}
