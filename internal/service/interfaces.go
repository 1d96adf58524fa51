package service

import (
	"context"
	"time"

	"github.com/deyby01/agenda/internal/app"
	"github.com/deyby01/agenda/internal/domain"
	"github.com/deyby01/agenda/internal/engine"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Complete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// NotifyService is the notification decision service: it detects new
// critical conditions, applies the duplicate-suppression windows, and
// emits notification records to the store.
type NotifyService interface {
	// EvaluateTask emits a notification for a critical-scored task
	// unless one already exists for the same (owner, task) today or
	// within the trailing 24 hours. Returns nil when suppressed.
	EvaluateTask(ctx context.Context, ownerID string, task domain.Task, score engine.TaskPriorityScore, now time.Time) (*domain.Notification, error)
	// EvaluateProject emits a notification for a critical-health
	// project unless one already exists for today. Returns nil when
	// suppressed.
	EvaluateProject(ctx context.Context, ownerID string, project domain.Project, progress engine.ProjectProgress, now time.Time) (*domain.Notification, error)
	// EvaluateAll runs the full sweep for one owner: prioritize all
	// tasks, assess all projects, emit every non-suppressed alert.
	EvaluateAll(ctx context.Context, ownerID string, now time.Time) ([]*domain.Notification, error)

	List(ctx context.Context, ownerID string, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkActioned(ctx context.Context, id string) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error)
}
