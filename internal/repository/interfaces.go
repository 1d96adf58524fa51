package repository

import (
	"context"
	"time"

	"github.com/deyby01/agenda/internal/domain"
)

// ScorableTask is a joined view of a pending-or-done task with its
// project context, used to build engine.TaskContext values without a
// per-task project query.
type ScorableTask struct {
	Task             domain.Task
	Project          *domain.Project
	ProjectTaskCount int
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	ListScorable(ctx context.Context, ownerID string) ([]ScorableTask, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// LookbackKey identifies a duplicate-suppression bucket: one owner,
// one related task or project, one kind/severity pair.
type LookbackKey struct {
	OwnerID   string
	Kind      domain.NotificationKind
	Severity  domain.NotificationSeverity
	TaskID    *string
	ProjectID *string
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByOwner(ctx context.Context, ownerID string, unreadOnly bool) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, ownerID string) (int, error)
	// ExistsOnDay reports whether an event for the key was created on
	// the given calendar date (UTC).
	ExistsOnDay(ctx context.Context, key LookbackKey, day time.Time) (bool, error)
	// ExistsSince reports whether an event for the key was created at
	// or after the given instant.
	ExistsSince(ctx context.Context, key LookbackKey, since time.Time) (bool, error)
	MarkRead(ctx context.Context, id string) error
	MarkActioned(ctx context.Context, id string) error
}
