package testutil

import (
	"time"

	"github.com/deyby01/agenda/internal/domain"
	"github.com/google/uuid"
)

// TestOwner is the owner ID fixtures default to.
const TestOwner = "test-user"

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = domain.DatePtr(d)
	}
}

// WithDueIn sets the due date n days from now (negative for overdue).
func WithDueIn(days int) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = domain.DatePtr(time.Now().UTC().AddDate(0, 0, days))
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithProject(projectID string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = &projectID
	}
}

func WithCreatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = ts
		t.UpdatedAt = ts
	}
}

func WithOwner(ownerID string) TaskOption {
	return func(t *domain.Task) {
		t.OwnerID = ownerID
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		OwnerID:   TestOwner,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Project options
type ProjectOption func(*domain.Project)

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithEstimatedEnd(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.EstimatedEnd = domain.DatePtr(d)
	}
}

func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = domain.DatePtr(d)
	}
}

func WithProjectOwner(ownerID string) ProjectOption {
	return func(p *domain.Project) {
		p.OwnerID = ownerID
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		OwnerID:   TestOwner,
		Name:      name,
		Status:    domain.ProjectInProgress,
		StartDate: domain.DatePtr(now.AddDate(0, -1, 0)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
