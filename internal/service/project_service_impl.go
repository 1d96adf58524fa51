package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/domain"
	"github.com/deyby01/agenda/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectPlanned
	}
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	if p.StartDate != nil {
		p.StartDate = domain.DatePtr(*p.StartDate)
	}
	if p.EstimatedEnd != nil {
		p.EstimatedEnd = domain.DatePtr(*p.EstimatedEnd)
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return s.projects.ListByOwner(ctx, ownerID)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
