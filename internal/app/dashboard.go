package app

import (
	"time"

	"github.com/deyby01/agenda/internal/domain"
	"github.com/deyby01/agenda/internal/engine"
)

type DashboardRequest struct {
	OwnerID string
	Now     *time.Time
}

func NewDashboardRequest(ownerID string) DashboardRequest {
	return DashboardRequest{OwnerID: ownerID}
}

// TaskScoreView pairs a task snapshot with its computed score for
// presentation. The engine emits scores keyed by task ID; the service
// joins them back to the tasks here.
type TaskScoreView struct {
	Task    domain.Task
	Project *domain.Project
	Score   engine.TaskPriorityScore
}

// ProjectHealthView pairs a project with its progress metrics.
type ProjectHealthView struct {
	Project  domain.Project
	Progress engine.ProjectProgress
}

// DashboardResponse buckets prioritized tasks into presentation zones
// and projects into health groups. Zoning is presentation policy, not
// engine policy: critical priority, then high+medium as "attention",
// then low as "future".
type DashboardResponse struct {
	GeneratedAt time.Time

	CriticalTasks  []TaskScoreView
	AttentionTasks []TaskScoreView
	FutureTasks    []TaskScoreView

	HealthyProjects   []ProjectHealthView
	AtRiskProjects    []ProjectHealthView
	CriticalProjects  []ProjectHealthView
	CompletedProjects []ProjectHealthView

	UnreadNotifications int
}
