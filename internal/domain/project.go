package domain

import "time"

type Project struct {
	ID           string
	OwnerID      string
	Name         string
	Description  string
	Status       ProjectStatus
	StartDate    *time.Time // date-only, midnight UTC
	EstimatedEnd *time.Time // date-only, midnight UTC
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the project is still being worked:
// planned, in progress, or on hold. Completed and cancelled are inactive.
func (p *Project) IsActive() bool {
	switch p.Status {
	case ProjectPlanned, ProjectInProgress, ProjectOnHold:
		return true
	}
	return false
}

// DisplayID returns a short identifier for CLI output.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
