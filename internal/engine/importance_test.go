package engine

import (
	"testing"
	"time"

	"github.com/deyby01/agenda/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestImportantProject(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	endIn := func(days int) *time.Time {
		d := today.AddDate(0, 0, days)
		return &d
	}

	tests := []struct {
		name      string
		status    domain.ProjectStatus
		end       *time.Time
		taskCount int
		want      bool
	}{
		{"in progress, end within 30 days", domain.ProjectInProgress, endIn(15), 1, true},
		{"in progress, end today", domain.ProjectInProgress, endIn(0), 1, true},
		{"in progress, end at 30 days", domain.ProjectInProgress, endIn(30), 1, true},
		{"in progress, end past 30 days", domain.ProjectInProgress, endIn(31), 1, false},
		{"in progress, end already passed", domain.ProjectInProgress, endIn(-1), 1, false},
		{"in progress, no end, many tasks", domain.ProjectInProgress, nil, 5, true},
		{"in progress, no end, few tasks", domain.ProjectInProgress, nil, 4, false},
		{"in progress, distant end, many tasks", domain.ProjectInProgress, endIn(60), 7, true},
		{"planned project never important", domain.ProjectPlanned, endIn(5), 10, false},
		{"on hold project never important", domain.ProjectOnHold, endIn(5), 10, false},
		{"completed project never important", domain.ProjectCompleted, endIn(5), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Project{
				ID:           "p-1",
				Name:         "Test",
				Status:       tt.status,
				EstimatedEnd: tt.end,
			}
			assert.Equal(t, tt.want, ImportantProject(p, tt.taskCount, today))
		})
	}
}
