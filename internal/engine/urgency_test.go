package engine

import (
	"testing"
	"time"

	"github.com/deyby01/agenda/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyUrgency_Buckets(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		daysOut    *int
		wantLevel  domain.TaskUrgency
		wantScore  float64
		wantReason string
	}{
		{"no due date", nil, domain.UrgencyNoDeadline, 2.0, "No deadline"},
		{"overdue by one day", intPtr(-1), domain.UrgencyOverdue, 10.0, "Overdue by 1 days"},
		{"overdue by ten days", intPtr(-10), domain.UrgencyOverdue, 10.0, "Overdue by 10 days"},
		{"due today", intPtr(0), domain.UrgencyDueToday, 8.0, "Due today"},
		{"due tomorrow", intPtr(1), domain.UrgencyDueThisWeek, 6.0, "Due in 1 days"},
		{"due in seven days", intPtr(7), domain.UrgencyDueThisWeek, 6.0, "Due in 7 days"},
		{"due in eight days", intPtr(8), domain.UrgencyDueNextWeek, 4.0, "Due in 8 days"},
		{"due in fourteen days", intPtr(14), domain.UrgencyDueNextWeek, 4.0, "Due in 14 days"},
		// Distant dates deliberately fall back to the no-deadline bucket.
		{"due in fifteen days", intPtr(15), domain.UrgencyNoDeadline, 2.0, "Due in 15 days"},
		{"due in ninety days", intPtr(90), domain.UrgencyNoDeadline, 2.0, "Due in 90 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var due *time.Time
			if tt.daysOut != nil {
				d := today.AddDate(0, 0, *tt.daysOut)
				due = &d
			}
			level, score, reason := ClassifyUrgency(due, today)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestClassifyUrgency_OverdueScoreDoesNotScale(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, daysLate := range []int{1, 5, 30, 365} {
		due := today.AddDate(0, 0, -daysLate)
		_, score, _ := ClassifyUrgency(&due, today)
		assert.Equal(t, 10.0, score, "overdue score should be flat at %d days late", daysLate)
	}
}

func TestClassifyUrgency_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, 3, 15, 23, 50, 0, 0, time.UTC)
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	level, score, _ := ClassifyUrgency(&due, today)
	assert.Equal(t, domain.UrgencyDueToday, level)
	assert.Equal(t, 8.0, score)
}

func intPtr(v int) *int { return &v }
