package engine

import (
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/domain"
)

// Scoring constants. These are the business rules: base scores per
// urgency bucket plus the two additive bonuses.
const (
	OverdueScore     = 10.0
	DueTodayScore    = 8.0
	DueThisWeekScore = 6.0
	DueNextWeekScore = 4.0
	NoDeadlineScore  = 2.0

	ImportantProjectBonus = 2.0
	OldTaskBonus          = 1.0

	// DaysThresholdOldTask is the age in days beyond which a pending
	// task earns the old-task bonus. Comparison is strict.
	DaysThresholdOldTask = 7
)

// ClassifyUrgency maps a task's due date, relative to today, to an
// urgency bucket, its base score, and a human-readable reason.
// Both dates are handled at day precision; today is an explicit
// parameter so the classifier stays pure.
//
// Dates more than 14 days out deliberately reuse the no-deadline
// bucket and score: distant work is treated the same as undated work.
func ClassifyUrgency(due *time.Time, today time.Time) (domain.TaskUrgency, float64, string) {
	if due == nil {
		return domain.UrgencyNoDeadline, NoDeadlineScore, "No deadline"
	}

	daysDiff := domain.DaysBetween(today, *due)
	switch {
	case daysDiff < 0:
		return domain.UrgencyOverdue, OverdueScore, fmt.Sprintf("Overdue by %d days", -daysDiff)
	case daysDiff == 0:
		return domain.UrgencyDueToday, DueTodayScore, "Due today"
	case daysDiff <= 7:
		return domain.UrgencyDueThisWeek, DueThisWeekScore, fmt.Sprintf("Due in %d days", daysDiff)
	case daysDiff <= 14:
		return domain.UrgencyDueNextWeek, DueNextWeekScore, fmt.Sprintf("Due in %d days", daysDiff)
	default:
		return domain.UrgencyNoDeadline, NoDeadlineScore, fmt.Sprintf("Due in %d days", daysDiff)
	}
}
