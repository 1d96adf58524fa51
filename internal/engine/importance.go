package engine

import (
	"time"

	"github.com/deyby01/agenda/internal/domain"
)

// importantProjectMaxDays is the window within which an in-progress
// project's estimated end date makes it important.
const importantProjectMaxDays = 30

// importantProjectMinTasks is the task count at which an in-progress
// project counts as important regardless of its end date.
const importantProjectMinTasks = 5

// ImportantProject decides whether a project triggers the scoring
// bonus for its tasks. A project is important iff it is in progress
// and either its estimated end falls within the next 30 days
// (inclusive, not past) or it carries at least 5 tasks.
func ImportantProject(p domain.Project, taskCount int, today time.Time) bool {
	if p.Status != domain.ProjectInProgress {
		return false
	}
	if p.EstimatedEnd != nil {
		daysToEnd := domain.DaysBetween(today, *p.EstimatedEnd)
		if daysToEnd >= 0 && daysToEnd <= importantProjectMaxDays {
			return true
		}
	}
	return taskCount >= importantProjectMinTasks
}
