package engine

import (
	"math"
	"time"

	"github.com/deyby01/agenda/internal/domain"
)

// velocityWindowDays is the trailing window for the velocity rate.
const velocityWindowDays = 30

// criticalShortlistMax caps the at-risk task shortlist.
const criticalShortlistMax = 5

// CriticalTaskRef is one entry in the at-risk shortlist: a pending
// task with the reason tags that make it critical. Tags may be empty
// for a task whose due date is comfortably out.
type CriticalTaskRef struct {
	TaskID  string
	Title   string
	Reasons []string
}

// ProjectProgress is the immutable result of a progress calculation.
type ProjectProgress struct {
	ProjectID           string
	CompletionPct       float64 // 0-100, one decimal
	Velocity            float64 // completed tasks per day, trailing 30 days
	EstimatedCompletion *time.Time
	Health              domain.HealthStatus
	TotalTasks          int
	CompletedTasks      int
	PendingTasks        int
	CriticalTasks       []CriticalTaskRef
}

// CalculateProgress derives completion, velocity, a completion
// estimate, health, and the at-risk shortlist for one project from its
// task snapshots. Pure: today is explicit and nothing is mutated.
//
// Velocity uses task creation dates as a proxy for completion dates;
// the data model carries no completion timestamp. The estimate
// truncates fractional days rather than rounding.
func CalculateProgress(p domain.Project, tasks []domain.Task, today time.Time) ProjectProgress {
	total := len(tasks)
	var completed int
	var pending []domain.Task
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			pending = append(pending, t)
		}
	}

	var completionPct float64
	if total > 0 {
		completionPct = math.Round(float64(completed)/float64(total)*1000) / 10
	}

	velocity := calculateVelocity(tasks, today)

	var estimated *time.Time
	if velocity > 0 {
		daysNeeded := int(float64(len(pending)) / velocity)
		d := domain.DateOnly(today).AddDate(0, 0, daysNeeded)
		estimated = &d
	}

	return ProjectProgress{
		ProjectID:           p.ID,
		CompletionPct:       completionPct,
		Velocity:            math.Round(velocity*100) / 100,
		EstimatedCompletion: estimated,
		Health:              assessHealth(completionPct, estimated, p.EstimatedEnd),
		TotalTasks:          total,
		CompletedTasks:      completed,
		PendingTasks:        len(pending),
		CriticalTasks:       identifyCriticalTasks(pending, today),
	}
}

// calculateVelocity counts tasks completed and created within the
// trailing window, as a daily rate.
func calculateVelocity(tasks []domain.Task, today time.Time) float64 {
	cutoff := domain.DateOnly(today).AddDate(0, 0, -velocityWindowDays)
	var recent int
	for _, t := range tasks {
		if t.Completed && !domain.DateOnly(t.CreatedAt).Before(cutoff) {
			recent++
		}
	}
	return float64(recent) / float64(velocityWindowDays)
}

// assessHealth maps completion percentage to a health status. The
// estimate and planned-end parameters are accepted for signature
// compatibility but do not participate in the decision.
func assessHealth(completionPct float64, estimatedCompletion, plannedEnd *time.Time) domain.HealthStatus {
	switch {
	case completionPct >= 90:
		return domain.HealthExcellent
	case completionPct >= 70:
		return domain.HealthGood
	case completionPct >= 50:
		return domain.HealthFair
	case completionPct >= 25:
		return domain.HealthPoor
	default:
		return domain.HealthCritical
	}
}

// identifyCriticalTasks takes the first 5 pending tasks in their given
// order (no re-sorting) and tags each with why it is at risk.
func identifyCriticalTasks(pending []domain.Task, today time.Time) []CriticalTaskRef {
	var critical []CriticalTaskRef
	for _, t := range pending {
		if len(critical) >= criticalShortlistMax {
			break
		}
		var reasons []string
		if t.DueDate != nil {
			daysLeft := domain.DaysBetween(today, *t.DueDate)
			if daysLeft < 0 {
				reasons = append(reasons, "Overdue")
			} else if daysLeft <= 3 {
				reasons = append(reasons, "Due soon")
			}
		} else {
			reasons = append(reasons, "No deadline")
		}
		critical = append(critical, CriticalTaskRef{
			TaskID:  t.ID,
			Title:   t.Title,
			Reasons: reasons,
		})
	}
	return critical
}
