package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/deyby01/agenda/internal/domain"
)

// Priority thresholds: final numeric score mapped to a categorical level.
const (
	criticalThreshold = 9.0
	highThreshold     = 7.0
	mediumThreshold   = 5.0

	// AttentionThreshold is the score at or above which a task is
	// flagged as needing attention regardless of its priority bucket.
	AttentionThreshold = 7.0
)

// TaskContext is the joined view the scorer consumes: a task snapshot
// plus its project (nil when unassigned) and the project's task count.
// Repositories assemble this; the engine never touches a store.
type TaskContext struct {
	Task             domain.Task
	Project          *domain.Project
	ProjectTaskCount int
}

// TaskPriorityScore is the immutable result of scoring one task.
// Created fresh per call and never mutated.
type TaskPriorityScore struct {
	TaskID   string
	Priority domain.PriorityLevel
	Urgency  domain.TaskUrgency
	Score    float64
	Reasons  []string
}

// IsCritical reports whether the task landed in the critical bucket.
func (s TaskPriorityScore) IsCritical() bool {
	return s.Priority == domain.PriorityCritical
}

// NeedsAttention reports whether the score crosses the attention line.
func (s TaskPriorityScore) NeedsAttention() bool {
	return s.Score >= AttentionThreshold
}

// Score computes the priority score for a single task: urgency base
// score, plus the important-project bonus, plus the old-task bonus.
// The score can exceed 10. Fails fast on an invalid task record.
func Score(tc TaskContext, today time.Time) (TaskPriorityScore, error) {
	if err := tc.Task.Validate(); err != nil {
		return TaskPriorityScore{}, fmt.Errorf("scoring task: %w", err)
	}

	var reasons []string
	urgency, score, reason := ClassifyUrgency(tc.Task.DueDate, today)
	if reason != "" {
		reasons = append(reasons, reason)
	}

	if tc.Project != nil && ImportantProject(*tc.Project, tc.ProjectTaskCount, today) {
		score += ImportantProjectBonus
		reasons = append(reasons, fmt.Sprintf("Important project: %s", tc.Project.Name))
	}

	if domain.DaysBetween(tc.Task.CreatedAt, today) > DaysThresholdOldTask {
		score += OldTaskBonus
		reasons = append(reasons, fmt.Sprintf("Old task (more than %d days)", DaysThresholdOldTask))
	}

	return TaskPriorityScore{
		TaskID:   tc.Task.ID,
		Priority: scoreToPriority(score),
		Urgency:  urgency,
		Score:    score,
		Reasons:  reasons,
	}, nil
}

// Prioritize scores a batch of tasks and returns the results sorted by
// descending score. Completed tasks are filtered out here, not at call
// sites. The sort is stable: equal scores keep their input order.
func Prioritize(tcs []TaskContext, today time.Time) ([]TaskPriorityScore, error) {
	scores := make([]TaskPriorityScore, 0, len(tcs))
	for _, tc := range tcs {
		if !tc.Task.Pending() {
			continue
		}
		s, err := Score(tc, today)
		if err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores, nil
}

func scoreToPriority(score float64) domain.PriorityLevel {
	switch {
	case score >= criticalThreshold:
		return domain.PriorityCritical
	case score >= highThreshold:
		return domain.PriorityHigh
	case score >= mediumThreshold:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
