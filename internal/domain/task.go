package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTask is returned when a task record is missing required fields.
var ErrInvalidTask = errors.New("invalid task record")

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// Task is a read-only snapshot of a task as the engine consumes it.
// The engine never mutates a Task.
type Task struct {
	ID        string
	OwnerID   string
	Title     string
	Notes     string
	Completed bool
	DueDate   *time.Time // date-only, midnight UTC
	ProjectID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields the scoring engine depends on.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTask)
	}
	if t.Title == "" {
		return fmt.Errorf("%w: missing title (id %s)", ErrInvalidTask, t.ID)
	}
	return nil
}

// Pending reports whether the task still counts for prioritization.
func (t *Task) Pending() bool {
	return !t.Completed
}
