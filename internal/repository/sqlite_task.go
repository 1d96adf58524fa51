package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, owner_id, title, notes, completed, due_date, project_id, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.OwnerID,
		t.Title,
		t.Notes,
		boolToInt(t.Completed),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableStr(t.ProjectID),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ? ORDER BY created_at`
	return r.queryTasks(ctx, query, ownerID)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY created_at`
	return r.queryTasks(ctx, query, projectID)
}

// ListScorable returns every task of the owner joined with its project
// snapshot and the project's task count, ready to feed the scorer.
// Completed tasks are included; the engine filters them itself.
func (r *SQLiteTaskRepo) ListScorable(ctx context.Context, ownerID string) ([]ScorableTask, error) {
	query := `SELECT t.id, t.owner_id, t.title, t.notes, t.completed, t.due_date, t.project_id, t.created_at, t.updated_at,
			p.id, p.owner_id, p.name, p.description, p.status, p.start_date, p.estimated_end, p.created_at, p.updated_at,
			(SELECT COUNT(*) FROM tasks tc WHERE tc.project_id = p.id)
		FROM tasks t
		LEFT JOIN projects p ON p.id = t.project_id
		WHERE t.owner_id = ?
		ORDER BY t.created_at`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing scorable tasks: %w", err)
	}
	defer rows.Close()

	var result []ScorableTask
	for rows.Next() {
		var t domain.Task
		var completed int
		var dueDate, taskProjectID sql.NullString
		var tCreated, tUpdated string

		var pID, pOwner, pName, pDesc, pStatus sql.NullString
		var pStart, pEnd, pCreated, pUpdated sql.NullString
		var taskCount sql.NullInt64

		err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Title, &t.Notes, &completed, &dueDate, &taskProjectID, &tCreated, &tUpdated,
			&pID, &pOwner, &pName, &pDesc, &pStatus, &pStart, &pEnd, &pCreated, &pUpdated,
			&taskCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning scorable task: %w", err)
		}

		t.Completed = intToBool(completed)
		t.DueDate = parseNullableTime(dueDate, dateLayout)
		t.ProjectID = strPtrFromNull(taskProjectID)
		if ts, err := time.Parse(time.RFC3339, tCreated); err == nil {
			t.CreatedAt = ts
		}
		if ts, err := time.Parse(time.RFC3339, tUpdated); err == nil {
			t.UpdatedAt = ts
		}

		st := ScorableTask{Task: t}
		if pID.Valid {
			p := domain.Project{
				ID:           pID.String,
				OwnerID:      pOwner.String,
				Name:         pName.String,
				Description:  pDesc.String,
				Status:       domain.ProjectStatus(pStatus.String),
				StartDate:    parseNullableTime(pStart, dateLayout),
				EstimatedEnd: parseNullableTime(pEnd, dateLayout),
			}
			if ts, err := time.Parse(time.RFC3339, pCreated.String); err == nil {
				p.CreatedAt = ts
			}
			if ts, err := time.Parse(time.RFC3339, pUpdated.String); err == nil {
				p.UpdatedAt = ts
			}
			st.Project = &p
			st.ProjectTaskCount = int(taskCount.Int64)
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scorable tasks: %w", err)
	}
	return result, nil
}

func (r *SQLiteTaskRepo) CountByProject(ctx context.Context, projectID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM tasks WHERE project_id = ?`
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting project tasks: %w", err)
	}
	return count, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, notes = ?, completed = ?, due_date = ?, project_id = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Notes,
		boolToInt(t.Completed),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableStr(t.ProjectID),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) MarkCompleted(ctx context.Context, id string) error {
	query := `UPDATE tasks SET completed = 1, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...interface{}) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var completed int
	var dueDate, projectID sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Title,
		&t.Notes,
		&completed,
		&dueDate,
		&projectID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Completed = intToBool(completed)
	t.DueDate = parseNullableTime(dueDate, dateLayout)
	t.ProjectID = strPtrFromNull(projectID)
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		t.UpdatedAt = ts
	}
	return &t, nil
}
