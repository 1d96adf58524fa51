package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/domain"
)

// SQLiteNotificationRepo implements NotificationRepo using a SQLite
// database. The context payload is stored as a JSON blob.
type SQLiteNotificationRepo struct {
	db *sql.DB
}

// NewSQLiteNotificationRepo creates a new SQLiteNotificationRepo.
func NewSQLiteNotificationRepo(db *sql.DB) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: db}
}

const notificationColumns = `id, owner_id, title, message, kind, severity, read, actioned, task_id, project_id, expires_at, context, created_at`

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	var contextJSON interface{}
	if n.Context != nil {
		blob, err := json.Marshal(n.Context)
		if err != nil {
			return fmt.Errorf("encoding notification context: %w", err)
		}
		contextJSON = string(blob)
	}

	query := `INSERT INTO notifications (` + notificationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.OwnerID,
		n.Title,
		n.Message,
		string(n.Kind),
		string(n.Severity),
		boolToInt(n.Read),
		boolToInt(n.Actioned),
		nullableStr(n.TaskID),
		nullableStr(n.ProjectID),
		nullableTimeToString(n.ExpiresAt, time.RFC3339),
		contextJSON,
		n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return n, nil
}

func (r *SQLiteNotificationRepo) ListByOwner(ctx context.Context, ownerID string, unreadOnly bool) ([]*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE owner_id = ?`
	if unreadOnly {
		query += ` AND read = 0`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}

func (r *SQLiteNotificationRepo) CountUnread(ctx context.Context, ownerID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE owner_id = ? AND read = 0`
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

func (r *SQLiteNotificationRepo) ExistsOnDay(ctx context.Context, key LookbackKey, day time.Time) (bool, error) {
	query, args := lookbackQuery(key)
	query += ` AND date(created_at) = ?`
	args = append(args, domain.DateOnly(day).Format(dateLayout))
	return r.exists(ctx, query, args)
}

func (r *SQLiteNotificationRepo) ExistsSince(ctx context.Context, key LookbackKey, since time.Time) (bool, error) {
	query, args := lookbackQuery(key)
	query += ` AND created_at >= ?`
	args = append(args, since.UTC().Format(time.RFC3339))
	return r.exists(ctx, query, args)
}

func (r *SQLiteNotificationRepo) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE notifications SET read = 1 WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) MarkActioned(ctx context.Context, id string) error {
	query := `UPDATE notifications SET actioned = 1, read = 1 WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("marking notification actioned: %w", err)
	}
	return nil
}

func lookbackQuery(key LookbackKey) (string, []interface{}) {
	query := `SELECT COUNT(*) FROM notifications WHERE owner_id = ? AND kind = ? AND severity = ?`
	args := []interface{}{key.OwnerID, string(key.Kind), string(key.Severity)}
	if key.TaskID != nil {
		query += ` AND task_id = ?`
		args = append(args, *key.TaskID)
	}
	if key.ProjectID != nil {
		query += ` AND project_id = ?`
		args = append(args, *key.ProjectID)
	}
	return query, args
}

func (r *SQLiteNotificationRepo) exists(ctx context.Context, query string, args []interface{}) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("notification lookback: %w", err)
	}
	return count > 0, nil
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var n domain.Notification
	var kind, severity string
	var read, actioned int
	var taskID, projectID, expiresAt, contextJSON sql.NullString
	var createdAt string

	err := row.Scan(
		&n.ID,
		&n.OwnerID,
		&n.Title,
		&n.Message,
		&kind,
		&severity,
		&read,
		&actioned,
		&taskID,
		&projectID,
		&expiresAt,
		&contextJSON,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning notification: %w", err)
	}

	n.Kind = domain.NotificationKind(kind)
	n.Severity = domain.NotificationSeverity(severity)
	n.Read = intToBool(read)
	n.Actioned = intToBool(actioned)
	n.TaskID = strPtrFromNull(taskID)
	n.ProjectID = strPtrFromNull(projectID)
	n.ExpiresAt = parseNullableTime(expiresAt, time.RFC3339)
	if contextJSON.Valid && contextJSON.String != "" {
		if err := json.Unmarshal([]byte(contextJSON.String), &n.Context); err != nil {
			return nil, fmt.Errorf("decoding notification context: %w", err)
		}
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		n.CreatedAt = ts
	}
	return &n, nil
}
