package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the
// migration system re-runs the full slice on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id            TEXT PRIMARY KEY,
		owner_id      TEXT NOT NULL,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'planned'
		              CHECK(status IN ('planned','in_progress','completed','on_hold','cancelled')),
		start_date    TEXT,
		estimated_end TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_owner_status ON projects(owner_id, status)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		completed  INTEGER NOT NULL DEFAULT 0,
		due_date   TEXT,
		project_id TEXT REFERENCES projects(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_completed ON tasks(owner_id, completed)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		message    TEXT NOT NULL,
		kind       TEXT NOT NULL CHECK(kind IN ('task','project','system','achievement')),
		severity   TEXT NOT NULL CHECK(severity IN ('critical','warning','info','success')),
		read       INTEGER NOT NULL DEFAULT 0,
		actioned   INTEGER NOT NULL DEFAULT 0,
		task_id    TEXT REFERENCES tasks(id) ON DELETE CASCADE,
		project_id TEXT REFERENCES projects(id) ON DELETE CASCADE,
		expires_at TEXT,
		context    TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_owner_read ON notifications(owner_id, read)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_owner_kind ON notifications(owner_id, kind, severity)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_created ON notifications(created_at)`,

	// Storage-level duplicate suppression: at most one notification per
	// (owner, related entity, kind, severity, calendar day). Concurrent
	// evaluators race to the index, not past it.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_notifications_task_day
		ON notifications(owner_id, task_id, kind, severity, date(created_at))
		WHERE task_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_notifications_project_day
		ON notifications(owner_id, project_id, kind, severity, date(created_at))
		WHERE project_id IS NOT NULL`,
}
