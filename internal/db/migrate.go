package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE "duplicate column name" errors from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS areas (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		usage_count INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		usage_count INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS items (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		area           TEXT NOT NULL
		               CHECK(area IN ('engineering','product','infrastructure')),
		team_id        TEXT REFERENCES teams(id) ON DELETE SET NULL,
		team_name      TEXT NOT NULL DEFAULT '',
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		progress       INTEGER NOT NULL DEFAULT 0
		               CHECK(progress BETWEEN 0 AND 100),
		status         TEXT NOT NULL DEFAULT 'todo'
		               CHECK(status IN ('todo','in_progress','done')),
		comments       TEXT NOT NULL DEFAULT '',
		links          TEXT NOT NULL DEFAULT '[]',
		source         TEXT NOT NULL DEFAULT 'Manual',
		is_manual_edit INTEGER NOT NULL DEFAULT 0,
		dependencies   TEXT NOT NULL DEFAULT '[]',
		swimlane       TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_area ON items(area)`,
	`CREATE INDEX IF NOT EXISTS idx_items_status ON items(status)`,
	`CREATE INDEX IF NOT EXISTS idx_items_source ON items(source)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		date       TEXT NOT NULL,
		area       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS alerts (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('risk','deadline','info')),
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		item_id     TEXT,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tracker_issues (
		issue_id       TEXT PRIMARY KEY,
		issue_type     TEXT NOT NULL,
		summary        TEXT NOT NULL,
		start_date     TEXT,
		due_date       TEXT,
		status         TEXT NOT NULL DEFAULT '',
		progress       INTEGER NOT NULL DEFAULT 0
		               CHECK(progress BETWEEN 0 AND 100),
		last_synced_at TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tracker_issues_synced ON tracker_issues(last_synced_at)`,

	`CREATE TABLE IF NOT EXISTS tracker_config (
		id         INTEGER PRIMARY KEY CHECK(id = 1),
		base_url   TEXT NOT NULL,
		email      TEXT NOT NULL,
		api_token  TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
