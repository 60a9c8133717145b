package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the
// migration system re-runs the full list on every startup.
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
	`CREATE TABLE IF NOT EXISTS annual_targets (
		id             TEXT PRIMARY KEY,
		year           INTEGER NOT NULL UNIQUE,
		vilt_sessions  INTEGER NOT NULL DEFAULT 0 CHECK(vilt_sessions >= 0),
		ilt_sessions   INTEGER NOT NULL DEFAULT 0 CHECK(ilt_sessions >= 0),
		learning_hours REAL NOT NULL DEFAULT 0 CHECK(learning_hours >= 0),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS competency_targets (
		target_id TEXT NOT NULL REFERENCES annual_targets(id) ON DELETE CASCADE,
		area      TEXT NOT NULL,
		hours     REAL NOT NULL CHECK(hours >= 0),
		PRIMARY KEY (target_id, area)
	)`,

	`CREATE TABLE IF NOT EXISTS metrics (
		id             TEXT PRIMARY KEY,
		year           INTEGER NOT NULL,
		granularity    TEXT NOT NULL
		               CHECK(granularity IN ('quarter','month','week','day')),
		period_index   INTEGER NOT NULL CHECK(period_index > 0),
		source         TEXT NOT NULL
		               CHECK(source IN ('learning_plan','ievolve','iglance','aftd','internship')),
		vilt_scheduled INTEGER NOT NULL DEFAULT 0,
		vilt_completed INTEGER NOT NULL DEFAULT 0,
		ilt_scheduled  INTEGER NOT NULL DEFAULT 0,
		ilt_completed  INTEGER NOT NULL DEFAULT 0,
		learning_hours REAL NOT NULL DEFAULT 0,
		registrations  INTEGER NOT NULL DEFAULT 0,
		capacity       INTEGER NOT NULL DEFAULT 0,
		closure_ratio  REAL NOT NULL DEFAULT 0,
		imported_at    TEXT NOT NULL,
		UNIQUE (year, granularity, period_index, source)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_metrics_period ON metrics(year, granularity, period_index)`,

	`CREATE TABLE IF NOT EXISTS metric_competency_hours (
		metric_id TEXT NOT NULL REFERENCES metrics(id) ON DELETE CASCADE,
		area      TEXT NOT NULL,
		hours     REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (metric_id, area)
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_actions (
		name           TEXT PRIMARY KEY,
		learning_hours REAL NOT NULL DEFAULT 0,
		vilt_sessions  REAL NOT NULL DEFAULT 0,
		ilt_sessions   REAL NOT NULL DEFAULT 0,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_competency_effects (
		action_name TEXT NOT NULL REFERENCES catalog_actions(name) ON DELETE CASCADE,
		area        TEXT NOT NULL,
		hours       REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (action_name, area)
	)`,

	`CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		year        INTEGER NOT NULL,
		created_at  TEXT NOT NULL,
		result_json TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_year ON runs(year, created_at)`,

	// Track which narrative path produced a stored run
	`ALTER TABLE runs ADD COLUMN narrative_source TEXT NOT NULL DEFAULT ''`,
}
