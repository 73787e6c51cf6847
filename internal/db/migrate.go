package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The statements are idempotent;
// ALTER TABLE duplicates from re-runs are tolerated.
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
	`CREATE TABLE IF NOT EXISTS layers (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		type            TEXT NOT NULL DEFAULT 'custom'
		                CHECK(type IN ('holidays','organization','custom')),
		color           TEXT NOT NULL DEFAULT '',
		ring_index      INTEGER NOT NULL DEFAULT 0,
		is_visible      INTEGER NOT NULL DEFAULT 1,
		organization_id TEXT NOT NULL,
		created_by      TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_layers_org ON layers(organization_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		type_key        TEXT NOT NULL DEFAULT 'other',
		color           TEXT NOT NULL DEFAULT '',
		highlight_color TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		layer_id        TEXT NOT NULL REFERENCES layers(id) ON DELETE CASCADE,
		repeat_group_id TEXT,
		organization_id TEXT NOT NULL,
		created_by      TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_org ON activities(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_layer ON activities(layer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_repeat ON activities(repeat_group_id)`,

	`CREATE TABLE IF NOT EXISTS activity_types (
		key             TEXT NOT NULL,
		organization_id TEXT NOT NULL,
		label           TEXT NOT NULL,
		icon            TEXT NOT NULL DEFAULT '',
		color           TEXT NOT NULL DEFAULT '',
		highlight_color TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		is_system       INTEGER NOT NULL DEFAULT 0,
		sort_order      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (organization_id, key)
	)`,

	`CREATE TABLE IF NOT EXISTS shares (
		id              TEXT PRIMARY KEY,
		share_key       TEXT NOT NULL,
		short_code      TEXT NOT NULL UNIQUE,
		visibility      TEXT NOT NULL CHECK(visibility IN ('users','public')),
		organization_id TEXT NOT NULL,
		created_by      TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		expires_at      TEXT NOT NULL,
		renewed_at      TEXT,
		name            TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		layer_config    TEXT NOT NULL DEFAULT '{}',
		view_settings   TEXT NOT NULL DEFAULT '{}',
		view_count      INTEGER NOT NULL DEFAULT 0,
		last_accessed_at TEXT,
		is_active       INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE INDEX IF NOT EXISTS idx_shares_org ON shares(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shares_short_code ON shares(short_code)`,

	`CREATE TABLE IF NOT EXISTS user_settings (
		user_id          TEXT NOT NULL,
		organization_id  TEXT NOT NULL,
		layer_order      TEXT NOT NULL DEFAULT '[]',
		layer_visibility TEXT NOT NULL DEFAULT '{}',
		theme            TEXT NOT NULL DEFAULT 'auto'
		                 CHECK(theme IN ('light','dark','auto')),
		updated_at       TEXT NOT NULL,
		PRIMARY KEY (organization_id, user_id)
	)`,
}
