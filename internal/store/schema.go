// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

const (
	// SchemaVersion tracks the database schema version for migrations
	SchemaVersion = 1
)

// SQLite schema for the plan snapshot database. Dates are stored as ISO
// strings with '' meaning unscheduled; position preserves plan file order.
const schema = `
-- Metadata table for schema version and project-level values
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    display_name TEXT NOT NULL DEFAULT '',
    avatar_ref TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    start_date TEXT NOT NULL DEFAULT '',   -- ISO date, '' = unscheduled
    due_date TEXT NOT NULL DEFAULT '',
    progress INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL,
    priority TEXT NOT NULL,
    assignee_ids TEXT NOT NULL DEFAULT '[]',    -- JSON array of user ids
    dependency_ids TEXT NOT NULL DEFAULT '[]',  -- JSON array of task ids
    estimated_hours REAL NOT NULL DEFAULT 0,
    actual_hours REAL NOT NULL DEFAULT 0,
    position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position);
CREATE INDEX IF NOT EXISTS idx_users_position ON users(position);
`

// initMetadata seeds the metadata table on first open.
const initMetadata = `
INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', '1');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('project_name', '');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('project_start', '');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('project_end', '');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('imported_at', '');
`
