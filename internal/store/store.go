// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/ganttview/internal/model"
)

// =============================================================================
// STORE
// =============================================================================

// Store persists plan snapshots in SQLite. One store holds exactly one plan;
// importing replaces the previous snapshot wholesale, while drag commits
// update individual task dates in place.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the snapshot database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	if _, err := db.Exec(initMetadata); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize metadata: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// SNAPSHOT WRITE
// =============================================================================

// SaveSnapshot replaces the stored snapshot with the given plan.
func (s *Store) SaveSnapshot(plan *Plan) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM users"); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	for i, u := range plan.Users {
		_, err := tx.Exec(`
			INSERT INTO users (id, first_name, last_name, display_name, avatar_ref, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, u.ID, u.FirstName, u.LastName, u.DisplayName, u.AvatarRef, i)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.ID, err)
		}
	}

	for i, t := range plan.Tasks {
		assignees, _ := json.Marshal(orEmpty(t.AssigneeIDs))
		deps, _ := json.Marshal(orEmpty(t.DependencyIDs))
		_, err := tx.Exec(`
			INSERT INTO tasks (id, title, description, start_date, due_date, progress,
			                   status, priority, assignee_ids, dependency_ids,
			                   estimated_hours, actual_hours, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID, t.Title, t.Description, dateCol(t.StartDate), dateCol(t.DueDate),
			t.Progress(), string(t.Status), string(t.Priority),
			string(assignees), string(deps), t.EstimatedHours, t.ActualHours, i)
		if err != nil {
			return fmt.Errorf("insert task %s: %w", t.ID, err)
		}
	}

	meta := map[string]string{
		"project_name":  plan.Name,
		"project_start": dateCol(plan.ProjectStart),
		"project_end":   dateCol(plan.ProjectEnd),
		"imported_at":   time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.Exec(`
			INSERT INTO metadata (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, v); err != nil {
			return fmt.Errorf("set metadata %s: %w", k, err)
		}
	}

	return tx.Commit()
}

// UpdateTaskDates persists the dates a committed drag produced. Nil fields
// clear the corresponding date.
func (s *Store) UpdateTaskDates(taskID string, change model.DateChange) error {
	res, err := s.db.Exec(`
		UPDATE tasks SET start_date = ?, due_date = ? WHERE id = ?
	`, dateCol(change.StartDate), dateCol(change.DueDate), taskID)
	if err != nil {
		return fmt.Errorf("update task %s: %w", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update task %s: not found", taskID)
	}
	return nil
}

// =============================================================================
// SNAPSHOT READ
// =============================================================================

// LoadSnapshot reads the stored snapshot back in import order. An empty
// database yields an empty plan, not an error.
func (s *Store) LoadSnapshot() (*Plan, error) {
	plan := &Plan{}

	meta, err := s.metadata()
	if err != nil {
		return nil, err
	}
	plan.Name = meta["project_name"]
	plan.ProjectStart = dateFromCol(meta["project_start"])
	plan.ProjectEnd = dateFromCol(meta["project_end"])

	userRows, err := s.db.Query(`
		SELECT id, first_name, last_name, display_name, avatar_ref
		FROM users ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer userRows.Close()

	for userRows.Next() {
		var u model.User
		if err := userRows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.DisplayName, &u.AvatarRef); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		plan.Users = append(plan.Users, u)
	}
	if err := userRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	taskRows, err := s.db.Query(`
		SELECT id, title, description, start_date, due_date, progress,
		       status, priority, assignee_ids, dependency_ids,
		       estimated_hours, actual_hours
		FROM tasks ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var t model.Task
		var start, due, status, priority, assignees, deps string
		if err := taskRows.Scan(&t.ID, &t.Title, &t.Description, &start, &due,
			&t.ProgressPercentage, &status, &priority, &assignees, &deps,
			&t.EstimatedHours, &t.ActualHours); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.StartDate = dateFromCol(start)
		t.DueDate = dateFromCol(due)
		t.Status = model.ParseStatus(status)
		t.Priority = model.ParsePriority(priority)
		if err := json.Unmarshal([]byte(assignees), &t.AssigneeIDs); err != nil {
			logrus.WithField("task", t.ID).WithError(err).Warn("ignoring malformed assignee list")
		}
		if err := json.Unmarshal([]byte(deps), &t.DependencyIDs); err != nil {
			logrus.WithField("task", t.ID).WithError(err).Warn("ignoring malformed dependency list")
		}
		plan.Tasks = append(plan.Tasks, t)
	}
	if err := taskRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return plan, nil
}

// HasSnapshot reports whether any tasks have been imported.
func (s *Store) HasSnapshot() (bool, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&n); err != nil {
		return false, fmt.Errorf("count tasks: %w", err)
	}
	return n > 0, nil
}

// metadata reads the whole metadata table.
func (s *Store) metadata() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM metadata")
	if err != nil {
		return nil, fmt.Errorf("query metadata: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan metadata: %w", err)
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

// =============================================================================
// COLUMN HELPERS
// =============================================================================

// dateCol encodes an optional date as its ISO column form.
func dateCol(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// dateFromCol decodes an ISO date column, "" meaning unset.
func dateFromCol(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil
	}
	d := model.Day(t)
	return &d
}

// orEmpty keeps JSON columns as [] instead of null for nil slices.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
