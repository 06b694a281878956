// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the shared data structures for the gantt visualization.
package model

import (
	"strings"
	"time"
)

// =============================================================================
// TASK STATUS
// =============================================================================

// Status represents the workflow state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is being worked on
	StatusInProgress Status = "in_progress"

	// StatusInReview indicates the task is awaiting review
	StatusInReview Status = "in_review"

	// StatusBlocked indicates the task cannot proceed
	StatusBlocked Status = "blocked"

	// StatusCompleted indicates the task is done
	StatusCompleted Status = "completed"

	// StatusCancelled indicates the task was abandoned
	StatusCancelled Status = "cancelled"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Label returns the uppercased display form used for group headers.
func (s Status) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// ParseStatus converts a string into a Status.
// Unknown values fall back to StatusTodo rather than erroring; the chart
// degrades gracefully on malformed input.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusTodo, StatusInProgress, StatusInReview, StatusBlocked, StatusCompleted, StatusCancelled:
		return Status(strings.ToLower(strings.TrimSpace(s)))
	default:
		return StatusTodo
	}
}

// =============================================================================
// TASK PRIORITY
// =============================================================================

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority converts a string into a Priority.
// Unknown values fall back to PriorityMedium.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return Priority(strings.ToLower(strings.TrimSpace(s)))
	default:
		return PriorityMedium
	}
}

// =============================================================================
// TASK STRUCTURE
// =============================================================================

// Task represents one scheduled unit of work on the chart.
// Tasks are supplied by the host application and never mutated by the chart.
type Task struct {
	// ID is the unique identifier for this task
	ID string

	// Title is the human-readable task name shown in the label column
	Title string

	// Description is an optional longer explanation shown in tooltips
	Description string

	// StartDate is the scheduled start (nil = unscheduled)
	StartDate *time.Time

	// DueDate is the scheduled end, inclusive (nil = unscheduled)
	DueDate *time.Time

	// ProgressPercentage is the completion percentage, clamped to 0-100
	ProgressPercentage int

	// Status is the workflow state
	Status Status

	// Priority is the urgency level
	Priority Priority

	// AssigneeIDs are the ids of assigned users, in display order
	AssigneeIDs []string

	// DependencyIDs are the ids of tasks this task depends on
	DependencyIDs []string

	// EstimatedHours is the planned effort
	EstimatedHours float64

	// ActualHours is the recorded effort
	ActualHours float64
}

// HasSchedule reports whether the task has both dates resolvable.
// Tasks without a schedule are skipped by bars, arrows and hit-testing.
func (t Task) HasSchedule() bool {
	return t.StartDate != nil && t.DueDate != nil
}

// Progress returns the progress percentage clamped to [0, 100].
func (t Task) Progress() int {
	if t.ProgressPercentage < 0 {
		return 0
	}
	if t.ProgressPercentage > 100 {
		return 100
	}
	return t.ProgressPercentage
}

// DurationDays returns the inclusive span of the task in days.
// A task whose due date precedes its start still spans one day, matching the
// minimum one-day bar drawn for inverted date ranges.
func (t Task) DurationDays() int {
	if !t.HasSchedule() {
		return 0
	}
	days := int(Day(*t.DueDate).Sub(Day(*t.StartDate)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// FirstAssignee returns the first assignee id, or "" when unassigned.
func (t Task) FirstAssignee() string {
	if len(t.AssigneeIDs) == 0 {
		return ""
	}
	return t.AssigneeIDs[0]
}

// =============================================================================
// DATE HELPERS
// =============================================================================

// Day truncates a timestamp to midnight UTC. All chart math operates on
// day-granular dates; normalizing here keeps day-index arithmetic exact
// across timezones and DST boundaries.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOf builds a day-granular date. Convenience for tests and plan decoding.
func DateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateChange carries the dates a committed drag produced for a task.
// Both fields are set for a move; a resize only changes one but reports both
// so the host can persist the pair atomically.
type DateChange struct {
	StartDate *time.Time
	DueDate   *time.Time
}
